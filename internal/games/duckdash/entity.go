package duckdash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

// Kind identifies what an entity is. Collision behavior is chosen by
// switching on the kind's Category.
type Kind uint8

const (
	KindGround Kind = iota
	KindCloud
	KindStar
	KindObstacle
	KindSlime
	KindFrog
	KindDrone
	KindBat
	KindPlatform
	KindBread
	KindShield
	KindMagnet
	KindHeart
)

var kindNames = [...]string{
	KindGround:   "ground",
	KindCloud:    "cloud",
	KindStar:     "star",
	KindObstacle: "obstacle",
	KindSlime:    "slime",
	KindFrog:     "frog",
	KindDrone:    "drone",
	KindBat:      "bat",
	KindPlatform: "platform",
	KindBread:    "bread",
	KindShield:   "shield",
	KindMagnet:   "magnet",
	KindHeart:    "heart",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("duckdash: unknown entity kind %q", name)
}

// Category groups kinds by how the player interacts with them.
type Category uint8

const (
	CategoryDecoration Category = iota
	CategoryHazard
	CategoryCollectible
	CategoryPowerup
	CategoryPlatform
)

// Category returns the interaction category of the kind.
func (k Kind) Category() Category {
	switch k {
	case KindObstacle, KindSlime, KindFrog, KindDrone, KindBat:
		return CategoryHazard
	case KindBread:
		return CategoryCollectible
	case KindShield, KindMagnet, KindHeart:
		return CategoryPowerup
	case KindPlatform:
		return CategoryPlatform
	default:
		return CategoryDecoration
	}
}

// Entity is anything placed in the world. Pos is the entity center.
type Entity struct {
	ID     int
	Kind   Kind
	Pos    core.Vec2
	Vel    core.Vec2 // Vel.X is the constant scroll velocity (negative = leftward)
	Shape  core.Shape
	W, H   float64 // Visual size
	Margin float64 // Off-screen distance past the left edge before eviction
	Alive  bool

	// Gravity-bound bodies
	Gravity  bool
	Grounded bool

	// Hopping enemies
	hopTimer    float64
	hopInterval float64
	hopForce    float64

	// Oscillating flyers
	baseY     float64
	wavePhase float64
	waveFreq  float64
	waveAmp   float64
}

// Bounds returns the world-space collision box of the entity.
func (e *Entity) Bounds() core.Box {
	return e.Shape.Bounds(e.Pos)
}

// newEntity builds an entity of kind centered at pos from its config.
func newEntity(kind Kind, ec config.EntityConfig, pos core.Vec2, speed, margin float64) *Entity {
	shape := core.CenteredBox(ec.Width, ec.Height)
	if ec.Circle {
		shape = core.CircleShape(0, 0, math.Max(ec.Width, ec.Height)/2)
	}
	return &Entity{
		Kind:        kind,
		Pos:         pos,
		Vel:         core.V(-speed, 0),
		Shape:       shape,
		W:           ec.Width,
		H:           ec.Height,
		Margin:      margin,
		Alive:       true,
		Gravity:     ec.Gravity,
		hopInterval: ec.HopInterval,
		hopForce:    ec.HopForce,
		baseY:       pos.Y,
		waveFreq:    ec.WaveFreq,
		waveAmp:     ec.WaveAmplitude,
	}
}

// World is the registry of live entities.
type World struct {
	entities []*Entity
	nextID   int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{entities: make([]*Entity, 0, 128)}
}

// Add registers an entity and assigns its ID.
func (w *World) Add(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	e.Alive = true
	w.entities = append(w.entities, e)
	return e
}

// Entities returns every registered entity, including ones killed this tick.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Live calls fn for every live entity of the given category.
func (w *World) Live(cat Category, fn func(*Entity)) {
	for _, e := range w.entities {
		if e.Alive && e.Kind.Category() == cat {
			fn(e)
		}
	}
}

// Count returns the number of live entities of a kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}

// Sweep drops dead entities from the registry.
func (w *World) Sweep() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.Alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
}

// Clear removes every entity.
func (w *World) Clear() {
	for i := range w.entities {
		w.entities[i] = nil
	}
	w.entities = w.entities[:0]
}
