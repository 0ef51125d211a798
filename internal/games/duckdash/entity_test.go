package duckdash

import (
	"math"
	"testing"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

func TestParseKind(t *testing.T) {
	for k := KindGround; k <= KindHeart; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("dragon"); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestKindCategory(t *testing.T) {
	tests := map[Kind]Category{
		KindGround:   CategoryDecoration,
		KindCloud:    CategoryDecoration,
		KindStar:     CategoryDecoration,
		KindObstacle: CategoryHazard,
		KindSlime:    CategoryHazard,
		KindFrog:     CategoryHazard,
		KindDrone:    CategoryHazard,
		KindBat:      CategoryHazard,
		KindPlatform: CategoryPlatform,
		KindBread:    CategoryCollectible,
		KindShield:   CategoryPowerup,
		KindMagnet:   CategoryPowerup,
		KindHeart:    CategoryPowerup,
	}
	for k, want := range tests {
		if got := k.Category(); got != want {
			t.Errorf("%v.Category() = %v, want %v", k, got, want)
		}
	}
}

func TestWorldLifecycle(t *testing.T) {
	w := NewWorld()
	ec := config.EntityConfig{Width: 10, Height: 10}
	a := w.Add(newEntity(KindBread, ec, core.V(0, 0), 100, 50))
	b := w.Add(newEntity(KindBread, ec, core.V(20, 0), 100, 50))
	w.Add(newEntity(KindObstacle, ec, core.V(40, 0), 100, 50))

	if a.ID == b.ID {
		t.Error("ids should be unique")
	}
	if w.Count(KindBread) != 2 {
		t.Errorf("bread = %d, want 2", w.Count(KindBread))
	}

	a.Alive = false
	if w.Count(KindBread) != 1 {
		t.Error("dead entities should not be counted")
	}
	n := 0
	w.Live(CategoryCollectible, func(*Entity) { n++ })
	if n != 1 {
		t.Errorf("live collectibles = %d, want 1", n)
	}

	w.Sweep()
	if len(w.Entities()) != 2 {
		t.Errorf("entities after sweep = %d, want 2", len(w.Entities()))
	}
	w.Clear()
	if len(w.Entities()) != 0 {
		t.Error("clear should empty the world")
	}
}

func TestCircleEntityShape(t *testing.T) {
	ec := config.EntityConfig{Width: 20, Height: 10, Circle: true}
	e := newEntity(KindShield, ec, core.V(100, 100), 0, 0)
	b := e.Bounds()
	if b.W != 20 || b.H != 20 {
		t.Errorf("circle bounds = %vx%v, want 20x20", b.W, b.H)
	}
}

func TestStepWorldEvictsOffscreen(t *testing.T) {
	s, _ := newTestSession(t, quietConfig())
	margin := s.cfg.Playfield.OffscreenMargin
	ec := s.cfg.Entities["obstacle"]

	inside := put(s, KindObstacle, -margin, 412)
	outside := put(s, KindObstacle, -margin-ec.Width/2-1, 412)
	s.stepWorld(dt)

	if !inside.Alive {
		t.Error("entity within the margin should survive")
	}
	if outside.Alive {
		t.Error("entity past the margin should be evicted")
	}
}

func TestStepWorldStarsAreStatic(t *testing.T) {
	s, _ := newTestSession(t, quietConfig())
	var star *Entity
	for _, e := range s.world.Entities() {
		if e.Kind == KindStar {
			star = e
			break
		}
	}
	pos := star.Pos
	s.stepWorld(1)
	if star.Pos != pos {
		t.Error("stars should not move")
	}
}

func TestHopperHops(t *testing.T) {
	s, _ := newTestSession(t, quietConfig())
	ec := s.cfg.Entities["slime"]
	floorY := s.cfg.Playfield.FloorY()
	slime := put(s, KindSlime, 500, floorY-ec.Height/2)
	slime.Vel.X = 0

	s.stepWorld(dt)
	if !slime.Grounded {
		t.Fatal("slime should rest on the floor")
	}

	for i := 0; i < int(ec.HopInterval/dt)+1 && slime.Grounded; i++ {
		s.stepWorld(dt)
	}
	if slime.Grounded || slime.Vel.Y >= 0 {
		t.Fatal("slime should hop after its interval")
	}

	for i := 0; i < 120 && !slime.Grounded; i++ {
		s.stepWorld(dt)
	}
	if !slime.Grounded || slime.Pos.Y != floorY-ec.Height/2 {
		t.Errorf("slime should land back on the floor, y=%v", slime.Pos.Y)
	}
}

func TestBatOscillates(t *testing.T) {
	s, _ := newTestSession(t, quietConfig())
	ec := s.cfg.Entities["bat"]
	bat := put(s, KindBat, 500, 300)

	s.stepWorld(0.1)
	want := 300 + math.Sin(ec.WaveFreq*0.1)*ec.WaveAmplitude
	if math.Abs(bat.Pos.Y-want) > 1e-9 {
		t.Errorf("bat y = %v, want %v", bat.Pos.Y, want)
	}
}

func TestBiomeController(t *testing.T) {
	cfg := config.DefaultConfig()
	b := NewBiomeController(cfg.Biomes, cfg.Environment.BackgroundLerp)

	tests := []struct {
		score int
		want  int
	}{
		{0, 0}, {999, 0}, {1000, 1}, {2500, 2}, {3000, 3}, {99999, 3},
	}
	for _, tt := range tests {
		if got := b.IndexFor(tt.score); got != tt.want {
			t.Errorf("IndexFor(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}

	if b.Background() != cfg.Biomes[0].Sky {
		t.Errorf("initial background = %v, want %v", b.Background(), cfg.Biomes[0].Sky)
	}
	if b.Update(500, 0.1) {
		t.Error("no change expected below the first breakpoint")
	}
	if !b.Update(3000, 0.1) {
		t.Error("entering VOLCANO should report a change")
	}
	if b.Update(3100, 0.1) {
		t.Error("staying in a biome should not report a change")
	}

	target := cfg.Biomes[3].Sky
	start := b.Background()
	for i := 0; i < 600; i++ {
		b.Update(3100, dt)
	}
	end := b.Background()
	for i := range end {
		if math.Abs(float64(end[i])-float64(target[i])) > math.Abs(float64(start[i])-float64(target[i])) {
			t.Errorf("channel %d moved away from target: %d -> %d (target %d)", i, start[i], end[i], target[i])
		}
	}
	if end == start {
		t.Error("background should ease toward the new sky")
	}
}

func TestSkins(t *testing.T) {
	if ids := UnlockedSkins(0); len(ids) != 1 || ids[0] != DefaultSkinID {
		t.Errorf("UnlockedSkins(0) = %v", ids)
	}
	if ids := UnlockedSkins(2500); len(ids) != 3 {
		t.Errorf("UnlockedSkins(2500) = %v, want 3 skins", ids)
	}
	if _, ok := SkinByID("nope"); ok {
		t.Error("unknown skin should report false")
	}
	if s, ok := SkinByID("lava"); !ok || s.Unlocked(4999) || !s.Unlocked(5000) {
		t.Error("lava skin unlocks at 5000")
	}
}
