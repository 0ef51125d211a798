package duckdash

import (
	"fmt"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

// Rand is the random source used by the spawner. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// spawnBand is a compiled row of the spawn table.
type spawnBand struct {
	kind Kind
	upto int
	rare bool
}

// Spawner decides what to create and when, on an accumulator timer.
type Spawner struct {
	bands []spawnBand
	cfg   *config.DuckConfig
	rng   Rand

	accumulator  float64
	nextInterval float64

	groundAcc float64
	cloudAcc  float64
	nextCloud float64
}

// NewSpawner compiles the spawn table. Unknown kinds are an error.
func NewSpawner(cfg *config.DuckConfig, rng Rand) (*Spawner, error) {
	bands := make([]spawnBand, 0, len(cfg.Spawning.Table))
	for _, row := range cfg.Spawning.Table {
		kind, err := ParseKind(row.Kind)
		if err != nil {
			return nil, err
		}
		if kind.Category() == CategoryDecoration {
			return nil, fmt.Errorf("duckdash: %s cannot be spawned from the table", kind)
		}
		bands = append(bands, spawnBand{kind: kind, upto: row.Upto, rare: row.Rare})
	}
	s := &Spawner{bands: bands, cfg: cfg, rng: rng}
	s.Reset()
	return s, nil
}

// Reset restarts every timer.
func (s *Spawner) Reset() {
	s.accumulator = 0
	s.nextInterval = s.drawInterval(1)
	s.groundAcc = 0
	s.cloudAcc = 0
	s.nextCloud = s.uniform(s.cfg.Environment.CloudMinInterval, s.cfg.Environment.CloudMaxInterval)
}

// SetRand swaps the random source.
func (s *Spawner) SetRand(rng Rand) {
	s.rng = rng
}

// NextInterval returns the interval the accumulator is counting toward.
func (s *Spawner) NextInterval() float64 {
	return s.nextInterval
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Spawner) drawInterval(scale float64) float64 {
	sp := s.cfg.Spawning
	return s.uniform(sp.MinInterval, sp.MaxInterval) * scale
}

// Pick maps a draw in [0, roll) through the cumulative table. Rare bands are
// scaled by powerupChance, each edge accumulated from the previous one.
func (s *Spawner) Pick(draw int, powerupChance float64) Kind {
	prevRaw := 0
	edge := 0.0
	for _, b := range s.bands {
		if b.rare {
			edge += float64(b.upto-prevRaw) * powerupChance
		} else {
			edge = float64(b.upto)
		}
		prevRaw = b.upto
		if float64(draw) <= edge {
			return b.kind
		}
	}
	return s.bands[len(s.bands)-1].kind
}

// Update advances the spawn timer. When it elapses, one entity is spawned and
// a new interval is drawn, scaled by the current difficulty.
func (s *Spawner) Update(dt float64, sess *Session) {
	s.accumulator += dt
	if s.accumulator < s.nextInterval {
		return
	}
	s.accumulator = 0

	score, elapsed := sess.score, sess.elapsed
	dm := sess.difficulty
	s.nextInterval = s.drawInterval(dm.SpawnIntervalScale(score, elapsed))

	kind := s.Pick(s.rng.Intn(s.cfg.Spawning.Roll), dm.PowerupSpawnChance(score, elapsed))
	s.spawn(kind, sess, dm.EnemySpeedMultiplier(score, elapsed))
}

// spawn places one entity of kind at the right edge of the playfield.
func (s *Spawner) spawn(kind Kind, sess *Session, enemyMult float64) {
	speed := sess.speed
	if kind.Category() == CategoryHazard {
		speed *= enemyMult
	}

	switch kind {
	case KindBread:
		s.spawnBread(sess, sess.speed)
	case KindPlatform:
		pf := s.spawnAt(kind, sess, speed)
		sp := s.cfg.Spawning
		if s.rng.Float64() > 1-sp.PlatformBreadChance {
			s.place(KindBread, sess, core.V(pf.Pos.X, pf.Pos.Y-sp.PlatformBreadLift), sess.speed)
		}
	default:
		s.spawnAt(kind, sess, speed)
	}
}

// spawnAt places kind at the right edge, at a height drawn from its lift range.
func (s *Spawner) spawnAt(kind Kind, sess *Session, speed float64) *Entity {
	ec := s.cfg.Entities[kind.String()]
	lift := s.uniform(ec.LiftMin, ec.LiftMax)
	x := s.cfg.Playfield.Width + ec.Width/2
	return s.place(kind, sess, core.V(x, s.cfg.Playfield.Height-lift), speed)
}

// spawnBread places bread in the air band or, further right, in the ground band.
func (s *Spawner) spawnBread(sess *Session, speed float64) {
	sp := s.cfg.Spawning
	ec := s.cfg.Entities[KindBread.String()]
	isAir := s.rng.Float64() > 0.5
	x := s.cfg.Playfield.Width + ec.Width/2
	lift := sp.AirBreadLift
	if !isAir {
		x += sp.GroundBreadOffset
		lift = sp.GroundBreadLift
	}
	s.place(KindBread, sess, core.V(x, s.cfg.Playfield.Height-lift), speed)
}

func (s *Spawner) place(kind Kind, sess *Session, pos core.Vec2, speed float64) *Entity {
	ec := s.cfg.Entities[kind.String()]
	speed *= speedMultiplier(ec)
	return sess.world.Add(newEntity(kind, ec, pos, speed, s.cfg.Playfield.OffscreenMargin))
}

func speedMultiplier(ec config.EntityConfig) float64 {
	if ec.SpeedMultiplier <= 0 {
		return 1
	}
	return ec.SpeedMultiplier
}
