package duckdash

import (
	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

// Decoration sizes. Decorations never collide, so they are not configurable.
const (
	starSize      = 2
	cloudMinW     = 40
	cloudMaxW     = 80
	cloudMinH     = 20
	cloudMaxH     = 30
	starFloorSkip = 50 // Stars stay above this distance from the bottom edge
)

// prefillEnvironment lays ground tiles across the visible width and scatters
// the static star field.
func (s *Spawner) prefillEnvironment(sess *Session) {
	env := s.cfg.Environment
	pf := s.cfg.Playfield
	n := int(pf.Width/env.TileWidth) + 2
	for i := 0; i < n; i++ {
		s.placeTile(sess, float64(i)*env.TileWidth)
	}
	for i := 0; i < env.StarCount; i++ {
		pos := core.V(s.uniform(0, pf.Width), s.uniform(0, pf.Height-starFloorSkip))
		sess.world.Add(&Entity{
			Kind:  KindStar,
			Pos:   pos,
			Shape: core.CenteredBox(starSize, starSize),
			W:     starSize,
			H:     starSize,
		})
	}
}

// UpdateEnvironment keeps the ground strip filled and drifts clouds in.
func (s *Spawner) UpdateEnvironment(dt float64, sess *Session) {
	env := s.cfg.Environment

	s.groundAcc += dt
	if interval := env.TileWidth / sess.speed; s.groundAcc >= interval {
		s.groundAcc -= interval
		s.placeTile(sess, s.cfg.Playfield.Width)
	}

	s.cloudAcc += dt
	if s.cloudAcc >= s.nextCloud {
		s.cloudAcc = 0
		s.nextCloud = s.uniform(env.CloudMinInterval, env.CloudMaxInterval)
		s.placeCloud(sess)
	}
}

// placeTile adds a ground tile whose left edge is at x.
func (s *Spawner) placeTile(sess *Session, x float64) {
	env := s.cfg.Environment
	pf := s.cfg.Playfield
	ec := config.EntityConfig{Width: env.TileWidth, Height: pf.GroundHeight}
	pos := core.V(x+env.TileWidth/2, pf.FloorY()+pf.GroundHeight/2)
	sess.world.Add(newEntity(KindGround, ec, pos, sess.speed, pf.OffscreenMargin))
}

func (s *Spawner) placeCloud(sess *Session) {
	env := s.cfg.Environment
	ec := config.EntityConfig{
		Width:  s.uniform(cloudMinW, cloudMaxW),
		Height: s.uniform(cloudMinH, cloudMaxH),
	}
	pos := core.V(s.cfg.Playfield.Width+ec.Width/2, s.uniform(env.CloudMinY, env.CloudMaxY))
	sess.world.Add(newEntity(KindCloud, ec, pos, sess.speed*env.CloudSpeedFactor, env.CloudMargin))
}
