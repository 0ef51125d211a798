package duckdash

import "github.com/vovakirdan/duckdash/internal/core"

// resolveCollisions dispatches every player contact by category. Each contact
// is resolved on its own, so one destroyed hazard never hides a second one
// overlapping in the same tick. Nothing is processed once the player is dead.
func (s *Session) resolveCollisions() {
	p := s.player
	for _, e := range s.world.entities {
		if s.phase == PhaseDead {
			return
		}
		if !e.Alive {
			continue
		}
		cat := e.Kind.Category()
		if cat == CategoryDecoration || cat == CategoryPlatform {
			continue
		}
		if !core.Collides(p.Shape, p.Pos, e.Shape, e.Pos) {
			continue
		}

		switch cat {
		case CategoryHazard:
			s.hitHazard(e)
		case CategoryCollectible:
			s.collectBread(e)
		case CategoryPowerup:
			s.collectPowerup(e)
		}
	}
}

// hitHazard applies the hazard priority: dash, then shield, then
// invulnerability, then damage.
func (s *Session) hitHazard(e *Entity) {
	p := s.player
	switch {
	case p.dashing:
		e.Alive = false
		s.cue(Cue{Kind: CueExplosion, Pos: e.Pos})
		s.shake(5)
		s.floatText("SMASH!", p.Pos, core.ColorBrightYellow)
		s.addPoints(s.cfg.Scoring.EnemySmash)

	case p.shield:
		e.Alive = false
		p.shield = false
		s.cue(Cue{Kind: CueExplosion, Pos: e.Pos})
		s.shake(5)
		s.floatText("BLOCKED!", p.Pos, core.ColorBrightCyan)

	case p.invulnerable:
		// Pass through: the hazard stays in the world.

	default:
		e.Alive = false
		dead := p.takeHit()
		s.shake(20)
		s.cue(Cue{Kind: CueExplosion, Pos: e.Pos})
		s.healthChanged()
		if dead {
			s.die()
		}
	}
}

func (s *Session) collectBread(e *Entity) {
	e.Alive = false
	s.cue(Cue{Kind: CueCrumbs, Pos: e.Pos})
	s.shake(2)
	pts := s.cfg.Scoring.Bread
	s.floatText(pointsLabel(pts), e.Pos, core.ColorBrightYellow)
	s.addPoints(pts)
}

func (s *Session) collectPowerup(e *Entity) {
	p := s.player
	sc := s.cfg.Scoring
	e.Alive = false
	s.shake(2)

	switch e.Kind {
	case KindShield:
		p.shield = true
		s.floatText("SHIELD UP!", p.Pos, core.ColorBrightCyan)
		s.addPoints(sc.Shield)

	case KindMagnet:
		p.magnetRemaining = s.cfg.Powerups.MagnetDuration
		s.floatText("MAGNET!", p.Pos, core.ColorBrightMagenta)
		s.addPoints(sc.Magnet)

	case KindHeart:
		if p.heal() {
			s.floatText("+1 LIFE", p.Pos, core.ColorBrightRed)
			s.healthChanged()
			s.addPoints(sc.Heart)
		} else {
			s.floatText(pointsLabel(sc.HeartFullBonus), p.Pos, core.ColorBrightRed)
			s.addPoints(sc.HeartFullBonus)
		}
	}
}
