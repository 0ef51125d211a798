package duckdash

import (
	"math"

	"github.com/vovakirdan/duckdash/internal/core"
)

// stepWorld advances every live entity by dt: scroll velocity, enemy
// behaviors and gravity. Entities that pass the left edge by more than
// their margin are marked dead.
func (s *Session) stepWorld(dt float64) {
	floorY := s.cfg.Playfield.FloorY()
	for _, e := range s.world.entities {
		if !e.Alive || e.Kind == KindStar {
			continue
		}

		e.Pos.X += e.Vel.X * dt

		switch {
		case e.Gravity:
			stepHopper(e, dt)
			stepGravity(e, dt, s.cfg.Physics.Gravity, s.cfg.Physics.MaxFallSpeed, floorY)
		case e.waveFreq > 0:
			e.wavePhase += e.waveFreq * dt
			e.Pos.Y = e.baseY + math.Sin(e.wavePhase)*e.waveAmp
		default:
			e.Pos.Y += e.Vel.Y * dt
		}

		if e.Pos.X+e.W/2 < -e.Margin {
			e.Alive = false
		}
	}
}

// stepHopper fires a hop impulse every hop interval while grounded.
func stepHopper(e *Entity, dt float64) {
	if e.hopInterval <= 0 {
		return
	}
	e.hopTimer += dt
	if e.hopTimer >= e.hopInterval {
		e.hopTimer = 0
		if e.Grounded {
			e.Vel.Y = -e.hopForce
			e.Grounded = false
		}
	}
}

// stepGravity integrates vertical velocity and clamps the body onto the floor.
// It reports whether the body landed this step.
func stepGravity(e *Entity, dt, gravity, maxFall, floorY float64) bool {
	e.Vel.Y += gravity * dt
	if maxFall > 0 && e.Vel.Y > maxFall {
		e.Vel.Y = maxFall
	}
	e.Pos.Y += e.Vel.Y * dt

	bottom := e.Pos.Y + e.H/2
	if bottom >= floorY {
		e.Pos.Y = floorY - e.H/2
		e.Vel.Y = 0
		wasAirborne := !e.Grounded
		e.Grounded = true
		return wasAirborne
	}
	e.Grounded = false
	return false
}

// applyMagnet pulls every live bread within range toward the player. The pull
// speed grows as the distance shrinks and never overshoots the player. The
// bread's own scroll speed is added on top so bread behind the player still
// closes in.
func (s *Session) applyMagnet(dt float64) {
	p := s.player
	if !p.MagnetActive() {
		return
	}
	pw := s.cfg.Powerups
	center := p.Pos
	s.world.Live(CategoryCollectible, func(e *Entity) {
		d := core.Dist(e.Pos, center)
		if d > pw.MagnetRange || d == 0 {
			return
		}
		speed := math.Abs(e.Vel.X) + pw.MagnetPull*pw.MagnetRange/math.Max(d, pw.MagnetMinDistance)
		step := speed * dt
		if step >= d {
			e.Pos = center
			return
		}
		e.Pos = e.Pos.Add(center.Sub(e.Pos).Unit().Scale(step))
	})
}
