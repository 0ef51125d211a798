package duckdash

import (
	"math"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

// landingSlack tolerates rounding when a body resting on a platform is
// re-tested against the platform top.
const landingSlack = 0.5

// Player is the singleton runner. It owns its status flags and timers; the
// session drives them through the methods below.
type Player struct {
	Pos      core.Vec2 // Center
	VelY     float64
	Grounded bool
	Shape    core.Shape
	W, H     float64

	Lives int

	dashing       bool
	dashRemaining float64
	dashTimer     float64 // Time since the last dash ended

	shield bool

	magnetRemaining float64

	invulnerable    bool
	invulnRemaining float64

	canDoubleJump bool
	moveLeft      bool
	moveRight     bool

	cfg *config.DuckConfig
}

func newPlayer(cfg *config.DuckConfig) *Player {
	pc := cfg.Player
	p := &Player{
		Shape: core.CenteredBox(pc.Width, pc.Height),
		W:     pc.Width,
		H:     pc.Height,
		cfg:   cfg,
	}
	p.reset()
	return p
}

func (p *Player) reset() {
	p.Pos = core.V(p.cfg.Player.RestX, p.cfg.Playfield.FloorY()-p.H/2)
	p.VelY = 0
	p.Grounded = true
	p.Lives = p.cfg.Health.MaxLives
	p.dashing = false
	p.dashRemaining = 0
	p.dashTimer = p.cfg.Dash.Cooldown
	p.shield = false
	p.magnetRemaining = 0
	p.invulnerable = false
	p.invulnRemaining = 0
	p.canDoubleJump = false
	p.moveLeft = false
	p.moveRight = false
}

// Bounds returns the world-space collision box of the player.
func (p *Player) Bounds() core.Box {
	return p.Shape.Bounds(p.Pos)
}

// Dashing reports whether a dash is in progress.
func (p *Player) Dashing() bool { return p.dashing }

// Shielded reports whether the single-use shield is up.
func (p *Player) Shielded() bool { return p.shield }

// MagnetActive reports whether the magnet buff is running.
func (p *Player) MagnetActive() bool { return p.magnetRemaining > 0 }

// MagnetRemaining returns the seconds left on the magnet buff.
func (p *Player) MagnetRemaining() float64 { return p.magnetRemaining }

// Invulnerable reports whether the post-damage grace period is running.
func (p *Player) Invulnerable() bool { return p.invulnerable }

// CanDash reports whether a dash may start now.
func (p *Player) CanDash() bool {
	return p.cfg.Dash.Enabled && !p.dashing && p.dashTimer >= p.cfg.Dash.Cooldown
}

// DashCharge returns cooldown progress in [0, 1]; 1 means ready.
func (p *Player) DashCharge() float64 {
	if p.dashing {
		return 0
	}
	if p.cfg.Dash.Cooldown <= 0 {
		return 1
	}
	return core.ClampF(p.dashTimer/p.cfg.Dash.Cooldown, 0, 1)
}

// updateTimers advances dash, magnet and invulnerability timers.
func (p *Player) updateTimers(dt float64) {
	if p.dashing {
		p.dashRemaining -= dt
		if p.dashRemaining <= 0 {
			p.dashing = false
			p.dashRemaining = 0
			p.dashTimer = 0
		}
	} else if p.dashTimer < p.cfg.Dash.Cooldown {
		p.dashTimer = math.Min(p.dashTimer+dt, p.cfg.Dash.Cooldown)
	}

	if p.magnetRemaining > 0 {
		p.magnetRemaining = math.Max(p.magnetRemaining-dt, 0)
	}

	if p.invulnerable {
		p.invulnRemaining -= dt
		if p.invulnRemaining <= 0 {
			p.invulnerable = false
			p.invulnRemaining = 0
		}
	}
}

// jump starts a ground jump or spends the banked double jump.
// It reports which jump happened, if any.
func (p *Player) jump() (jumped, double bool) {
	switch {
	case p.Grounded:
		p.VelY = -p.cfg.Physics.JumpImpulse
		p.Grounded = false
		p.canDoubleJump = true
		return true, false
	case p.canDoubleJump:
		p.VelY = -p.cfg.Physics.DoubleJumpImpulse
		p.canDoubleJump = false
		return true, true
	}
	return false, false
}

// releaseJump cuts upward velocity for variable jump height.
func (p *Player) releaseJump() {
	if p.VelY < 0 {
		p.VelY *= p.cfg.Physics.JumpCutFactor
	}
}

// dash starts a dash if allowed: an instant forward burst capped at MaxX.
func (p *Player) dash() bool {
	if !p.CanDash() {
		return false
	}
	p.dashing = true
	p.dashRemaining = p.cfg.Dash.Duration
	p.dashTimer = 0
	p.Pos.X = math.Min(p.Pos.X+p.cfg.Dash.Distance, p.cfg.Player.MaxX)
	return true
}

// moveHorizontal applies held direction keys, or drifts back to the rest
// position when idle. Free movement is suspended while dashing.
func (p *Player) moveHorizontal(dt float64) {
	if p.dashing {
		return
	}
	pc := p.cfg.Player
	switch {
	case p.moveLeft && !p.moveRight:
		p.Pos.X -= pc.MoveSpeed * dt
	case p.moveRight && !p.moveLeft:
		p.Pos.X += pc.MoveSpeed * dt
	default:
		delta := pc.RestX - p.Pos.X
		step := pc.DriftSpeed * dt
		if math.Abs(delta) <= step {
			p.Pos.X = pc.RestX
		} else {
			p.Pos.X += math.Copysign(step, delta)
		}
	}
	p.Pos.X = core.ClampF(p.Pos.X, pc.MinX, pc.MaxX)
}

// moveVertical integrates gravity and resolves support from the floor and
// from platforms. It reports whether the player landed this step.
func (p *Player) moveVertical(dt float64, platforms []*Entity) bool {
	phys := p.cfg.Physics
	prevBottom := p.Pos.Y + p.H/2

	p.VelY += phys.Gravity * dt
	if phys.MaxFallSpeed > 0 && p.VelY > phys.MaxFallSpeed {
		p.VelY = phys.MaxFallSpeed
	}
	p.Pos.Y += p.VelY * dt

	wasGrounded := p.Grounded
	p.Grounded = false
	bottom := p.Pos.Y + p.H/2

	if p.VelY >= 0 {
		left, right := p.Pos.X-p.W/2, p.Pos.X+p.W/2
		for _, pl := range platforms {
			b := pl.Bounds()
			if right <= b.X || left >= b.Right() {
				continue
			}
			if prevBottom <= b.Y+landingSlack && bottom >= b.Y {
				p.land(b.Y)
				break
			}
		}
	}

	if floorY := p.cfg.Playfield.FloorY(); !p.Grounded && bottom >= floorY {
		p.land(floorY)
	}

	return p.Grounded && !wasGrounded
}

func (p *Player) land(surfaceY float64) {
	p.Pos.Y = surfaceY - p.H/2
	p.VelY = 0
	p.Grounded = true
}

// takeHit removes one life and starts invulnerability if any remain.
// It reports whether the player died.
func (p *Player) takeHit() bool {
	p.Lives = core.Clamp(p.Lives-1, 0, p.cfg.Health.MaxLives)
	if p.Lives == 0 {
		return true
	}
	if p.cfg.Health.Invulnerability > 0 {
		p.invulnerable = true
		p.invulnRemaining = p.cfg.Health.Invulnerability
	}
	return false
}

// heal adds a life. It reports false when lives are already full.
func (p *Player) heal() bool {
	if p.Lives >= p.cfg.Health.MaxLives {
		return false
	}
	p.Lives++
	return true
}
