package duckdash

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/duckdash/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '█'
	CloudChar    = '░'
	StarChar     = '·'
	ObstacleChar = '▓'
	SlimeChar    = '●'
	FrogChar     = '▄'
	DroneChar    = '╬'
	BatChar      = 'v'
	PlatformChar = '▬'
	BreadChar    = '▪'
	ShieldChar   = '◊'
	MagnetChar   = 'U'
	HeartChar    = '♥'
	EmptyHeart   = '♡'
)

const hudRows = 1

// Effect lifetimes in seconds.
const (
	floatTTL    = 0.8
	particleTTL = 0.3
	zoneTTL     = 2.0
	floatRise   = 60.0 // World units per second
	shakeDecay  = 0.85
)

type effect struct {
	kind CueKind
	pos  core.Vec2
	text string
	col  core.Color
	ttl  float64
}

// effects tracks short-lived presentation state driven by session cues.
type effects struct {
	items []effect
	shake float64
	zone  string
	zoneT float64
}

func newEffects() *effects {
	return &effects{}
}

func (f *effects) add(c Cue) {
	switch c.Kind {
	case CueShake:
		f.shake = math.Max(f.shake, c.Magnitude)
	case CueZone:
		f.zone = c.Text
		f.zoneT = zoneTTL
	case CueFloatingText:
		f.items = append(f.items, effect{kind: c.Kind, pos: c.Pos, text: c.Text, col: c.Color, ttl: floatTTL})
	case CueDust, CueCrumbs, CueExplosion, CueDashBoom:
		f.items = append(f.items, effect{kind: c.Kind, pos: c.Pos, ttl: particleTTL})
	}
}

func (f *effects) update(dt float64) {
	live := f.items[:0]
	for _, e := range f.items {
		e.ttl -= dt
		if e.ttl <= 0 {
			continue
		}
		if e.kind == CueFloatingText {
			e.pos.Y -= floatRise * dt
		}
		live = append(live, e)
	}
	f.items = live

	f.shake *= shakeDecay
	if f.shake < 0.5 {
		f.shake = 0
	}
	if f.zoneT > 0 {
		f.zoneT -= dt
	}
}

// viewport maps world units onto the screen below the HUD.
type viewport struct {
	sx, sy float64
	dx     int
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X*v.sx) + v.dx, int(p.Y*v.sy) + hudRows
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X*v.sx)) + v.dx
	y0 := int(math.Floor(b.Y*v.sy)) + hudRows
	w := core.Max(int(math.Ceil(b.Right()*v.sx))+v.dx-x0, 1)
	h := core.Max(int(math.Ceil(b.Bottom()*v.sy))+hudRows-y0, 1)
	return core.NewRect(x0, y0, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session
	if s == nil || dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}
	dst.SetBackground(s.Background())

	pf := g.cfg.Playfield
	vp := viewport{
		sx: float64(dst.Width()) / pf.Width,
		sy: float64(dst.Height()-hudRows) / pf.Height,
	}
	if g.fx.shake > 0 {
		vp.dx = int(math.Round(math.Sin(float64(g.frame)*1.7) * g.fx.shake / 10))
	}

	for _, e := range s.World().Entities() {
		if e.Alive {
			g.drawEntity(dst, vp, e)
		}
	}
	g.drawPlayer(dst, vp, s.Player())
	g.drawEffects(dst, vp)
	g.drawHUD(dst)

	switch {
	case s.Phase() == PhaseCountdown:
		dst.DrawTextCenteredColor(dst.Height()/2, s.CountdownLabel(), core.ColorBrightYellow)
	case s.Phase() == PhaseDead:
		g.drawGameOver(dst)
	case s.Paused():
		drawCenteredMessage(dst, []string{"PAUSED", "Press P to resume"}, core.ColorBrightWhite)
	case g.fx.zoneT > 0:
		dst.DrawTextCenteredColor(dst.Height()/3, g.fx.zone, core.ColorBrightWhite)
	}
}

func (g *Game) drawEntity(dst *core.Screen, vp viewport, e *Entity) {
	var ch rune
	var col core.Color
	switch e.Kind {
	case KindGround:
		ch, col = GroundChar, core.NearestColor(g.session.Biome().Ground)
	case KindCloud:
		ch, col = CloudChar, core.ColorWhite
	case KindStar:
		x, y := vp.cell(e.Pos)
		dst.SetColor(x, y, StarChar, core.ColorGray)
		return
	case KindObstacle:
		ch, col = ObstacleChar, core.ColorRed
	case KindSlime:
		ch, col = SlimeChar, core.ColorGreen
	case KindFrog:
		ch, col = FrogChar, core.ColorBrightGreen
	case KindDrone:
		ch, col = DroneChar, core.ColorGray
	case KindBat:
		ch, col = BatChar, core.ColorMagenta
	case KindPlatform:
		ch, col = PlatformChar, core.ColorOrange
	case KindBread:
		ch, col = BreadChar, core.ColorYellow
	case KindShield:
		ch, col = ShieldChar, core.ColorBrightCyan
	case KindMagnet:
		ch, col = MagnetChar, core.ColorBrightMagenta
	case KindHeart:
		ch, col = HeartChar, core.ColorBrightRed
	default:
		return
	}
	dst.DrawRectColor(vp.rect(e.Bounds()), ch, col)
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport, p *Player) {
	// Blink while invulnerable
	if p.Invulnerable() && (g.frame/4)%2 == 1 {
		return
	}
	r := vp.rect(p.Bounds())
	body := core.NearestColor(g.skin.Body)
	if g.hurtFlash > 0 {
		body = core.ColorBrightRed
	}
	dst.DrawRectColor(r, '█', body)

	// Eye and beak face forward
	eyeX, eyeY := r.Right()-1, r.Y
	if g.skin.UseSprite {
		dst.SetColor(eyeX, eyeY, '◕', core.NearestColor(g.skin.Eye))
	} else {
		dst.SetColor(eyeX, eyeY, '•', core.NearestColor(g.skin.Eye))
	}
	dst.SetColor(r.Right(), eyeY+r.H/2, '>', core.NearestColor(g.skin.Beak))
	if r.W > 2 && r.H > 1 {
		dst.SetColor(r.X+r.W/2-1, r.Y+r.H/2, '≈', core.NearestColor(g.skin.Wing))
	}

	if p.Shielded() {
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColor(r.X-1, y, '(', core.ColorBrightCyan)
			dst.SetColor(r.Right()+1, y, ')', core.ColorBrightCyan)
		}
	}
	if p.Dashing() {
		for i := 1; i <= 3; i++ {
			dst.SetColor(r.X-i, r.Y+r.H/2, '»', core.ColorBrightYellow)
		}
	}
}

func (g *Game) drawEffects(dst *core.Screen, vp viewport) {
	for _, e := range g.fx.items {
		x, y := vp.cell(e.pos)
		switch e.kind {
		case CueFloatingText:
			dst.DrawTextColor(x-len(e.text)/2, y, e.text, e.col)
		case CueDust:
			dst.DrawTextColor(x-1, y, "~ ~", core.ColorGray)
		case CueCrumbs:
			dst.DrawTextColor(x-1, y, "*.*", core.ColorYellow)
		case CueExplosion:
			dst.DrawTextColor(x-1, y-1, "\\|/", core.ColorOrange)
			dst.DrawTextColor(x-1, y, "-✸-", core.ColorBrightRed)
			dst.DrawTextColor(x-1, y+1, "/|\\", core.ColorOrange)
		case CueDashBoom:
			dst.DrawTextColor(x-2, y, "≫≫", core.ColorBrightWhite)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	p := s.Player()

	x := 1
	put := func(text string, col core.Color) {
		dst.DrawTextColor(x, 0, text, col)
		x += len([]rune(text)) + 2
	}

	put(fmt.Sprintf("SCORE %d", s.Score()), core.ColorBrightWhite)
	put(fmt.Sprintf("BEST %d", max(g.best, s.Score())), core.ColorGray)

	lives := s.Config().Health.MaxLives
	hearts := strings.Repeat(string(HeartChar), p.Lives) + strings.Repeat(string(EmptyHeart), lives-p.Lives)
	put(hearts, core.ColorBrightRed)

	if s.Config().Dash.Enabled {
		const barW = 6
		filled := int(p.DashCharge() * barW)
		bar := "DASH [" + strings.Repeat("#", filled) + strings.Repeat(" ", barW-filled) + "]"
		col := core.ColorGray
		if p.CanDash() {
			col = core.ColorBrightYellow
		}
		put(bar, col)
	}
	if p.Shielded() {
		put("SHIELD", core.ColorBrightCyan)
	}
	if p.MagnetActive() {
		put(fmt.Sprintf("MAGNET %.1fs", p.MagnetRemaining()), core.ColorBrightMagenta)
	}

	name := s.Biome().Name
	dst.DrawTextColor(dst.Width()-len(name)-1, 0, name, core.ColorWhite)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	score, text, ready := g.GameOver()
	if !ready {
		score = g.session.FinalScore()
		text = "The duck is thinking..."
	}
	drawCenteredMessage(dst, []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", score),
		"",
		fmt.Sprintf("%q", text),
		"",
		"R restart  |  Q quit",
	}, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string, col core.Color) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	boxW := core.Min(w+4, dst.Width())
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		lx := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(lx, box.Y+1+i, l, col)
	}
}
