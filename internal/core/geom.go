// Package core holds the host-independent building blocks of Duck Dash:
// float geometry and collision shapes, small numeric helpers, the colored
// screen buffer and semantic input frames. It imports nothing outside the
// standard library so the simulation can be stepped from tests.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a 2D vector in world units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V creates a vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the normalized vector, or the zero vector for zero input.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes overlap. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// ShapeKind selects the collision primitive of a Shape.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is a collision shape offset from an entity position.
// For boxes Offset is the top-left corner relative to the position;
// for circles it is the center.
type Shape struct {
	Kind   ShapeKind
	Offset Vec2
	W, H   float64 // Box size
	Radius float64 // Circle radius
}

// BoxShape creates a box shape.
func BoxShape(offX, offY, w, h float64) Shape {
	return Shape{Kind: ShapeBox, Offset: V(offX, offY), W: w, H: h}
}

// CenteredBox creates a box shape centered on the entity position.
func CenteredBox(w, h float64) Shape {
	return BoxShape(-w/2, -h/2, w, h)
}

// CircleShape creates a circle shape centered on the entity position plus offset.
func CircleShape(offX, offY, radius float64) Shape {
	return Shape{Kind: ShapeCircle, Offset: V(offX, offY), Radius: radius}
}

// Bounds returns the world-space bounding box of the shape placed at pos.
func (s Shape) Bounds(pos Vec2) Box {
	if s.Kind == ShapeCircle {
		c := pos.Add(s.Offset)
		return Box{X: c.X - s.Radius, Y: c.Y - s.Radius, W: s.Radius * 2, H: s.Radius * 2}
	}
	return Box{X: pos.X + s.Offset.X, Y: pos.Y + s.Offset.Y, W: s.W, H: s.H}
}

// Collides reports whether shape a at pa overlaps shape b at pb.
func Collides(a Shape, pa Vec2, b Shape, pb Vec2) bool {
	switch {
	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		return a.Bounds(pa).Overlaps(b.Bounds(pb))
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		r := a.Radius + b.Radius
		return Dist(pa.Add(a.Offset), pb.Add(b.Offset)) < r
	case a.Kind == ShapeCircle:
		return circleBox(pa.Add(a.Offset), a.Radius, b.Bounds(pb))
	default:
		return circleBox(pb.Add(b.Offset), b.Radius, a.Bounds(pa))
	}
}

// circleBox tests a circle against a box using the closest point on the box.
func circleBox(c Vec2, r float64, b Box) bool {
	nx := ClampF(c.X, b.X, b.Right())
	ny := ClampF(c.Y, b.Y, b.Bottom())
	return Dist(c, V(nx, ny)) < r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
