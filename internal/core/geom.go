// Package core provides the fundamental types shared by the simulation and the
// frame drivers. It contains no external dependencies to keep game logic pure
// and testable.
package core

// Rect represents an axis-aligned bounding box in screen pixels.
// The origin is the top-left corner and y grows downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether two half-open rectangles intersect on both axes.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	if a.Right() <= b.X || a.X >= b.Right() {
		return false
	}
	if a.Bottom() <= b.Y || a.Y >= b.Bottom() {
		return false
	}
	return true
}

// Collision classifies the axis along which one rectangle entered another.
type Collision int

const (
	CollisionNone       Collision = iota
	CollisionHorizontal           // Entered from a side: reflect X velocity
	CollisionVertical             // Entered from top or bottom: reflect Y velocity
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionHorizontal:
		return "Horizontal"
	case CollisionVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Classify returns the axis of penetration of a into b.
//
// The side depths are only chosen when strictly smaller than the other three
// depths. Every other case, exact ties included, resolves to
// CollisionVertical.
func Classify(a, b Rect) Collision {
	if !Overlaps(a, b) {
		return CollisionNone
	}

	overlapLeft := a.Right() - b.X
	overlapRight := b.Right() - a.X
	overlapTop := a.Bottom() - b.Y
	overlapBottom := b.Bottom() - a.Y

	if overlapLeft < overlapRight && overlapLeft < overlapTop && overlapLeft < overlapBottom {
		return CollisionHorizontal
	}
	if overlapRight < overlapLeft && overlapRight < overlapTop && overlapRight < overlapBottom {
		return CollisionHorizontal
	}
	return CollisionVertical
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
