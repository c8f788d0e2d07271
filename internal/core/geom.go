// Package core provides fundamental types and utilities shared by the game
// logic and the platform frontends. It has no external dependencies so the
// simulation stays pure and testable.
package core

// Vec is a 2D vector in world units (y grows upward).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned bounding box in world space.
// Origin is the bottom-left corner; the playfield grows right and up.
type Box struct {
	Left, Bottom float64
	W, H         float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Left + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Bottom + b.H
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Left >= o.Right() || o.Left >= b.Right() {
		return false
	}
	if b.Bottom >= o.Top() || o.Bottom >= b.Top() {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle on the character grid.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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
