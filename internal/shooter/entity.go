// Package shooter implements a side-scrolling sky shooter. The player flies a
// jet on the left of the playfield and dodges missiles that scroll in from
// the right, while clouds drift by in the background.
package shooter

import "github.com/vovakirdan/sky-shooter/internal/core"

// Kind identifies what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindCloud
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// Evictable reports whether entities of this kind are removed once they
// scroll past the left edge. The player is clamped instead.
func (k Kind) Evictable() bool {
	return k == KindEnemy || k == KindCloud
}

// Entity is a positioned, moving object on the playfield.
// Pos is the bottom-left corner in world units; Vel is in world units per second.
type Entity struct {
	Kind    Kind
	Pos     core.Vec
	Vel     core.Vec
	W, H    float64
	Flipped bool // Drawn mirrored; cosmetic only
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.Box{Left: e.Pos.X, Bottom: e.Pos.Y, W: e.W, H: e.H}
}

// Edge accessors in world units.
func (e Entity) Left() float64 { return e.Pos.X }
func (e Entity) Right() float64 { return e.Pos.X + e.W }
func (e Entity) Bottom() float64 { return e.Pos.Y }
func (e Entity) Top() float64 { return e.Pos.Y + e.H }

func (e *Entity) SetLeft(x float64) { e.Pos.X = x }
func (e *Entity) SetRight(x float64) { e.Pos.X = x - e.W }
func (e *Entity) SetBottom(y float64) { e.Pos.Y = y }
func (e *Entity) SetTop(y float64) { e.Pos.Y = y - e.H }

// Move advances the entity by its velocity over dt seconds.
func (e *Entity) Move(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Expired reports whether an evictable entity has fully left the playfield.
func (e Entity) Expired() bool {
	return e.Kind.Evictable() && e.Right() < 0
}
