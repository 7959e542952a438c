// Package entity provides the characters that live on the map.
package entity

import "github.com/gdamore/tcell/v2"

// Blocker reports whether a position cannot be moved into.
// *world.Map satisfies it.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// Entity is a glyph drawn at a position on the map.
type Entity struct {
	X, Y  int         // Current position
	Glyph rune        // Display character
	Color tcell.Color // Foreground color
}

// New creates an entity at the given position.
func New(x, y int, glyph rune, color tcell.Color) *Entity {
	return &Entity{
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy moves the entity by the given delta and reports whether it moved.
// With a nil Blocker the move is unchecked and always applied; otherwise
// the move is skipped when the destination is blocked.
func (e *Entity) MoveBy(dx, dy int, b Blocker) bool {
	if b != nil && b.IsBlocked(e.X+dx, e.Y+dy) {
		return false
	}
	e.X += dx
	e.Y += dy
	return true
}

// Position returns the current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}
