package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ruinwalk/internal/entity"
	"github.com/samdwyer/ruinwalk/internal/palette"
	"github.com/samdwyer/ruinwalk/internal/world"
)

const statusHint = "arrows: move  alt+enter: fullscreen  esc: quit"

// Display is the visible surface frames are presented on.
type Display interface {
	Surface
	Size() (width, height int)
	Show()
}

// Renderer draws the map and entities through an offscreen buffer.
type Renderer struct {
	display Display
	con     *Offscreen

	// ShowStatus draws the hint line in the first row below the buffer.
	ShowStatus bool
}

// NewRenderer creates a renderer drawing through a width × height buffer.
func NewRenderer(display Display, width, height int) *Renderer {
	return &Renderer{
		display:    display,
		con:        NewOffscreen(width, height),
		ShowStatus: true,
	}
}

// Offscreen returns the renderer's intermediate buffer.
func (r *Renderer) Offscreen() *Offscreen {
	return r.con
}

// Render draws one frame. Entities are drawn into the offscreen buffer,
// tile backgrounds are painted when a map is given, the buffer is
// composited onto the display and presented, and only then are the
// entity glyphs erased from the buffer for the next frame.
func (r *Renderer) Render(m *world.Map, entities []*entity.Entity) {
	for _, e := range entities {
		r.con.SetForeground(e.Color)
		r.con.PutChar(e.X, e.Y, e.Glyph)
	}

	if m != nil {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				r.con.SetBackground(x, y, tileBackground(m.Tile(x, y)))
			}
		}
	}

	w, h := r.con.Size()
	r.con.Blit(0, 0, w, h, r.display, 0, 0)
	r.drawStatus(h, entities)
	r.display.Show()

	for _, e := range entities {
		r.con.PutChar(e.X, e.Y, ' ')
	}
}

// tileBackground returns the background color for a tile.
func tileBackground(t world.Tile) tcell.Color {
	if t.BlockSight {
		return palette.DarkWall
	}
	return palette.DarkGround
}

// drawStatus writes the hint line into row y of the display, or blanks it
// when the status line is hidden. Nothing is drawn if the row is off screen.
func (r *Renderer) drawStatus(y int, entities []*entity.Entity) {
	width, height := r.display.Size()
	if y >= height {
		return
	}

	msg := ""
	if r.ShowStatus {
		msg = statusHint
		if len(entities) > 0 {
			msg = fmt.Sprintf("%s  @ %d,%d", statusHint, entities[0].X, entities[0].Y)
		}
	}

	style := tcell.StyleDefault.Foreground(palette.StatusText).Background(tcell.ColorBlack)
	runes := []rune(msg)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.display.SetContent(x, y, ch, style)
	}
}
