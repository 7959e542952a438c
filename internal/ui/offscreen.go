package ui

import "github.com/gdamore/tcell/v2"

// Surface is anything cells can be drawn onto.
type Surface interface {
	SetContent(x, y int, r rune, style tcell.Style)
}

// Cell is one character cell of an offscreen buffer.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Offscreen is an intermediate drawing buffer that is composited onto a
// Surface before the frame is presented.
type Offscreen struct {
	width, height int
	cells         []Cell
	fg            tcell.Color // Foreground used by PutChar
}

// NewOffscreen creates a blank buffer with white-on-black cells.
func NewOffscreen(width, height int) *Offscreen {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}
	}
	return &Offscreen{
		width:  width,
		height: height,
		cells:  cells,
		fg:     tcell.ColorWhite,
	}
}

// Size returns the buffer dimensions.
func (o *Offscreen) Size() (width, height int) {
	return o.width, o.height
}

// SetForeground sets the color used by subsequent PutChar calls.
func (o *Offscreen) SetForeground(c tcell.Color) {
	o.fg = c
}

// PutChar writes a character in the current foreground color, leaving
// the cell background untouched. Positions off the buffer are ignored.
func (o *Offscreen) PutChar(x, y int, r rune) {
	if c := o.cell(x, y); c != nil {
		c.Rune = r
		c.Fg = o.fg
	}
}

// SetBackground sets the background color of a cell.
func (o *Offscreen) SetBackground(x, y int, bg tcell.Color) {
	if c := o.cell(x, y); c != nil {
		c.Bg = bg
	}
}

// Cell returns the cell at the given position, or a zero Cell off the buffer.
func (o *Offscreen) Cell(x, y int) Cell {
	if c := o.cell(x, y); c != nil {
		return *c
	}
	return Cell{}
}

// Blit copies the w × h region at (sx, sy) onto dst at (dx, dy), one
// cell per cell.
func (o *Offscreen) Blit(sx, sy, w, h int, dst Surface, dx, dy int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := o.cell(sx+x, sy+y)
			if c == nil {
				continue
			}
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			dst.SetContent(dx+x, dy+y, c.Rune, style)
		}
	}
}

func (o *Offscreen) cell(x, y int) *Cell {
	if x < 0 || x >= o.width || y < 0 || y >= o.height {
		return nil
	}
	return &o.cells[y*o.width+x]
}
