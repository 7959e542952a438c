package world

// Rect is an axis-aligned region used while carving the map.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner (exclusive for carving)
}

// NewRect creates a rectangle from an origin and a width/height.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// InInterior returns true if the point lies in the carved part of the
// rectangle, one cell in from each edge.
func (r Rect) InInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// within returns true if the whole rectangle fits a width × height grid.
func (r Rect) within(width, height int) bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X2 <= width && r.Y2 <= height &&
		r.X1 <= r.X2 && r.Y1 <= r.Y2
}
