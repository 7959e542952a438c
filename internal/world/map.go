package world

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Map is a fixed-size grid of tiles indexed [x][y].
type Map struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = Wall()
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// InBounds returns true if the position lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at the given position.
// Positions off the grid read as walls.
func (m *Map) Tile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Wall()
	}
	return m.tiles[x][y]
}

// IsBlocked returns true if the position cannot be moved into.
func (m *Map) IsBlocked(x, y int) bool {
	return m.Tile(x, y).Blocked
}

// CarveRoom sets the interior of the rectangle to ground, leaving a
// one-cell wall on each edge. Cells off the grid are skipped.
// It returns the number of cells that changed.
func (m *Map) CarveRoom(room Rect) int {
	carved := 0
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			if m.carve(x, y) {
				carved++
			}
		}
	}
	return carved
}

// CarveHorizontalTunnel carves row y between x1 and x2 inclusive.
func (m *Map) CarveHorizontalTunnel(x1, x2, y int) int {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	carved := 0
	for x := x1; x <= x2; x++ {
		if m.carve(x, y) {
			carved++
		}
	}
	return carved
}

// CarveVerticalTunnel carves column x between y1 and y2 inclusive.
func (m *Map) CarveVerticalTunnel(y1, y2, x int) int {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	carved := 0
	for y := y1; y <= y2; y++ {
		if m.carve(x, y) {
			carved++
		}
	}
	return carved
}

// carve turns a single on-grid cell into ground and reports whether it changed.
func (m *Map) carve(x, y int) bool {
	if !m.InBounds(x, y) || m.tiles[x][y] == Ground() {
		return false
	}
	m.tiles[x][y] = Ground()
	return true
}
