// Package world provides the tile map and its generator.
package world

// Tile describes a single map cell.
type Tile struct {
	Blocked    bool // Cannot be moved into
	BlockSight bool // Drawn with the wall background
}

// Ground returns an open floor tile.
func Ground() Tile {
	return Tile{Blocked: false, BlockSight: false}
}

// Wall returns a solid tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}
