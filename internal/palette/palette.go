// Package palette holds the fixed colors used to draw the map and entities.
package palette

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// DarkWall is the background of sight-blocking tiles.
	DarkWall = MustParseHexColor("#000064")
	// DarkGround is the background of open tiles.
	DarkGround = MustParseHexColor("#323296")

	White  = MustParseHexColor("#FFFFFF")
	Yellow = MustParseHexColor("#FFFF00")

	// StatusText is used for the hint line below the map.
	StatusText = MustParseHexColor("#A0A0A0")
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
