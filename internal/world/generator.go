package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ruinwalk/internal/telemetry"
)

// ErrOutOfBounds is returned when a layout does not fit the map.
var ErrOutOfBounds = errors.New("layout exceeds map bounds")

// Tunnel is a straight corridor carved along one row or column.
type Tunnel struct {
	From, To int  // Range along the corridor, inclusive, in either order
	At       int  // Fixed row (horizontal) or column (vertical)
	Vertical bool // Carve along a column instead of a row
}

// Layout is the set of rooms and tunnels carved into a fresh map.
type Layout struct {
	Rooms   []Rect
	Tunnels []Tunnel
}

// DefaultLayout returns the two-room map: a pair of rooms joined by a
// horizontal tunnel on row 23.
func DefaultLayout() Layout {
	return Layout{
		Rooms: []Rect{
			NewRect(20, 15, 10, 15),
			NewRect(50, 15, 10, 15),
		},
		Tunnels: []Tunnel{
			{From: 25, To: 55, At: 23},
		},
	}
}

// Validate checks that every room and tunnel fits a width × height map.
func (l Layout) Validate(width, height int) error {
	for i, room := range l.Rooms {
		if !room.within(width, height) {
			return fmt.Errorf("room %d (%d,%d)-(%d,%d): %w",
				i, room.X1, room.Y1, room.X2, room.Y2, ErrOutOfBounds)
		}
	}
	for i, t := range l.Tunnels {
		length, across := width, height
		if t.Vertical {
			length, across = height, width
		}
		lo, hi := min(t.From, t.To), max(t.From, t.To)
		if lo < 0 || hi >= length || t.At < 0 || t.At >= across {
			return fmt.Errorf("tunnel %d (%d..%d at %d): %w", i, t.From, t.To, t.At, ErrOutOfBounds)
		}
	}
	return nil
}

// Generate builds a width × height map using the default layout.
func Generate(ctx context.Context, width, height int) (*Map, error) {
	return GenerateLayout(ctx, width, height, DefaultLayout())
}

// GenerateLayout builds a map of the given size, carving the layout's
// rooms first and then its tunnels.
func GenerateLayout(ctx context.Context, width, height int, layout Layout) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	if err := layout.Validate(width, height); err != nil {
		span.RecordError(err)
		return nil, err
	}

	m := NewMap(width, height)
	carved := 0
	for _, room := range layout.Rooms {
		carved += m.CarveRoom(room)
	}
	for _, t := range layout.Tunnels {
		if t.Vertical {
			carved += m.CarveVerticalTunnel(t.From, t.To, t.At)
		} else {
			carved += m.CarveHorizontalTunnel(t.From, t.To, t.At)
		}
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.room_count", len(layout.Rooms)),
		attribute.Int("map.carved_cells", carved),
	)

	return m, nil
}
