package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ruinwalk/internal/input"
)

// translateKey converts a tcell key press into an input.Key.
func translateKey(k tcell.Key, r rune, mod tcell.ModMask) input.Key {
	key := input.Key{Alt: mod&tcell.ModAlt != 0}

	switch k {
	case tcell.KeyUp:
		key.Code = input.KeyUp
	case tcell.KeyDown:
		key.Code = input.KeyDown
	case tcell.KeyLeft:
		key.Code = input.KeyLeft
	case tcell.KeyRight:
		key.Code = input.KeyRight
	case tcell.KeyEnter:
		key.Code = input.KeyEnter
	case tcell.KeyEscape:
		key.Code = input.KeyEscape
	case tcell.KeyRune:
		key.Code = input.KeyOther
		key.Rune = r
	default:
		key.Code = input.KeyOther
	}

	return key
}
