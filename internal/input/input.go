// Package input maps key presses to game actions.
package input

// KeyCode identifies a key independent of the terminal library.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune // Character for printable keys
	Alt  bool // Alt modifier held
}

// ActionKind is what a key press asks the game to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionToggleFullscreen
	ActionQuit
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is a resolved key press. DX and DY are set for ActionMove.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

// Resolve maps a key press to an action.
// Arrow keys move one cell on a single axis; unknown keys resolve to ActionNone.
func Resolve(key Key) Action {
	switch key.Code {
	case KeyUp:
		return Action{Kind: ActionMove, DX: 0, DY: -1}
	case KeyDown:
		return Action{Kind: ActionMove, DX: 0, DY: 1}
	case KeyLeft:
		return Action{Kind: ActionMove, DX: -1, DY: 0}
	case KeyRight:
		return Action{Kind: ActionMove, DX: 1, DY: 0}
	case KeyEnter:
		if key.Alt {
			return Action{Kind: ActionToggleFullscreen}
		}
	case KeyEscape:
		return Action{Kind: ActionQuit}
	}
	return Action{Kind: ActionNone}
}
