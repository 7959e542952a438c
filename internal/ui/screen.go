// Package ui provides terminal rendering and input using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ruinwalk/internal/input"
)

// Screen owns the terminal for the lifetime of a game. It wraps
// tcell.Screen with the blocking key read, the fullscreen flag and the
// frame cap used by the game loop.
type Screen struct {
	screen     tcell.Screen
	limiter    *FrameLimiter
	fullscreen bool
	closed     bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(title string, fps int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return newScreen(s, title, fps), nil
}

func newScreen(s tcell.Screen, title string, fps int) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.SetTitle(title)
	s.Clear()
	return &Screen{
		screen:  s,
		limiter: NewFrameLimiter(fps),
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// Closed returns true once the screen has been finalized.
func (s *Screen) Closed() bool {
	return s.closed
}

// WaitForKeypress blocks until a key is pressed. Resize events redraw the
// screen and keep waiting. It returns false if the screen was closed or
// the wait was interrupted.
func (s *Screen) WaitForKeypress() (input.Key, bool) {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			s.closed = true
			return input.Key{}, false
		case *tcell.EventInterrupt:
			return input.Key{}, false
		case *tcell.EventKey:
			return translateKey(ev.Key(), ev.Rune(), ev.Modifiers()), true
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Interrupt wakes a pending WaitForKeypress. Safe to call from any goroutine.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Show presents the screen buffer, waiting out the frame cap first.
func (s *Screen) Show() {
	s.limiter.Wait()
	s.screen.Show()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Fullscreen reports whether the status line is hidden.
func (s *Screen) Fullscreen() bool {
	return s.fullscreen
}

// SetFullscreen sets fullscreen mode and forces a complete redraw.
// A terminal cannot change its own window mode, so fullscreen only
// gives the map the whole screen.
func (s *Screen) SetFullscreen(on bool) {
	s.fullscreen = on
	s.screen.Sync()
}
