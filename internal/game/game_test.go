package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ruinwalk/internal/input"
)

// fakeConsole replays scripted keys and reports closed once they run out.
type fakeConsole struct {
	keys       []input.Key
	fullscreen bool
	closed     bool
	shows      int
	syncs      int
}

func (c *fakeConsole) SetContent(x, y int, r rune, style tcell.Style) {}
func (c *fakeConsole) Size() (int, int)                               { return 80, 50 }
func (c *fakeConsole) Show()                                          { c.shows++ }
func (c *fakeConsole) Closed() bool                                   { return c.closed }
func (c *fakeConsole) Fullscreen() bool                               { return c.fullscreen }
func (c *fakeConsole) Close()                                         { c.closed = true }
func (c *fakeConsole) Interrupt()                                     {}

func (c *fakeConsole) SetFullscreen(on bool) {
	c.fullscreen = on
	c.syncs++
}

func (c *fakeConsole) WaitForKeypress() (input.Key, bool) {
	if len(c.keys) == 0 {
		c.closed = true
		return input.Key{}, false
	}
	key := c.keys[0]
	c.keys = c.keys[1:]
	return key, true
}

// blockingConsole waits for a key that never comes until it is interrupted.
type blockingConsole struct {
	fakeConsole
	waiting   chan struct{} // closed when the first read starts
	interrupt chan struct{}
	once      sync.Once
}

func newBlockingConsole() *blockingConsole {
	return &blockingConsole{
		waiting:   make(chan struct{}),
		interrupt: make(chan struct{}),
	}
}

func (c *blockingConsole) WaitForKeypress() (input.Key, bool) {
	select {
	case <-c.waiting:
	default:
		close(c.waiting)
	}
	<-c.interrupt
	return input.Key{}, false
}

func (c *blockingConsole) Interrupt() {
	c.once.Do(func() { close(c.interrupt) })
}

var (
	keyUp       = input.Key{Code: input.KeyUp}
	keyDown     = input.Key{Code: input.KeyDown}
	keyLeft     = input.Key{Code: input.KeyLeft}
	keyRight    = input.Key{Code: input.KeyRight}
	keyEscape   = input.Key{Code: input.KeyEscape}
	keyAltEnter = input.Key{Code: input.KeyEnter, Alt: true}
)

func repeat(key input.Key, n int) []input.Key {
	keys := make([]input.Key, n)
	for i := range keys {
		keys[i] = key
	}
	return keys
}

func newTestGame(t *testing.T, stage Stage, keys ...input.Key) (*Game, *fakeConsole) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Stage = stage
	c := &fakeConsole{keys: keys}
	return newGame(cfg, c), c
}

func TestHandleKeyEscapeTerminates(t *testing.T) {
	g, _ := newTestGame(t, StageDungeon)
	if err := g.init(context.Background()); err != nil {
		t.Fatalf("init() error: %v", err)
	}

	if !g.handleKey(context.Background(), keyEscape) {
		t.Error("handleKey(Escape) = false, want true")
	}
}

func TestHandleKeyOtherKeysContinue(t *testing.T) {
	keys := []input.Key{
		keyUp, keyDown, keyLeft, keyRight,
		{Code: input.KeyEnter},
		{Code: input.KeyOther, Rune: 'q'},
		{Code: input.KeyOther},
	}

	g, _ := newTestGame(t, StageDungeon)
	if err := g.init(context.Background()); err != nil {
		t.Fatalf("init() error: %v", err)
	}

	for _, key := range keys {
		if g.handleKey(context.Background(), key) {
			t.Errorf("handleKey(%+v) = true, want false", key)
		}
	}
}

func TestToggleFullscreenTwiceRestores(t *testing.T) {
	g, c := newTestGame(t, StageDungeon)
	if err := g.init(context.Background()); err != nil {
		t.Fatalf("init() error: %v", err)
	}

	if g.handleKey(context.Background(), keyAltEnter) {
		t.Error("handleKey(Alt+Enter) = true, want false")
	}
	if !c.fullscreen || g.renderer.ShowStatus {
		t.Errorf("after one toggle fullscreen=%v status=%v, want true/false", c.fullscreen, g.renderer.ShowStatus)
	}

	g.handleKey(context.Background(), keyAltEnter)
	if c.fullscreen || !g.renderer.ShowStatus {
		t.Errorf("after two toggles fullscreen=%v status=%v, want false/true", c.fullscreen, g.renderer.ShowStatus)
	}
	if c.syncs != 2 {
		t.Errorf("SetFullscreen called %d times, want 2", c.syncs)
	}
}

func TestRunDungeonWalk(t *testing.T) {
	tests := []struct {
		name         string
		keys         []input.Key
		wantX, wantY int
	}{
		{"stay put", nil, 25, 23},
		{"tunnel to far room", repeat(keyRight, 30), 55, 23},
		{"east wall off the tunnel row", append([]input.Key{keyUp}, repeat(keyRight, 10)...), 29, 22},
		{"west wall", repeat(keyLeft, 10), 21, 23},
		{"north wall", repeat(keyUp, 20), 25, 16},
		{"south wall", repeat(keyDown, 20), 25, 29},
		{"out and back", append(repeat(keyRight, 5), repeat(keyLeft, 5)...), 25, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c := newTestGame(t, StageDungeon, append(tt.keys, keyEscape)...)

			if err := g.Run(context.Background()); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if p := g.Player(); p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("player at (%d,%d), want (%d,%d)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if g.State() != StateTerminated {
				t.Errorf("State() = %v, want terminated", g.State())
			}
			if len(c.keys) != 0 {
				t.Errorf("%d keys left unread after Escape", len(c.keys))
			}
			if c.shows != len(tt.keys)+1 {
				t.Errorf("presented %d frames, want %d", c.shows, len(tt.keys)+1)
			}
			if !c.closed {
				t.Error("console not closed after Run()")
			}
		})
	}
}

func TestRunStopsAtEscape(t *testing.T) {
	g, c := newTestGame(t, StageDungeon, keyRight, keyEscape, keyRight, keyRight)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if p := g.Player(); p.X != 26 {
		t.Errorf("player x = %d, want 26", p.X)
	}
	if len(c.keys) != 2 {
		t.Errorf("%d keys left unread, want 2", len(c.keys))
	}
}

func TestRunEndsWhenConsoleCloses(t *testing.T) {
	g, _ := newTestGame(t, StageDungeon, keyRight)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if g.State() != StateRunning {
		t.Errorf("State() = %v, want running when the console closes", g.State())
	}
}

func TestRunCancelledContext(t *testing.T) {
	g, c := newTestGame(t, StageDungeon, keyRight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if c.shows != 0 {
		t.Errorf("presented %d frames after cancel, want 0", c.shows)
	}
}

func TestRunCancelWhileWaitingForKey(t *testing.T) {
	c := newBlockingConsole()
	g := newGame(DefaultConfig(), c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	select {
	case <-c.waiting:
	case <-time.After(time.Second):
		t.Fatal("Run() never started waiting for a key")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() still waiting for a key 1s after cancel")
	}

	if c.shows != 1 {
		t.Errorf("presented %d frames, want 1", c.shows)
	}
	if !c.closed {
		t.Error("console not closed after Run()")
	}
}

func TestRunPlainStageMovesFreely(t *testing.T) {
	keys := append(repeat(keyLeft, 45), repeat(keyUp, 30)...)
	g, _ := newTestGame(t, StagePlain, append(keys, keyEscape)...)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if g.dungeon != nil {
		t.Error("plain stage generated a map")
	}
	if p := g.Player(); p.X != 40-45 || p.Y != 25-30 {
		t.Errorf("player at (%d,%d), want (%d,%d)", p.X, p.Y, 40-45, 25-30)
	}
}

func TestInitPlacesEntities(t *testing.T) {
	tests := []struct {
		stage            Stage
		playerX, playerY int
	}{
		{StageDungeon, 25, 23},
		{StagePlain, 40, 25},
	}

	for _, tt := range tests {
		g, _ := newTestGame(t, tt.stage)
		if err := g.init(context.Background()); err != nil {
			t.Fatalf("init() error: %v", err)
		}

		if len(g.entities) != 2 {
			t.Fatalf("%s: %d entities, want 2", tt.stage, len(g.entities))
		}
		if p := g.entities[0]; p.X != tt.playerX || p.Y != tt.playerY || p.Glyph != '@' {
			t.Errorf("%s: player = %+v, want '@' at (%d,%d)", tt.stage, p, tt.playerX, tt.playerY)
		}
		if npc := g.entities[1]; npc.X != 35 || npc.Y != 25 || npc.Glyph != 'O' {
			t.Errorf("%s: npc = %+v, want 'O' at (35,25)", tt.stage, npc)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateRunning, "running"},
		{StateTerminated, "terminated"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
