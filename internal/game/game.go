package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/ruinwalk/internal/entity"
	"github.com/samdwyer/ruinwalk/internal/input"
	"github.com/samdwyer/ruinwalk/internal/logging"
	"github.com/samdwyer/ruinwalk/internal/palette"
	"github.com/samdwyer/ruinwalk/internal/telemetry"
	"github.com/samdwyer/ruinwalk/internal/ui"
	"github.com/samdwyer/ruinwalk/internal/world"
)

// Player start on the tunnel row of the first room.
const (
	playerStartX = 25
	playerStartY = 23
)

// console is the terminal the game owns for one run. *ui.Screen satisfies it.
type console interface {
	ui.Display
	WaitForKeypress() (input.Key, bool)
	Closed() bool
	Fullscreen() bool
	SetFullscreen(on bool)
	Interrupt()
	Close()
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	console  console
	renderer *ui.Renderer
	dungeon  *world.Map       // nil in StagePlain
	entities []*entity.Entity // entities[0] is the player
	state    State
	tracer   trace.Tracer
	log      *logrus.Entry
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen(cfg.Title, cfg.FPSLimit)
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newGame(cfg, screen), nil
}

func newGame(cfg Config, c console) *Game {
	width, height := world.DefaultWidth, world.DefaultHeight
	if cfg.Stage == StagePlain {
		width, height = cfg.ScreenWidth, cfg.ScreenHeight
	}

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		cfg:      cfg,
		console:  c,
		renderer: ui.NewRenderer(c, width, height),
		state:    StateRunning,
		tracer:   tracer,
		log:      logging.Log.WithField("component", "game"),
	}
}

// Run executes the main game loop until the player quits, the screen is
// closed or ctx is cancelled. The console is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.console.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	// The key read is the loop's only suspension point; wake it on cancel.
	stop := context.AfterFunc(ctx, g.console.Interrupt)
	defer stop()

	for g.state == StateRunning && !g.console.Closed() {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.renderer.Render(g.dungeon, g.entities)

		key, ok := g.console.WaitForKeypress()
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			break
		}
		if g.handleKey(ctx, key) {
			g.state = StateTerminated
		}
	}

	g.log.WithField("state", g.state).Info("game loop ended")
	return nil
}

// init builds the map and places the entities.
func (g *Game) init(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	npc := entity.New(g.cfg.ScreenWidth/2-5, g.cfg.ScreenHeight/2, 'O', palette.Yellow)

	switch g.cfg.Stage {
	case StagePlain:
		player := entity.New(g.cfg.ScreenWidth/2, g.cfg.ScreenHeight/2, '@', palette.White)
		g.entities = []*entity.Entity{player, npc}
	default:
		m, err := world.Generate(ctx, world.DefaultWidth, world.DefaultHeight)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("generate map: %w", err)
		}
		g.dungeon = m
		player := entity.New(playerStartX, playerStartY, '@', palette.White)
		g.entities = []*entity.Entity{player, npc}
	}

	if w, h := g.console.Size(); w < g.cfg.ScreenWidth || h < g.cfg.ScreenHeight {
		g.log.WithFields(logrus.Fields{
			"terminal_width":  w,
			"terminal_height": h,
			"want_width":      g.cfg.ScreenWidth,
			"want_height":     g.cfg.ScreenHeight,
		}).Warn("terminal smaller than the game screen")
	}

	player := g.entities[0]
	span.SetAttributes(
		attribute.String("game.stage", string(g.cfg.Stage)),
		attribute.Int("game.entities", len(g.entities)),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
	)
	g.log.WithFields(logrus.Fields{
		"stage":    g.cfg.Stage,
		"player_x": player.X,
		"player_y": player.Y,
	}).Info("game initialized")

	return nil
}

// handleKey applies one key press and returns true if the loop should end.
func (g *Game) handleKey(ctx context.Context, key input.Key) bool {
	action := input.Resolve(key)

	switch action.Kind {
	case input.ActionMove:
		g.movePlayer(ctx, action.DX, action.DY)
	case input.ActionToggleFullscreen:
		g.toggleFullscreen()
	case input.ActionQuit:
		return true
	}

	return false
}

// movePlayer moves the player, checking against the map when there is one.
func (g *Game) movePlayer(ctx context.Context, dx, dy int) {
	_, span := g.tracer.Start(ctx, "player.move")
	defer span.End()

	// A nil *world.Map must stay a nil Blocker so the move is unchecked.
	var blocker entity.Blocker
	if g.dungeon != nil {
		blocker = g.dungeon
	}

	player := g.entities[0]
	moved := player.MoveBy(dx, dy, blocker)

	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Bool("move.blocked", !moved),
		attribute.Int("player.x", player.X),
		attribute.Int("player.y", player.Y),
	)
	if !moved {
		g.log.WithFields(logrus.Fields{
			"x": player.X + dx,
			"y": player.Y + dy,
		}).Debug("move blocked")
	}
}

// toggleFullscreen flips fullscreen mode; the status line shows only when windowed.
func (g *Game) toggleFullscreen() {
	on := !g.console.Fullscreen()
	g.console.SetFullscreen(on)
	g.renderer.ShowStatus = !on
	g.log.WithField("fullscreen", on).Info("toggled fullscreen")
}

// Player returns the controlled entity.
func (g *Game) Player() *entity.Entity {
	if len(g.entities) == 0 {
		return nil
	}
	return g.entities[0]
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}
