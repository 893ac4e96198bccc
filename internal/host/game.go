package host

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/render"
	"github.com/l1jgo/planter/internal/system"
	"github.com/l1jgo/planter/internal/world"
	"go.uber.org/zap"
)

// Game adapts the system pipeline to ebiten.Game. One ebiten Update is one
// simulation tick.
type Game struct {
	runner *coresys.Runner
	input  *system.InputSystem
	time   *system.TimeSystem
	draw   *renderer

	width, height int
	title         string
	log           *zap.Logger
}

// Options are the window settings.
type Options struct {
	Width, Height int
	Title         string
	TickRate      int
	Seed          int64 // tile map seed
}

func NewGame(ws *world.State, r *coresys.Runner, opts Options, log *zap.Logger) (*Game, error) {
	input, err := coresys.Require[*system.InputSystem](r)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	ts, err := coresys.Require[*system.TimeSystem](r)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	grid, err := coresys.Require[*system.GridSystem](r)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	tiles := render.NewTileMap(rand.New(rand.NewSource(opts.Seed)), render.MapTiles)
	return &Game{
		runner: r,
		input:  input,
		time:   ts,
		draw:   newRenderer(ws, grid.Grid(), NewImages(), tiles),
		width:  opts.Width,
		height: opts.Height,
		title:  opts.Title,
		log:    log,
	}, nil
}

func (g *Game) Update() error {
	g.runner.Tick()
	if g.input.Snapshot().Quit {
		g.log.Info("quit requested", zap.Uint64("ticks", g.runner.Ticks()))
		return ebiten.Termination
	}
	if g.runner.Ticks()%30 == 0 {
		ebiten.SetWindowTitle(render.Title(g.title, g.time.FPS()))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.draw.draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func Run(g *Game, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowClosingHandled(true)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
