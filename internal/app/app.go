//go:build ebiten

package app

import (
	"image/color"
	"time"

	"gridlife/internal/core"
	"gridlife/internal/render"
	"gridlife/internal/sim"
	"gridlife/internal/ui"
	rng "gridlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Mode selects how input is interpreted.
type Mode int

const (
	// ModePlacing lets the user paint live cells; the generation pipeline
	// is inert.
	ModePlacing Mode = iota
	// ModeOngoing runs the scheduler, advancing the simulation on its tick.
	ModeOngoing
)

func (m Mode) String() string {
	if m == ModeOngoing {
		return "ongoing"
	}
	return "placing"
}

// Game adapts the simulation pipeline to the ebiten.Game interface.
type Game struct {
	cfg       *Config
	board     *render.Board
	scheduler *sim.Scheduler
	painter   *render.GridPainter
	camera    *Camera
	hud       *ui.HUD
	rand      *rng.RNG
	mode      Mode

	aliveColor color.Color
	deadColor  color.Color
	background color.Color
}

// New wires the grid store, engine, scheduler and board together for the
// provided configuration.
func New(cfg *Config) (*Game, error) {
	grid, err := core.NewGrid(cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, err
	}
	board := render.NewBoard(grid.Size())
	engine := sim.NewEngine(grid)
	scheduler := sim.NewScheduler(engine, board, board, core.NewTickTimer(cfg.Tick))

	return &Game{
		cfg:        cfg,
		board:      board,
		scheduler:  scheduler,
		painter:    render.NewGridPainter(grid.Size()),
		camera:     NewCamera(cfg.CellSize),
		hud:        ui.NewHUD(),
		rand:       rng.NewRNG(cfg.Seed),
		aliveColor: color.Black,
		deadColor:  color.White,
		background: color.RGBA{R: 40, G: 40, B: 40, A: 255},
	}, nil
}

// Update handles per-frame input and, in ongoing mode, drives the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleMode()
	}

	g.handleCamera()

	switch g.mode {
	case ModePlacing:
		g.handlePlacement()
	case ModeOngoing:
		g.scheduler.Pass(time.Now())
	}
	return nil
}

func (g *Game) toggleMode() {
	if g.mode == ModePlacing {
		g.mode = ModeOngoing
		return
	}
	g.mode = ModePlacing
}

func (g *Game) handleCamera() {
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camera.Pan(1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camera.Pan(-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camera.Pan(0, -1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camera.Pan(0, 1)
	}
	_, wheelY := ebiten.Wheel()
	g.camera.ZoomBy(wheelY)
}

func (g *Game) handlePlacement() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if p, ok := g.cursorCell(); ok {
			g.board.SetAlive(p.X, p.Y)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Randomize(g.rand, g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if p, ok := g.cursorCell(); ok {
			g.board.StampGlider(p)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if p, ok := g.cursorCell(); ok {
			g.board.StampBlinker(p)
		}
	}
}

func (g *Game) cursorCell() (core.Point, bool) {
	mx, my := ebiten.CursorPosition()
	return g.camera.ScreenToGrid(float64(mx), float64(my), g.board.Size())
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.board.Cells(), g.aliveColor, g.deadColor,
		g.cfg.CellSize, g.camera.OffsetX, g.camera.OffsetY, g.camera.Zoom)
	g.hud.Draw(screen, ui.Status{
		Mode:       g.mode.String(),
		Generation: g.scheduler.Generations(),
		Population: g.board.Population(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.cfg.CellSize, g.cfg.Rows * g.cfg.CellSize
}
