//go:build ebiten

package app

import (
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/generator"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width in pixels of the side panel.
const hudWidth = 180

// Game adapts a frame generator to the ebiten.Game interface. Frames are
// pulled at the configured delay regardless of the window's frame rate.
type Game struct {
	gen     *generator.Generator
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	step    *core.FixedStep
	size    core.Size

	cells []uint8
	limit int

	scale    int
	paused   bool
	tickOnce bool
	finished bool
}

// New constructs a Game pulling frames from gen every delay, stopping after
// limit frames when limit is positive.
func New(gen *generator.Generator, params core.ParameterSnapshot, delay time.Duration, limit, scale int) *Game {
	size := gen.Grid().Size()
	return &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H, scale, color.White, color.Black),
		overlay: ui.NewOverlay(size, scale),
		hud:     ui.NewHUD(params, hudWidth),
		step:    core.NewFixedStep(delay),
		size:    size,
		cells:   make([]uint8, 0, size.Area()),
		limit:   limit,
		scale:   scale,
	}
}

// WindowSize returns the outer window size for the board plus the HUD.
func (g *Game) WindowSize() (int, int) {
	return g.size.W*g.scale + g.hud.Width(), g.size.H * g.scale
}

// Update handles input and pulls the next frame when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	g.overlay.Update()

	due := g.step.ShouldStep()
	if !g.finished && ((!g.paused && due) || g.tickOnce) {
		frame := g.gen.Next()
		g.cells = render.FrameCells(frame, g.gen.Glyphs(), g.cells)
		g.finished = g.limit > 0 && g.gen.Generation() >= g.limit
	}
	g.tickOnce = false

	g.hud.Update(ui.Status{
		Generation: max(g.gen.Generation()-1, 0),
		Population: population(g.cells),
		Paused:     g.paused,
		Finished:   g.finished,
	})
	return nil
}

// Draw renders the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cells)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size.W*g.scale, g.size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

func population(cells []uint8) (n int) {
	for _, c := range cells {
		n += int(c)
	}
	return
}
