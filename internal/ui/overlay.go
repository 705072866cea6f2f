//go:build ebiten

package ui

import (
	"image/color"

	"golife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridLineScale is the smallest cell size at which grid lines stay legible.
const minGridLineScale = 4

// Overlay draws optional cell grid lines on top of the board. G toggles it.
type Overlay struct {
	size  core.Size
	scale int
	show  bool
	pixel *ebiten.Image
	color color.RGBA
}

// NewOverlay constructs an overlay for a board of the given size and scale.
// Lines start visible when cells are large enough.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{
		size:  size,
		scale: scale,
		show:  scale >= minGridLineScale,
		color: color.RGBA{R: 48, G: 48, B: 56, A: 255},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < 2 || o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	width := float64(o.size.W * o.scale)
	height := float64(o.size.H * o.scale)
	for x := 1; x < o.size.W; x++ {
		o.drawRect(screen, float64(x*o.scale), 0, 1, height)
	}
	for y := 1; y < o.size.H; y++ {
		o.drawRect(screen, 0, float64(y*o.scale), width, 1)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.color)
	screen.DrawImage(o.pixel, op)
}
