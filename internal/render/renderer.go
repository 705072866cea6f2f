//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws binary cell buffers as a scaled image, one pixel per cell
// before scaling.
type GridPainter struct {
	cells   int
	img     *ebiten.Image
	buf     []byte
	on, off color.Color
	op      ebiten.DrawImageOptions
}

// NewGridPainter allocates a painter for a w*h board drawn at scale, with live
// cells in on and dead cells in off.
func NewGridPainter(w, h, scale int, on, off color.Color) *GridPainter {
	gp := &GridPainter{
		cells: w * h,
		img:   ebiten.NewImage(w, h),
		buf:   make([]byte, 4*w*h),
		on:    on,
		off:   off,
	}
	gp.op.GeoM.Scale(float64(scale), float64(scale))
	return gp
}

// Draw paints cells onto dst. Buffers that do not cover the whole board, such
// as before the first frame arrives, are skipped.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.cells {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &gp.op)
}
