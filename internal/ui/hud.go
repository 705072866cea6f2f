//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// Status is the per-frame information shown above the parameters.
type Status struct {
	Generation int
	Population int
	Paused     bool
	Finished   bool
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	width    int
	panel    *ebiten.Image
	height   int
	snapshot core.ParameterSnapshot
	status   Status
}

// NewHUD constructs a HUD listing the parameters in snapshot.
func NewHUD(snapshot core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, snapshot: snapshot}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records the status to show on the next Draw.
func (h *HUD) Update(status Status) {
	if h == nil {
		return
	}
	h.status = status
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	title := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	muted := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + lineHeight
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, title)
	y += lineHeight * 2
	text.Draw(h.panel, fmt.Sprintf("Generation %d", h.status.Generation), face, panelPadding, y, label)
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("Population %d", h.status.Population), face, panelPadding, y, label)
	y += lineHeight

	switch {
	case h.status.Finished:
		text.Draw(h.panel, "Finished", face, panelPadding, y, muted)
	case h.status.Paused:
		text.Draw(h.panel, "Paused", face, panelPadding, y, muted)
	}
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		y += lineHeight
		text.Draw(h.panel, group.Name, face, panelPadding, y, title)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, p.Value), face, panelPadding, y, label)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
