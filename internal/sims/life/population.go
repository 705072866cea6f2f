package life

import (
	"strings"

	"golife/pkg/core"
)

const (
	// RowDelimiter separates row segments in a population string.
	RowDelimiter = '#'
	// AliveSymbol marks a live cell in a population string.
	AliveSymbol = '1'
	// DeadSymbol marks a dead cell in a population string.
	DeadSymbol = '0'
)

// Decode replaces the grid contents with the layout described by population.
// Rows are separated by RowDelimiter; any symbol other than AliveSymbol is
// dead and cells a short row does not reach stay dead. The population must be
// validated beforehand: symbols that land outside the grid are dropped.
func (g *Grid) Decode(population string) {
	g.cur.Clear()
	row, col := 0, 0
	for _, r := range population {
		if r == RowDelimiter {
			row++
			col = 0
			continue
		}
		g.Set(col, row, r == AliveSymbol)
		col++
	}
}

// Encode returns the population string for the current generation, one full
// width segment per row.
func (g *Grid) Encode() string {
	var b strings.Builder
	w, h := g.cur.W, g.cur.H
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte(RowDelimiter)
		}
		for x := 0; x < w; x++ {
			if g.Alive(x, y) {
				b.WriteByte(AliveSymbol)
			} else {
				b.WriteByte(DeadSymbol)
			}
		}
	}
	return b.String()
}

// RandomPopulation samples every cell of a w*h grid independently with equal
// odds of being alive. The delimiter goes between rows, never after the last.
func RandomPopulation(rng *core.RNG, w, h int) string {
	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte(RowDelimiter)
		}
		for x := 0; x < w; x++ {
			if rng.Bool() {
				b.WriteByte(AliveSymbol)
			} else {
				b.WriteByte(DeadSymbol)
			}
		}
	}
	return b.String()
}
