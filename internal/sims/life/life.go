// Package life implements Conway's Game of Life on a bounded grid whose edges
// are hard walls: cells beyond the border are permanently dead.
package life

import (
	"strings"

	"golife/internal/core"
)

const (
	dead  uint8 = 0
	alive uint8 = 1
)

// Glyphs selects the characters used when rendering a grid as text.
type Glyphs struct {
	Alive rune
	Dead  rune
}

var (
	// ASCII renders live cells as 'X' and dead cells as '.'.
	ASCII = Glyphs{Alive: 'X', Dead: '.'}
	// Block renders live cells as a full block and dead cells as a space.
	Block = Glyphs{Alive: '█', Dead: ' '}
)

// Grid is a fixed-size Life board. The dimensions never change after New.
type Grid struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns an all-dead grid with the provided dimensions.
func New(w, h int) *Grid {
	return &Grid{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cur.W, H: g.cur.H} }

// Cells exposes the current generation in row-major order, 1 for alive.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// Alive reports whether the cell at column x, row y is alive. Positions
// outside the grid are dead.
func (g *Grid) Alive(x, y int) bool { return g.cur.At(x, y) == alive }

// Set changes the state of a single cell. Positions outside the grid are
// ignored.
func (g *Grid) Set(x, y int, on bool) {
	v := dead
	if on {
		v = alive
	}
	g.cur.Set(x, y, v)
}

// Neighbors counts the live cells among the eight cells surrounding (x, y).
func (g *Grid) Neighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			count += int(g.cur.At(x+dx, y+dy))
		}
	}
	return count
}

// Advance computes the next generation. Every cell of the new generation is
// derived from the previous one only; the buffers are swapped afterwards.
func (g *Grid) Advance() {
	w, h := g.cur.W, g.cur.H
	next := g.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.cur.Index(x, y)
			next[idx] = dead
			if survives(g.Alive(x, y), g.Neighbors(x, y)) {
				next[idx] = alive
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// survives applies the Life rule: a live cell stays alive with two or three
// neighbours, a dead cell is born with exactly three.
func survives(on bool, neighbors int) bool {
	return (on && neighbors == 2) || neighbors == 3
}

// Population returns the number of live cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.cur.Cells() {
		count += int(c)
	}
	return
}

// Render returns the grid as text, one glyph per cell, rows joined by '\n'.
func (g *Grid) Render(glyphs Glyphs) string {
	var b strings.Builder
	w, h := g.cur.W, g.cur.H
	b.Grow((w + 1) * h * 3)
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if g.Alive(x, y) {
				b.WriteRune(glyphs.Alive)
			} else {
				b.WriteRune(glyphs.Dead)
			}
		}
	}
	return b.String()
}

// String renders the grid with ASCII glyphs.
func (g *Grid) String() string { return g.Render(ASCII) }
