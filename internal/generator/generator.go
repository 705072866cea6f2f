// Package generator turns a grid into a sequence of rendered frames.
package generator

import (
	"iter"

	"golife/internal/sims/life"
)

// Generator emits one frame per call and advances the grid afterwards, so the
// frame returned by the n-th call shows generation n-1.
type Generator struct {
	grid       *life.Grid
	glyphs     life.Glyphs
	generation int
}

// New wraps g. The generator owns g from now on and mutates it on every frame.
func New(g *life.Grid, glyphs life.Glyphs) *Generator {
	return &Generator{grid: g, glyphs: glyphs}
}

// Next renders the current generation, then advances the grid by one.
func (gen *Generator) Next() string {
	frame := gen.grid.Render(gen.glyphs)
	gen.grid.Advance()
	gen.generation++
	return frame
}

// Generation returns the number of frames emitted so far.
func (gen *Generator) Generation() int { return gen.generation }

// Glyphs returns the glyph set frames are rendered with.
func (gen *Generator) Glyphs() life.Glyphs { return gen.glyphs }

// Grid exposes the wrapped grid for pixel renderers.
func (gen *Generator) Grid() *life.Grid { return gen.grid }

// Frames returns a single-use sequence of frames. A positive limit stops the
// sequence after that many frames; zero or less never stops on its own.
// Pulling a frame advances the grid.
func (gen *Generator) Frames(limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := 0; limit <= 0 || n < limit; n++ {
			if !yield(gen.Next()) {
				return
			}
		}
	}
}
