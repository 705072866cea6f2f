package app

import (
	"flag"

	"github.com/pkg/errors"

	"golife/internal/sims/life"
)

// Renderer names accepted by -renderer.
const (
	RendererConsole = "console"
	RendererWindow  = "window"
)

// ErrUnknownRenderer is returned by Validate for an unsupported -renderer.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Config represents the command-line flags that shape how a game is shown.
// Game settings themselves arrive as key=value tokens after the flags.
type Config struct {
	Renderer string
	Scale    int
	Seed     int64
	Glyphs   string
	Clear    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Renderer: RendererConsole, Scale: 16, Glyphs: "ascii", Clear: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "frame renderer: console or window")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for p=rnd populations (0 picks one from the clock)")
	fs.StringVar(&c.Glyphs, "glyphs", c.Glyphs, "console cell glyphs: ascii or block")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "redraw console frames in place")
}

// Validate rejects flag values the program cannot honour.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererConsole, RendererWindow:
	default:
		return errors.Wrapf(ErrUnknownRenderer, "%q", c.Renderer)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale has to be positive, but %d given", c.Scale)
	}
	return nil
}

// CellGlyphs maps the -glyphs flag to a glyph set, defaulting to ASCII.
func (c *Config) CellGlyphs() life.Glyphs {
	if c.Glyphs == "block" {
		return life.Block
	}
	return life.ASCII
}
