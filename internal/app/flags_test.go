package app

import (
	"flag"
	"testing"

	"github.com/pkg/errors"

	"golife/internal/sims/life"
)

func TestBindParsesFlagsAndLeavesTokens(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-renderer=window", "-seed=7", "-glyphs=block", "w=10", "h=10"})
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if cfg.Renderer != RendererWindow || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.CellGlyphs() != life.Block {
		t.Fatalf("CellGlyphs() = %+v, want block", cfg.CellGlyphs())
	}
	if rest := fs.Args(); len(rest) != 2 || rest[0] != "w=10" {
		t.Fatalf("Args() = %v, want the game tokens", rest)
	}
}

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.CellGlyphs() != life.ASCII {
		t.Fatal("default glyphs should be ASCII")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Renderer = "swing"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownRenderer) {
		t.Fatalf("Validate() = %v, want ErrUnknownRenderer", err)
	}

	cfg = NewConfig()
	cfg.Scale = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero scale should be rejected")
	}
}
