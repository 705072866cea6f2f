// Command gol runs Conway's Game of Life from key=value arguments:
//
//	gol [flags] w=20 h=10 s=250 g=0 p=111001#0101
//	gol -renderer=window h=20 w=10 g=0 s=250 p=rnd
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"golife/internal/app"
	"golife/internal/args"
	"golife/internal/config"
	"golife/internal/console"
	"golife/internal/generator"
	rng "golife/pkg/core"
)

// Process exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var (
	errInterrupted       = errors.New("interrupted")
	errWindowUnsupported = errors.New("the window renderer requires building with the ebiten tag; re-run with `go run -tags ebiten ./cmd/gol`")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	opts := app.NewConfig()
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.Bind(fs)
	if err := fs.Parse(argv); err != nil {
		return exitUsage
	}
	if err := opts.Validate(); err != nil {
		console.Error(stderr, err.Error())
		return exitUsage
	}

	console.Welcome(stdout, "This is The Game of Life!")

	src := rng.NewTimeSeededRNG()
	if opts.Seed != 0 {
		src = rng.NewRNG(opts.Seed)
	}
	cfg := config.New(fs.Args(), src)
	if errs := cfg.Errs(); len(errs) > 0 {
		for _, err := range errs {
			report(stderr, err)
		}
		console.Error(stderr, "The game could not start.")
		return exitInvalid
	}
	cfg.FillGrid()
	cfg.Print(stdout)

	gen := generator.New(cfg.Grid(), opts.CellGlyphs())

	var err error
	switch opts.Renderer {
	case app.RendererWindow:
		err = runWindow(cfg, gen, opts.Scale)
	default:
		err = runConsole(cfg, gen, stdout, opts.Clear)
	}
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errInterrupted):
		log.Printf("stopped after %d generations", gen.Generation())
		return exitOK
	case errors.Is(err, errWindowUnsupported):
		console.Error(stderr, err.Error())
		return exitUsage
	default:
		log.Print(err)
		return exitInvalid
	}
}

// report prints unreadable arguments as errors and out-of-domain values as
// game exceptions.
func report(w io.Writer, err error) {
	cause := errors.Cause(err)
	switch cause {
	case args.ErrMissing, args.ErrRepeated, args.ErrEmptyValue, args.ErrNotInteger:
		console.Error(w, err.Error())
	default:
		console.Exception(w, err.Error())
	}
}
