package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"golife/internal/generator"
)

// clearScreen moves the cursor home and erases the terminal.
const clearScreen = "\033[H\033[2J"

// Console prints frames to a terminal at a fixed cadence.
type Console struct {
	Out io.Writer
	// Delay is the pause between frames.
	Delay time.Duration
	// Generations bounds the number of frames; zero runs until ctx ends.
	Generations int
	// Clear redraws in place instead of scrolling.
	Clear bool
}

// Run pulls frames from gen until the generation limit is reached or ctx is
// cancelled. It returns ctx.Err() when stopped early.
func (c *Console) Run(ctx context.Context, gen *generator.Generator) error {
	var tick <-chan time.Time
	if c.Delay > 0 {
		ticker := time.NewTicker(c.Delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	shown := 0
	for frame := range gen.Frames(c.Generations) {
		if err := c.draw(frame, gen.Generation()-1); err != nil {
			return err
		}
		shown++
		if c.Generations > 0 && shown == c.Generations {
			break
		}
		if err := wait(ctx, tick); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) draw(frame string, generation int) error {
	prefix := ""
	if c.Clear {
		prefix = clearScreen
	}
	if _, err := fmt.Fprintf(c.Out, "%s%s\nGeneration %d\n", prefix, frame, generation); err != nil {
		return errors.Wrap(err, "[Console.draw] failed to write frame")
	}
	return nil
}

func wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}
