package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"golife/internal/config"
	"golife/internal/generator"
	"golife/internal/render"
)

// runConsole prints frames until the generation limit is reached or the
// process receives SIGINT/SIGTERM.
func runConsole(cfg *config.Config, gen *generator.Generator, out io.Writer, redraw bool) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	return superviseConsole(context.Background(), sigs, &render.Console{
		Out:         out,
		Delay:       cfg.Delay(),
		Generations: cfg.Generations(),
		Clear:       redraw,
	}, gen)
}

func superviseConsole(parent context.Context, sigs <-chan os.Signal, c *render.Console, gen *generator.Generator) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return c.Run(ctx, gen)
	})
	eg.Go(func() error {
		select {
		case <-sigs:
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	return eg.Wait()
}
