//go:build ebiten

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"golife/internal/app"
	"golife/internal/config"
	"golife/internal/generator"
)

func runWindow(cfg *config.Config, gen *generator.Generator, scale int) error {
	game := app.New(gen, cfg.Parameters(), cfg.Delay(), cfg.Generations(), scale)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[runWindow] game loop failed")
	}
	return nil
}
