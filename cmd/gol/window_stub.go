//go:build !ebiten

package main

import (
	"golife/internal/config"
	"golife/internal/generator"
)

func runWindow(*config.Config, *generator.Generator, int) error {
	return errWindowUnsupported
}
