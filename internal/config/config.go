// Package config turns raw game tokens into a validated configuration and the
// initial grid.
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"golife/internal/args"
	"golife/internal/core"
	"golife/internal/sims/life"
	"golife/internal/validate"
	rng "golife/pkg/core"
)

// Token keys accepted on the command line.
const (
	WidthKey       = 'w'
	HeightKey      = 'h'
	SpeedKey       = 's'
	GenerationsKey = 'g'
	PopulationKey  = 'p'
)

// RandomPopulation is the population value that requests a random layout.
const RandomPopulation = "rnd"

// Config holds the game settings read from the command line. Fields are fixed
// at construction; read failures are kept and reported by Err.
type Config struct {
	width       int
	height      int
	speed       int
	generations int
	population  string

	readErrs []error
	grid     *life.Grid
}

// New reads every setting from tokens. It never fails: read errors are kept,
// one per unreadable setting, and surface through Errs. A population of "rnd" is replaced by a
// layout sampled from src, or left empty when the dimensions are unusable.
func New(tokens []string, src *rng.RNG) *Config {
	r := args.NewReader(tokens)
	c := &Config{}

	var errs [5]error
	c.width, errs[0] = r.Int(WidthKey)
	c.height, errs[1] = r.Int(HeightKey)
	c.speed, errs[2] = r.Int(SpeedKey)
	c.generations, errs[3] = r.Int(GenerationsKey)
	c.population, errs[4] = r.String(PopulationKey)

	if c.population == RandomPopulation {
		c.population = ""
		if validate.Width(c.width) == nil && validate.Height(c.height) == nil {
			c.population = life.RandomPopulation(src, c.width, c.height)
		}
	}

	for _, err := range errs {
		if err != nil {
			c.readErrs = append(c.readErrs, err)
		}
	}
	return c
}

// Errs lists why the configuration cannot start a game: every argument that
// could not be read, in w, h, s, g, p order, or else the first value outside
// its domain. It is empty for a valid configuration.
func (c *Config) Errs() []error {
	if len(c.readErrs) > 0 {
		return c.readErrs
	}
	if err := validate.Config(c.width, c.height, c.generations, c.speed, c.population); err != nil {
		return []error{err}
	}
	return nil
}

// Err joins Errs into a single error, nil when the configuration is valid.
func (c *Config) Err() error {
	return errors.Join(c.Errs()...)
}

// Valid reports whether Err is nil.
func (c *Config) Valid() bool { return c.Err() == nil }

// FillGrid builds the initial grid from the population. It must only be
// called on a valid configuration.
func (c *Config) FillGrid() {
	c.grid = life.New(c.width, c.height)
	c.grid.Decode(c.population)
}

// Grid returns the grid built by FillGrid, or nil before it ran.
func (c *Config) Grid() *life.Grid { return c.grid }

// Width returns the grid width.
func (c *Config) Width() int { return c.width }

// Height returns the grid height.
func (c *Config) Height() int { return c.height }

// Speed returns the tick delay in milliseconds.
func (c *Config) Speed() int { return c.speed }

// Generations returns the frame count, zero meaning unbounded.
func (c *Config) Generations() int { return c.generations }

// Population returns the population string, already sampled for "rnd".
func (c *Config) Population() string { return c.population }

// Delay converts the speed setting into the pause between ticks.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.speed) * time.Millisecond
}

// Parameters describes the configuration for display.
func (c *Config) Parameters() core.ParameterSnapshot {
	generations := strconv.Itoa(c.generations)
	if c.generations == 0 {
		generations = "unbounded"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", c.width),
				intParam("h", "Height", c.height),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("s", "Speed (ms)", c.speed),
				{Key: "g", Label: "Generations", Type: core.ParamTypeString, Value: generations},
			},
		},
	}}
}

// Print writes the configuration values followed by the initial grid as rows
// of 0 and 1.
func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, "The width is: %d\n", c.width)
	fmt.Fprintf(w, "The height is: %d\n", c.height)
	fmt.Fprintf(w, "The generations are: %d\n", c.generations)
	fmt.Fprintf(w, "The speed is: %d\n", c.speed)
	fmt.Fprintf(w, "The population is: %s\n", c.population)
	if c.grid == nil {
		return
	}
	fmt.Fprintln(w, "The game grid is:")
	fmt.Fprintln(w, c.grid.Render(life.Glyphs{Alive: life.AliveSymbol, Dead: life.DeadSymbol}))
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
