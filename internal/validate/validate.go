// Package validate checks game configuration values against the fixed
// domain of the simulator.
package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"golife/internal/sims/life"
)

const (
	// MinSpeed and MaxSpeed bound the tick delay in milliseconds.
	MinSpeed = 250
	MaxSpeed = 1000
)

var (
	// ValidWidths enumerates the accepted grid widths.
	ValidWidths = []int{10, 20, 40, 80}
	// ValidHeights enumerates the accepted grid heights.
	ValidHeights = []int{10, 20, 40}
)

var (
	// ErrWidth rejects widths outside ValidWidths.
	ErrWidth = errors.New("invalid width")
	// ErrHeight rejects heights outside ValidHeights.
	ErrHeight = errors.New("invalid height")
	// ErrGenerations rejects negative generation counts.
	ErrGenerations = errors.New("invalid generations")
	// ErrSpeed rejects delays outside [MinSpeed, MaxSpeed].
	ErrSpeed = errors.New("invalid speed")
	// ErrPopulationRows rejects populations with more rows than the height.
	ErrPopulationRows = errors.New("invalid population, it has more rows than the grid height")
	// ErrPopulationColumns rejects rows longer than the width.
	ErrPopulationColumns = errors.New("invalid population, it has more columns than the grid width")
	// ErrPopulationSymbols rejects symbols other than '0' and '1'.
	ErrPopulationSymbols = errors.New("invalid population, it has values different than zero or one")
)

// Error is a value outside its domain. It prints a diagnostic naming the
// offending value and matches its sentinel with errors.Is.
type Error struct {
	msg  string
	kind error
}

// Error returns the diagnostic shown to the user.
func (e *Error) Error() string { return e.msg }

// Unwrap returns the sentinel describing the failure.
func (e *Error) Unwrap() error { return e.kind }

// Cause lets errors.Cause reach the sentinel.
func (e *Error) Cause() error { return e.kind }

func invalid(kind error, format string, a ...any) error {
	return errors.WithStack(&Error{msg: fmt.Sprintf(format, a...), kind: kind})
}

// Width accepts only the values in ValidWidths.
func Width(width int) error {
	if slices.Contains(ValidWidths, width) {
		return nil
	}
	return invalid(ErrWidth, "the width value has to be 10, 20, 40 or 80, but %d given", width)
}

// Height accepts only the values in ValidHeights.
func Height(height int) error {
	if slices.Contains(ValidHeights, height) {
		return nil
	}
	return invalid(ErrHeight, "the height value has to be 10, 20 or 40, but %d given", height)
}

// Generations accepts zero (run forever) or any positive count.
func Generations(generations int) error {
	if generations >= 0 {
		return nil
	}
	return invalid(ErrGenerations, "the generations value has to be zero or greater than zero, but %d given", generations)
}

// Speed accepts delays in [MinSpeed, MaxSpeed] milliseconds.
func Speed(speed int) error {
	if speed >= MinSpeed && speed <= MaxSpeed {
		return nil
	}
	return invalid(ErrSpeed, "the speed value has to be between %d and %d, but %d given", MinSpeed, MaxSpeed, speed)
}

// Population checks that the population string fits a width*height grid and
// uses only alive/dead symbols.
func Population(population string, width, height int) error {
	rows := strings.Split(population, string(life.RowDelimiter))
	if len(rows) > height {
		return invalid(ErrPopulationRows, "invalid population, it has more rows than the grid height, %d rows for height %d", len(rows), height)
	}
	for i, row := range rows {
		if len(row) > width {
			return invalid(ErrPopulationColumns, "invalid population, it has more columns than the grid width, row %d has %d cells for width %d", i, len(row), width)
		}
		for _, r := range row {
			if r != life.AliveSymbol && r != life.DeadSymbol {
				return invalid(ErrPopulationSymbols, "invalid population, row %d has %q, only zero or one are allowed", i, r)
			}
		}
	}
	return nil
}

// Config runs every check in a fixed order (width, height, generations,
// speed, population) and reports only the first failure.
func Config(width, height, generations, speed int, population string) error {
	checks := []func() error{
		func() error { return Width(width) },
		func() error { return Height(height) },
		func() error { return Generations(generations) },
		func() error { return Speed(speed) },
		func() error { return Population(population, width, height) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
