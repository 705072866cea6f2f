package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"golife/internal/generator"
	"golife/internal/sims/life"
)

func TestConsoleRunBounded(t *testing.T) {
	g := life.New(5, 5)
	g.Decode("#00100#00100#00100")
	gen := generator.New(g, life.ASCII)

	var out bytes.Buffer
	c := &Console{Out: &out, Delay: time.Millisecond, Generations: 3}
	if err := c.Run(context.Background(), gen); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	if gen.Generation() != 3 {
		t.Fatalf("Generation() = %d, want 3", gen.Generation())
	}
	text := out.String()
	for _, want := range []string{"Generation 0", "Generation 1", "Generation 2"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Generation 3") {
		t.Fatal("renderer emitted more frames than requested")
	}
	if strings.Contains(text, clearScreen) {
		t.Fatal("clear sequence written while Clear is false")
	}
	if !strings.HasPrefix(text, ".....\n..X..") {
		t.Fatalf("first frame should be the initial grid:\n%s", text)
	}
}

func TestConsoleRunStopsOnCancel(t *testing.T) {
	gen := generator.New(life.New(10, 10), life.ASCII)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := &Console{Out: &bytes.Buffer{}, Delay: 5 * time.Millisecond, Clear: true}
	err := c.Run(ctx, gen)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
	if gen.Generation() == 0 {
		t.Fatal("no frames rendered before cancellation")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestConsoleRunWriteError(t *testing.T) {
	gen := generator.New(life.New(10, 10), life.ASCII)
	c := &Console{Out: failingWriter{}, Generations: 1}
	if err := c.Run(context.Background(), gen); err == nil {
		t.Fatal("expected write error")
	}
}
