package generator

import (
	"testing"

	"golife/internal/sims/life"
)

func blinker() *life.Grid {
	g := life.New(5, 5)
	g.Decode("#00100#00100#00100")
	return g
}

func TestNextReadsBeforeAdvancing(t *testing.T) {
	g := blinker()
	gen := New(g, life.ASCII)

	initial := g.String()
	first := gen.Next()
	if first != initial {
		t.Fatalf("first frame should show the initial grid:\n%s\ngot:\n%s", initial, first)
	}
	if g.String() == initial {
		t.Fatal("grid should have advanced after Next")
	}
	if gen.Generation() != 1 {
		t.Fatalf("Generation() = %d, want 1", gen.Generation())
	}

	second := gen.Next()
	want := ".....\n.....\n.XXX.\n.....\n....."
	if second != want {
		t.Fatalf("second frame:\n%s\nwant:\n%s", second, want)
	}
	if third := gen.Next(); third != first {
		t.Fatalf("blinker should return to its first phase, got:\n%s", third)
	}
}

func TestFramesBounded(t *testing.T) {
	gen := New(blinker(), life.ASCII)

	var frames []string
	for frame := range gen.Frames(4) {
		frames = append(frames, frame)
	}
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4", len(frames))
	}
	if frames[0] != frames[2] || frames[1] != frames[3] || frames[0] == frames[1] {
		t.Fatal("blinker frames should alternate")
	}
	if gen.Generation() != 4 {
		t.Fatalf("Generation() = %d, want 4", gen.Generation())
	}
}

func TestFramesUnboundedStopsWithConsumer(t *testing.T) {
	gen := New(life.New(10, 10), life.ASCII)

	n := 0
	for range gen.Frames(0) {
		n++
		if n == 25 {
			break
		}
	}
	if gen.Generation() != 25 {
		t.Fatalf("Generation() = %d, want 25", gen.Generation())
	}
}

func TestFramesContinueFromCurrentState(t *testing.T) {
	gen := New(blinker(), life.ASCII)
	gen.Next()

	for frame := range gen.Frames(1) {
		if frame != ".....\n.....\n.XXX.\n.....\n....." {
			t.Fatalf("sequence should resume from the advanced grid, got:\n%s", frame)
		}
	}
}
