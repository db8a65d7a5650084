package engine_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/ivgraph/demo"
	"github.com/katalvlaran/ivgraph/engine"
	"github.com/katalvlaran/ivgraph/interval"
)

// runToCompletion drives Refine in bounded slices so a bug that produces an
// infinite requeue loop fails the test with a clear timeout instead of
// hanging the test binary.
func runToCompletion(t *testing.T, g *engine.Graph) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		done, err := g.Refine(50 * time.Millisecond)
		if err != nil {
			t.Fatalf("Refine: %v", err)
		}
		if done {
			return
		}
	}
	t.Fatal("Refine did not complete within the iteration budget")
}

// trueColor and falseColor are grid.RenderRGB's fixed color mapping
// (grid/render.go): True -> black, False -> white. Neither scenario below
// should ever render the Uncertain color (64,128,192).
var (
	trueColor  = [3]byte{0, 0, 0}
	falseColor = [3]byte{255, 255, 255}
)

func pixelAt(buf []byte, w, row, col int) [3]byte {
	off := (row*w + col) * 3
	return [3]byte{buf[off], buf[off+1], buf[off+2]}
}

func TestLineScenario(t *testing.T) {
	// spec.md §8 scenario 1: y = 0 over [-1,1]x[-1,1] at 16x16 must render
	// with exactly one entirely-True row (row 8, after the bottom-flip
	// RenderRGB applies) and every other row entirely False; no Uncertain.
	const size = 16
	g, err := engine.New(&demo.Line{}, interval.Point(-1), interval.Point(1), interval.Point(-1), interval.Point(1), size, size, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	runToCompletion(t, g)

	stats := g.Statistics()
	if stats.PixelsProven != stats.Pixels {
		t.Fatalf("PixelsProven = %d, want %d (Uncertain count must be 0)", stats.PixelsProven, stats.Pixels)
	}

	buf := make([]byte, 3*size*size)
	if err := g.RenderRGB(buf); err != nil {
		t.Fatalf("RenderRGB: %v", err)
	}
	const trueRow = 8
	for row := 0; row < size; row++ {
		want := falseColor
		if row == trueRow {
			want = trueColor
		}
		for col := 0; col < size; col++ {
			if got := pixelAt(buf, size, row, col); got != want {
				t.Errorf("pixel (row=%d, col=%d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestHalfPlaneScenario(t *testing.T) {
	// spec.md §8 scenario 2: x >= 0 over [-1,1]x[-1,1] at 16x16 must render
	// with the left 8 columns entirely False and the right 8 entirely True;
	// no Uncertain.
	const size = 16
	g, err := engine.New(&demo.HalfPlane{}, interval.Point(-1), interval.Point(1), interval.Point(-1), interval.Point(1), size, size, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	runToCompletion(t, g)

	stats := g.Statistics()
	if stats.PixelsProven != stats.Pixels {
		t.Fatalf("PixelsProven = %d, want %d (Uncertain count must be 0)", stats.PixelsProven, stats.Pixels)
	}

	buf := make([]byte, 3*size*size)
	if err := g.RenderRGB(buf); err != nil {
		t.Fatalf("RenderRGB: %v", err)
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			want := falseColor
			if col >= size/2 {
				want = trueColor
			}
			if got := pixelAt(buf, size, row, col); got != want {
				t.Errorf("pixel (row=%d, col=%d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestCircleScenario(t *testing.T) {
	g, err := engine.New(&demo.Circle{}, interval.Point(-2), interval.Point(2), interval.Point(-2), interval.Point(2), 32, 32, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	runToCompletion(t, g)

	stats := g.Statistics()
	if stats.Pixels != 32*32 {
		t.Fatalf("Pixels = %d, want %d", stats.Pixels, 32*32)
	}
	if stats.EvalCount == 0 {
		t.Error("expected at least one Eval call")
	}
}

func TestCuspScenario(t *testing.T) {
	g, err := engine.New(&demo.Cusp{}, interval.Point(-1), interval.Point(4), interval.Point(-4), interval.Point(4), 24, 24, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	runToCompletion(t, g)

	stats := g.Statistics()
	if stats.PixelsProven == 0 {
		t.Error("expected some pixels proven around the cusp singularity")
	}
}

func TestBranchedParabolaPolarScenario(t *testing.T) {
	g, err := engine.New(&demo.BranchedParabola{}, interval.Point(0), interval.Point(4), interval.Point(-2), interval.Point(2), 16, 16, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	runToCompletion(t, g)

	stats := g.Statistics()
	if stats.PixelsProven == 0 {
		t.Error("expected the branch-indexed curve to prove at least one pixel")
	}
}

func TestSubdivisionLimitScenario(t *testing.T) {
	// A tiny 2x2 image over a region 2e-6 wide centred on (1, 0), which the
	// circle crosses, pushes many blocks to the subpixel floor without resolving;
	// Refine must still terminate (possibly via ErrReachedSubdivisionLimit)
	// rather than loop forever.
	g, err := engine.New(&demo.Circle{}, interval.Point(0.999999), interval.Point(1.000001), interval.Point(-0.000001), interval.Point(0.000001), 2, 2, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10000; i++ {
		done, err := g.Refine(10 * time.Millisecond)
		if err != nil {
			return // ErrReachedSubdivisionLimit or similar: acceptable terminal outcome
		}
		if done {
			return
		}
	}
	t.Fatal("expected either completion or a terminal error within the iteration budget")
}

func TestMemoryLimitIsEnforced(t *testing.T) {
	g, err := engine.New(&demo.Circle{}, interval.Point(-2), interval.Point(2), interval.Point(-2), interval.Point(2), 64, 64, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10000; i++ {
		_, err := g.Refine(10 * time.Millisecond)
		if err != nil {
			if err != engine.ErrReachedMemLimit {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
	}
	t.Fatal("expected ErrReachedMemLimit with a 1-byte memory cap")
}
