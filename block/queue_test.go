package block

import (
	"testing"

	"github.com/katalvlaran/ivgraph/interval"
)

func TestQueueRoundTripFIFOOrder(t *testing.T) {
	q := NewQueue(false)
	blocks := []Block{
		{X: 0, Y: 0, Kx: 4, Ky: 4},
		{X: 1, Y: 0, Kx: 3, Ky: 3},
		{X: 1, Y: 1, Kx: 3, Ky: 3, NextDir: DirXY},
		{X: 0, Y: 1, Kx: 3, Ky: 3},
	}
	var indices []uint32
	for _, b := range blocks {
		idx, err := q.PushBack(b)
		if err != nil {
			t.Fatal(err)
		}
		indices = append(indices, idx)
	}
	for i, idx := range indices {
		if idx != uint32(i) {
			t.Fatalf("push index %d = %d, want %d", i, idx, i)
		}
	}
	for i, want := range blocks {
		idx, got, ok := q.PopFront()
		if !ok {
			t.Fatalf("PopFront() ok=false at i=%d, want true", i)
		}
		if idx != uint32(i) {
			t.Errorf("pop %d: index = %d, want %d", i, idx, i)
		}
		if got.X != want.X || got.Y != want.Y || got.Kx != want.Kx || got.Ky != want.Ky || got.NextDir != want.NextDir {
			t.Errorf("pop %d: got %+v, want %+v", i, got, want)
		}
	}
	if _, _, ok := q.PopFront(); ok {
		t.Error("PopFront() on an empty queue returned ok=true")
	}
}

func TestQueueLenTracksPushAndPop(t *testing.T) {
	q := NewQueue(false)
	if q.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", q.Len())
	}
	q.PushBack(Block{X: 5, Y: 5})
	q.PushBack(Block{X: 6, Y: 5})
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	q.PopFront()
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
}

func TestQueuePreservesPolarBranchInterval(t *testing.T) {
	q := NewQueue(true)
	want := interval.New(1, 3.5)
	q.PushBack(Block{X: 2, Y: 3, NTheta: want})
	_, got, ok := q.PopFront()
	if !ok {
		t.Fatal("PopFront() ok=false")
	}
	if got.NTheta != want {
		t.Errorf("NTheta = %v, want %v", got.NTheta, want)
	}
}

func TestNonPolarQueueReconstructsEntire(t *testing.T) {
	q := NewQueue(false)
	q.PushBack(Block{X: 0, Y: 0, NTheta: interval.New(-5, 5)})
	_, got, _ := q.PopFront()
	if got.NTheta != interval.Entire {
		t.Errorf("non-polar queue NTheta = %v, want Entire sentinel", got.NTheta)
	}
}

func TestQueueHandlesLargeMortonAdjacentCoordinates(t *testing.T) {
	q := NewQueue(false)
	const n = 2000
	x, y := uint32(0), uint32(0)
	type xy struct{ x, y uint32 }
	var seq []xy
	for i := 0; i < n; i++ {
		// Small, Morton-like perturbation between consecutive pushes.
		x += uint32(i % 3)
		if i%4 == 0 {
			y++
		}
		seq = append(seq, xy{x, y})
		q.PushBack(Block{X: int32(x), Y: int32(y)})
	}
	for i := 0; i < n; i++ {
		_, got, ok := q.PopFront()
		if !ok {
			t.Fatalf("PopFront() ok=false at %d", i)
		}
		if uint32(got.X) != seq[i].x || uint32(got.Y) != seq[i].y {
			t.Fatalf("pop %d = (%d,%d), want (%d,%d)", i, got.X, got.Y, seq[i].x, seq[i].y)
		}
	}
	// Encoded bytes for N Morton-adjacent pushes should be a small constant
	// per block, independent of how large the coordinates themselves grow.
	if bytesPerBlock := float64(q.SizeInHeap()) / float64(n); bytesPerBlock > 16 {
		t.Errorf("average bytes/block = %.1f, want a small constant (<=16)", bytesPerBlock)
	}
}

func TestVarintRoundTripBoundaries(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 21, (1 << 21) - 1, 1<<28 - 1, 1 << 28, 1<<32 - 1}
	for _, v := range values {
		buf := appendVarint(nil, v)
		got, n := readVarint(buf)
		if got != v || n != len(buf) {
			t.Errorf("roundtrip(%d) = (%d, %d bytes), want (%d, %d bytes)", v, got, n, v, len(buf))
		}
	}
}
