package stats

import (
	"testing"
	"time"
)

func TestTrackerSnapshot(t *testing.T) {
	tr := NewTracker(256)
	tr.SetPixelsProven(100)
	tr.AddElapsed(5 * time.Millisecond)
	tr.AddElapsed(3 * time.Millisecond)

	got := tr.Snapshot(42)
	want := Statistics{Pixels: 256, PixelsProven: 100, EvalCount: 42, TimeElapsed: 8 * time.Millisecond}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
