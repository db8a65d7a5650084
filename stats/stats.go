package stats

import "time"

// Statistics is the snapshot spec.md §6's Graph.Statistics returns.
type Statistics struct {
	// Pixels is the total pixel count, W*H.
	Pixels int
	// PixelsProven is the number of pixels no longer Uncertain (True or
	// False).
	PixelsProven int
	// EvalCount is the relation's cumulative Eval call count.
	EvalCount uint64
	// TimeElapsed is the cumulative wall-clock time spent inside Refine
	// across all calls on this Graph.
	TimeElapsed time.Duration
}

// Tracker accumulates the mutable counters a running Graph needs; Snapshot
// produces the immutable Statistics value callers see.
type Tracker struct {
	pixels       int
	pixelsProven int
	timeElapsed  time.Duration
}

// NewTracker creates a Tracker for an image with the given total pixel count.
func NewTracker(pixels int) *Tracker {
	return &Tracker{pixels: pixels}
}

// SetPixelsProven updates the count of no-longer-Uncertain pixels.
func (tr *Tracker) SetPixelsProven(n int) { tr.pixelsProven = n }

// AddElapsed accumulates wall-clock time spent in a Refine call.
func (tr *Tracker) AddElapsed(d time.Duration) { tr.timeElapsed += d }

// Snapshot returns the current Statistics, given the relation's live
// EvalCount (read directly from the relation rather than duplicated here,
// since the relation is the source of truth for it).
func (tr *Tracker) Snapshot(evalCount uint64) Statistics {
	return Statistics{
		Pixels:       tr.pixels,
		PixelsProven: tr.pixelsProven,
		EvalCount:    evalCount,
		TimeElapsed:  tr.timeElapsed,
	}
}
