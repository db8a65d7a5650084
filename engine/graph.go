package engine

import (
	"math"

	"github.com/katalvlaran/ivgraph/affine"
	"github.com/katalvlaran/ivgraph/block"
	"github.com/katalvlaran/ivgraph/cache"
	"github.com/katalvlaran/ivgraph/grid"
	"github.com/katalvlaran/ivgraph/interval"
	"github.com/katalvlaran/ivgraph/relation"
	"github.com/katalvlaran/ivgraph/stats"
)

func evalResultSize(r relation.EvalResult) int { return len(r) * 2 }

// Graph is the refinement engine (spec.md §6's exposed Graph type). It is
// NOT safe for concurrent use: Refine owns the queue and both caches for
// its duration, per spec.md §5. This is a deliberate departure from the
// teacher's core.Graph, which guards every field with sync.RWMutex because
// it is meant to be shared across goroutines — the refinement engine's
// single-threaded, cooperative scheduling model has no such requirement.
type Graph struct {
	rel    relation.Relation
	mapper affine.Mapper
	image  *grid.Image
	queue  *block.Queue

	perAxis *cache.Cache[relation.EvalResult]
	full    *cache.Cache[relation.EvalResult]

	memLimit int
	tracker  *stats.Tracker

	k        int8 // ceil(log2(max(W,H))), the seed block level
	polar    bool
	fnOfX    bool
	fnOfY    bool
	complete bool
}

// New creates a Graph over the given relation, real graph_region (l, r, b,
// t as intervals), image size, and soft memory cap (spec.md §6).
func New(rel relation.Relation, l, r, b, t interval.Interval, w, h int, memLimit int) (*Graph, error) {
	img, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}

	typ := rel.Type()
	polar := typ == relation.Polar
	g := &Graph{
		rel:     rel,
		mapper:  affine.New(l, r, b, t, w, h),
		image:   img,
		queue:   block.NewQueue(polar),
		perAxis: cache.New[relation.EvalResult](evalResultSize),
		full:    cache.New[relation.EvalResult](evalResultSize),

		memLimit: memLimit,
		tracker:  stats.NewTracker(w * h),
		k:        ceilLog2(maxInt(w, h)),
		polar:    polar,
		fnOfX:    typ == relation.FunctionOfX,
		fnOfY:    typ == relation.FunctionOfY,
	}

	if err := g.seed(); err != nil {
		return nil, err
	}
	return g, nil
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int8 {
	if n <= 1 {
		return 0
	}
	return int8(math.Ceil(math.Log2(float64(n))))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// seed enqueues the initial block(s): three branch-interval seeds for a
// polar relation (spec.md §4.6 "Initialization"), or a single Entire-branch
// seed otherwise. Every pixel's last-queued-block marker is updated to
// whichever seed block was pushed last for it.
func (g *Graph) seed() error {
	kx, ky := g.k, g.k
	if !g.polar {
		idx, err := g.enqueue(block.Block{X: 0, Y: 0, Kx: kx, Ky: ky, NTheta: interval.Entire, NextDir: block.DirXY})
		if err != nil {
			return wrap("seed", err)
		}
		g.image.MarkQueuedRect(0, 0, g.image.W, g.image.H, idx)
		return nil
	}

	seeds := []interval.Interval{
		{Inf: math.Inf(-1), Sup: -1},
		{Inf: 0, Sup: 0},
		{Inf: 1, Sup: math.Inf(1)},
	}
	for _, n := range seeds {
		idx, err := g.enqueue(block.Block{X: 0, Y: 0, Kx: kx, Ky: ky, NTheta: n, NextDir: block.DirXY})
		if err != nil {
			return wrap("seed", err)
		}
		g.image.MarkQueuedRect(0, 0, g.image.W, g.image.H, idx)
	}
	return nil
}

// enqueue pushes b and translates a queue overflow into the engine's own
// sentinel error.
func (g *Graph) enqueue(b block.Block) (uint32, error) {
	idx, err := g.queue.PushBack(b)
	if err != nil {
		return 0, ErrBlockIndexOverflow
	}
	return idx, nil
}

// Statistics returns the current run statistics (spec.md §6).
func (g *Graph) Statistics() stats.Statistics {
	_, trueCount, falseCount := g.image.Counts()
	g.tracker.SetPixelsProven(trueCount + falseCount)
	return g.tracker.Snapshot(g.rel.EvalCount())
}

// RenderRGB writes the current (possibly partial) image into buf as packed
// RGB triples (spec.md §6).
func (g *Graph) RenderRGB(buf []byte) error { return g.image.RenderRGB(buf) }

// RenderGrayAlpha writes the current (possibly partial) image into buf as
// packed gray+alpha pairs (spec.md §6).
func (g *Graph) RenderGrayAlpha(buf []byte) error { return g.image.RenderGrayAlpha(buf) }

// memLimitExceeded reports whether image + queue + both caches exceed
// g.memLimit. A non-positive memLimit disables the check (unlimited).
func (g *Graph) memLimitExceeded() bool {
	if g.memLimit <= 0 {
		return false
	}
	total := g.image.SizeInHeap() + g.queue.SizeInHeap() + g.perAxis.SizeInHeap() + g.full.SizeInHeap()
	return total > g.memLimit
}
