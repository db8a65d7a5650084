package engine

import (
	"math"
	"time"

	"github.com/katalvlaran/ivgraph/block"
)

// Refine runs the adaptive subdivision loop (spec.md §4.6) until the queue
// drains, the deadline implied by timeout elapses, or a fatal error occurs.
// It returns true once the queue has fully drained (every pixel has reached
// a terminal state or exhausted its subdivision budget); a false return with
// a nil error means timeout cut the run short and a further call may resume
// it. Refine may be called repeatedly on the same Graph to make incremental
// progress against a deadline, matching the teacher's cooperative-yield walk
// in algorithms/bfs.go rather than spawning any background goroutine.
func (g *Graph) Refine(timeout time.Duration) (bool, error) {
	if g.complete {
		return true, nil
	}
	start := time.Now()
	defer func() { g.tracker.AddElapsed(time.Since(start)) }()

	for {
		if time.Since(start) >= timeout {
			return false, nil
		}
		idx, b, ok := g.queue.PopFront()
		if !ok {
			g.complete = true
			return true, nil
		}
		if err := g.subdivideRound(idx, b); err != nil {
			return false, err
		}
		if g.memLimitExceeded() {
			g.perAxis.Clear()
			g.full.Clear()
			if g.memLimitExceeded() {
				return false, ErrReachedMemLimit
			}
		}
	}
}

// subdivideRound processes one dequeued block: it unconditionally subdivides
// b into its children (spec.md §4.6 step 2), classifies every child right
// away, marks True whatever it can, re-queues the incomplete children, and
// only then commits the last siblings' False verdicts. idx is b's own
// queue index, used as the supersession check for the sibling-index
// False-finalization rule (spec.md §4.6.3): a pixel still covered by a
// re-queued child no longer holds idx, so it is not finalized False.
func (g *Graph) subdivideRound(idx uint32, b block.Block) error {
	kids, lastSibling, ok := g.produceChildren(b)
	if !ok {
		return ErrReachedSubdivisionLimit
	}

	total := len(kids)
	incomplete := make([]block.Block, 0, total)
	var settledLast []block.Block
	for i, kid := range kids {
		if !g.classifyAndFinalize(idx, kid, false) {
			incomplete = append(incomplete, kid)
		} else if lastSibling[i] {
			settledLast = append(settledLast, kid)
		}
	}
	if len(incomplete) == 0 {
		for _, kid := range settledLast {
			g.classifyAndFinalize(idx, kid, true)
		}
		return nil
	}

	nextDir, ok := g.chooseNextDir(b, len(incomplete), total)
	if !ok {
		return ErrReachedSubdivisionLimit
	}
	for i := range incomplete {
		incomplete[i].NextDir = nextDir
		childIdx, err := g.enqueue(incomplete[i])
		if err != nil {
			return err
		}
		g.markQueued(incomplete[i], childIdx)
	}
	for _, kid := range settledLast {
		g.classifyAndFinalize(idx, kid, true)
	}
	return nil
}

// classifyAndFinalize classifies one of this round's children and, if it is
// provably True or False, writes that verdict into the image. False is only
// committed when isLast is set — the sibling-index rule (spec.md §4.6.3):
// among several children sharing a pixel (a fine XY or NΘ split), only the
// last-emitted one may conclude the pixel is False, and even then only if no
// other block has since been queued for it (the TryFinalizeFalse check
// against idx, the parent's own queue index). It reports whether the child
// reached a terminal verdict (true/false) rather than remaining Uncertain.
func (g *Graph) classifyAndFinalize(idx uint32, kid block.Block, isLast bool) bool {
	if kid.IsSubpixel() {
		px0, py0, _, _ := kid.PixelExtent()
		px, py := int(math.Floor(px0)), int(math.Floor(py0))
		switch g.classifySubpixel(kid) {
		case verdictTrue:
			g.image.SetTrue(px, py)
			return true
		case verdictFalse:
			if isLast {
				g.image.TryFinalizeFalse(px, py, idx)
			}
			return true
		default:
			return false
		}
	}

	x0, y0, x1, y1 := kid.PixelRect()
	region := g.mapper.ClippedRegion(kid)
	switch g.classifyWhole(region, kid.NTheta) {
	case verdictTrue:
		forEachPixel(g.image.W, g.image.H, x0, y0, x1, y1, func(x, y int) { g.image.SetTrue(x, y) })
		return true
	case verdictFalse:
		if isLast {
			forEachPixel(g.image.W, g.image.H, x0, y0, x1, y1, func(x, y int) { g.image.TryFinalizeFalse(x, y, idx) })
		}
		return true
	default:
		return false
	}
}

// markQueued records idx as the latest block queued for every pixel kid
// covers (spec.md §4.4, §4.6.3).
func (g *Graph) markQueued(kid block.Block, idx uint32) {
	if kid.IsSubpixel() {
		px0, py0, _, _ := kid.PixelExtent()
		g.image.MarkQueued(int(math.Floor(px0)), int(math.Floor(py0)), idx)
		return
	}
	x0, y0, x1, y1 := kid.PixelRect()
	g.image.MarkQueuedRect(x0, y0, x1, y1, idx)
}

// produceChildren subdivides b along its preferred direction (b.NextDir),
// falling back to the other axis only if the preferred one cannot make
// progress. lastSibling[i] reports whether kids[i] is the last child emitted
// for whatever pixel(s) it shares with its siblings — every superpixel
// child is "last" (each owns disjoint pixels, so there is no sibling
// contention to resolve), while a fine XY or NΘ split marks only its final
// child.
func (g *Graph) produceChildren(b block.Block) (kids []block.Block, lastSibling []bool, ok bool) {
	kids, lastSibling, ok = g.subdivideDir(b, b.NextDir)
	if ok {
		return
	}
	return g.subdivideDir(b, otherDir(b.NextDir))
}

func (g *Graph) subdivideDir(b block.Block, dir block.SubdivisionDir) ([]block.Block, []bool, bool) {
	if dir == block.DirNTheta {
		return g.childrenNTheta(b)
	}
	return g.childrenXY(b)
}

func (g *Graph) childrenXY(b block.Block) ([]block.Block, []bool, bool) {
	if !b.CanSubdivideXY() {
		return nil, nil, false
	}
	if b.IsSuperpixel() {
		kids := subdivideSuperpixel(b, g.image.W, g.image.H)
		if len(kids) == 0 {
			return nil, nil, false
		}
		last := make([]bool, len(kids))
		for i := range last {
			last[i] = true
		}
		return kids, last, true
	}
	if (g.fnOfX && b.Kx <= block.MinK) || (g.fnOfY && b.Ky <= block.MinK) {
		return nil, nil, false
	}
	kids := subdivideFine(b, g.fnOfX, g.fnOfY)
	return kids, lastOnly(len(kids)), true
}

func (g *Graph) childrenNTheta(b block.Block) ([]block.Block, []bool, bool) {
	if !g.polar || !nThetaSubdividable(b.NTheta) {
		return nil, nil, false
	}
	children := subdivideNTheta(b.NTheta)
	kids := make([]block.Block, len(children))
	for i, n := range children {
		kids[i] = block.Block{X: b.X, Y: b.Y, Kx: b.Kx, Ky: b.Ky, NTheta: n}
	}
	return kids, lastOnly(len(kids)), true
}

func lastOnly(n int) []bool {
	last := make([]bool, n)
	if n > 0 {
		last[n-1] = true
	}
	return last
}

// chooseNextDir picks the subdivision direction for a round's still-
// incomplete children (spec.md §4.6 step 4): for polar relations, retry the
// direction just used if at most 25% of the round's children are
// incomplete, else switch to the other axis (rust reference:
// graph.rs:322-344, "4 * incomplete_sub_bs.len() <= n_sub_bs"). Non-polar
// relations always continue in DirXY. Falls back to whichever axis can still
// make progress if the preferred choice cannot, and reports !ok only if
// neither can — the hard subdivision-limit condition.
func (g *Graph) chooseNextDir(b block.Block, incomplete, total int) (block.SubdivisionDir, bool) {
	if !g.polar {
		if b.CanSubdivideXY() {
			return block.DirXY, true
		}
		return block.DirXY, false
	}

	canXY := b.CanSubdivideXY()
	canNTheta := nThetaSubdividable(b.NTheta)

	preferred := b.NextDir
	if 4*incomplete > total {
		preferred = otherDir(b.NextDir)
	}
	if dirAvailable(preferred, canXY, canNTheta) {
		return preferred, true
	}
	if alt := otherDir(preferred); dirAvailable(alt, canXY, canNTheta) {
		return alt, true
	}
	return block.DirXY, false
}

func otherDir(d block.SubdivisionDir) block.SubdivisionDir {
	if d == block.DirXY {
		return block.DirNTheta
	}
	return block.DirXY
}

func dirAvailable(d block.SubdivisionDir, canXY, canNTheta bool) bool {
	if d == block.DirXY {
		return canXY
	}
	return canNTheta
}

// forEachPixel calls fn for every pixel in [x0,x1)×[y0,y1), clamped to
// [0,w)×[0,h).
func forEachPixel(w, h, x0, y0, x1, y1 int, fn func(x, y int)) {
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fn(x, y)
		}
	}
}
