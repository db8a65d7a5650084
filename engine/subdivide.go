package engine

import (
	"math"

	"github.com/katalvlaran/ivgraph/block"
	"github.com/katalvlaran/ivgraph/interval"
)

// zOrderOffsets lists the (dx, dy) child offsets in Morton (z) order:
// bottom-left, bottom-right, top-left, top-right. Every XY subdivision in
// the engine emits children in this order, so "the lexicographically last
// child" / "the last appended child" (spec.md §4.6 step 2) always means
// top-right (1,1) when present.
var zOrderOffsets = [4][2]int32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// child builds one XY child of parent at the given offset and child level.
// An axis whose level is not lowered keeps the parent's coordinate.
func child(parent block.Block, dx, dy int32, kx, ky int8) block.Block {
	x, y := parent.X, parent.Y
	if kx < parent.Kx {
		x = parent.X*2 + dx
	}
	if ky < parent.Ky {
		y = parent.Y*2 + dy
	}
	return block.Block{
		X:      x,
		Y:      y,
		Kx:     kx,
		Ky:     ky,
		NTheta: parent.NTheta,
	}
}

// subdivideSuperpixel splits a superpixel block into up to four children at
// level (Kx-1, Ky-1), dropping any child whose pixel-space extent starts
// beyond the image bounds entirely (spec.md §4.6 step 2). Returns the
// children in emission order; the caller (childrenXY) marks every one of
// them as a last sibling, since superpixel children cover disjoint pixels.
func subdivideSuperpixel(b block.Block, w, h int) []block.Block {
	kx, ky := b.Kx-1, b.Ky-1
	children := make([]block.Block, 0, 4)
	for _, off := range zOrderOffsets {
		c := child(b, off[0], off[1], kx, ky)
		x0, y0, _, _ := c.PixelRect()
		if x0 >= w || y0 >= h {
			continue
		}
		children = append(children, c)
	}
	return children
}

// subdivideFine splits a pixel or subpixel block. FunctionOfX/FunctionOfY
// relations split only the axis they depend on, into two children;
// otherwise all four quadrant children are emitted (spec.md §4.6 step 2).
func subdivideFine(b block.Block, fnOfX, fnOfY bool) []block.Block {
	switch {
	case fnOfX:
		return []block.Block{
			child(b, 0, 0, b.Kx-1, b.Ky),
			child(b, 1, 0, b.Kx-1, b.Ky),
		}
	case fnOfY:
		return []block.Block{
			child(b, 0, 0, b.Kx, b.Ky-1),
			child(b, 0, 1, b.Kx, b.Ky-1),
		}
	default:
		children := make([]block.Block, 4)
		for i, off := range zOrderOffsets {
			children[i] = child(b, off[0], off[1], b.Kx-1, b.Ky-1)
		}
		return children
	}
}

// maxDiscreteNTheta is the largest branch-interval endpoint magnitude the
// engine will attempt to bisect further (spec.md §6).
const maxDiscreteNTheta = (int64(1) << 53) - 1

// subdivideNTheta bisects the polar branch interval up to twice, yielding at
// most four children, per the rules in spec.md §4.6 step 2:
//   - a singleton, or an interval whose magnitude exceeds 2^53-1, is not
//     bisected (returned unchanged, as the sole child);
//   - [n, n+1] for adjacent integers yields the two singleton children;
//   - an interval with one infinite endpoint "bisects" at 2x the finite one;
//   - otherwise, bisect at the midpoint.
//
// "Up to twice" means: bisect once to get two halves, then bisect each half
// again if it is still eligible, for up to four children total.
func subdivideNTheta(n interval.Interval) []interval.Interval {
	halves := bisectOnce(n)
	if len(halves) == 1 {
		return halves
	}
	var out []interval.Interval
	for _, h := range halves {
		out = append(out, bisectOnce(h)...)
	}
	return out
}

func bisectOnce(n interval.Interval) []interval.Interval {
	if n.IsPoint() {
		return []interval.Interval{n}
	}
	if exceedsDiscreteMagnitude(n) {
		return []interval.Interval{n}
	}
	if isAdjacentIntegerPair(n) {
		return []interval.Interval{interval.Point(n.Inf), interval.Point(n.Sup)}
	}
	if math.IsInf(n.Inf, -1) {
		split := 2 * n.Sup
		if n.Sup == 0 {
			split = -1
		}
		return []interval.Interval{{Inf: n.Inf, Sup: split}, {Inf: split, Sup: n.Sup}}
	}
	if math.IsInf(n.Sup, 1) {
		split := 2 * n.Inf
		if n.Inf == 0 {
			split = 1
		}
		return []interval.Interval{{Inf: n.Inf, Sup: split}, {Inf: split, Sup: n.Sup}}
	}
	lo, hi := interval.Bisect(n)
	return []interval.Interval{lo, hi}
}

func exceedsDiscreteMagnitude(n interval.Interval) bool {
	for _, v := range []float64{n.Inf, n.Sup} {
		if math.IsInf(v, 0) {
			continue
		}
		if math.Abs(v) > float64(maxDiscreteNTheta) {
			return true
		}
	}
	return false
}

// nThetaSubdividable reports whether subdivideNTheta would actually split n
// any further (a singleton or an interval past the discrete magnitude
// ceiling is returned unchanged and so is not subdividable).
func nThetaSubdividable(n interval.Interval) bool {
	if n.IsPoint() {
		return false
	}
	return !exceedsDiscreteMagnitude(n)
}

func isAdjacentIntegerPair(n interval.Interval) bool {
	if math.IsInf(n.Inf, 0) || math.IsInf(n.Sup, 0) {
		return false
	}
	if n.Inf != math.Trunc(n.Inf) || n.Sup != math.Trunc(n.Sup) {
		return false
	}
	return n.Sup-n.Inf == 1
}
