package affine

import "github.com/katalvlaran/ivgraph/interval"

// Region is spec.md §3's "inexact region": four interval bounds (l, r, b, t)
// with l.Inf ≤ r.Sup and b.Inf ≤ t.Sup, representing a rectangle whose exact
// edges are only known to lie within each bounding interval.
type Region struct {
	L, R, B, T interval.Interval
}

// Outer returns the smallest rectangle guaranteed to contain the true
// region: [l.Inf, r.Sup] × [b.Inf, t.Sup].
func (rg Region) Outer() (x, y interval.Interval) {
	return interval.New(rg.L.Inf, rg.R.Sup), interval.New(rg.B.Inf, rg.T.Sup)
}

// Inner returns the largest rectangle guaranteed to lie within the true
// region: [l.Sup, r.Inf] × [b.Sup, t.Inf]. If the bounding intervals on
// either axis are too wide to guarantee any interior, both returned
// intervals are Empty.
func (rg Region) Inner() (x, y interval.Interval) {
	if rg.L.Sup > rg.R.Inf || rg.B.Sup > rg.T.Inf {
		return interval.Empty, interval.Empty
	}
	return interval.New(rg.L.Sup, rg.R.Inf), interval.New(rg.B.Sup, rg.T.Inf)
}
