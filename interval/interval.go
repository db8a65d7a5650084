package interval

import "math"

// Interval is a closed real interval [Inf, Sup]. A NaN Inf or Sup marks the
// interval Empty (see IsEmpty); Inf > Sup never occurs for a non-empty
// interval constructed through this package's functions.
type Interval struct {
	Inf, Sup float64
}

// Entire is (-∞, +∞), the sentinel used for a non-polar relation's branch
// interval (spec.md §3, Block invariants) and for a fully unconstrained
// coordinate axis.
var Entire = Interval{Inf: math.Inf(-1), Sup: math.Inf(1)}

// Empty is the canonical empty interval.
var Empty = Interval{Inf: math.NaN(), Sup: math.NaN()}

// New returns the interval [lo, hi]. Callers must ensure lo <= hi; use
// Hull if the order is not known ahead of time.
func New(lo, hi float64) Interval { return Interval{Inf: lo, Sup: hi} }

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval { return Interval{Inf: x, Sup: x} }

// IsEmpty reports whether x is the empty interval.
func (x Interval) IsEmpty() bool { return math.IsNaN(x.Inf) || math.IsNaN(x.Sup) }

// IsPoint reports whether x has zero width.
func (x Interval) IsPoint() bool { return !x.IsEmpty() && x.Inf == x.Sup }

// Width returns Sup - Inf, or +Inf for an unbounded interval.
func (x Interval) Width() float64 {
	if x.IsEmpty() {
		return 0
	}
	return x.Sup - x.Inf
}

// Mid returns the midpoint of x. For a one-sided-unbounded interval it
// returns the finite endpoint moved by 1 toward the unbounded side; for
// Entire it returns 0.
func (x Interval) Mid() float64 {
	if math.IsInf(x.Inf, -1) && math.IsInf(x.Sup, 1) {
		return 0
	}
	if math.IsInf(x.Inf, -1) {
		return x.Sup - 1
	}
	if math.IsInf(x.Sup, 1) {
		return x.Inf + 1
	}
	return x.Inf + (x.Sup-x.Inf)/2
}

// Hull returns the smallest interval containing both x and y.
func Hull(x, y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}
	return Interval{Inf: math.Min(x.Inf, y.Inf), Sup: math.Max(x.Sup, y.Sup)}
}

// Intersect returns the intersection of x and y, or Empty if they are
// disjoint.
func Intersect(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty
	}
	lo, hi := math.Max(x.Inf, y.Inf), math.Min(x.Sup, y.Sup)
	if lo > hi {
		return Empty
	}
	return Interval{Inf: lo, Sup: hi}
}

// Contains reports whether x contains the real number v.
func (x Interval) Contains(v float64) bool {
	return !x.IsEmpty() && x.Inf <= v && v <= x.Sup
}

// down rounds v one ULP toward -∞, conservatively widening a lower bound.
func down(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Nextafter(v, math.Inf(-1))
}

// up rounds v one ULP toward +∞, conservatively widening an upper bound.
func up(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Nextafter(v, math.Inf(1))
}

// Add returns an outward-rounded enclosure of {a+b : a ∈ x, b ∈ y}.
func Add(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty
	}
	return Interval{Inf: down(x.Inf + y.Inf), Sup: up(x.Sup + y.Sup)}
}

// Sub returns an outward-rounded enclosure of {a-b : a ∈ x, b ∈ y}.
func Sub(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty
	}
	return Interval{Inf: down(x.Inf - y.Sup), Sup: up(x.Sup - y.Inf)}
}

// Neg returns -x.
func Neg(x Interval) Interval {
	if x.IsEmpty() {
		return Empty
	}
	return Interval{Inf: -x.Sup, Sup: -x.Inf}
}

// Mul returns an outward-rounded enclosure of {a*b : a ∈ x, b ∈ y}.
func Mul(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty
	}
	p := [4]float64{x.Inf * y.Inf, x.Inf * y.Sup, x.Sup * y.Inf, x.Sup * y.Sup}
	lo, hi := p[0], p[0]
	for _, v := range p[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Interval{Inf: down(lo), Sup: up(hi)}
}

// Div returns an outward-rounded enclosure of {a/b : a ∈ x, b ∈ y}. Division
// by an interval straddling zero returns Entire (a sound, if loose,
// enclosure) rather than splitting into two intervals, since the engine
// consumes a single Interval per axis.
func Div(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty
	}
	if y.Contains(0) {
		if y.Inf == 0 && y.Sup == 0 {
			return Empty
		}
		return Entire
	}
	return Mul(x, Interval{Inf: down(1 / y.Sup), Sup: up(1 / y.Inf)})
}

// FMA returns an outward-rounded enclosure of a*x+b for interval scale a and
// translation b, used by the affine mapper (spec.md §4.5) to convert block
// coordinates to graph-space regions in one fused step.
func FMA(a, x, b Interval) Interval {
	return Add(Mul(a, x), b)
}

// Bisect splits x at its midpoint into two halves that overlap only at the
// midpoint, matching the engine's XY/NΘ subdivision semantics.
func Bisect(x Interval) (lo, hi Interval) {
	m := x.Mid()
	return Interval{Inf: x.Inf, Sup: m}, Interval{Inf: m, Sup: x.Sup}
}
