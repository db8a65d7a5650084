package demo

import (
	"github.com/katalvlaran/ivgraph/interval"
	"github.com/katalvlaran/ivgraph/relation"
	"github.com/katalvlaran/ivgraph/sign"
)

// Line is the horizontal axis, y = 0: a single equality atomic, the
// simplest possible relation and a FunctionOfX one (y = f(x) with f ≡ 0;
// Eval reads only y).
type Line struct{ counter }

func (Line) Forms() []relation.StaticForm { return []relation.StaticForm{relation.Atomic(0)} }
func (Line) Root() int                    { return 0 }
func (Line) Type() relation.Type          { return relation.FunctionOfX }

func (l *Line) Eval(_, y, _ interval.Interval) relation.EvalResult {
	l.tick()
	return relation.EvalResult{atom(y)}
}

// HalfPlane is the closed right half-plane, x ≥ 0: a single inequality
// atomic evaluated over the region's x extent alone.
type HalfPlane struct{ counter }

func (HalfPlane) Forms() []relation.StaticForm {
	return []relation.StaticForm{relation.AtomicOp(0, sign.Ge)}
}
func (HalfPlane) Root() int           { return 0 }
func (HalfPlane) Type() relation.Type { return relation.Implicit }

func (h *HalfPlane) Eval(x, _, _ interval.Interval) relation.EvalResult {
	h.tick()
	return relation.EvalResult{atom(x)}
}

// Circle is the unit circle, x² + y² = 1: one equality atomic over an
// implicit (neither-axis-preferred) relation.
type Circle struct{ counter }

func (Circle) Forms() []relation.StaticForm { return []relation.StaticForm{relation.Atomic(0)} }
func (Circle) Root() int                    { return 0 }
func (Circle) Type() relation.Type          { return relation.Implicit }

func (c *Circle) Eval(x, y, _ interval.Interval) relation.EvalResult {
	c.tick()
	f := interval.Sub(interval.Add(interval.Mul(x, x), interval.Mul(y, y)), interval.Point(1))
	return relation.EvalResult{atom(f)}
}

// Cusp is the region bounded by a cuspidal cubic, y² ≤ x³: a single
// inequality atomic whose zero set has a singular point at the origin,
// stressing the engine's subdivision budget near a non-smooth boundary the
// way spec.md §8's cusp scenario intends.
type Cusp struct{ counter }

func (Cusp) Forms() []relation.StaticForm {
	return []relation.StaticForm{relation.AtomicOp(0, sign.Le)}
}
func (Cusp) Root() int           { return 0 }
func (Cusp) Type() relation.Type { return relation.Implicit }

func (c *Cusp) Eval(x, y, _ interval.Interval) relation.EvalResult {
	c.tick()
	x3 := interval.Mul(interval.Mul(x, x), x)
	y2 := interval.Mul(y, y)
	f := interval.Sub(y2, x3)
	return relation.EvalResult{atom(f)}
}

// BranchedParabola is y² = x restricted to one sheet at a time by a branch
// index n: n < 0 selects the lower sheet (y ≤ 0), n > 0 the upper sheet
// (y ≥ 0), and n = 0 makes the branch atom 0 ≥ 0, which admits both sheets.
// It is the package's Polar-typed relation: standing in for a genuinely
// transcendental polar curve (see doc.go), it still exercises exactly the
// branch-interval machinery a true polar relation would — the three-way
// seeding the engine's Graph performs for any Polar relation (spec.md §4.6
// "Initialization") partitions n into precisely these three branches.
type BranchedParabola struct{ counter }

func (BranchedParabola) Forms() []relation.StaticForm {
	return []relation.StaticForm{
		relation.Atomic(0),             // y² - x = 0
		relation.AtomicOp(1, sign.Ge), // y·n ≥ 0 (branch consistency)
		relation.And(0, 1),
	}
}
func (BranchedParabola) Root() int           { return 2 }
func (BranchedParabola) Type() relation.Type { return relation.Polar }

func (b *BranchedParabola) Eval(x, y, n interval.Interval) relation.EvalResult {
	b.tick()
	curve := interval.Sub(interval.Mul(y, y), x)
	branch := interval.Mul(y, n)
	return relation.EvalResult{atom(curve), atom(branch)}
}
