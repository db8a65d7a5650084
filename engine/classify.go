package engine

import (
	"github.com/katalvlaran/ivgraph/affine"
	"github.com/katalvlaran/ivgraph/block"
	"github.com/katalvlaran/ivgraph/cache"
	"github.com/katalvlaran/ivgraph/interval"
	"github.com/katalvlaran/ivgraph/relation"
	"github.com/katalvlaran/ivgraph/sign"
)

// verdict is the outcome of classifying one block: a terminal proof, or
// "keep subdividing" (spec.md §4.6.1, §4.6.2).
type verdict uint8

const (
	verdictUncertain verdict = iota
	verdictTrue
	verdictFalse
)

// evalRegion evaluates the relation over x, y, n through the PerAxis cache,
// used for whole-block (superpixel/pixel/subpixel outer) classification.
func (g *Graph) evalRegion(x, y, n interval.Interval) relation.EvalResult {
	return g.evalThrough(g.perAxis, x, y, n)
}

// evalPoint evaluates the relation at a single sample point through the Full
// cache, used by the IVT existence proof (spec.md §4.6.2).
func (g *Graph) evalPoint(px, py float64, n interval.Interval) relation.EvalResult {
	return g.evalThrough(g.full, interval.Point(px), interval.Point(py), n)
}

func (g *Graph) evalThrough(c *cache.Cache[relation.EvalResult], x, y, n interval.Interval) relation.EvalResult {
	k := cache.NewKey(x, y, n)
	if v, ok := c.Get(k); ok {
		return v
	}
	v := g.rel.Eval(x, y, n)
	c.Put(k, v)
	return v
}

// classifyWhole classifies a superpixel or pixel block by evaluating the
// relation once over its outer enclosing region (spec.md §4.6.1): certainly
// true if the combinator tree evaluates to true everywhere in the region,
// certainly false if no atomic formula can possibly be zero anywhere in it,
// else still uncertain.
func (g *Graph) classifyWhole(region affine.Region, n interval.Interval) verdict {
	x, y := region.Outer()
	r := g.evalRegion(x, y, n)
	forms, root := g.rel.Forms(), g.rel.Root()
	if relation.EvalOp(forms, root, func(atom int, op sign.CompareOp) bool { return r[atom].CertainlyHolds(op) }) {
		return verdictTrue
	}
	if !relation.EvalOp(forms, root, func(atom int, op sign.CompareOp) bool { return r[atom].PossiblyHolds(op) }) {
		return verdictFalse
	}
	return verdictUncertain
}

// classifySubpixel classifies a subpixel block. It first attempts the IVT
// existence proof (spec.md §4.6.2): if the Boolean tree can be proven to
// certainly hold somewhere in the block via a sign change between sample
// points (or an atomic already proven locally zero across the whole block),
// the containing pixel is True. Otherwise it falls back to the same
// certainly-false test classifyWhole uses, over the subpixel's outer region.
func (g *Graph) classifySubpixel(b block.Block) verdict {
	region := g.mapper.SubpixelOuter(b)
	x, y := region.Outer()
	whole := g.evalRegion(x, y, b.NTheta)
	forms, root := g.rel.Forms(), g.rel.Root()

	samples := g.ivtSamples(b)
	points := make([]relation.EvalResult, len(samples))
	for i, s := range samples {
		rx, ry := g.mapper.Point(s[0], s[1])
		points[i] = g.evalThrough(g.full, rx, ry, b.NTheta)
	}

	if existsCertainly(forms, root, whole, points) {
		return verdictTrue
	}
	if !relation.EvalOp(forms, root, func(atom int, op sign.CompareOp) bool { return whole[atom].PossiblyHolds(op) }) {
		return verdictFalse
	}
	return verdictUncertain
}

// ivtSamples returns the sample points classifySubpixel feeds to the IVT
// existence proof: the block's four pixel-space corners plus the
// simple-bit-preferred point on each axis (spec.md §4.6.2).
func (g *Graph) ivtSamples(b block.Block) [][2]float64 {
	px0, py0, px1, py1 := b.PixelExtent()
	sx := interval.SimpleBit(interval.New(px0, px1))
	sy := interval.SimpleBit(interval.New(py0, py1))
	return [][2]float64{
		{px0, py0}, {px1, py0}, {px0, py1}, {px1, py1},
		{sx, sy},
	}
}

// existsCertainly is the recursive "solution certainly exists" rule over the
// relation's Boolean combinator tree (spec.md §4.6.2): an atomic formula
// `f Op 0` certainly holds somewhere in the block if either it is proven to
// hold across the whole block (LocallyHolds, decoration ≥ Dac), or — for an
// equality atomic specifically — its sign changes between two sample points
// (an IVT sign-change witness: f can't skip over zero without hitting it, by
// continuity). An inequality or disequality atomic needs no sign-change
// witness: any single sample point whose sign set certainly satisfies Op is
// itself the existence proof. And requires both operands to certainly hold;
// Or requires either. Not is handled by threading negation through to the
// leaves rather than negating a compound truth value, since "exists a point
// where NOT(subtree) holds" is not the same question as "NOT(exists a point
// where subtree holds)" — this is a deliberate simplifying assumption (see
// DESIGN.md): Not is only trusted over an atomic operand; a Not over a
// compound subtree conservatively reports "not proven" rather than risk an
// unsound proof.
func existsCertainly(forms []relation.StaticForm, root int, whole relation.EvalResult, points []relation.EvalResult) bool {
	n := forms[root]
	switch n.Kind {
	case relation.FormAtomic:
		return atomExistsCertainly(n.Atom, n.Op, whole, points)
	case relation.FormAnd:
		return existsCertainly(forms, n.Left, whole, points) && existsCertainly(forms, n.Right, whole, points)
	case relation.FormOr:
		return existsCertainly(forms, n.Left, whole, points) || existsCertainly(forms, n.Right, whole, points)
	case relation.FormNot:
		operand := forms[n.Left]
		if operand.Kind != relation.FormAtomic {
			return false
		}
		return atomExistsCertainly(operand.Atom, negateOp(operand.Op), whole, points)
	default:
		panic("engine: unknown StaticForm kind")
	}
}

// negateOp returns the comparison op equivalent to Not(f Op 0), i.e. f Op' 0
// where Op' is Op's logical complement.
func negateOp(op sign.CompareOp) sign.CompareOp {
	switch op {
	case sign.Eq:
		return sign.Ne
	case sign.Ne:
		return sign.Eq
	case sign.Lt:
		return sign.Ge
	case sign.Le:
		return sign.Gt
	case sign.Gt:
		return sign.Le
	case sign.Ge:
		return sign.Lt
	default:
		return op
	}
}

// isNegOrZero and isPosOrZero implement the subset tests spec.md §4.6.2 uses
// for the IVT sign-change witness: r_p.S ⊆ {−,0} and r_p.S ⊆ {+,0}
// respectively (rust reference: `(SignSet::NEG|ZERO).contains(ss)`), not mere
// bit presence — a point whose evaluated interval straddles zero (S =
// Neg|Zero|Pos) satisfies neither and so cannot serve as either half of the
// witness.
func isNegOrZero(s sign.Set) bool { return s&^(sign.Neg|sign.Zero) == 0 }
func isPosOrZero(s sign.Set) bool { return s&^(sign.Pos|sign.Zero) == 0 }

func atomExistsCertainly(atom int, op sign.CompareOp, whole relation.EvalResult, points []relation.EvalResult) bool {
	if whole[atom].LocallyHolds(op) {
		return true
	}
	for _, p := range points {
		if p[atom].S.SatisfiesCertainly(op) {
			return true
		}
	}
	if op != sign.Eq {
		return false
	}
	// The sign-change witness requires the region-level decoration to prove
	// continuity (spec.md §4.6.2: D = r.D ≥ Dac) before two straddling
	// samples can be read as an intermediate-value crossing rather than a
	// discontinuous jump.
	if !whole[atom].D.Ge(sign.Dac) {
		return false
	}
	sawNeg, sawPos := false, false
	for _, p := range points {
		s := p[atom].S
		if isNegOrZero(s) {
			sawNeg = true
		}
		if isPosOrZero(s) {
			sawPos = true
		}
	}
	return sawNeg && sawPos
}
