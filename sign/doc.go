// Package sign provides the sign/decoration lattice that every interval
// evaluation in ivgraph is expressed over.
//
// A SignSet is a four-element bit vector over {neg, zero, pos, nan}: the set
// of signs an expression's value might take on a region. A Decoration is a
// totally ordered confidence tag {Com ≥ Dac ≥ Def ≥ Trv} describing how much
// domain regularity the evaluator could prove while computing that SignSet.
// DecSignSet pairs the two, with And/Or/Not combinators over single values.
// The refinement engine collapses a Boolean formula tree to a verdict with
// package relation's EvalOp over the per-atom predicates defined here.
//
// Complexity: every operation here is O(1) or O(n) in the number of atomic
// formulas; there is no recursion or allocation beyond the result slice.
package sign
