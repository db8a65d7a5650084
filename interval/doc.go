// Package interval implements a minimal outward-rounded interval arithmetic
// kernel.
//
// spec.md §1 and §6 declare the real interval arithmetic library (sums of
// intervals with decoration tags) an external collaborator; no example in
// the retrieval pack implements one, so this package is a small stand-in
// sized to exactly what the affine mapper, evaluation cache keys, and
// sample-point selection in package engine need: endpoints, arithmetic,
// bisection, and the bit-pattern helpers for the "simple bit" sample
// heuristic (spec.md §4.6.2). It is not a general-purpose rigorous
// arithmetic library and makes no attempt to handle every IEEE-754 corner
// case beyond what those call sites require.
package interval
