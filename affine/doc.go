// Package affine implements the affine mapper of spec.md §4.5: converting a
// block's integer pixel-space extent into a real graph-space region via
// four fused-multiply-add interval operations, plus the outer/inner/
// subpixel-outer region constructions of spec.md §3 that the refinement
// engine's classification rules consume.
//
// New to this module (no direct teacher analogue — lvlath has no coordinate
// geometry), but grounded on package interval's FMA primitive and the
// teacher's "small, single-purpose free functions over a struct" shape
// (e.g. matrix/impl_linear_algebra.go).
package affine
