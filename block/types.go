package block

import (
	"math"

	"github.com/katalvlaran/ivgraph/interval"
)

// SubdivisionDir is the hint a re-queued block carries for which dimension
// the engine should split next (spec.md §3, §4.6 step 4).
type SubdivisionDir uint8

const (
	// DirXY subdivides the spatial (x, y) extent.
	DirXY SubdivisionDir = iota
	// DirNTheta bisects the polar branch interval.
	DirNTheta
)

// Block is a rectangular region of the image, addressed as
// [X·2^Kx, (X+1)·2^Kx] × [Y·2^Ky, (Y+1)·2^Ky] in pixel-space, plus a branch
// interval NTheta (spec.md §3). Kx, Ky ∈ [MinK, K] and are either both ≥ 0
// (superpixel/pixel) or both ≤ 0 (subpixel) — the engine never constructs a
// Block violating that invariant.
type Block struct {
	X, Y    int32
	Kx, Ky  int8
	NTheta  interval.Interval
	NextDir SubdivisionDir
}

// IsSuperpixel reports whether b spans more than one pixel on at least one
// axis (Kx > 0 ∨ Ky > 0).
func (b Block) IsSuperpixel() bool { return b.Kx > 0 || b.Ky > 0 }

// IsPixel reports whether b is exactly one pixel (Kx = Ky = 0).
func (b Block) IsPixel() bool { return b.Kx == 0 && b.Ky == 0 }

// IsSubpixel reports whether b is smaller than a pixel on at least one axis
// (Kx < 0 ∨ Ky < 0).
func (b Block) IsSubpixel() bool { return b.Kx < 0 || b.Ky < 0 }

// PixelExtent returns b's region in real-valued pixel-space coordinates:
// [px0, px1) × [py0, py1). For a superpixel/pixel block these are integers;
// for a subpixel block they are fractions of one pixel. Uses math.Ldexp so
// negative Kx/Ky (subpixel levels) compute the fractional extent directly
// rather than via division.
func (b Block) PixelExtent() (px0, py0, px1, py1 float64) {
	px0 = math.Ldexp(float64(b.X), int(b.Kx))
	py0 = math.Ldexp(float64(b.Y), int(b.Ky))
	px1 = math.Ldexp(float64(b.X+1), int(b.Kx))
	py1 = math.Ldexp(float64(b.Y+1), int(b.Ky))
	return
}

// PixelRect returns b's region as integer pixel coordinates [x0,x1)×[y0,y1).
// Valid only for superpixel/pixel blocks (Kx, Ky ≥ 0); callers must check
// IsSubpixel first.
func (b Block) PixelRect() (x0, y0, x1, y1 int) {
	w := 1 << uint(b.Kx)
	h := 1 << uint(b.Ky)
	x0 = int(b.X) * w
	y0 = int(b.Y) * h
	return x0, y0, x0 + w, y0 + h
}

// CanSubdivideXY reports whether b can still be split spatially without
// passing the subpixel floor.
func (b Block) CanSubdivideXY() bool {
	return b.Kx > MinK || b.Ky > MinK
}
