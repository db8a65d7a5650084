package affine

import (
	"math"

	"github.com/katalvlaran/ivgraph/block"
	"github.com/katalvlaran/ivgraph/interval"
)

// Mapper converts block (integer pixel) coordinates into real graph-space
// intervals, spec.md §4.5: x_real = sx·px + tx, y_real = sy·py + ty, with
// sx = Wgraph/W, sy = Hgraph/H — every one of sx, sy, tx, ty itself an
// interval so the mapping stays rigorous.
type Mapper struct {
	Sx, Sy, Tx, Ty interval.Interval
	W, H           int
}

// New builds a Mapper for a W×H image over graph region (l, r, b, t), each
// given as an interval per spec.md §6's graph_region parameter.
func New(l, r, b, t interval.Interval, w, h int) Mapper {
	wGraph := interval.Sub(r, l)
	hGraph := interval.Sub(t, b)
	return Mapper{
		Sx: interval.Div(wGraph, interval.Point(float64(w))),
		Sy: interval.Div(hGraph, interval.Point(float64(h))),
		Tx: l,
		Ty: b,
		W:  w,
		H:  h,
	}
}

// mapX converts a pixel-space x coordinate (a point) to a real-space
// interval via the fused x_real = sx·px + tx.
func (m Mapper) mapX(px float64) interval.Interval {
	return interval.FMA(m.Sx, interval.Point(px), m.Tx)
}

// mapY converts a pixel-space y coordinate (a point) to a real-space
// interval via the fused y_real = sy·py + ty.
func (m Mapper) mapY(py float64) interval.Interval {
	return interval.FMA(m.Sy, interval.Point(py), m.Ty)
}

// Point maps a single pixel-space coordinate (px, py) to its real-space
// image under the fused affine map, returned as a pair of (generally thin,
// rounding-widened) intervals suitable as a Full-cache sample point (spec.md
// §4.6.2, §4.2).
func (m Mapper) Point(px, py float64) (x, y interval.Interval) {
	return m.mapX(px), m.mapY(py)
}

// Region returns b's real-space region as an inexact Region: each of the
// four sides is the image of b's pixel-space extent under mapX/mapY.
func (m Mapper) Region(b block.Block) Region {
	px0, py0, px1, py1 := b.PixelExtent()
	return Region{L: m.mapX(px0), R: m.mapX(px1), B: m.mapY(py0), T: m.mapY(py1)}
}

// ClippedRegion is Region, but first clamps b's pixel-space extent to not
// exceed [0, W] × [0, H]. Needed for pixel/superpixel blocks whose nominal
// extent would otherwise overrun the right/top edge when W or H is not a
// power of two (spec.md §4.5).
func (m Mapper) ClippedRegion(b block.Block) Region {
	px0, py0, px1, py1 := b.PixelExtent()
	if px1 > float64(m.W) {
		px1 = float64(m.W)
	}
	if py1 > float64(m.H) {
		py1 = float64(m.H)
	}
	return Region{L: m.mapX(px0), R: m.mapX(px1), B: m.mapY(py0), T: m.mapY(py1)}
}

// SubpixelOuter builds the "subpixel outer" region of spec.md §3: on a side
// that is exactly aligned to an integer pixel boundary, the exact fused
// endpoint is used; on an interior (fractional) side, only the midpoint of
// the fused interval is used. Applied to every subpixel block tiling one
// pixel, the resulting outer regions partition the pixel's outer boundary
// exactly, since every non-aligned side is collapsed to the same single
// real number regardless of which sibling computed it.
func (m Mapper) SubpixelOuter(b block.Block) Region {
	px0, py0, px1, py1 := b.PixelExtent()
	return Region{
		L: m.edge(m.mapX(px0), isIntegral(px0)),
		R: m.edge(m.mapX(px1), isIntegral(px1)),
		B: m.edge(m.mapY(py0), isIntegral(py0)),
		T: m.edge(m.mapY(py1), isIntegral(py1)),
	}
}

func (m Mapper) edge(raw interval.Interval, aligned bool) interval.Interval {
	if aligned {
		return raw
	}
	return interval.Point(raw.Mid())
}

func isIntegral(px float64) bool { return px == math.Trunc(px) }
