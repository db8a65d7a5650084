package demo

import (
	"sync/atomic"

	"github.com/katalvlaran/ivgraph/interval"
	"github.com/katalvlaran/ivgraph/sign"
)

// counter is an embeddable EvalCount implementation shared by every
// relation in this package, counting Eval calls the way the teacher's
// stats-gathering code uses atomic counters for concurrent-safe tallies.
type counter struct{ n uint64 }

func (c *counter) tick() { atomic.AddUint64(&c.n, 1) }

func (c *counter) EvalCount() uint64 { return atomic.LoadUint64(&c.n) }

// atom wraps a computed interval as a DecSignSet: Com decoration for a thin
// (point) result, Dac otherwise, since every relation in this package is a
// polynomial (defined and continuous everywhere).
func atom(v interval.Interval) sign.DecSignSet {
	d := sign.Dac
	if v.IsPoint() {
		d = sign.Com
	}
	return sign.DecSignSet{S: signSetOf(v), D: d}
}

func signSetOf(v interval.Interval) sign.Set {
	if v.IsEmpty() {
		return sign.Empty
	}
	switch {
	case v.Inf > 0:
		return sign.Pos
	case v.Sup < 0:
		return sign.Neg
	case v.Inf == 0 && v.Sup == 0:
		return sign.Zero
	case v.Inf == 0:
		return sign.Zero | sign.Pos
	case v.Sup == 0:
		return sign.Neg | sign.Zero
	default:
		return sign.Neg | sign.Zero | sign.Pos
	}
}
