package cache

import (
	"math"

	"github.com/katalvlaran/ivgraph/interval"
)

// Key is the lookup key shared by both cache levels: the IEEE-754 bit
// patterns of an (x, y, n_θ) triple of intervals. Using bit patterns rather
// than floats as the map key sidesteps NaN's "never equal to itself"
// surprise and makes Entire/Empty hash and compare like any other value.
type Key struct {
	xInf, xSup uint64
	yInf, ySup uint64
	nInf, nSup uint64
}

// NewKey builds the cache key for evaluating a relation over region
// (x, y) with branch interval n.
func NewKey(x, y, n interval.Interval) Key {
	return Key{
		xInf: math.Float64bits(x.Inf), xSup: math.Float64bits(x.Sup),
		yInf: math.Float64bits(y.Inf), ySup: math.Float64bits(y.Sup),
		nInf: math.Float64bits(n.Inf), nSup: math.Float64bits(n.Sup),
	}
}
