package grid

import "errors"

// Sentinel errors for grid.Image construction and indexing.
var (
	// ErrInvalidSize indicates W or H is outside [1, 32768] (spec.md §6 limits).
	ErrInvalidSize = errors.New("grid: width and height must be in [1, 32768]")
	// ErrOutOfBounds indicates a pixel index outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("grid: pixel index out of bounds")
)

// MaxDimension is the largest permitted W or H (spec.md §6).
const MaxDimension = 32768
