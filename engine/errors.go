package engine

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, spec.md §7. All three are fatal for the current
// Graph but not corrupting: prior pixel proofs remain valid, and callers may
// still call Statistics and Render* for a partial image afterward.
var (
	// ErrBlockIndexOverflow is returned when the next enqueue index would
	// exceed 2^32-1.
	ErrBlockIndexOverflow = errors.New("engine: queued-block index would overflow uint32")
	// ErrReachedMemLimit is returned when total heap usage still exceeds
	// MemLimit after a cache flush.
	ErrReachedMemLimit = errors.New("engine: memory limit reached even after flushing caches")
	// ErrReachedSubdivisionLimit is returned when a block can no longer be
	// subdivided along any permitted axis.
	ErrReachedSubdivisionLimit = errors.New("engine: reached subdivision limit")
)

// wrap adds op context to a sentinel error, matching the teacher's
// matrixErrorf convention (matrix/impl_linear_algebra.go).
func wrap(op string, err error) error {
	return fmt.Errorf("engine: %s: %w", op, err)
}
