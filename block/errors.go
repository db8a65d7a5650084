package block

import "errors"

// ErrBlockIndexOverflow is returned by Queue.PushBack when the next enqueue
// index would exceed 2^32-1 (spec.md §4.6 error conditions).
var ErrBlockIndexOverflow = errors.New("block: queued-block index would overflow uint32")

// MinK is the smallest permitted axis level: the subpixel floor (spec.md §6).
const MinK int8 = -15
