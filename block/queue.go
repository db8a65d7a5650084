package block

import "github.com/katalvlaran/ivgraph/interval"

// Queue is the delta+PrefixVarint-encoded FIFO of spec.md §4.3. It stores
// blocks in append order; PushBack returns a strictly monotonic,
// never-reused index (QueuedBlockIndex). Blocks are pushed and popped in the
// same order, so the front and back cursors each track their own running
// (x, y) "last value" for the XOR delta — they drift apart as the queue
// empties, but Morton-ordered insertion keeps both series' deltas small.
//
// polar must be fixed for the Queue's lifetime: it determines whether
// NTheta is persisted per block (non-polar relations always reconstruct the
// Entire sentinel on pop instead).
type Queue struct {
	buf   []byte
	front int

	xLastBack, yLastBack   uint32
	xLastFront, yLastFront uint32

	pushed, popped uint32
	polar          bool
}

// NewQueue creates an empty Queue. polar must match the relation type for
// the graph this queue belongs to (spec.md §4.3 step 4).
func NewQueue(polar bool) *Queue {
	return &Queue{polar: polar}
}

// Len returns the number of blocks currently queued (pushed minus popped).
func (q *Queue) Len() int { return int(q.pushed - q.popped) }

// SizeInHeap returns the queue's backing-array capacity, the dominant term
// in spec.md §4.6 step 6's memory accounting. The buffer is append-only for
// the Queue's lifetime (spec.md §5, "the queue is never shrunk mid-run").
func (q *Queue) SizeInHeap() int { return cap(q.buf) }

// PushBack appends b and returns its QueuedBlockIndex. Returns
// ErrBlockIndexOverflow instead of overflowing past 2^32-1 (spec.md §4.6).
func (q *Queue) PushBack(b Block) (uint32, error) {
	if q.pushed == ^uint32(0) {
		return 0, ErrBlockIndexOverflow
	}
	idx := q.pushed

	xu, yu := uint32(b.X), uint32(b.Y)
	q.buf = appendVarint(q.buf, uint64(xu^q.xLastBack))
	q.buf = appendVarint(q.buf, uint64(yu^q.yLastBack))
	q.xLastBack, q.yLastBack = xu, yu

	q.buf = append(q.buf, byte(b.Kx), byte(b.Ky))
	if q.polar {
		q.buf = appendFloat64(q.buf, b.NTheta.Inf)
		q.buf = appendFloat64(q.buf, b.NTheta.Sup)
	}
	q.buf = append(q.buf, byte(b.NextDir))

	q.pushed++
	return idx, nil
}

// PopFront removes and returns the frontmost block along with the
// QueuedBlockIndex it was pushed with. ok is false if the queue is empty.
func (q *Queue) PopFront() (idx uint32, b Block, ok bool) {
	if q.popped == q.pushed {
		return 0, Block{}, false
	}
	idx = q.popped

	xDelta, n := readVarint(q.buf[q.front:])
	q.front += n
	yDelta, n := readVarint(q.buf[q.front:])
	q.front += n

	x := uint32(xDelta) ^ q.xLastFront
	y := uint32(yDelta) ^ q.yLastFront
	q.xLastFront, q.yLastFront = x, y

	kx := int8(q.buf[q.front])
	ky := int8(q.buf[q.front+1])
	q.front += 2

	ntheta := interval.Entire
	if q.polar {
		ntheta.Inf = readFloat64(q.buf[q.front:])
		q.front += 8
		ntheta.Sup = readFloat64(q.buf[q.front:])
		q.front += 8
	}
	dir := SubdivisionDir(q.buf[q.front])
	q.front++

	q.popped++
	return idx, Block{X: int32(x), Y: int32(y), Kx: kx, Ky: ky, NTheta: ntheta, NextDir: dir}, true
}
