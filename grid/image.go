package grid

// PixelState is one of the three tri-state pixel classifications (spec.md
// §3). Uncertain is the zero value so a freshly allocated Image starts
// entirely Uncertain without an initialization pass.
type PixelState uint8

const (
	// Uncertain pixels have neither a proof of existence nor of absence.
	Uncertain PixelState = iota
	// True pixels are proven to contain a solution. Terminal.
	True
	// False pixels are proven to contain no solution. Terminal.
	False
)

// String renders s for debugging.
func (s PixelState) String() string {
	switch s {
	case Uncertain:
		return "Uncertain"
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "PixelState(?)"
	}
}

// noBlock is the sentinel "no block has covered this pixel yet" value for
// lastQueuedBlock, distinct from any real QueuedBlockIndex (which starts at 0
// but a pixel's very first coverage always sets the marker explicitly before
// it is ever read, so 0 is never confused with "unset" — MarkQueued is
// always called at least once per pixel during seeding).
const noBlock uint32 = 1<<32 - 1

// Image is a W×H grid of pixel state plus, per pixel, the index of the most
// recent block appended to the queue that covers it (spec.md §4.4).
type Image struct {
	W, H            int
	state           []PixelState
	lastQueuedBlock []uint32
}

// New allocates a W×H Image with every pixel Uncertain.
func New(w, h int) (*Image, error) {
	if w < 1 || w > MaxDimension || h < 1 || h > MaxDimension {
		return nil, ErrInvalidSize
	}
	n := w * h
	img := &Image{
		W:               w,
		H:               h,
		state:           make([]PixelState, n),
		lastQueuedBlock: make([]uint32, n),
	}
	for i := range img.lastQueuedBlock {
		img.lastQueuedBlock[i] = noBlock
	}
	return img, nil
}

// index converts (x, y) to the row-major flat offset. Panics on an
// out-of-bounds index: a programmer error, per spec.md §7, not a recoverable
// condition.
func (img *Image) index(x, y int) int {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		panic(ErrOutOfBounds)
	}
	return y*img.W + x
}

// State returns the current state of pixel (x, y).
func (img *Image) State(x, y int) PixelState {
	return img.state[img.index(x, y)]
}

// SetTrue marks pixel (x, y) True. A no-op if the pixel is already True or
// False: both are terminal (spec.md §3).
func (img *Image) SetTrue(x, y int) {
	i := img.index(x, y)
	if img.state[i] == Uncertain {
		img.state[i] = True
	}
}

// TryFinalizeFalse marks pixel (x, y) False, but only if it is still
// Uncertain and blockIndex is the index this pixel's lastQueuedBlock slot
// currently holds — the sibling-index rule's supersession check (spec.md
// §4.6.3). Returns whether the pixel was finalized.
func (img *Image) TryFinalizeFalse(x, y int, blockIndex uint32) bool {
	i := img.index(x, y)
	if img.state[i] != Uncertain {
		return false
	}
	if img.lastQueuedBlock[i] != blockIndex {
		return false
	}
	img.state[i] = False
	return true
}

// LastQueuedBlock returns the index of the most recent block enqueued that
// covers (x, y), or false if no block has been queued for it yet.
func (img *Image) LastQueuedBlock(x, y int) (idx uint32, ok bool) {
	v := img.lastQueuedBlock[img.index(x, y)]
	if v == noBlock {
		return 0, false
	}
	return v, true
}

// MarkQueued records that blockIndex is the latest block covering (x, y)
// appended to the queue. Called for every pixel in a block's region when
// that block is pushed (spec.md §4.4, §4.6.3).
func (img *Image) MarkQueued(x, y int, blockIndex uint32) {
	img.lastQueuedBlock[img.index(x, y)] = blockIndex
}

// MarkQueuedRect is MarkQueued applied to every pixel in [x0,x1)×[y0,y1),
// clamped to the image bounds. The engine uses this when a superpixel or
// pixel block is pushed onto the queue.
func (img *Image) MarkQueuedRect(x0, y0, x1, y1 int, blockIndex uint32) {
	if x1 > img.W {
		x1 = img.W
	}
	if y1 > img.H {
		y1 = img.H
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.MarkQueued(x, y, blockIndex)
		}
	}
}

// AllTrueRect reports whether every pixel in [x0,x1)×[y0,y1) (clamped to the
// image bounds) is already True — the "every pixel the block covers is
// already True" short-circuit in spec.md §4.6.1.
func (img *Image) AllTrueRect(x0, y0, x1, y1 int) bool {
	if x1 > img.W {
		x1 = img.W
	}
	if y1 > img.H {
		y1 = img.H
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if img.state[img.index(x, y)] != True {
				return false
			}
		}
	}
	return true
}

// SizeInHeap returns the exact byte footprint of the two backing arrays
// (spec.md §4.4).
func (img *Image) SizeInHeap() int {
	return len(img.state)*int(stateSize) + len(img.lastQueuedBlock)*4
}

const stateSize = 1

// Counts returns the number of pixels in each of the three states, for
// statistics reporting.
func (img *Image) Counts() (uncertain, trueCount, falseCount int) {
	for _, s := range img.state {
		switch s {
		case Uncertain:
			uncertain++
		case True:
			trueCount++
		case False:
			falseCount++
		}
	}
	return
}
