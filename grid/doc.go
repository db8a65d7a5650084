// Package grid implements the Image component of spec.md §3/§4.4: a 2D grid
// of tri-state pixels (Uncertain/True/False) plus, per pixel, the index of
// the last block that was appended to the queue and covered it — the bit of
// bookkeeping the sibling-index rule (spec.md §4.6.3) needs to decide when a
// pixel may be finalized False.
//
// Grounded on gridgraph.GridGraph (github.com/katalvlaran/lvlath/gridgraph):
// same row-major flat-array-of-cells shape, same Width/Height/index/Coordinate
// layout, generalized from a single int-valued cell to the (state,
// lastQueuedBlock) pair the engine needs, and with gridgraph's
// connected-components/BFS machinery (out of scope here) replaced by the
// render and finalization operations spec.md §4.4 and §6 call for.
package grid
