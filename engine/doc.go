// Package engine implements the refinement engine of spec.md §4.6: the
// adaptive-subdivision loop that is the core of ivgraph. It pops a block
// from the queue, partitions it into children, classifies each child by
// interval evaluation (through the two-level cache), proves True via the
// intermediate value theorem plus locality, proves False via
// evaluation-yields-nonzero, and re-queues whatever remains undecided —
// all under a fixed memory budget, cooperatively yielding at a timeout
// check rather than via any async scheduler (spec.md §5).
//
// Grounded on the teacher's traversal shape (algorithms/bfs.go's walker:
// init/loop/dequeue/visit/enqueue split into small cooperating methods on a
// single mutable state struct) generalized from a simple unweighted BFS over
// core.Graph vertices to a priority-free FIFO subdivision over geometric
// blocks, and on gridgraph.GridGraph for the pixel-grid classification
// surface it mutates.
package engine
