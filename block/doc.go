// Package block implements the Block and Block queue components of
// spec.md §3/§4.3: a compact power-of-two-aligned rectangular region of the
// image (plus the polar branch interval and next-subdivision-direction
// hint), and a delta+PrefixVarint-encoded FIFO that stores millions of
// blocks cheaply by exploiting Morton-ordered insertion locality.
//
// Grounded on the teacher's queue-based traversal state (algorithms/bfs.go's
// walker.queue: a plain FIFO slice consumed front-to-back) for the
// push/pop shape, generalized from an in-memory slice of vertex IDs to a
// byte-packed encoding since the engine's queue spec.md sizes in the
// millions of entries.
package block
