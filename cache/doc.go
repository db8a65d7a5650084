// Package cache implements the two-level evaluation cache the refinement
// engine consults before invoking a Relation: PerAxis, keyed by the
// (x-interval, y-interval, n_θ) of a region evaluation, and Full, keyed by
// (x-point, y-point, n_θ) for IVT sample points (spec.md §4.2).
//
// Both levels share the same underlying generic, size-accounted map; they
// are kept as separate instances (rather than one shared cache) because
// region evaluations and point evaluations are never reused across each
// other and mixing them would only dilute the hit rate. Grounded on the
// teacher's map-backed adjacency storage (core/types.go) for the "plain Go
// map, explicit size accounting" shape; generics (Go 1.23) replace the
// teacher's concrete *Vertex/*Edge value types since the cache is reused for
// two different region shapes (region vs. point keys) across the module.
package cache
