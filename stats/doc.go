// Package stats implements the Statistics & progress component of
// spec.md §2/§6: counters the refinement engine updates as it runs and
// exposes read-only via Graph.Statistics.
package stats
