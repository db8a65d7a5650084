// Package ivgraph renders the solution set of a two-variable (in)equality
// onto a raster image by adaptive interval-arithmetic refinement.
//
// Given a Relation that evaluates a Boolean combination of sign-decorated
// atomic formulas over interval-valued (x, y, branch) regions, Graph
// repeatedly subdivides an image's pixels (and, for relations with branches,
// a discrete branch axis) until every pixel is proven True, proven False, or
// the configured time/memory/subdivision budget is exhausted and it is left
// Uncertain. The result is always sound: no pixel is ever marked True or
// False unless the proof holds for every real point it covers.
//
// Everything is organized under single-purpose subpackages:
//
//	sign/     — sign sets and the Com/Dac/Def/Trv decoration lattice
//	interval/ — minimal outward-rounded interval arithmetic
//	cache/    — two-level evaluation cache (per-axis, full-point)
//	relation/ — the Relation collaborator interface and Boolean-tree forms
//	grid/     — the W×H pixel raster and True/False/Uncertain rendering
//	block/    — region+branch block addressing and the subdivision queue
//	affine/   — pixel-space to graph-space coordinate mapping
//	stats/    — cumulative run statistics
//	engine/   — the refinement loop itself (Graph.Refine)
//	demo/     — hand-built relations (line, half-plane, circle, cusp, a
//	            branch-indexed curve) exercising every relation shape
//
// engine/scenario_test.go drives a Graph end to end over the demo relations.
package ivgraph
