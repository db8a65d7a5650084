// Package demo provides a handful of concrete relation.Relation
// implementations used to exercise package engine end to end: an
// axis-aligned line, a half-plane, a circle, a cuspidal-cubic inequality,
// and a branch-indexed curve standing in for a genuinely polar relation.
// None of these express anything package interval cannot compute: interval
// deliberately implements only the field operations (+, -, ×, ÷) spec.md §4.7
// scopes it to, so no transcendental (sin/sqrt) relation is groundable here
// without inventing an interval primitive the rest of the module never
// needs — see DESIGN.md for the substitution this implies for the "polar
// rose" scenario.
package demo
