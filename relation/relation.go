package relation

import "github.com/katalvlaran/ivgraph/interval"

// Type classifies a relation for the engine's subdivision strategy
// (spec.md §4.6 step 2, XY subdivision on pixel/subpixel blocks).
type Type uint8

const (
	// Implicit relations (the general case) subdivide both axes.
	Implicit Type = iota
	// FunctionOfX relations (y = f(x)) subdivide only the x axis below the
	// superpixel level.
	FunctionOfX
	// FunctionOfY relations (x = f(y)) subdivide only the y axis below the
	// superpixel level.
	FunctionOfY
	// Polar relations additionally carry a branch interval (n_θ) dimension.
	Polar
)

// Relation is the compiled relation object the engine consumes. It is an
// external collaborator (spec.md §6): parsing and simplification of the
// source expression happen before a Relation reaches the engine.
type Relation interface {
	// Eval evaluates the relation over region (x, y) and branch interval n,
	// returning one sign.DecSignSet per atomic formula in Forms(). Pure
	// over its inputs and safe for concurrent readers.
	Eval(x, y, n interval.Interval) EvalResult

	// Forms returns the flattened Boolean tree over atomic formulas. Index
	// len(Forms())-1 is conventionally the root, but callers should use
	// Root rather than assume that.
	Forms() []StaticForm

	// Root returns the index into Forms() of the tree's root node.
	Root() int

	// Type reports the relation's subdivision class.
	Type() Type

	// EvalCount returns the number of Eval calls made so far, for
	// statistics (spec.md §6).
	EvalCount() uint64
}
