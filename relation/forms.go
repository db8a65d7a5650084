package relation

import "github.com/katalvlaran/ivgraph/sign"

// FormKind distinguishes the nodes of a relation's flattened Boolean tree.
type FormKind uint8

const (
	// FormAtomic is a leaf: `f(x,y) ⋈ 0`, identified by an index into an
	// EvalResult.
	FormAtomic FormKind = iota
	// FormAnd is a conjunction of the nodes at Left and Right.
	FormAnd
	// FormOr is a disjunction of the nodes at Left and Right.
	FormOr
	// FormNot is a negation of the node at Left (Right is unused).
	FormNot
)

// StaticForm is one node of a relation's Boolean combinator tree, flattened
// into an indexed slice rather than a pointer tree. spec.md §9 notes the
// collaborator's real expression graph may share subexpressions (a DAG); the
// engine only ever consumes this flat view, so no cycle or ownership
// question arises here — Left/Right are plain indices into the same Forms
// slice and may legitimately repeat across nodes.
type StaticForm struct {
	Kind        FormKind
	Atom        int             // valid when Kind == FormAtomic: index into EvalResult
	Op          sign.CompareOp  // valid when Kind == FormAtomic: the atomic's comparison operator
	Left, Right int             // valid when Kind != FormAtomic: indices into the Forms slice
}

// Atomic returns a leaf node for the equality atomic formula `f = 0` at
// EvalResult index i. Equivalent to AtomicOp(i, sign.Eq).
func Atomic(i int) StaticForm { return StaticForm{Kind: FormAtomic, Atom: i, Op: sign.Eq} }

// AtomicOp returns a leaf node for the atomic formula `f Op 0` at EvalResult
// index i, for relations built from inequalities as well as equalities.
func AtomicOp(i int, op sign.CompareOp) StaticForm {
	return StaticForm{Kind: FormAtomic, Atom: i, Op: op}
}

// And returns an And node over forms[left] and forms[right].
func And(left, right int) StaticForm { return StaticForm{Kind: FormAnd, Left: left, Right: right} }

// Or returns an Or node over forms[left] and forms[right].
func Or(left, right int) StaticForm { return StaticForm{Kind: FormOr, Left: left, Right: right} }

// NotForm returns a Not node over forms[operand].
func NotForm(operand int) StaticForm { return StaticForm{Kind: FormNot, Left: operand} }

// Eval reduces forms, rooted at root, to a single Boolean given r, by
// interpreting And/Or/Not over the atomic predicate
// "(SignSet == {0}) ∧ (Decoration ≥ Def)" — spec.md §3's "certainly true"
// predicate, which is what a Boolean combinator returning True means: the
// combined relation holds everywhere on the region.
func Eval(forms []StaticForm, root int, r EvalResult) bool {
	return EvalWith(forms, root, func(atom int) bool { return r[atom].CertainlyTrue() })
}

// EvalPossiblyZero reduces forms the same way but over the "possibly zero"
// atomic predicate (0 ∈ S); its negation at the root is the "certainly
// false" test in spec.md §4.6.1: no atomic can be zero anywhere on the
// region.
func EvalPossiblyZero(forms []StaticForm, root int, r EvalResult) bool {
	return EvalWith(forms, root, func(atom int) bool { return r[atom].PossiblyZero() })
}

// EvalWith reduces forms, rooted at root, to a Boolean using atom as the
// per-atomic-formula predicate (index into EvalResult). Eval and
// EvalPossiblyZero are EvalWith specialized to the CertainlyTrue and
// PossiblyZero predicates respectively. Package engine does not call it;
// it uses the operator-aware EvalOp instead.
func EvalWith(forms []StaticForm, root int, atom func(int) bool) bool {
	n := forms[root]
	switch n.Kind {
	case FormAtomic:
		return atom(n.Atom)
	case FormAnd:
		return EvalWith(forms, n.Left, atom) && EvalWith(forms, n.Right, atom)
	case FormOr:
		return EvalWith(forms, n.Left, atom) || EvalWith(forms, n.Right, atom)
	case FormNot:
		return !EvalWith(forms, n.Left, atom)
	default:
		panic("relation: unknown StaticForm kind")
	}
}

// EvalOp reduces forms like EvalWith, but supplies each atomic leaf's
// comparison operator to holds alongside its EvalResult index. Package
// engine uses this to implement operator-aware classification (Eq, Le, Ge,
// ...) without hardcoding the equality-only assumption Eval/EvalPossiblyZero
// make.
func EvalOp(forms []StaticForm, root int, holds func(atom int, op sign.CompareOp) bool) bool {
	n := forms[root]
	switch n.Kind {
	case FormAtomic:
		return holds(n.Atom, n.Op)
	case FormAnd:
		return EvalOp(forms, n.Left, holds) && EvalOp(forms, n.Right, holds)
	case FormOr:
		return EvalOp(forms, n.Left, holds) || EvalOp(forms, n.Right, holds)
	case FormNot:
		return !EvalOp(forms, n.Left, holds)
	default:
		panic("relation: unknown StaticForm kind")
	}
}
