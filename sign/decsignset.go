package sign

// DecSignSet is the evaluation result of a single atomic formula `f ⋈ 0` over
// a region: the set of signs f might take, decorated with how much domain
// regularity the evaluator could establish while computing it.
type DecSignSet struct {
	S Set
	D Decoration
}

// Undefined is the DecSignSet of a formula the evaluator could not bound at
// all: every sign is possible and nothing is known about regularity.
var Undefined = DecSignSet{S: Full, D: Trv}

// CertainlyTrue reports whether this atomic result proves `f = 0` holds
// everywhere in the region: the sign set is exactly {0} and the decoration
// is strong enough (≥ Def) to trust that the region contains no undefined
// point skewing the conclusion. Spec §4.1, "certainly true".
func (d DecSignSet) CertainlyTrue() bool {
	return d.S.CertainlyZero() && d.D.Ge(Def)
}

// CertainlyNonzero reports whether f is proven nonzero (and defined)
// everywhere in the region: no sign set containing 0 or NaN.
func (d DecSignSet) CertainlyNonzero() bool {
	return d.S.CertainlyNonzero()
}

// PossiblyZero reports whether 0 ∈ S: the region might contain a zero of f.
// Spec §4.1, "possibly zero".
func (d DecSignSet) PossiblyZero() bool {
	return d.S.MaybeZero()
}

// LocallyZero reports whether d proves f ≡ 0 with at least decoration Dac,
// the strength the IVT / "relation holds everywhere" shortcut (§4.6.2)
// needs in order to license substituting a conjunct's global truth for a
// sign-change witness.
func (d DecSignSet) LocallyZero() bool {
	return d.S.CertainlyZero() && d.D.Ge(Dac)
}

// And combines two atomic results as a conjunction would combine their
// truth values: sign sets union (either could be the nonzero witness that
// breaks the conjunction) and decoration takes the weaker of the two.
func And(a, b DecSignSet) DecSignSet {
	return DecSignSet{S: a.S.Union(b.S), D: Min(a.D, b.D)}
}

// Or combines two atomic results as a disjunction would.
func Or(a, b DecSignSet) DecSignSet {
	return DecSignSet{S: a.S.Union(b.S), D: Min(a.D, b.D)}
}

// Not negates the sign set (decoration is preserved: negation does not
// change what is known about continuity/definedness).
func Not(a DecSignSet) DecSignSet {
	return DecSignSet{S: a.S.Negate(), D: a.D}
}
