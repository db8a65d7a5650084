package sign

// Decoration tags the regularity an evaluator could prove while computing a
// Set over a region. Ordered strongest to weakest: Com > Dac > Def > Trv.
// Higher decorations license stronger proofs (the IVT existence argument in
// the refinement engine requires at least Dac; the "certainly true"
// shortcut requires at least Def, while "certainly false" checks no
// decoration).
type Decoration uint8

const (
	// Trv ("trivial") means nothing beyond the sign set is known: the
	// function may be discontinuous or undefined anywhere in the region.
	Trv Decoration = iota
	// Def ("defined") means the function is defined (no NaN) everywhere in
	// the region, but continuity is not established.
	Def
	// Dac ("defined and continuous") additionally guarantees continuity,
	// which licenses the intermediate value theorem.
	Dac
	// Com ("common") is the strongest tag: defined, continuous, and
	// differentiable (or otherwise "common") throughout the region.
	Com
)

// Ge reports whether d is at least as strong as other, i.e. d ≥ other in the
// Com ≥ Dac ≥ Def ≥ Trv order.
func (d Decoration) Ge(other Decoration) bool { return d >= other }

// Min returns the weaker of two decorations. Combining two sub-results with
// And/Or never yields a result stronger than its weakest input.
func Min(a, b Decoration) Decoration {
	if a < b {
		return a
	}
	return b
}

// String renders d for debugging.
func (d Decoration) String() string {
	switch d {
	case Trv:
		return "Trv"
	case Def:
		return "Def"
	case Dac:
		return "Dac"
	case Com:
		return "Com"
	default:
		return "Decoration(?)"
	}
}
