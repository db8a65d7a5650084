package relation

import "github.com/katalvlaran/ivgraph/sign"

// EvalResult is a relation evaluation's output: one sign.DecSignSet per
// atomic formula, indexed by its position in Forms() (spec.md §3, "Eval
// result").
type EvalResult []sign.DecSignSet

// Clone returns an independent copy, satisfying cache.Cloneable so EvalResult
// can be stored directly in package cache's generic caches.
func (r EvalResult) Clone() EvalResult {
	out := make(EvalResult, len(r))
	copy(out, r)
	return out
}

// Map applies f to every slot, returning a new EvalResult.
func (r EvalResult) Map(f func(sign.DecSignSet) sign.DecSignSet) EvalResult {
	out := make(EvalResult, len(r))
	for i, v := range r {
		out[i] = f(v)
	}
	return out
}

// And combines r and b slot-wise via sign.And.
func (r EvalResult) And(b EvalResult) EvalResult { return zipWith(r, b, sign.And) }

// Or combines r and b slot-wise via sign.Or.
func (r EvalResult) Or(b EvalResult) EvalResult { return zipWith(r, b, sign.Or) }

// Not negates every slot via sign.Not.
func Not(a EvalResult) EvalResult { return a.Map(sign.Not) }

func zipWith(a, b EvalResult, f func(sign.DecSignSet, sign.DecSignSet) sign.DecSignSet) EvalResult {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(EvalResult, n)
	for i := 0; i < n; i++ {
		var av, bv sign.DecSignSet
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = f(av, bv)
	}
	return out
}
