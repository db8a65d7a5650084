// Package relation declares the boundary between the refinement engine and
// the compiled relation object it evaluates: EvalResult (a vector of
// per-atomic-formula sign/decoration pairs), the flat StaticForm view of the
// relation's Boolean tree, and the Relation interface itself.
//
// Parsing and simplifying the relation expression remain out of scope
// (spec.md §1); Relation is the single entry point the engine needs from
// whatever produced the compiled form.
package relation
