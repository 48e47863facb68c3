package lispybuiltin

import (
	"t73f.de/r/lispy/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// If implements `if`: both branches must be QExpr (spec.md §9 preserves
// this strictness — `if 1 {1} 2` is a type error, not a coercion).
func If(env *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("if", args, 3); e != nil {
		return e
	}
	if e := assertType("if", args, 0, lispy.Num); e != nil {
		return e
	}
	if e := assertType("if", args, 1, lispy.QExpr); e != nil {
		return e
	}
	if e := assertType("if", args, 2, lispy.QExpr); e != nil {
		return e
	}
	cells := args.Cells()
	var branch *lispy.Value
	if cells[0].Num() != 0 {
		branch = cells[1].Copy()
	} else {
		branch = cells[2].Copy()
	}
	branch.Tag = lispy.SExpr
	return lispyeval.Eval(env, branch)
}
