package lispybuiltin

import (
	"t73f.de/r/lispy/lispy"
	"t73f.de/r/lispy/lispyeval"
)

// List implements `list`: tag the arguments as a QExpr.
func List(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	return lispy.NewQExpr(args.Cells()...)
}

// Head implements `head`: the first element of a non-empty QExpr, as a
// 1-element QExpr.
func Head(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("head", args, 1); e != nil {
		return e
	}
	if e := assertNotEmptyQExpr("head", args, 0); e != nil {
		return e
	}
	return lispy.NewQExpr(args.Cells()[0].Cells()[0])
}

// Tail implements `tail`: a non-empty QExpr with its first element
// removed.
func Tail(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("tail", args, 1); e != nil {
		return e
	}
	if e := assertNotEmptyQExpr("tail", args, 0); e != nil {
		return e
	}
	cells := args.Cells()[0].Cells()
	return lispy.NewQExpr(cells[1:]...)
}

// Len implements `len`: the number of elements of a QExpr.
func Len(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("len", args, 1); e != nil {
		return e
	}
	if e := assertType("len", args, 0, lispy.QExpr); e != nil {
		return e
	}
	return lispy.NewNum(int64(args.Cells()[0].Len()))
}

// Eval implements `eval`: re-tag a QExpr as an SExpr and evaluate it.
func Eval(env *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("eval", args, 1); e != nil {
		return e
	}
	if e := assertType("eval", args, 0, lispy.QExpr); e != nil {
		return e
	}
	v := args.Cells()[0]
	v.Tag = lispy.SExpr
	return lispyeval.Eval(env, v)
}

// Join implements `join`: concatenate one or more QExprs into one.
func Join(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	result := lispy.NewQExpr()
	for i, c := range args.Cells() {
		if e := assertType("join", args, i, lispy.QExpr); e != nil {
			return e
		}
		for _, item := range c.Cells() {
			result.Append(item)
		}
	}
	return result
}
