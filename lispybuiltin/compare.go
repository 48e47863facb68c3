package lispybuiltin

import "t73f.de/r/lispy/lispy"

func numCompare(name string, op func(a, b int64) bool) lispy.Builtin {
	return func(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
		if e := assertArity(name, args, 2); e != nil {
			return e
		}
		if e := assertType(name, args, 0, lispy.Num); e != nil {
			return e
		}
		if e := assertType(name, args, 1, lispy.Num); e != nil {
			return e
		}
		if op(args.Cells()[0].Num(), args.Cells()[1].Num()) {
			return lispy.NewNum(1)
		}
		return lispy.NewNum(0)
	}
}

// Greater implements `>`.
var Greater = numCompare(">", func(a, b int64) bool { return a > b })

// Less implements `<`.
var Less = numCompare("<", func(a, b int64) bool { return a < b })

// GreaterEqual implements `>=`.
var GreaterEqual = numCompare(">=", func(a, b int64) bool { return a >= b })

// LessEqual implements `<=`.
var LessEqual = numCompare("<=", func(a, b int64) bool { return a <= b })

func equality(name string, want bool) lispy.Builtin {
	return func(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
		if e := assertArity(name, args, 2); e != nil {
			return e
		}
		eq := args.Cells()[0].IsEqual(args.Cells()[1])
		if eq == want {
			return lispy.NewNum(1)
		}
		return lispy.NewNum(0)
	}
}

// Eq implements `==`.
var Eq = equality("==", true)

// NotEq implements `!=`.
var NotEq = equality("!=", false)
