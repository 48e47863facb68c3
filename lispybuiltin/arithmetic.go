package lispybuiltin

import "t73f.de/r/lispy/lispy"

func arith(name string, op func(acc, x int64) int64) lispy.Builtin {
	return func(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
		for i := range args.Cells() {
			if e := assertType(name, args, i, lispy.Num); e != nil {
				return lispy.NewErr("cannot operate on non-number")
			}
		}
		cells := args.Cells()
		if len(cells) == 1 {
			switch name {
			case "-":
				return lispy.NewNum(-cells[0].Num())
			default:
				return lispy.NewNum(cells[0].Num())
			}
		}
		acc := cells[0].Num()
		for _, c := range cells[1:] {
			acc = op(acc, c.Num())
		}
		return lispy.NewNum(acc)
	}
}

// Add implements `+`.
var Add = arith("+", func(a, b int64) int64 { return a + b })

// Sub implements `-`.
var Sub = arith("-", func(a, b int64) int64 { return a - b })

// Mul implements `*`.
var Mul = arith("*", func(a, b int64) int64 { return a * b })

// Div implements `/`, guarding against division by zero.
func Div(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	for i := range args.Cells() {
		if e := assertType("/", args, i, lispy.Num); e != nil {
			return lispy.NewErr("cannot operate on non-number")
		}
	}
	cells := args.Cells()
	if len(cells) == 1 {
		return lispy.NewNum(cells[0].Num())
	}
	acc := cells[0].Num()
	for _, c := range cells[1:] {
		if c.Num() == 0 {
			return lispy.NewErr("division by zero")
		}
		acc /= c.Num()
	}
	return lispy.NewNum(acc)
}
