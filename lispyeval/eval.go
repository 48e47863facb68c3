// Package lispyeval implements the evaluator: the single recursive
// operation that dispatches on a Value's tag (spec.md §4.4), the
// S-expression application rule (§4.5), and the call machinery that
// binds actual arguments to a closure's formals, including currying and
// the variadic "&" tail (§4.6).
package lispyeval

import "t73f.de/r/lispy/lispy"

// Eval evaluates v in env and returns the result. Symbols resolve
// through the environment chain; S-expressions are evaluated per
// evalSExpr; everything else (Num, Str, Err, QExpr, Fun) is returned
// unchanged, exactly as spec.md §4.4 specifies.
func Eval(env *lispy.Environment, v *lispy.Value) *lispy.Value {
	switch v.Tag {
	case lispy.Sym:
		return env.Get(v.Sym())
	case lispy.SExpr:
		return evalSExpr(env, v)
	default:
		return v
	}
}

// evalSExpr implements spec.md §4.5. Children are evaluated strictly in
// order, and evaluation stops at the first Err: later children are
// never observed, per the error short-circuit property (spec.md §8).
func evalSExpr(env *lispy.Environment, v *lispy.Value) *lispy.Value {
	cells := v.Cells()
	for i, c := range cells {
		result := Eval(env, c)
		if result.IsErr() {
			return result
		}
		cells[i] = result
	}
	if v.Len() == 0 {
		return v
	}
	if v.Len() == 1 {
		return v.Cells()[0]
	}

	f := v.Pop()
	if f.Tag != lispy.Fun {
		return lispy.NewErr(
			"S-Expression starts with incorrect type (got '%s', expected: 'Function')",
			lispy.TypeName(f.Tag),
		)
	}
	return Call(env, f, v)
}
