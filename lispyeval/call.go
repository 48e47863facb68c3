package lispyeval

import "t73f.de/r/lispy/lispy"

// Call applies f to args (an SExpr of already-evaluated values),
// implementing spec.md §4.6: builtins are invoked directly; closures
// bind actuals to formals left to right, support currying when fewer
// actuals than formals are given, and support a variadic "&" tail that
// collects the remaining actuals as a QExpr.
func Call(env *lispy.Environment, f, args *lispy.Value) *lispy.Value {
	if f.IsBuiltin() {
		return f.CallBuiltin(env, args)
	}

	clo := f.Closure()
	given := args.Len()
	total := clo.Formals.Len()
	// clo is already an independent copy of the stored closure (value
	// lookup deep-copies), so its own formals list can be popped
	// destructively without disturbing any other binding of the function.
	formals := clo.Formals

	for args.Len() > 0 {
		if formals.Len() == 0 {
			return lispy.NewErr(
				"function passed too many arguments (got %d, expected: %d)", given, total,
			)
		}
		sym := formals.Pop()
		if sym.Sym() == "&" {
			if formals.Len() != 1 {
				return lispy.NewErr("function format invalid, symbol '&' not followed by single symbol")
			}
			rest := formals.Pop()
			clo.Env.Put(rest.Sym(), lispy.NewQExpr(args.Cells()...))
			args = lispy.NewSExpr()
			break
		}
		val := args.Pop()
		clo.Env.Put(sym.Sym(), val)
	}

	if formals.Len() > 0 && formals.Cells()[0].Sym() == "&" {
		if formals.Len() != 2 {
			return lispy.NewErr("function format invalid, symbol '&' not followed by single symbol")
		}
		formals.Pop()
		rest := formals.Pop()
		clo.Env.Put(rest.Sym(), lispy.NewQExpr())
	}

	if formals.Len() == 0 {
		clo.Env.SetParent(env)
		body := clo.Body.Copy()
		body.Tag = lispy.SExpr
		return Eval(clo.Env, body)
	}

	// Partial application: return a new closure with the still-unbound
	// formals and the environment that now holds the already-bound ones.
	return lispy.NewClosureFun(&lispy.Closure{
		Formals: formals,
		Body:    clo.Body,
		Env:     clo.Env,
	})
}
