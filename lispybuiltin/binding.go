package lispybuiltin

import "t73f.de/r/lispy/lispy"

func bind(name string, store func(env *lispy.Environment, name string, v *lispy.Value)) lispy.Builtin {
	return func(env *lispy.Environment, args *lispy.Value) *lispy.Value {
		if e := assertMinArity(name, args, 1); e != nil {
			return e
		}
		if e := assertType(name, args, 0, lispy.QExpr); e != nil {
			return e
		}
		syms := args.Cells()[0]
		for i, s := range syms.Cells() {
			if s.Tag != lispy.Sym {
				return lispy.NewErr(
					"function '%s' cannot define non-symbol; got '%s' at index %d",
					name, lispy.TypeName(s.Tag), i,
				)
			}
		}
		vals := args.Cells()[1:]
		if syms.Len() != len(vals) {
			return lispy.NewErr(
				"function '%s' was passed incorrect number of arguments (got %d, expected: %d)",
				name, len(vals), syms.Len(),
			)
		}
		for i, s := range syms.Cells() {
			store(env, s.Sym(), vals[i])
		}
		return lispy.NewSExpr()
	}
}

// Def implements `def`: bind each symbol to the matching value at the
// root environment.
var Def = bind("def", func(env *lispy.Environment, name string, v *lispy.Value) { env.Def(name, v) })

// Put implements `=`: bind each symbol to the matching value in the
// current environment.
var Put = bind("=", func(env *lispy.Environment, name string, v *lispy.Value) { env.Put(name, v) })

// Lambda implements `\`: construct a closure from a QExpr of formal
// symbols and a QExpr body.
func Lambda(env *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity(`\`, args, 2); e != nil {
		return e
	}
	if e := assertType(`\`, args, 0, lispy.QExpr); e != nil {
		return e
	}
	if e := assertType(`\`, args, 1, lispy.QExpr); e != nil {
		return e
	}
	formals := args.Cells()[0]
	for i, s := range formals.Cells() {
		if s.Tag != lispy.Sym {
			return lispy.NewErr(
				`function '\' cannot define non-symbol; got '%s' at index %d`,
				lispy.TypeName(s.Tag), i,
			)
		}
	}
	return lispy.NewClosureFun(&lispy.Closure{
		Formals: formals.Copy(),
		Body:    args.Cells()[1].Copy(),
		Env:     lispy.NewEnvironment(env),
	})
}
