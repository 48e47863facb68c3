package lispybuiltin

import "t73f.de/r/lispy/lispy"

// entries is the table-driven registration list, following the
// {name, fn} table idiom the teacher's cmd/main.go uses for its own
// builtinsA/builtinsEEA/syntaxes tables.
var entries = []struct {
	name string
	fn   lispy.Builtin
}{
	{"+", Add}, {"-", Sub}, {"*", Mul}, {"/", Div},

	{"list", List}, {"head", Head}, {"tail", Tail}, {"len", Len}, {"eval", Eval}, {"join", Join},

	{"def", Def}, {"=", Put}, {`\`, Lambda},

	{">", Greater}, {"<", Less}, {">=", GreaterEqual}, {"<=", LessEqual},
	{"==", Eq}, {"!=", NotEq},

	{"if", If},

	{"load", Load},
	{"print", Print},
	{"error", Error},
}

// Register installs every builtin of spec.md §4.7 into root, which must
// be the root environment (Register expects the fixed library to live at
// the top of the chain, as the driver's initial call always provides).
func Register(root *lispy.Environment) {
	for _, e := range entries {
		root.Put(e.name, lispy.NewBuiltinFun(e.name, e.fn))
	}
}
