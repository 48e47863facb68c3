package lispybuiltin

import (
	"io"
	"os"

	"t73f.de/r/lispy/lispy"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/lispy/lispyread"
)

// Load implements `load`: parse the named file, read it into a tree of
// Values, evaluate each top-level form in order in the root
// environment, and print any Err results. Returns the empty SExpr, or an
// Err when the arguments are wrong or the file cannot be read or parsed.
func Load(env *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("load", args, 1); e != nil {
		return e
	}
	if e := assertType("load", args, 0, lispy.Str); e != nil {
		return e
	}
	path := args.Cells()[0].Str()
	data, err := os.ReadFile(path)
	if err != nil {
		return lispy.NewErr("Could not load library %s", err)
	}

	program, err := lispyread.ReadString(string(data))
	if err != nil {
		return lispy.NewErr("Could not load library %s", err)
	}

	root := env.Root()
	for _, form := range program.Cells() {
		result := lispyeval.Eval(root, form)
		if result.IsErr() {
			_, _ = lispy.Println(stderr(), result)
		}
	}
	return lispy.NewSExpr()
}

func stderr() io.Writer { return os.Stderr }
