package lispybuiltin

import (
	"io"
	"os"

	"t73f.de/r/lispy/lispy"
)

// Stdout is where `print` writes. Tests substitute a buffer; the driver
// leaves it at its default of os.Stdout.
var Stdout io.Writer = os.Stdout

// Print implements `print`: write each argument separated by spaces,
// followed by a newline, and return the empty SExpr.
func Print(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	for i, c := range args.Cells() {
		if i > 0 {
			_, _ = io.WriteString(Stdout, " ")
		}
		_, _ = lispy.Print(Stdout, c)
	}
	_, _ = io.WriteString(Stdout, "\n")
	return lispy.NewSExpr()
}

// Error implements `error`: turn a string into an Err value.
func Error(_ *lispy.Environment, args *lispy.Value) *lispy.Value {
	if e := assertArity("error", args, 1); e != nil {
		return e
	}
	if e := assertType("error", args, 0, lispy.Str); e != nil {
		return e
	}
	return lispy.NewErr("%s", args.Cells()[0].Str())
}
