// Package lispybuiltin implements the fixed library of primitive
// operations registered into the root environment: arithmetic, list
// manipulation, binding, comparison/equality, the conditional, file
// loading, and printing (spec.md §4.7).
package lispybuiltin

import "t73f.de/r/lispy/lispy"

// assertArity returns an Err unless args holds exactly n elements.
func assertArity(name string, args *lispy.Value, n int) *lispy.Value {
	if args.Len() != n {
		return lispy.NewErr(
			"function '%s' was passed incorrect number of arguments (got %d, expected: %d)",
			name, args.Len(), n,
		)
	}
	return nil
}

// assertMinArity returns an Err unless args holds at least n elements.
func assertMinArity(name string, args *lispy.Value, n int) *lispy.Value {
	if args.Len() < n {
		return lispy.NewErr(
			"function '%s' was passed incorrect number of arguments (got %d, expected: %d)",
			name, args.Len(), n,
		)
	}
	return nil
}

// assertType returns an Err unless the argument at index i has the given
// tag, reporting the faulting function name, argument index, observed
// and expected types per the uniform assertion protocol of spec.md §4.7.
func assertType(name string, args *lispy.Value, i int, want lispy.Tag) *lispy.Value {
	got := args.Cells()[i]
	if got.Tag != want {
		return lispy.NewErr(
			"function '%s' passed incorrect type for argument %d (got '%s', expected: '%s')",
			name, i, lispy.TypeName(got.Tag), lispy.TypeName(want),
		)
	}
	return nil
}

// assertNotEmptyQExpr returns an Err unless args.Cells()[i] is a
// non-empty QExpr.
func assertNotEmptyQExpr(name string, args *lispy.Value, i int) *lispy.Value {
	if e := assertType(name, args, i, lispy.QExpr); e != nil {
		return e
	}
	if args.Cells()[i].Len() == 0 {
		return lispy.NewErr("function '%s' was passed {} for argument %d", name, i)
	}
	return nil
}
