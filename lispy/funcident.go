package lispy

import "reflect"

// funcsEqual compares the code pointers of two Builtin values, since Go
// function values are not comparable with ==. Closures made by the same
// factory (for example every arithmetic builtin) share one code pointer,
// so Value.IsEqual also compares the registered builtin names.
func funcsEqual(a, b Builtin) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
