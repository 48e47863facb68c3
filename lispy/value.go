// Package lispy provides the tagged value model and lexical environment
// shared by every other package of the interpreter: the reader builds
// values of this package, the evaluator consumes and produces them, and
// the builtins operate on them exclusively through this package's API.
package lispy

import "fmt"

// Tag discriminates the alternatives of a Value. A Value carries exactly
// one of these tags at a time; the payload fields not named by the tag
// are unused.
type Tag int

const (
	// Num holds a 64-bit signed integer literal.
	Num Tag = iota
	// Sym holds an unevaluated identifier.
	Sym
	// Str holds a string literal.
	Str
	// Err holds an evaluation error message; it propagates through
	// expressions without being evaluated further.
	Err
	// SExpr holds an ordered, evaluable application form.
	SExpr
	// QExpr holds an ordered, quoted (inert) list.
	QExpr
	// Fun holds a callable: either a builtin or a closure.
	Fun
)

// String returns a short name for the tag. Builtin error messages use
// the longer TypeName form instead.
func (t Tag) String() string {
	switch t {
	case Num:
		return "Num"
	case Sym:
		return "Sym"
	case Str:
		return "Str"
	case Err:
		return "Err"
	case SExpr:
		return "SExpr"
	case QExpr:
		return "QExpr"
	case Fun:
		return "Fun"
	default:
		return "Unknown"
	}
}

// Builtin is the signature every primitive operation must implement. It
// receives the environment the call happens in and the already-evaluated
// argument list as an SExpr, and returns a single result value.
type Builtin func(env *Environment, args *Value) *Value

// Closure is the payload of a user-defined Fun value.
type Closure struct {
	Formals *Value // QExpr of Sym, optionally ending in "&" Sym
	Body    *Value // QExpr
	Env     *Environment
}

// Value is the tagged variant V described by the language: a single
// struct with a discriminating Tag plays the role of the sum type, since
// Go has no native tagged union. Exactly one payload group is valid for
// a given Tag; see the invariants on each constructor.
type Value struct {
	Tag Tag

	num int64
	sym string
	str string
	err string

	cells []*Value // SExpr / QExpr children, in order

	builtin     Builtin
	builtinName string
	closure     *Closure
}

// NewNum creates a Num value.
func NewNum(n int64) *Value { return &Value{Tag: Num, num: n} }

// NewSym creates a Sym value. name must be non-empty per the language
// grammar; callers are expected to have validated that already.
func NewSym(name string) *Value { return &Value{Tag: Sym, sym: name} }

// NewStr creates a Str value from an already-unescaped byte string.
func NewStr(s string) *Value { return &Value{Tag: Str, str: s} }

// NewErr creates an Err value with a formatted message.
func NewErr(format string, args ...any) *Value {
	return &Value{Tag: Err, err: fmt.Sprintf(format, args...)}
}

// NewSExpr creates an SExpr with the given children (the slice is taken
// over, not copied; pass Copy()'d children if the caller still needs the
// originals).
func NewSExpr(cells ...*Value) *Value { return &Value{Tag: SExpr, cells: cells} }

// NewQExpr creates a QExpr with the given children.
func NewQExpr(cells ...*Value) *Value { return &Value{Tag: QExpr, cells: cells} }

// NewBuiltinFun wraps a Builtin as a Fun value.
func NewBuiltinFun(name string, fn Builtin) *Value {
	return &Value{Tag: Fun, builtin: fn, builtinName: name}
}

// NewClosureFun wraps a Closure as a Fun value.
func NewClosureFun(c *Closure) *Value { return &Value{Tag: Fun, closure: c} }

// Num returns the numeric payload; callers must check Tag == Num first.
func (v *Value) Num() int64 { return v.num }

// Sym returns the symbol name; callers must check Tag == Sym first.
func (v *Value) Sym() string { return v.sym }

// Str returns the string payload; callers must check Tag == Str first.
func (v *Value) Str() string { return v.str }

// ErrMsg returns the error message; callers must check Tag == Err first.
func (v *Value) ErrMsg() string { return v.err }

// Cells returns the children of an SExpr or QExpr, in order. The slice
// is shared with v; callers that mutate it are mutating v.
func (v *Value) Cells() []*Value { return v.cells }

// Len returns the number of children of an SExpr or QExpr.
func (v *Value) Len() int { return len(v.cells) }

// Append adds a child to an SExpr or QExpr in place.
func (v *Value) Append(c *Value) { v.cells = append(v.cells, c) }

// Pop removes and returns the first child of an SExpr or QExpr in place.
// It panics if v has no children; callers must check Len() > 0 first.
func (v *Value) Pop() *Value {
	c := v.cells[0]
	v.cells = v.cells[1:]
	return c
}

// IsBuiltin reports whether a Fun value wraps a builtin (as opposed to a
// closure). Exactly one of IsBuiltin/IsClosure is true for any Fun value.
func (v *Value) IsBuiltin() bool { return v.builtin != nil }

// IsClosure reports whether a Fun value wraps a closure.
func (v *Value) IsClosure() bool { return v.closure != nil }

// BuiltinName returns the registered name of a builtin Fun, used in error
// messages and printing.
func (v *Value) BuiltinName() string { return v.builtinName }

// CallBuiltin invokes the wrapped builtin.
func (v *Value) CallBuiltin(env *Environment, args *Value) *Value { return v.builtin(env, args) }

// Closure returns the wrapped closure payload of a Fun value.
func (v *Value) Closure() *Closure { return v.closure }

// IsErr reports whether v is an Err value.
func (v *Value) IsErr() bool { return v.Tag == Err }

// TypeName maps a Tag to the long-form name used in builtin error
// messages (§4.7 of the spec's assertion protocol).
func TypeName(t Tag) string {
	switch t {
	case Fun:
		return "Function"
	case Num:
		return "Number"
	case Err:
		return "Error"
	case Sym:
		return "Symbol"
	case Str:
		return "String"
	case SExpr:
		return "S-Expression"
	case QExpr:
		return "Q-Expression"
	default:
		return "Unknown"
	}
}

// Copy returns an independent deep copy of v. Environment storage and
// retrieval always go through Copy so that no two live trees ever share
// mutable structure (spec.md §3's ownership/deep-copy discipline).
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	cp := &Value{
		Tag:         v.Tag,
		num:         v.num,
		sym:         v.sym,
		str:         v.str,
		err:         v.err,
		builtin:     v.builtin,
		builtinName: v.builtinName,
	}
	if v.cells != nil {
		cp.cells = make([]*Value, len(v.cells))
		for i, c := range v.cells {
			cp.cells[i] = c.Copy()
		}
	}
	if v.closure != nil {
		cp.closure = &Closure{
			Formals: v.closure.Formals.Copy(),
			Body:    v.closure.Body.Copy(),
			Env:     v.closure.Env.Copy(),
		}
	}
	return cp
}

// IsEqual compares two values for the structural equality required by
// the `==`/`!=` builtins: deep equality over every variant, with
// builtins compared by registered name and function code pointer and
// closures compared by their formals and body.
func (v *Value) IsEqual(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Tag != other.Tag {
		return false
	}
	switch v.Tag {
	case Num:
		return v.num == other.num
	case Sym:
		return v.sym == other.sym
	case Str:
		return v.str == other.str
	case Err:
		return v.err == other.err
	case SExpr, QExpr:
		if len(v.cells) != len(other.cells) {
			return false
		}
		for i, c := range v.cells {
			if !c.IsEqual(other.cells[i]) {
				return false
			}
		}
		return true
	case Fun:
		if v.IsBuiltin() != other.IsBuiltin() {
			return false
		}
		if v.IsBuiltin() {
			return v.builtinName == other.builtinName && funcsEqual(v.builtin, other.builtin)
		}
		return v.closure.Formals.IsEqual(other.closure.Formals) &&
			v.closure.Body.IsEqual(other.closure.Body)
	default:
		return false
	}
}
