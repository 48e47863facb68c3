package lispy

import "testing"

func TestCopyIndependence(t *testing.T) {
	orig := NewQExpr(NewNum(1), NewNum(2))
	cp := orig.Copy()
	cp.Append(NewNum(3))
	if orig.Len() != 2 {
		t.Fatalf("mutating copy affected original: len=%d", orig.Len())
	}
	if cp.Len() != 3 {
		t.Fatalf("copy did not grow: len=%d", cp.Len())
	}
}

func TestIsEqualStructural(t *testing.T) {
	a := NewSExpr(NewNum(1), NewSym("x"), NewStr("hi"))
	b := NewSExpr(NewNum(1), NewSym("x"), NewStr("hi"))
	if !a.IsEqual(b) {
		t.Fatalf("expected deep equality")
	}
	b.cells[2] = NewStr("bye")
	if a.IsEqual(b) {
		t.Fatalf("expected inequality after mutation")
	}
}

func TestIsEqualBuiltinIdentity(t *testing.T) {
	fn1 := func(*Environment, *Value) *Value { return nil }
	fn2 := func(*Environment, *Value) *Value { return nil }
	a := NewBuiltinFun("f", fn1)
	b := NewBuiltinFun("f", fn1)
	c := NewBuiltinFun("g", fn2)
	if !a.IsEqual(b) {
		t.Fatalf("same function reference should be equal")
	}
	if a.IsEqual(c) {
		t.Fatalf("distinct function references should not be equal")
	}
}

func TestPrintRoundTrip(t *testing.T) {
	v := NewSExpr(NewSym("+"), NewNum(1), NewQExpr(NewNum(2), NewNum(3)))
	got := v.String()
	want := "(+ 1 {2 3})"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintString(t *testing.T) {
	v := NewStr("a\nb\"c")
	got := v.String()
	want := `"a\nb\"c"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintErr(t *testing.T) {
	v := NewErr("division by zero")
	if got, want := v.String(), "Error: division by zero"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTypeName(t *testing.T) {
	cases := map[Tag]string{
		Fun: "Function", Num: "Number", Err: "Error", Sym: "Symbol",
		Str: "String", SExpr: "S-Expression", QExpr: "Q-Expression",
	}
	for tag, want := range cases {
		if got := TypeName(tag); got != want {
			t.Fatalf("TypeName(%v) = %q, want %q", tag, got, want)
		}
	}
}
