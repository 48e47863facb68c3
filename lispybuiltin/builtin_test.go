package lispybuiltin_test

import (
	"bytes"
	"testing"

	"t73f.de/r/lispy/lispy"
	"t73f.de/r/lispy/lispybuiltin"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/lispy/lispyread"
)

func newRoot() *lispy.Environment {
	root := lispy.NewEnvironment(nil)
	lispybuiltin.Register(root)
	return root
}

func run(t *testing.T, env *lispy.Environment, src string) *lispy.Value {
	t.Helper()
	v, err := lispyread.ReadString(src)
	if err != nil {
		t.Fatalf("ReadString(%q): %v", src, err)
	}
	return lispyeval.Eval(env, v)
}

func TestScenarioArithmetic(t *testing.T) {
	env := newRoot()
	got := run(t, env, "+ 1 2 3")
	if got.String() != "6" {
		t.Fatalf("got %v", got)
	}
}

func TestScenarioDivisionByZero(t *testing.T) {
	env := newRoot()
	got := run(t, env, "(/ 10 0)")
	if got.String() != "Error: division by zero" {
		t.Fatalf("got %v", got)
	}
}

func TestScenarioHead(t *testing.T) {
	env := newRoot()
	got := run(t, env, "head {1 2 3}")
	if got.String() != "{1}" {
		t.Fatalf("got %v", got)
	}
}

func TestScenarioEvalTail(t *testing.T) {
	env := newRoot()
	got := run(t, env, "(eval (tail {+ 1 2 3}))")
	if got.String() != "6" {
		t.Fatalf("got %v", got)
	}
}

func TestScenarioDefAndLocalAssign(t *testing.T) {
	env := newRoot()
	run(t, env, "def {x} 100")
	if got := run(t, env, "x"); got.String() != "100" {
		t.Fatalf("got %v", got)
	}

	got := run(t, env, "((\\ {} {= {x} 5 x}))")
	if got.String() != "5" {
		t.Fatalf("got %v", got)
	}

	if got := run(t, env, "x"); got.String() != "100" {
		t.Fatalf("local = leaked into outer scope: %v", got)
	}
}

func TestScenarioIf(t *testing.T) {
	env := newRoot()
	got := run(t, env, "if (> 2 1) {+ 10 20} {+ 100 200}")
	if got.String() != "30" {
		t.Fatalf("got %v", got)
	}
}

func TestScenarioIfRejectsNonQExprBranch(t *testing.T) {
	env := newRoot()
	got := run(t, env, "if 1 {1} 2")
	if !got.IsErr() {
		t.Fatalf("expected type error, got %v", got)
	}
}

func TestListManipulation(t *testing.T) {
	env := newRoot()
	if got := run(t, env, "list 1 2 3"); got.String() != "{1 2 3}" {
		t.Fatalf("list: got %v", got)
	}
	if got := run(t, env, "tail {1 2 3}"); got.String() != "{2 3}" {
		t.Fatalf("tail: got %v", got)
	}
	if got := run(t, env, "len {1 2 3}"); got.String() != "3" {
		t.Fatalf("len: got %v", got)
	}
	if got := run(t, env, "join {1 2} {3} {4 5}"); got.String() != "{1 2 3 4 5}" {
		t.Fatalf("join: got %v", got)
	}
}

func TestComparisonAndEquality(t *testing.T) {
	env := newRoot()
	cases := map[string]string{
		"> 2 1":            "1",
		"< 2 1":            "0",
		">= 2 2":           "1",
		"<= 1 2":           "1",
		"== 1 1":           "1",
		"!= 1 1":           "0",
		"== {1 2} {1 2}":   "1",
		"== (\\ {x} {x}) (\\ {x} {x})": "1",
	}
	for src, want := range cases {
		if got := run(t, env, src); got.String() != want {
			t.Fatalf("%q: got %v, want %v", src, got, want)
		}
	}
}

func TestErrorBuiltin(t *testing.T) {
	env := newRoot()
	got := run(t, env, `error "boom"`)
	if got.String() != "Error: boom" {
		t.Fatalf("got %v", got)
	}
}

func TestPrintBuiltin(t *testing.T) {
	env := newRoot()
	var buf bytes.Buffer
	old := lispybuiltin.Stdout
	lispybuiltin.Stdout = &buf
	defer func() { lispybuiltin.Stdout = old }()

	run(t, env, `print 1 2 "x"`)
	if got, want := buf.String(), `1 2 "x"`+"\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestVariadicPack(t *testing.T) {
	env := newRoot()
	run(t, env, `def {pack} (\ {& xs} {xs})`)
	if got := run(t, env, "(pack 1 2 3)"); got.String() != "{1 2 3}" {
		t.Fatalf("got %v", got)
	}
	if got := run(t, env, "(pack)"); got.String() != "{}" {
		t.Fatalf("got %v", got)
	}
}

func TestPartialApplicationScenario(t *testing.T) {
	env := newRoot()
	run(t, env, `def {add-mul} (\ {x y} {+ x (* x y)})`)
	got := run(t, env, "((add-mul 10) 20)")
	if got.String() != "210" {
		t.Fatalf("got %v", got)
	}
}

func TestAssertionProtocol(t *testing.T) {
	env := newRoot()
	got := run(t, env, `+ 1 "x"`)
	want := "Error: cannot operate on non-number"
	if got.String() != want {
		t.Fatalf("got %v want %v", got, want)
	}

	got = run(t, env, "head {}")
	want = "Error: function 'head' was passed {} for argument 0"
	if got.String() != want {
		t.Fatalf("got %v want %v", got, want)
	}

	got = run(t, env, "head 1")
	want = "Error: function 'head' passed incorrect type for argument 0 (got 'Number', expected: 'Q-Expression')"
	if got.String() != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
