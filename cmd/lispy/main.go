// Package main provides a simple interpreter for s-expressions: a REPL
// and file-runner driver for the lispy language.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"t73f.de/r/lispy/lispy"
	"t73f.de/r/lispy/lispybuiltin"
	"t73f.de/r/lispy/lispyeval"
	"t73f.de/r/lispy/lispyread"
)

const banner = "Welcome to Lispy version 0.1.0"
const prompt = "lispy> "

var errColor = color.New(color.FgRed)

func main() {
	flag.Parse()

	root := lispy.NewEnvironment(nil)
	lispybuiltin.Register(root)

	files := flag.Args()
	if len(files) > 0 {
		runFiles(root, files)
		return
	}

	fmt.Println(banner)
	fmt.Println("Press Ctrl+D to exit")
	repl(root)
}

// runFiles loads each named file in turn through the `load` builtin (it
// takes exactly one file name), the same path a running program uses
// for its own (load "...") forms.
func runFiles(root *lispy.Environment, files []string) {
	for _, f := range files {
		result := lispybuiltin.Load(root, lispy.NewSExpr(lispy.NewStr(f)))
		if result.IsErr() {
			errColor.Fprintln(os.Stderr, result.String())
		}
	}
}

// repl drives interactive input. It uses readline for line editing and
// history; only if readline cannot be initialised does it fall back to a
// plain bufio.Scanner over stdin.
func repl(root *lispy.Environment) {
	if rl, err := readline.New(prompt); err == nil {
		defer rl.Close()
		replReadline(root, rl)
		return
	}
	replScanner(root, os.Stdin)
}

func replReadline(root *lispy.Environment, rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return
		}
		evalLine(root, line)
	}
}

func replScanner(root *lispy.Environment, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		evalLine(root, scanner.Text())
	}
}

// evalLine reads and evaluates a single line, recovering from any
// panic so a single malformed input can never take down the REPL.
func evalLine(root *lispy.Environment, line string) {
	defer func() {
		if r := recover(); r != nil {
			errColor.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
		}
	}()

	if line == "" {
		return
	}

	v, err := lispyread.ReadString(line)
	if err != nil {
		errColor.Fprintln(os.Stderr, "Parse error:", err)
		return
	}
	result := lispyeval.Eval(root, v)
	if result.IsErr() {
		errColor.Println(result.String())
		return
	}
	fmt.Println(result.String())
}
