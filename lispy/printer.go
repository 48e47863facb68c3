package lispy

import (
	"io"
	"strconv"
	"strings"
)

// Print writes the textual representation of v to w, following the
// teacher's convention of a Print(io.Writer) method returning
// (bytesWritten, error) rather than building a string up front.
func Print(w io.Writer, v *Value) (int, error) {
	if v == nil {
		return io.WriteString(w, "()")
	}
	switch v.Tag {
	case Num:
		return io.WriteString(w, strconv.FormatInt(v.num, 10))
	case Sym:
		return io.WriteString(w, v.sym)
	case Str:
		return printStr(w, v.str)
	case Err:
		return io.WriteString(w, "Error: "+v.err)
	case SExpr:
		return printCells(w, "(", ")", v.cells)
	case QExpr:
		return printCells(w, "{", "}", v.cells)
	case Fun:
		if v.IsBuiltin() {
			return io.WriteString(w, "<builtin>")
		}
		return printClosure(w, v.closure)
	default:
		return io.WriteString(w, "<unknown>")
	}
}

func printCells(w io.Writer, open, shut string, cells []*Value) (int, error) {
	length, err := io.WriteString(w, open)
	if err != nil {
		return length, err
	}
	for i, c := range cells {
		if i > 0 {
			n, err := io.WriteString(w, " ")
			length += n
			if err != nil {
				return length, err
			}
		}
		n, err := Print(w, c)
		length += n
		if err != nil {
			return length, err
		}
	}
	n, err := io.WriteString(w, shut)
	length += n
	return length, err
}

func printClosure(w io.Writer, c *Closure) (int, error) {
	length, err := io.WriteString(w, `(\ `)
	if err != nil {
		return length, err
	}
	n, err := Print(w, c.Formals)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, " ")
	length += n
	if err != nil {
		return length, err
	}
	n, err = Print(w, c.Body)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, ")")
	length += n
	return length, err
}

func printStr(w io.Writer, s string) (int, error) {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return io.WriteString(w, sb.String())
}

// String returns the printed representation of v as a Go string. Kept
// separate from Print (which is what the rest of the code calls) so
// that fmt.Stringer callers — tests, %v formatting — get the same
// rendering without allocating a Writer at every call site.
func (v *Value) String() string {
	var sb strings.Builder
	_, _ = Print(&sb, v)
	return sb.String()
}

// Println prints v to w followed by a newline, as the REPL and `print`
// builtin both require (spec.md §4.2: "println appends a single newline").
func Println(w io.Writer, v *Value) (int, error) {
	n, err := Print(w, v)
	if err != nil {
		return n, err
	}
	m, err := io.WriteString(w, "\n")
	return n + m, err
}
