package lispyparse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Option configures a Parser at construction, following the small
// functional-option idiom the teacher uses for its own Reader
// (t73f.de/r/sx/sxreader.Option).
type Option func(*Parser)

// WithMaxDepth bounds how deeply sexpr/qexpr forms may nest, guarding
// the recursive-descent parser against a Go stack overflow on
// pathological input, the way sxreader.WithNestingLimit guards the
// teacher's reader.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) { p.maxDepth = depth }
}

// WithMaxListLen bounds how many elements a single sexpr/qexpr may hold,
// mirroring sxreader.WithListLimit.
func WithMaxListLen(n int) Option {
	return func(p *Parser) { p.maxListLen = n }
}

// DefaultMaxDepth is the default nesting limit.
const DefaultMaxDepth = 1000

// DefaultMaxListLen is the default per-list element limit.
const DefaultMaxListLen = 100000

// Parser tokenizes and structures Lispy source text into a Node tree. It
// has no knowledge of Lispy's evaluation semantics: it only recognises
// the lexical surface described in spec.md §6.
type Parser struct {
	rr   *bufio.Reader
	name string

	maxDepth   int
	curDepth   int
	maxListLen int
}

// NewParser creates a Parser reading from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		rr:         bufio.NewReader(r),
		name:       "<input>",
		maxDepth:   DefaultMaxDepth,
		maxListLen: DefaultMaxListLen,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads r in full and returns the root Node of its syntax tree.
func Parse(r io.Reader, opts ...Option) (*Node, error) {
	return NewParser(r, opts...).Parse()
}

// ParseString is a convenience wrapper around Parse for in-memory source.
func ParseString(src string, opts ...Option) (*Node, error) {
	return Parse(strings.NewReader(src), opts...)
}

const symbolChars = "_+-*/\\=<>!&"

func isSymbolChar(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
		return true
	}
	return strings.ContainsRune(symbolChars, r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Parse consumes the whole input and returns the root node. The root
// mirrors the anchoring nodes a combinator-parser library such as mpc
// emits around the real top-level forms; lispyread skips them by tag,
// exactly as it skips embedded comments.
func (p *Parser) Parse() (*Node, error) {
	root := &Node{Tag: TagRoot}
	root.addChild(&Node{Tag: TagRegex})
	children, err := p.parseUntil(0)
	if err != nil {
		return nil, err
	}
	root.Children = append(root.Children, children...)
	root.addChild(&Node{Tag: TagRegex})
	return root, nil
}

// parseUntil reads forms until EOF (close == 0) or until the given
// closing delimiter rune is consumed, returning every node seen
// including comments and the closing delimiter itself.
func (p *Parser) parseUntil(closeDelim rune) ([]*Node, error) {
	var nodes []*Node
	count := 0
	for {
		r, ok, err := p.peekNonSpace()
		if err != nil {
			return nil, err
		}
		if !ok {
			if closeDelim != 0 {
				return nil, fmt.Errorf("unexpected end of input, expected %q", closeDelim)
			}
			return nodes, nil
		}
		if r == closeDelim {
			p.readRune()
			nodes = append(nodes, &Node{Tag: TagPunct, Contents: string(closeDelim)})
			return nodes, nil
		}
		if r == ')' || r == '}' {
			return nil, fmt.Errorf("unexpected %q", r)
		}

		node, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		if node.Tag != TagComment {
			count++
			if p.maxListLen > 0 && count > p.maxListLen {
				return nil, fmt.Errorf("list exceeds maximum length %d", p.maxListLen)
			}
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) parseForm() (*Node, error) {
	r, ok, err := p.peekNonSpace()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	switch {
	case r == ';':
		return p.readComment(), nil
	case r == '"':
		return p.readString()
	case r == '(':
		return p.readGroup('(', ')', TagSExpr)
	case r == '{':
		return p.readGroup('{', '}', TagQExpr)
	case r == ')' || r == '}':
		return nil, fmt.Errorf("unexpected %q", r)
	default:
		return p.readAtom()
	}
}

func (p *Parser) readGroup(open, shut rune, tag string) (*Node, error) {
	p.readRune() // consume open delimiter, already peeked
	p.curDepth++
	if p.maxDepth > 0 && p.curDepth > p.maxDepth {
		return nil, fmt.Errorf("nesting exceeds maximum depth %d", p.maxDepth)
	}
	children, err := p.parseUntil(shut)
	p.curDepth--
	if err != nil {
		return nil, err
	}
	node := &Node{Tag: tag, Contents: string(open) + string(shut)}
	node.Children = append([]*Node{{Tag: TagPunct, Contents: string(open)}}, children...)
	return node, nil
}

func (p *Parser) readComment() *Node {
	var sb strings.Builder
	for {
		r, ok, err := p.peekRune()
		if err != nil || !ok || r == '\n' {
			break
		}
		sb.WriteRune(r)
		p.readRune()
	}
	return &Node{Tag: TagComment, Contents: sb.String()}
}

func (p *Parser) readString() (*Node, error) {
	var sb strings.Builder
	sb.WriteByte('"')
	p.readRune() // opening quote
	for {
		r, ok, err := p.readRune()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("unterminated string literal")
		}
		sb.WriteRune(r)
		if r == '\\' {
			esc, ok, err := p.readRune()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("unterminated string literal")
			}
			sb.WriteRune(esc)
			continue
		}
		if r == '"' {
			break
		}
	}
	return &Node{Tag: TagString, Contents: sb.String()}, nil
}

func (p *Parser) readAtom() (*Node, error) {
	var sb strings.Builder
	for {
		r, ok, err := p.peekRune()
		if err != nil {
			return nil, err
		}
		if !ok || !isSymbolChar(r) {
			break
		}
		sb.WriteRune(r)
		p.readRune()
	}
	text := sb.String()
	if text == "" {
		r, _, _ := p.peekRune()
		return nil, fmt.Errorf("unexpected character %q", r)
	}
	if isNumberLiteral(text) {
		return &Node{Tag: TagNumber, Contents: text}, nil
	}
	return &Node{Tag: TagSymbol, Contents: text}, nil
}

func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return false
		}
	}
	return true
}

func (p *Parser) peekNonSpace() (rune, bool, error) {
	for {
		r, ok, err := p.peekRune()
		if err != nil || !ok {
			return r, ok, err
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			p.readRune()
			continue
		}
		return r, true, nil
	}
}

func (p *Parser) peekRune() (rune, bool, error) {
	r, _, err := p.rr.ReadRune()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if err := p.rr.UnreadRune(); err != nil {
		return 0, false, err
	}
	return r, true, nil
}

func (p *Parser) readRune() (rune, bool, error) {
	r, _, err := p.rr.ReadRune()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return r, true, nil
}
