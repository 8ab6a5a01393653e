// Package sexpr defines the surface s-expression tree: a uniform
// parenthesized representation of symbols, numbers, strings, chars,
// booleans and lists, each carrying a source span.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is a single point in source text.
type Pos struct {
	Line   int
	Column int
	Offset int
	File   string
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open range in source text.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	if s.Start.File == "" {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	return s.Start.String()
}

// SExpr is the closed sum of surface tree shapes.
type SExpr interface {
	Span() Span
	String() string
	sexprNode()
}

type node struct {
	span Span
}

func (n node) Span() Span { return n.span }

// Symbol is a bare identifier or operator token.
type Symbol struct {
	node
	Name string
}

func NewSymbol(name string, sp Span) *Symbol { return &Symbol{node{sp}, name} }
func (s *Symbol) String() string             { return s.Name }
func (*Symbol) sexprNode()                   {}

// Int is an integer literal.
type Int struct {
	node
	Value int64
}

func NewInt(v int64, sp Span) *Int { return &Int{node{sp}, v} }
func (i *Int) String() string      { return strconv.FormatInt(i.Value, 10) }
func (*Int) sexprNode()            {}

// Float is a floating-point literal.
type Float struct {
	node
	Value float64
}

func NewFloat(v float64, sp Span) *Float { return &Float{node{sp}, v} }
func (f *Float) String() string          { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (*Float) sexprNode()                {}

// Bool is `#t` / `#f`.
type Bool struct {
	node
	Value bool
}

func NewBool(v bool, sp Span) *Bool { return &Bool{node{sp}, v} }
func (b *Bool) String() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}
func (*Bool) sexprNode() {}

// String is a double-quoted string literal.
type String struct {
	node
	Value string
}

func NewString(v string, sp Span) *String { return &String{node{sp}, v} }
func (s *String) String() string          { return strconv.Quote(s.Value) }
func (*String) sexprNode()                {}

// Char is a `#\x` character literal.
type Char struct {
	node
	Value rune
}

func NewChar(v rune, sp Span) *Char { return &Char{node{sp}, v} }
func (c *Char) String() string      { return fmt.Sprintf("#\\%c", c.Value) }
func (*Char) sexprNode()            {}

// List is a parenthesized sequence of sub-expressions.
type List struct {
	node
	Elements []SExpr
}

func NewList(elems []SExpr, sp Span) *List { return &List{node{sp}, elems} }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (*List) sexprNode() {}

// Head returns the first element of a non-empty list, or nil.
func (l *List) Head() SExpr {
	if len(l.Elements) == 0 {
		return nil
	}
	return l.Elements[0]
}

// HeadSymbol reports the name of the leading symbol of a list form,
// e.g. "define" in `(define x 1)`, and whether the list qualifies.
func (l *List) HeadSymbol() (string, bool) {
	if len(l.Elements) == 0 {
		return "", false
	}
	sym, ok := l.Elements[0].(*Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}
