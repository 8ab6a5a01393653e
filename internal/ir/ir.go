// Package ir defines the typed intermediate representation produced
// by internal/irparse and consumed by internal/infer: expressions,
// patterns, and top-level definitions.
package ir

import "github.com/tscheme-lang/tscfront/internal/sexpr"

// Expr is the closed sum of IR expression variants (spec §3, ≈14
// shapes collapsed here into the forms below).
type Expr interface {
	Span() sexpr.Span
	ToSExpr() sexpr.SExpr
	exprNode()
}

type base struct{ span sexpr.Span }

func (b base) Span() sexpr.Span { return b.span }

// LitKind distinguishes the literal expression shapes.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitSymbol
	LitString
	LitChar
	LitQuotedList
)

// Lit is a literal expression. For LitQuotedList, Elements holds the
// quoted literals and the scalar fields are unused.
type Lit struct {
	base
	Kind     LitKind
	Int      int64
	Float    float64
	Bool     bool
	Symbol   string
	String   string
	Char     rune
	Elements []*Lit
}

func (*Lit) exprNode() {}

// Var references a bound identifier.
type Var struct {
	base
	Name string
}

func (*Var) exprNode() {}

// App is function application; zero-argument application is typed
// Unit -> result.
type App struct {
	base
	Fn   Expr
	Args []Expr
}

func (*App) exprNode() {}

// Lambda is an anonymous function; zero formals types as Unit -> body.
type Lambda struct {
	base
	Formals []string
	Body    Expr
}

func (*Lambda) exprNode() {}

// Binding is one (name, expr) pair of a Let form.
type Binding struct {
	Name string
	Expr Expr
}

// Let sequentially binds each Binding, generalizing it against the
// environment visible at that point, before evaluating Body.
type Let struct {
	base
	Bindings []Binding
	Body     Expr
}

func (*Let) exprNode() {}

// If is conditional branching.
type If struct {
	base
	Cond, Then, Else Expr
}

func (*If) exprNode() {}

// CondArm is one (test, arm) pair of a Cond form.
type CondArm struct {
	Test, Arm Expr
}

// Cond is a non-empty sequence of guarded arms.
type Cond struct {
	base
	Arms []CondArm
}

func (*Cond) exprNode() {}

// MatchArm is one (pattern, arm) pair of a Match form.
type MatchArm struct {
	Pattern Pattern
	Arm     Expr
}

// Match dispatches on the shape of Scrutinee.
type Match struct {
	base
	Scrutinee Expr
	Arms      []MatchArm
}

func (*Match) exprNode() {}

// Begin evaluates each expression in order, returning the last.
type Begin struct {
	base
	Exprs []Expr
}

func (*Begin) exprNode() {}

// Set mutates an existing binding and evaluates to Unit.
type Set struct {
	base
	Name string
	Expr Expr
}

func (*Set) exprNode() {}

// ListCtor builds a homogeneous list value.
type ListCtor struct {
	base
	Elements []Expr
}

func (*ListCtor) exprNode() {}

// TupleCtor builds a tuple value. The parser accepts any number of
// elements; inference types zero elements as Unit and a single element
// as that element's type.
type TupleCtor struct {
	base
	Elements []Expr
}

func (*TupleCtor) exprNode() {}

// Pattern is the closed sum of pattern variants (spec §3, 5 shapes).
type Pattern interface {
	Span() sexpr.Span
	// Bindings returns the names this pattern introduces, in the order
	// encountered. Callers are responsible for rejecting duplicates.
	Bindings() []string
	ToSExpr() sexpr.SExpr
	patNode()
}

// VarPat binds Name to the matched value; Name == "_" is the wildcard
// and introduces no binding.
type VarPat struct {
	base
	Name string
}

func (p *VarPat) patNode() {}
func (p *VarPat) Bindings() []string {
	if p.Name == "_" {
		return nil
	}
	return []string{p.Name}
}

// LitPat matches a literal value exactly.
type LitPat struct {
	base
	Lit *Lit
}

func (p *LitPat) patNode()           {}
func (p *LitPat) Bindings() []string { return nil }

// ListPat matches a fixed-length list, binding each element.
type ListPat struct {
	base
	Elements []Pattern
}

func (p *ListPat) patNode() {}
func (p *ListPat) Bindings() []string {
	var out []string
	for _, e := range p.Elements {
		out = append(out, e.Bindings()...)
	}
	return out
}

// TuplePat matches a tuple, binding each element.
type TuplePat struct {
	base
	Elements []Pattern
}

func (p *TuplePat) patNode() {}
func (p *TuplePat) Bindings() []string {
	var out []string
	for _, e := range p.Elements {
		out = append(out, e.Bindings()...)
	}
	return out
}

// CtorPat matches a data-constructor application.
type CtorPat struct {
	base
	Ctor     string
	SubPats  []Pattern
}

func (p *CtorPat) patNode() {}
func (p *CtorPat) Bindings() []string {
	var out []string
	for _, e := range p.SubPats {
		out = append(out, e.Bindings()...)
	}
	return out
}

// Definition is the closed sum of top-level definition shapes.
type Definition interface {
	Name() string
	Span() sexpr.Span
	ToSExpr() sexpr.SExpr
	defNode()
}

// Annotation is a possibly-partial type annotation attached to a
// definition: a slot with Hole set is a hole.
type Annotation struct {
	ArgTypes []TypeExprOrHole
	RetType  TypeExprOrHole
}

// TypeExprOrHole is a parsed type-annotation monotype, or the
// zero-value (Hole == true) for an omitted slot.
type TypeExprOrHole struct {
	Hole bool
	Expr TypeExpr
}

// Define is a function-shape top-level definition: (define (f x1 x2) body).
type Define struct {
	base
	name       string
	Args       []string
	Body       Expr
	Annotation *Annotation
}

func (d *Define) Name() string { return d.name }
func (*Define) defNode()       {}

// VarDefine is a value-shape top-level definition: (define x body).
type VarDefine struct {
	base
	name       string
	Body       Expr
	Annotation *Annotation
}

func (d *VarDefine) Name() string { return d.name }
func (*VarDefine) defNode()       {}

// NewDefine and NewVarDefine are the only constructors, keeping the
// unexported name field consistent with the Name() accessor.
func NewDefine(span sexpr.Span, name string, args []string, body Expr, anno *Annotation) *Define {
	return &Define{base: base{span}, name: name, Args: args, Body: body, Annotation: anno}
}

func NewVarDefine(span sexpr.Span, name string, body Expr, anno *Annotation) *VarDefine {
	return &VarDefine{base: base{span}, name: name, Body: body, Annotation: anno}
}
