package ir

import "github.com/tscheme-lang/tscfront/internal/sexpr"

func NewIntLit(v int64, sp sexpr.Span) *Lit    { return &Lit{base: base{sp}, Kind: LitInt, Int: v} }
func NewFloatLit(v float64, sp sexpr.Span) *Lit { return &Lit{base: base{sp}, Kind: LitFloat, Float: v} }
func NewBoolLit(v bool, sp sexpr.Span) *Lit     { return &Lit{base: base{sp}, Kind: LitBool, Bool: v} }
func NewSymbolLit(v string, sp sexpr.Span) *Lit { return &Lit{base: base{sp}, Kind: LitSymbol, Symbol: v} }
func NewStringLit(v string, sp sexpr.Span) *Lit { return &Lit{base: base{sp}, Kind: LitString, String: v} }
func NewCharLit(v rune, sp sexpr.Span) *Lit     { return &Lit{base: base{sp}, Kind: LitChar, Char: v} }
func NewQuotedListLit(elems []*Lit, sp sexpr.Span) *Lit {
	return &Lit{base: base{sp}, Kind: LitQuotedList, Elements: elems}
}

func NewVar(name string, sp sexpr.Span) *Var { return &Var{base{sp}, name} }

func NewApp(fn Expr, args []Expr, sp sexpr.Span) *App {
	return &App{base{sp}, fn, args}
}

func NewLambda(formals []string, body Expr, sp sexpr.Span) *Lambda {
	return &Lambda{base{sp}, formals, body}
}

func NewLet(bindings []Binding, body Expr, sp sexpr.Span) *Let {
	return &Let{base{sp}, bindings, body}
}

func NewIf(cond, then, els Expr, sp sexpr.Span) *If {
	return &If{base{sp}, cond, then, els}
}

func NewCond(arms []CondArm, sp sexpr.Span) *Cond {
	return &Cond{base{sp}, arms}
}

func NewMatch(scrutinee Expr, arms []MatchArm, sp sexpr.Span) *Match {
	return &Match{base{sp}, scrutinee, arms}
}

func NewBegin(exprs []Expr, sp sexpr.Span) *Begin {
	return &Begin{base{sp}, exprs}
}

func NewSet(name string, expr Expr, sp sexpr.Span) *Set {
	return &Set{base{sp}, name, expr}
}

func NewListCtor(elems []Expr, sp sexpr.Span) *ListCtor {
	return &ListCtor{base{sp}, elems}
}

func NewTupleCtor(elems []Expr, sp sexpr.Span) *TupleCtor {
	return &TupleCtor{base{sp}, elems}
}

func NewVarPat(name string, sp sexpr.Span) *VarPat { return &VarPat{base{sp}, name} }

func NewLitPat(lit *Lit, sp sexpr.Span) *LitPat { return &LitPat{base{sp}, lit} }

func NewListPat(elems []Pattern, sp sexpr.Span) *ListPat { return &ListPat{base{sp}, elems} }

func NewTuplePat(elems []Pattern, sp sexpr.Span) *TuplePat { return &TuplePat{base{sp}, elems} }

func NewCtorPat(ctor string, subs []Pattern, sp sexpr.Span) *CtorPat {
	return &CtorPat{base{sp}, ctor, subs}
}
