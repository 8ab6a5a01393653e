package ir

import (
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// ToSExpr re-serializes an IR node to its surface form, used by
// internal/emit for the identity IR -> SExpr pass consumed by the
// external lowering collaborator. Unlike the reference it is modeled
// on, the If case emits the full (if cond then else) form rather than
// dropping the condition.

func sym(name string, sp sexpr.Span) *sexpr.Symbol { return sexpr.NewSymbol(name, sp) }

func list(sp sexpr.Span, elems ...sexpr.SExpr) *sexpr.List { return sexpr.NewList(elems, sp) }

func (l *Lit) ToSExpr() sexpr.SExpr {
	sp := l.span
	switch l.Kind {
	case LitInt:
		return sexpr.NewInt(l.Int, sp)
	case LitFloat:
		return sexpr.NewFloat(l.Float, sp)
	case LitBool:
		return sexpr.NewBool(l.Bool, sp)
	case LitSymbol:
		return sym(l.Symbol, sp)
	case LitString:
		return sexpr.NewString(l.String, sp)
	case LitChar:
		return sexpr.NewChar(l.Char, sp)
	case LitQuotedList:
		elems := make([]sexpr.SExpr, len(l.Elements))
		for i, e := range l.Elements {
			elems[i] = e.ToSExpr()
		}
		return list(sp, sym("quote", sp), list(sp, elems...))
	default:
		panic("ir: unknown Lit kind")
	}
}

func (v *Var) ToSExpr() sexpr.SExpr { return sym(v.Name, v.span) }

func (a *App) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{a.Fn.ToSExpr()}
	for _, arg := range a.Args {
		elems = append(elems, arg.ToSExpr())
	}
	return list(a.span, elems...)
}

func (lm *Lambda) ToSExpr() sexpr.SExpr {
	formals := make([]sexpr.SExpr, len(lm.Formals))
	for i, f := range lm.Formals {
		formals[i] = sym(f, lm.span)
	}
	return list(lm.span, sym("lambda", lm.span), list(lm.span, formals...), lm.Body.ToSExpr())
}

func (lt *Let) ToSExpr() sexpr.SExpr {
	bindings := make([]sexpr.SExpr, len(lt.Bindings))
	for i, b := range lt.Bindings {
		bindings[i] = list(lt.span, sym(b.Name, lt.span), b.Expr.ToSExpr())
	}
	return list(lt.span, sym("let", lt.span), list(lt.span, bindings...), lt.Body.ToSExpr())
}

func (i *If) ToSExpr() sexpr.SExpr {
	return list(i.span, sym("if", i.span), i.Cond.ToSExpr(), i.Then.ToSExpr(), i.Else.ToSExpr())
}

func (c *Cond) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("cond", c.span)}
	for _, arm := range c.Arms {
		elems = append(elems, list(c.span, arm.Test.ToSExpr(), arm.Arm.ToSExpr()))
	}
	return list(c.span, elems...)
}

func (m *Match) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("match", m.span), m.Scrutinee.ToSExpr()}
	for _, arm := range m.Arms {
		elems = append(elems, list(m.span, arm.Pattern.ToSExpr(), arm.Arm.ToSExpr()))
	}
	return list(m.span, elems...)
}

func (b *Begin) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("begin", b.span)}
	for _, e := range b.Exprs {
		elems = append(elems, e.ToSExpr())
	}
	return list(b.span, elems...)
}

func (s *Set) ToSExpr() sexpr.SExpr {
	return list(s.span, sym("set!", s.span), sym(s.Name, s.span), s.Expr.ToSExpr())
}

func (lc *ListCtor) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("list", lc.span)}
	for _, e := range lc.Elements {
		elems = append(elems, e.ToSExpr())
	}
	return list(lc.span, elems...)
}

func (tc *TupleCtor) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("tuple", tc.span)}
	for _, e := range tc.Elements {
		elems = append(elems, e.ToSExpr())
	}
	return list(tc.span, elems...)
}

func (p *VarPat) ToSExpr() sexpr.SExpr { return sym(p.Name, p.span) }

func (p *LitPat) ToSExpr() sexpr.SExpr { return p.Lit.ToSExpr() }

func (p *ListPat) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("list", p.span)}
	for _, e := range p.Elements {
		elems = append(elems, e.ToSExpr())
	}
	return list(p.span, elems...)
}

func (p *TuplePat) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym("tuple", p.span)}
	for _, e := range p.Elements {
		elems = append(elems, e.ToSExpr())
	}
	return list(p.span, elems...)
}

func (p *CtorPat) ToSExpr() sexpr.SExpr {
	elems := []sexpr.SExpr{sym(p.Ctor, p.span)}
	for _, e := range p.SubPats {
		elems = append(elems, e.ToSExpr())
	}
	return list(p.span, elems...)
}

func annotationToSExpr(sp sexpr.Span, args []string, anno *Annotation) []sexpr.SExpr {
	if anno == nil {
		elems := make([]sexpr.SExpr, len(args))
		for i, a := range args {
			elems[i] = sym(a, sp)
		}
		return elems
	}
	elems := make([]sexpr.SExpr, len(args))
	for i, a := range args {
		if anno.ArgTypes[i].Hole {
			elems[i] = sym(a, sp)
			continue
		}
		elems[i] = list(sp, sym(a, sp), typeExprToSExpr(anno.ArgTypes[i].Expr, sp))
	}
	return elems
}

func typeExprToSExpr(te TypeExpr, sp sexpr.Span) sexpr.SExpr {
	switch t := te.(type) {
	case TEConst:
		return sym(t.Name, sp)
	case TEVar:
		return sym(t.Name, sp)
	case TEArr:
		elems := []sexpr.SExpr{sym("->", sp)}
		for _, a := range t.Args {
			elems = append(elems, typeExprToSExpr(a, sp))
		}
		elems = append(elems, typeExprToSExpr(t.Ret, sp))
		return list(sp, elems...)
	case TETuple:
		elems := []sexpr.SExpr{sym("*", sp)}
		for _, e := range t.Elements {
			elems = append(elems, typeExprToSExpr(e, sp))
		}
		return list(sp, elems...)
	case TEDefined:
		elems := []sexpr.SExpr{sym(t.Name, sp)}
		for _, a := range t.Args {
			elems = append(elems, typeExprToSExpr(a, sp))
		}
		return list(sp, elems...)
	default:
		panic("ir: unknown TypeExpr variant")
	}
}

func (d *Define) ToSExpr() sexpr.SExpr {
	sp := d.span
	nameAndArgs := append([]sexpr.SExpr{sym(d.name, sp)}, annotationToSExpr(sp, d.Args, d.Annotation)...)
	head := list(sp, nameAndArgs...)
	elems := []sexpr.SExpr{sym("define", sp), head}
	if d.Annotation != nil && !d.Annotation.RetType.Hole {
		elems = append(elems, typeExprToSExpr(d.Annotation.RetType.Expr, sp))
	}
	elems = append(elems, d.Body.ToSExpr())
	return list(sp, elems...)
}

func (v *VarDefine) ToSExpr() sexpr.SExpr {
	sp := v.span
	elems := []sexpr.SExpr{sym("define", sp), sym(v.name, sp)}
	if v.Annotation != nil && !v.Annotation.RetType.Hole {
		elems = append(elems, typeExprToSExpr(v.Annotation.RetType.Expr, sp))
	}
	elems = append(elems, v.Body.ToSExpr())
	return list(sp, elems...)
}
