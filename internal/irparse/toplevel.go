package irparse

import (
	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// SplitTypeDecls partitions a program's top-level forms into
// define-sum/define-record forms and everything else, preserving
// relative order within each group.
func SplitTypeDecls(forms []sexpr.SExpr) (typeDecls []*sexpr.List, rest []sexpr.SExpr) {
	for _, f := range forms {
		if l, ok := f.(*sexpr.List); ok && IsTypeDecl(l) {
			typeDecls = append(typeDecls, l)
		} else {
			rest = append(rest, f)
		}
	}
	return typeDecls, rest
}

// ParseTopLevel runs pass 2 (minus the dependency graph, which the
// driver builds from the returned definitions): every remaining form
// is either a (define ...) or a free-standing expression.
func ParseTopLevel(forms []sexpr.SExpr, scope *TypeScope) ([]ir.Definition, []ir.Expr, diag.Bag) {
	errs := diag.New()
	var defs []ir.Definition
	var exprs []ir.Expr

	for _, form := range forms {
		l, isList := form.(*sexpr.List)
		if !isList {
			lit, litErrs := ParseLiteral(form)
			errs = errs.Extend(litErrs)
			exprs = append(exprs, lit)
			continue
		}
		if len(l.Elements) == 0 {
			errs = errs.Add(l.Span(), diag.Syntax, "empty application on top level, error")
			continue
		}
		if headSym, ok := l.Elements[0].(*sexpr.Symbol); ok && headSym.Name == "define" {
			def, defErrs := ParseDefine(l, scope)
			errs = errs.Extend(defErrs)
			if def != nil {
				defs = append(defs, def)
			}
			continue
		}
		e, eErrs := ParseExpr(l)
		errs = errs.Extend(eErrs)
		exprs = append(exprs, e)
	}

	return defs, exprs, errs
}
