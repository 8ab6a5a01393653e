package irparse

import (
	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// ParsePattern lowers one match-arm pattern form.
func ParsePattern(form sexpr.SExpr) (ir.Pattern, diag.Bag) {
	errs := diag.New()

	l, isList := form.(*sexpr.List)
	if !isList {
		lit, litErrs := ParseLiteral(form)
		errs = errs.Extend(litErrs)
		if lit.Kind == ir.LitSymbol {
			return ir.NewVarPat(lit.Symbol, form.Span()), errs
		}
		return ir.NewLitPat(lit, form.Span()), errs
	}

	if len(l.Elements) == 0 {
		errs = errs.Add(l.Span(), diag.Syntax, "pattern can't be empty")
		return ir.NewVarPat("_", l.Span()), errs
	}

	headSym, ok := l.Elements[0].(*sexpr.Symbol)
	if !ok {
		errs = errs.Add(l.Elements[0].Span(), diag.Syntax, "pattern head should be a symbol")
		return ir.NewVarPat("_", l.Span()), errs
	}

	switch headSym.Name {
	case "quote":
		if len(l.Elements) != 2 {
			errs = errs.Add(l.Span(), diag.Syntax, "wrong arity in quote pattern")
			return ir.NewVarPat("_", l.Span()), errs
		}
		lit, litErrs := ParseLiteral(l.Elements[1])
		errs = errs.Extend(litErrs)
		return ir.NewLitPat(lit, l.Span()), errs

	case "list":
		var subs []ir.Pattern
		for _, sub := range l.Elements[1:] {
			p, pErrs := ParsePattern(sub)
			errs = errs.Extend(pErrs)
			subs = append(subs, p)
		}
		return ir.NewListPat(subs, l.Span()), errs

	case "tuple":
		var subs []ir.Pattern
		for _, sub := range l.Elements[1:] {
			p, pErrs := ParsePattern(sub)
			errs = errs.Extend(pErrs)
			subs = append(subs, p)
		}
		return ir.NewTuplePat(subs, l.Span()), errs

	default:
		var subs []ir.Pattern
		for _, sub := range l.Elements[1:] {
			p, pErrs := ParsePattern(sub)
			errs = errs.Extend(pErrs)
			subs = append(subs, p)
		}
		return ir.NewCtorPat(headSym.Name, subs, l.Span()), errs
	}
}

// CheckNoDuplicateBindings validates a pattern's binding set has no
// repeated name, per spec §3: "a pattern's bindings may not repeat a
// name."
func CheckNoDuplicateBindings(p ir.Pattern) diag.Bag {
	errs := diag.New()
	seen := map[string]bool{}
	for _, name := range p.Bindings() {
		if seen[name] {
			errs = errs.Add(p.Span(), diag.Syntax, "duplicate binding %s in pattern", name)
			continue
		}
		seen[name] = true
	}
	return errs
}
