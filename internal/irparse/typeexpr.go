// Package irparse lowers the surface SExpr tree into the typed IR in
// internal/ir: it extracts type declarations, parses top-level
// definitions, and parses expressions, patterns, and type
// annotations, validating arities and names along the way.
package irparse

import (
	"unicode"

	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// TypeScope constrains type-expression parsing: which lowercase type
// variables are in scope (nil means "unconstrained", used outside a
// type declaration), and the arity of every known TDefined name (nil
// means "unknown, accept any name and arity"). The arity check applies
// to applied forms like (Tree a); a bare capitalized symbol is not
// checked.
type TypeScope struct {
	BoundVars map[string]bool
	Arity     map[string]int
}

func builtinConst(name string) (ir.TypeExpr, bool) {
	switch name {
	case "Number", "Bool", "Symbol", "String", "Char", "Unit":
		return ir.TEConst{Name: name}, true
	default:
		return nil, false
	}
}

// ParseTypeExpr parses one type-annotation s-expression.
func ParseTypeExpr(scope *TypeScope, form sexpr.SExpr) (ir.TypeExpr, diag.Bag) {
	errs := diag.New()

	switch f := form.(type) {
	case *sexpr.Symbol:
		if te, ok := builtinConst(f.Name); ok {
			return te, errs
		}
		if len(f.Name) == 0 {
			errs = errs.Add(f.Span(), diag.TypeDecl, "empty type name")
			return ir.TEConst{Name: "Unit"}, errs
		}
		if unicode.IsUpper(rune(f.Name[0])) {
			return ir.TEDefined{Name: f.Name, Args: nil}, errs
		}
		if scope != nil && scope.BoundVars != nil && !scope.BoundVars[f.Name] {
			errs = errs.Add(f.Span(), diag.TypeDecl, "unbound type variable %s", f.Name)
		}
		return ir.TEVar{Name: f.Name}, errs

	case *sexpr.List:
		if len(f.Elements) == 0 {
			errs = errs.Add(f.Span(), diag.TypeDecl, "type must have a name")
			return ir.TEConst{Name: "Unit"}, errs
		}
		headSym, ok := f.Head().(*sexpr.Symbol)
		if !ok {
			errs = errs.Add(f.Head().Span(), diag.TypeDecl, "type must have a name")
			return ir.TEConst{Name: "Unit"}, errs
		}
		name := headSym.Name

		var subs []ir.TypeExpr
		for _, sub := range f.Elements[1:] {
			sTe, sErrs := ParseTypeExpr(scope, sub)
			errs = errs.Extend(sErrs)
			subs = append(subs, sTe)
		}

		switch name {
		case "*":
			switch len(subs) {
			case 0:
				return ir.TEConst{Name: "Unit"}, errs
			case 1:
				return subs[0], errs
			default:
				return ir.TETuple{Elements: subs}, errs
			}
		case "->":
			if len(subs) == 0 {
				errs = errs.Add(f.Span(), diag.TypeDecl, "empty function type")
				return ir.TEConst{Name: "Unit"}, errs
			}
			if len(subs) == 1 {
				return ir.TEArr{Args: []ir.TypeExpr{ir.TEConst{Name: "Unit"}}, Ret: subs[0]}, errs
			}
			return ir.TEArr{Args: subs[:len(subs)-1], Ret: subs[len(subs)-1]}, errs
		default:
			if scope != nil && scope.Arity != nil {
				if n, known := scope.Arity[name]; known {
					if n != len(subs) {
						errs = errs.Add(f.Span(), diag.TypeDecl, "wrong arity in type apply of %s", name)
					}
				} else {
					errs = errs.Add(f.Span(), diag.TypeDecl, "unknown type %s", name)
				}
			}
			return ir.TEDefined{Name: name, Args: subs}, errs
		}

	default:
		errs = errs.Add(form.Span(), diag.TypeDecl, "type must be a symbol or a list")
		return ir.TEConst{Name: "Unit"}, errs
	}
}
