package irparse

import (
	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// ParseDefine lowers one top-level (define ...) form, in any of its
// four surface shapes (spec §6): value, annotated value,
// function, or annotated function with optionally per-argument types.
func ParseDefine(l *sexpr.List, scope *TypeScope) (ir.Definition, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) > 4 || len(l.Elements) < 3 {
		errs = errs.Add(l.Span(), diag.Syntax, "wrong arity of define form")
		return nil, errs
	}

	head := l.Elements[1]

	var retTypeExpr *ir.TypeExprOrHole
	var bodyForm sexpr.SExpr
	if len(l.Elements) == 4 {
		te, teErrs := ParseTypeExpr(scope, l.Elements[2])
		errs = errs.Extend(teErrs)
		retTypeExpr = &ir.TypeExprOrHole{Expr: te}
		bodyForm = l.Elements[3]
	} else {
		bodyForm = l.Elements[2]
	}

	if nameSym, ok := head.(*sexpr.Symbol); ok {
		body, bodyErrs := ParseExpr(bodyForm)
		errs = errs.Extend(bodyErrs)
		var anno *ir.Annotation
		if retTypeExpr != nil {
			anno = &ir.Annotation{RetType: *retTypeExpr}
		}
		return ir.NewVarDefine(l.Span(), nameSym.Name, body, anno), errs
	}

	argsList, ok := head.(*sexpr.List)
	if !ok {
		errs = errs.Add(head.Span(), diag.Syntax, "wrong form of define parameters")
		return nil, errs
	}
	if len(argsList.Elements) == 0 {
		errs = errs.Add(argsList.Span(), diag.Syntax, "define must name a function")
		return nil, errs
	}

	nameSym, ok := argsList.Elements[0].(*sexpr.Symbol)
	if !ok {
		errs = errs.Add(argsList.Elements[0].Span(), diag.Syntax, "function name must be a symbol")
		return nil, errs
	}

	var argNames []string
	var argTypes []ir.TypeExprOrHole
	seen := map[string]bool{}
	anyAnnotated := retTypeExpr != nil

	for _, arg := range argsList.Elements[1:] {
		switch a := arg.(type) {
		case *sexpr.Symbol:
			if seen[a.Name] {
				errs = errs.Add(a.Span(), diag.Syntax, "duplicate argument name %s", a.Name)
			}
			seen[a.Name] = true
			argNames = append(argNames, a.Name)
			argTypes = append(argTypes, ir.TypeExprOrHole{Hole: true})
		case *sexpr.List:
			if len(a.Elements) != 2 {
				errs = errs.Add(a.Span(), diag.Syntax, "error in lambda parameters, form is not a symbol or symbol with annotation")
				continue
			}
			argNameSym, ok := a.Elements[0].(*sexpr.Symbol)
			if !ok {
				errs = errs.Add(a.Elements[0].Span(), diag.Syntax, "argument name must be a symbol")
				continue
			}
			if seen[argNameSym.Name] {
				errs = errs.Add(argNameSym.Span(), diag.Syntax, "duplicate argument name %s", argNameSym.Name)
			}
			seen[argNameSym.Name] = true
			te, teErrs := ParseTypeExpr(scope, a.Elements[1])
			errs = errs.Extend(teErrs)
			argNames = append(argNames, argNameSym.Name)
			argTypes = append(argTypes, ir.TypeExprOrHole{Expr: te})
			anyAnnotated = true
		default:
			errs = errs.Add(arg.Span(), diag.Syntax, "error in lambda parameters, form is not a symbol or symbol with annotation")
		}
	}

	body, bodyErrs := ParseExpr(bodyForm)
	errs = errs.Extend(bodyErrs)

	var anno *ir.Annotation
	if anyAnnotated {
		ret := ir.TypeExprOrHole{Hole: true}
		if retTypeExpr != nil {
			ret = *retTypeExpr
		}
		anno = &ir.Annotation{ArgTypes: argTypes, RetType: ret}
	}

	return ir.NewDefine(l.Span(), nameSym.Name, argNames, body, anno), errs
}
