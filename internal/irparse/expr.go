package irparse

import (
	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// ParseLiteral lowers one literal s-expression (symbol, number,
// string, char, bool, or a nested list of literals under quote).
func ParseLiteral(form sexpr.SExpr) (*ir.Lit, diag.Bag) {
	errs := diag.New()
	switch f := form.(type) {
	case *sexpr.Symbol:
		return ir.NewSymbolLit(f.Name, f.Span()), errs
	case *sexpr.Int:
		return ir.NewIntLit(f.Value, f.Span()), errs
	case *sexpr.Float:
		return ir.NewFloatLit(f.Value, f.Span()), errs
	case *sexpr.Bool:
		return ir.NewBoolLit(f.Value, f.Span()), errs
	case *sexpr.String:
		return ir.NewStringLit(f.Value, f.Span()), errs
	case *sexpr.Char:
		return ir.NewCharLit(f.Value, f.Span()), errs
	case *sexpr.List:
		elems := make([]*ir.Lit, len(f.Elements))
		for i, e := range f.Elements {
			lit, lErrs := ParseLiteral(e)
			errs = errs.Extend(lErrs)
			elems[i] = lit
		}
		return ir.NewQuotedListLit(elems, f.Span()), errs
	default:
		errs = errs.Add(form.Span(), diag.Syntax, "expression is not a literal")
		return ir.NewSymbolLit("", form.Span()), errs
	}
}

// ParseExpr lowers one expression s-expression.
func ParseExpr(form sexpr.SExpr) (ir.Expr, diag.Bag) {
	l, isList := form.(*sexpr.List)
	if !isList {
		lit, errs := ParseLiteral(form)
		if lit.Kind == ir.LitSymbol {
			return ir.NewVar(lit.Symbol, form.Span()), errs
		}
		return lit, errs
	}

	errs := diag.New()
	if len(l.Elements) == 0 {
		errs = errs.Add(l.Span(), diag.Syntax, "empty application on top level, error")
		return ir.NewListCtor(nil, l.Span()), errs
	}

	if headSym, ok := l.Elements[0].(*sexpr.Symbol); ok {
		switch headSym.Name {
		case "lambda":
			return parseLambda(l)
		case "quote":
			if len(l.Elements) != 2 {
				errs = errs.Add(l.Span(), diag.Syntax, "wrong arity in quote form")
				return ir.NewListCtor(nil, l.Span()), errs
			}
			return ParseLiteral(l.Elements[1])
		case "let":
			return parseLet(l)
		case "if":
			return parseIf(l)
		case "cond":
			return parseCond(l)
		case "match":
			return parseMatch(l)
		case "list":
			return parseListForm(l)
		case "tuple":
			return parseTupleForm(l)
		case "set!":
			return parseSet(l)
		case "begin":
			return parseBegin(l)
		default:
			return parseApply(l)
		}
	}
	return parseApply(l)
}

func parseLambda(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) != 3 {
		errs = errs.Add(l.Span(), diag.Syntax, "wrong arity of lambda form")
		return ir.NewLambda(nil, ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	argsForm, bodyForm := l.Elements[1], l.Elements[2]
	argsList, ok := argsForm.(*sexpr.List)
	if !ok {
		errs = errs.Add(argsForm.Span(), diag.Syntax, "wrong form of lambda parameters")
		return ir.NewLambda(nil, ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	var formals []string
	for _, a := range argsList.Elements {
		sym, ok := a.(*sexpr.Symbol)
		if !ok {
			errs = errs.Add(a.Span(), diag.Syntax, "lambda parameter must be a symbol")
			continue
		}
		formals = append(formals, sym.Name)
	}
	body, bodyErrs := ParseExpr(bodyForm)
	errs = errs.Extend(bodyErrs)
	return ir.NewLambda(formals, body, l.Span()), errs
}

func parseLet(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) != 3 {
		errs = errs.Add(l.Span(), diag.Syntax, "wrong arity of let form")
		return ir.NewLet(nil, ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	bindsForm, bodyForm := l.Elements[1], l.Elements[2]
	bindsList, ok := bindsForm.(*sexpr.List)
	if !ok {
		errs = errs.Add(bindsForm.Span(), diag.Syntax, "let bindings must be a list")
		return ir.NewLet(nil, ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	var bindings []ir.Binding
	for _, pairForm := range bindsList.Elements {
		pairList, ok := pairForm.(*sexpr.List)
		if !ok || len(pairList.Elements) != 2 {
			errs = errs.Add(pairForm.Span(), diag.Syntax, "let binding must be a (name expr) pair")
			continue
		}
		nameSym, ok := pairList.Elements[0].(*sexpr.Symbol)
		if !ok {
			errs = errs.Add(pairList.Elements[0].Span(), diag.Syntax, "let binding must bind a symbol")
			continue
		}
		val, valErrs := ParseExpr(pairList.Elements[1])
		errs = errs.Extend(valErrs)
		bindings = append(bindings, ir.Binding{Name: nameSym.Name, Expr: val})
	}
	body, bodyErrs := ParseExpr(bodyForm)
	errs = errs.Extend(bodyErrs)
	return ir.NewLet(bindings, body, l.Span()), errs
}

func parseIf(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) != 4 {
		errs = errs.Add(l.Span(), diag.Syntax, "wrong arity in if form")
		return ir.NewIf(ir.NewSymbolLit("", l.Span()), ir.NewSymbolLit("", l.Span()), ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	cond, condErrs := ParseExpr(l.Elements[1])
	errs = errs.Extend(condErrs)
	then, thenErrs := ParseExpr(l.Elements[2])
	errs = errs.Extend(thenErrs)
	els, elsErrs := ParseExpr(l.Elements[3])
	errs = errs.Extend(elsErrs)
	return ir.NewIf(cond, then, els, l.Span()), errs
}

func parseCond(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) < 2 {
		errs = errs.Add(l.Span(), diag.Syntax, "wrong arity in cond form")
		return ir.NewCond(nil, l.Span()), errs
	}
	var arms []ir.CondArm
	for _, armForm := range l.Elements[1:] {
		armList, ok := armForm.(*sexpr.List)
		if !ok || len(armList.Elements) != 2 {
			errs = errs.Add(armForm.Span(), diag.Syntax, "cond arm must be a (test expr) pair")
			continue
		}
		test, testErrs := ParseExpr(armList.Elements[0])
		errs = errs.Extend(testErrs)
		arm, armErrs := ParseExpr(armList.Elements[1])
		errs = errs.Extend(armErrs)
		arms = append(arms, ir.CondArm{Test: test, Arm: arm})
	}
	return ir.NewCond(arms, l.Span()), errs
}

func parseMatch(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) < 3 {
		errs = errs.Add(l.Span(), diag.Syntax, "match form must have a scrutinee and at least one arm")
		return ir.NewMatch(ir.NewSymbolLit("", l.Span()), nil, l.Span()), errs
	}
	scrut, scrutErrs := ParseExpr(l.Elements[1])
	errs = errs.Extend(scrutErrs)
	var arms []ir.MatchArm
	for _, branchForm := range l.Elements[2:] {
		branchList, ok := branchForm.(*sexpr.List)
		if !ok || len(branchList.Elements) != 2 {
			errs = errs.Add(branchForm.Span(), diag.Syntax, "match arm must be a (pattern expr) pair")
			continue
		}
		pat, patErrs := ParsePattern(branchList.Elements[0])
		errs = errs.Extend(patErrs)
		errs = errs.Extend(CheckNoDuplicateBindings(pat))
		arm, armErrs := ParseExpr(branchList.Elements[1])
		errs = errs.Extend(armErrs)
		arms = append(arms, ir.MatchArm{Pattern: pat, Arm: arm})
	}
	return ir.NewMatch(scrut, arms, l.Span()), errs
}

func parseListForm(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	var args []ir.Expr
	for _, a := range l.Elements[1:] {
		e, eErrs := ParseExpr(a)
		errs = errs.Extend(eErrs)
		args = append(args, e)
	}
	return ir.NewListCtor(args, l.Span()), errs
}

func parseTupleForm(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	var args []ir.Expr
	for _, a := range l.Elements[1:] {
		e, eErrs := ParseExpr(a)
		errs = errs.Extend(eErrs)
		args = append(args, e)
	}
	return ir.NewTupleCtor(args, l.Span()), errs
}

func parseSet(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) != 3 {
		errs = errs.Add(l.Span(), diag.Syntax, "wrong arity in set! form")
		return ir.NewSet("", ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	nameSym, ok := l.Elements[1].(*sexpr.Symbol)
	if !ok {
		errs = errs.Add(l.Elements[1].Span(), diag.Syntax, "must set! on a symbol")
		return ir.NewSet("", ir.NewSymbolLit("", l.Span()), l.Span()), errs
	}
	val, valErrs := ParseExpr(l.Elements[2])
	errs = errs.Extend(valErrs)
	return ir.NewSet(nameSym.Name, val, l.Span()), errs
}

func parseBegin(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) == 1 {
		errs = errs.Add(l.Span(), diag.Syntax, "there must be at least one form in begin")
		return ir.NewBegin(nil, l.Span()), errs
	}
	var args []ir.Expr
	for _, a := range l.Elements[1:] {
		e, eErrs := ParseExpr(a)
		errs = errs.Extend(eErrs)
		args = append(args, e)
	}
	return ir.NewBegin(args, l.Span()), errs
}

func parseApply(l *sexpr.List) (ir.Expr, diag.Bag) {
	errs := diag.New()
	if len(l.Elements) == 0 {
		errs = errs.Add(l.Span(), diag.Syntax, "empty application on top level, error")
		return ir.NewListCtor(nil, l.Span()), errs
	}
	fn, fnErrs := ParseExpr(l.Elements[0])
	errs = errs.Extend(fnErrs)
	var args []ir.Expr
	for _, a := range l.Elements[1:] {
		arg, argErrs := ParseExpr(a)
		errs = errs.Extend(argErrs)
		args = append(args, arg)
	}
	return ir.NewApp(fn, args, l.Span()), errs
}
