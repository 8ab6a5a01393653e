package irparse

import (
	"testing"

	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

func parseOneForm(t *testing.T, src string) sexpr.SExpr {
	t.Helper()
	forms, errs := sexpr.Read("<test>", []byte(src))
	if len(errs) != 0 {
		t.Fatalf("read error: %v", errs)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
	return forms[0]
}

func TestParseExprLambda(t *testing.T) {
	e, errs := ParseExpr(parseOneForm(t, "(lambda (x y) (+ x y))"))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	lam, ok := e.(*ir.Lambda)
	if !ok || len(lam.Formals) != 2 {
		t.Fatalf("expected a 2-ary lambda, got %#v", e)
	}
}

func TestParseExprIfRequiresThreeArgs(t *testing.T) {
	_, errs := ParseExpr(parseOneForm(t, "(if a b)"))
	if !errs.HasErrors() {
		t.Fatal("expected an arity error for an incomplete if")
	}
}

func TestParseExprLetSequentialBindings(t *testing.T) {
	e, errs := ParseExpr(parseOneForm(t, "(let ((x 1) (y x)) y)"))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	let, ok := e.(*ir.Let)
	if !ok || len(let.Bindings) != 2 {
		t.Fatalf("expected a let with 2 bindings, got %#v", e)
	}
}

func TestParseExprApplyDefault(t *testing.T) {
	e, errs := ParseExpr(parseOneForm(t, "(f 1 2)"))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	app, ok := e.(*ir.App)
	if !ok || len(app.Args) != 2 {
		t.Fatalf("expected an application with 2 args, got %#v", e)
	}
}

func TestParsePatternListAndCtor(t *testing.T) {
	p, errs := ParsePattern(parseOneForm(t, "(list a b)"))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	lp, ok := p.(*ir.ListPat)
	if !ok || len(lp.Elements) != 2 {
		t.Fatalf("expected a 2-element list pattern, got %#v", p)
	}

	p2, errs2 := ParsePattern(parseOneForm(t, "(Cons h t)"))
	if errs2.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs2)
	}
	cp, ok := p2.(*ir.CtorPat)
	if !ok || cp.Ctor != "Cons" || len(cp.SubPats) != 2 {
		t.Fatalf("expected a Cons ctor pattern, got %#v", p2)
	}
}

func TestCheckNoDuplicateBindingsFlagsRepeat(t *testing.T) {
	p, errs := ParsePattern(parseOneForm(t, "(list x x)"))
	if errs.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	dupErrs := CheckNoDuplicateBindings(p)
	if !dupErrs.HasErrors() {
		t.Fatal("expected a duplicate binding diagnostic")
	}
}

func TestParseDefineFunctionShape(t *testing.T) {
	l := parseOneForm(t, "(define (add x y) (+ x y))").(*sexpr.List)
	def, errs := ParseDefine(l, &TypeScope{Arity: map[string]int{}})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fd, ok := def.(*ir.Define)
	if !ok || fd.Name() != "add" || len(fd.Args) != 2 {
		t.Fatalf("unexpected define: %#v", def)
	}
	if fd.Annotation != nil {
		t.Fatal("expected no annotation on an unannotated define")
	}
}

func TestParseDefineAnnotatedMixedArgs(t *testing.T) {
	l := parseOneForm(t, "(define (add (x Number) y) Number (+ x y))").(*sexpr.List)
	def, errs := ParseDefine(l, &TypeScope{Arity: map[string]int{}})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fd, ok := def.(*ir.Define)
	if !ok {
		t.Fatalf("expected a Define, got %#v", def)
	}
	if fd.Annotation == nil {
		t.Fatal("expected an annotation since at least one slot is typed")
	}
	if fd.Annotation.ArgTypes[0].Hole {
		t.Fatal("x's slot should not be a hole")
	}
	if !fd.Annotation.ArgTypes[1].Hole {
		t.Fatal("y's slot should be a hole")
	}
	if fd.Annotation.RetType.Hole {
		t.Fatal("return slot should be typed")
	}
}

func TestParseDefineValueShape(t *testing.T) {
	l := parseOneForm(t, "(define x 1)").(*sexpr.List)
	def, errs := ParseDefine(l, &TypeScope{Arity: map[string]int{}})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	vd, ok := def.(*ir.VarDefine)
	if !ok || vd.Name() != "x" {
		t.Fatalf("unexpected define: %#v", def)
	}
}

func TestExtractTypeDeclsSeedsListWithoutIteratingIt(t *testing.T) {
	forms, _ := sexpr.Read("<test>", []byte("(define-sum Shape (Circle Number) (Square Number))"))
	typeDeclForms, _ := SplitTypeDecls(forms)
	decls, errs := ExtractTypeDecls(typeDeclForms)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if decls.Arity["List"] != 1 {
		t.Fatalf("expected List seeded with arity 1, got %v", decls.Arity)
	}
	if decls.Arity["Shape"] != 0 {
		t.Fatalf("expected Shape seeded with arity 0, got %v", decls.Arity)
	}
	if len(decls.Schemes) != 2 {
		t.Fatalf("expected 2 constructor schemes, got %d", len(decls.Schemes))
	}
}

func TestExtractTypeDeclsRejectsDuplicateNames(t *testing.T) {
	forms, _ := sexpr.Read("<test>", []byte("(define-sum Shape (Circle)) (define-sum Shape (Square))"))
	typeDeclForms, _ := SplitTypeDecls(forms)
	_, errs := ExtractTypeDecls(typeDeclForms)
	if !errs.HasErrors() {
		t.Fatal("expected a duplicate type name error")
	}
}

func TestExtractTypeDeclsRecordExtractors(t *testing.T) {
	forms, _ := sexpr.Read("<test>", []byte("(define-record Point (x Number) (y Number))"))
	typeDeclForms, _ := SplitTypeDecls(forms)
	decls, errs := ExtractTypeDecls(typeDeclForms)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !decls.RecordNames["Point"] {
		t.Fatal("expected Point marked as a record")
	}
	names := map[string]bool{}
	for _, ns := range decls.Schemes {
		names[ns.Name] = true
	}
	if !names["Point.x"] || !names["Point.y"] || !names["Point"] {
		t.Fatalf("expected extractors and constructor, got %v", names)
	}
}

func TestParseTopLevelPartitionsDefsAndExprs(t *testing.T) {
	forms, _ := sexpr.Read("<test>", []byte("(define x 1) (+ x 1)"))
	defs, exprs, errs := ParseTopLevel(forms, &TypeScope{Arity: map[string]int{}})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(defs) != 1 || len(exprs) != 1 {
		t.Fatalf("expected 1 define and 1 expr, got %d defs, %d exprs", len(defs), len(exprs))
	}
}

func TestParseTypeExprTupleCollapsesSingleton(t *testing.T) {
	te, errs := ParseTypeExpr(&TypeScope{Arity: map[string]int{}}, parseOneForm(t, "(* Number)"))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := te.(ir.TEConst); !ok {
		t.Fatalf("expected a singleton tuple to collapse to its element, got %#v", te)
	}
}

func TestParseTypeExprArrowSingleArgNormalizesToUnit(t *testing.T) {
	te, errs := ParseTypeExpr(&TypeScope{Arity: map[string]int{}}, parseOneForm(t, "(-> Number)"))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	arr, ok := te.(ir.TEArr)
	if !ok || len(arr.Args) != 1 {
		t.Fatalf("expected a 1-arg arrow, got %#v", te)
	}
	if c, ok := arr.Args[0].(ir.TEConst); !ok || c.Name != "Unit" {
		t.Fatalf("expected Unit -> Number, got %#v", te)
	}
}

func TestParseTypeExprUnknownDefinedNameErrors(t *testing.T) {
	_, errs := ParseTypeExpr(&TypeScope{Arity: map[string]int{"List": 1}}, parseOneForm(t, "(Foo Number)"))
	var found bool
	for _, e := range errs {
		if e.Kind == diag.TypeDecl {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a type-decl diagnostic for an unknown type constructor")
	}
}
