package infer

import (
	"testing"

	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
	"github.com/tscheme-lang/tscfront/internal/types"
)

func sp() sexpr.Span { return sexpr.Span{} }

func solve(t *testing.T, e *Engine) types.Subst {
	t.Helper()
	s, err := e.Solve()
	if err != nil {
		t.Fatalf("unexpected unify error: %v", err)
	}
	return s
}

func TestInferLambdaAndApply(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	// (lambda (x) x) applied to a literal int.
	lam := ir.NewLambda([]string{"x"}, ir.NewVar("x", sp()), sp())
	app := ir.NewApp(lam, []ir.Expr{ir.NewIntLit(1, sp())}, sp())

	got, err := e.InferExpr(env, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subst := solve(t, e)
	resolved := types.Apply(subst, got)
	if !resolved.Equals(types.Number) {
		t.Fatalf("expected Number, got %s", resolved)
	}
}

func TestInferIfUnifiesBranches(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	ifExpr := ir.NewIf(ir.NewBoolLit(true, sp()), ir.NewIntLit(1, sp()), ir.NewIntLit(2, sp()), sp())
	got, err := e.InferExpr(env, ifExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subst := solve(t, e)
	if !types.Apply(subst, got).Equals(types.Number) {
		t.Fatalf("expected Number, got %s", types.Apply(subst, got))
	}
}

func TestInferIfBranchMismatchFails(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	ifExpr := ir.NewIf(ir.NewBoolLit(true, sp()), ir.NewIntLit(1, sp()), ir.NewBoolLit(false, sp()), sp())
	if _, err := e.InferExpr(env, ifExpr); err != nil {
		t.Fatalf("unexpected error during generation: %v", err)
	}
	if _, err := e.Solve(); err == nil {
		t.Fatal("expected a unification error for mismatched if branches")
	}
}

func TestInferVarUnboundFails(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	_, err := e.InferExpr(env, ir.NewVar("nope", sp()))
	if err == nil {
		t.Fatal("expected an unbound name error")
	}
	if _, ok := err.(*UnboundNameError); !ok {
		t.Fatalf("expected *UnboundNameError, got %T", err)
	}
}

func TestInferLetGeneralizesBinding(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	// (let ((id (lambda (x) x))) (if (id #t) (id 1) (id 2)))
	idLam := ir.NewLambda([]string{"x"}, ir.NewVar("x", sp()), sp())
	useBool := ir.NewApp(ir.NewVar("id", sp()), []ir.Expr{ir.NewBoolLit(true, sp())}, sp())
	useNum1 := ir.NewApp(ir.NewVar("id", sp()), []ir.Expr{ir.NewIntLit(1, sp())}, sp())
	useNum2 := ir.NewApp(ir.NewVar("id", sp()), []ir.Expr{ir.NewIntLit(2, sp())}, sp())
	body := ir.NewIf(useBool, useNum1, useNum2, sp())
	let := ir.NewLet([]ir.Binding{{Name: "id", Expr: idLam}}, body, sp())

	got, err := e.InferExpr(env, let)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subst := solve(t, e)
	if !types.Apply(subst, got).Equals(types.Number) {
		t.Fatalf("expected Number, got %s", types.Apply(subst, got))
	}
}

func TestInferMatchBindsPatternVars(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	m := ir.NewMatch(ir.NewIntLit(1, sp()), []ir.MatchArm{
		{Pattern: ir.NewVarPat("x", sp()), Arm: ir.NewVar("x", sp())},
	}, sp())
	got, err := e.InferExpr(env, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subst := solve(t, e)
	if !types.Apply(subst, got).Equals(types.Number) {
		t.Fatalf("expected Number, got %s", types.Apply(subst, got))
	}
}

func TestInferListCtorUnifiesElements(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	lst := ir.NewListCtor([]ir.Expr{ir.NewIntLit(1, sp()), ir.NewIntLit(2, sp())}, sp())
	got, err := e.InferExpr(env, lst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subst := solve(t, e)
	want := types.ListOf(types.Number)
	if !types.Apply(subst, got).Equals(want) {
		t.Fatalf("got %s, want %s", types.Apply(subst, got), want)
	}
}

func TestInferTupleCtor(t *testing.T) {
	e := New(false)
	env := types.NewEnv()
	tup := ir.NewTupleCtor([]ir.Expr{ir.NewIntLit(1, sp()), ir.NewBoolLit(true, sp())}, sp())
	got, err := e.InferExpr(env, tup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := types.Tuple([]types.Type{types.Number, types.Bool})
	if !got.Equals(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestInferPatternCtorUsesConstructorScheme(t *testing.T) {
	e := New(false)
	a := e.Fresh()
	consScheme := &types.Scheme{Vars: []string{a.Name}, Type: types.Func(
		[]types.Type{a, types.ListOf(a)}, types.ListOf(a))}
	env := types.NewEnv().Add("Cons", consScheme)

	pat := ir.NewCtorPat("Cons", []ir.Pattern{ir.NewVarPat("h", sp()), ir.NewVarPat("t", sp())}, sp())
	patType, binds, err := e.InferPattern(env, pat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(binds) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(binds))
	}
	e.AddEquation(patType, types.ListOf(types.Number))
	subst := solve(t, e)
	var hType types.Type
	for _, b := range binds {
		if b.Name == "h" {
			hType = b.Type
		}
	}
	if !types.Apply(subst, hType).Equals(types.Number) {
		t.Fatalf("expected h: Number, got %s", types.Apply(subst, hType))
	}
}

func TestGeneralizeCleanRenamesToFreshNames(t *testing.T) {
	e := New(false)
	x := &types.TVar{Name: "x7"}
	scheme := e.GeneralizeClean(nil, x)
	if len(scheme.Vars) != 1 {
		t.Fatalf("expected 1 quantified var, got %v", scheme.Vars)
	}
	if scheme.Vars[0] == "x7" {
		t.Fatal("expected the variable to be renamed to a fresh clean name")
	}
}

func TestFreshNamesAreSequentialBase26(t *testing.T) {
	e := New(false)
	names := []string{e.Fresh().Name, e.Fresh().Name, e.Fresh().Name}
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}
