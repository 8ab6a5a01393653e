package confirm

import (
	"testing"

	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/types"
)

func TestConfirmNilAnnotationAlwaysMatches(t *testing.T) {
	ok, _ := Confirm(types.Number, nil, nil)
	if !ok {
		t.Fatal("a nil annotation should always match")
	}
}

func TestConfirmTConstMatch(t *testing.T) {
	ok, _ := Confirm(types.Number, types.Number, nil)
	if !ok {
		t.Fatal("expected matching consts to confirm")
	}
}

func TestConfirmTConstMismatch(t *testing.T) {
	ok, _ := Confirm(types.Number, types.Bool, nil)
	if ok {
		t.Fatal("expected mismatched consts to fail")
	}
}

func TestConfirmPreservesSubstAcrossArrowArgs(t *testing.T) {
	// inferred: a -> a -> Number, annotation: b -> b -> Number.
	a := &types.TVar{Name: "a"}
	b := &types.TVar{Name: "b"}
	inferred := types.Func([]types.Type{a, a}, types.Number)
	annotation := types.Func([]types.Type{b, b}, types.Number)
	ok, subst := Confirm(inferred, annotation, nil)
	if !ok {
		t.Fatal("expected a consistent rename to confirm")
	}
	if len(subst) != 1 || !subst["a"].Equals(b) {
		t.Fatalf("expected {a: b}, got %v", subst)
	}
}

func TestConfirmRejectsInconsistentVarRename(t *testing.T) {
	// inferred: a -> a, annotation: b -> c — a can't map to both.
	a := &types.TVar{Name: "a"}
	b := &types.TVar{Name: "b"}
	c := &types.TVar{Name: "c"}
	inferred := types.Func([]types.Type{a}, a)
	annotation := types.Func([]types.Type{b}, c)
	ok, _ := Confirm(inferred, annotation, nil)
	if ok {
		t.Fatal("expected an inconsistent variable rename to fail confirmation")
	}
}

func TestConfirmTupleRequiresExplicitSuccess(t *testing.T) {
	inferred := &types.TTuple{Elements: []types.Type{types.Number, types.Bool}}
	annotation := &types.TTuple{Elements: []types.Type{types.Number, types.Bool}}
	ok, _ := Confirm(inferred, annotation, nil)
	if !ok {
		t.Fatal("expected matching tuples to confirm")
	}
}

func TestConfirmDefineHolesAlwaysMatch(t *testing.T) {
	anno := &ir.Annotation{
		ArgTypes: []ir.TypeExprOrHole{{Hole: true}},
		RetType:  ir.TypeExprOrHole{Hole: true},
	}
	res := ConfirmDefine([]types.Type{&types.TVar{Name: "x"}}, types.Bool, anno)
	if !res.Matched {
		t.Fatal("expected a fully-holed annotation to match")
	}
	if !res.AllHoles {
		t.Fatal("expected AllHoles to be reported true")
	}
}

func TestConfirmDefineNilAnnotationMatches(t *testing.T) {
	res := ConfirmDefine([]types.Type{types.Number}, types.Bool, nil)
	if !res.Matched {
		t.Fatal("expected a nil annotation to match trivially")
	}
}

func TestConfirmDefinePartialAnnotationChecksOnlyTypedSlots(t *testing.T) {
	anno := &ir.Annotation{
		ArgTypes: []ir.TypeExprOrHole{{Expr: ir.TEConst{Name: "Number"}}, {Hole: true}},
		RetType:  ir.TypeExprOrHole{Hole: true},
	}
	res := ConfirmDefine([]types.Type{types.Number, types.Bool}, types.Symbol, anno)
	if !res.Matched {
		t.Fatal("expected the typed slot to confirm and the holes to pass")
	}
	if res.AllHoles {
		t.Fatal("one slot is typed, so AllHoles should be false")
	}
}

func TestConfirmDefineMismatchFails(t *testing.T) {
	anno := &ir.Annotation{
		ArgTypes: []ir.TypeExprOrHole{{Expr: ir.TEConst{Name: "Bool"}}},
		RetType:  ir.TypeExprOrHole{Hole: true},
	}
	res := ConfirmDefine([]types.Type{types.Number}, types.Symbol, anno)
	if res.Matched {
		t.Fatal("expected Number vs Bool annotation to fail")
	}
}

func TestConfirmVarDefineNilOrHoleMatches(t *testing.T) {
	if res := ConfirmVarDefine(types.Number, nil); !res.Matched {
		t.Fatal("expected nil annotation to match")
	}
	holed := &ir.Annotation{RetType: ir.TypeExprOrHole{Hole: true}}
	if res := ConfirmVarDefine(types.Number, holed); !res.Matched || !res.AllHoles {
		t.Fatal("expected a holed annotation to match and report AllHoles")
	}
}

func TestConfirmVarDefineTypedMismatch(t *testing.T) {
	anno := &ir.Annotation{RetType: ir.TypeExprOrHole{Expr: ir.TEConst{Name: "Bool"}}}
	res := ConfirmVarDefine(types.Number, anno)
	if res.Matched {
		t.Fatal("expected Number vs Bool to fail confirmation")
	}
}
