package types

import "testing"

func TestFuncZeroArgsIsUnitArrow(t *testing.T) {
	got := Func(nil, Number)
	want := &TArr{In: Unit, Out: Number}
	if !got.Equals(want) {
		t.Fatalf("Func(nil, Number) = %s, want %s", got, want)
	}
}

func TestFuncRightAssociates(t *testing.T) {
	got := Func([]Type{Number, Bool}, String)
	want := &TArr{In: Number, Out: &TArr{In: Bool, Out: String}}
	if !got.Equals(want) {
		t.Fatalf("Func = %s, want %s", got, want)
	}
}

func TestFlattenRoundTrips(t *testing.T) {
	orig := Func([]Type{Number, Bool, Char}, String)
	args, ret := Flatten(orig)
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if !ret.Equals(String) {
		t.Fatalf("expected ret String, got %s", ret)
	}
	rebuilt := Func(args, ret)
	if !rebuilt.Equals(orig) {
		t.Fatalf("rebuilt %s != orig %s", rebuilt, orig)
	}
}

func TestTupleCollapsesNullary(t *testing.T) {
	if got := Tuple(nil); !got.Equals(Unit) {
		t.Fatalf("Tuple(nil) = %s, want Unit", got)
	}
}

func TestTupleCollapsesSingleton(t *testing.T) {
	if got := Tuple([]Type{Number}); !got.Equals(Number) {
		t.Fatalf("Tuple([Number]) = %s, want Number", got)
	}
	if _, ok := Tuple([]Type{Number}).(*TTuple); ok {
		t.Fatal("Tuple([Number]) must not be stored as a TTuple")
	}
}

func TestTupleEquals(t *testing.T) {
	a := Tuple([]Type{Number, Bool})
	b := Tuple([]Type{Number, Bool})
	c := Tuple([]Type{Bool, Number})
	if !a.Equals(b) {
		t.Fatal("expected equal tuples to compare equal")
	}
	if a.Equals(c) {
		t.Fatal("expected differently-ordered tuples to compare unequal")
	}
}

func TestFtvOverArrow(t *testing.T) {
	a := &TVar{Name: "a"}
	b := &TVar{Name: "b"}
	ftv := Ftv(Func([]Type{a}, b))
	if !ftv["a"] || !ftv["b"] {
		t.Fatalf("expected a and b free, got %v", ftv)
	}
	if len(ftv) != 2 {
		t.Fatalf("expected exactly 2 free vars, got %v", ftv)
	}
}

func TestFtvConstHasNone(t *testing.T) {
	if ftv := Ftv(Number); len(ftv) != 0 {
		t.Fatalf("expected no free vars in a const, got %v", ftv)
	}
}

func TestListOf(t *testing.T) {
	lst := ListOf(Number)
	d, ok := lst.(*TDefined)
	if !ok || d.Name != "List" || len(d.Args) != 1 || !d.Args[0].Equals(Number) {
		t.Fatalf("unexpected ListOf result: %#v", lst)
	}
}

func TestArrowStringParenthesizesNestedArrow(t *testing.T) {
	nested := &TArr{In: &TArr{In: Number, Out: Bool}, Out: String}
	got := nested.String()
	want := "(Number -> Bool) -> String"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
