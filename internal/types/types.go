// Package types implements the monotype/scheme representation of the
// front end's Hindley-Milner type system: TVar, TConst, TArr, TTuple,
// TDefined, type schemes, and structural equality over them.
package types

import (
	"fmt"
	"strings"
)

// Type is the closed sum of monotypes (spec §3 "Monotypes").
type Type interface {
	String() string
	Equals(Type) bool
	typeNode()
}

// TVar is a type variable; equality is by name.
type TVar struct {
	Name string
}

func (t *TVar) String() string { return t.Name }
func (t *TVar) Equals(other Type) bool {
	o, ok := other.(*TVar)
	return ok && t.Name == o.Name
}
func (*TVar) typeNode() {}

// TConst is a nullary primitive type.
type TConst struct {
	Name string
}

func (t *TConst) String() string { return t.Name }
func (t *TConst) Equals(other Type) bool {
	o, ok := other.(*TConst)
	return ok && t.Name == o.Name
}
func (*TConst) typeNode() {}

// Built-in nullary primitives.
var (
	Number = &TConst{Name: "Number"}
	Bool   = &TConst{Name: "Bool"}
	Symbol = &TConst{Name: "Symbol"}
	String = &TConst{Name: "String"}
	Char   = &TConst{Name: "Char"}
	Unit   = &TConst{Name: "Unit"}
)

// TArr is a function type, right-associated externally. It is never
// constructed with the in/out fields in any other shape — a function
// of several arguments is TArr(a, TArr(b, TArr(c, r))).
type TArr struct {
	In  Type
	Out Type
}

func (t *TArr) String() string {
	in := t.In.String()
	if _, ok := t.In.(*TArr); ok {
		in = "(" + in + ")"
	}
	return fmt.Sprintf("%s -> %s", in, t.Out.String())
}

func (t *TArr) Equals(other Type) bool {
	o, ok := other.(*TArr)
	return ok && t.In.Equals(o.In) && t.Out.Equals(o.Out)
}
func (*TArr) typeNode() {}

// Func builds a right-associated arrow type from argument types and a
// final return type. Zero arguments yields Unit -> ret, matching the
// spec's "zero-argument application/lambda types as Unit -> α" rule.
func Func(args []Type, ret Type) Type {
	if len(args) == 0 {
		return &TArr{In: Unit, Out: ret}
	}
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &TArr{In: args[i], Out: t}
	}
	return t
}

// Flatten decomposes a right-associated arrow chain into its argument
// sequence and final result type. A non-arrow type flattens to a
// single-element sequence containing itself as the "return" with no
// arguments.
func Flatten(t Type) ([]Type, Type) {
	var args []Type
	for {
		arr, ok := t.(*TArr)
		if !ok {
			return args, t
		}
		args = append(args, arr.In)
		t = arr.Out
	}
}

// Arity reports how many arguments an arrow chain takes (0 for a
// non-arrow type).
func Arity(t Type) int {
	args, _ := Flatten(t)
	return len(args)
}

// TTuple is a heterogeneous product. Invariant: never stored with
// fewer than 2 elements — the nullary product collapses to Unit and a
// singleton collapses to its element (enforced by the Tuple
// constructor).
type TTuple struct {
	Elements []Type
}

func (t *TTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(* " + strings.Join(parts, " ") + ")"
}

func (t *TTuple) Equals(other Type) bool {
	o, ok := other.(*TTuple)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}
func (*TTuple) typeNode() {}

// Tuple constructs a TTuple, collapsing the nullary case to Unit and
// the singleton case to its one element, per spec §3.
func Tuple(elems []Type) Type {
	switch len(elems) {
	case 0:
		return Unit
	case 1:
		return elems[0]
	default:
		return &TTuple{Elements: elems}
	}
}

// TDefined is an applied user-declared type constructor, or the
// built-in List (arity 1).
type TDefined struct {
	Name string
	Args []Type
}

func (t *TDefined) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		s := a.String()
		switch a.(type) {
		case *TArr:
			s = "(" + s + ")"
		case *TDefined:
			if len(a.(*TDefined).Args) > 0 {
				s = "(" + s + ")"
			}
		}
		parts[i] = s
	}
	return t.Name + " " + strings.Join(parts, " ")
}

func (t *TDefined) Equals(other Type) bool {
	o, ok := other.(*TDefined)
	if !ok || t.Name != o.Name || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equals(o.Args[i]) {
			return false
		}
	}
	return true
}
func (*TDefined) typeNode() {}

// ListOf builds the built-in List type applied to elem.
func ListOf(elem Type) Type {
	return &TDefined{Name: "List", Args: []Type{elem}}
}

// Ftv computes the free type variables of t.
func Ftv(t Type) map[string]bool {
	out := make(map[string]bool)
	collectFtv(t, out)
	return out
}

func collectFtv(t Type, out map[string]bool) {
	switch n := t.(type) {
	case *TVar:
		out[n.Name] = true
	case *TConst:
	case *TArr:
		collectFtv(n.In, out)
		collectFtv(n.Out, out)
	case *TTuple:
		for _, e := range n.Elements {
			collectFtv(e, out)
		}
	case *TDefined:
		for _, a := range n.Args {
			collectFtv(a, out)
		}
	}
}
