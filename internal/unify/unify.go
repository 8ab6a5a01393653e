// Package unify implements Robinson unification with occurs check over
// the monotypes in internal/types.
package unify

import (
	"fmt"

	"github.com/tscheme-lang/tscfront/internal/types"
)

// MismatchError reports that two types' constructors, arities, or
// names disagree.
type MismatchError struct {
	Left, Right types.Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

// OccursCheckError reports that a variable would need to unify with a
// type containing itself free.
type OccursCheckError struct {
	Var string
	In  types.Type
}

func (e *OccursCheckError) Error() string {
	return fmt.Sprintf("occurs check failed: %s occurs in %s", e.Var, e.In)
}

// Unify attempts to unify two monotypes, returning a minimal
// substitution or one of MismatchError/OccursCheckError.
func Unify(t1, t2 types.Type) (types.Subst, error) {
	if structEqual(t1, t2) {
		return types.Subst{}, nil
	}

	if v, ok := t1.(*types.TVar); ok {
		return bindVar(v, t2)
	}
	if v, ok := t2.(*types.TVar); ok {
		return bindVar(v, t1)
	}

	switch a := t1.(type) {
	case *types.TArr:
		b, ok := t2.(*types.TArr)
		if !ok {
			return nil, &MismatchError{t1, t2}
		}
		return UnifyList([][2]types.Type{{a.In, b.In}, {a.Out, b.Out}})

	case *types.TTuple:
		b, ok := t2.(*types.TTuple)
		if !ok || len(a.Elements) != len(b.Elements) {
			return nil, &MismatchError{t1, t2}
		}
		pairs := make([][2]types.Type, len(a.Elements))
		for i := range a.Elements {
			pairs[i] = [2]types.Type{a.Elements[i], b.Elements[i]}
		}
		return UnifyList(pairs)

	case *types.TDefined:
		b, ok := t2.(*types.TDefined)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return nil, &MismatchError{t1, t2}
		}
		pairs := make([][2]types.Type, len(a.Args))
		for i := range a.Args {
			pairs[i] = [2]types.Type{a.Args[i], b.Args[i]}
		}
		return UnifyList(pairs)

	default:
		return nil, &MismatchError{t1, t2}
	}
}

func bindVar(v *types.TVar, t types.Type) (types.Subst, error) {
	if _, same := t.(*types.TVar); same && t.(*types.TVar).Name == v.Name {
		return types.Subst{}, nil
	}
	if types.Ftv(t)[v.Name] {
		return nil, &OccursCheckError{Var: v.Name, In: t}
	}
	return types.Subst{v.Name: t}, nil
}

// UnifyList solves a sequence of constraints left-to-right, applying
// each produced substitution to the remaining constraints before
// continuing, then composing. Per spec §4.2 this ordering is part of
// the contract: it determines which variable survives in cycles like
// (α,β),(β,α).
func UnifyList(pairs [][2]types.Type) (types.Subst, error) {
	acc := types.Subst{}
	remaining := make([][2]types.Type, len(pairs))
	copy(remaining, pairs)

	for i := 0; i < len(remaining); i++ {
		l, r := remaining[i][0], remaining[i][1]
		s, err := Unify(l, r)
		if err != nil {
			return nil, err
		}
		for j := i + 1; j < len(remaining); j++ {
			remaining[j][0] = types.Apply(s, remaining[j][0])
			remaining[j][1] = types.Apply(s, remaining[j][1])
		}
		acc = types.Compose(acc, s)
	}
	return acc, nil
}

func structEqual(a, b types.Type) bool {
	return a.Equals(b)
}
