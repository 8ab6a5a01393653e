package infer

import (
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/types"
)

// PatternBinding is one name introduced by a matched pattern, with its
// inferred (pre-generalization, dummy-scheme) type.
type PatternBinding struct {
	Name string
	Type types.Type
}

// InferPattern yields (type, bindings) for one pattern (spec §4.3).
func (e *Engine) InferPattern(env *types.Env, pat ir.Pattern) (types.Type, []PatternBinding, error) {
	switch p := pat.(type) {
	case *ir.VarPat:
		if p.Name == "_" {
			return e.Fresh(), nil, nil
		}
		t := e.Fresh()
		return t, []PatternBinding{{Name: p.Name, Type: t}}, nil

	case *ir.LitPat:
		t, err := e.inferLit(p.Lit)
		if err != nil {
			return nil, nil, err
		}
		return t, nil, nil

	case *ir.ListPat:
		var binds []PatternBinding
		var elemTypes []types.Type
		for _, sub := range p.Elements {
			t, subBinds, err := e.InferPattern(env, sub)
			if err != nil {
				return nil, nil, err
			}
			binds = append(binds, subBinds...)
			elemTypes = append(elemTypes, t)
		}
		e.AddEquations(elemTypes)
		var elemType types.Type
		if len(elemTypes) == 0 {
			elemType = e.Fresh()
		} else {
			elemType = elemTypes[0]
		}
		return types.ListOf(elemType), binds, nil

	case *ir.TuplePat:
		var binds []PatternBinding
		elemTypes := make([]types.Type, len(p.Elements))
		for i, sub := range p.Elements {
			t, subBinds, err := e.InferPattern(env, sub)
			if err != nil {
				return nil, nil, err
			}
			binds = append(binds, subBinds...)
			elemTypes[i] = t
		}
		return types.Tuple(elemTypes), binds, nil

	case *ir.CtorPat:
		scheme, ok := env.Get(p.Ctor)
		if !ok {
			return nil, nil, &UnboundNameError{Name: p.Ctor}
		}
		ctorType := e.Instantiate(scheme)
		ret := e.Fresh()
		var binds []PatternBinding
		var actual types.Type = ret
		for i := len(p.SubPats) - 1; i >= 0; i-- {
			t, subBinds, err := e.InferPattern(env, p.SubPats[i])
			if err != nil {
				return nil, nil, err
			}
			binds = append(subBinds, binds...)
			actual = &types.TArr{In: t, Out: actual}
		}
		e.AddEquation(actual, ctorType)
		return ret, binds, nil

	default:
		panic("infer: unknown pattern variant")
	}
}
