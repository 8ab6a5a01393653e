package infer

import (
	"sort"

	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/types"
)

// InferExpr walks e under env, generating equations as it goes and
// returning a provisional type. Callers solve the accumulated
// equations afterwards and apply the result (spec §4.3).
func (e *Engine) InferExpr(env *types.Env, expr ir.Expr) (types.Type, error) {
	switch n := expr.(type) {
	case *ir.Lit:
		return e.inferLit(n)

	case *ir.Var:
		scheme, ok := env.Get(n.Name)
		if !ok {
			return nil, &UnboundNameError{Name: n.Name}
		}
		return e.Instantiate(scheme), nil

	case *ir.App:
		ret := e.Fresh()
		var out types.Type = ret
		fType, err := e.InferExpr(env, n.Fn)
		if err != nil {
			return nil, err
		}
		argTypes := make([]types.Type, len(n.Args))
		for i, a := range n.Args {
			at, err := e.InferExpr(env, a)
			if err != nil {
				return nil, err
			}
			argTypes[i] = at
		}
		for i := len(argTypes) - 1; i >= 0; i-- {
			out = &types.TArr{In: argTypes[i], Out: out}
		}
		if len(n.Args) == 0 {
			out = &types.TArr{In: types.Unit, Out: out}
		}
		e.AddEquation(out, fType)
		return ret, nil

	case *ir.Lambda:
		formalTypes := make([]types.Type, len(n.Formals))
		inner := env
		for i, f := range n.Formals {
			tv := e.Fresh()
			formalTypes[i] = tv
			inner = inner.Add(f, types.Dummy(tv))
		}
		bodyType, err := e.InferExpr(inner, n.Body)
		if err != nil {
			return nil, err
		}
		ret := bodyType
		for i := len(formalTypes) - 1; i >= 0; i-- {
			ret = &types.TArr{In: formalTypes[i], Out: ret}
		}
		if len(n.Formals) == 0 {
			ret = &types.TArr{In: types.Unit, Out: bodyType}
		}
		return ret, nil

	case *ir.Let:
		cur := env
		for _, b := range n.Bindings {
			dType, err := e.InferExpr(cur, b.Expr)
			if err != nil {
				return nil, err
			}
			subst, err := e.Solve()
			if err != nil {
				return nil, err
			}
			dType = types.Apply(subst, dType)
			// Solve cleared the queue; put the solution back as
			// equations so the enclosing definition's solve keeps it.
			solved := make([]string, 0, len(subst))
			for v := range subst {
				solved = append(solved, v)
			}
			sort.Strings(solved)
			for _, v := range solved {
				e.AddEquation(&types.TVar{Name: v}, subst[v])
			}
			scheme := e.GeneralizeClean(cur.Ftv(), dType)
			cur = cur.Add(b.Name, scheme)
		}
		return e.InferExpr(cur, n.Body)

	case *ir.If:
		condType, err := e.InferExpr(env, n.Cond)
		if err != nil {
			return nil, err
		}
		thenType, err := e.InferExpr(env, n.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := e.InferExpr(env, n.Else)
		if err != nil {
			return nil, err
		}
		e.AddEquation(thenType, elseType)
		e.AddEquation(condType, types.Bool)
		return elseType, nil

	case *ir.Cond:
		var condTypes, armTypes []types.Type
		for _, arm := range n.Arms {
			ct, err := e.InferExpr(env, arm.Test)
			if err != nil {
				return nil, err
			}
			at, err := e.InferExpr(env, arm.Arm)
			if err != nil {
				return nil, err
			}
			condTypes = append(condTypes, ct)
			armTypes = append(armTypes, at)
		}
		for _, ct := range condTypes {
			e.AddEquation(ct, types.Bool)
		}
		e.AddEquations(armTypes)
		return armTypes[0], nil

	case *ir.Begin:
		var last types.Type
		for _, sub := range n.Exprs {
			t, err := e.InferExpr(env, sub)
			if err != nil {
				return nil, err
			}
			last = t
		}
		return last, nil

	case *ir.Set:
		scheme, ok := env.Get(n.Name)
		if !ok {
			return nil, &UnboundNameError{Name: n.Name}
		}
		symType := e.Instantiate(scheme)
		valType, err := e.InferExpr(env, n.Expr)
		if err != nil {
			return nil, err
		}
		e.AddEquation(symType, valType)
		return types.Unit, nil

	case *ir.Match:
		scrutType, err := e.InferExpr(env, n.Scrutinee)
		if err != nil {
			return nil, err
		}
		var armTypes []types.Type
		for _, arm := range n.Arms {
			patType, binds, err := e.InferPattern(env, arm.Pattern)
			if err != nil {
				return nil, err
			}
			e.AddEquation(scrutType, patType)
			inner := env
			for _, b := range binds {
				inner = inner.Add(b.Name, types.Dummy(b.Type))
			}
			armType, err := e.InferExpr(inner, arm.Arm)
			if err != nil {
				return nil, err
			}
			armTypes = append(armTypes, armType)
		}
		e.AddEquations(armTypes)
		return armTypes[0], nil

	case *ir.ListCtor:
		var elemTypes []types.Type
		for _, el := range n.Elements {
			t, err := e.InferExpr(env, el)
			if err != nil {
				return nil, err
			}
			elemTypes = append(elemTypes, t)
		}
		e.AddEquations(elemTypes)
		var elemType types.Type
		if len(elemTypes) == 0 {
			elemType = e.Fresh()
		} else {
			elemType = elemTypes[0]
		}
		return types.ListOf(elemType), nil

	case *ir.TupleCtor:
		if len(n.Elements) == 0 {
			return types.Unit, nil
		}
		elemTypes := make([]types.Type, len(n.Elements))
		for i, el := range n.Elements {
			t, err := e.InferExpr(env, el)
			if err != nil {
				return nil, err
			}
			elemTypes[i] = t
		}
		return types.Tuple(elemTypes), nil

	default:
		panic("infer: unknown expression variant")
	}
}

func (e *Engine) inferLit(l *ir.Lit) (types.Type, error) {
	switch l.Kind {
	case ir.LitInt, ir.LitFloat:
		return types.Number, nil
	case ir.LitBool:
		return types.Bool, nil
	case ir.LitSymbol:
		return types.Symbol, nil
	case ir.LitString:
		return types.String, nil
	case ir.LitChar:
		return types.Char, nil
	case ir.LitQuotedList:
		if len(l.Elements) == 0 {
			return types.ListOf(e.Fresh()), nil
		}
		subTypes := make([]types.Type, len(l.Elements))
		for i, el := range l.Elements {
			t, err := e.inferLit(el)
			if err != nil {
				return nil, err
			}
			subTypes[i] = t
		}
		e.AddEquations(subTypes)
		return types.ListOf(subTypes[0]), nil
	default:
		panic("infer: unknown literal kind")
	}
}
