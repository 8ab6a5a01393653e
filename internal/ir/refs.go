package ir

// FreeRefs collects the names referenced by e that are not bound by
// some enclosing lambda, let binding, or pattern within e itself. The
// top-level driver uses this to build the definition dependency graph
// (spec §4.4 pass 2): it adds an edge u -> v when u's body references
// v, so that v is inferred before u.
func FreeRefs(e Expr) map[string]bool {
	out := make(map[string]bool)
	collectRefs(e, map[string]bool{}, out)
	return out
}

func collectRefs(e Expr, bound map[string]bool, out map[string]bool) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *Lit:
		// literals (including quoted lists) reference nothing
	case *Var:
		if !bound[n.Name] {
			out[n.Name] = true
		}
	case *App:
		collectRefs(n.Fn, bound, out)
		for _, a := range n.Args {
			collectRefs(a, bound, out)
		}
	case *Lambda:
		inner := extend(bound, n.Formals)
		collectRefs(n.Body, inner, out)
	case *Let:
		cur := bound
		for _, b := range n.Bindings {
			collectRefs(b.Expr, cur, out)
			cur = extend(cur, []string{b.Name})
		}
		collectRefs(n.Body, cur, out)
	case *If:
		collectRefs(n.Cond, bound, out)
		collectRefs(n.Then, bound, out)
		collectRefs(n.Else, bound, out)
	case *Cond:
		for _, arm := range n.Arms {
			collectRefs(arm.Test, bound, out)
			collectRefs(arm.Arm, bound, out)
		}
	case *Match:
		collectRefs(n.Scrutinee, bound, out)
		for _, arm := range n.Arms {
			inner := extend(bound, arm.Pattern.Bindings())
			collectRefs(arm.Arm, inner, out)
		}
	case *Begin:
		for _, sub := range n.Exprs {
			collectRefs(sub, bound, out)
		}
	case *Set:
		if !bound[n.Name] {
			out[n.Name] = true
		}
		collectRefs(n.Expr, bound, out)
	case *ListCtor:
		for _, sub := range n.Elements {
			collectRefs(sub, bound, out)
		}
	case *TupleCtor:
		for _, sub := range n.Elements {
			collectRefs(sub, bound, out)
		}
	}
}

func extend(bound map[string]bool, names []string) map[string]bool {
	if len(names) == 0 {
		return bound
	}
	out := make(map[string]bool, len(bound)+len(names))
	for k := range bound {
		out[k] = true
	}
	for _, n := range names {
		out[n] = true
	}
	return out
}

// DefinitionRefs returns the free references of a definition's body,
// with its own parameters (for a function-shape Define) bound.
func DefinitionRefs(def Definition) map[string]bool {
	switch d := def.(type) {
	case *Define:
		out := make(map[string]bool)
		bound := extend(map[string]bool{}, d.Args)
		collectRefs(d.Body, bound, out)
		return out
	case *VarDefine:
		return FreeRefs(d.Body)
	default:
		return nil
	}
}
