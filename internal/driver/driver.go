// Package driver implements the top-level three-pass compilation
// driver (spec §4.4): type declaration extraction, definition
// dependency analysis via strongly connected components, and
// per-SCC inference in topological order.
package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/tscheme-lang/tscfront/internal/confirm"
	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/infer"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/irparse"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
	"github.com/tscheme-lang/tscfront/internal/types"
)

// Result is the output of compiling one program: the inferred
// definitions (in topological order over their SCCs) and any
// diagnostics raised along the way. Per spec §7's propagation policy,
// an SCC-level error does not prevent later SCCs from being inferred.
type Result struct {
	Definitions []ir.Definition
	Schemes     map[string]*types.Scheme
	Diagnostics diag.Bag
}

// Compile runs all three passes over a program's top-level forms.
func Compile(forms []sexpr.SExpr, verbose bool) *Result {
	errs := diag.New()
	result := &Result{Schemes: map[string]*types.Scheme{}}

	// Pass 1: type declarations.
	typeDeclForms, rest := irparse.SplitTypeDecls(forms)
	typeDecls, declErrs := irparse.ExtractTypeDecls(typeDeclForms)
	errs = errs.Extend(declErrs)
	if declErrs.HasErrors() {
		result.Diagnostics = errs
		return result
	}

	env := builtinEnv()
	for _, ns := range typeDecls.Schemes {
		env = env.Add(ns.Name, ns.Scheme)
		result.Schemes[ns.Name] = ns.Scheme
	}

	scope := &irparse.TypeScope{Arity: typeDecls.Arity}

	// Pass 2: partition remaining forms, parse defines and
	// expressions, build the dependency graph, condense to SCCs in
	// topological order.
	defs, exprs, parseErrs := irparse.ParseTopLevel(rest, scope)
	errs = errs.Extend(parseErrs)

	byName := map[string]ir.Definition{}
	graph := newCallGraph()
	for _, d := range defs {
		graph.addNode(d.Name())
		byName[d.Name()] = d
	}
	for _, d := range defs {
		for ref := range ir.DefinitionRefs(d) {
			if _, isLocal := byName[ref]; isLocal {
				graph.addEdge(d.Name(), ref)
			}
		}
	}
	sccs := graph.sccsTopological()

	// Pass 3: infer each SCC in topological order.
	engine := infer.New(verbose)
	for _, scc := range sccs {
		members := make([]ir.Definition, 0, len(scc))
		for _, name := range scc {
			if d, ok := byName[name]; ok {
				members = append(members, d)
			}
		}
		if len(members) == 0 {
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "inferring SCC: %s\n", strings.Join(scc, ", "))
		}
		newEnv, ordered, sccErrs := inferSCC(engine, env, members)
		if sccErrs.HasErrors() {
			errs = errs.Extend(sccErrs)
			continue
		}
		env = newEnv
		result.Definitions = append(result.Definitions, ordered...)
		for _, d := range ordered {
			if s, ok := env.Get(d.Name()); ok {
				result.Schemes[d.Name()] = s
			}
		}
	}

	// Free-standing expressions are inferred and solved but emit no
	// binding.
	for _, e := range exprs {
		_, err := engine.InferExpr(env, e)
		if err != nil {
			errs = errs.Add(e.Span(), diag.Scope, "%s", err.Error())
			continue
		}
		if _, err := engine.Solve(); err != nil {
			errs = errs.Add(e.Span(), diag.Unify, "%s", err.Error())
		}
	}

	result.Diagnostics = errs
	return result
}

// inferSCC runs pass 3 steps 1-4 over one strongly connected group of
// definitions, returning the environment extended with every member's
// generalized scheme.
func inferSCC(engine *infer.Engine, env *types.Env, members []ir.Definition) (*types.Env, []ir.Definition, diag.Bag) {
	errs := diag.New()

	// Step 1-2: allocate a fresh rigid monotype per member and bind it
	// as a dummy (non-generalized) scheme so recursive references
	// within the group resolve to a concrete, not-yet-quantified type.
	rigid := make(map[string]types.Type, len(members))
	argNames := make(map[string][]string, len(members))
	cur := env
	for _, d := range members {
		switch def := d.(type) {
		case *ir.Define:
			argTypes := engine.FreshN(len(def.Args))
			if len(argTypes) == 0 {
				argTypes = []types.Type{types.Unit}
			}
			ret := engine.FreshN(1)[0]
			var t types.Type = ret
			for i := len(argTypes) - 1; i >= 0; i-- {
				t = &types.TArr{In: argTypes[i], Out: t}
			}
			if len(def.Args) == 0 {
				t = &types.TArr{In: types.Unit, Out: ret}
			}
			rigid[def.Name()] = t
			argNames[def.Name()] = def.Args
		case *ir.VarDefine:
			rigid[def.Name()] = engine.FreshN(1)[0]
		}
		cur = cur.Add(d.Name(), types.Dummy(rigid[d.Name()]))
	}

	// Step 3: infer each body, then solve the whole group's equations
	// together and apply the result to every rigid type.
	bodyTypes := make(map[string]types.Type, len(members))
	for _, d := range members {
		switch def := d.(type) {
		case *ir.Define:
			names := argNames[def.Name()]
			inner := cur
			argTypes, _ := types.Flatten(rigid[def.Name()])
			// a zero-argument define's rigid type is Unit -> ret; there
			// is no formal to bind for the synthetic Unit argument.
			if len(names) > 0 {
				for i, n := range names {
					inner = inner.Add(n, types.Dummy(argTypes[i]))
				}
			}
			bodyType, err := engine.InferExpr(inner, def.Body)
			if err != nil {
				return env, nil, errs.Add(def.Span(), diag.Scope, "%s", err.Error())
			}
			_, ret := types.Flatten(rigid[def.Name()])
			engine.AddEquation(ret, bodyType)
			bodyTypes[def.Name()] = bodyType
		case *ir.VarDefine:
			bodyType, err := engine.InferExpr(cur, def.Body)
			if err != nil {
				return env, nil, errs.Add(def.Span(), diag.Scope, "%s", err.Error())
			}
			engine.AddEquation(rigid[def.Name()], bodyType)
			bodyTypes[def.Name()] = bodyType
		}
	}

	subst, err := engine.Solve()
	if err != nil {
		return env, nil, errs.Add(members[0].Span(), diag.Unify, "%s", err.Error())
	}
	for name, t := range rigid {
		rigid[name] = types.Apply(subst, t)
	}

	// Step 4: confirm each member's annotation, then generalize and
	// extend the environment. Confirmation happens before
	// generalization so annotation variables line up with inferred
	// ones consistently across the group.
	out := env
	var ordered []ir.Definition
	for _, d := range members {
		t := rigid[d.Name()]
		switch def := d.(type) {
		case *ir.Define:
			argTypes, retType := types.Flatten(t)
			res := confirm.ConfirmDefine(argTypes, retType, def.Annotation)
			if !res.Matched {
				errs = errs.Add(def.Span(), diag.Annotation,
					"annotation mismatch for %s: inferred %s", def.Name(), types.Apply(res.Subst, t))
				continue
			}
		case *ir.VarDefine:
			res := confirm.ConfirmVarDefine(t, def.Annotation)
			if !res.Matched {
				errs = errs.Add(def.Span(), diag.Annotation,
					"annotation mismatch for %s: inferred %s", def.Name(), types.Apply(res.Subst, t))
				continue
			}
		}
		scheme := engine.GeneralizeClean(out.Ftv(), t)
		out = out.Add(d.Name(), scheme)
		ordered = append(ordered, d)
	}

	if errs.HasErrors() {
		return env, nil, errs
	}
	return out, ordered, errs
}
