// Package infer implements the constraint-generating walk over the IR
// that produces, for each top-level definition group, inferred
// monotypes to be confirmed against annotations and generalized.
package infer

import (
	"fmt"

	"github.com/tscheme-lang/tscfront/internal/types"
	"github.com/tscheme-lang/tscfront/internal/unify"
)

// UnboundNameError reports a reference to a name with no binding in
// scope.
type UnboundNameError struct {
	Name string
}

func (e *UnboundNameError) Error() string {
	return fmt.Sprintf("unbound symbol %s", e.Name)
}

// Engine holds the fresh-variable counter, the deferred equation
// queue, and the verbosity flag (spec §4.3). It is created once per
// compilation and threaded through every pass so fresh variables stay
// unique across SCCs.
type Engine struct {
	counter   int
	equations [][2]types.Type
	Verbose   bool
}

// New returns an engine with its counter at zero.
func New(verbose bool) *Engine {
	return &Engine{Verbose: verbose}
}

// Fresh allocates a new type variable, rendered in base 26 using a..z
// (spec §4.1).
func (e *Engine) Fresh() *types.TVar {
	n := e.counter
	e.counter++
	var digits []byte
	digits = append(digits, byte('a'+n%26))
	n /= 26
	for n > 0 {
		digits = append(digits, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return &types.TVar{Name: string(digits)}
}

// FreshN allocates n fresh type variables.
func (e *Engine) FreshN(n int) []types.Type {
	out := make([]types.Type, n)
	for i := range out {
		out[i] = e.Fresh()
	}
	return out
}

// AddEquation defers an equality constraint between two types.
func (e *Engine) AddEquation(left, right types.Type) {
	e.equations = append(e.equations, [2]types.Type{left, right})
}

// AddEquations equates every type in ts against the first.
func (e *Engine) AddEquations(ts []types.Type) {
	if len(ts) == 0 {
		return
	}
	for _, t := range ts[1:] {
		e.AddEquation(ts[0], t)
	}
}

// Solve solves every equation queued so far, in order, and clears the
// queue. It is called at definition/SCC boundaries and, mid-walk, once
// per let binding before that binding is generalized (spec §4.3); the
// Let case re-queues the solution so it is not lost.
func (e *Engine) Solve() (types.Subst, error) {
	pairs := make([][2]types.Type, len(e.equations))
	copy(pairs, e.equations)
	e.equations = nil
	return unify.UnifyList(pairs)
}

// Instantiate allocates a fresh type variable for each quantified
// variable of s and substitutes it through the monotype.
func (e *Engine) Instantiate(s *types.Scheme) types.Type {
	return types.Instantiate(s, func() types.Type { return e.Fresh() })
}

// GeneralizeClean computes vs = ftv(t) \ envFtv, then renames vs to
// freshly-minted type-variable names from the engine's counter before
// quantifying (spec §4.1). The new names continue the counter, so they
// do not restart at a.
func (e *Engine) GeneralizeClean(envFtv map[string]bool, t types.Type) *types.Scheme {
	raw := types.Generalize(envFtv, t)
	if raw.IsDummy() {
		return raw
	}
	rename := make(types.Subst, len(raw.Vars))
	cleanVars := make([]string, len(raw.Vars))
	for i, v := range raw.Vars {
		fresh := e.Fresh()
		rename[v] = fresh
		cleanVars[i] = fresh.Name
	}
	return &types.Scheme{Vars: cleanVars, Type: types.Apply(rename, t)}
}
