package types

import (
	"sort"
	"strings"
)

// Scheme is a prenex-quantified monotype: ∀vars. Type.
type Scheme struct {
	Vars []string
	Type Type
}

// IsDummy reports whether the scheme quantifies nothing.
func (s *Scheme) IsDummy() bool { return len(s.Vars) == 0 }

func (s *Scheme) String() string {
	if s.IsDummy() {
		return s.Type.String()
	}
	return "forall " + strings.Join(s.Vars, " ") + ". " + s.Type.String()
}

// Dummy wraps t in a scheme with no quantified variables — used for
// arguments, pattern bindings, and provisional recursive self
// references (spec's "dummy scheme").
func Dummy(t Type) *Scheme {
	return &Scheme{Type: t}
}

// Generalize returns Scheme(vs, t) where vs = ftv(t) \ envFtv, per
// spec §4.1. It does not itself rename variables to clean names — the
// driver does that separately so user-visible schemes print cleanly.
func Generalize(envFtv map[string]bool, t Type) *Scheme {
	tftv := Ftv(t)
	var vars []string
	for v := range tftv {
		if !envFtv[v] {
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	return &Scheme{Vars: vars, Type: t}
}

// FreeVarsGen is a callback supplying fresh type variable names,
// implemented by the inference engine's counter (spec §4.1: instance
// generation allocates one fresh variable per quantified var).
type FreeVarsGen func() Type

// Instantiate allocates a fresh type variable for each quantified
// variable in the scheme and substitutes it through the monotype.
func Instantiate(s *Scheme, fresh FreeVarsGen) Type {
	if s.IsDummy() {
		return s.Type
	}
	sub := make(Subst, len(s.Vars))
	for _, v := range s.Vars {
		sub[v] = fresh()
	}
	return Apply(sub, s.Type)
}
