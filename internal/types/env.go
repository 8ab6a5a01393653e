package types

// Env is a persistent typing environment mapping identifier names to
// schemes. Each Extend returns a new frame sharing structure with the
// parent — copy-on-write, per spec §3's "immutable in the logical
// sense" requirement — so a snapshot handed to one SCC is never
// mutated by a sibling's extension.
type Env struct {
	bindings map[string]*Scheme
	parent   *Env
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]*Scheme)}
}

// Get looks up name, walking outward through parent frames.
func (e *Env) Get(name string) (*Scheme, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if s, ok := cur.bindings[name]; ok {
			return s, true
		}
	}
	return nil, false
}

// Add returns a new environment with name bound to scheme, layered on
// top of e.
func (e *Env) Add(name string, scheme *Scheme) *Env {
	return &Env{
		bindings: map[string]*Scheme{name: scheme},
		parent:   e,
	}
}

// Extend returns a new environment with every (name, scheme) pair
// bound in a single new frame on top of e. Bindings within the frame
// shadow each other left-to-right is not meaningful here — all land
// in the same map, matching the Python original's extend() semantics.
func (e *Env) Extend(pairs []NamedScheme) *Env {
	frame := make(map[string]*Scheme, len(pairs))
	for _, p := range pairs {
		frame[p.Name] = p.Scheme
	}
	return &Env{bindings: frame, parent: e}
}

// NamedScheme pairs an identifier with the scheme it is bound to.
type NamedScheme struct {
	Name   string
	Scheme *Scheme
}

// Apply substitutes through every scheme reachable from e, returning
// a new environment (schemes are immutable, so frames can be rebuilt
// without touching the parent chain structurally).
func (e *Env) Apply(s Subst) *Env {
	if e == nil {
		return nil
	}
	frame := make(map[string]*Scheme, len(e.bindings))
	for k, v := range e.bindings {
		ftv := Ftv(v.Type)
		filtered := make(Subst)
		for name, repl := range s {
			if quantified(v, name) {
				continue
			}
			if ftv[name] {
				filtered[name] = repl
			}
		}
		frame[k] = &Scheme{Vars: v.Vars, Type: Apply(filtered, v.Type)}
	}
	return &Env{bindings: frame, parent: e.parent.Apply(s)}
}

func quantified(s *Scheme, name string) bool {
	for _, v := range s.Vars {
		if v == name {
			return true
		}
	}
	return false
}

// Ftv returns the free type variables of every scheme visible in e.
func (e *Env) Ftv() map[string]bool {
	out := make(map[string]bool)
	for cur := e; cur != nil; cur = cur.parent {
		for _, s := range cur.bindings {
			sftv := Ftv(s.Type)
			for v := range sftv {
				if !quantified(s, v) {
					out[v] = true
				}
			}
		}
	}
	return out
}
