// Package diag collects the recoverable diagnostics produced while
// parsing and type-checking a program. The reader reports its own
// sexpr.ReadError values; every later pass reports through an Error.
package diag

import (
	"fmt"
	"strings"

	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

// Kind classifies where an Error originated, matching spec §7's error
// kinds (syntax, type-decl, unify, annotation, scope).
type Kind string

const (
	Syntax     Kind = "syntax"
	TypeDecl   Kind = "type-decl"
	Unify      Kind = "unify"
	Annotation Kind = "annotation"
	Scope      Kind = "scope"
)

// Error is a single diagnostic tied to a source span.
type Error struct {
	Span    sexpr.Span
	Kind    Kind
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("in %s: %s", e.Span, e.Message)
}

// Bag accumulates errors across a compilation. New returns an empty
// (nil) bag; Add and Extend return the grown bag and leave the
// receiver's length unchanged.
type Bag []Error

// New returns an empty diagnostic bag.
func New() Bag { return nil }

// Add appends a single diagnostic.
func (b Bag) Add(span sexpr.Span, kind Kind, format string, args ...interface{}) Bag {
	return append(b, Error{Span: span, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Extend appends every diagnostic from other.
func (b Bag) Extend(other Bag) Bag {
	return append(b, other...)
}

// HasErrors reports whether any diagnostic has been recorded.
func (b Bag) HasErrors() bool { return len(b) > 0 }

// Render formats the bag as spec §6's "one error per line" output:
// `in <span>: <message>`.
func (b Bag) Render() string {
	lines := make([]string, len(b))
	for i, e := range b {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
