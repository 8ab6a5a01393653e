// Package emit re-serializes inferred IR definitions back to surface
// s-expression text for the external lowering collaborator (spec §3
// "consumed by the external lowering collaborator").
package emit

import (
	"strings"

	"github.com/tscheme-lang/tscfront/internal/ir"
)

// Emit renders a list of definitions, one per line, in the order
// given — callers pass driver.Result.Definitions, which already
// preserves topological order over the definition SCCs (spec §6
// "Output").
func Emit(defs []ir.Definition) string {
	lines := make([]string, len(defs))
	for i, d := range defs {
		lines[i] = d.ToSExpr().String()
	}
	return strings.Join(lines, "\n")
}
