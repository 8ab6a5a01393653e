package confirm

import (
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/types"
)

// Result is the outcome of confirming a definition's full signature
// against its (possibly partial) annotation.
type Result struct {
	Matched  bool
	Subst    types.Subst
	AllHoles bool
}

// ConfirmDefine confirms a function-shape definition's inferred
// argument and return types against its annotation. A hole at any
// argument or return slot always matches that slot (spec §4.5); an
// annotation with every slot holed is still accepted but reported so
// a diagnostic can note it is vacuous.
func ConfirmDefine(inferredArgs []types.Type, inferredRet types.Type, anno *ir.Annotation) Result {
	subst := types.Subst{}
	if anno == nil {
		return Result{Matched: true, Subst: subst}
	}

	allHoles := anno.RetType.Hole
	for i, arg := range inferredArgs {
		if i >= len(anno.ArgTypes) || anno.ArgTypes[i].Hole {
			continue
		}
		allHoles = false
		ok, s := Confirm(arg, ir.ToMonotype(anno.ArgTypes[i].Expr), subst)
		subst = s
		if !ok {
			return Result{Matched: false, Subst: subst}
		}
	}
	if !anno.RetType.Hole {
		ok, s := Confirm(inferredRet, ir.ToMonotype(anno.RetType.Expr), subst)
		subst = s
		if !ok {
			return Result{Matched: false, Subst: subst}
		}
	}
	return Result{Matched: true, Subst: subst, AllHoles: allHoles}
}

// ConfirmVarDefine confirms a value-shape definition's inferred type
// against its annotation.
func ConfirmVarDefine(inferred types.Type, anno *ir.Annotation) Result {
	if anno == nil || anno.RetType.Hole {
		return Result{Matched: true, Subst: types.Subst{}, AllHoles: anno != nil}
	}
	ok, s := Confirm(inferred, ir.ToMonotype(anno.RetType.Expr), types.Subst{})
	return Result{Matched: ok, Subst: s}
}
