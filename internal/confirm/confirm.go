// Package confirm implements annotation confirmation: deciding whether
// an inferred monotype is an instance of a (possibly partial) user
// type annotation, per spec §4.5.
package confirm

import "github.com/tscheme-lang/tscfront/internal/types"

// Confirm decides whether inferred is an instance of annotation. A nil
// annotation (a hole, or a fully-omitted annotation) is always
// accepted. The returned substitution maps inferred variables to
// annotation variables, enabling a clean diagnostic via
// types.Apply(subst, inferred) on mismatch.
func Confirm(inferred, annotation types.Type, subst types.Subst) (bool, types.Subst) {
	if subst == nil {
		subst = types.Subst{}
	}
	if annotation == nil {
		return true, subst
	}

	switch i := inferred.(type) {
	case *types.TVar:
		a, ok := annotation.(*types.TVar)
		if !ok {
			return false, subst
		}
		if mapped, present := subst[i.Name]; present {
			mv, isVar := mapped.(*types.TVar)
			return isVar && mv.Name == a.Name, subst
		}
		subst[i.Name] = a
		return true, subst

	case *types.TConst:
		a, ok := annotation.(*types.TConst)
		return ok && i.Name == a.Name, subst

	case *types.TArr:
		a, ok := annotation.(*types.TArr)
		if !ok || types.Arity(i) != types.Arity(a) {
			return false, subst
		}
		iArgs, iRet := types.Flatten(i)
		aArgs, aRet := types.Flatten(a)
		iSeq := append(iArgs, iRet)
		aSeq := append(aArgs, aRet)
		for idx := range iSeq {
			var ok2 bool
			ok2, subst = Confirm(iSeq[idx], aSeq[idx], subst)
			if !ok2 {
				return false, subst
			}
		}
		return true, subst

	case *types.TDefined:
		a, ok := annotation.(*types.TDefined)
		if !ok || i.Name != a.Name || len(i.Args) != len(a.Args) {
			return false, subst
		}
		for idx := range i.Args {
			var ok2 bool
			ok2, subst = Confirm(i.Args[idx], a.Args[idx], subst)
			if !ok2 {
				return false, subst
			}
		}
		return true, subst

	case *types.TTuple:
		a, ok := annotation.(*types.TTuple)
		if !ok || len(i.Elements) != len(a.Elements) {
			return false, subst
		}
		for idx := range i.Elements {
			var ok2 bool
			ok2, subst = Confirm(i.Elements[idx], a.Elements[idx], subst)
			if !ok2 {
				return false, subst
			}
		}
		return true, subst

	default:
		return false, subst
	}
}
