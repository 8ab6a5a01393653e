package irparse

import (
	"unicode"

	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
	"github.com/tscheme-lang/tscfront/internal/types"
)

// TypeDecls is the output of pass 1: the arity table for every
// user-declared type plus List (seeded at arity 1; it is never iterated
// as a declared type, and its constructors come from the built-in
// environment), the constructor/extractor schemes to bind, and the
// set of record type names (so lowering can use positional access).
type TypeDecls struct {
	Arity       map[string]int
	Schemes     []types.NamedScheme
	RecordNames map[string]bool
}

// IsTypeDecl reports whether form is a define-sum or define-record.
func IsTypeDecl(form sexpr.SExpr) bool {
	l, ok := form.(*sexpr.List)
	if !ok || len(l.Elements) == 0 {
		return false
	}
	name, ok := l.HeadSymbol()
	return ok && (name == "define-sum" || name == "define-record")
}

type parsedTypeHead struct {
	name   string
	vars   []string
	record bool
	form   *sexpr.List
	span   sexpr.Span
}

// ExtractTypeDecls runs pass 1 over every define-sum/define-record
// form, in the order given.
func ExtractTypeDecls(forms []*sexpr.List) (*TypeDecls, diag.Bag) {
	errs := diag.New()
	var heads []parsedTypeHead
	seen := map[string]bool{}

	for _, f := range forms {
		headName, _ := f.HeadSymbol()
		isRecord := headName == "define-record"
		if len(f.Elements) < 2 {
			errs = errs.Add(f.Span(), diag.TypeDecl, "wrong arity in %s", headName)
			continue
		}
		nameForm := f.Elements[1]
		name, vars, headErrs := parseTypeHeadName(nameForm)
		errs = errs.Extend(headErrs)
		if name == "" {
			continue
		}
		if seen[name] {
			errs = errs.Add(f.Span(), diag.TypeDecl, "type %s has been defined", name)
			continue
		}
		seen[name] = true
		heads = append(heads, parsedTypeHead{name: name, vars: vars, record: isRecord, form: f, span: f.Span()})
	}

	// List is always in scope for annotation parsing but is never one
	// of the forms iterated above — it has no define-sum/define-record
	// of its own, so it must be seeded directly rather than looped
	// over like a declared type.
	arity := map[string]int{"List": 1}
	for _, h := range heads {
		arity[h.name] = len(h.vars)
	}

	decls := &TypeDecls{Arity: arity, RecordNames: map[string]bool{}}
	if errs.HasErrors() {
		return decls, errs
	}

	for _, h := range heads {
		boundVars := map[string]bool{}
		for _, v := range h.vars {
			boundVars[v] = true
		}
		scope := &TypeScope{BoundVars: boundVars, Arity: arity}

		defArgs := make([]types.Type, len(h.vars))
		for i, v := range h.vars {
			defArgs[i] = &types.TVar{Name: v}
		}
		defined := &types.TDefined{Name: h.name, Args: defArgs}

		if h.record {
			schemes, recErrs := parseRecordFields(h, scope, defined)
			errs = errs.Extend(recErrs)
			decls.Schemes = append(decls.Schemes, schemes...)
			decls.RecordNames[h.name] = true
		} else {
			schemes, sumErrs := parseSumCtors(h, scope, defined)
			errs = errs.Extend(sumErrs)
			decls.Schemes = append(decls.Schemes, schemes...)
		}
	}

	return decls, errs
}

func parseTypeHeadName(form sexpr.SExpr) (string, []string, diag.Bag) {
	errs := diag.New()
	switch f := form.(type) {
	case *sexpr.Symbol:
		if !unicode.IsUpper(rune(f.Name[0])) {
			errs = errs.Add(f.Span(), diag.TypeDecl, "type name must start with a capital letter")
		}
		return f.Name, nil, errs
	case *sexpr.List:
		if len(f.Elements) == 0 {
			errs = errs.Add(f.Span(), diag.TypeDecl, "type cannot be an empty list")
			return "", nil, errs
		}
		nameSym, ok := f.Elements[0].(*sexpr.Symbol)
		if !ok {
			errs = errs.Add(f.Elements[0].Span(), diag.TypeDecl, "type must be a list of symbols")
			return "", nil, errs
		}
		if !unicode.IsUpper(rune(nameSym.Name[0])) {
			errs = errs.Add(nameSym.Span(), diag.TypeDecl, "type name must start with a capital letter")
		}
		var vars []string
		seen := map[string]bool{}
		for _, v := range f.Elements[1:] {
			vSym, ok := v.(*sexpr.Symbol)
			if !ok {
				errs = errs.Add(v.Span(), diag.TypeDecl, "type must be a list of symbols")
				continue
			}
			if !unicode.IsLower(rune(vSym.Name[0])) {
				errs = errs.Add(vSym.Span(), diag.TypeDecl, "type variable must start with a lowercase letter")
				continue
			}
			if seen[vSym.Name] {
				errs = errs.Add(vSym.Span(), diag.TypeDecl, "duplicate type variable %s", vSym.Name)
				continue
			}
			seen[vSym.Name] = true
			vars = append(vars, vSym.Name)
		}
		return nameSym.Name, vars, errs
	default:
		errs = errs.Add(form.Span(), diag.TypeDecl, "type must be a symbol or a list")
		return "", nil, errs
	}
}

func genScheme(vars []string, t types.Type) *types.Scheme {
	return &types.Scheme{Vars: vars, Type: t}
}

func parseSumCtors(h parsedTypeHead, scope *TypeScope, defined *types.TDefined) ([]types.NamedScheme, diag.Bag) {
	errs := diag.New()
	var out []types.NamedScheme

	for _, ctorForm := range h.form.Elements[2:] {
		ctorList, ok := ctorForm.(*sexpr.List)
		if !ok || len(ctorList.Elements) == 0 {
			errs = errs.Add(ctorForm.Span(), diag.TypeDecl, "wrong form of data constructor")
			continue
		}
		nameSym, ok := ctorList.Elements[0].(*sexpr.Symbol)
		if !ok {
			errs = errs.Add(ctorList.Elements[0].Span(), diag.TypeDecl, "data constructor name must be a symbol")
			continue
		}
		if !unicode.IsUpper(rune(nameSym.Name[0])) {
			errs = errs.Add(nameSym.Span(), diag.TypeDecl, "data constructor name must start with a capital letter")
		}

		var argTypes []types.Type
		for _, argForm := range ctorList.Elements[1:] {
			te, tErrs := ParseTypeExpr(scope, argForm)
			errs = errs.Extend(tErrs)
			argTypes = append(argTypes, ir.ToMonotype(te))
		}

		ctorType := types.Func(argTypes, defined)
		out = append(out, types.NamedScheme{Name: nameSym.Name, Scheme: genScheme(h.vars, ctorType)})
	}
	return out, errs
}

func parseRecordFields(h parsedTypeHead, scope *TypeScope, defined *types.TDefined) ([]types.NamedScheme, diag.Bag) {
	errs := diag.New()
	var out []types.NamedScheme

	if len(h.form.Elements) < 3 {
		errs = errs.Add(h.span, diag.TypeDecl, "wrong arity in define-record")
		return out, errs
	}

	var fieldTypes []types.Type
	for _, fieldForm := range h.form.Elements[2:] {
		fieldList, ok := fieldForm.(*sexpr.List)
		if !ok || len(fieldList.Elements) != 2 {
			errs = errs.Add(fieldForm.Span(), diag.TypeDecl, "field in define-record must be a (name type) pair")
			continue
		}
		fieldSym, ok := fieldList.Elements[0].(*sexpr.Symbol)
		if !ok {
			errs = errs.Add(fieldList.Elements[0].Span(), diag.TypeDecl, "field name must be a symbol")
			continue
		}
		te, tErrs := ParseTypeExpr(scope, fieldList.Elements[1])
		errs = errs.Extend(tErrs)
		ft := ir.ToMonotype(te)
		fieldTypes = append(fieldTypes, ft)

		extractorName := h.name + "." + fieldSym.Name
		extractorType := types.Func([]types.Type{defined}, ft)
		out = append(out, types.NamedScheme{Name: extractorName, Scheme: genScheme(h.vars, extractorType)})
	}

	ctorType := types.Func(fieldTypes, defined)
	out = append(out, types.NamedScheme{Name: h.name, Scheme: genScheme(h.vars, ctorType)})
	return out, errs
}
