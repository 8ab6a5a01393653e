package ir

import "github.com/tscheme-lang/tscfront/internal/types"

// TypeExpr is a parsed surface type-annotation tree, distinct from
// types.Type: it is never itself holed (holes live one level up, at
// an Annotation's per-argument slots), and it carries enough surface
// shape to be converted to a types.Type once declared type arities are
// known.
type TypeExpr interface {
	typeExprNode()
}

// TEConst names one of the built-in nullary primitives.
type TEConst struct{ Name string }

func (TEConst) typeExprNode() {}

// TEVar is a lowercase type variable. Inside a type declaration it must
// be one of that declaration's bound variables; in a define's
// annotation any name is accepted.
type TEVar struct{ Name string }

func (TEVar) typeExprNode() {}

// TEArr is a function type; Args has at least one element (a
// single-argument (-> t) means Unit -> t, normalized by the parser).
type TEArr struct {
	Args []TypeExpr
	Ret  TypeExpr
}

func (TEArr) typeExprNode() {}

// TETuple is a product type of arity >= 2.
type TETuple struct{ Elements []TypeExpr }

func (TETuple) typeExprNode() {}

// TEDefined is a capitalized type constructor applied to arguments
// (possibly zero, e.g. a nullary user sum type).
type TEDefined struct {
	Name string
	Args []TypeExpr
}

func (TEDefined) typeExprNode() {}

// ToMonotype converts a surface TypeExpr into a types.Type. Every TEVar
// becomes a type variable named as written.
func ToMonotype(te TypeExpr) types.Type {
	switch t := te.(type) {
	case TEConst:
		switch t.Name {
		case "Number":
			return types.Number
		case "Bool":
			return types.Bool
		case "Symbol":
			return types.Symbol
		case "String":
			return types.String
		case "Char":
			return types.Char
		case "Unit":
			return types.Unit
		default:
			return &types.TConst{Name: t.Name}
		}
	case TEVar:
		return &types.TVar{Name: t.Name}
	case TEArr:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = ToMonotype(a)
		}
		return types.Func(args, ToMonotype(t.Ret))
	case TETuple:
		elems := make([]types.Type, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = ToMonotype(e)
		}
		return types.Tuple(elems)
	case TEDefined:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = ToMonotype(a)
		}
		return &types.TDefined{Name: t.Name, Args: args}
	default:
		panic("ir: unknown TypeExpr variant")
	}
}
