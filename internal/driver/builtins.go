package driver

import "github.com/tscheme-lang/tscfront/internal/types"

// builtinEnv returns the environment every compilation starts from:
// List's Cons/Nil constructors plus the arithmetic and I/O primitives
// (spec §4.4 pass 1: "List with constructors Cons/Nil is always
// present plus the arithmetic and I/O primitives").
func builtinEnv() *types.Env {
	a := &types.TVar{Name: "a"}
	listA := types.ListOf(a)

	monos := map[string]types.Type{
		"+":         types.Func([]types.Type{types.Number, types.Number}, types.Number),
		"-":         types.Func([]types.Type{types.Number, types.Number}, types.Number),
		"*":         types.Func([]types.Type{types.Number, types.Number}, types.Number),
		"/":         types.Func([]types.Type{types.Number, types.Number}, types.Number),
		"=":         types.Func([]types.Type{types.Number, types.Number}, types.Bool),
		">":         types.Func([]types.Type{types.Number, types.Number}, types.Bool),
		"<":         types.Func([]types.Type{types.Number, types.Number}, types.Bool),
		"and":       types.Func([]types.Type{types.Bool, types.Bool}, types.Bool),
		"or":        types.Func([]types.Type{types.Bool, types.Bool}, types.Bool),
		"not":       types.Func([]types.Type{types.Bool}, types.Bool),
		"rand":      types.Func([]types.Type{types.Unit}, types.Number),
		"cons":      types.Func([]types.Type{a, listA}, listA),
		"car":       types.Func([]types.Type{listA}, a),
		"cdr":       types.Func([]types.Type{listA}, listA),
		"Cons":      types.Func([]types.Type{a, listA}, listA),
		"Nil":       listA,
		"null":      listA,
		"print":     types.Func([]types.Type{a}, types.Unit),
		"println":   types.Func([]types.Type{a}, types.Unit),
		"read-line": types.Func([]types.Type{types.Unit}, types.String),
	}

	env := types.NewEnv()
	for name, mono := range monos {
		vars := types.Ftv(mono)
		var varList []string
		for v := range vars {
			varList = append(varList, v)
		}
		env = env.Add(name, &types.Scheme{Vars: varList, Type: mono})
	}
	return env
}
