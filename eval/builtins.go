package eval

import (
	"strings"

	"cara/parser"
	"cara/types"
)

// builtinFunc is the signature for builtin operations
// Builtins receive unevaluated argument expressions because append/insert/
// len/remove constrain their first argument to be a bare variable reference
// and operate on the owning scope's list binding in place
type builtinFunc func(in *Interpreter, args []parser.Expr, env *Environment) types.Result

// builtinTable maps builtin names to implementations
// These names are checked before user-function resolution and can never be
// shadowed by a user definition
var builtinTable = map[string]builtinFunc{
	"print":  builtinPrint,
	"append": builtinAppend,
	"insert": builtinInsert,
	"len":    builtinLen,
	"remove": builtinRemove,
}

// resolveBuiltins maps interned identifier ids onto the builtin table
// The identifier table is fixed at construction, so the per-id map lets
// call dispatch skip the name lookup entirely
func resolveBuiltins(names []string) map[parser.Symbol]builtinFunc {
	resolved := make(map[parser.Symbol]builtinFunc)
	for id, name := range names {
		if fn, ok := builtinTable[name]; ok {
			resolved[parser.Symbol(id)] = fn
		}
	}
	return resolved
}

// listVarArg extracts the bare-variable shape required for list builtins
func listVarArg(arg parser.Expr) (parser.Symbol, bool) {
	ref, ok := arg.(*parser.VarRefExpr)
	if !ok {
		return 0, false
	}
	return ref.Sym, true
}

// builtinPrint evaluates each argument and forwards the space-separated
// line to the installed sink; no sink is a distinct E_NOPRINT failure
func builtinPrint(in *Interpreter, args []parser.Expr, env *Environment) types.Result {
	if in.printer == nil {
		return types.Err(types.E_NOPRINT)
	}
	parts := make([]string, 0, len(args))
	for _, argExpr := range args {
		result := in.Eval(argExpr, env)
		if !result.IsNormal() {
			return result
		}
		parts = append(parts, result.Val.String())
	}
	in.printer(strings.Join(parts, " ") + "\n")
	return types.OkVoid()
}

// builtinAppend appends the evaluated value to the referenced list:
// append(listVar, value)
func builtinAppend(in *Interpreter, args []parser.Expr, env *Environment) types.Result {
	if len(args) != 2 {
		return types.Err(types.E_ARGS)
	}
	sym, ok := listVarArg(args[0])
	if !ok {
		return types.Err(types.E_ARGS)
	}
	result := in.Eval(args[1], env)
	if !result.IsNormal() {
		return result
	}
	if err := env.ListAppend(sym, result.Val); err != nil {
		return types.Fail(err)
	}
	return types.OkVoid()
}

// builtinInsert inserts at a position, shifting subsequent elements:
// insert(listVar, index, value)
func builtinInsert(in *Interpreter, args []parser.Expr, env *Environment) types.Result {
	if len(args) != 3 {
		return types.Err(types.E_ARGS)
	}
	sym, ok := listVarArg(args[0])
	if !ok {
		return types.Err(types.E_ARGS)
	}
	index, failed := in.evalIndexValue(args[1], env)
	if failed != nil {
		return *failed
	}
	result := in.Eval(args[2], env)
	if !result.IsNormal() {
		return result
	}
	if err := env.ListInsert(sym, index, result.Val); err != nil {
		return types.Fail(err)
	}
	return types.OkVoid()
}

// builtinLen returns the element count: len(listVar)
func builtinLen(in *Interpreter, args []parser.Expr, env *Environment) types.Result {
	if len(args) != 1 {
		return types.Err(types.E_ARGS)
	}
	sym, ok := listVarArg(args[0])
	if !ok {
		return types.Err(types.E_ARGS)
	}
	length, err := env.ListLen(sym)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(types.NewInt(int64(length)))
}

// builtinRemove removes and returns the element at index:
// remove(listVar, index)
func builtinRemove(in *Interpreter, args []parser.Expr, env *Environment) types.Result {
	if len(args) != 2 {
		return types.Err(types.E_ARGS)
	}
	sym, ok := listVarArg(args[0])
	if !ok {
		return types.Err(types.E_ARGS)
	}
	index, failed := in.evalIndexValue(args[1], env)
	if failed != nil {
		return *failed
	}
	val, err := env.ListRemove(sym, index)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(val)
}
