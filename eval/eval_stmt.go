package eval

import (
	"math/big"

	"cara/parser"
	"cara/trace"
	"cara/types"
)

// EvalStatements evaluates a sequence of statements in order
// The sequence aborts on the first non-normal result; control-flow signals
// are propagated, not consumed, by a bare block
func (in *Interpreter) EvalStatements(stmts []parser.Stmt, env *Environment) types.Result {
	for _, stmt := range stmts {
		result := in.EvalStmt(stmt, env)
		if !result.IsNormal() {
			return result
		}
	}
	return types.OkVoid()
}

// EvalStmt evaluates a single statement
func (in *Interpreter) EvalStmt(stmt parser.Stmt, env *Environment) types.Result {
	switch s := stmt.(type) {
	case *parser.VarDeclStmt:
		return in.evalVarDecl(s, env)
	case *parser.ConstDeclStmt:
		return in.evalConstDecl(s, env)
	case *parser.AssignStmt:
		return in.evalAssign(s, env)
	case *parser.FnDeclStmt:
		return in.evalFnDecl(s, env)
	case *parser.ReturnStmt:
		return in.evalReturn(s, env)
	case *parser.IfStmt:
		return in.evalIf(s, env)
	case *parser.ForStmt:
		return in.evalFor(s, env)
	case *parser.WhileStmt:
		return in.evalWhile(s, env)
	case *parser.BreakStmt:
		return types.Break()
	case *parser.ContinueStmt:
		return types.Continue()
	case *parser.ExprStmt:
		result := in.Eval(s.Expr, env)
		if !result.IsNormal() {
			return result
		}
		// Statement position - the value is discarded
		return types.OkVoid()
	default:
		return types.Err(types.E_OPERATOR)
	}
}

// evalVarDecl evaluates the initializer and binds a new Var in the current
// scope; redefinition in the same scope silently shadows
func (in *Interpreter) evalVarDecl(stmt *parser.VarDeclStmt, env *Environment) types.Result {
	result := in.Eval(stmt.Init, env)
	if !result.IsNormal() {
		return result
	}
	env.Define(stmt.Sym, &Binding{Kind: BindVar, Val: result.Val})
	return types.OkVoid()
}

// evalConstDecl evaluates the initializer and binds a new Const
func (in *Interpreter) evalConstDecl(stmt *parser.ConstDeclStmt, env *Environment) types.Result {
	result := in.Eval(stmt.Init, env)
	if !result.IsNormal() {
		return result
	}
	env.Define(stmt.Sym, &Binding{Kind: BindConst, Val: result.Val})
	return types.OkVoid()
}

// evalAssign evaluates the right-hand side first, then writes either the
// variable or, with an index, the list element. The visible result of an
// assignment is always Void
func (in *Interpreter) evalAssign(stmt *parser.AssignStmt, env *Environment) types.Result {
	result := in.Eval(stmt.Value, env)
	if !result.IsNormal() {
		return result
	}
	if stmt.Index != nil {
		index, failed := in.evalIndexValue(stmt.Index, env)
		if failed != nil {
			return *failed
		}
		if err := env.ListModify(stmt.Sym, index, result.Val); err != nil {
			return types.Fail(err)
		}
		return types.OkVoid()
	}
	if err := env.Assign(stmt.Sym, result.Val); err != nil {
		return types.Fail(err)
	}
	return types.OkVoid()
}

// evalFnDecl stores a function binding; the body is not executed and the
// shared statement slice is referenced, never copied
func (in *Interpreter) evalFnDecl(stmt *parser.FnDeclStmt, env *Environment) types.Result {
	env.Define(stmt.Sym, &Binding{Kind: BindFunc, Params: stmt.Params, Body: stmt.Body})
	return types.OkVoid()
}

// evalReturn turns the statement into a return signal carrying the value
func (in *Interpreter) evalReturn(stmt *parser.ReturnStmt, env *Environment) types.Result {
	result := in.Eval(stmt.Value, env)
	if !result.IsNormal() {
		return result
	}
	return types.Return(result.Val)
}

// evalIf evaluates the condition in the current scope, then runs the chosen
// branch in one child scope; the branch result propagates as a block
func (in *Interpreter) evalIf(stmt *parser.IfStmt, env *Environment) types.Result {
	condResult := in.Eval(stmt.Condition, env)
	if !condResult.IsNormal() {
		return condResult
	}
	child := NewNestedEnvironment(env)
	if condResult.Val.Truthy() {
		return in.EvalStatements(stmt.Then, child)
	}
	return in.EvalStatements(stmt.Else, child)
}

// evalWhile evaluates while loops
// One child scope serves the whole loop and is cleared before each
// iteration, so body-local bindings never leak between iterations and the
// scope is recycled rather than reallocated
func (in *Interpreter) evalWhile(stmt *parser.WhileStmt, env *Environment) types.Result {
	child := NewNestedEnvironment(env)
	for {
		// Condition runs in the enclosing scope
		condResult := in.Eval(stmt.Condition, env)
		if !condResult.IsNormal() {
			return condResult
		}
		if !condResult.Val.Truthy() {
			break
		}

		child.Clear()
		bodyResult := in.EvalStatements(stmt.Body, child)
		switch bodyResult.Flow {
		case types.FlowNormal, types.FlowContinue:
			// Continue ends the body early; re-evaluate the condition
		case types.FlowBreak:
			return types.OkVoid()
		default:
			// Return or error propagates out of the loop entirely
			return bodyResult
		}
	}
	return types.OkVoid()
}

// evalFor evaluates for loops: for x in (start, end [, step])
// Bounds and step are evaluated once; iteration runs while current < end,
// advancing by step. Each iteration rebinds the loop variable as a fresh
// Const in the reused, cleared child scope
func (in *Interpreter) evalFor(stmt *parser.ForStmt, env *Environment) types.Result {
	start, failed := in.evalLoopBound(stmt.Start, env)
	if failed != nil {
		return *failed
	}
	end, failed := in.evalLoopBound(stmt.End, env)
	if failed != nil {
		return *failed
	}
	step, failed := in.evalLoopBound(stmt.Step, env)
	if failed != nil {
		return *failed
	}
	// A zero or negative step can never reach the end bound
	if step.Sign() <= 0 {
		return types.Err(types.E_RANGE)
	}

	child := NewNestedEnvironment(env)
	for current := start; current.Cmp(end) < 0; current = new(big.Int).Add(current, step) {
		child.Clear()
		child.Define(stmt.Sym, &Binding{Kind: BindConst, Val: types.NewBigInt(current)})

		bodyResult := in.EvalStatements(stmt.Body, child)
		switch bodyResult.Flow {
		case types.FlowNormal, types.FlowContinue:
		case types.FlowBreak:
			return types.OkVoid()
		default:
			return bodyResult
		}
	}
	return types.OkVoid()
}

// evalLoopBound evaluates a loop bound/step expression to an integer
func (in *Interpreter) evalLoopBound(expr parser.Expr, env *Environment) (*big.Int, *types.Result) {
	result := in.Eval(expr, env)
	if !result.IsNormal() {
		return nil, &result
	}
	num, err := types.AsInt(result.Val)
	if err != nil {
		failed := types.Fail(err)
		return nil, &failed
	}
	return num, nil
}

// evalCall dispatches a call expression
// Builtin names always take precedence over user-defined bindings of the
// same name; they cannot be shadowed
func (in *Interpreter) evalCall(node *parser.CallExpr, env *Environment) types.Result {
	if fn, ok := in.builtins[node.Name]; ok {
		return fn(in, node.Args, env)
	}
	return in.callFunction(node, env)
}

// callFunction resolves and invokes a user-defined function
// The call's new scope parents on the caller's current scope, not the scope
// where the function was defined: free variables resolve dynamically at the
// call site. Preserved deliberately; see DESIGN.md
func (in *Interpreter) callFunction(node *parser.CallExpr, env *Environment) types.Result {
	binding, err := env.Lookup(node.Name)
	if err != nil {
		return types.Fail(err)
	}
	if binding.Kind != BindFunc {
		return types.ErrSym(types.E_VOIDVAL, int(node.Name))
	}
	if len(node.Args) != len(binding.Params) {
		return types.ErrSym(types.E_ARGS, int(node.Name))
	}

	// Arguments are evaluated in the caller's scope before the callee scope
	// exists, so parameter names cannot capture argument expressions
	callEnv := NewNestedEnvironment(env)
	for i, argExpr := range node.Args {
		argResult := in.Eval(argExpr, env)
		if !argResult.IsNormal() {
			return argResult
		}
		callEnv.Define(binding.Params[i], &Binding{Kind: BindConst, Val: argResult.Val})
	}

	name := in.symbolName(node.Name)
	trace.Call(name, len(node.Args))

	bodyResult := in.EvalStatements(binding.Body, callEnv)
	switch bodyResult.Flow {
	case types.FlowNormal:
		// Falling off the end of the body yields Void
		trace.Return(name, types.Void)
		return types.OkVoid()
	case types.FlowReturn:
		trace.Return(name, bodyResult.Val)
		return types.Ok(bodyResult.Val)
	case types.FlowError:
		trace.Return(name, nil)
		return bodyResult
	default:
		// break/continue escaping a function body propagates to the call
		// site, where an enclosing loop may still consume it
		trace.Return(name, nil)
		return bodyResult
	}
}
