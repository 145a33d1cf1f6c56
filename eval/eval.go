package eval

import (
	"fmt"

	"cara/parser"
	"cara/types"
)

// PrintSink receives formatted output from the print builtin
// The sink is injected at construction time so multiple interpreters can
// coexist and tests can capture output deterministically
type PrintSink func(text string)

// Interpreter walks the AST and evaluates expressions/statements
type Interpreter struct {
	global   *Environment
	names    []string
	builtins map[parser.Symbol]builtinFunc
	printer  PrintSink
}

// NewInterpreter creates an interpreter bound to an identifier table
// The table comes from the front end (Program.Names) and is used for builtin
// name resolution and diagnostics
func NewInterpreter(names []string) *Interpreter {
	in := &Interpreter{
		global: NewEnvironment(),
		names:  names,
	}
	in.builtins = resolveBuiltins(names)
	return in
}

// SetPrinter installs the output sink used by the print builtin
// Running a program that prints without a sink fails with E_NOPRINT
func (in *Interpreter) SetPrinter(sink PrintSink) {
	in.printer = sink
}

// Names returns the identifier table for diagnostics
func (in *Interpreter) Names() []string {
	return in.names
}

// GlobalEnv returns the interpreter's global scope (for testing)
func (in *Interpreter) GlobalEnv() *Environment {
	return in.global
}

// symbolName resolves an interned id back to its source spelling
func (in *Interpreter) symbolName(sym parser.Symbol) string {
	if int(sym) < len(in.names) {
		return in.names[sym]
	}
	return fmt.Sprintf("sym#%d", sym)
}

// Run evaluates a whole program in the interpreter's global scope
// The top-level result is normally Void. A break/continue/return signal
// reaching here means a loop or call handler failed to consume it; that is
// an interpreter bug, reported distinctly from user-facing runtime errors
func (in *Interpreter) Run(prog *parser.Program) (types.Value, error) {
	result := in.EvalStatements(prog.Stmts, in.global)
	switch result.Flow {
	case types.FlowNormal:
		return result.Val, nil
	case types.FlowError:
		return nil, result.Err
	default:
		return nil, fmt.Errorf("internal: %s signal escaped to top level", result.Flow)
	}
}

// Eval evaluates an expression node in the given scope
// Every sub-evaluation is a plain recursive call; recursion depth is bounded
// only by the host stack (known resource limit, see DESIGN.md)
func (in *Interpreter) Eval(node parser.Expr, env *Environment) types.Result {
	switch n := node.(type) {
	case *parser.NumberExpr:
		return types.Ok(types.NewBigInt(n.Val))
	case *parser.VarRefExpr:
		return in.evalVarRef(n, env)
	case *parser.UnaryExpr:
		return in.evalUnary(n, env)
	case *parser.BinaryExpr:
		return in.evalBinary(n, env)
	case *parser.CallExpr:
		return in.evalCall(n, env)
	case *parser.IndexExpr:
		return in.evalIndex(n, env)
	case *parser.ListExpr:
		return in.evalList(n, env)
	case *parser.TemplateListExpr:
		return in.evalTemplateList(n, env)
	default:
		// Unknown node type - unreachable if the parser is correct
		return types.Err(types.E_OPERATOR)
	}
}

// evalVarRef reads a variable or constant from the scope chain
func (in *Interpreter) evalVarRef(node *parser.VarRefExpr, env *Environment) types.Result {
	val, err := env.Value(node.Sym)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(val)
}

// evalUnary evaluates -x and +x; the operand must be an integer
func (in *Interpreter) evalUnary(node *parser.UnaryExpr, env *Environment) types.Result {
	result := in.Eval(node.Operand, env)
	if !result.IsNormal() {
		return result
	}
	val, err := types.AsInt(result.Val)
	if err != nil {
		return types.Fail(err)
	}
	switch node.Operator {
	case parser.TOKEN_MINUS:
		return types.Ok(types.NewBigInt(negInt(val)))
	case parser.TOKEN_PLUS:
		return types.Ok(types.NewBigInt(val))
	default:
		return types.Err(types.E_OPERATOR)
	}
}

// evalBinary evaluates both operands to integers and applies the operator
// Arithmetic is arbitrary precision; comparisons and logical operators
// produce integer 0 or 1
func (in *Interpreter) evalBinary(node *parser.BinaryExpr, env *Environment) types.Result {
	leftResult := in.Eval(node.Left, env)
	if !leftResult.IsNormal() {
		return leftResult
	}
	rightResult := in.Eval(node.Right, env)
	if !rightResult.IsNormal() {
		return rightResult
	}

	left, err := types.AsInt(leftResult.Val)
	if err != nil {
		return types.Fail(err)
	}
	right, err := types.AsInt(rightResult.Val)
	if err != nil {
		return types.Fail(err)
	}

	return applyBinaryOp(node.Operator, left, right)
}

// evalIndex reads an element from the named list variable
func (in *Interpreter) evalIndex(node *parser.IndexExpr, env *Environment) types.Result {
	index, result := in.evalIndexValue(node.Index, env)
	if result != nil {
		return *result
	}
	val, err := env.ListItem(node.Name, index)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(val)
}

// evalIndexValue evaluates an expression to a host-size index
// Values that are negative or do not fit fail with E_RANGE
func (in *Interpreter) evalIndexValue(expr parser.Expr, env *Environment) (int, *types.Result) {
	result := in.Eval(expr, env)
	if !result.IsNormal() {
		return 0, &result
	}
	num, err := types.AsInt(result.Val)
	if err != nil {
		failed := types.Fail(err)
		return 0, &failed
	}
	if num.Sign() < 0 || !num.IsInt64() || num.Int64() > int64(maxInt) {
		failed := types.Err(types.E_RANGE)
		return 0, &failed
	}
	return int(num.Int64()), nil
}

// evalList evaluates each element expression in order into a fresh list
func (in *Interpreter) evalList(node *parser.ListExpr, env *Environment) types.Result {
	elems := make([]types.Value, 0, len(node.Elems))
	for _, elemExpr := range node.Elems {
		result := in.Eval(elemExpr, env)
		if !result.IsNormal() {
			return result
		}
		elems = append(elems, result.Val)
	}
	return types.Ok(types.NewList(elems))
}

// evalTemplateList evaluates [value; count]: the template once, the count
// once, then repeats the value count times
func (in *Interpreter) evalTemplateList(node *parser.TemplateListExpr, env *Environment) types.Result {
	tmplResult := in.Eval(node.Template, env)
	if !tmplResult.IsNormal() {
		return tmplResult
	}
	count, failed := in.evalIndexValue(node.Count, env)
	if failed != nil {
		return *failed
	}
	// Each element gets its own copy; repeating a list must not alias rows
	elems := make([]types.Value, count)
	for i := range elems {
		elems[i] = types.Clone(tmplResult.Val)
	}
	return types.Ok(types.NewList(elems))
}

const maxInt = int(^uint(0) >> 1)
