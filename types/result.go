package types

// ControlFlow represents the control flow state of evaluation
type ControlFlow int

const (
	FlowNormal   ControlFlow = iota // Normal execution
	FlowReturn                      // Return statement
	FlowBreak                       // Break statement
	FlowContinue                    // Continue statement
	FlowError                       // Runtime error being raised
)

// String returns a readable name for a flow state
func (f ControlFlow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowReturn:
		return "return"
	case FlowBreak:
		return "break"
	case FlowContinue:
		return "continue"
	case FlowError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of evaluating an expression or statement
// This unifies normal values, control flow (return/break/continue), and
// errors so every enclosing construct handles exactly the transfers it
// understands and propagates the rest
type Result struct {
	Val  Value       // The value (when Flow is FlowNormal or FlowReturn)
	Flow ControlFlow // Control flow state
	Err  *Error      // Only set when Flow == FlowError
}

// Ok creates a Result for normal execution with a value
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// OkVoid creates a Result for normal statement completion
func OkVoid() Result {
	return Result{Val: Void, Flow: FlowNormal}
}

// Return creates a Result for a return statement
func Return(v Value) Result {
	return Result{Val: v, Flow: FlowReturn}
}

// Break creates a Result for a break statement
func Break() Result {
	return Result{Flow: FlowBreak}
}

// Continue creates a Result for a continue statement
func Continue() Result {
	return Result{Flow: FlowContinue}
}

// Err creates a Result for a runtime error
func Err(kind ErrorKind) Result {
	return Result{Flow: FlowError, Err: NewError(kind)}
}

// ErrSym creates a Result for a runtime error tied to an identifier id
func ErrSym(kind ErrorKind, sym int) Result {
	return Result{Flow: FlowError, Err: NewSymError(kind, sym)}
}

// Fail wraps an existing Error in a Result
func Fail(err *Error) Result {
	return Result{Flow: FlowError, Err: err}
}

// IsNormal returns true if this is normal execution
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsError returns true if this is a runtime error
func (r Result) IsError() bool {
	return r.Flow == FlowError
}

// IsReturn returns true if this is a return signal
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}

// IsBreak returns true if this is a break signal
func (r Result) IsBreak() bool {
	return r.Flow == FlowBreak
}

// IsContinue returns true if this is a continue signal
func (r Result) IsContinue() bool {
	return r.Flow == FlowContinue
}
