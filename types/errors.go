package types

import "fmt"

// ErrorKind represents a cara runtime error (E_SYMNF, E_DIVZERO, etc.)
type ErrorKind int

const (
	E_NONE      ErrorKind = 0
	E_SYMNF     ErrorKind = 1  // symbol not found anywhere in the scope chain
	E_DUPDEF    ErrorKind = 2  // reserved; redefinition currently shadows silently
	E_BADASSIGN ErrorKind = 3  // assignment to a const or function binding
	E_VOIDVAL   ErrorKind = 4  // non-value binding or non-integer operand used as a value
	E_ARGS      ErrorKind = 5  // builtin/function arity or shape violation
	E_OPERATOR  ErrorKind = 6  // unknown operator; unreachable with a well-formed AST
	E_DIVZERO   ErrorKind = 7  // division by zero
	E_MODZERO   ErrorKind = 8  // modulo by zero
	E_RANGE     ErrorKind = 9  // index, shift width, count, or step out of range
	E_NOPRINT   ErrorKind = 10 // print invoked with no sink installed
)

// String returns the error kind name
func (k ErrorKind) String() string {
	switch k {
	case E_NONE:
		return "E_NONE"
	case E_SYMNF:
		return "E_SYMNF"
	case E_DUPDEF:
		return "E_DUPDEF"
	case E_BADASSIGN:
		return "E_BADASSIGN"
	case E_VOIDVAL:
		return "E_VOIDVAL"
	case E_ARGS:
		return "E_ARGS"
	case E_OPERATOR:
		return "E_OPERATOR"
	case E_DIVZERO:
		return "E_DIVZERO"
	case E_MODZERO:
		return "E_MODZERO"
	case E_RANGE:
		return "E_RANGE"
	case E_NOPRINT:
		return "E_NOPRINT"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error kind
func (k ErrorKind) Message() string {
	switch k {
	case E_NONE:
		return "No error"
	case E_SYMNF:
		return "Symbol not found"
	case E_DUPDEF:
		return "Duplicated definition"
	case E_BADASSIGN:
		return "Assignment to constant"
	case E_VOIDVAL:
		return "Using a void value"
	case E_ARGS:
		return "Argument mismatch"
	case E_OPERATOR:
		return "Unknown operator"
	case E_DIVZERO:
		return "Division by zero"
	case E_MODZERO:
		return "Modulo by zero"
	case E_RANGE:
		return "Range error"
	case E_NOPRINT:
		return "No print sink installed"
	default:
		return "Unknown error"
	}
}

// ErrorFromString converts a name like "E_BADASSIGN" to an ErrorKind
func ErrorFromString(s string) (ErrorKind, bool) {
	switch s {
	case "E_NONE":
		return E_NONE, true
	case "E_SYMNF":
		return E_SYMNF, true
	case "E_DUPDEF":
		return E_DUPDEF, true
	case "E_BADASSIGN":
		return E_BADASSIGN, true
	case "E_VOIDVAL":
		return E_VOIDVAL, true
	case "E_ARGS":
		return E_ARGS, true
	case "E_OPERATOR":
		return E_OPERATOR, true
	case "E_DIVZERO":
		return E_DIVZERO, true
	case "E_MODZERO":
		return E_MODZERO, true
	case "E_RANGE":
		return E_RANGE, true
	case "E_NOPRINT":
		return E_NOPRINT, true
	default:
		return E_NONE, false
	}
}

// Error is a runtime evaluation error
// Sym carries the offending identifier id for symbol-related kinds so the
// caller can resolve it against the program's name table; -1 means no symbol
type Error struct {
	Kind ErrorKind
	Sym  int
}

// NewError creates an Error with no associated symbol
func NewError(kind ErrorKind) *Error {
	return &Error{Kind: kind, Sym: -1}
}

// NewSymError creates an Error tied to an identifier id
func NewSymError(kind ErrorKind, sym int) *Error {
	return &Error{Kind: kind, Sym: sym}
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Kind.Message())
}

// Describe renders the error with the identifier table applied
func (e *Error) Describe(names []string) string {
	if e.Sym >= 0 && e.Sym < len(names) {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Kind.Message(), names[e.Sym])
	}
	return e.Error()
}
