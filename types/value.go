package types

import (
	"math/big"
	"strings"
)

// TypeCode identifies the runtime type of a Value
type TypeCode int

const (
	TYPE_INT TypeCode = iota
	TYPE_LIST
	TYPE_VOID
)

// String returns the type name
func (t TypeCode) String() string {
	switch t {
	case TYPE_INT:
		return "int"
	case TYPE_LIST:
		return "list"
	case TYPE_VOID:
		return "void"
	default:
		return "unknown"
	}
}

// Value is the interface all cara runtime values implement
type Value interface {
	Type() TypeCode
	String() string   // printable representation (used by the print builtin)
	Truthy() bool     // cara truthiness: only integers > 0 are truthy
	Equal(Value) bool // deep equality
}

// IntValue represents a cara integer (arbitrary precision)
type IntValue struct {
	Val *big.Int
}

// NewInt creates an IntValue from an int64 (convenience for tests and defaults)
func NewInt(val int64) IntValue {
	return IntValue{Val: big.NewInt(val)}
}

// NewBigInt wraps an existing big integer
func NewBigInt(val *big.Int) IntValue {
	return IntValue{Val: val}
}

// Type returns the type code for integers
func (i IntValue) Type() TypeCode {
	return TYPE_INT
}

// String returns the decimal representation
func (i IntValue) String() string {
	return i.Val.String()
}

// Truthy returns whether the integer counts as true
// Only values strictly greater than zero are truthy
func (i IntValue) Truthy() bool {
	return i.Val.Sign() > 0
}

// Equal checks deep equality
func (i IntValue) Equal(other Value) bool {
	o, ok := other.(IntValue)
	if !ok {
		return false
	}
	return i.Val.Cmp(o.Val) == 0
}

// ListValue represents a cara list
// Lists are reference-like: every alias shares the same element storage, so
// mutation through one binding is visible through all of them. Always handle
// lists as *ListValue
type ListValue struct {
	Elems []Value
}

// NewList creates a list value holding the given elements
func NewList(elems []Value) *ListValue {
	return &ListValue{Elems: elems}
}

// Type returns the type code for lists
func (l *ListValue) Type() TypeCode {
	return TYPE_LIST
}

// String returns the printable representation: [1, 2, 3]
func (l *ListValue) String() string {
	parts := make([]string, len(l.Elems))
	for i, elem := range l.Elems {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Truthy: lists are never truthy as conditions; only integers are
func (l *ListValue) Truthy() bool {
	return false
}

// Equal checks deep element-wise equality
func (l *ListValue) Equal(other Value) bool {
	o, ok := other.(*ListValue)
	if !ok {
		return false
	}
	if len(l.Elems) != len(o.Elems) {
		return false
	}
	for i, elem := range l.Elems {
		if !elem.Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Len returns the element count
func (l *ListValue) Len() int {
	return len(l.Elems)
}

// VoidValue is the result of statements that produce no usable value
type VoidValue struct{}

// Void is the canonical void instance
var Void = VoidValue{}

// Type returns the type code for void
func (v VoidValue) Type() TypeCode {
	return TYPE_VOID
}

// String returns the printable representation
func (v VoidValue) String() string {
	return "void"
}

// Truthy: void is never truthy
func (v VoidValue) Truthy() bool {
	return false
}

// Equal: all voids are equal
func (v VoidValue) Equal(other Value) bool {
	_, ok := other.(VoidValue)
	return ok
}

// Clone deep-copies a value
// Integers and void are immutable and returned as-is; lists copy their
// element storage recursively
func Clone(v Value) Value {
	l, ok := v.(*ListValue)
	if !ok {
		return v
	}
	elems := make([]Value, len(l.Elems))
	for i, elem := range l.Elems {
		elems[i] = Clone(elem)
	}
	return NewList(elems)
}

// AsInt extracts the big integer from a value, failing with E_VOIDVAL for
// anything that is not an integer (matches operator operand rules)
func AsInt(v Value) (*big.Int, *Error) {
	i, ok := v.(IntValue)
	if !ok {
		return nil, NewError(E_VOIDVAL)
	}
	return i.Val, nil
}

// AsList extracts the list from a value, failing with E_VOIDVAL otherwise
func AsList(v Value) (*ListValue, *Error) {
	l, ok := v.(*ListValue)
	if !ok {
		return nil, NewError(E_VOIDVAL)
	}
	return l, nil
}
