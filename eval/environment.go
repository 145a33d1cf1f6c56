package eval

import (
	"cara/parser"
	"cara/types"
)

// BindingKind classifies a name binding
type BindingKind int

const (
	BindConst BindingKind = iota // immutable after creation
	BindVar                      // reassignable
	BindFunc                     // callable, never readable as a value
)

// String returns the binding kind name
func (k BindingKind) String() string {
	switch k {
	case BindConst:
		return "const"
	case BindVar:
		return "var"
	case BindFunc:
		return "fn"
	default:
		return "unknown"
	}
}

// Binding is a named slot in a scope: a constant, variable, or function
// Function bindings reference the shared AST body; it is never copied
type Binding struct {
	Kind   BindingKind
	Val    types.Value     // payload for BindConst/BindVar
	Params []parser.Symbol // BindFunc only
	Body   []parser.Stmt   // BindFunc only
}

// Value returns the binding's payload, failing for function bindings,
// which cannot be read as values
func (b *Binding) Value() (types.Value, *types.Error) {
	if b.Kind == BindFunc {
		return nil, types.NewError(types.E_VOIDVAL)
	}
	return b.Val, nil
}

// Environment manages name bindings with nested scoping
// Resolution starts at the innermost scope and walks parent links to the
// global scope; the first match wins (shadowing)
type Environment struct {
	bindings map[parser.Symbol]*Binding
	parent   *Environment
}

// NewEnvironment creates a new environment with no parent (global scope)
func NewEnvironment() *Environment {
	return &Environment{
		bindings: make(map[parser.Symbol]*Binding),
	}
}

// NewNestedEnvironment creates a new environment with a parent scope
func NewNestedEnvironment(parent *Environment) *Environment {
	return &Environment{
		bindings: make(map[parser.Symbol]*Binding),
		parent:   parent,
	}
}

// Define adds or overwrites a binding in the current scope only
// Redefinition in the same scope silently shadows the old binding
func (e *Environment) Define(sym parser.Symbol, b *Binding) {
	e.bindings[sym] = b
}

// Clear empties the current scope's own bindings without touching ancestors
// The map is reused, not reallocated: loop bodies clear and refill the same
// scope every iteration
func (e *Environment) Clear() {
	clear(e.bindings)
}

// resolve walks from the current scope to the root looking for sym
func (e *Environment) resolve(sym parser.Symbol) *Binding {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.bindings[sym]; ok {
			return b
		}
	}
	return nil
}

// Lookup finds a binding anywhere in the chain
func (e *Environment) Lookup(sym parser.Symbol) (*Binding, *types.Error) {
	b := e.resolve(sym)
	if b == nil {
		return nil, types.NewSymError(types.E_SYMNF, int(sym))
	}
	return b, nil
}

// Value reads sym as a value: E_SYMNF if absent, E_VOIDVAL for functions
func (e *Environment) Value(sym parser.Symbol) (types.Value, *types.Error) {
	b, err := e.Lookup(sym)
	if err != nil {
		return nil, err
	}
	return b.Value()
}

// Assign replaces the payload of the Var binding owning sym, wherever in the
// chain it lives; Const and Function bindings reject assignment
func (e *Environment) Assign(sym parser.Symbol, val types.Value) *types.Error {
	b := e.resolve(sym)
	if b == nil {
		return types.NewSymError(types.E_SYMNF, int(sym))
	}
	if b.Kind != BindVar {
		return types.NewSymError(types.E_BADASSIGN, int(sym))
	}
	b.Val = val
	return nil
}

// list resolves sym to its bound list, walking the chain like Lookup
// This is the only path by which user code mutates aggregate state, so a
// list bound in an outer scope is reachable from any nested block
func (e *Environment) list(sym parser.Symbol) (*types.ListValue, *types.Error) {
	b, err := e.Lookup(sym)
	if err != nil {
		return nil, err
	}
	val, verr := b.Value()
	if verr != nil {
		return nil, verr
	}
	return types.AsList(val)
}

// ListAppend appends a value to the list bound to sym
func (e *Environment) ListAppend(sym parser.Symbol, val types.Value) *types.Error {
	l, err := e.list(sym)
	if err != nil {
		return err
	}
	l.Elems = append(l.Elems, val)
	return nil
}

// ListInsert inserts a value at index, shifting subsequent elements
// index == len appends
func (e *Environment) ListInsert(sym parser.Symbol, index int, val types.Value) *types.Error {
	l, err := e.list(sym)
	if err != nil {
		return err
	}
	if index < 0 || index > len(l.Elems) {
		return types.NewSymError(types.E_RANGE, int(sym))
	}
	l.Elems = append(l.Elems, nil)
	copy(l.Elems[index+1:], l.Elems[index:])
	l.Elems[index] = val
	return nil
}

// ListModify replaces the element at index in place
func (e *Environment) ListModify(sym parser.Symbol, index int, val types.Value) *types.Error {
	l, err := e.list(sym)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(l.Elems) {
		return types.NewSymError(types.E_RANGE, int(sym))
	}
	l.Elems[index] = val
	return nil
}

// ListRemove removes and returns the element at index
func (e *Environment) ListRemove(sym parser.Symbol, index int) (types.Value, *types.Error) {
	l, err := e.list(sym)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(l.Elems) {
		return nil, types.NewSymError(types.E_RANGE, int(sym))
	}
	val := l.Elems[index]
	l.Elems = append(l.Elems[:index], l.Elems[index+1:]...)
	return val, nil
}

// ListLen returns the element count of the list bound to sym
func (e *Environment) ListLen(sym parser.Symbol) (int, *types.Error) {
	l, err := e.list(sym)
	if err != nil {
		return 0, err
	}
	return len(l.Elems), nil
}

// ListItem reads the element at index
func (e *Environment) ListItem(sym parser.Symbol, index int) (types.Value, *types.Error) {
	l, err := e.list(sym)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(l.Elems) {
		return nil, types.NewSymError(types.E_RANGE, int(sym))
	}
	return l.Elems[index], nil
}
