package types

import "testing"

// Test constructors set the flow state they name
func TestResultConstructors(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		flow   ControlFlow
	}{
		{"ok", Ok(NewInt(1)), FlowNormal},
		{"ok void", OkVoid(), FlowNormal},
		{"return", Return(NewInt(2)), FlowReturn},
		{"break", Break(), FlowBreak},
		{"continue", Continue(), FlowContinue},
		{"err", Err(E_DIVZERO), FlowError},
		{"err sym", ErrSym(E_SYMNF, 3), FlowError},
		{"fail", Fail(NewError(E_RANGE)), FlowError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Flow != tt.flow {
				t.Errorf("Flow = %s, want %s", tt.result.Flow, tt.flow)
			}
		})
	}
}

// Test predicates agree with the flow state
func TestResultPredicates(t *testing.T) {
	if r := Ok(NewInt(1)); !r.IsNormal() || r.IsError() || r.IsReturn() {
		t.Error("Ok result misreports its flow")
	}
	if r := Return(Void); !r.IsReturn() || r.IsNormal() {
		t.Error("Return result misreports its flow")
	}
	if r := Break(); !r.IsBreak() || r.IsContinue() {
		t.Error("Break result misreports its flow")
	}
	if r := Continue(); !r.IsContinue() || r.IsBreak() {
		t.Error("Continue result misreports its flow")
	}
	if r := Err(E_ARGS); !r.IsError() || r.Err == nil || r.Err.Kind != E_ARGS {
		t.Error("Err result misreports its error")
	}
}

// Test error results carry the symbol through
func TestResultErrSym(t *testing.T) {
	r := ErrSym(E_SYMNF, 7)
	if r.Err.Sym != 7 {
		t.Errorf("Sym = %d, want 7", r.Err.Sym)
	}
	r = Err(E_DIVZERO)
	if r.Err.Sym != -1 {
		t.Errorf("Sym = %d, want -1 for symbol-free errors", r.Err.Sym)
	}
}

// Test error kind names round-trip through ErrorFromString
func TestErrorKindRoundTrip(t *testing.T) {
	kinds := []ErrorKind{
		E_NONE, E_SYMNF, E_DUPDEF, E_BADASSIGN, E_VOIDVAL, E_ARGS,
		E_OPERATOR, E_DIVZERO, E_MODZERO, E_RANGE, E_NOPRINT,
	}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			got, ok := ErrorFromString(k.String())
			if !ok || got != k {
				t.Errorf("ErrorFromString(%q) = %v, %v", k.String(), got, ok)
			}
		})
	}
	if _, ok := ErrorFromString("E_NOTHING"); ok {
		t.Error("unknown name should not resolve")
	}
}

// Test Describe resolves the identifier when a table is supplied
func TestErrorDescribe(t *testing.T) {
	names := []string{"alpha", "beta"}

	err := NewSymError(E_SYMNF, 1)
	if got := err.Describe(names); got != "E_SYMNF: Symbol not found (beta)" {
		t.Errorf("Describe = %q", got)
	}

	// Out-of-range and symbol-free errors fall back to the plain form
	err = NewSymError(E_SYMNF, 10)
	if got := err.Describe(names); got != "E_SYMNF: Symbol not found" {
		t.Errorf("Describe = %q", got)
	}
	err = NewError(E_DIVZERO)
	if got := err.Describe(names); got != "E_DIVZERO: Division by zero" {
		t.Errorf("Describe = %q", got)
	}
}
