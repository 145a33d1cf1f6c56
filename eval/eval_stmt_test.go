package eval

import (
	"strings"
	"testing"

	"cara/parser"
	"cara/types"
)

// Test declarations, assignment, and block scoping
func TestScoping(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"assignment updates the owning scope",
			"var x = 1; if 1 { x = 5; } print(x);",
			"5\n",
		},
		{
			"inner shadow leaves the outer binding alone",
			"var x = 1; if 1 { var x = 5; print(x); } print(x);",
			"5\n1\n",
		},
		{
			"condition reads the enclosing scope",
			"var n = 3; while n > 0 { n = n - 1; } print(n);",
			"0\n",
		},
		{
			"redeclaration in one scope shadows silently",
			"var x = 1; var x = 2; print(x);",
			"2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := runOutput(t, tt.source); out != tt.want {
				t.Errorf("output %q, want %q", out, tt.want)
			}
		})
	}
}

// Test bindings made inside a block are invisible after it
func TestBlockBindingsDoNotEscape(t *testing.T) {
	err := runError(t, "if 1 { var x = 1; } print(x);")
	if err.Kind != types.E_SYMNF {
		t.Errorf("expected E_SYMNF, got %s", err.Kind)
	}
}

// Test loop-body bindings are dropped between iterations
func TestLoopScopeClearing(t *testing.T) {
	// If y leaked across iterations the second redeclaration would read 1
	out := runOutput(t, `
		var total = 0;
		for i in (0, 3) {
			var y = i;
			total = total + y;
		}
		print(total);
	`)
	if out != "3\n" {
		t.Errorf("output %q, want 3", out)
	}

	err := runError(t, `
		var n = 2;
		while n > 0 {
			var y = 1;
			n = n - 1;
		}
		print(y);
	`)
	if err.Kind != types.E_SYMNF {
		t.Errorf("expected E_SYMNF after loop, got %s", err.Kind)
	}
}

// Test const semantics
func TestConst(t *testing.T) {
	if err := runError(t, "const c = 1; c = 2;"); err.Kind != types.E_BADASSIGN {
		t.Errorf("assign to const: expected E_BADASSIGN, got %s", err.Kind)
	}
	// The loop variable is a constant
	if err := runError(t, "for i in (0, 3) { i = 5; }"); err.Kind != types.E_BADASSIGN {
		t.Errorf("assign to loop var: expected E_BADASSIGN, got %s", err.Kind)
	}
}

// Test if/else branch selection follows truthiness
func TestIfElse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"true branch", "if 1 { print(1); } else { print(2); }", "1\n"},
		{"false branch on zero", "if 0 { print(1); } else { print(2); }", "2\n"},
		{"false branch on negative", "if 0 - 5 { print(1); } else { print(2); }", "2\n"},
		{"no else, false condition", "if 0 { print(1); } print(3);", "3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := runOutput(t, tt.source); out != tt.want {
				t.Errorf("output %q, want %q", out, tt.want)
			}
		})
	}
}

// Test for-loop iteration: end-exclusive with optional step
func TestForLoop(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"end exclusive", "for i in (0, 3) { print(i); }", "0\n1\n2\n"},
		{"explicit step", "for i in (0, 10, 4) { print(i); }", "0\n4\n8\n"},
		{"empty range", "for i in (3, 3) { print(i); } print(9);", "9\n"},
		{"start past end", "for i in (5, 3) { print(i); } print(9);", "9\n"},
		{"bounds evaluated once", "var n = 2; for i in (0, n) { n = 100; print(i); }", "0\n1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := runOutput(t, tt.source); out != tt.want {
				t.Errorf("output %q, want %q", out, tt.want)
			}
		})
	}

	if err := runError(t, "for i in (0, 3, 0) { print(i); }"); err.Kind != types.E_RANGE {
		t.Errorf("zero step: expected E_RANGE, got %s", err.Kind)
	}
	if err := runError(t, "for i in (0, 3, 0 - 1) { print(i); }"); err.Kind != types.E_RANGE {
		t.Errorf("negative step: expected E_RANGE, got %s", err.Kind)
	}
}

// Test break and continue bind to the innermost loop
func TestBreakContinue(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"break in while",
			"var n = 0; while 1 { n = n + 1; if n == 3 { break } } print(n);",
			"3\n",
		},
		{
			"continue in for",
			"for i in (0, 5) { if i % 2 == 0 { continue } print(i); }",
			"1\n3\n",
		},
		{
			"break leaves only the inner loop",
			"for i in (0, 2) { for j in (0, 5) { if j == 1 { break } print(i, j); } }",
			"0 0\n1 0\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := runOutput(t, tt.source); out != tt.want {
				t.Errorf("output %q, want %q", out, tt.want)
			}
		})
	}
}

// Test break outside any loop is an interpreter-level failure, not a
// user-facing runtime error
func TestStrayBreak(t *testing.T) {
	_, err := runSource(t, "break")
	if err == nil {
		t.Fatal("expected an error for top-level break")
	}
	if _, ok := err.(*types.Error); ok {
		t.Errorf("stray break must not surface as a runtime error: %v", err)
	}
}

// Test user function calls
func TestFunctionCalls(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"return value",
			"fn double(x) { return x * 2; } print(double(21));",
			"42\n",
		},
		{
			"void fall-off",
			"fn shout() { print(7); } shout();",
			"7\n",
		},
		{
			"recursion",
			"fn fact(n) { if n <= 1 { return 1; } return n * fact(n - 1); } print(fact(5));",
			"120\n",
		},
		{
			"arguments evaluated in the caller scope",
			"var x = 10; fn f(a, b) { return a + b; } print(f(x, x + 1));",
			"21\n",
		},
		{
			"call before definition fails at call time only",
			"fn f() { return g(); } fn g() { return 4; } print(f());",
			"4\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := runOutput(t, tt.source); out != tt.want {
				t.Errorf("output %q, want %q", out, tt.want)
			}
		})
	}
}

// Test function call failure modes
func TestFunctionCallErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   types.ErrorKind
	}{
		{"unknown function", "nope();", types.E_SYMNF},
		{"arity mismatch", "fn f(a) { return a; } f(1, 2);", types.E_ARGS},
		{"variable called", "var v = 1; v();", types.E_VOIDVAL},
		{"function read as value", "fn f() { return 1; } var x = f;", types.E_VOIDVAL},
		{"parameter reassignment", "fn f(a) { a = 2; } f(1);", types.E_BADASSIGN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runError(t, tt.source)
			if err.Kind != tt.kind {
				t.Errorf("expected %s, got %s", tt.kind, err.Kind)
			}
		})
	}
}

// Test free variables resolve against the caller's scope at call time
func TestCallSiteResolution(t *testing.T) {
	out := runOutput(t, `
		fn show() { print(x); }
		fn caller() {
			var x = 2;
			show();
		}
		var x = 1;
		show();
		caller();
	`)
	if out != "1\n2\n" {
		t.Errorf("output %q, want call-site resolution (1 then 2)", out)
	}
}

// Test builtin behavior and precedence
func TestBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"print joins with spaces", "print(1, 2, 3);", "1 2 3\n"},
		{"print empty line", "print();", "\n"},
		{"print list", "var l = [1, [2, 3]]; print(l);", "[1, [2, 3]]\n"},
		{"append mutates in place", "var l = []; append(l, 1); append(l, 2); print(l);", "[1, 2]\n"},
		{"insert at front", "var l = [2]; insert(l, 0, 1); print(l);", "[1, 2]\n"},
		{"insert at end", "var l = [1]; insert(l, 1, 2); print(l);", "[1, 2]\n"},
		{"remove returns the element", "var l = [7, 8]; print(remove(l, 1)); print(l);", "8\n[7]\n"},
		{"len", "var l = [0; 6]; print(len(l));", "6\n"},
		{"builtin wins over user fn", "fn len(x) { return 99; } var l = [1]; print(len(l));", "1\n"},
		{"list reachable from nested scope", "var l = []; if 1 { append(l, 5); } print(l);", "[5]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := runOutput(t, tt.source); out != tt.want {
				t.Errorf("output %q, want %q", out, tt.want)
			}
		})
	}
}

// Test builtin argument-shape failures
func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   types.ErrorKind
	}{
		{"append arity", "var l = []; append(l);", types.E_ARGS},
		{"append to expression", "append([1], 2);", types.E_ARGS},
		{"insert arity", "var l = []; insert(l, 0);", types.E_ARGS},
		{"len arity", "var l = []; print(len());", types.E_ARGS},
		{"remove arity", "var l = [1]; remove(l);", types.E_ARGS},
		{"len of int", "var n = 1; print(len(n));", types.E_VOIDVAL},
		{"remove out of range", "var l = []; remove(l, 0);", types.E_RANGE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runError(t, tt.source)
			if err.Kind != tt.kind {
				t.Errorf("expected %s, got %s", tt.kind, err.Kind)
			}
		})
	}
}

// Test printing without an installed sink fails with its own kind
func TestPrintWithoutSink(t *testing.T) {
	prog, err := parser.NewParser("print(1);").ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	in := NewInterpreter(prog.Names)
	_, runErr := in.Run(prog)
	rerr, ok := runErr.(*types.Error)
	if !ok || rerr.Kind != types.E_NOPRINT {
		t.Errorf("expected E_NOPRINT, got %v", runErr)
	}
}

// Test lists keep reference semantics through declarations and calls
func TestListAliasing(t *testing.T) {
	out := runOutput(t, `
		var a = [1];
		var b = a;
		append(b, 2);
		print(a);
		fn grow(l) {
			append(l, 3);
		}
		grow(a);
		print(b);
	`)
	want := "[1, 2]\n[1, 2, 3]\n"
	if out != want {
		t.Errorf("output %q, want %q", out, want)
	}
}

// Test a larger program end to end: classic sieve
func TestSieveProgram(t *testing.T) {
	out := runOutput(t, `
		const limit = 30;
		var sieve = [1; limit];
		sieve[0] = 0;
		sieve[1] = 0;
		for i in (2, limit) {
			if sieve[i] {
				var j = i * i;
				while j < limit {
					sieve[j] = 0;
					j = j + i;
				}
			}
		}
		var primes = [];
		for i in (0, limit) {
			if sieve[i] {
				append(primes, i);
			}
		}
		print(primes);
	`)
	want := "[2, 3, 5, 7, 11, 13, 17, 19, 23, 29]\n"
	if out != want {
		t.Errorf("output %q, want %q", out, want)
	}
}

// Test return signals cross loop boundaries inside a function body
func TestReturnFromLoop(t *testing.T) {
	out := runOutput(t, `
		fn find(target) {
			for i in (0, 100) {
				if i == target {
					return i * 10;
				}
			}
			return 0 - 1;
		}
		print(find(7), find(200));
	`)
	if out != "70 -1\n" {
		t.Errorf("output %q", out)
	}
}

// Test program-level helpers used by the command front end
func TestRunReturnsVoidAtTopLevel(t *testing.T) {
	prog, err := parser.NewParser("var x = 1;").ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	in := NewInterpreter(prog.Names)
	val, runErr := in.Run(prog)
	if runErr != nil {
		t.Fatalf("run error: %v", runErr)
	}
	if !strings.Contains(val.String(), "void") {
		t.Errorf("top-level result = %s, want void", val)
	}
}
