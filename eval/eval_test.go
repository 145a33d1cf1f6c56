package eval

import (
	"strings"
	"testing"

	"cara/parser"
	"cara/types"
)

// runSource parses and evaluates a program, capturing print output
func runSource(t *testing.T, source string) (string, error) {
	t.Helper()
	prog, err := parser.NewParser(source).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out strings.Builder
	in := NewInterpreter(prog.Names)
	in.SetPrinter(func(text string) { out.WriteString(text) })
	_, runErr := in.Run(prog)
	return out.String(), runErr
}

// runOutput evaluates a program that must succeed and returns its output
func runOutput(t *testing.T, source string) string {
	t.Helper()
	out, err := runSource(t, source)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	return out
}

// runError evaluates a program that must fail and returns the runtime error
func runError(t *testing.T, source string) *types.Error {
	t.Helper()
	_, err := runSource(t, source)
	if err == nil {
		t.Fatal("expected a runtime error, got none")
	}
	rerr, ok := err.(*types.Error)
	if !ok {
		t.Fatalf("expected a runtime error, got %T: %v", err, err)
	}
	return rerr
}

// evalExpr evaluates a single expression and returns its value
func evalExpr(t *testing.T, expr string) types.Value {
	t.Helper()
	source := "var evaluated = " + expr + ";"
	prog, err := parser.NewParser(source).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	in := NewInterpreter(prog.Names)
	if _, err := in.Run(prog); err != nil {
		t.Fatalf("run error: %v", err)
	}
	for id, name := range prog.Names {
		if name == "evaluated" {
			val, verr := in.GlobalEnv().Value(parser.Symbol(id))
			if verr != nil {
				t.Fatalf("result lookup failed: %v", verr)
			}
			return val
		}
	}
	t.Fatal("result symbol not interned")
	return nil
}

// Test integer arithmetic, comparison, and logical operators
func TestArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1 + 2", "3"},
		{"10 - 3", "7"},
		{"4 * 5", "20"},
		{"7 / 2", "3"},
		{"7 % 2", "1"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"-5", "-5"},
		{"+5", "5"},
		{"--5", "5"},
		{"1 << 10", "1024"},
		{"1024 >> 3", "128"},
		{"3 < 5", "1"},
		{"5 < 3", "0"},
		{"5 <= 5", "1"},
		{"5 == 5", "1"},
		{"5 != 5", "0"},
		{"7 > 2", "1"},
		{"7 >= 8", "0"},
		{"1 && 1", "1"},
		{"1 && 0", "0"},
		{"0 || 1", "1"},
		{"0 || 0", "0"},
		// Negative operands are falsy, like zero
		{"0 - 1 || 0", "0"},
		{"0 - 1 && 1", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			val := evalExpr(t, tt.expr)
			if val.String() != tt.want {
				t.Errorf("%s = %s, want %s", tt.expr, val, tt.want)
			}
		})
	}
}

// Test division and modulo truncate toward zero with sign-following remainder
func TestDivisionTruncation(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"(0 - 7) / 2", "-3"},
		{"(0 - 7) % 2", "-1"},
		{"7 / (0 - 2)", "-3"},
		{"7 % (0 - 2)", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			val := evalExpr(t, tt.expr)
			if val.String() != tt.want {
				t.Errorf("%s = %s, want %s", tt.expr, val, tt.want)
			}
		})
	}
}

// Test results stay exact past the 64-bit boundary
func TestBigArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1 << 100", "1267650600228229401496703205376"},
		{"9223372036854775807 + 1", "9223372036854775808"},
		{"123456789012345678901234567890 * 10", "1234567890123456789012345678900"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			val := evalExpr(t, tt.expr)
			if val.String() != tt.want {
				t.Errorf("%s = %s, want %s", tt.expr, val, tt.want)
			}
		})
	}
}

// Test list literals and index reads
func TestListExpressions(t *testing.T) {
	val := evalExpr(t, "[1, 2, 3]")
	list, ok := val.(*types.ListValue)
	if !ok {
		t.Fatalf("expected list, got %T", val)
	}
	if list.Len() != 3 {
		t.Errorf("expected 3 elements, got %d", list.Len())
	}

	val = evalExpr(t, "[2 + 3; 4]")
	list = val.(*types.ListValue)
	if list.String() != "[5, 5, 5, 5]" {
		t.Errorf("template list = %s", list)
	}

	if out := runOutput(t, "var l = [10, 20, 30]; print(l[2]);"); out != "30\n" {
		t.Errorf("index read printed %q", out)
	}
}

// Test template list rows are independent copies
func TestTemplateListNoAliasing(t *testing.T) {
	out := runOutput(t, `
		var grid = [[0; 3]; 2];
		var row = grid[0];
		append(row, 9);
		print(grid[1]);
	`)
	if out != "[0, 0, 0]\n" {
		t.Errorf("template rows alias each other: %q", out)
	}
}

// Test expression-level runtime errors
func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   types.ErrorKind
	}{
		{"division by zero", "var x = 1 / 0;", types.E_DIVZERO},
		{"modulo by zero", "var x = 1 % 0;", types.E_MODZERO},
		{"undefined variable", "var x = missing;", types.E_SYMNF},
		{"negative shift", "var x = 1 << (0 - 1);", types.E_RANGE},
		{"oversized shift", "var x = 1 << (1 << 70);", types.E_RANGE},
		{"negative index", "var l = [1]; var x = l[0 - 1];", types.E_RANGE},
		{"index past end", "var l = [1]; var x = l[1];", types.E_RANGE},
		{"negative template count", "var l = [0; 0 - 1];", types.E_RANGE},
		{"list operand", "var l = [1]; var x = l + 1;", types.E_VOIDVAL},
		{"unary on list", "var l = [1]; var x = -l;", types.E_VOIDVAL},
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

// Test E_SYMNF carries the offending identifier
func TestUndefinedSymbolName(t *testing.T) {
	source := "var x = missing_thing;"
	prog, err := parser.NewParser(source).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	in := NewInterpreter(prog.Names)
	_, runErr := in.Run(prog)
	rerr, ok := runErr.(*types.Error)
	if !ok {
		t.Fatalf("expected runtime error, got %v", runErr)
	}
	if got := rerr.Describe(prog.Names); !strings.Contains(got, "missing_thing") {
		t.Errorf("Describe = %q, want the identifier named", got)
	}
}
