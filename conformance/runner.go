package conformance

import (
	"fmt"
	"strings"

	"cara/eval"
	"cara/parser"
	"cara/types"
)

// RunResult is the observed outcome of executing a test program
type RunResult struct {
	Output string       // captured print output
	Err    *types.Error // runtime error, nil on success
	Names  []string     // identifier table, for diagnostics
}

// Run parses and evaluates a cara program with a captured print sink
// Parse errors and internal faults come back as the error return; runtime
// evaluation errors land in RunResult.Err
func Run(source string) (*RunResult, error) {
	p := parser.NewParser(source)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	interp := eval.NewInterpreter(prog.Names)
	interp.SetPrinter(func(text string) {
		out.WriteString(text)
	})

	_, runErr := interp.Run(prog)
	result := &RunResult{Output: out.String(), Names: prog.Names}
	if runErr != nil {
		rtErr, ok := runErr.(*types.Error)
		if !ok {
			// Control-flow signal escaped - interpreter bug, not a test
			// outcome
			return nil, runErr
		}
		result.Err = rtErr
	}
	return result, nil
}

// Check compares an observed result against a test case expectation
func Check(tc TestCase, result *RunResult) error {
	if tc.Error != "" {
		kind, ok := types.ErrorFromString(tc.Error)
		if !ok {
			return fmt.Errorf("unknown expected error kind %q", tc.Error)
		}
		if result.Err == nil {
			return fmt.Errorf("expected error %s, program succeeded with output %q", kind, result.Output)
		}
		if result.Err.Kind != kind {
			return fmt.Errorf("expected error %s, got %s", kind, result.Err.Describe(result.Names))
		}
		return nil
	}
	if result.Err != nil {
		return fmt.Errorf("unexpected error: %s", result.Err.Describe(result.Names))
	}
	if result.Output != tc.Output {
		return fmt.Errorf("output mismatch:\nwant: %q\ngot:  %q", tc.Output, result.Output)
	}
	return nil
}
