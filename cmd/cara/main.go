package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"cara/eval"
	"cara/parser"
	"cara/trace"
	"cara/types"
)

// Exit codes: 0 success, 1 runtime evaluation error, 2 startup error
// (bad usage, unreadable file, syntax error)
const (
	exitOK      = 0
	exitRuntime = 1
	exitStartup = 2
)

func main() {
	inline := flag.String("e", "", "Evaluate inline source instead of a file")
	dumpAST := flag.Bool("dump-ast", false, "Print the parsed AST and exit")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Enable function-call tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g. 'fib' or 'do_*')")

	flag.Parse()

	source, err := readSource(*inline, flag.Args())
	if err != nil {
		log.SetFlags(0)
		log.Printf("cara: %v", err)
		flag.Usage()
		os.Exit(exitStartup)
	}

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	p := parser.NewParser(source)
	prog, err := p.ParseProgram()
	if err != nil {
		reportError("syntax error", err.Error())
		os.Exit(exitStartup)
	}

	if *dumpAST {
		fmt.Print(parser.Dump(prog))
		os.Exit(exitOK)
	}

	interp := eval.NewInterpreter(prog.Names)
	interp.SetPrinter(func(text string) {
		fmt.Print(text)
	})

	if _, err := interp.Run(prog); err != nil {
		if rtErr, ok := err.(*types.Error); ok {
			reportError("runtime error", rtErr.Describe(prog.Names))
			if rtErr.Kind == types.E_SYMNF {
				dumpNames(prog.Names)
			}
		} else {
			// Control-flow signal escaped the evaluator - an interpreter
			// bug, not a program error
			reportError("internal error", err.Error())
		}
		os.Exit(exitRuntime)
	}
}

// readSource resolves the program text from -e or the positional file path
func readSource(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("expected a source file path (or -e)")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("unable to read source file: %w", err)
	}
	return string(data), nil
}

// reportError prints an error heading (red when stderr is a terminal)
func reportError(heading, detail string) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(color.Error, "%s: ", heading)
	fmt.Fprintln(os.Stderr, detail)
}

// dumpNames prints the identifier table to help diagnose symbol errors
func dumpNames(names []string) {
	fmt.Fprintln(os.Stderr, "identifiers:")
	for id, name := range names {
		fmt.Fprintf(os.Stderr, "  %4d  %s\n", id, name)
	}
}
