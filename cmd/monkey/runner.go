package main

import (
	"fmt"

	"monkey/interpreter"
	"monkey/lexer"
	"monkey/parser"
)

// errRun signals a nonzero exit without printing anything further; the
// diagnostics have already been shown.
type errRun struct{}

func (errRun) Error() string { return "run failed" }

// runSource runs a complete program with a fresh root environment, printing
// the final value's display form. Parse errors are reported all at once.
func runSource(src string) error {
	lx := lexer.New(src)
	ps := parser.New(lx)
	program := ps.ParseProgram()

	if errs := ps.Errors(); len(errs) > 0 {
		printParserErrors(errs)
		return errRun{}
	}

	env := interpreter.NewEnvironment()
	evaluated := interpreter.Eval(program, env)
	if evaluated != nil {
		fmt.Println(evaluated.Inspect())
		if evaluated.Type() == interpreter.ERROR_OBJ {
			return errRun{}
		}
	}
	return nil
}

func printParserErrors(errs []string) {
	fmt.Println("parser errors:")
	for _, e := range errs {
		fmt.Println("\t" + e)
	}
}
