package interpreter

import (
	"strings"

	"monkey/lexer"
	"monkey/parser"
)

// Interpret runs a complete program and returns its final value. Parse
// failures come back as an *Error carrying the joined parser messages;
// a program whose last statement produces nothing yields NULL.
func Interpret(source string, env *Environment) Object {
	lx := lexer.New(source)
	p := parser.New(lx)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		return &Error{Message: "parser errors:\n\t" + strings.Join(errs, "\n\t")}
	}

	result := Eval(program, env)
	if result == nil {
		return NULL
	}
	return result
}
