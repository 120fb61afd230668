package interpreter

import "fmt"

// Builtins are consulted after an environment lookup misses, so a user
// binding may shadow any of them.
var builtins = map[string]*Builtin{
	"len": {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		switch arg := args[0].(type) {
		case *String:
			return &Integer{Value: int64(len(arg.Value))}
		case *Array:
			return &Integer{Value: int64(len(arg.Elements))}
		default:
			return newError("argument to len not supported, got %s", args[0].Type())
		}
	}},

	"first": {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		arr, ok := args[0].(*Array)
		if !ok {
			return newError("argument to first must be ARRAY, got %s", args[0].Type())
		}
		if len(arr.Elements) > 0 {
			return arr.Elements[0]
		}
		return NULL
	}},

	"last": {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		arr, ok := args[0].(*Array)
		if !ok {
			return newError("argument to last must be ARRAY, got %s", args[0].Type())
		}
		if n := len(arr.Elements); n > 0 {
			return arr.Elements[n-1]
		}
		return NULL
	}},

	"rest": {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		arr, ok := args[0].(*Array)
		if !ok {
			return newError("argument to rest must be ARRAY, got %s", args[0].Type())
		}
		if n := len(arr.Elements); n > 0 {
			rest := make([]Object, n-1)
			copy(rest, arr.Elements[1:n])
			return &Array{Elements: rest}
		}
		return NULL
	}},

	"push": {Fn: func(args ...Object) Object {
		if len(args) != 2 {
			return newError("wrong number of arguments. got=%d, want=2", len(args))
		}
		arr, ok := args[0].(*Array)
		if !ok {
			return newError("argument to push must be ARRAY, got %s", args[0].Type())
		}
		n := len(arr.Elements)
		elems := make([]Object, n+1)
		copy(elems, arr.Elements)
		elems[n] = args[1]
		return &Array{Elements: elems}
	}},

	"puts": {Fn: func(args ...Object) Object {
		for _, arg := range args {
			fmt.Println(arg.Inspect())
		}
		return NULL
	}},
}
