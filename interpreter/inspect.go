package interpreter

import "sort"

// BindingsSnapshot returns a copy of the bindings in this frame only
// (sorted usage is caller-side). Outer frames are not included.
func (e *Environment) BindingsSnapshot() map[string]Object {
	out := make(map[string]Object, len(e.store))
	for k, v := range e.store {
		out[k] = v
	}
	return out
}

// BuiltinNames returns sorted names of built-in functions.
// This is REPL-friendly and avoids exposing the builtin table.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
