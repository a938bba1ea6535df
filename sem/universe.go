package sem

import "pycheck/typing"

// SeedBuiltins binds the built-in symbols into the root scope of a table.
// Built-ins share the root scope with user module-level bindings rather than
// living in a separate outer scope, so user code may rebind them; the engine
// warns about that when configured to.
func SeedBuiltins(t *Table) {
	// A few well-known callables, typed loosely with Any.
	builtinFuncs := map[string]*typing.FuncType{
		"print": {ParamTypes: []typing.DataType{typing.Any}, ReturnType: typing.PrimType(typing.PrimNone)},
		"len":   {ParamTypes: []typing.DataType{typing.Any}, ReturnType: typing.PrimType(typing.PrimInteger)},
		"input": {ParamTypes: []typing.DataType{typing.Any}, ReturnType: typing.PrimType(typing.PrimString)},
	}

	for name, ft := range builtinFuncs {
		t.Define(&Symbol{
			Name:    name,
			DefKind: DKFunction,
			Type:    ft,
			Builtin: true,
		})
	}

	// The primitive type names are bound to themselves so that a bare
	// reference like `int` resolves.
	for _, name := range []string{"int", "str", "bool", "float", "None", "Any"} {
		dt, _ := typing.ResolveAnnotation(name)

		t.Define(&Symbol{
			Name:    name,
			DefKind: DKVariable,
			Type:    dt,
			Builtin: true,
		})
	}
}
