package sem

import (
	"testing"

	"pycheck/typing"
)

func TestScopeDiscipline(t *testing.T) {
	table := NewTable()

	if table.Current() != table.Root() {
		t.Fatal("a new table's cursor should start on the root scope")
	}

	outer := table.EnterScope(FunctionScope)
	if table.Current() != outer {
		t.Fatal("EnterScope should move the cursor into the new scope")
	}

	table.EnterScope(FunctionScope)
	table.ExitScope()
	if table.Current() != outer {
		t.Fatal("a balanced enter/exit pair should restore the prior scope")
	}

	table.ExitScope()
	if table.Current() != table.Root() {
		t.Fatal("exiting the outer scope should restore the root")
	}

	// An unmatched exit on the root is a no-op, never a fault.
	table.ExitScope()
	if table.Current() != table.Root() {
		t.Fatal("exiting the root scope should be a no-op")
	}
}

func TestScopeTreeShape(t *testing.T) {
	table := NewTable()

	a := table.EnterScope(FunctionScope)
	table.ExitScope()
	b := table.EnterScope(FunctionScope)
	table.ExitScope()

	if a.Parent() != table.Root() || b.Parent() != table.Root() {
		t.Fatal("sibling scopes should share the root as their parent")
	}

	children := table.Root().Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Fatal("the root should record both children in order")
	}
}

func TestLookupWalksAncestors(t *testing.T) {
	table := NewTable()
	table.Define(&Symbol{Name: "x", DefKind: DKVariable, Type: typing.PrimType(typing.PrimInteger)})

	table.EnterScope(FunctionScope)
	table.EnterScope(FunctionScope)

	sym, ok := table.Lookup("x")
	if !ok {
		t.Fatal("a name bound in an ancestor should be visible from a descendant")
	}

	if !typing.Equals(sym.Type, typing.PrimType(typing.PrimInteger)) {
		t.Fatalf("lookup resolved the wrong symbol: %s", sym)
	}
}

func TestLookupNeverCrossesSiblings(t *testing.T) {
	table := NewTable()

	table.EnterScope(FunctionScope)
	table.Define(&Symbol{Name: "y", DefKind: DKVariable})
	table.ExitScope()

	table.EnterScope(FunctionScope)
	if _, ok := table.Lookup("y"); ok {
		t.Fatal("a name bound in a sibling scope must never be visible")
	}
}

func TestLookupNeverDescendsIntoChildren(t *testing.T) {
	table := NewTable()

	table.EnterScope(FunctionScope)
	table.Define(&Symbol{Name: "local", DefKind: DKParameter})
	table.ExitScope()

	if _, ok := table.Lookup("local"); ok {
		t.Fatal("a name bound in a child scope must never be visible from its parent")
	}
}

func TestRebindingReplacesInSameScope(t *testing.T) {
	table := NewTable()

	first := &Symbol{Name: "x", DefKind: DKVariable, Type: typing.PrimType(typing.PrimInteger)}
	second := &Symbol{Name: "x", DefKind: DKVariable, Type: typing.PrimType(typing.PrimString)}

	if prev := table.Define(first); prev != nil {
		t.Fatal("the first binding of a name should replace nothing")
	}

	if prev := table.Define(second); prev != first {
		t.Fatal("rebinding a name should return the replaced symbol")
	}

	sym, _ := table.Lookup("x")
	if sym != second {
		t.Fatal("the last binding of a name should win")
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	table := NewTable()
	table.Define(&Symbol{Name: "x", Type: typing.PrimType(typing.PrimInteger)})

	table.EnterScope(FunctionScope)
	if prev := table.Define(&Symbol{Name: "x", Type: typing.PrimType(typing.PrimString)}); prev != nil {
		t.Fatal("shadowing an ancestor binding should replace nothing")
	}

	sym, _ := table.Lookup("x")
	if !typing.Equals(sym.Type, typing.PrimType(typing.PrimString)) {
		t.Fatal("the innermost binding should shadow the outer one")
	}

	table.ExitScope()

	sym, _ = table.Lookup("x")
	if !typing.Equals(sym.Type, typing.PrimType(typing.PrimInteger)) {
		t.Fatal("the outer binding should be restored after the shadowing scope exits")
	}
}

func TestSeedBuiltins(t *testing.T) {
	table := NewTable()
	SeedBuiltins(table)

	sym, ok := table.Lookup("print")
	if !ok || !sym.Builtin || sym.DefKind != DKFunction {
		t.Fatal("print should be seeded as a built-in function")
	}

	ft, ok := sym.Type.(*typing.FuncType)
	if !ok || !typing.Equals(ft.ReturnType, typing.PrimType(typing.PrimNone)) {
		t.Fatal("print should return None")
	}

	if sym, ok := table.Lookup("int"); !ok || !typing.Equals(sym.Type, typing.PrimType(typing.PrimInteger)) {
		t.Fatal("the primitive type names should be bound to themselves")
	}
}
