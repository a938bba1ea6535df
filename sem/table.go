package sem

// Table is the symbol table for one checked file: the scope tree plus the
// single mutable cursor pointing at the scope currently being populated.
// Tables are owned exclusively by one run and are never shared across files
// or concurrent checks.
type Table struct {
	root    *Scope
	current *Scope
}

// NewTable creates a new symbol table with an empty root module scope.  The
// caller is expected to seed built-in symbols into the root scope before any
// user statements are walked.
func NewTable() *Table {
	root := newScope(ModuleScope, nil)

	return &Table{
		root:    root,
		current: root,
	}
}

// Root returns the root module scope.
func (t *Table) Root() *Scope {
	return t.root
}

// Current returns the scope the cursor is currently on.
func (t *Table) Current() *Scope {
	return t.current
}

// EnterScope opens a new scope of the given kind under the current scope and
// moves the cursor into it.  Every call must be paired with a later call to
// ExitScope.
func (t *Table) EnterScope(kind int) *Scope {
	t.current = newScope(kind, t.current)
	return t.current
}

// ExitScope moves the cursor back to the parent of the current scope.  An
// unmatched exit on the root scope is a no-op: it should never occur with
// correct engine usage, but it is never a fault.
func (t *Table) ExitScope() {
	if t.current.parent != nil {
		t.current = t.current.parent
	}
}

// Define binds a symbol in the current scope.  Rebinding a name already
// bound in that exact scope replaces the prior binding, matching dynamic
// rebinding semantics; the replaced symbol is returned so callers can
// inspect what was overwritten.  Shadowing a name bound in an ancestor scope
// is always allowed and replaces nothing.
func (t *Table) Define(sym *Symbol) *Symbol {
	prev := t.current.symbols[sym.Name]
	t.current.symbols[sym.Name] = sym
	return prev
}

// Lookup resolves a name by walking from the current scope up through its
// ancestors until a binding is found or the chain is exhausted.  This is the
// LEGB search order collapsed into one ancestor-chain walk: built-ins live
// in the root scope, so they are simply the last stop.  Lookup never crosses
// into sibling or child scopes, and failure to find a name is not itself an
// error: callers decide whether it becomes a diagnostic.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for s := t.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}

	return nil, false
}
