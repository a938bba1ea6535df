package sem

// Enumeration of scope kinds.
const (
	ModuleScope = iota
	FunctionScope
)

// Scope is a lexical region with a set of name bindings.  Scopes form a
// strict tree: there is exactly one root (the module scope) and every other
// scope has exactly one parent.  Symbols are owned exclusively by the scope
// they are bound in and live until that scope is discarded.
type Scope struct {
	// Kind indicates what kind of region this scope covers.  Must be one of
	// the enumerated scope kinds.
	Kind int

	// symbols is the binding map of the scope.  Insertion order is
	// irrelevant: name resolution only ever asks for exact names.
	symbols map[string]*Symbol

	// parent is the enclosing scope.  It is nil only for the root scope.
	parent *Scope

	// children records the scopes opened inside this one.  The checker never
	// reads it; it exists purely for introspection of a finished table.
	children []*Scope
}

// newScope creates a new scope of the given kind under the given parent.
func newScope(kind int, parent *Scope) *Scope {
	s := &Scope{
		Kind:    kind,
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}

	if parent != nil {
		parent.children = append(parent.children, s)
	}

	return s
}

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the scopes opened inside this scope.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Get retrieves a symbol bound in this exact scope.  It never consults the
// ancestor chain.
func (s *Scope) Get(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}
