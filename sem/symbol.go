package sem

import (
	"fmt"

	"pycheck/report"
	"pycheck/typing"
)

// Symbol represents a named binding in some scope.
type Symbol struct {
	Name string

	// DefKind indicates what kind of binding this symbol is.  Must be one of
	// the enumerated def kinds.
	DefKind int

	// Type is the declared or inferred type of the symbol.  It may be nil
	// for symbols with no type information at all.
	Type typing.DataType

	// DefPosition is the position of the identifier that defines the symbol.
	DefPosition *report.TextPosition

	// Builtin indicates whether this symbol was seeded into the root scope
	// before user statements were walked.
	Builtin bool
}

// Enumeration of definition kinds.
const (
	DKVariable = iota
	DKFunction
	DKParameter
)

func (sym *Symbol) String() string {
	if sym.Type == nil {
		return fmt.Sprintf("%s `%s`", reprDefKind(sym.DefKind), sym.Name)
	}

	return fmt.Sprintf("%s `%s`: %s", reprDefKind(sym.DefKind), sym.Name, sym.Type.Repr())
}

// reprDefKind returns the display string for a definition kind.
func reprDefKind(dk int) string {
	switch dk {
	case DKVariable:
		return "variable"
	case DKFunction:
		return "function"
	default:
		// DKParameter
		return "parameter"
	}
}
