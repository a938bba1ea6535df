package ast

// Identifier represents a name reference.
type Identifier struct {
	NodeBase

	Name string
}

// Enumeration of literal kinds.
const (
	LitInt = iota
	LitFloat
	LitString
	LitBool
	LitNone
)

// Literal represents a literal constant.
type Literal struct {
	NodeBase

	// The kind of the literal.  Must be one of the enumerated literal kinds.
	Kind int

	// The source text of the literal.  String literals have their quotes
	// trimmed off.
	Value string
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	NodeBase

	// The operator lexeme: `+`, `-`, `*`, or `/`.
	Op string

	Lhs, Rhs Expr
}

// Call represents a call expression.
type Call struct {
	NodeBase

	Func Expr
	Args []Expr
}
