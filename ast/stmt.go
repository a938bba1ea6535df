package ast

import "pycheck/report"

// Annotation is a type annotation as written in source: a bare name in this
// subset of the language.
type Annotation struct {
	Name string
	Pos  *report.TextPosition
}

// Param represents a single function parameter.
type Param struct {
	Name string

	// The parameter's annotation, or nil if it was omitted.
	Annot *Annotation

	Pos *report.TextPosition
}

// FuncDef represents a function definition.
type FuncDef struct {
	NodeBase

	Name    string
	NamePos *report.TextPosition

	Params []Param

	// The declared return annotation, or nil if it was omitted.
	ReturnAnnot *Annotation

	Body []Stmt
}

// AnnAssign represents an annotated assignment: `name: annotation = value`.
type AnnAssign struct {
	NodeBase

	Target    string
	TargetPos *report.TextPosition

	Annot *Annotation

	// The assigned value, or nil for a bare declaration (`name: annotation`).
	Value Expr
}

// Assign represents a plain assignment, possibly with several chained
// targets: `a = b = value`.
type Assign struct {
	NodeBase

	Targets []*Identifier
	Value   Expr
}

// ExprStmt represents a bare expression used as a statement.
type ExprStmt struct {
	NodeBase

	Value Expr
}

// ReturnStmt represents a return statement.  The checker recognizes it only
// so that function bodies parse; it performs no return-type analysis.
type ReturnStmt struct {
	NodeBase

	// The returned value, or nil for a bare `return`.
	Value Expr
}
