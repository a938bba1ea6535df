// Package ast defines the abstract syntax tree handed from the parser to the
// type checker.  The node set is deliberately small: it models exactly the
// statement and expression forms the checker understands, and nothing else.
package ast

import "pycheck/report"

// Stmt is the interface implemented by all statement nodes.
type Stmt interface {
	// Span returns the text position of the whole statement.
	Span() *report.TextPosition
}

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	// Span returns the text position of the whole expression.
	Span() *report.TextPosition
}

// NodeBase is a utility base struct for all AST nodes.
type NodeBase struct {
	span *report.TextPosition
}

// NewNodeBaseOn creates a new node base with the given span.
func NewNodeBaseOn(span *report.TextPosition) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextPosition) NodeBase {
	return NodeBase{span: report.TextPositionFromRange(start, end)}
}

func (nb NodeBase) Span() *report.TextPosition {
	return nb.span
}
