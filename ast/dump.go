package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented textual rendering of a statement list.  It exists
// for the `parse` debug subcommand and has no semantic significance.
func Dump(w io.Writer, stmts []Stmt) {
	for _, stmt := range stmts {
		dumpStmt(w, stmt, 0)
	}
}

func dumpStmt(w io.Writer, stmt Stmt, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := stmt.(type) {
	case *FuncDef:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = p.Name
			if p.Annot != nil {
				params[i] += ": " + p.Annot.Name
			}
		}

		ret := ""
		if v.ReturnAnnot != nil {
			ret = " -> " + v.ReturnAnnot.Name
		}

		fmt.Fprintf(w, "%sFuncDef %s(%s)%s\n", indent, v.Name, strings.Join(params, ", "), ret)

		for _, bodyStmt := range v.Body {
			dumpStmt(w, bodyStmt, depth+1)
		}
	case *AnnAssign:
		fmt.Fprintf(w, "%sAnnAssign %s: %s = %s\n", indent, v.Target, v.Annot.Name, dumpExpr(v.Value))
	case *Assign:
		targets := make([]string, len(v.Targets))
		for i, target := range v.Targets {
			targets[i] = target.Name
		}

		fmt.Fprintf(w, "%sAssign %s = %s\n", indent, strings.Join(targets, " = "), dumpExpr(v.Value))
	case *ExprStmt:
		fmt.Fprintf(w, "%sExprStmt %s\n", indent, dumpExpr(v.Value))
	case *ReturnStmt:
		fmt.Fprintf(w, "%sReturn %s\n", indent, dumpExpr(v.Value))
	}
}

func dumpExpr(expr Expr) string {
	switch v := expr.(type) {
	case nil:
		return "<none>"
	case *Identifier:
		return v.Name
	case *Literal:
		if v.Kind == LitString {
			return fmt.Sprintf("%q", v.Value)
		}

		return v.Value
	case *BinaryOp:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(v.Lhs), v.Op, dumpExpr(v.Rhs))
	case *Call:
		args := make([]string, len(v.Args))
		for i, arg := range v.Args {
			args[i] = dumpExpr(arg)
		}

		return fmt.Sprintf("%s(%s)", dumpExpr(v.Func), strings.Join(args, ", "))
	default:
		return fmt.Sprintf("%T", expr)
	}
}
