package walk

import (
	"pycheck/ast"
	"pycheck/report"
	"pycheck/typing"
)

// inferExpr infers the type of an expression.  Inference is structural and
// total: it always produces at least Unknown, and it records diagnostics for
// unresolvable names as it descends.
func (w *Walker) inferExpr(expr ast.Expr) typing.DataType {
	switch v := expr.(type) {
	case *ast.Literal:
		return inferLiteral(v)
	case *ast.Identifier:
		return w.inferIdentifier(v)
	case *ast.BinaryOp:
		return w.inferBinaryOp(v)
	case *ast.Call:
		return w.inferCall(v)
	default:
		// Unmodeled expression kind.
		return typing.Unknown
	}
}

// inferLiteral returns the intrinsic type of a literal.
func inferLiteral(lit *ast.Literal) typing.DataType {
	switch lit.Kind {
	case ast.LitInt:
		return typing.PrimType(typing.PrimInteger)
	case ast.LitFloat:
		return typing.PrimType(typing.PrimFloat)
	case ast.LitString:
		return typing.PrimType(typing.PrimString)
	case ast.LitBool:
		return typing.PrimType(typing.PrimBool)
	case ast.LitNone:
		return typing.PrimType(typing.PrimNone)
	default:
		return typing.Unknown
	}
}

// inferIdentifier resolves a name reference through the scope chain.  A name
// with no visible binding yields an undefined-name diagnostic and infers
// Unknown so that the missing information never cascades into false type
// errors.
func (w *Walker) inferIdentifier(ident *ast.Identifier) typing.DataType {
	sym, ok := w.table.Lookup(ident.Name)
	if !ok {
		w.error(report.DiagUndefinedName, ident.Span(), "undefined name: `%s`", ident.Name)
		return typing.Unknown
	}

	if sym.Type == nil {
		return typing.Unknown
	}

	return sym.Type
}

// inferBinaryOp infers the type of a binary operator application.  The model
// is loose: integer pairs stay integer, anything involving a string is
// string concatenation, and everything else is Unknown.  No operator is ever
// rejected here.
func (w *Walker) inferBinaryOp(bop *ast.BinaryOp) typing.DataType {
	lhs := w.inferExpr(bop.Lhs)
	rhs := w.inferExpr(bop.Rhs)

	intType := typing.PrimType(typing.PrimInteger)
	strType := typing.PrimType(typing.PrimString)

	if typing.Equals(lhs, intType) && typing.Equals(rhs, intType) {
		return intType
	}

	if typing.Equals(lhs, strType) || typing.Equals(rhs, strType) {
		return strType
	}

	return typing.Unknown
}

// inferCall infers the type of a call expression.  Only the simplest form is
// modeled: a callee that is a direct name bound to a function type yields
// that function's declared return type.  Argument arity and types are not
// checked against the parameters.
func (w *Walker) inferCall(call *ast.Call) typing.DataType {
	result := typing.Unknown

	if ident, ok := call.Func.(*ast.Identifier); ok {
		if sym, found := w.table.Lookup(ident.Name); found {
			if ft, isFunc := sym.Type.(*typing.FuncType); isFunc {
				result = ft.ReturnType
			}
		} else {
			w.error(report.DiagUndefinedName, ident.Span(), "undefined name: `%s`", ident.Name)
		}
	} else {
		w.inferExpr(call.Func)
	}

	for _, arg := range call.Args {
		w.inferExpr(arg)
	}

	return result
}
