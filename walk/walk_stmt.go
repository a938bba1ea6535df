package walk

import (
	"pycheck/ast"
	"pycheck/report"
	"pycheck/sem"
	"pycheck/typing"
)

// WalkFile walks the statements of a source file in file order.
func (w *Walker) WalkFile(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

// walkStmt walks a single statement.  Only function definitions, annotated
// assignments, plain assignments, and bare expression statements are
// recognized; every other statement kind is unmodeled and skipped silently.
func (w *Walker) walkStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.FuncDef:
		w.walkFuncDef(v)
	case *ast.AnnAssign:
		w.walkAnnAssign(v)
	case *ast.Assign:
		w.walkAssign(v)
	case *ast.ExprStmt:
		// The inferred type is discarded; the walk only surfaces the
		// diagnostics nested inside the expression.
		w.inferExpr(v.Value)
	}
}

// walkFuncDef walks a function definition.  The function's name is bound in
// the enclosing scope before its body is walked, so the function is visible
// to itself (direct recursion) and to later statements, but not to
// earlier-defined siblings: there is no hoisting pre-pass.
func (w *Walker) walkFuncDef(fd *ast.FuncDef) {
	paramTypes := make([]typing.DataType, len(fd.Params))
	for i, param := range fd.Params {
		paramTypes[i] = w.resolveAnnot(param.Annot)
	}

	ft := &typing.FuncType{
		ParamTypes: paramTypes,
		ReturnType: w.resolveAnnot(fd.ReturnAnnot),
	}

	w.define(&sem.Symbol{
		Name:        fd.Name,
		DefKind:     sem.DKFunction,
		Type:        ft,
		DefPosition: fd.NamePos,
	})

	w.table.EnterScope(sem.FunctionScope)
	defer w.table.ExitScope()

	for i, param := range fd.Params {
		w.define(&sem.Symbol{
			Name:        param.Name,
			DefKind:     sem.DKParameter,
			Type:        paramTypes[i],
			DefPosition: param.Pos,
		})
	}

	for _, stmt := range fd.Body {
		w.walkStmt(stmt)
	}
}

// walkAnnAssign walks an annotated assignment.  The target is always bound
// with the annotated type, not the inferred one: later uses trust the
// annotation even after a reported mismatch.
func (w *Walker) walkAnnAssign(aa *ast.AnnAssign) {
	declared := w.resolveAnnot(aa.Annot)

	if aa.Value != nil {
		inferred := w.inferExpr(aa.Value)

		if !typing.Compatible(declared, inferred) {
			w.error(
				report.DiagTypeError,
				aa.Value.Span(),
				"expected type `%s` but found `%s`",
				declared.Repr(),
				inferred.Repr(),
			)
		}
	}

	w.define(&sem.Symbol{
		Name:        aa.Target,
		DefKind:     sem.DKVariable,
		Type:        declared,
		DefPosition: aa.TargetPos,
	})
}

// walkAssign walks a plain assignment.  The value's type is inferred once
// and every target is bound to it; this form never produces a diagnostic of
// its own.
func (w *Walker) walkAssign(as *ast.Assign) {
	inferred := w.inferExpr(as.Value)

	for _, target := range as.Targets {
		w.define(&sem.Symbol{
			Name:        target.Name,
			DefKind:     sem.DKVariable,
			Type:        inferred,
			DefPosition: target.Span(),
		})
	}
}

// resolveAnnot resolves a type annotation to a type value.  A missing or
// unrecognized annotation falls through to Unknown; it is never an error on
// its own.
func (w *Walker) resolveAnnot(annot *ast.Annotation) typing.DataType {
	if annot == nil {
		return typing.Unknown
	}

	if dt, ok := typing.ResolveAnnotation(annot.Name); ok {
		return dt
	}

	return typing.Unknown
}
