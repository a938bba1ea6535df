package syntax

import "pycheck/ast"

// parseStmt parses any statement.
//
// stmt := func_def | return_stmt NEWLINE | simple_stmt NEWLINE
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_DEF:
		return p.parseFuncDef()
	case TOK_RETURN:
		stmt := p.parseReturnStmt()
		p.assertAndNext(TOK_NEWLINE)
		return stmt
	default:
		stmt := p.parseSimpleStmt()
		p.assertAndNext(TOK_NEWLINE)
		return stmt
	}
}

// parseFuncDef parses a function definition.
//
// func_def := 'def' IDENT '(' [param {',' param}] ')' ['->' annotation] ':' NEWLINE INDENT {stmt} DEDENT
// param := IDENT [':' annotation]
func (p *Parser) parseFuncDef() ast.Stmt {
	startPos := p.tok.Pos

	p.want(TOK_IDENT)
	name := p.tok.Value
	namePos := p.tok.Pos

	p.want(TOK_LPAREN)
	p.next()

	var params []ast.Param
	for !p.got(TOK_RPAREN) {
		if len(params) > 0 {
			p.assertAndNext(TOK_COMMA)
		}

		p.assert(TOK_IDENT)
		param := ast.Param{Name: p.tok.Value, Pos: p.tok.Pos}
		p.next()

		if p.got(TOK_COLON) {
			p.next()
			param.Annot = p.parseAnnotation()
		}

		params = append(params, param)
	}

	// Move over the closing parenthesis.
	p.next()

	var returnAnnot *ast.Annotation
	if p.got(TOK_ARROW) {
		p.next()
		returnAnnot = p.parseAnnotation()
	}

	p.assertAndNext(TOK_COLON)
	p.assertAndNext(TOK_NEWLINE)
	p.assertAndNext(TOK_INDENT)

	var body []ast.Stmt
	for !p.got(TOK_DEDENT) {
		if p.got(TOK_NEWLINE) {
			p.next()
			continue
		}

		body = append(body, p.parseStmt())
	}

	endPos := p.tok.Pos
	p.next()

	return &ast.FuncDef{
		NodeBase:    ast.NewNodeBaseOver(startPos, endPos),
		Name:        name,
		NamePos:     namePos,
		Params:      params,
		ReturnAnnot: returnAnnot,
		Body:        body,
	}
}

// parseReturnStmt parses a return statement.
//
// return_stmt := 'return' [expr]
func (p *Parser) parseReturnStmt() ast.Stmt {
	startPos := p.tok.Pos
	p.next()

	if p.got(TOK_NEWLINE) || p.got(TOK_EOF) {
		return &ast.ReturnStmt{NodeBase: ast.NewNodeBaseOn(startPos)}
	}

	value := p.parseExpr()

	return &ast.ReturnStmt{
		NodeBase: ast.NewNodeBaseOver(startPos, value.Span()),
		Value:    value,
	}
}

// parseSimpleStmt parses an annotated assignment, a plain assignment, or a
// bare expression statement.  All three begin with an expression, so the
// statement kind is decided by the token that follows it.
//
// simple_stmt := expr [':' annotation ['=' expr] | {'=' expr}]
func (p *Parser) parseSimpleStmt() ast.Stmt {
	first := p.parseExpr()

	switch p.tok.Kind {
	case TOK_COLON:
		ident := p.mustBeName(first)

		p.next()
		annot := p.parseAnnotation()

		var value ast.Expr
		endPos := annot.Pos
		if p.got(TOK_ASSIGN) {
			p.next()
			value = p.parseExpr()
			endPos = value.Span()
		}

		return &ast.AnnAssign{
			NodeBase:  ast.NewNodeBaseOver(first.Span(), endPos),
			Target:    ident.Name,
			TargetPos: ident.Span(),
			Annot:     annot,
			Value:     value,
		}
	case TOK_ASSIGN:
		targets := []*ast.Identifier{p.mustBeName(first)}

		var value ast.Expr
		for value == nil {
			p.next()
			e := p.parseExpr()

			if p.got(TOK_ASSIGN) {
				// Chained assignment: this expression is another target.
				targets = append(targets, p.mustBeName(e))
			} else {
				value = e
			}
		}

		return &ast.Assign{
			NodeBase: ast.NewNodeBaseOver(first.Span(), value.Span()),
			Targets:  targets,
			Value:    value,
		}
	default:
		return &ast.ExprStmt{
			NodeBase: ast.NewNodeBaseOn(first.Span()),
			Value:    first,
		}
	}
}

// parseAnnotation parses a type annotation: a bare name, with `None` allowed
// as the conventional spelling of the none type.
func (p *Parser) parseAnnotation() *ast.Annotation {
	switch p.tok.Kind {
	case TOK_IDENT, TOK_NONE:
		annot := &ast.Annotation{Name: p.tok.Value, Pos: p.tok.Pos}
		p.next()
		return annot
	default:
		p.rejectWithMsg("expected type annotation")
		return nil
	}
}

// mustBeName asserts that an assignment target is a plain name.
func (p *Parser) mustBeName(expr ast.Expr) *ast.Identifier {
	ident, ok := expr.(*ast.Identifier)
	if !ok {
		p.errorOn(expr.Span(), "illegal assignment target")
	}

	return ident
}
