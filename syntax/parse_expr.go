package syntax

import "pycheck/ast"

// parseExpr parses an expression.
//
// expr := term {('+' | '-') term}
func (p *Parser) parseExpr() ast.Expr {
	lhs := p.parseTerm()

	for p.got(TOK_PLUS) || p.got(TOK_MINUS) {
		op := p.tok.Value
		p.next()

		rhs := p.parseTerm()

		lhs = &ast.BinaryOp{
			NodeBase: ast.NewNodeBaseOver(lhs.Span(), rhs.Span()),
			Op:       op,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// parseTerm parses a multiplicative expression.
//
// term := atom_expr {('*' | '/') atom_expr}
func (p *Parser) parseTerm() ast.Expr {
	lhs := p.parseAtomExpr()

	for p.got(TOK_STAR) || p.got(TOK_DIV) {
		op := p.tok.Value
		p.next()

		rhs := p.parseAtomExpr()

		lhs = &ast.BinaryOp{
			NodeBase: ast.NewNodeBaseOver(lhs.Span(), rhs.Span()),
			Op:       op,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// parseAtomExpr parses an atom followed by any number of call suffixes.
//
// atom_expr := atom {'(' [expr {',' expr}] ')'}
func (p *Parser) parseAtomExpr() ast.Expr {
	atom := p.parseAtom()

	for p.got(TOK_LPAREN) {
		p.next()

		var args []ast.Expr
		for !p.got(TOK_RPAREN) {
			if len(args) > 0 {
				p.assertAndNext(TOK_COMMA)
			}

			args = append(args, p.parseExpr())
		}

		endPos := p.tok.Pos
		p.next()

		atom = &ast.Call{
			NodeBase: ast.NewNodeBaseOver(atom.Span(), endPos),
			Func:     atom,
			Args:     args,
		}
	}

	return atom
}

// parseAtom parses an atomic expression.
//
// atom := IDENT | INTLIT | FLOATLIT | STRINGLIT | 'True' | 'False' | 'None' | '(' expr ')'
func (p *Parser) parseAtom() ast.Expr {
	tok := p.tok

	switch tok.Kind {
	case TOK_IDENT:
		p.next()
		return &ast.Identifier{NodeBase: ast.NewNodeBaseOn(tok.Pos), Name: tok.Value}
	case TOK_INTLIT:
		p.next()
		return &ast.Literal{NodeBase: ast.NewNodeBaseOn(tok.Pos), Kind: ast.LitInt, Value: tok.Value}
	case TOK_FLOATLIT:
		p.next()
		return &ast.Literal{NodeBase: ast.NewNodeBaseOn(tok.Pos), Kind: ast.LitFloat, Value: tok.Value}
	case TOK_STRINGLIT:
		p.next()
		return &ast.Literal{NodeBase: ast.NewNodeBaseOn(tok.Pos), Kind: ast.LitString, Value: tok.Value}
	case TOK_TRUE, TOK_FALSE:
		p.next()
		return &ast.Literal{NodeBase: ast.NewNodeBaseOn(tok.Pos), Kind: ast.LitBool, Value: tok.Value}
	case TOK_NONE:
		p.next()
		return &ast.Literal{NodeBase: ast.NewNodeBaseOn(tok.Pos), Kind: ast.LitNone, Value: tok.Value}
	case TOK_LPAREN:
		p.next()
		expr := p.parseExpr()
		p.assertAndNext(TOK_RPAREN)
		return expr
	default:
		p.reject()
		return nil
	}
}
