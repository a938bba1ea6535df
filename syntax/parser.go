package syntax

import (
	"bufio"

	"pycheck/ast"
	"pycheck/report"
)

// Parser is the parser for one source file.  It is a recursive descent
// parser with one token of lookahead: all parsing functions assume that they
// begin with the parser centered on the first token of their production and
// must consume all tokens of their production, leaving the parser on the
// next token.  Parsers are created once per file.
//
// Parsing is all-or-nothing: the first syntax failure aborts the file and is
// surfaced as a single error, which the check driver converts into a parse
// diagnostic.  Internally failures propagate by panic and are recovered at
// the top of Parse.
type Parser struct {
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser reading source from the given reader.
func NewParser(r *bufio.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// Parse parses the file into its ordered statement sequence.
func (p *Parser) Parse() (stmts []ast.Stmt, err error) {
	defer func() {
		if x := recover(); x != nil {
			if lerr, ok := x.(*report.LocalError); ok {
				stmts, err = nil, lerr
			} else {
				panic(x)
			}
		}
	}()

	p.next()

	for !p.got(TOK_EOF) {
		if p.got(TOK_NEWLINE) {
			p.next()
			continue
		}

		stmts = append(stmts, p.parseStmt())
	}

	return stmts, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.tok = tok
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assert checks that the parser is on a token of a given kind and rejects
// the token if not.
func (p *Parser) assert(kind int) {
	if !p.got(kind) {
		// EOF can work as a newline.
		if kind == TOK_NEWLINE && p.got(TOK_EOF) {
			return
		}

		p.reject()
	}
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) {
	p.assert(kind)
	p.next()
}

// want moves the parser forward one token and then asserts that the token
// the parser has moved to is of a given kind.
func (p *Parser) want(kind int) {
	p.next()
	p.assert(kind)
}

// reject reports an unexpected token error on the current token.
func (p *Parser) reject() {
	switch p.tok.Kind {
	case TOK_NEWLINE:
		p.rejectWithMsg("unexpected newline")
	case TOK_INDENT:
		p.rejectWithMsg("unexpected indent")
	case TOK_DEDENT:
		p.rejectWithMsg("unexpected unindent")
	case TOK_EOF:
		p.rejectWithMsg("unexpected end of file")
	default:
		p.rejectWithMsg("unexpected token: `%s`", p.tok.Value)
	}
}

// rejectWithMsg rejects the current token with a specific message.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) {
	panic(report.Raise(p.tok.Pos, msg, args...))
}

// errorOn reports an error on a given position.
func (p *Parser) errorOn(pos *report.TextPosition, msg string, args ...interface{}) {
	panic(report.Raise(pos, msg, args...))
}
