package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"pycheck/report"
)

// Lexer is responsible for tokenizing a source file.  Beyond ordinary
// tokens, it produces the NEWLINE, INDENT, and DEDENT tokens that encode the
// block structure of the language: one INDENT for each new indentation
// level, matching DEDENTs as levels close, with blank and comment-only lines
// contributing nothing.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// indents is the stack of currently open indentation widths.
	indents []int

	// pending queues the block-structure tokens produced at a line start.
	pending []*Token

	// atLineStart indicates that the lexer is positioned before the
	// indentation of a new logical line.
	atLineStart bool
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:        file,
		tokBuff:     &strings.Builder{},
		indents:     []int{0},
		atLineStart: true,
	}
}

// NextToken retrieves the next token from the input file.  If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok, nil
		}

		if l.atLineStart {
			if err := l.lexLineStart(); err != nil {
				return nil, err
			}

			continue
		}

		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			// End of file in the middle of a logical line: close the line,
			// then any open blocks.
			l.mark()
			l.queueDedents(0)
			l.pending = append(l.pending, l.makeToken(TOK_EOF, ""))
			return l.makeToken(TOK_NEWLINE, ""), nil
		case ' ', '\t', '\r':
			l.skip()
		case '\n':
			l.mark()
			l.skip()
			l.atLineStart = true
			return l.makeToken(TOK_NEWLINE, ""), nil
		case '#':
			l.skipComment()
		case '"', '\'':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunct()
			}
		}
	}
}

// lexLineStart measures the indentation of the next non-blank line and
// queues the INDENT/DEDENT tokens implied by it.  If the file ends first,
// it queues the closing DEDENTs and the EOF token instead.
func (l *Lexer) lexLineStart() error {
	for {
		indent := 0

	indentLoop:
		for {
			c, err := l.peek()
			if err != nil {
				return err
			}

			switch c {
			case ' ':
				indent++
				l.skip()
			case '\t':
				// Tabs advance to the next multiple of eight columns.
				indent += 8 - indent%8
				l.skip()
			default:
				break indentLoop
			}
		}

		c, err := l.peek()
		if err != nil {
			return err
		}

		switch c {
		case '\n', '\r':
			// Blank line: contributes no tokens at all.
			l.skip()
			continue
		case '#':
			l.skipComment()
			continue
		case -1:
			l.mark()
			l.queueDedents(0)
			l.pending = append(l.pending, l.makeToken(TOK_EOF, ""))
			l.atLineStart = false
			return nil
		}

		l.mark()

		if curr := l.indents[len(l.indents)-1]; indent > curr {
			l.indents = append(l.indents, indent)
			l.pending = append(l.pending, l.makeToken(TOK_INDENT, ""))
		} else if indent < curr {
			l.queueDedents(indent)

			if indent != l.indents[len(l.indents)-1] {
				return report.Raise(l.makeToken(TOK_DEDENT, "").Pos, "unindent does not match any outer indentation level")
			}
		}

		l.atLineStart = false
		return nil
	}
}

// queueDedents pops indentation levels greater than the given width and
// queues one DEDENT token for each.
func (l *Lexer) queueDedents(indent int) {
	for indent < l.indents[len(l.indents)-1] {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, l.makeToken(TOK_DEDENT, ""))
	}
}

// skipComment skips a `#` comment up to but not including the line break.
func (l *Lexer) skipComment() {
	for {
		c, err := l.peek()
		if err != nil || c == -1 || c == '\n' {
			return
		}

		l.skip()
	}
}

// -----------------------------------------------------------------------------

// lexIdentOrKeyword lexes an identifier or keyword token.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c != -1 && isIdentChar(c) {
			l.eat()
		} else {
			break
		}
	}

	value := l.tokBuff.String()
	if kind, ok := keywordPatterns[value]; ok {
		return l.makeToken(kind, value), nil
	}

	return l.makeToken(TOK_IDENT, value), nil
}

// lexNumericLit lexes an integer or float literal.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()

	kind := TOK_INTLIT

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c != -1 && isDecimalDigit(c) {
			l.eat()
		} else if c == '.' && kind == TOK_INTLIT {
			kind = TOK_FLOATLIT
			l.eat()
		} else {
			break
		}
	}

	return l.makeToken(kind, l.tokBuff.String()), nil
}

// lexStringLit lexes a quoted string literal.  The quotes are trimmed off of
// the token value.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()

	quote, _ := l.read()

	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1, '\n':
			return nil, report.Raise(l.currentSpan(), "unterminated string literal")
		case quote:
			return l.makeToken(TOK_STRINGLIT, l.tokBuff.String()), nil
		case '\\':
			esc, err := l.read()
			if err != nil {
				return nil, err
			}

			switch esc {
			case 'n':
				l.tokBuff.WriteRune('\n')
			case 't':
				l.tokBuff.WriteRune('\t')
			case -1:
				return nil, report.Raise(l.currentSpan(), "unterminated string literal")
			default:
				l.tokBuff.WriteRune(esc)
			}
		default:
			l.tokBuff.WriteRune(c)
		}
	}
}

// lexPunct lexes a punctuation or operator token.
func (l *Lexer) lexPunct() (*Token, error) {
	l.mark()

	c, _ := l.read()

	var kind int
	switch c {
	case '+':
		kind = TOK_PLUS
	case '-':
		if next, err := l.peek(); err != nil {
			return nil, err
		} else if next == '>' {
			l.skip()
			kind = TOK_ARROW
			return l.makeToken(kind, "->"), nil
		}

		kind = TOK_MINUS
	case '*':
		kind = TOK_STAR
	case '/':
		kind = TOK_DIV
	case '=':
		kind = TOK_ASSIGN
	case ':':
		kind = TOK_COLON
	case ',':
		kind = TOK_COMMA
	case '(':
		kind = TOK_LPAREN
	case ')':
		kind = TOK_RPAREN
	default:
		return nil, report.Raise(l.currentSpan(), "unknown character: `%c`", c)
	}

	return l.makeToken(kind, string(c)), nil
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of the next token and
// resets the token buffer.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
	l.tokBuff.Reset()
}

// makeToken produces a token of the given kind spanning from the last mark
// to the current position.
func (l *Lexer) makeToken(kind int, value string) *Token {
	return &Token{
		Kind:  kind,
		Value: value,
		Pos: &report.TextPosition{
			StartLn:  l.startLine,
			StartCol: l.startCol,
			EndLn:    l.line,
			EndCol:   l.col,
		},
	}
}

// currentSpan returns a single-column position at the lexer's current
// location, used for lexical error reporting.
func (l *Lexer) currentSpan() *report.TextPosition {
	return &report.TextPosition{
		StartLn:  l.startLine,
		StartCol: l.startCol,
		EndLn:    l.line,
		EndCol:   l.col + 1,
	}
}

// peek returns the next rune in the file without consuming it.  It returns
// -1 at the end of the file.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, report.Raise(l.currentSpan(), "failed to read source: %s", err)
	}

	if err := l.file.UnreadRune(); err != nil {
		return 0, report.Raise(l.currentSpan(), "failed to read source: %s", err)
	}

	return c, nil
}

// read consumes and returns the next rune, updating the lexer's position.
// It returns -1 at the end of the file.
func (l *Lexer) read() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, report.Raise(l.currentSpan(), "failed to read source: %s", err)
	}

	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	return c, nil
}

// skip consumes the next rune without adding it to the token buffer.
func (l *Lexer) skip() {
	l.read()
}

// eat consumes the next rune and adds it to the token buffer.
func (l *Lexer) eat() {
	c, err := l.read()
	if err == nil && c != -1 {
		l.tokBuff.WriteRune(c)
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c)
}
