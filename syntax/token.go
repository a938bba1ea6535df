package syntax

import "pycheck/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This may not directly correspond to
	// the source text: eg. the value of a string token has the leading
	// quotes trimmed off for convenience.
	Value string

	// The text position over which the token exists.
	Pos *report.TextPosition
}

// Enumeration of token kinds.
const (
	TOK_DEF = iota
	TOK_RETURN

	TOK_TRUE
	TOK_FALSE
	TOK_NONE

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_STRINGLIT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV

	TOK_ASSIGN
	TOK_COLON
	TOK_COMMA
	TOK_ARROW

	TOK_LPAREN
	TOK_RPAREN

	TOK_NEWLINE
	TOK_INDENT
	TOK_DEDENT
	TOK_EOF
)

// keywordPatterns maps keyword strings to their token kind.
var keywordPatterns = map[string]int{
	"def":    TOK_DEF,
	"return": TOK_RETURN,
	"True":   TOK_TRUE,
	"False":  TOK_FALSE,
	"None":   TOK_NONE,
}
