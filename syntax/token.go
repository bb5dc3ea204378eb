package syntax

import "prettyname/report"

// Token represents a single lexical token of a type descriptor.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This may not directly correspond to
	// the source text: eg. the value of a string token has the leading quotes
	// trimmed off and the value of a lifetime token has the leading quote
	// trimmed off for convenience.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_FN = iota
	TOK_DYN
	TOK_IMPL
	TOK_MUT
	TOK_CONST
	TOK_UNSAFE
	TOK_EXTERN
	TOK_INFER

	TOK_AMP
	TOK_STAR
	TOK_PLUS
	TOK_BANG
	TOK_ASSIGN
	TOK_COMMA
	TOK_SEMI
	TOK_COLONCOLON
	TOK_LT
	TOK_GT
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_LBRACE
	TOK_RBRACE
	TOK_ARROW

	TOK_IDENT
	TOK_PRIM
	TOK_LIFETIME
	TOK_INTLIT
	TOK_STRINGLIT

	TOK_EOF
)
