package format

import (
	"bufio"
	"strings"

	"prettyname/syntax"
)

// StyleFormatter is the default formatting engine.  It formats a declaration
// by re-tokenizing it and printing the token stream back out with canonical
// spacing, discarding whatever whitespace the input carried.
type StyleFormatter struct{}

func (StyleFormatter) Format(src string) (string, error) {
	lexer := syntax.NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*syntax.Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return "", err
		}

		if tok.Kind == syntax.TOK_EOF {
			break
		}

		toks = append(toks, tok)
	}

	sb := strings.Builder{}

	for i, tok := range toks {
		if i > 0 && needSpace(toks[i-1], tok) {
			sb.WriteRune(' ')
		}

		sb.WriteString(tokenText(tok))
	}

	return sb.String(), nil
}

// -----------------------------------------------------------------------------

// needSpace returns whether a space belongs between two adjacent tokens.
// The rules are ordered: the first matching rule wins.
func needSpace(prev, cur *syntax.Token) bool {
	// Closing punctuation and separators attach to whatever precedes them.
	switch cur.Kind {
	case syntax.TOK_COMMA, syntax.TOK_SEMI, syntax.TOK_RPAREN,
		syntax.TOK_RBRACKET, syntax.TOK_RBRACE, syntax.TOK_GT,
		syntax.TOK_COLONCOLON:
		return false
	}

	// Binary punctuation is always preceded by a space.
	switch cur.Kind {
	case syntax.TOK_ARROW, syntax.TOK_PLUS, syntax.TOK_ASSIGN,
		syntax.TOK_LBRACE:
		return true
	}

	// Opening punctuation and prefix sigils attach to whatever follows them.
	switch prev.Kind {
	case syntax.TOK_COLONCOLON, syntax.TOK_AMP, syntax.TOK_STAR,
		syntax.TOK_LPAREN, syntax.TOK_LBRACKET, syntax.TOK_LT,
		syntax.TOK_LBRACE:
		return false
	}

	// Separators and binary punctuation are always followed by a space, as
	// are lifetimes (`&'a mut T`).
	switch prev.Kind {
	case syntax.TOK_COMMA, syntax.TOK_SEMI, syntax.TOK_ARROW,
		syntax.TOK_PLUS, syntax.TOK_ASSIGN, syntax.TOK_LIFETIME:
		return true
	}

	// Argument lists attach to the word before them (`Vec<`, `fn(`).
	switch cur.Kind {
	case syntax.TOK_LT, syntax.TOK_LPAREN:
		return false
	}

	// Words are separated from whatever else follows them.
	switch prev.Kind {
	case syntax.TOK_FN, syntax.TOK_DYN, syntax.TOK_IMPL, syntax.TOK_MUT,
		syntax.TOK_CONST, syntax.TOK_UNSAFE, syntax.TOK_EXTERN,
		syntax.TOK_INFER, syntax.TOK_IDENT, syntax.TOK_PRIM,
		syntax.TOK_INTLIT, syntax.TOK_STRINGLIT, syntax.TOK_BANG:
		return true
	}

	return false
}

// tokenText returns the source text of a token.  Most tokens print as their
// value; string and lifetime tokens have their trimmed quotes restored.
func tokenText(tok *syntax.Token) string {
	switch tok.Kind {
	case syntax.TOK_STRINGLIT:
		return "\"" + tok.Value + "\""
	case syntax.TOK_LIFETIME:
		return "'" + tok.Value
	default:
		return tok.Value
	}
}
