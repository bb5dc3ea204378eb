package syntax

import (
	"bufio"
	"strings"

	"prettyname/report"
	"prettyname/types"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a verbose type descriptor.  It acts as a state
// machine that moves over the descriptor token by token and decides what to
// parse based on the token it is currently positioned on and its context
// (implicit from the callstack of parsing functions): it is a recursive
// descent parser.  All parsing functions assume that they begin with the
// parser centered on the first token of their production and must consume
// all tokens (including the last) of their production, leaving the parser on
// the next token.  Parsers are created once per descriptor.
type Parser struct {
	// lexer is the Lexer this parser is using to tokenize the descriptor.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser for the given descriptor reader.
func NewParser(r *bufio.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// ParseDescriptor parses a self-contained verbose type descriptor into a
// type expression tree.  The descriptor must consist of exactly one type:
// trailing tokens are a parse error.  Parse errors are returned, never
// raised fatally: callers are expected to substitute a sentinel name.
func ParseDescriptor(desc string) (types.Expr, error) {
	p := NewParser(bufio.NewReader(strings.NewReader(desc)))

	// Move the parser onto the first token.
	if err := p.next(); err != nil {
		return nil, err
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if !p.got(TOK_EOF) {
		return nil, p.reject()
	}

	return typ, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}

	p.tok = tok
	return nil
}

// got returns whether the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assert checks that the parser is on a token of a given kind and rejects
// the token if not.
func (p *Parser) assert(kind int) error {
	if p.got(kind) {
		return nil
	}

	return p.reject()
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) error {
	if err := p.assert(kind); err != nil {
		return err
	}

	return p.next()
}

// -----------------------------------------------------------------------------

// reject returns an unexpected token error on the current token.
func (p *Parser) reject() error {
	if p.tok.Kind == TOK_EOF {
		return report.Raise(p.tok.Span, "unexpected end of descriptor")
	}

	return report.Raise(p.tok.Span, "unexpected token: `%s`", p.tok.Value)
}
