package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"prettyname/report"
)

// Lexer is responsible for tokenizing a type descriptor.
type Lexer struct {
	src     *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given descriptor reader.
func NewLexer(src *bufio.Reader) *Lexer {
	return &Lexer{
		src:     src,
		tokBuff: &strings.Builder{},
		line:    0,
		col:     0,
	}
}

// NextToken retrieves the next token from the descriptor.  If the descriptor
// has ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			if _, err := l.skip(); err != nil {
				return nil, err
			}
		case '\'':
			return l.lexLifetime()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexIntLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunct()
			}
		}
	}

	return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps punctuation strings (patterns) to their token kind.
var symbolPatterns = map[string]int{
	"&": TOK_AMP,
	"*": TOK_STAR,
	"+": TOK_PLUS,
	"!": TOK_BANG,
	"=": TOK_ASSIGN,
	",": TOK_COMMA,
	";": TOK_SEMI,
	"<": TOK_LT,
	">": TOK_GT,
	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
}

// lexPunct lexes a punctuation symbol.
func (l *Lexer) lexPunct() (*Token, error) {
	l.mark()

	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	// `::` and `->` are the only multi-rune symbols of the grammar, and
	// neither `:` nor `-` is a valid symbol on its own.
	switch c {
	case ':':
		c, err = l.peek()
		if err != nil {
			return nil, err
		} else if c != ':' {
			return nil, report.Raise(l.getSpan(), "expected `::`")
		}

		if _, err := l.eat(); err != nil {
			return nil, err
		}

		return l.makeToken(TOK_COLONCOLON), nil
	case '-':
		c, err = l.peek()
		if err != nil {
			return nil, err
		} else if c != '>' {
			return nil, report.Raise(l.getSpan(), "expected `->`")
		}

		if _, err := l.eat(); err != nil {
			return nil, err
		}

		return l.makeToken(TOK_ARROW), nil
	}

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		return nil, report.Raise(l.getSpan(), "unknown rune")
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"fn":     TOK_FN,
	"dyn":    TOK_DYN,
	"impl":   TOK_IMPL,
	"mut":    TOK_MUT,
	"const":  TOK_CONST,
	"unsafe": TOK_UNSAFE,
	"extern": TOK_EXTERN,
	"_":      TOK_INFER,
}

// primitivePatterns is the set of identifiers naming primitive types.
var primitivePatterns = map[string]struct{}{
	"bool":  {},
	"char":  {},
	"str":   {},
	"i8":    {},
	"i16":   {},
	"i32":   {},
	"i64":   {},
	"i128":  {},
	"isize": {},
	"u8":    {},
	"u16":   {},
	"u32":   {},
	"u64":   {},
	"u128":  {},
	"usize": {},
	"f32":   {},
	"f64":   {},
}

// lexIdentOrKeyword lexes an identifier, a keyword, or a primitive name.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()

	if _, err := l.eat(); err != nil {
		return nil, err
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		if _, err := l.eat(); err != nil {
			return nil, err
		}
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else if _, ok := primitivePatterns[l.tokBuff.String()]; ok {
		kind = TOK_PRIM
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexLifetime lexes a lifetime tag such as `'static`.
func (l *Lexer) lexLifetime() (*Token, error) {
	l.mark()

	// Skip the leading quote: the token value is just the lifetime's name.
	if _, err := l.skip(); err != nil {
		return nil, err
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		if _, err := l.eat(); err != nil {
			return nil, err
		}
	}

	if l.tokBuff.Len() == 0 {
		return nil, report.Raise(l.getSpan(), "expected lifetime name")
	}

	return l.makeToken(TOK_LIFETIME), nil
}

// -----------------------------------------------------------------------------

// lexIntLit lexes an integer literal such as an array length.
func (l *Lexer) lexIntLit() (*Token, error) {
	l.mark()

	if _, err := l.eat(); err != nil {
		return nil, err
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == '_' {
			// Skip all _ that occur in the literal.
			if _, err := l.skip(); err != nil {
				return nil, err
			}

			continue
		} else if !isDecimalDigit(c) {
			break
		}

		if _, err := l.eat(); err != nil {
			return nil, err
		}
	}

	return l.makeToken(TOK_INTLIT), nil
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal such as an extern ABI name.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()

	if _, err := l.skip(); err != nil {
		return nil, err
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(l.getSpan(), "unclosed string literal")
		case '"':
			if _, err := l.skip(); err != nil {
				return nil, err
			}

			return l.makeToken(TOK_STRINGLIT), nil
		case '\\':
			if _, err := l.skip(); err != nil {
				return nil, err
			}

			c, err = l.eat()
			if err != nil {
				return nil, err
			} else if c == -1 {
				return nil, report.Raise(l.getSpan(), "unclosed string literal")
			}
		default:
			if _, err := l.eat(); err != nil {
				return nil, err
			}
		}
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.  If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the descriptor without moving the lexer
// forward or writing the rune to the token buffer.  If the lexer encounters
// an EOF, -1 is returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.src.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
