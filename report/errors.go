package report

import "fmt"

// TextSpan represents a range or "span" of descriptor text.  It is used to
// specify erroneous or otherwise significant text within a type descriptor.
// Text spans are inclusive on both sides: the starting position is the
// position of the first character in the span and the ending position is the
// position of the last character in the span.  The line and column numbers
// are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// -----------------------------------------------------------------------------

// ParseError is an error produced while lexing or parsing a type descriptor.
// Parse errors are never fatal: the public naming entry points absorb them
// and substitute a sentinel name instead.
type ParseError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (pe *ParseError) Error() string {
	return pe.Message
}

// Raise creates a new parse error over the given span.
func Raise(span *TextSpan, msg string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(msg, args...), Span: span}
}
