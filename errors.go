package duotmpl

import "fmt"

// ParseError is returned by ParseExpression, ParsePath, and the token
// recognizers when no alternative in the grammar matches at the given
// position. It is a recoverable condition from the tokenizer's point of
// view: the caller is free to treat the candidate text as a false
// positive and fall back to plain text.
type ParseError struct {
	Span    Span
	Message string
}

func (e *ParseError) Error() string {
	if e.Span.Source() == nil {
		return e.Message
	}
	line, col, _, _ := e.Span.Position()
	return fmt.Sprintf("%s:%d:%d: %s", e.Span.Source().Filename, line, col, e.Message)
}

// InvariantError reports a tokenizer implementation bug: a recognizer
// claimed success but consumed zero bytes, which would otherwise spin the
// scanner forever. It should never be observable for well-formed
// recognizers; Tokenize returns it instead of looping.
type InvariantError struct {
	Span Span
}

func (e *InvariantError) Error() string {
	line, col, _, _ := e.Span.Position()
	filename := ""
	if e.Span.Source() != nil {
		filename = e.Span.Source().Filename
	}
	return fmt.Sprintf("%s:%d:%d: internal error: a token recognizer consumed zero bytes", filename, line, col)
}
