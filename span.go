package duotmpl

import "strings"

// Source holds the full text of a template being tokenized, plus enough
// metadata (a filename) to produce useful diagnostics. Every Span produced
// while tokenizing a given Source points back into this same value, which
// must outlive any Span or Token derived from it.
type Source struct {
	// Filename is used for error messages and diagnostics only; it need
	// not refer to a real file on disk.
	Filename string

	// Text is the complete, unmodified template source.
	Text string
}

// NewSource wraps a filename and the full template text into a Source
// ready for tokenizing.
func NewSource(filename, text string) *Source {
	return &Source{Filename: filename, Text: text}
}

// Span returns a span into the source starting at offset and running for
// length bytes.
func (s *Source) Span(offset, length int) Span {
	return Span{src: s, offset: offset, length: length}
}

// SpanFrom returns a span covering offset through the end of the source.
func (s *Source) SpanFrom(offset int) Span {
	return Span{src: s, offset: offset, length: len(s.Text) - offset}
}

// Full returns a span covering the entire source text.
func (s *Source) Full() Span {
	return Span{src: s, offset: 0, length: len(s.Text)}
}

// Span is a cheap, zero-copy reference into a Source's text: a byte offset
// and a length, plus a back-reference to the Source so that line/column
// information can be recovered on demand. Two spans are Equal only if they
// reference the same Source and cover the same byte range.
type Span struct {
	src    *Source
	offset int
	length int
}

// Source returns the Source this span was cut from.
func (s Span) Source() *Source { return s.src }

// Offset returns the byte offset of the start of the span within its Source.
func (s Span) Offset() int { return s.offset }

// Len returns the byte length of the span.
func (s Span) Len() int { return s.length }

// End returns the byte offset immediately past the span.
func (s Span) End() int { return s.offset + s.length }

// IsEmpty reports whether the span covers zero bytes. Zero-width spans are
// used to mark the position of synthesized, implicit arguments.
func (s Span) IsEmpty() bool { return s.length == 0 }

// Text returns the substring of the source text that this span covers.
func (s Span) Text() string {
	if s.src == nil {
		return ""
	}
	return s.src.Text[s.offset : s.offset+s.length]
}

// Slice cuts a sub-span out of s using indices relative to the start of s,
// the same way a string slice expression would.
func (s Span) Slice(start, end int) Span {
	return Span{src: s.src, offset: s.offset + start, length: end - start}
}

// StartsWith reports whether the span's text begins with lit.
func (s Span) StartsWith(lit string) bool {
	return strings.HasPrefix(s.Text(), lit)
}

// EndsWith reports whether the span's text ends with lit.
func (s Span) EndsWith(lit string) bool {
	return strings.HasSuffix(s.Text(), lit)
}

// TrimEnd returns a span with trailing ASCII whitespace removed.
func (s Span) TrimEnd() Span {
	t := s.Text()
	trimmed := strings.TrimRight(t, whitespaceChars)
	return Span{src: s.src, offset: s.offset, length: len(trimmed)}
}

// Equal reports whether two spans reference the same Source and byte range.
func (s Span) Equal(o Span) bool {
	return s.src == o.src && s.offset == o.offset && s.length == o.length
}

// Position resolves the span's start into a 1-based line/column, the text
// of the line it starts on, and an indent string (spaces, with tabs
// preserved) that can be used to left-pad a caret placed under the span
// when it starts and ends on the same line.
func (s Span) Position() (line, column int, indent, lineText string) {
	text := s.src.Text
	offset := s.offset
	if offset > len(text) {
		offset = len(text)
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	column = offset - lineStart + 1

	end := strings.IndexByte(text[lineStart:], '\n')
	if end == -1 {
		lineText = text[lineStart:]
	} else {
		lineText = text[lineStart : lineStart+end]
	}

	indent = buildIndent(lineText, column-1)
	return line, column, indent, lineText
}

// buildIndent produces a string of length n (clamped to len(lineText))
// that mirrors the whitespace of lineText's first n bytes, so a caret line
// printed underneath keeps tabs aligned under tabs.
func buildIndent(lineText string, n int) string {
	if n > len(lineText) {
		n = len(lineText)
	}
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		if lineText[i] == '\t' {
			b[i] = '\t'
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}

// spanCover returns the smallest span that contains both a and b. Both
// spans must reference the same Source.
func spanCover(a, b Span) Span {
	return Span{src: a.src, offset: a.offset, length: b.End() - a.offset}
}

const whitespaceChars = " \t\r\n"

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// skipWS returns s with any leading run of ASCII whitespace removed. A run
// may be empty, so skipWS(s) == s is a valid outcome.
func skipWS(s Span) Span {
	t := s.Text()
	i := 0
	for i < len(t) && isSpaceByte(t[i]) {
		i++
	}
	return s.Slice(i, s.Len())
}
