package duotmpl

import (
	"fmt"
	"strings"
)

// Tokenize scans the full source and returns a flat, ordered sequence of
// tokens: alternating Text runs and parsed directives. It never fails for
// well-formed input; a candidate opener that does not parse as any of the
// ten token shapes falls through and is folded into the surrounding Text.
//
// sink receives deprecation warnings for bare @key/@value/@index usage
// outside any interpolation braces. A nil sink discards them.
func Tokenize(source *Source, sink DiagnosticSink) ([]Token, error) {
	if sink == nil {
		sink = NopSink{}
	}

	var tokens []Token
	input := source.Full()
	index := 0

	emitText := func(upto int) {
		if upto > 0 {
			tokens = append(tokens, &Text{span: input.Slice(0, upto)})
		}
	}

	for {
		scanFrom := input.Slice(index, input.Len())
		m, found := defaultAnchorMatcher.next(scanFrom.Text())
		if !found {
			index = input.Len()
			break
		}

		switch m.kind {
		case anchorOpener:
			index += m.start
			candidate := input.Slice(index, input.Len())
			rest, tok, err := token(candidate)
			if err == nil {
				if rest.Offset() == candidate.Offset() {
					return nil, &InvariantError{Span: candidate}
				}
				debugf("matched %T at byte %d", tok, index)
				emitText(index)
				tokens = append(tokens, tok)
				input = rest
				index = 0
				continue
			}
			debugf("opener candidate at byte %d failed to parse: %v", index, err)
			index = advanceOneRune(candidate.Text(), index)

		case anchorEscape:
			start := index + m.start
			emitText(start)
			input = input.Slice(start+1, input.Len())
			index = m.end - m.start - 1

		case anchorBareKeyword:
			start := index + m.start
			end := index + m.end
			span := input.Slice(start, end)
			_, expr, err := ParseExpression(span)
			if err != nil {
				index = advanceOneRune(input.Slice(index, input.Len()).Text(), index)
				continue
			}
			emitText(start)
			tokens = append(tokens, &InterpEscaped{span: span, Expr: expr})
			emitDeprecationWarning(sink, span)
			input = input.Slice(end, input.Len())
			index = 0
		}
	}

	emitText(index)
	return tokens, nil
}

// advanceOneRune bumps index forward by one UTF-8 code point so a
// false-positive opener can't stall the scan.
func advanceOneRune(remaining string, index int) int {
	if len(remaining) == 0 {
		return index + 1
	}
	n := 1
	for n < len(remaining) && isUTF8Continuation(remaining[n]) {
		n++
	}
	return index + n
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// emitDeprecationWarning sends the multi-line bare-keyword warning: a
// message line, the source line, and a caret underline, plus a suggested
// rewrite wrapping the keyword in braces.
func emitDeprecationWarning(sink DiagnosticSink, span Span) {
	line, col, indent, lineText := span.Position()
	filename := span.Source().Filename
	keyword := span.Text()

	sink.Warn(fmt.Sprintf("%s:%d:%d: warning: bare %q is deprecated, wrap it in braces", filename, line, col, keyword))
	sink.Warn(lineText)
	sink.Warn(indent + strings.Repeat("^", span.Len()))
	sink.Warn(fmt.Sprintf("suggestion: replace with \"{ %s }\"", keyword))
}
