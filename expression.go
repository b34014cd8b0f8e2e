package duotmpl

// Expression is a closed sum type over the five expression shapes the
// grammar produces. The set of implementations is fixed; callers are
// expected to switch over the concrete type rather than extend the
// interface.
type Expression interface {
	// Span covers the expression's entire source text.
	Span() Span

	isExpression()
}

// StringLiteral is a quoted string. Its span includes both surrounding
// quotes; escape sequences inside are preserved verbatim, not decoded.
type StringLiteral struct {
	span Span
}

func (e *StringLiteral) Span() Span  { return e.span }
func (e *StringLiteral) isExpression() {}

// PathExpr is a dotted identifier path or special keyword.
type PathExpr struct {
	span Span
	Path PathBuf
}

func (e *PathExpr) Span() Span  { return e.span }
func (e *PathExpr) isExpression() {}

// Negative is a `!`-prefixed expression. Span covers the `!`, any
// whitespace before Inner, and Inner itself.
type Negative struct {
	span  Span
	Inner Expression
}

func (e *Negative) Span() Span  { return e.span }
func (e *Negative) isExpression() {}

// Helper is a modern-syntax call: name(arg, arg, ...).
type Helper struct {
	span Span
	Name Span
	Args []Expression
}

func (e *Helper) Span() Span  { return e.span }
func (e *Helper) isExpression() {}

// LegacyHelper is the older function.name, arg, arg call form. Args is
// never empty: a bare legacy helper with no argument list receives a
// single synthetic Path([@value]) argument with a zero-width span.
type LegacyHelper struct {
	span Span
	Name Span
	Args []Expression
}

func (e *LegacyHelper) Span() Span  { return e.span }
func (e *LegacyHelper) isExpression() {}

// ParseExpression parses a single expression at the start of input,
// trying in order: negation, legacy helper, modern helper, string
// literal, path. The first alternative whose literal prefix matches wins.
// Negation comes before the identifier-based shapes, the "function."
// prefix before a plain helper name, and a helper call before a path so
// that "name(" parses as a call rather than a one-segment path.
func ParseExpression(input Span) (rest Span, expr Expression, err error) {
	if input.StartsWith("!") {
		bang := input.Slice(0, 1)
		afterBang := skipWS(input.Slice(1, input.Len()))
		rest, inner, err := ParseExpression(afterBang)
		if err != nil {
			return input, nil, err
		}
		return rest, &Negative{span: spanCover(bang, inner.Span()), Inner: inner}, nil
	}

	if input.StartsWith("function.") {
		return parseLegacyHelper(input)
	}

	if afterName, name, ok := scanIdentifier(input); ok && afterName.StartsWith("(") {
		return parseHelper(input, afterName, name)
	}

	if input.StartsWith(`"`) {
		return parseStringLiteral(input)
	}

	return ParsePath(input)
}

func parseLegacyHelper(input Span) (Span, Expression, error) {
	afterPrefix := input.Slice(len("function."), input.Len())
	afterName, name, ok := scanIdentifier(afterPrefix)
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected a helper name after 'function.'"}
	}

	peeked := skipWS(afterName)
	var args []Expression
	var rest Span
	if peeked.StartsWith(",") {
		afterComma := skipWS(peeked.Slice(1, peeked.Len()))
		r, list, err := parseExpressionList(afterComma)
		if err != nil {
			return input, nil, err
		}
		args = list
		rest = r
	} else {
		// The keyword has no text of its own in the template, so its part is
		// cut from a one-keyword Source; the expression span stays a
		// zero-width position in the real Source.
		zero := afterName.Source().Span(afterName.Offset(), 0)
		kw := NewSource(afterName.Source().Filename, "@value").Full()
		args = []Expression{&PathExpr{span: zero, Path: PathBuf{{Span: kw}}}}
		rest = afterName
	}

	span := input.Slice(0, rest.Offset()-input.Offset())
	return rest, &LegacyHelper{span: span, Name: name, Args: args}, nil
}

func parseHelper(input, afterName, name Span) (Span, Expression, error) {
	afterParen := afterName.Slice(1, afterName.Len())
	peeked := skipWS(afterParen)

	var args []Expression
	var afterArgs Span
	if peeked.StartsWith(")") {
		afterArgs = peeked
	} else {
		r, list, err := parseExpressionList(peeked)
		if err != nil {
			return input, nil, err
		}
		args = list
		afterArgs = skipWS(r)
	}

	if !afterArgs.StartsWith(")") {
		return input, nil, &ParseError{Span: afterArgs, Message: "expected ')' to close helper call"}
	}
	closeParen := afterArgs.Slice(0, 1)
	rest := afterArgs.Slice(1, afterArgs.Len())
	return rest, &Helper{span: spanCover(name, closeParen), Name: name, Args: args}, nil
}

func parseStringLiteral(input Span) (Span, Expression, error) {
	t := input.Text()
	i := 1
	closed := false
	for i < len(t) {
		switch {
		case t[i] == '\\' && i+1 < len(t):
			i += 2
		case t[i] == '"':
			i++
			closed = true
		default:
			i++
		}
		if closed {
			break
		}
	}
	if !closed {
		return input, nil, &ParseError{Span: input, Message: "unterminated string literal"}
	}
	lit := input.Slice(0, i)
	return input.Slice(i, input.Len()), &StringLiteral{span: lit}, nil
}

// parseExpressionList parses "expression (WS "," WS expression)*" -- one
// or more expressions separated by commas, with optional surrounding
// whitespace around each. The whitespace before a separating comma is
// only consumed once a comma is actually found there; if the lookahead
// past an element is not a comma, that whitespace is left unconsumed so
// the returned remainder starts exactly where the last element ended.
// This keeps the list's own span, and any caller-derived span built from
// the returned remainder, from absorbing trailing whitespace that
// belongs to whatever follows the list. It does not itself consume any
// closing delimiter; callers check for ")" or simply stop where the
// commas run out.
func parseExpressionList(input Span) (Span, []Expression, error) {
	rest, first, err := ParseExpression(input)
	if err != nil {
		return input, nil, err
	}
	args := []Expression{first}
	for {
		peeked := skipWS(rest)
		if !peeked.StartsWith(",") {
			break
		}
		afterComma := skipWS(peeked.Slice(1, peeked.Len()))
		r, e, err := ParseExpression(afterComma)
		if err != nil {
			return input, nil, err
		}
		args = append(args, e)
		rest = r
	}
	return rest, args, nil
}
