package duotmpl

import "strings"

// token attempts every recognizer shape at the start of input, in order of
// decreasing opener length so that "{{{" beats "{{" beats "{", and "<!--"
// dispatches across its five legacy shapes. It is the single entry point
// Tokenize calls once an opener anchor has matched.
func token(input Span) (rest Span, tok Token, err error) {
	switch {
	case input.StartsWith("{{{"):
		if rest, tok, err = tryBraceTriple(input); err == nil {
			return rest, tok, nil
		}
		return input, nil, err
	case input.StartsWith("<!--"):
		return tryLegacy(input)
	case input.StartsWith("{{"):
		if rest, tok, err = interpRaw(input); err == nil {
			return rest, tok, nil
		}
		return input, nil, err
	case input.StartsWith("{"):
		return interpEscaped(input)
	}
	return input, nil, &ParseError{Span: input, Message: "no token opener at this position"}
}

func tryBraceTriple(input Span) (Span, Token, error) {
	if rest, tok, err := newIf(input); err == nil {
		return rest, tok, nil
	}
	if rest, tok, err := newEach(input); err == nil {
		return rest, tok, nil
	}
	if rest, tok, err := newElse(input); err == nil {
		return rest, tok, nil
	}
	if rest, tok, err := newEnd(input); err == nil {
		return rest, tok, nil
	}
	return input, nil, &ParseError{Span: input, Message: "unrecognized '{{{' directive"}
}

func tryLegacy(input Span) (Span, Token, error) {
	if rest, tok, err := legacyIf(input); err == nil {
		return rest, tok, nil
	}
	if rest, tok, err := legacyBegin(input); err == nil {
		return rest, tok, nil
	}
	if rest, tok, err := legacyElse(input); err == nil {
		return rest, tok, nil
	}
	if rest, tok, err := legacyEnd(input); err == nil {
		return rest, tok, nil
	}
	return input, nil, &ParseError{Span: input, Message: "unrecognized '<!--' directive"}
}

// interpEscaped matches "{" ws expression ws "}".
func interpEscaped(input Span) (Span, Token, error) {
	if !input.StartsWith("{") {
		return input, nil, &ParseError{Span: input, Message: "expected '{'"}
	}
	cur := skipWS(input.Slice(1, input.Len()))
	cur, expr, err := ParseExpression(cur)
	if err != nil {
		return input, nil, err
	}
	cur = skipWS(cur)
	if !cur.StartsWith("}") {
		return input, nil, &ParseError{Span: cur, Message: "expected '}'"}
	}
	closeSpan := cur.Slice(0, 1)
	rest := cur.Slice(1, cur.Len())
	return rest, &InterpEscaped{span: spanCover(input.Slice(0, 1), closeSpan), Expr: expr}, nil
}

// interpRaw matches "{{" ws expression ws "}}".
func interpRaw(input Span) (Span, Token, error) {
	if !input.StartsWith("{{") {
		return input, nil, &ParseError{Span: input, Message: "expected '{{'"}
	}
	cur := skipWS(input.Slice(2, input.Len()))
	cur, expr, err := ParseExpression(cur)
	if err != nil {
		return input, nil, err
	}
	cur = skipWS(cur)
	if !cur.StartsWith("}}") {
		return input, nil, &ParseError{Span: cur, Message: "expected '}}'"}
	}
	closeSpan := cur.Slice(0, 2)
	rest := cur.Slice(2, cur.Len())
	return rest, &InterpRaw{span: spanCover(input.Slice(0, 2), closeSpan), Expr: expr}, nil
}

// matchBraceKeyword matches "{{{" ws keyword, returning what follows the
// keyword with leading whitespace already stripped.
func matchBraceKeyword(input Span, keyword string) (Span, bool) {
	if !input.StartsWith("{{{") {
		return input, false
	}
	cur := skipWS(input.Slice(3, input.Len()))
	if !cur.StartsWith(keyword) {
		return input, false
	}
	after := cur.Slice(len(keyword), cur.Len())
	return after, true
}

func matchTripleClose(cur Span) (Span, Span, bool) {
	cur = skipWS(cur)
	if !cur.StartsWith("}}}") {
		return cur, Span{}, false
	}
	return cur.Slice(3, cur.Len()), cur.Slice(0, 3), true
}

func newIf(input Span) (Span, Token, error) {
	after, ok := matchBraceKeyword(input, "if")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '{{{ if'"}
	}
	cur := skipWS(after)
	cur, subject, err := ParseExpression(cur)
	if err != nil {
		return input, nil, err
	}
	rest, closeSpan, ok := matchTripleClose(cur)
	if !ok {
		return input, nil, &ParseError{Span: cur, Message: "expected '}}}'"}
	}
	return rest, &If{span: spanCover(input.Slice(0, 3), closeSpan), Subject: subject}, nil
}

func newEach(input Span) (Span, Token, error) {
	after, ok := matchBraceKeyword(input, "each")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '{{{ each'"}
	}
	cur := skipWS(after)
	cur, subject, err := ParseExpression(cur)
	if err != nil {
		return input, nil, err
	}
	rest, closeSpan, ok := matchTripleClose(cur)
	if !ok {
		return input, nil, &ParseError{Span: cur, Message: "expected '}}}'"}
	}
	return rest, &Each{span: spanCover(input.Slice(0, 3), closeSpan), Subject: subject}, nil
}

func newElse(input Span) (Span, Token, error) {
	after, ok := matchBraceKeyword(input, "else")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '{{{ else'"}
	}
	rest, closeSpan, ok := matchTripleClose(after)
	if !ok {
		return input, nil, &ParseError{Span: after, Message: "expected '}}}'"}
	}
	return rest, &Else{span: spanCover(input.Slice(0, 3), closeSpan)}, nil
}

func newEnd(input Span) (Span, Token, error) {
	after, ok := matchBraceKeyword(input, "end")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '{{{ end'"}
	}
	rest, closeSpan, ok := matchTripleClose(after)
	if !ok {
		return input, nil, &ParseError{Span: after, Message: "expected '}}}'"}
	}
	return rest, &End{span: spanCover(input.Slice(0, 3), closeSpan)}, nil
}

// matchLegacyKeyword matches "<!--" ws keyword, case-sensitive per the
// grammar's literal uppercase keywords.
func matchLegacyKeyword(input Span, keyword string) (Span, bool) {
	if !input.StartsWith("<!--") {
		return input, false
	}
	cur := skipWS(input.Slice(4, input.Len()))
	if !cur.StartsWith(keyword) {
		return input, false
	}
	after := cur.Slice(len(keyword), cur.Len())
	return after, true
}

func matchLegacyClose(cur Span) (Span, Span, bool) {
	cur = skipWS(cur)
	if !cur.StartsWith("-->") {
		return cur, Span{}, false
	}
	return cur.Slice(3, cur.Len()), cur.Slice(0, 3), true
}

func legacyIf(input Span) (Span, Token, error) {
	after, ok := matchLegacyKeyword(input, "IF")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '<!-- IF'"}
	}
	cur := skipWS(after)
	cur, subject, err := ParseExpression(cur)
	if err != nil {
		return input, nil, err
	}
	rest, closeSpan, ok := matchLegacyClose(cur)
	if !ok {
		return input, nil, &ParseError{Span: cur, Message: "expected '-->'"}
	}
	if lh, ok := subject.(*LegacyHelper); ok {
		injectRoot(lh)
	}
	return rest, &LegacyIf{span: spanCover(input.Slice(0, 4), closeSpan), Subject: subject}, nil
}

func legacyBegin(input Span) (Span, Token, error) {
	after, ok := matchLegacyKeyword(input, "BEGIN")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '<!-- BEGIN'"}
	}
	cur := skipWS(after)
	cur, subject, err := ParseExpression(cur)
	if err != nil {
		return input, nil, err
	}
	rest, closeSpan, ok := matchLegacyClose(cur)
	if !ok {
		return input, nil, &ParseError{Span: cur, Message: "expected '-->'"}
	}
	return rest, &LegacyBegin{span: spanCover(input.Slice(0, 4), closeSpan), Subject: subject}, nil
}

func legacyElse(input Span) (Span, Token, error) {
	after, ok := matchLegacyKeyword(input, "ELSE")
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '<!-- ELSE'"}
	}
	rest, closeSpan, ok := matchLegacyClose(after)
	if !ok {
		return input, nil, &ParseError{Span: after, Message: "expected '-->'"}
	}
	return rest, &LegacyElse{span: spanCover(input.Slice(0, 4), closeSpan)}, nil
}

// legacyEnd matches "<!--" ws ("ENDIF" | "END") ws take_until("-->") "-->".
// ENDIF is tried first since it is the longer of the two and END is a
// prefix of it.
func legacyEnd(input Span) (Span, Token, error) {
	var after Span
	var ok bool
	if after, ok = matchLegacyKeyword(input, "ENDIF"); !ok {
		after, ok = matchLegacyKeyword(input, "END")
	}
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected '<!-- END' or '<!-- ENDIF'"}
	}
	cur := skipWS(after)
	idx := strings.Index(cur.Text(), "-->")
	if idx < 0 {
		return input, nil, &ParseError{Span: cur, Message: "unterminated legacy END directive"}
	}
	raw := cur.Slice(0, idx).TrimEnd()
	closeSpan := cur.Slice(idx, idx+3)
	rest := cur.Slice(idx+3, cur.Len())
	return rest, &LegacyEnd{span: spanCover(input.Slice(0, 4), closeSpan), SubjectRaw: raw}, nil
}

// injectRoot prepends an implicit Path([@root]) argument to a LegacyIf's
// subject when that subject is itself a LegacyHelper call. A bare legacy
// helper (no explicit argument list) already carries a synthetic
// Path([@value]) argument by the time this runs, so lh.Args is never
// empty; the injection point is simply the position immediately before
// the current first argument.
func injectRoot(lh *LegacyHelper) {
	src := lh.span.Source()
	pos := lh.Args[0].Span().Offset()
	zero := src.Span(pos, 0)
	kw := NewSource(src.Filename, "@root").Full()
	root := &PathExpr{span: zero, Path: PathBuf{{Span: kw}}}
	lh.Args = append([]Expression{root}, lh.Args...)
}
