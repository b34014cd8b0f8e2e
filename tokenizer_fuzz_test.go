package duotmpl

import "testing"

// FuzzTokenize exercises the tokenizer directly, without any downstream AST
// or rendering layer, looking for panics, errors other than
// *InvariantError, and empty Text tokens.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"plain text",
		"{prop}",
		"{{prop}}",
		"{{{ if abc }}}",
		"{{{ each abc.def }}}",
		"{{{ else }}}",
		"{{{ end }}}",
		"<!--IF abc-->",
		"<!--BEGIN abc.def-->",
		"<!--ELSE-->",
		"<!--END-->",
		"<!--ENDIF abc-->",
		"function.foo",
		"function.bar, a, b",
		`"string with \"escape\""`,
		"! negated",
		"./../abc.def",
		"@value",
		"@key",
		"@index",
		`\{ \{{ \{{{ \<!--`,
		"{{{ each /abc }}}",
		"<!-- IF cond-->",
		"before {{{ if abc }}} one {{{ else }}} two {{{ end }}} tail",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		src := NewSource("fuzz.tmpl", input)
		tokens, err := Tokenize(src, nil)
		if err != nil {
			var invErr *InvariantError
			if !asInvariantError(err, &invErr) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		for _, tok := range tokens {
			if txt, ok := tok.(*Text); ok && txt.Span().Len() == 0 {
				t.Fatalf("empty Text token for input %q", input)
			}
		}
	})
}

func asInvariantError(err error, target **InvariantError) bool {
	ie, ok := err.(*InvariantError)
	if ok {
		*target = ie
	}
	return ok
}
