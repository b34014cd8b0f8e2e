// Package duotmpl implements the lexical and expression front-end for a
// dual-syntax template language. It accepts source text written in either
// the brace-delimited "modern" syntax ({ expr }, {{ expr }}, {{{ if expr }}})
// or the HTML-comment "legacy" syntax (<!-- IF expr -->) and tokenizes it
// into a flat sequence of Text runs and directive Tokens, each carrying a
// fully-parsed Expression tree.
//
// Downstream concerns -- matching If/Each/Else/End tokens into block
// structures, evaluating expressions against a data context, and rendering
// output -- are left to other packages. This package only turns source text
// into tokens and expressions, preserving exact byte spans throughout so
// that later stages and diagnostics can always point back at the original
// source.
//
// A tiny example:
//
//	src := duotmpl.NewSource("greeting.tpl", `Hello {{ user.name }}!`)
//	tokens, err := duotmpl.Tokenize(src, nil)
//	if err != nil {
//	    panic(err)
//	}
//	for _, tok := range tokens {
//	    fmt.Printf("%T %q\n", tok, tok.Span().Text())
//	}
package duotmpl
