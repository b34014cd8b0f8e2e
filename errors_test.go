package duotmpl

import (
	"strings"
	"testing"
)

func TestParseErrorIncludesLocation(t *testing.T) {
	src := NewSource("err.tmpl", "line one\n/not-a-path")
	_, _, err := ParsePath(src.Span(len("line one\n"), len("/not-a-path")))
	if err == nil {
		t.Fatal("expected ParsePath to fail on a leading '/'")
	}
	if !strings.Contains(err.Error(), "err.tmpl:2:1") {
		t.Fatalf("error = %q, want it to reference err.tmpl:2:1", err.Error())
	}
}

func TestInvariantErrorMessage(t *testing.T) {
	src := NewSource("err.tmpl", "x")
	err := &InvariantError{Span: src.Span(0, 1)}
	if !strings.Contains(err.Error(), "internal error") {
		t.Fatalf("error = %q, want it to mention an internal error", err.Error())
	}
}
