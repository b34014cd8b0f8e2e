package duotmpl

import "testing"

func pathParts(t *testing.T, expr Expression) []string {
	t.Helper()
	p, ok := expr.(*PathExpr)
	if !ok {
		t.Fatalf("expected *PathExpr, got %T", expr)
	}
	out := make([]string, len(p.Path))
	for i, part := range p.Path {
		out[i] = part.Span.Text()
	}
	return out
}

func TestParsePathDottedSegments(t *testing.T) {
	src := NewSource("t.tmpl", "a.b.c, what")
	rest, expr, err := ParsePath(src.Full())
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := pathParts(t, expr); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("path parts = %v, want [a b c]", got)
	}
	if rest.Text() != ", what" {
		t.Fatalf("rest = %q, want %q", rest.Text(), ", what")
	}
}

func TestParsePathKeywordStopsAtDot(t *testing.T) {
	src := NewSource("t.tmpl", "@value.c")
	rest, expr, err := ParsePath(src.Full())
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := pathParts(t, expr); len(got) != 1 || got[0] != "@value" {
		t.Fatalf("path parts = %v, want [@value]", got)
	}
	if rest.Text() != ".c" {
		t.Fatalf("rest = %q, want %q", rest.Text(), ".c")
	}
}

func TestParsePathScopeMarkers(t *testing.T) {
	src := NewSource("t.tmpl", "./../abc.def")
	rest, expr, err := ParsePath(src.Full())
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	want := []string{"./", "../", "abc", "def"}
	got := pathParts(t, expr)
	if len(got) != len(want) {
		t.Fatalf("path parts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path parts = %v, want %v", got, want)
		}
	}
	if rest.Len() != 0 {
		t.Fatalf("rest = %q, want empty", rest.Text())
	}
}

func TestParsePathIdentifierBackupBeforeCommentClose(t *testing.T) {
	src := NewSource("t.tmpl", "cond-->")
	rest, expr, err := ParsePath(src.Full())
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := pathParts(t, expr); len(got) != 1 || got[0] != "cond" {
		t.Fatalf("path parts = %v, want [cond]", got)
	}
	if rest.Text() != "-->" {
		t.Fatalf("rest = %q, want %q", rest.Text(), "-->")
	}
}

func TestParsePathFailsOnSlash(t *testing.T) {
	src := NewSource("t.tmpl", "/abc")
	if _, _, err := ParsePath(src.Full()); err == nil {
		t.Fatal("expected ParsePath to fail on a leading '/'")
	}
}

func TestScanIdentifierAllowsPunctuation(t *testing.T) {
	src := NewSource("t.tmpl", "bar-baz_qux:ns@tag more")
	rest, id, ok := scanIdentifier(src.Full())
	if !ok {
		t.Fatal("expected scanIdentifier to succeed")
	}
	if id.Text() != "bar-baz_qux:ns@tag" {
		t.Fatalf("id = %q, want %q", id.Text(), "bar-baz_qux:ns@tag")
	}
	if rest.Text() != " more" {
		t.Fatalf("rest = %q, want %q", rest.Text(), " more")
	}
}
