package duotmpl

import "testing"

func TestSpanSliceAndText(t *testing.T) {
	src := NewSource("t.tmpl", "hello world")
	full := src.Full()
	s := full.Slice(6, 11)
	if got := s.Text(); got != "world" {
		t.Fatalf("Text() = %q, want %q", got, "world")
	}
	if s.Offset() != 6 || s.Len() != 5 {
		t.Fatalf("Offset/Len = %d/%d, want 6/5", s.Offset(), s.Len())
	}
}

func TestSpanStartsEndsWith(t *testing.T) {
	src := NewSource("t.tmpl", "{{{ end }}}")
	s := src.Full()
	if !s.StartsWith("{{{") {
		t.Fatal("expected StartsWith(\"{{{\") to be true")
	}
	if !s.EndsWith("}}}") {
		t.Fatal("expected EndsWith(\"}}}\") to be true")
	}
}

func TestSpanTrimEnd(t *testing.T) {
	src := NewSource("t.tmpl", "abc.def   ")
	s := src.Full().TrimEnd()
	if s.Text() != "abc.def" {
		t.Fatalf("TrimEnd() = %q, want %q", s.Text(), "abc.def")
	}
}

func TestSpanIsEmpty(t *testing.T) {
	src := NewSource("t.tmpl", "abc")
	zero := src.Span(1, 0)
	if !zero.IsEmpty() {
		t.Fatal("expected zero-width span to report IsEmpty")
	}
	if zero.Text() != "" {
		t.Fatalf("Text() on zero-width span = %q, want empty", zero.Text())
	}
}

func TestSpanEqual(t *testing.T) {
	src := NewSource("t.tmpl", "abcdef")
	a := src.Span(1, 3)
	b := src.Span(1, 3)
	c := src.Span(2, 3)
	if !a.Equal(b) {
		t.Fatal("expected equal spans with same offset/length to be Equal")
	}
	if a.Equal(c) {
		t.Fatal("expected spans with different offsets to not be Equal")
	}
	other := NewSource("t.tmpl", "abcdef")
	d := other.Span(1, 3)
	if a.Equal(d) {
		t.Fatal("expected spans from distinct Source values to not be Equal")
	}
}

func TestSpanPosition(t *testing.T) {
	src := NewSource("t.tmpl", "one\ntwo\nthree")
	s := src.Span(8, 5)
	line, col, _, lineText := s.Position()
	if line != 3 || col != 1 {
		t.Fatalf("Position() line/col = %d/%d, want 3/1", line, col)
	}
	if lineText != "three" {
		t.Fatalf("Position() lineText = %q, want %q", lineText, "three")
	}
}

func TestSpanPositionZeroWidthHasValidSource(t *testing.T) {
	src := NewSource("t.tmpl", "function.foo")
	zero := src.Span(len("function.foo"), 0)
	line, col, _, _ := zero.Position()
	if line != 1 || col != 13 {
		t.Fatalf("Position() on zero-width span = %d/%d, want 1/13", line, col)
	}
}
