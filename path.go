package duotmpl

import "strings"

// pathKeywords are the special loop/scope keywords recognized as a single
// whole path segment; none is a prefix of another, so checking them in any
// order against the input is sufficient.
var pathKeywords = []string{"@root", "@key", "@index", "@value", "@first", "@last"}

// identChars holds every byte legal inside a path identifier: alphanumerics
// plus the extra punctuation the grammar allows mid-name.
const identChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-:@"

func isIdentByte(b byte) bool {
	return strings.IndexByte(identChars, b) >= 0
}

// PathPart is one segment of a PathBuf: either a relative-scope marker
// ("./" or "../") or an identifier. Both shapes share this representation;
// callers distinguish them by inspecting the part's span text.
type PathPart struct {
	Span Span
}

// IsScope reports whether this part is a "./" or "../" relative-scope
// marker rather than an identifier segment.
func (p PathPart) IsScope() bool {
	t := p.Span.Text()
	return t == "./" || t == "../"
}

// PathBuf is an ordered, non-empty sequence of path parts: zero or more
// leading scope markers followed by one or more identifier segments.
type PathBuf []PathPart

// scanIdentifier consumes the longest run of identifier bytes at the start
// of s. If the run ends in exactly "--" immediately followed by '>', the
// trailing "--" is handed back to rest: it belongs to an HTML comment
// terminator, not the identifier (so that "x-->" inside <!-- IF x--> yields
// identifier "x", not "x--").
func scanIdentifier(s Span) (rest, id Span, ok bool) {
	t := s.Text()
	i := 0
	for i < len(t) && isIdentByte(t[i]) {
		i++
	}
	if i >= 2 && t[i-2] == '-' && t[i-1] == '-' && i < len(t) && t[i] == '>' {
		i -= 2
	}
	if i == 0 {
		return s, Span{}, false
	}
	return s.Slice(i, s.Len()), s.Slice(0, i), true
}

// ParsePath recognizes a dotted identifier path or a special keyword at
// the start of input, per the path grammar:
//
//	path := keyword | ("./" | "../")* identifier ("." identifier)*
//
// On success it returns the unconsumed remainder and a Path expression. On
// failure it returns a *ParseError and leaves input untouched.
func ParsePath(input Span) (rest Span, expr Expression, err error) {
	for _, kw := range pathKeywords {
		if input.StartsWith(kw) {
			kwSpan := input.Slice(0, len(kw))
			return input.Slice(len(kw), input.Len()), &PathExpr{
				span: kwSpan,
				Path: PathBuf{{Span: kwSpan}},
			}, nil
		}
	}

	cur := input
	var parts []PathPart
scopeLoop:
	for {
		switch {
		case cur.StartsWith("../"):
			parts = append(parts, PathPart{Span: cur.Slice(0, 3)})
			cur = cur.Slice(3, cur.Len())
		case cur.StartsWith("./"):
			parts = append(parts, PathPart{Span: cur.Slice(0, 2)})
			cur = cur.Slice(2, cur.Len())
		default:
			break scopeLoop
		}
	}

	next, id, ok := scanIdentifier(cur)
	if !ok {
		return input, nil, &ParseError{Span: input, Message: "expected a path"}
	}
	parts = append(parts, PathPart{Span: id})
	cur = next

	for cur.StartsWith(".") {
		afterDot := cur.Slice(1, cur.Len())
		next, id, ok := scanIdentifier(afterDot)
		if !ok {
			break
		}
		parts = append(parts, PathPart{Span: id})
		cur = next
	}

	span := spanCover(parts[0].Span, parts[len(parts)-1].Span)
	return cur, &PathExpr{span: span, Path: PathBuf(parts)}, nil
}
