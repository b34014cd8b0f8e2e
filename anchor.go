package duotmpl

import (
	"sort"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// anchorKind classifies which branch of the main tokenizer loop an anchor
// match belongs to.
type anchorKind int

const (
	anchorEscape anchorKind = iota
	anchorOpener
	anchorBareKeyword
)

// anchorPatterns is the priority-ordered pattern table from the tokenizer
// design: escape-prefixed patterns first so that "\{" beats "{" at the same
// start position, then the two real openers, then the three deprecated bare
// keywords.
var anchorPatterns = []string{
	`\{{{`,
	`\{{`,
	`\{`,
	`\<!--`,
	"{",
	"<!--",
	"@key",
	"@value",
	"@index",
}

func anchorKindFor(patternIndex int) anchorKind {
	switch {
	case patternIndex <= 3:
		return anchorEscape
	case patternIndex <= 5:
		return anchorOpener
	default:
		return anchorBareKeyword
	}
}

// anchorMatcher wraps a precomputed Aho-Corasick trie over anchorPatterns.
// It is built once and is safe for concurrent read-only use across
// goroutines tokenizing distinct sources.
type anchorMatcher struct {
	trie *ahocorasick.Trie
}

var defaultAnchorMatcher = newAnchorMatcher()

func newAnchorMatcher() *anchorMatcher {
	trie := ahocorasick.NewTrieBuilder().AddStrings(anchorPatterns).Build()
	return &anchorMatcher{trie: trie}
}

// anchorMatch is a single resolved anchor occurrence within a scan buffer,
// expressed as byte offsets relative to the start of that buffer.
type anchorMatch struct {
	start, end  int
	patternIdx  int
	kind        anchorKind
}

// next finds the highest-priority anchor match in text at or after the
// start of the slice. Priority is: leftmost start wins; ties broken by
// longest match; remaining ties broken by pattern index (lower index, i.e.
// earlier in anchorPatterns, wins). This reproduces leftmost-first /
// leftmost-longest-with-priority semantics without re-running the trie scan
// per candidate.
func (m *anchorMatcher) next(text string) (anchorMatch, bool) {
	matches := m.trie.MatchString(text)
	if len(matches) == 0 {
		return anchorMatch{}, false
	}
	sort.SliceStable(matches, func(i, j int) bool {
		mi, mj := matches[i], matches[j]
		if mi.Pos() != mj.Pos() {
			return mi.Pos() < mj.Pos()
		}
		li, lj := len(mi.Match()), len(mj.Match())
		if li != lj {
			return li > lj
		}
		return mi.Pattern() < mj.Pattern()
	})
	best := matches[0]
	start := int(best.Pos())
	length := len(best.Match())
	return anchorMatch{
		start:      start,
		end:        start + length,
		patternIdx: best.Pattern(),
		kind:       anchorKindFor(best.Pattern()),
	}, true
}
