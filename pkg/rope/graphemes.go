package rope

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
)

// Grapheme is a user-perceived character (grapheme cluster) — possibly
// several Unicode scalar values combined, such as an emoji with a
// variation selector or a base letter plus combining marks. Grapheme
// boundaries are not part of the core data model (spec §3 indexes only
// characters); this is a supplemented, uax29-backed convenience built on
// top of it.
type Grapheme struct {
	Text     string
	StartPos int // character position in the rope where this grapheme starts
	CharLen  int // length in characters (Unicode scalar values)
}

// String returns the grapheme's text.
func (g Grapheme) String() string { return g.Text }

// Len returns the grapheme's length in characters.
func (g Grapheme) Len() int { return g.CharLen }

// GraphemeIterator walks the grapheme clusters of a Rope in order.
type GraphemeIterator struct {
	graphemes []Grapheme
	index     int
}

// Graphemes segments the rope's content into grapheme clusters using the
// Unicode text segmentation algorithm (UAX #29) and returns an iterator
// over them.
func (r Rope) Graphemes() *GraphemeIterator {
	if r.LenChars() == 0 {
		return &GraphemeIterator{index: -1}
	}
	content := r.ToString()
	segments := graphemes.SegmentAllString(content)

	result := make([]Grapheme, len(segments))
	charPos := 0
	for i, seg := range segments {
		charLen := utf8.RuneCountInString(seg)
		result[i] = Grapheme{Text: seg, StartPos: charPos, CharLen: charLen}
		charPos += charLen
	}
	return &GraphemeIterator{graphemes: result, index: -1}
}

// Next advances to the next grapheme cluster, returning false once
// exhausted.
func (it *GraphemeIterator) Next() bool {
	if it.index+1 >= len(it.graphemes) {
		it.index = len(it.graphemes)
		return false
	}
	it.index++
	return true
}

// Current returns the grapheme cluster Next most recently advanced to.
func (it *GraphemeIterator) Current() Grapheme {
	if it.index < 0 || it.index >= len(it.graphemes) {
		return Grapheme{}
	}
	return it.graphemes[it.index]
}

// Collect consumes the remainder of the iterator into a slice.
func (it *GraphemeIterator) Collect() []Grapheme {
	var out []Grapheme
	for it.Next() {
		out = append(out, it.Current())
	}
	return out
}

// LenGraphemes returns the number of grapheme clusters in the rope. O(N).
func (r Rope) LenGraphemes() int {
	return len(r.Graphemes().graphemes)
}

// IsGraphemeBoundary reports whether charIdx falls on a grapheme cluster
// boundary: 0, LenChars(), or the start of some grapheme.
func (r Rope) IsGraphemeBoundary(charIdx int) bool {
	if charIdx == 0 || charIdx == r.LenChars() {
		return true
	}
	if charIdx < 0 || charIdx > r.LenChars() {
		return false
	}
	it := r.Graphemes()
	for it.Next() {
		g := it.Current()
		if g.StartPos == charIdx {
			return true
		}
		if g.StartPos > charIdx {
			return false
		}
	}
	return false
}
