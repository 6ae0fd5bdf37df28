package rope

// TextInfo is the additive summary cached at every leaf and internal node:
// the character count, UTF-16 code-unit count, and line-break count of the
// text beneath it. TextInfo forms a monoid under Add with the zero value as
// identity, with one documented exception: concatenating a span ending in
// CR with a span starting in LF over-counts line breaks by exactly one,
// because CRLF counts as a single break (spec §4.1). That correction lives
// in Summary.Combine, not here, so TextInfo itself stays a pure value type.
type TextInfo struct {
	Chars      int
	UTF16      int
	LineBreaks int
}

// Add returns the pointwise sum of two TextInfo values. It does not apply
// the CRLF seam correction; callers that know the adjacent content's
// edges use Summary.Combine instead.
func (a TextInfo) Add(b TextInfo) TextInfo {
	return TextInfo{
		Chars:      a.Chars + b.Chars,
		UTF16:      a.UTF16 + b.UTF16,
		LineBreaks: a.LineBreaks + b.LineBreaks,
	}
}

// Sub returns a-b pointwise, the inverse of Add. Like Add, it applies no
// CRLF seam correction.
func (a TextInfo) Sub(b TextInfo) TextInfo {
	return TextInfo{
		Chars:      a.Chars - b.Chars,
		UTF16:      a.UTF16 - b.UTF16,
		LineBreaks: a.LineBreaks - b.LineBreaks,
	}
}

// LenLines returns the number of lines implied by this TextInfo: line
// breaks + 1 when the span is non-empty, 1 when it is empty (spec §4.2).
func (t TextInfo) LenLines() int {
	if t.Chars == 0 {
		return 1
	}
	return t.LineBreaks + 1
}

// Summary pairs a TextInfo with the two bits of edge information needed to
// apply the CRLF seam correction when two spans are combined: whether the
// span starts with LF and whether it ends with CR (spec §4.1, §4.4).
type Summary struct {
	TextInfo
	StartsWithLF bool
	EndsWithCR   bool
}

// emptySummary is the identity element: combining it with any Summary s
// returns s unchanged.
var emptySummary = Summary{}

// Combine merges two adjacent summaries in left-to-right order, applying
// the CRLF correction when the left summary ends in CR and the right one
// starts with LF. Empty operands are treated as the identity: an empty
// left summary contributes none of its (irrelevant) edge flags, and the
// combined edges come from whichever side is non-empty.
func Combine(left, right Summary) Summary {
	if left.Chars == 0 {
		return right
	}
	if right.Chars == 0 {
		return left
	}
	info := left.TextInfo.Add(right.TextInfo)
	if left.EndsWithCR && right.StartsWithLF {
		info.LineBreaks--
	}
	return Summary{
		TextInfo:     info,
		StartsWithLF: left.StartsWithLF,
		EndsWithCR:   right.EndsWithCR,
	}
}
