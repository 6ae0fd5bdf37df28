package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextInfo_Add(t *testing.T) {
	a := TextInfo{Chars: 3, UTF16: 3, LineBreaks: 1}
	b := TextInfo{Chars: 2, UTF16: 4, LineBreaks: 0}
	got := a.Add(b)
	assert.Equal(t, TextInfo{Chars: 5, UTF16: 7, LineBreaks: 1}, got)
}

func TestTextInfo_Sub(t *testing.T) {
	a := TextInfo{Chars: 5, UTF16: 7, LineBreaks: 1}
	b := TextInfo{Chars: 2, UTF16: 4, LineBreaks: 0}
	got := a.Sub(b)
	assert.Equal(t, TextInfo{Chars: 3, UTF16: 3, LineBreaks: 1}, got)
}

func TestTextInfo_LenLines(t *testing.T) {
	assert.Equal(t, 1, TextInfo{Chars: 0}.LenLines())
	assert.Equal(t, 1, TextInfo{Chars: 5, LineBreaks: 0}.LenLines())
	assert.Equal(t, 3, TextInfo{Chars: 5, LineBreaks: 2}.LenLines())
}

func TestCombine_NoCorrection(t *testing.T) {
	left := summarize("foo")
	right := summarize("bar")
	combined := Combine(left, right)
	assert.Equal(t, 0, combined.LineBreaks)
	assert.False(t, combined.StartsWithLF)
	assert.False(t, combined.EndsWithCR)
}

func TestCombine_CRLFSeamCorrection(t *testing.T) {
	left := summarize("foo\r")
	right := summarize("\nbar")
	assert.Equal(t, 1, left.LineBreaks)
	assert.Equal(t, 1, right.LineBreaks)

	combined := Combine(left, right)
	assert.Equal(t, 1, combined.LineBreaks, "CRLF split across the seam must count once")
	assert.Equal(t, 8, combined.Chars)
	assert.False(t, combined.StartsWithLF, "combined summary starts with 'f', not LF")
	assert.False(t, combined.EndsWithCR, "combined summary ends with 'r', not CR")
}

func TestCombine_IdentityOnEmpty(t *testing.T) {
	s := summarize("hello\nworld")
	assert.Equal(t, s, Combine(emptySummary, s))
	assert.Equal(t, s, Combine(s, emptySummary))
	assert.Equal(t, emptySummary, Combine(emptySummary, emptySummary))
}

func TestCombine_NoFalseCorrectionWithoutAdjacency(t *testing.T) {
	// left ends with CR but right does not start with LF: no correction.
	left := summarize("foo\r")
	right := summarize("bar")
	combined := Combine(left, right)
	assert.Equal(t, 1, combined.LineBreaks)

	// left does not end with CR, right starts with LF: no correction.
	left2 := summarize("foo")
	right2 := summarize("\nbar")
	combined2 := Combine(left2, right2)
	assert.Equal(t, 1, combined2.LineBreaks)
}
