package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountChars(t *testing.T) {
	assert.Equal(t, 0, CountChars(""))
	assert.Equal(t, 13, CountChars("Hello, World!"))
	assert.Equal(t, 10, CountChars("Hello, 世界!"))
	assert.Equal(t, 1, CountChars("🌍"))
}

func TestCountUTF16(t *testing.T) {
	assert.Equal(t, 13, CountUTF16("Hello, World!"))
	assert.Equal(t, 10, CountUTF16("Hello, 世界!"))
	assert.Equal(t, 2, CountUTF16("🌍"), "supplementary plane char is a surrogate pair")
}

func TestCountLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"no breaks", "hello", 0},
		{"single LF", "a\nb", 1},
		{"single CR", "a\rb", 1},
		{"CRLF pair counts once", "a\r\nb", 1},
		{"trailing CRLF", "hello\r\n", 1},
		{"multiple", "a\nb\nc\n", 3},
		{"mixed", "a\r\nb\nc\rd", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLineBreaks(tt.s))
		})
	}
}

func TestCharToUTF16CUIdx(t *testing.T) {
	s := "a🌍b"
	assert.Equal(t, 0, CharToUTF16CUIdx(s, 0))
	assert.Equal(t, 1, CharToUTF16CUIdx(s, 1))
	assert.Equal(t, 3, CharToUTF16CUIdx(s, 2))
}

func TestUTF16CUToCharIdx(t *testing.T) {
	s := "a🌍b"
	assert.Equal(t, 0, UTF16CUToCharIdx(s, 0))
	assert.Equal(t, 1, UTF16CUToCharIdx(s, 1))
	assert.Equal(t, 1, UTF16CUToCharIdx(s, 2), "mid-surrogate offset snaps down to character start")
	assert.Equal(t, 2, UTF16CUToCharIdx(s, 3))
}

func TestCharToLineIdx(t *testing.T) {
	s := "foo\r\nbar"
	assert.Equal(t, 0, CharToLineIdx(s, 0))
	assert.Equal(t, 0, CharToLineIdx(s, 3), "CR belongs to the line it terminates")
	assert.Equal(t, 0, CharToLineIdx(s, 4), "LF of a CRLF pair belongs to the line it terminates")
	assert.Equal(t, 1, CharToLineIdx(s, 5))
}

func TestLineToCharIdx(t *testing.T) {
	s := "foo\r\nbar"
	assert.Equal(t, 0, LineToCharIdx(s, 0))
	assert.Equal(t, 5, LineToCharIdx(s, 1))
	assert.Equal(t, CountChars(s), LineToCharIdx(s, 2), "line_to_char(len_lines) equals len_chars")
}

func TestLineStartsRoundTrip(t *testing.T) {
	s := "line1\r\nline2\nline3\rline4"
	starts := lineStarts(s)
	for n, start := range starts {
		assert.Equal(t, start, LineToCharIdx(s, n))
	}
}

func TestChooseLeafSplit(t *testing.T) {
	s := "foo\r\nbar"
	// target 4 sits between CR (index 3) and LF (index 4): shift forward.
	assert.Equal(t, 5, chooseLeafSplit(s, 4))
	// targets away from the seam are untouched.
	assert.Equal(t, 2, chooseLeafSplit(s, 2))
	assert.Equal(t, 0, chooseLeafSplit(s, 0))
	assert.Equal(t, CountChars(s), chooseLeafSplit(s, CountChars(s)))
}

func TestSummarize(t *testing.T) {
	s := summarize("foo\r\nbar")
	assert.Equal(t, 8, s.Chars)
	assert.Equal(t, 1, s.LineBreaks)
	assert.False(t, s.StartsWithLF)
	assert.False(t, s.EndsWithCR)

	s2 := summarize("\nbar")
	assert.True(t, s2.StartsWithLF)

	s3 := summarize("foo\r")
	assert.True(t, s3.EndsWithCR)
}

func TestWideLineBreaks(t *testing.T) {
	s := "a\u2028b"
	assert.Equal(t, 0, CountLineBreaks(s), "NEL/LS/PS are not recognized by default")

	SetWideLineBreaks(true)
	defer SetWideLineBreaks(false)
	assert.Equal(t, 1, CountLineBreaks(s))
}
