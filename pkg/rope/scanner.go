package rope

import "unicode/utf8"

// WideLineBreaks controls whether NEL (U+0085), LS (U+2028), and PS
// (U+2029) are recognized as line-break terminators in addition to LF, CR,
// and CRLF. The spec's conservative default (spec §4.2, §9 Open Questions)
// is to recognize only LF/CR/CRLF; set this to true to additionally
// recognize the wider Unicode set. The choice affects every LineBreakScanner
// function and every rope built or queried afterward — it is a
// package-level switch, not a per-rope option, and changing it mid-program
// changes the answer CountLineBreaks (and everything derived from it) gives
// for the same string.
var WideLineBreaks = false

// SetWideLineBreaks sets WideLineBreaks. Provided alongside the variable so
// callers that prefer not to assign a package-level var directly have a
// documented entry point.
func SetWideLineBreaks(enabled bool) {
	WideLineBreaks = enabled
}

func isWideBreakRune(r rune) bool {
	switch r {
	case '', ' ', ' ':
		return true
	default:
		return false
	}
}

// CountChars returns the number of Unicode scalar values (characters) in s.
// Each byte of an invalid UTF-8 sequence decodes as one U+FFFD
// replacement character per spec §9's resolution of lone surrogate halves.
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}

// CountUTF16 returns the number of UTF-16 code units s would occupy: 1 per
// character in the Basic Multilingual Plane, 2 per supplementary-plane
// character (spec §3).
func CountUTF16(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Width(r)
	}
	return n
}

func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// lineStarts returns the character index at which every line of s begins,
// starting with 0. len(result) == CountLineBreaks(s)+1. A CRLF pair is
// treated as a single terminator: both the CR and the LF it precedes
// belong to the line being terminated, and the next line starts
// immediately after the LF (spec §4.1, §4.2).
func lineStarts(s string) []int {
	starts := make([]int, 1, 4)
	starts[0] = 0

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		switch {
		case runes[i] == '\r':
			i++
			if i < len(runes) && runes[i] == '\n' {
				i++
			}
			starts = append(starts, i)
		case runes[i] == '\n':
			i++
			starts = append(starts, i)
		case WideLineBreaks && isWideBreakRune(runes[i]):
			i++
			starts = append(starts, i)
		default:
			i++
		}
	}
	return starts
}

// CountLineBreaks returns the number of line-break terminators in s. A
// CRLF pair counts once.
func CountLineBreaks(s string) int {
	return len(lineStarts(s)) - 1
}

// CharToUTF16CUIdx converts a character index within s to the UTF-16
// code-unit offset of the start of that character.
func CharToUTF16CUIdx(s string, charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	units, n := 0, 0
	for _, r := range s {
		if n == charIdx {
			break
		}
		units += utf16Width(r)
		n++
	}
	return units
}

// UTF16CUToCharIdx converts a UTF-16 code-unit offset to the character
// index containing it. An offset that lands between the two code units of
// a supplementary-plane character is snapped down to the start of that
// character (spec §6, resolved in SPEC_FULL.md Open Question 5).
func UTF16CUToCharIdx(s string, utf16Idx int) int {
	if utf16Idx <= 0 {
		return 0
	}
	units, charIdx := 0, 0
	for _, r := range s {
		w := utf16Width(r)
		if units+w > utf16Idx {
			return charIdx
		}
		units += w
		charIdx++
		if units == utf16Idx {
			return charIdx
		}
	}
	return charIdx
}

// CharToLineIdx returns the 0-based line number containing character index
// charIdx. Characters before any line break are on line 0; both characters
// of a CRLF pair belong to the line they terminate, not the line that
// follows it.
func CharToLineIdx(s string, charIdx int) int {
	starts := lineStarts(s)
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= charIdx {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineToCharIdx returns the character index at which line n begins. n may
// equal CountLineBreaks(s)+1 (i.e. len_lines), in which case it returns
// CountChars(s) (spec §4.5: "line_to_char(len_lines) is permitted and
// equals len_chars").
func LineToCharIdx(s string, n int) int {
	starts := lineStarts(s)
	if n < 0 {
		n = 0
	}
	if n >= len(starts) {
		return utf8.RuneCountInString(s)
	}
	return starts[n]
}

// charIdxToByteIdx converts a character index to the byte offset of that
// character's first byte, for slicing the underlying UTF-8 string.
// charIdx == CountChars(s) is valid and returns len(s).
func charIdxToByteIdx(s string, charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == charIdx {
			return i
		}
		n++
	}
	return len(s)
}

// startsWithLF reports whether s's first character is LF.
func startsWithLF(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r == '\n'
}

// endsWithCR reports whether s's last character is CR.
func endsWithCR(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r == '\r'
}

// summarize computes the full Summary of a raw string in one pass plus the
// edge checks; used whenever a leaf's content is set or replaced.
func summarize(s string) Summary {
	return Summary{
		TextInfo: TextInfo{
			Chars:      CountChars(s),
			UTF16:      CountUTF16(s),
			LineBreaks: CountLineBreaks(s),
		},
		StartsWithLF: startsWithLF(s),
		EndsWithCR:   endsWithCR(s),
	}
}

// chooseLeafSplit adjusts a character split index target within s away
// from a CR|LF boundary, when the caller is free to choose where to split
// (bulk leaf chunking, post-overflow rebalancing — spec §4.3, resolved in
// SPEC_FULL.md Open Question 6). It never moves target past the string's
// bounds and is a no-op unless target sits strictly between a CR and the
// LF that immediately follows it.
func chooseLeafSplit(s string, target int) int {
	if target <= 0 || target >= utf8.RuneCountInString(s) {
		return target
	}
	before := charIdxToByteIdx(s, target-1)
	at := charIdxToByteIdx(s, target)
	prev, _ := utf8.DecodeRuneInString(s[before:])
	cur, _ := utf8.DecodeRuneInString(s[at:])
	if prev == '\r' && cur == '\n' {
		return target + 1
	}
	return target
}
