package rope

// Rope is a persistent, balanced-tree text container indexed by character
// position (spec §3 "Rope"). The zero value is not usable; use New or
// FromString.
type Rope struct {
	root node
}

// New returns the canonical empty rope: a single empty leaf (spec §4.5 new).
func New() Rope {
	return Rope{root: newLeaf("")}
}

// FromString builds a balanced tree bottom-up from s, chunking it into
// leaves of roughly MaxLeaf/2 UTF-16 code units at character- and
// CRLF-safe boundaries (spec §4.5 from_string).
func FromString(s string) Rope {
	chunks := chunkText(s)
	leaves := make([]node, len(chunks))
	for i, c := range chunks {
		leaves[i] = newLeaf(c)
	}
	return Rope{root: buildFromLeaves(leaves)}
}

// IsEmpty reports whether the rope contains zero characters.
func (r Rope) IsEmpty() bool {
	return r.root.info().Chars == 0
}

// LenChars returns the number of Unicode scalar values in the rope. O(1).
func (r Rope) LenChars() int {
	return r.root.info().Chars
}

// LenUTF16CU returns the number of UTF-16 code units the rope's content
// would occupy. O(1).
func (r Rope) LenUTF16CU() int {
	return r.root.info().UTF16
}

// LenLines returns the number of lines in the rope: line breaks + 1, or 1
// for the empty rope (spec §4.2, §4.5). O(1).
func (r Rope) LenLines() int {
	return r.root.info().LenLines()
}

// TryCharAt returns the character (Unicode scalar value) at index i, or an
// *IndexOutOfBoundsError if i is out of [0, LenChars()) (spec §4.5
// try_char_at, §7 checked style).
func (r Rope) TryCharAt(i int) (rune, error) {
	if err := checkCharIndex(i, r.LenChars(), false); err != nil {
		return 0, err
	}
	return charAt(r.root, i), nil
}

// CharAt returns the character at index i, panicking if i is out of range
// (spec §4.5 char_at, §7 direct style).
func (r Rope) CharAt(i int) rune {
	c, err := r.TryCharAt(i)
	if err != nil {
		panic(err)
	}
	return c
}

// CharToUTF16CU converts a character index to the UTF-16 code-unit offset
// of the start of that character. i may equal LenChars() (spec §6
// open-ended). O(log N).
func (r Rope) CharToUTF16CU(i int) (int, error) {
	if err := checkCharIndex(i, r.LenChars(), true); err != nil {
		return 0, err
	}
	return charToUTF16(r.root, i), nil
}

// UTF16CUToChar converts a UTF-16 code-unit offset to the character index
// containing it. An offset landing mid-surrogate-pair is snapped down to
// the start of that character (SPEC_FULL.md Open Question 5). O(log N).
func (r Rope) UTF16CUToChar(u int) (int, error) {
	if u < 0 || u > r.LenUTF16CU() {
		return 0, outOfBounds(u, r.LenUTF16CU(), BoundUTF16)
	}
	return utf16ToChar(r.root, u), nil
}

// CharToLine returns the 0-based line number containing character index i
// (spec §4.5 char_to_line). O(log N).
func (r Rope) CharToLine(i int) (int, error) {
	if err := checkCharIndex(i, r.LenChars(), true); err != nil {
		return 0, err
	}
	return charToLineRec(r.root, i, false), nil
}

// LineToChar returns the character index at which line n begins. n may
// equal LenLines(), in which case it returns LenChars() (spec §4.5
// line_to_char). O(log N).
func (r Rope) LineToChar(n int) (int, error) {
	if n < 0 || n > r.LenLines() {
		return 0, outOfBounds(n, r.LenLines(), BoundLines)
	}
	if n == r.LenLines() {
		return r.LenChars(), nil
	}
	return lineToCharRec(r.root, n, false), nil
}

// Slice returns a new rope containing exactly the character range
// [start, end) (spec §4.5 slice). O(log N + k).
func (r Rope) Slice(start, end int) (Rope, error) {
	if err := checkCharRange(start, end, r.LenChars()); err != nil {
		return Rope{}, err
	}
	return FromString(sliceTree(r.root, start, end)), nil
}

// Append concatenates two ropes, applying the CRLF seam correction, and
// returns a new rope whose height is at most max(h1, h2)+1 (spec §4.5
// append, §4.6). O(|height(r) - height(other)|).
func (r Rope) Append(other Rope) Rope {
	return Rope{root: appendNodes(r.root, other.root)}
}

// SplitAt splits the rope at character index i into two ropes whose
// concatenation reproduces the receiver exactly (spec §4.5 split_at). i may
// equal LenChars() (open-ended). O(log^2 N); see package doc.
func (r Rope) SplitAt(i int) (Rope, Rope, error) {
	if err := checkCharIndex(i, r.LenChars(), true); err != nil {
		return Rope{}, Rope{}, err
	}
	left, right := splitNode(r.root, i)
	return Rope{root: left}, Rope{root: right}, nil
}

// Insert splits the receiver at i and splices s in between the two halves,
// returning a new rope (spec §4.5 insert). An empty s returns the receiver
// unchanged. O(log^2 N + |s|).
func (r Rope) Insert(i int, s string) (Rope, error) {
	if err := checkCharIndex(i, r.LenChars(), true); err != nil {
		return Rope{}, err
	}
	if s == "" {
		return r, nil
	}
	left, right := splitNode(r.root, i)
	middle := FromString(s).root
	return Rope{root: appendNodes(appendNodes(left, middle), right)}, nil
}

// Remove deletes the character range [start, end), implemented as
// split_at(start) -> (a, tmp); tmp.split_at(end-start) -> (_, c);
// a.append(c), which preserves CRLF integrity at the new seam by
// construction (spec §4.5 remove). O(log^2 N).
func (r Rope) Remove(start, end int) (Rope, error) {
	if err := checkCharRange(start, end, r.LenChars()); err != nil {
		return Rope{}, err
	}
	a, tmp := splitNode(r.root, start)
	_, c := splitNode(tmp, end-start)
	return Rope{root: appendNodes(a, c)}, nil
}

// Line returns the n-th line, including its trailing line-break terminator
// except for the final line, which has none (spec §4.5 line). Equivalent to
// slice(line_to_char(n), line_to_char(n+1)).
func (r Rope) Line(n int) (Rope, error) {
	if n < 0 || n >= r.LenLines() {
		return Rope{}, outOfBounds(n, r.LenLines(), BoundLines)
	}
	start, err := r.LineToChar(n)
	if err != nil {
		return Rope{}, err
	}
	end, err := r.LineToChar(n + 1)
	if err != nil {
		return Rope{}, err
	}
	return r.Slice(start, end)
}

// ToString concatenates all leaf contents in order, returning the rope's
// full text. O(N).
func (r Rope) ToString() string {
	return treeToString(r.root)
}

// String implements fmt.Stringer so a Rope prints as its text content.
func (r Rope) String() string {
	return r.ToString()
}
