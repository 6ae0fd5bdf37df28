package rope

import "strings"

// ========== Concatenation (join) ==========

// appendNodes concatenates two nodes into one balanced node, descending
// the taller side until heights match and splicing there, propagating
// overflow upward exactly like an insert (spec §4.5 Append, §4.6). The
// result's height is at most max(a.height(), b.height())+1.
func appendNodes(a, b node) node {
	if nodeIsEmpty(a) {
		return b
	}
	if nodeIsEmpty(b) {
		return a
	}
	result, extra := appendHelper(a, b)
	if extra == nil {
		return result
	}
	return makeInternal([]node{result, extra})
}

// appendHelper returns the merged node and, when the merge overflowed
// MaxChildren, a sibling the caller must place alongside it at the same
// height.
func appendHelper(a, b node) (node, node) {
	ha, hb := a.height(), b.height()
	switch {
	case ha == hb:
		return joinEqualHeight(a, b)
	case ha > hb:
		an := a.(*internalNode)
		lastIdx := len(an.children) - 1
		merged, extra := appendHelper(an.children[lastIdx].node, b)
		return spliceChild(an, lastIdx, merged, extra)
	default:
		bn := b.(*internalNode)
		merged, extra := appendHelper(a, bn.children[0].node)
		return spliceChild(bn, 0, merged, extra)
	}
}

// joinEqualHeight merges two same-height nodes. For leaves this is a
// direct text concatenation (one or two resulting leaves); for internal
// nodes it merges the two children lists and re-groups only if the
// combined count overflows MaxChildren, which keeps every resulting node
// within [MinChildren, MaxChildren] whenever both inputs already were.
func joinEqualHeight(a, b node) (node, node) {
	if la, ok := a.(*leaf); ok {
		lb := b.(*leaf)
		l, r := concatLeaves(la, lb)
		if r == nil {
			return l, nil
		}
		return l, r
	}
	an, bn := a.(*internalNode), b.(*internalNode)
	combined := make([]node, 0, len(an.children)+len(bn.children))
	for _, c := range an.children {
		combined = append(combined, c.node)
	}
	for _, c := range bn.children {
		combined = append(combined, c.node)
	}
	return regroup(combined)
}

// spliceChild replaces an internal node's child at idx with merged (and,
// if non-nil, inserts extra immediately after it), then re-groups if the
// new child count overflows MaxChildren.
func spliceChild(an *internalNode, idx int, merged, extra node) (node, node) {
	newChildren := make([]node, 0, len(an.children)+1)
	for i, c := range an.children {
		if i == idx {
			newChildren = append(newChildren, merged)
			if extra != nil {
				newChildren = append(newChildren, extra)
			}
			continue
		}
		newChildren = append(newChildren, c.node)
	}
	return regroup(newChildren)
}

// regroup returns a single internal node when children fit within
// MaxChildren, or splits them into exactly two balanced nodes otherwise.
// Two already-valid child lists combined can overflow by at most
// MaxChildren total, so two groups always suffice.
func regroup(children []node) (node, node) {
	if len(children) <= MaxChildren {
		return makeInternal(children), nil
	}
	sizes := groupSizes(len(children))
	g1 := makeInternal(children[:sizes[0]])
	g2 := makeInternal(children[sizes[0]:])
	return g1, g2
}

// ========== Split ==========

// splitNode splits n at character index ci into two trees whose
// concatenation reproduces n's content exactly. It descends to the single
// leaf straddling ci, splits that leaf, then reassembles each side with
// appendNodes so the result stays balanced (spec §4.5 SplitAt, §4.6).
func splitNode(n node, ci int) (node, node) {
	if lf, ok := n.(*leaf); ok {
		return lf.splitAt(ci)
	}
	in := n.(*internalNode)
	idx, acc := findChild(in.children, ci, metricChars)
	local := ci - acc.Chars

	var left node = newLeaf("")
	for i := 0; i < idx; i++ {
		left = appendNodes(left, in.children[i].node)
	}
	splitL, splitR := splitNode(in.children[idx].node, local)
	left = appendNodes(left, splitL)

	right := splitR
	for i := idx + 1; i < len(in.children); i++ {
		right = appendNodes(right, in.children[i].node)
	}
	return left, right
}

// ========== Lookups (char / UTF-16) ==========

func charAt(n node, ci int) rune {
	if lf, ok := n.(*leaf); ok {
		return lf.charAt(ci)
	}
	in := n.(*internalNode)
	idx, acc := findChild(in.children, ci, metricChars)
	return charAt(in.children[idx].node, ci-acc.Chars)
}

func sliceTree(n node, start, end int) string {
	if lf, ok := n.(*leaf); ok {
		return lf.slice(start, end)
	}
	in := n.(*internalNode)
	idxStart, accStart := findChild(in.children, start, metricChars)
	idxEnd, accEnd := findChild(in.children, end, metricChars)
	if idxStart == idxEnd {
		return sliceTree(in.children[idxStart].node, start-accStart.Chars, end-accStart.Chars)
	}
	var sb strings.Builder
	sb.WriteString(sliceTree(in.children[idxStart].node, start-accStart.Chars, in.children[idxStart].info.Chars))
	for i := idxStart + 1; i < idxEnd; i++ {
		collectString(in.children[i].node, &sb)
	}
	sb.WriteString(sliceTree(in.children[idxEnd].node, 0, end-accEnd.Chars))
	return sb.String()
}

func charToUTF16(n node, ci int) int {
	if lf, ok := n.(*leaf); ok {
		return CharToUTF16CUIdx(lf.text, ci)
	}
	in := n.(*internalNode)
	idx, acc := findChild(in.children, ci, metricChars)
	return acc.UTF16 + charToUTF16(in.children[idx].node, ci-acc.Chars)
}

func utf16ToChar(n node, ui int) int {
	if lf, ok := n.(*leaf); ok {
		return UTF16CUToCharIdx(lf.text, ui)
	}
	in := n.(*internalNode)
	idx, acc := findChild(in.children, ui, metricUTF16)
	return acc.Chars + utf16ToChar(in.children[idx].node, ui-acc.UTF16)
}

// ========== Lookups (line <-> char, CRLF seam aware) ==========

// charToLineRec returns the 0-based line number of character index ci
// within n, given whether the rope content immediately preceding n ends
// in CR. That carry determines whether n's own leading LF, if it has one,
// completes a CRLF pair that started before n (and so is not itself a new
// line start) — see spec §4.1, §4.4 and SPEC_FULL.md's CRLF-seam
// resolution.
func charToLineRec(n node, ci int, leftEndsWithCR bool) int {
	if lf, ok := n.(*leaf); ok {
		line := CharToLineIdx(lf.text, ci)
		if leftEndsWithCR && lf.summary.StartsWithLF {
			line--
		}
		return line
	}
	in := n.(*internalNode)
	acc := 0
	leftCR := leftEndsWithCR
	for i, c := range in.children {
		if ci < c.info.Chars || i == len(in.children)-1 {
			return acc + charToLineRec(c.node, ci, leftCR)
		}
		childLines := c.info.LineBreaks
		if leftCR && c.info.StartsWithLF {
			childLines--
		}
		acc += childLines
		ci -= c.info.Chars
		leftCR = c.info.EndsWithCR
	}
	return acc
}

// lineToCharRec returns the character offset within n of the start of
// local line number `line`, given the same leftEndsWithCR carry as
// charToLineRec.
func lineToCharRec(n node, line int, leftEndsWithCR bool) int {
	if lf, ok := n.(*leaf); ok {
		local := line
		if leftEndsWithCR && lf.summary.StartsWithLF {
			local++
		}
		return LineToCharIdx(lf.text, local)
	}
	in := n.(*internalNode)
	accChars := 0
	leftCR := leftEndsWithCR
	for i, c := range in.children {
		childLines := c.info.LineBreaks
		if leftCR && c.info.StartsWithLF {
			childLines--
		}
		// Line `childLines` starts after this child's last break, so it is
		// found here too, unless that break is a CR whose LF opens the next
		// child: then the line starts after that LF, in the next child.
		crlfSeam := i+1 < len(in.children) && c.info.EndsWithCR && in.children[i+1].info.StartsWithLF
		if line < childLines || (line == childLines && !crlfSeam) || i == len(in.children)-1 {
			return accChars + lineToCharRec(c.node, line, leftCR)
		}
		line -= childLines
		accChars += c.info.Chars
		leftCR = c.info.EndsWithCR
	}
	return accChars
}

// ========== Whole-tree iteration ==========

func collectString(n node, sb *strings.Builder) {
	if lf, ok := n.(*leaf); ok {
		sb.WriteString(lf.text)
		return
	}
	in := n.(*internalNode)
	for _, c := range in.children {
		collectString(c.node, sb)
	}
}

func treeToString(n node) string {
	var sb strings.Builder
	sb.Grow(n.info().Chars)
	collectString(n, &sb)
	return sb.String()
}

// ========== Stats (supplemented feature, spec.md §9 balance discussion) ==========

func leafCount(n node) int {
	if _, ok := n.(*leaf); ok {
		return 1
	}
	in := n.(*internalNode)
	count := 0
	for _, c := range in.children {
		count += leafCount(c.node)
	}
	return count
}

func nodeCount(n node) int {
	if _, ok := n.(*leaf); ok {
		return 1
	}
	in := n.(*internalNode)
	count := 1
	for _, c := range in.children {
		count += nodeCount(c.node)
	}
	return count
}
