package rope

// node is the common interface implemented by *leaf and *internalNode
// (spec §3: Leaf, Internal Node).
type node interface {
	isLeaf() bool
	info() Summary
	height() int
}

// childEntry pairs a child node with its own cached Summary, so an
// internal node never has to ask a child to recompute information about
// itself (spec §3: "each child stored alongside the child's TextInfo").
type childEntry struct {
	node node
	info Summary
}

// internalNode holds an ordered sequence of children, all of equal
// height, plus the sum of their summaries (spec §3, §4.4).
type internalNode struct {
	children []childEntry
	ht       int
	sum      Summary
}

func (n *internalNode) isLeaf() bool  { return false }
func (n *internalNode) info() Summary { return n.sum }
func (n *internalNode) height() int   { return n.ht }

// makeInternal builds an internalNode from a slice of equal-height
// children, computing its cached summary via sequential Combine so the
// CRLF seam correction between every adjacent pair is already folded in
// (spec §4.1, §4.4).
func makeInternal(children []node) *internalNode {
	entries := make([]childEntry, len(children))
	sum := emptySummary
	for i, c := range children {
		info := c.info()
		entries[i] = childEntry{node: c, info: info}
		sum = Combine(sum, info)
	}
	ht := 0
	if len(children) > 0 {
		ht = children[0].height() + 1
	}
	return &internalNode{children: entries, ht: ht, sum: sum}
}

// groupSizes divides n items into groups that each satisfy
// [MinChildren, MaxChildren] whenever n itself is large enough to allow
// it, distributing the remainder as evenly as possible. When n fits in a
// single group it returns that one group, even if n < MinChildren — the
// caller is responsible for knowing whether that group is allowed to be
// an under-full root (spec §4.6).
func groupSizes(n int) []int {
	if n <= MaxChildren {
		return []int{n}
	}
	numGroups := (n + MaxChildren - 1) / MaxChildren
	for numGroups > 1 && numGroups*MinChildren > n {
		numGroups--
	}
	base := n / numGroups
	rem := n % numGroups
	sizes := make([]int, numGroups)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// buildLevel groups a slice of equal-height nodes into the next level up,
// using groupSizes to keep every resulting internal node's child count
// within bounds.
func buildLevel(nodes []node) []node {
	sizes := groupSizes(len(nodes))
	out := make([]node, 0, len(sizes))
	idx := 0
	for _, sz := range sizes {
		out = append(out, makeInternal(nodes[idx:idx+sz]))
		idx += sz
	}
	return out
}

// buildFromLeaves assembles a perfectly balanced tree bottom-up from an
// ordered slice of leaves (spec §4.5 FromString). An empty slice yields a
// single empty leaf, matching "the empty rope has a single empty leaf."
func buildFromLeaves(leaves []node) node {
	if len(leaves) == 0 {
		return newLeaf("")
	}
	level := leaves
	for len(level) > 1 {
		level = buildLevel(level)
	}
	return level[0]
}

// metric selects which TextInfo field a tree descent accumulates against.
type metric int

const (
	metricChars metric = iota
	metricUTF16
)

func metricValue(s Summary, m metric) int {
	if m == metricUTF16 {
		return s.UTF16
	}
	return s.Chars
}

// findChild locates the child of an internal node's children slice that
// contains coordinate target in the given metric, returning its index and
// the accumulated Summary of every preceding child (so the caller can
// compute the residual coordinate within the chosen child). The last
// child is always a valid fallback for an out-of-range-but-clamped
// target, which callers rely on for the "open-ended" index case (target
// == total length).
func findChild(children []childEntry, target int, m metric) (int, Summary) {
	acc := emptySummary
	for i, c := range children {
		next := Combine(acc, c.info)
		if target < metricValue(next, m) || i == len(children)-1 {
			return i, acc
		}
		acc = next
	}
	return len(children) - 1, acc
}

func nodeIsEmpty(n node) bool {
	lf, ok := n.(*leaf)
	return ok && lf.text == ""
}
