package rope

// Stats reports structural health metrics about a rope's tree (spec §9
// discusses balance as the property that matters; this surfaces it for
// diagnostics and tests — not part of the core operation set).
type Stats struct {
	NodeCount     int
	LeafCount     int
	InternalCount int
	Depth         int // maximum depth, root = 0
	MinLeafUTF16  int
	MaxLeafUTF16  int
}

// Stats walks the tree once and reports its shape.
func (r Rope) Stats() Stats {
	var s Stats
	collectStats(r.root, 0, &s)
	return s
}

func collectStats(n node, depth int, s *Stats) {
	s.NodeCount++
	if depth > s.Depth {
		s.Depth = depth
	}
	if lf, ok := n.(*leaf); ok {
		s.LeafCount++
		size := lf.summary.UTF16
		if s.MinLeafUTF16 == 0 || size < s.MinLeafUTF16 {
			s.MinLeafUTF16 = size
		}
		if size > s.MaxLeafUTF16 {
			s.MaxLeafUTF16 = size
		}
		return
	}
	s.InternalCount++
	in := n.(*internalNode)
	for _, c := range in.children {
		collectStats(c.node, depth+1, s)
	}
}

// CommonPrefixLen returns the number of leading characters a and b share.
func CommonPrefixLen(a, b Rope) int {
	la, lb := a.LenChars(), b.LenChars()
	n := la
	if lb < n {
		n = lb
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if ropesPrefixEqual(a, b, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func ropesPrefixEqual(a, b Rope, n int) bool {
	for i := 0; i < n; i++ {
		if charAt(a.root, i) != charAt(b.root, i) {
			return false
		}
	}
	return true
}

// CommonSuffixLen returns the number of trailing characters a and b share.
func CommonSuffixLen(a, b Rope) int {
	la, lb := a.LenChars(), b.LenChars()
	n := la
	if lb < n {
		n = lb
	}
	count := 0
	for count < n {
		ca := charAt(a.root, la-count-1)
		cb := charAt(b.root, lb-count-1)
		if ca != cb {
			break
		}
		count++
	}
	return count
}
