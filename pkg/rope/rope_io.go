package rope

import (
	"bufio"
	"io"
	"strings"
)

// FromReader reads all content from r and builds a Rope from it, without
// requiring the caller to buffer the whole input into a string first.
//
//	f, _ := os.Open("large_file.txt")
//	defer f.Close()
//	doc, err := rope.FromReader(f)
func FromReader(r io.Reader) (Rope, error) {
	var sb strings.Builder
	buffered := bufio.NewReader(r)
	buf := make([]byte, 64*1024)
	for {
		n, err := buffered.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return FromString(sb.String()), nil
			}
			return Rope{}, err
		}
	}
}

// WriteTo writes the rope's full text content to w, implementing
// io.WriterTo.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.ToString())
	return int64(n), err
}

// Reader returns an io.Reader over the rope's content, leaf by leaf, so a
// Rope can be passed anywhere an io.Reader is expected without first
// materializing the whole string.
func (r Rope) Reader() io.Reader {
	return &ropeReader{root: r.root}
}

type ropeReader struct {
	root    node
	leaves  []*leaf
	started bool
	idx     int
	off     int
}

func (rr *ropeReader) Read(p []byte) (int, error) {
	if !rr.started {
		rr.leaves = collectLeaves(rr.root)
		rr.started = true
	}
	total := 0
	for total < len(p) {
		if rr.idx >= len(rr.leaves) {
			if total == 0 {
				return 0, io.EOF
			}
			return total, nil
		}
		cur := rr.leaves[rr.idx]
		remaining := cur.text[rr.off:]
		if remaining == "" {
			rr.idx++
			rr.off = 0
			continue
		}
		n := copy(p[total:], remaining)
		total += n
		rr.off += n
	}
	return total, nil
}

func collectLeaves(n node) []*leaf {
	var out []*leaf
	var walk func(node)
	walk = func(n node) {
		if lf, ok := n.(*leaf); ok {
			if lf.text != "" {
				out = append(out, lf)
			}
			return
		}
		in := n.(*internalNode)
		for _, c := range in.children {
			walk(c.node)
		}
	}
	walk(n)
	return out
}
