// Package rope implements a persistent, balanced tree-structured text
// container optimized for editing large Unicode documents.
//
// A Rope is a B-tree over bounded string leaves, with every internal node
// caching an additive summary (TextInfo) of its subtree: character count,
// UTF-16 code-unit count, and line-break count. All public operations are
// indexed by character position. Lookups run in O(log N) of the total text
// length, N; the Performance table below gives the cost of each operation.
//
// # When to Use Rope vs String
//
// Use Rope when:
//   - Working with large documents (10KB+)
//   - Performing many insert/remove operations, especially away from the end
//   - Needing frequent slicing without copying the whole document
//   - Tracking character, UTF-16, and line coordinates interchangeably
//
// Use a plain Go string when the document is small, mostly read, or
// replaced wholesale rather than edited incrementally.
//
// # Performance
//
//	Operation        | Time            | Notes
//	-----------------|-----------------|------------------------------------
//	FromString(s)     | O(len(s))       | bottom-up balanced build
//	LenChars/UTF16/Lines | O(1)         | cached at the root
//	CharAt(i)         | O(log N)        | tree descent + leaf scan
//	Insert(i, s)      | O(log^2 N + |s|) | path-copy of the spine
//	Remove(a, b)      | O(log^2 N)      | implemented via two SplitAt + Append
//	Slice(a, b)       | O(log N + k)    | k = slice length
//	SplitAt(i)        | O(log^2 N)      | returns two ropes, see note below
//	Append(other)     | O(|h1-h2|)      | height-aware join, not O(N)
//	String()          | O(N)            | visits every leaf once
//
// SplitAt rebuilds each side of the cut by re-appending the untouched
// siblings along the spine with Append, which costs O(log N) per level for
// up to O(log N) levels; this trades the asymptotically optimal single-pass
// split for a simpler, directly reasoned-about implementation built from the
// same Append primitive used elsewhere.
//
// # Persistence and Concurrency
//
// Rope values are immutable once returned: every mutating operation
// (Insert, Remove, SplitAt, Append) returns a new Rope and leaves every
// existing Rope value, and every subtree it shares with others, unchanged.
// Reads against any Rope value are safe for concurrent use by multiple
// goroutines without synchronization; there is no mutable shared state and
// no suspension points. Go's garbage collector reclaims subtrees once the
// last referring Rope goes out of scope, so there is no explicit
// reference-counting step in this implementation.
//
// # Example
//
//	r := rope.FromString("Hello World")
//	r, _ = r.Insert(5, ", Beautiful")       // "Hello, Beautiful World"
//	r, _ = r.Remove(5, 16)                  // back to "Hello World"
//	fmt.Println(r.ToString())
package rope
