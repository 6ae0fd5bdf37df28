package rope

import "fmt"

// BoundKind identifies which coordinate space an IndexOutOfBoundsError was
// raised against.
type BoundKind int

const (
	// BoundChars means the index was checked against LenChars().
	BoundChars BoundKind = iota
	// BoundUTF16 means the index was checked against LenUTF16CU().
	BoundUTF16
	// BoundLines means the index was checked against LenLines().
	BoundLines
)

func (k BoundKind) String() string {
	switch k {
	case BoundChars:
		return "chars"
	case BoundUTF16:
		return "utf16_code_units"
	case BoundLines:
		return "lines"
	default:
		return "unknown"
	}
}

// IndexOutOfBoundsError is the one failure kind the core exposes (spec §7):
// an index argument fell outside the valid range for the coordinate space
// the operation addresses. It carries the attempted index and the bound
// that was violated so callers can build a precise message without
// re-deriving the rope's length.
type IndexOutOfBoundsError struct {
	Index int
	Bound int
	Kind  BoundKind
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("rope: index %d out of bounds for %s (length %d)", e.Index, e.Kind, e.Bound)
}

func outOfBounds(index, bound int, kind BoundKind) error {
	return &IndexOutOfBoundsError{Index: index, Bound: bound, Kind: kind}
}

// checkCharIndex validates a character index against [0, bound]. inclusive
// controls whether bound itself (the one-past-the-end position, valid for
// Insert/SplitAt) is accepted.
func checkCharIndex(i, bound int, inclusive bool) error {
	limit := bound
	if inclusive {
		limit++
	}
	if i < 0 || i >= limit {
		return outOfBounds(i, bound, BoundChars)
	}
	return nil
}

func checkCharRange(start, end, bound int) error {
	if start < 0 || end > bound || start > end {
		if end > bound {
			return outOfBounds(end, bound, BoundChars)
		}
		return outOfBounds(start, bound, BoundChars)
	}
	return nil
}
