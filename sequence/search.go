package sequence

import (
	"github.com/vektorlabs/vektor/compare"
	"github.com/vektorlabs/vektor/sortable"
)

// BinarySearch looks up value under the element type's natural order.
// Equivalent to BinarySearchFunc(value, nil).
func (s *Sequence[T]) BinarySearch(value T) int {
	return s.BinarySearchFunc(value, nil)
}

// BinarySearchFunc returns an index whose element compares equivalent to
// value under cmp, or -1 if there is none. A nil cmp means natural order.
//
// The slots must already be ordered under cmp; no validation is performed
// and the result on unsorted slots is unspecified. The search range covers
// the whole backing store, stale slots included — Sort shrinks capacity to
// the logical count, so a sorted sequence is searched over exactly its
// occupied prefix, but searching without sorting first (or after appends
// re-grew the store) also probes slots beyond Count. An empty sequence
// always returns -1 without probing any slot. O(log n).
func (s *Sequence[T]) BinarySearchFunc(value T, cmp compare.Comparator[T]) int {
	if s.count == 0 {
		return -1
	}

	if cmp == nil {
		cmp = sortable.Order[T]()
	}

	return s.search(value, cmp, 0, len(s.slots)-1)
}

// search recursively narrows [lower, upper] until the value is found or
// the bounds cross. The midpoint form avoids overflow at extreme indices.
func (s *Sequence[T]) search(value T, cmp compare.Comparator[T], lower, upper int) int {
	if lower > upper {
		return -1
	}

	middle := lower + (upper-lower)/2

	switch ordering := cmp(value, s.slots[middle]); {
	case ordering < 0:
		return s.search(value, cmp, lower, middle-1)
	case ordering > 0:
		return s.search(value, cmp, middle+1, upper)
	default:
		return middle
	}
}
