package sequence

import (
	"iter"

	"github.com/vektorlabs/vektor/sortable"
	"github.com/vektorlabs/vektor/zero"
)

// Iterator is an explicit forward cursor over a sequence. It holds a
// non-owning reference to the sequence and re-checks bounds against the
// live count on every advance, so elements appended mid-traversal before
// the cursor reaches the end are still visited. Cursors are independent:
// any number may traverse the same sequence without sharing state.
type Iterator[T sortable.Sortable[T]] struct {
	seq    *Sequence[T]
	cursor int
}

// Iterator returns a fresh cursor positioned before the first element.
// Call Next to advance onto each element in turn.
func (s *Sequence[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{seq: s, cursor: -1}
}

// Next advances the cursor by one position and reports whether it now
// rests on a present element.
func (it *Iterator[T]) Next() bool {
	it.cursor++

	return it.cursor < it.seq.count
}

// Value returns the element under the cursor. Before the first Next, or
// once the cursor has moved past the last element, Value returns the zero
// value of T rather than failing; this softened contract is deliberate
// and distinct from the strict errors of indexed Get.
func (it *Iterator[T]) Value() T { //nolint:ireturn
	if it.cursor < 0 || it.cursor >= it.seq.count {
		return zero.Value[T]()
	}

	return it.seq.slots[it.cursor]
}

// All returns a range-over-func view of the sequence: a fresh cursor per
// range statement, yielding the occupied prefix in order. Lazy and
// restartable; mutating the sequence during the loop has unspecified
// results.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
