package sequence

import (
	"slices"

	"github.com/vektorlabs/vektor/compare"
	"github.com/vektorlabs/vektor/optional"
	"github.com/vektorlabs/vektor/sortable"
)

// Strategy is the pluggable sorting capability. A strategy sorts the given
// slot range in place; a nil comparator means the strategy must substitute
// the element type's natural order. Implementations should be stateless so
// a single instance can be shared across sequences; a stateful strategy
// must document its own thread-safety.
type Strategy[T sortable.Sortable[T]] interface {
	Sort(slots []T, cmp compare.Comparator[T])
}

// stdSort is the default strategy, backed by the standard library's
// unstable comparison sort.
type stdSort[T sortable.Sortable[T]] struct{}

// Compile-time check that stdSort implements Strategy.
var _ Strategy[sortable.Int] = stdSort[sortable.Int]{}

func (stdSort[T]) Sort(slots []T, cmp compare.Comparator[T]) {
	if cmp == nil {
		cmp = sortable.Order[T]()
	}

	slices.SortFunc(slots, cmp)
}

// SetStrategy installs a custom sort strategy. The sequence keeps the
// reference but assumes no ownership; the same strategy instance may serve
// any number of sequences.
func (s *Sequence[T]) SetStrategy(strategy Strategy[T]) {
	s.strategy = optional.Some(strategy)
}

// ClearStrategy removes any installed strategy. Subsequent sorts fall back
// to the shared default at time of use.
func (s *Sequence[T]) ClearStrategy() {
	s.strategy = optional.None[Strategy[T]]()
}

// Sort orders the elements by their natural order using the installed
// strategy, or the default if none is installed. As a side effect the
// backing store is shrunk to exactly Count slots, so Capacity() == Count()
// after any sort; callers relying on spare capacity must re-grow by
// appending.
func (s *Sequence[T]) Sort() {
	s.SortFunc(nil)
}

// SortFunc is Sort with an explicit comparator. A nil comparator behaves
// exactly like Sort.
func (s *Sequence[T]) SortFunc(cmp compare.Comparator[T]) {
	if s.count < len(s.slots) {
		trimmed := make([]T, s.count)
		copy(trimmed, s.slots[:s.count])
		s.slots = trimmed
	}

	strategy := s.strategy.GetOrElseFunc(s.fallback.Get)
	strategy.Sort(s.slots, cmp)
}
