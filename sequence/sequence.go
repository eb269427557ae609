package sequence

import (
	"errors"
	"fmt"

	"github.com/vektorlabs/vektor/lazy"
	"github.com/vektorlabs/vektor/optional"
	"github.com/vektorlabs/vektor/sortable"
	"github.com/vektorlabs/vektor/zero"
)

// DefaultCapacity is the backing store size of a sequence built by New,
// and the number of slots added on every growth step.
const DefaultCapacity = 10

var (
	// ErrInvalidCapacity is returned when a sequence is constructed with
	// a negative capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrIndexOutOfRange is returned by indexed access outside the
	// occupied range [0, Count).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Sequence is a growable, indexable container. The backing store is sized
// to capacity, not count: slots at index >= Count hold stale or zero
// values and are not logically present. The zero Sequence is not usable;
// construct with New or NewWithCapacity.
type Sequence[T sortable.Sortable[T]] struct {
	slots    []T
	count    int
	strategy optional.Value[Strategy[T]]
	fallback *lazy.Of[Strategy[T]]
}

// New creates an empty sequence with capacity DefaultCapacity.
func New[T sortable.Sortable[T]]() *Sequence[T] {
	seq, err := NewWithCapacity[T](DefaultCapacity)
	if err != nil {
		// DefaultCapacity is non-negative, so this cannot happen.
		panic(err)
	}

	return seq
}

// NewWithCapacity creates an empty sequence whose backing store has
// exactly the given number of slots. Returns ErrInvalidCapacity if
// capacity is negative; zero is allowed and grows on the first append.
func NewWithCapacity[T sortable.Sortable[T]](capacity int) (*Sequence[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Sequence[T]{
		slots:    make([]T, capacity),
		strategy: optional.None[Strategy[T]](),
		fallback: lazy.New(func() Strategy[T] { return stdSort[T]{} }),
	}, nil
}

// Count returns the number of logically present elements.
func (s *Sequence[T]) Count() int {
	return s.count
}

// Capacity returns the physical size of the backing store.
func (s *Sequence[T]) Capacity() int {
	return len(s.slots)
}

// Get returns the element at index. Returns ErrIndexOutOfRange when index
// is outside [0, Count), even if the backing store has a slot there.
func (s *Sequence[T]) Get(index int) (T, error) { //nolint:ireturn
	if index < 0 || index >= s.count {
		return zero.Value[T](), fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, s.count)
	}

	return s.slots[index], nil
}

// Set overwrites the element at index. Returns ErrIndexOutOfRange when
// index is outside [0, Count); Set never extends the sequence.
func (s *Sequence[T]) Set(index int, element T) error {
	if index < 0 || index >= s.count {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, s.count)
	}

	s.slots[index] = element

	return nil
}

// Append stores element after the last present element, growing the
// backing store first if it is full. Growth adds exactly DefaultCapacity
// slots per step; the increment is additive, never a doubling. Amortized
// O(1), O(n) on a growth step.
func (s *Sequence[T]) Append(element T) {
	if s.count == len(s.slots) {
		grown := make([]T, len(s.slots)+DefaultCapacity)
		copy(grown, s.slots[:s.count])
		s.slots = grown
	}

	s.slots[s.count] = element
	s.count++
}

// IndexOf returns the index of the first element equal to the given one
// under the element type's Equals contract, or -1 if none matches. O(n).
func (s *Sequence[T]) IndexOf(element T) int {
	for i := range s.count {
		if s.slots[i].Equals(element) {
			return i
		}
	}

	return -1
}

// Entries returns a copy of the occupied prefix, in order. Mutating the
// returned slice does not affect the sequence.
func (s *Sequence[T]) Entries() []T {
	entries := make([]T, s.count)
	copy(entries, s.slots[:s.count])

	return entries
}

// String returns a short debug form; element values are not included.
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("Sequence(count=%d, capacity=%d)", s.count, len(s.slots))
}
