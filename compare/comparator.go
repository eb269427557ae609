package compare

// Comparator is a three-way ordering function: it returns a negative value
// when a orders before b, zero when the two are equivalent under the
// ordering, and a positive value when a orders after b.
//
// A Comparator does not have to agree with the element type's Equals method.
// A parity comparator, for example, treats all even numbers as equivalent
// to each other; collections that accept a Comparator (sorting, binary
// search) use the comparator's notion of equivalence, not Equals.
type Comparator[T any] func(a, b T) int

// FromLess builds a Comparator from a strict less-than predicate.
// Two values are equivalent when neither orders before the other.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reversed returns a Comparator that orders elements in the opposite
// direction of cmp.
func Reversed[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
