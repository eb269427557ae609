// Package compare defines the equality and ordering contracts used by the
// collection packages in this module.
package compare

// Comparable is the equality contract for element types. Collections use
// Equals for membership and lookup, never identity or pointer comparison,
// so two distinct values that compare equal are interchangeable as far as
// a collection is concerned.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values by delegating to the Equals method of the
// first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
