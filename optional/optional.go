// Package optional provides a type-safe holder for values that may or may
// not be present, modeling absence explicitly instead of through nil.
package optional

import "fmt"

// Value holds zero or one value of type T.
// Use Some(value) for a present value, or None() for an empty Value.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether it is present.
// This is the safe way to extract a value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or the provided default if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// GetOrElseFunc returns the value if present, or calls the provided
// function for a default if empty. Useful when the default is expensive
// to build.
func (o Value[T]) GetOrElseFunc(defaultFunc func() T) T {
	if o.isSet {
		return o.value
	}

	return defaultFunc()
}

// String returns "Some(value)" for a present value, or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
