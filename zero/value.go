// Package zero provides utilities for working with zero values of generic
// type parameters.
package zero

import "reflect"

// Value returns the zero value for type T. Use it where a generic function
// needs an explicit "absent" value of its type parameter, such as the
// not-found result of a lookup.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T, using a deep
// comparison.
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
