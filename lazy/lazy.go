// Package lazy provides a value that is initialized at most once, on
// first access.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Of is a lazy value. The create callback supplied to New runs the first
// time Get is called; every later Get returns the same value.
type Of[T any] struct {
	create func() T
	once   sync.Once
	value  T
	ready  atomic.Bool
}

// New creates a new lazy value. The callback is called later, when the
// value is first accessed.
func New[T any](create func() T) *Of[T] {
	return &Of[T]{create: create}
}

// Get returns the value, initializing it if necessary.
func (o *Of[T]) Get() T { //nolint:ireturn
	o.once.Do(func() {
		if o.create != nil {
			o.value = o.create()
			o.create = nil
			o.ready.Store(true)
		}
	})

	return o.value
}

// Initialized returns true once the value has been built. Intended for
// tests and debugging, not normal control flow.
func (o *Of[T]) Initialized() bool {
	return o.ready.Load()
}
