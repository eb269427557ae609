// Package sortable provides the total-order contract for element types,
// plus wrapper types for the primitives that implement it.
package sortable

import (
	"github.com/vektorlabs/vektor/compare"
)

// Sortable is the contract an element type must satisfy to be stored in
// ordered collections: equality via compare.Comparable plus a strict
// less-than defining the type's natural order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
