// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements in ordered
// collections.
//
// # Overview
//
// The package defines the [Sortable] interface and ready-to-use
// implementations for common primitive types: [Int], [String], and [Byte].
// These are the element types accepted by
// [github.com/vektorlabs/vektor/sequence.Sequence], which relies on Equals
// for linear search and on LessThan for its natural sort order and
// binary search.
//
// The Sortable interface extends [github.com/vektorlabs/vektor/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Wrap primitives in the provided types when building a sequence:
//
//	seq := sequence.New[sortable.Int]()
//	seq.Append(sortable.Int(42))
//	seq.Append(sortable.Int(10))
//	seq.Sort()
//	// Elements now traverse in order: 10, 42
//
// To convert back, use a plain type conversion: int(seq.Entries()[0]).
//
// # Creating Custom Sortable Types
//
// To store your own type, implement the Sortable interface:
//
//	type Account struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (a Account) Equals(other Account) bool {
//	    return a.Priority == other.Priority && a.Name == other.Name
//	}
//
//	func (a Account) LessThan(other Account) bool {
//	    if a.Priority != other.Priority {
//	        return a.Priority < other.Priority
//	    }
//	    return a.Name < other.Name
//	}
//
// LessThan must be a strict total order (irreflexive, transitive); the
// collections derive "equivalent" from neither value being less than the
// other, which does not have to coincide with Equals.
//
// # Thread Safety
//
// The wrapper types are value types and inherently safe to share. The
// collections storing them are not thread-safe and need external
// synchronization for concurrent use.
package sortable
