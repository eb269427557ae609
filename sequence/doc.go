// Package sequence provides a growable, indexable container with amortized
// O(1) append, O(1) indexed access, linear search, pluggable in-place
// sorting, and recursive binary search under an arbitrary comparator.
//
// # Overview
//
// A [Sequence] owns a contiguous backing store and tracks a logical count
// separately from the store's physical capacity. Appending past capacity
// grows the store by a fixed increment of [DefaultCapacity] slots; the
// additive increment (rather than doubling) is part of the container's
// contract, as is the fact that sorting shrinks capacity to exactly the
// logical count. Capacity is never reduced otherwise.
//
// Element types satisfy [github.com/vektorlabs/vektor/sortable.Sortable],
// which supplies both the equality used by [Sequence.IndexOf] and the
// natural order used by [Sequence.Sort] and [Sequence.BinarySearch] when no
// explicit comparator is given.
//
//	seq := sequence.New[sortable.Int]()
//	seq.Append(sortable.Int(333))
//	seq.Append(sortable.Int(100))
//	seq.Sort()
//	i := seq.BinarySearch(sortable.Int(333)) // 1
//
// # Sort strategies
//
// Sorting is delegated to a replaceable [Strategy]. A sequence starts with
// no strategy installed and resolves a shared default ([slices.SortFunc]
// based) lazily at the first sort; [Sequence.SetStrategy] installs a
// custom algorithm and [Sequence.ClearStrategy] restores the fallback
// behavior. Strategies sort a fixed-size slot range in place and are
// expected to be stateless so a single instance can serve many sequences.
//
// # Traversal
//
// [Sequence.Iterator] returns an explicit cursor positioned before the
// first element; [Sequence.All] adapts a fresh cursor to Go's
// range-over-func iteration. Cursors are lazy: bounds are checked against
// the live count at each advance, and [Iterator.Value] outside the valid
// range yields the element type's zero value rather than an error.
// Independent cursors share no state. Mutating a sequence mid-traversal
// has unspecified results.
//
// # Thread Safety
//
// Sequence is not thread-safe. Every operation is synchronous and runs to
// completion; callers requiring concurrent access must serialize it.
package sequence
