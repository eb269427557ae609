package sortable

import (
	"facette.io/natsort"

	"github.com/vektorlabs/vektor/compare"
)

// Order returns the natural-order comparator for T, derived from the
// type's LessThan method. This is the ordering collections fall back to
// when no explicit comparator is supplied.
func Order[T Sortable[T]]() compare.Comparator[T] {
	return compare.FromLess(func(a, b T) bool {
		return a.LessThan(b)
	})
}

// NaturalText orders Strings the way a human reads them, so "file2"
// precedes "file10". Use it as an explicit comparator where the plain
// lexicographic natural order of String is not wanted.
func NaturalText(a, b String) int {
	if string(a) == string(b) {
		return 0
	}

	if natsort.Compare(string(a), string(b)) {
		return -1
	}

	return 1
}
