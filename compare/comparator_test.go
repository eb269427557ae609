package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vektorlabs/vektor/compare"
)

func lessInt(a, b int) bool { return a < b }

func TestFromLess(t *testing.T) {
	t.Parallel()

	cmp := compare.FromLess(lessInt)

	tests := []struct {
		name string
		a    int
		b    int
		want int
	}{
		{name: "a before b", a: 1, b: 2, want: -1},
		{name: "a after b", a: 2, b: 1, want: 1},
		{name: "equivalent", a: 3, b: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cmp(tt.a, tt.b))
		})
	}
}

func TestFromLess_CoarseOrdering(t *testing.T) {
	t.Parallel()

	// A predicate comparing only string length treats same-length
	// strings as equivalent even when their contents differ.
	byLength := compare.FromLess(func(a, b string) bool {
		return len(a) < len(b)
	})

	assert.Equal(t, 0, byLength("abc", "xyz"))
	assert.Equal(t, -1, byLength("ab", "abc"))
}

func TestReversed(t *testing.T) {
	t.Parallel()

	cmp := compare.Reversed(compare.FromLess(lessInt))

	assert.Equal(t, 1, cmp(1, 2))
	assert.Equal(t, -1, cmp(2, 1))
	assert.Equal(t, 0, cmp(3, 3))
}
