package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vektorlabs/vektor/sequence"
	"github.com/vektorlabs/vektor/sortable"
)

func TestIterator(t *testing.T) {
	t.Parallel()

	t.Run("yields elements in insertion order", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 2, 6, 8, 5)

		var got []sortable.Int

		it := seq.Iterator()
		for it.Next() {
			got = append(got, it.Value())
		}

		assert.Equal(t, []sortable.Int{2, 6, 8, 5}, got)
	})

	t.Run("value before the first advance is the zero value", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 42)

		it := seq.Iterator()

		assert.Equal(t, sortable.Int(0), it.Value())
	})

	t.Run("value past the end is the zero value", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 42)

		it := seq.Iterator()
		require.True(t, it.Next())
		require.False(t, it.Next())

		assert.Equal(t, sortable.Int(0), it.Value())
	})

	t.Run("empty sequence never advances", func(t *testing.T) {
		t.Parallel()

		seq := sequence.New[sortable.Int]()

		it := seq.Iterator()

		assert.False(t, it.Next())
		assert.Equal(t, sortable.Int(0), it.Value())
	})

	t.Run("independent cursors do not share state", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 1, 2, 3)

		first := seq.Iterator()
		second := seq.Iterator()

		require.True(t, first.Next())
		require.True(t, first.Next())

		var got []sortable.Int
		for second.Next() {
			got = append(got, second.Value())
		}

		assert.Equal(t, []sortable.Int{1, 2, 3}, got)
		assert.Equal(t, sortable.Int(2), first.Value())
	})

	t.Run("two fresh traversals yield identical sequences", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 9, 4, 7, 4)

		collect := func() []sortable.Int {
			var out []sortable.Int

			it := seq.Iterator()
			for it.Next() {
				out = append(out, it.Value())
			}

			return out
		}

		assert.Equal(t, collect(), collect())
	})

	t.Run("bounds are checked against the live count", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 1)

		it := seq.Iterator()
		require.True(t, it.Next())

		// An element appended mid-traversal is still visited.
		seq.Append(sortable.Int(2))

		require.True(t, it.Next())
		assert.Equal(t, sortable.Int(2), it.Value())
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("ranges over the occupied prefix in order", func(t *testing.T) {
		t.Parallel()

		values := []sortable.Int{2, 6, 8, 5, 5, 1, 8, 5, 3, 5, 7, 1, 4, 9}

		seq, err := sequence.NewWithCapacity[sortable.Int](5)
		require.NoError(t, err)

		for _, v := range values {
			seq.Append(v)
		}

		var got []sortable.Int
		for v := range seq.All() {
			got = append(got, v)
		}

		assert.Equal(t, values, got)
	})

	t.Run("is restartable", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 1, 2)

		for range 2 {
			var got []sortable.Int
			for v := range seq.All() {
				got = append(got, v)
			}

			assert.Equal(t, []sortable.Int{1, 2}, got)
		}
	})

	t.Run("supports early break", func(t *testing.T) {
		t.Parallel()

		seq := newIntSequence(t, 1, 2, 3)

		var got []sortable.Int

		for v := range seq.All() {
			got = append(got, v)

			if len(got) == 2 {
				break
			}
		}

		assert.Equal(t, []sortable.Int{1, 2}, got)
	})
}
