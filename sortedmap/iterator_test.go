package sortedmap_test

import (
	"testing"

	"github.com/amp-labs/amp-sortedmap/sortedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[V any](it *sortedmap.Iterator[V]) []string {
	var out []string

	for {
		key, ok := it.Next()
		if !ok {
			return out
		}

		out = append(out, key)
	}
}

func TestIterate(t *testing.T) {
	t.Parallel()

	m := sortedmap.New(map[string]int{"delta": 4, "Alpha": 1, "charlie": 3, "BRAVO": 2})

	t.Run("forward", func(t *testing.T) {
		t.Parallel()

		it := m.Iterate()
		assert.Same(t, m, it.Source())
		assert.False(t, it.Reverse())
		assert.Equal(t, 4, it.Remaining())

		assert.Equal(t, []string{"Alpha", "BRAVO", "charlie", "delta"}, drain(it))
		assert.True(t, it.Exhausted())
		assert.Equal(t, 0, it.Remaining())
	})

	t.Run("reverse", func(t *testing.T) {
		t.Parallel()

		it := m.IterateReverse()
		assert.True(t, it.Reverse())

		assert.Equal(t, []string{"delta", "charlie", "BRAVO", "Alpha"}, drain(it))
		assert.True(t, it.Exhausted())
	})

	t.Run("exhaustion is terminal", func(t *testing.T) {
		t.Parallel()

		it := m.Iterate()
		drain(it)

		for range 3 {
			key, ok := it.Next()
			assert.False(t, ok)
			assert.Empty(t, key)
		}
	})

	t.Run("fresh iterator starts over", func(t *testing.T) {
		t.Parallel()

		first := m.Iterate()
		_, _ = first.Next()

		second := m.Iterate()
		assert.Equal(t, 3, first.Remaining())
		assert.Equal(t, 4, second.Remaining())
	})
}

func TestIterate_FoldedCount(t *testing.T) {
	t.Parallel()

	m := sortedmap.New(cities())

	forward := drain(m.Iterate())
	backward := drain(m.IterateReverse())

	require.Len(t, forward, 4)
	require.Len(t, backward, 4)

	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestIterate_Isolation(t *testing.T) {
	t.Parallel()

	m := sortedmap.New(map[string]int{"a": 1, "b": 2, "c": 3})
	it := m.Iterate()

	key, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", key)

	m.Delete("b")
	m.Set("aa", 9)
	m.Set("d", 4)

	assert.Equal(t, []string{"b", "c"}, drain(it))
	assert.Equal(t, []string{"a", "aa", "c", "d"}, drain(m.Iterate()))
}

func TestIterate_Empty(t *testing.T) {
	t.Parallel()

	it := sortedmap.New[int](nil).Iterate()

	assert.True(t, it.Exhausted())

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIterator_Seq(t *testing.T) {
	t.Parallel()

	m := sortedmap.New(map[string]int{"a": 1, "b": 2, "c": 3})

	t.Run("drains", func(t *testing.T) {
		t.Parallel()

		it := m.IterateReverse()

		var keys []string
		for key := range it.Seq() {
			keys = append(keys, key)
		}

		assert.Equal(t, []string{"c", "b", "a"}, keys)
		assert.True(t, it.Exhausted())
	})

	t.Run("break consumes the yielded key", func(t *testing.T) {
		t.Parallel()

		it := m.Iterate()

		for key := range it.Seq() {
			assert.Equal(t, "a", key)

			break
		}

		assert.Equal(t, []string{"b", "c"}, drain(it))
	})
}
