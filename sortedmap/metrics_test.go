package sortedmap

import (
	"testing"

	"github.com/amp-labs/amp-sortedmap/sortable"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// These tests read global counters, so they don't run in parallel. Parallel
// tests in this package are paused until the sequential ones finish.

func TestMetrics_FoldCollisions(t *testing.T) { //nolint:paralleltest
	before := testutil.ToFloat64(foldCollisionsTotal)

	m := New[int](nil, WithLogger(slogt.New(t)))
	m.Set("Auckland", 1)
	m.Set("Auckland", 2) // same spelling, not a collision
	m.Set("auckland", 3)
	m.Set("AUCKLAND", 4)

	cs := New[int](nil, WithIgnoreCase(false))
	cs.Set("Auckland", 1)
	cs.Set("auckland", 2)

	assert.InDelta(t, 2, testutil.ToFloat64(foldCollisionsTotal)-before, 0)
}

func TestMetrics_SortedKeys(t *testing.T) { //nolint:paralleltest
	counter := sortedKeysTotal.WithLabelValues("false", sortable.OrderNatural.String())
	before := testutil.ToFloat64(counter)

	m := New(map[string]int{"a1": 1, "a2": 2}, WithIgnoreCase(false), WithOrder(sortable.OrderNatural))
	m.Keys()
	m.Values()

	it := m.Iterate()
	for range it.Seq() {
	}

	m.Range(Span(0, 1))

	assert.InDelta(t, 4, testutil.ToFloat64(counter)-before, 0)
}
