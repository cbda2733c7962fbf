package sortedmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// sortedKeysTotal counts how many times a map sorted its keys (Keys, Values,
	// All, Backward, iterators and ranges all sort once per call).
	//
	// Labels:
	//   - ignore_case: "true" or "false".
	//   - order: the sortable.Order name ("ordinal" or "natural").
	//
	// Sorting is O(n log n) and never cached, so a high rate on large maps is
	// worth looking at.
	sortedKeysTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedmap_sorted_keys_total",
		Help: "The total number of sorted key computations",
	}, []string{"ignore_case", "order"})

	// foldCollisionsTotal counts writes that replaced an entry stored under a
	// different spelling of the same folded key.
	foldCollisionsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedmap_fold_collisions_total",
		Help: "The total number of writes that replaced a differently-cased key",
	})
)
