// Package sortedmap provides SortedMap, a string-keyed map that enumerates its
// keys in sorted order and can optionally treat keys that differ only in case
// as the same key.
//
// # Ordering
//
// Keys are sorted lazily, every time they are requested, using the map's
// [sortable.Order] (byte-wise by default). When the map ignores case, the
// folded forms are sorted and each is reported with the spelling it was
// written with:
//
//	m := sortedmap.New(map[string]int{"AWS": 1, "Action": 2, "Auckland": 4})
//	m.Keys() // [Action Auckland AWS]
//
//	cs := sortedmap.New(map[string]int{"AWS": 1, "Action": 2, "Auckland": 4},
//	    sortedmap.WithIgnoreCase(false))
//	cs.Keys() // [AWS Action Auckland]
//
// # Case folding
//
// A map that ignores case stores at most one entry per folded key. Writing
// "auckland" after "Auckland" replaces the entry, spelling included. When a map
// is built from a Go map holding several spellings of one key, Go's map
// iteration order decides which one survives; [NewFromPairs] makes the last
// pair win instead.
//
// # Iteration
//
// [SortedMap.Iterate] and [SortedMap.IterateReverse] return an [Iterator] that
// owns a snapshot of the sorted keys and consumes it one key at a time. [SortedMap.All]
// and [SortedMap.Backward] are the range-over-func equivalents.
//
// # Ranges
//
// [SortedMap.Range] takes a [Slice] over sorted positions and returns a new map
// holding just those entries:
//
//	sub := m.Range(sortedmap.Span(1, 3))
//
// # Thread safety
//
// Neither SortedMap nor Iterator is safe for concurrent use. Callers sharing a
// map between goroutines must synchronize access themselves.
package sortedmap
