package sortedmap

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"

	"github.com/amp-labs/amp-sortedmap/logger"
)

// ErrKeyNotFound is returned by Get when the key (after folding, if the map
// ignores case) isn't present.
var ErrKeyNotFound = errors.New("key not found")

// Pair is a key and its value, used for ordered construction.
type Pair[V any] struct {
	Key   string
	Value V
}

type entry[V any] struct {
	key   string // as written by the caller
	value V
}

// SortedMap is a string-keyed map whose keys are enumerated in sorted order.
//
// When the map ignores case, keys are folded before they're stored, so at most
// one entry exists per folded key. Writing a case variant of an existing key
// replaces both the value and the stored spelling (last write wins).
//
// Sorting happens every time keys are requested; nothing is cached.
//
// The zero value is an empty, case-sensitive map ready to use. SortedMap is not
// safe for concurrent use.
type SortedMap[V any] struct {
	entries map[string]entry[V] // storage key -> entry
	cfg     config
}

// New creates a SortedMap holding a copy of initial. The map ignores case
// unless WithIgnoreCase(false) is passed.
//
// If initial contains keys that differ only in case and the map ignores case,
// they collapse into one entry. Which spelling survives depends on Go's map
// iteration order and is therefore unspecified; use NewFromPairs when it matters.
func New[V any](initial map[string]V, opts ...Option) *SortedMap[V] {
	m := newWithConfig[V](buildConfig(opts), len(initial))

	for key, value := range initial {
		m.Set(key, value)
	}

	return m
}

// NewFromPairs creates a SortedMap from pairs, applied in order. When two pairs
// fold to the same key, the later pair wins.
func NewFromPairs[V any](pairs []Pair[V], opts ...Option) *SortedMap[V] {
	m := newWithConfig[V](buildConfig(opts), len(pairs))

	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func newWithConfig[V any](cfg config, size int) *SortedMap[V] {
	return &SortedMap[V]{
		entries: make(map[string]entry[V], size),
		cfg:     cfg,
	}
}

// IgnoreCase reports whether keys differing only in case are treated as the same key.
func (m *SortedMap[V]) IgnoreCase() bool {
	return m.cfg.ignoreCase
}

func (m *SortedMap[V]) storageKey(key string) string {
	if m.cfg.ignoreCase {
		return m.cfg.fold.Apply(key)
	}

	return key
}

// Set assigns value to key.
func (m *SortedMap[V]) Set(key string, value V) {
	if m.entries == nil {
		m.entries = make(map[string]entry[V])
	}

	sk := m.storageKey(key)

	if prev, ok := m.entries[sk]; ok && prev.key != key {
		foldCollisionsTotal.Inc()
		m.cfg.log().Debug("case-folded key replaced an existing spelling",
			"key", key, "replaced", prev.key, "folded", sk)
	}

	m.entries[sk] = entry[V]{key: key, value: value}
}

// Lookup returns the value stored for key and whether it was found.
func (m *SortedMap[V]) Lookup(key string) (V, bool) {
	e, ok := m.entries[m.storageKey(key)]

	return e.value, ok
}

// Get returns the value stored for key, or an error wrapping ErrKeyNotFound.
func (m *SortedMap[V]) Get(key string) (V, error) {
	value, ok := m.Lookup(key)
	if !ok {
		return value, logger.AnnotateError(fmt.Errorf("%w: %q", ErrKeyNotFound, key),
			"key", key, "ignore_case", m.cfg.ignoreCase)
	}

	return value, nil
}

// Contains reports whether key is present.
func (m *SortedMap[V]) Contains(key string) bool {
	_, ok := m.entries[m.storageKey(key)]

	return ok
}

// Delete removes key and reports whether it was present.
func (m *SortedMap[V]) Delete(key string) bool {
	sk := m.storageKey(key)

	if _, ok := m.entries[sk]; !ok {
		return false
	}

	delete(m.entries, sk)

	return true
}

// Len returns the number of entries.
func (m *SortedMap[V]) Len() int {
	return len(m.entries)
}

// Clear removes all entries.
func (m *SortedMap[V]) Clear() {
	clear(m.entries)
}

// Clone returns a shallow copy with the same settings.
func (m *SortedMap[V]) Clone() *SortedMap[V] {
	out := newWithConfig[V](m.cfg, len(m.entries))
	maps.Copy(out.entries, m.entries)

	return out
}

// sortedStorageKeys returns the storage keys in enumeration order. With case
// ignored these are the folded forms, so ordering is decided by the folded
// spelling, never by the stored one.
func (m *SortedMap[V]) sortedStorageKeys() []string {
	sorted := slices.Collect(maps.Keys(m.entries))
	m.cfg.order.Sort(sorted)

	sortedKeysTotal.WithLabelValues(strconv.FormatBool(m.cfg.ignoreCase), m.cfg.order.String()).Inc()

	return sorted
}

// Keys returns the keys in sorted order, as they were written. The result is
// recomputed on every call and belongs to the caller.
func (m *SortedMap[V]) Keys() []string {
	sorted := m.sortedStorageKeys()

	for i, sk := range sorted {
		sorted[i] = m.entries[sk].key
	}

	return sorted
}

// Values returns the values in key order.
func (m *SortedMap[V]) Values() []V {
	values := make([]V, 0, len(m.entries))

	for _, sk := range m.sortedStorageKeys() {
		values = append(values, m.entries[sk].value)
	}

	return values
}

// All returns an iterator over key-value pairs in ascending key order.
// The order is fixed when iteration starts; entries deleted during iteration
// are skipped and entries added during iteration are not visited.
func (m *SortedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		m.yieldEntries(m.sortedStorageKeys(), yield)
	}
}

// Backward is like All but in descending key order.
func (m *SortedMap[V]) Backward() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		sorted := m.sortedStorageKeys()
		slices.Reverse(sorted)

		m.yieldEntries(sorted, yield)
	}
}

func (m *SortedMap[V]) yieldEntries(storageKeys []string, yield func(string, V) bool) {
	for _, sk := range storageKeys {
		e, ok := m.entries[sk]
		if !ok {
			continue
		}

		if !yield(e.key, e.value) {
			return
		}
	}
}

// ToMap returns the entries as a plain Go map keyed by the stored spellings.
func (m *SortedMap[V]) ToMap() map[string]V {
	out := make(map[string]V, len(m.entries))

	for _, e := range m.entries {
		out[e.key] = e.value
	}

	return out
}

// Iterate returns a forward iterator over a snapshot of Keys.
func (m *SortedMap[V]) Iterate() *Iterator[V] {
	return newIterator(m, m.Keys(), false)
}

// IterateReverse returns an iterator over a snapshot of Keys that yields them
// in descending order.
func (m *SortedMap[V]) IterateReverse() *Iterator[V] {
	return newIterator(m, m.Keys(), true)
}

// RangeKeys returns the keys at the sorted positions selected by s, in the
// order the slice visits them. A negative step yields descending keys.
func (m *SortedMap[V]) RangeKeys(s Slice) []string {
	sorted := m.Keys()
	indices := s.Indices(len(sorted))
	out := make([]string, 0, len(indices))

	for _, i := range indices {
		out = append(out, sorted[i])
	}

	return out
}

// Range returns a new map with the same settings holding the entries at the
// sorted positions selected by s. Out-of-range bounds are clipped.
func (m *SortedMap[V]) Range(s Slice) *SortedMap[V] {
	sorted := m.sortedStorageKeys()
	indices := s.Indices(len(sorted))
	out := newWithConfig[V](m.cfg, len(indices))

	for _, i := range indices {
		sk := sorted[i]
		out.entries[sk] = m.entries[sk]
	}

	return out
}
