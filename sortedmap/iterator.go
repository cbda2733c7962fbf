package sortedmap

import "iter"

// Iterator hands out the keys of a SortedMap one at a time from a private
// snapshot taken when the iterator was created. Every key it returns is
// consumed; once exhausted it stays exhausted. Ask the map for a new Iterator
// to enumerate again.
//
// Changes made to the map after the snapshot are not visible to the iterator.
// An Iterator is not safe for concurrent use.
type Iterator[V any] struct {
	source  *SortedMap[V]
	keys    []string
	front   int
	back    int
	reverse bool
}

func newIterator[V any](source *SortedMap[V], keys []string, reverse bool) *Iterator[V] {
	return &Iterator[V]{
		source:  source,
		keys:    keys,
		back:    len(keys),
		reverse: reverse,
	}
}

// Next consumes and returns the next key. It returns false once the snapshot
// is exhausted.
func (it *Iterator[V]) Next() (string, bool) {
	if it.front >= it.back {
		return "", false
	}

	if it.reverse {
		it.back--

		return it.keys[it.back], true
	}

	key := it.keys[it.front]
	it.front++

	return key, true
}

// Remaining returns how many keys are left.
func (it *Iterator[V]) Remaining() int {
	return it.back - it.front
}

// Exhausted reports whether every key has been consumed.
func (it *Iterator[V]) Exhausted() bool {
	return it.front >= it.back
}

// Reverse reports whether the iterator yields keys in descending order.
func (it *Iterator[V]) Reverse() bool {
	return it.reverse
}

// Source returns the map the snapshot was taken from.
func (it *Iterator[V]) Source() *SortedMap[V] {
	return it.source
}

// Seq drains the iterator through a range loop. Breaking out of the loop
// leaves the remaining keys in place, but the key handed to the loop body
// is consumed.
func (it *Iterator[V]) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			key, ok := it.Next()
			if !ok || !yield(key) {
				return
			}
		}
	}
}
