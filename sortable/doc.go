// Package sortable defines how string keys are ordered when a sorted map
// enumerates them.
//
// # Overview
//
// The [Sortable] interface pairs an equality check with a LessThan method.
// Two wrapper types implement it for strings:
//
//   - [String] compares byte-wise, the same as Go's < operator.
//   - [Natural] compares runs of digits numerically, so "v2" sorts before "v10".
//
// Most callers don't use the wrappers directly. They pick an [Order] and let it
// sort a slice of keys:
//
//	keys := []string{"v10", "v2", "v1"}
//	sortable.OrderNatural.Sort(keys)
//	// keys is now: v1, v2, v10
//
// # Ties
//
// Natural order can consider two different strings equivalent ("a01" and "a1").
// [Order.Compare] breaks such ties byte-wise so the result is always a total
// order and sorting is deterministic.
//
// # Configuration
//
// Orders have stable names ("ordinal", "natural") that round-trip through
// [ParseOrder] and [Order.String]. [Order] also implements
// encoding.TextUnmarshaler, so it can be loaded directly from environment
// variables or config files.
package sortable
