package sortable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownOrder is returned by ParseOrder when the name doesn't match a known Order.
var ErrUnknownOrder = errors.New("unknown sort order")

// Sortable is implemented by types that know how to order themselves.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to, or after b.
// It's shaped for use with slices.SortFunc.
func Compare[T Sortable[T]](a, b T) int {
	if a.Equals(b) {
		return 0
	}

	less, greater := a.LessThan(b), b.LessThan(a)

	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	default:
		// Equivalent but not equal (e.g. "a01" vs "a1" in natural order).
		// Callers break the tie themselves.
		return 0
	}
}

// Order selects how string keys are compared when a sorted sequence is produced.
type Order int

const (
	// OrderOrdinal compares strings byte-wise, the way Go's < operator does.
	OrderOrdinal Order = iota

	// OrderNatural compares embedded digit runs numerically ("file2" < "file10").
	OrderNatural
)

// String returns the configuration name of the order.
func (o Order) String() string {
	switch o {
	case OrderOrdinal:
		return "ordinal"
	case OrderNatural:
		return "natural"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a configuration name ("ordinal", "natural") to an Order.
// Matching is case-insensitive; the empty string selects OrderOrdinal.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ordinal":
		return OrderOrdinal, nil
	case "natural":
		return OrderNatural, nil
	default:
		return OrderOrdinal, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so an Order can be read from config.
func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}

// Compare orders two strings. The result is a total order: when the selected
// ordering considers a and b equivalent, the byte-wise comparison decides.
func (o Order) Compare(a, b string) int {
	if o == OrderNatural {
		if c := Compare(Natural(a), Natural(b)); c != 0 {
			return c
		}
	}

	return Compare(String(a), String(b))
}

// Sort sorts the strings in place.
func (o Order) Sort(items []string) {
	slices.SortFunc(items, o.Compare)
}
