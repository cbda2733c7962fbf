// Package optional provides a Value type for things that may or may not be set,
// such as the open ends of a slice specification.
package optional

import (
	"fmt"
)

// Value holds a T or nothing. The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it was set.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String formats the value with %v, or returns the empty string when unset.
// An unset bound therefore prints the way it's written in "start:stop" text.
func (o Value[T]) String() string {
	if !o.isSet {
		return ""
	}

	return fmt.Sprintf("%v", o.value)
}

// Map applies f to the value if present.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
