package sortedmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sortedmap/optional"
)

// ErrInvalidSlice is returned by ParseSlice for malformed text.
var ErrInvalidSlice = errors.New("invalid slice")

// Slice selects positions of a sorted key sequence, with the usual
// start:stop:step meaning. Unset bounds run to the matching end of the
// sequence, negative bounds count from the end, and bounds past either end
// are clipped. A Step of 0 means 1.
type Slice struct {
	Start optional.Value[int]
	Stop  optional.Value[int]
	Step  int
}

// Span selects positions start (inclusive) to stop (exclusive).
func Span(start, stop int) Slice {
	return Slice{Start: optional.Some(start), Stop: optional.Some(stop)}
}

// From selects positions from start to the end.
func From(start int) Slice {
	return Slice{Start: optional.Some(start)}
}

// Until selects positions from the beginning up to stop (exclusive).
func Until(stop int) Slice {
	return Slice{Stop: optional.Some(stop)}
}

// WithStep returns a copy of s with the given step.
func (s Slice) WithStep(step int) Slice {
	s.Step = step

	return s
}

func (s Slice) step() int {
	if s.Step == 0 {
		return 1
	}

	return s.Step
}

// String renders s as "start:stop" or "start:stop:step".
func (s Slice) String() string {
	out := s.Start.String() + ":" + s.Stop.String()

	if s.Step != 0 {
		out += ":" + strconv.Itoa(s.Step)
	}

	return out
}

// ParseSlice parses "start:stop" or "start:stop:step". Any field may be left
// empty. An explicit step of 0 is rejected.
func ParseSlice(text string) (Slice, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Slice{}, fmt.Errorf("%w: %q: want start:stop[:step]", ErrInvalidSlice, text)
	}

	var (
		s   Slice
		err error
	)

	if s.Start, err = parseBound(parts[0]); err != nil {
		return Slice{}, fmt.Errorf("%w: %q: start: %w", ErrInvalidSlice, text, err)
	}

	if s.Stop, err = parseBound(parts[1]); err != nil {
		return Slice{}, fmt.Errorf("%w: %q: stop: %w", ErrInvalidSlice, text, err)
	}

	if len(parts) == 3 {
		step, err := parseBound(parts[2])
		if err != nil {
			return Slice{}, fmt.Errorf("%w: %q: step: %w", ErrInvalidSlice, text, err)
		}

		if value, ok := step.Get(); ok {
			if value == 0 {
				return Slice{}, fmt.Errorf("%w: %q: step cannot be zero", ErrInvalidSlice, text)
			}

			s.Step = value
		}
	}

	return s, nil
}

func parseBound(field string) (optional.Value[int], error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return optional.None[int](), nil
	}

	n, err := strconv.Atoi(field)
	if err != nil {
		return optional.None[int](), err
	}

	return optional.Some(n), nil
}

// Indices returns the positions s selects from a sequence of the given length,
// in visiting order.
func (s Slice) Indices(length int) []int {
	step := s.step()

	// With a negative step the walk runs from upper down to (but excluding) lower.
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clip := func(bound optional.Value[int], unset int) int {
		value, ok := bound.Get()
		if !ok {
			return unset
		}

		if value < 0 {
			return max(value+length, lower)
		}

		return min(value, upper)
	}

	var start, stop int

	if step > 0 {
		start, stop = clip(s.Start, lower), clip(s.Stop, upper)
	} else {
		start, stop = clip(s.Start, upper), clip(s.Stop, lower)
	}

	var out []int

	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		out = append(out, i)
	}

	return out
}
