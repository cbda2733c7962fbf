package sortedmap

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownFold is returned by ParseFold when the name doesn't match a known Fold.
var ErrUnknownFold = errors.New("unknown case fold")

// Fold selects how keys are reduced to a case-neutral form when a map ignores case.
type Fold int

const (
	// FoldLower lower-cases keys with strings.ToLower.
	FoldLower Fold = iota

	// FoldUnicode applies full Unicode case folding, so that e.g. "ß" and "ss"
	// can share an identity.
	FoldUnicode
)

// Apply returns the folded form of s.
func (f Fold) Apply(s string) string {
	if f == FoldUnicode {
		return cases.Fold().String(s)
	}

	return strings.ToLower(s)
}

// String returns the configuration name of the fold.
func (f Fold) String() string {
	switch f {
	case FoldLower:
		return "lower"
	case FoldUnicode:
		return "unicode"
	default:
		return fmt.Sprintf("Fold(%d)", int(f))
	}
}

// ParseFold maps a configuration name ("lower", "unicode") to a Fold.
// The empty string selects FoldLower.
func ParseFold(name string) (Fold, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lower":
		return FoldLower, nil
	case "unicode":
		return FoldUnicode, nil
	default:
		return FoldLower, fmt.Errorf("%w: %q", ErrUnknownFold, name)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fold) UnmarshalText(text []byte) error {
	parsed, err := ParseFold(string(text))
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}
