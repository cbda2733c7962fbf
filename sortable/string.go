package sortable

import "facette.io/natsort"

// String orders strings byte-wise.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Natural orders strings so that runs of digits compare by numeric value,
// e.g. "v2" sorts before "v10".
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other))
}
