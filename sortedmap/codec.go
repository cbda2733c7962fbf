package sortedmap

import (
	"bytes"
	"errors"
	"fmt"
	"hash"

	"github.com/amp-labs/amp-sortedmap/hashing"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a YAML document being decoded into a
// SortedMap isn't a mapping.
var ErrNotMapping = errors.New("yaml node is not a mapping")

var (
	_ json.Marshaler   = (*SortedMap[any])(nil)
	_ json.Unmarshaler = (*SortedMap[any])(nil)
	_ yaml.Marshaler   = (*SortedMap[any])(nil)
	_ yaml.Unmarshaler = (*SortedMap[any])(nil)
	_ hashing.Hashable = (*SortedMap[any])(nil)
)

// MarshalJSON encodes the map as a JSON object whose members appear in sorted key order.
func (m *SortedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for key, value := range m.All() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		valueJSON, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding value for key %q: %w", key, err)
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON adds the members of a JSON object to the map, keeping the
// map's settings. Case variants within one object collapse as they do in New.
func (m *SortedMap[V]) UnmarshalJSON(data []byte) error {
	var decoded map[string]V

	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	for key, value := range decoded {
		m.Set(key, value)
	}

	return nil
}

// MarshalYAML encodes the map as a YAML mapping in sorted key order.
func (m *SortedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, value := range m.All() {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("encoding value for key %q: %w", key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode)
	}

	return node, nil
}

// UnmarshalYAML adds the entries of a YAML mapping to the map in document
// order, so when case is ignored the last spelling in the document wins.
func (m *SortedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w (line %d)", ErrNotMapping, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("decoding value for key %q (line %d): %w", keyNode.Value, valueNode.Line, err)
		}

		m.Set(keyNode.Value, value)
	}

	return nil
}

// UpdateHash writes the sorted key sequence to h. Each key is followed by a
// NUL byte so that ["ab"] and ["a", "b"] hash differently.
func (m *SortedMap[V]) UpdateHash(h hash.Hash) error {
	for _, key := range m.Keys() {
		if _, err := h.Write(append([]byte(key), 0)); err != nil {
			return err
		}
	}

	return nil
}

// Digest fingerprints the sorted key sequence with hashFunc. Maps enumerating
// the same keys in the same order have the same digest, regardless of values.
func (m *SortedMap[V]) Digest(hashFunc hashing.HashFunc) (string, error) {
	return hashFunc(m)
}
