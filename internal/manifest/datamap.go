package manifest

import "gopkg.in/yaml.v3"

// Entry is a single key of a data map.
type Entry struct {
	Key   string
	Value string

	// Scalar is false when the value is a nested mapping or sequence. Such
	// values are never rewritten.
	Scalar bool

	// Null is true for an explicit null or a key with no value.
	Null bool
}

// DataMap is an ordered view over a manifest's data field. Writes go straight
// to the underlying document.
type DataMap struct {
	node *yaml.Node
}

// Len returns the number of keys.
func (m *DataMap) Len() int {
	return len(m.node.Content) / 2
}

// Entries returns the keys in document order.
func (m *DataMap) Entries() []Entry {
	entries := make([]Entry, 0, m.Len())
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		key, value := m.node.Content[i], m.node.Content[i+1]
		entry := Entry{Key: key.Value, Scalar: value.Kind == yaml.ScalarNode}
		if entry.Scalar {
			entry.Null = value.Tag == nullTag
			if !entry.Null {
				entry.Value = value.Value
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// Get returns the scalar value stored under key.
func (m *DataMap) Get(key string) (string, bool) {
	node := lookup(m.node, key)
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return scalarValue(node), true
}

// Set replaces the value of key, keeping its position. Unknown keys are
// appended.
func (m *DataMap) Set(key, value string) {
	setScalar(m.node, key, value)
}
