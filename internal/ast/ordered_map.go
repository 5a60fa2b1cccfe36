package ast

// OrderedMap holds string-keyed entries in first-seen order while letting a
// later Set of the same key overwrite the stored value. Every Nenyr
// declaration family that maps identifiers to entries (Typefaces, Aliases,
// Variables, Breakpoints groups, Animation and Class registries, StyleBlock
// properties) shares this "duplicate key merges, later value wins, original
// position kept" behavior, so it lives in one generic type rather than
// being hand-rolled eight times.
type OrderedMap[V any] struct {
	keys []string
	vals map[string]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{vals: make(map[string]V)}
}

// Set inserts or overwrites key. It reports whether key already existed,
// which callers use to decide whether a duplicate-key warning is due.
func (m *OrderedMap[V]) Set(key string, val V) bool {
	_, existed := m.vals[key]
	if !existed {
		m.keys = append(m.keys, key)
	}

	m.vals[key] = val

	return existed
}

// Get looks up key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]

	return v, ok
}

// Keys returns the keys in first-seen order.
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

// Len reports the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Each visits every entry in first-seen order.
func (m *OrderedMap[V]) Each(fn func(key string, val V)) {
	for _, k := range m.keys {
		fn(k, m.vals[k])
	}
}
