package stats

// orderedMap groups values by key and iterates keys in first-insertion order.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]*V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]*V)}
}

// entry returns the value for k, inserting a zero value on first use.
func (m *orderedMap[K, V]) entry(k K) *V {
	if v, ok := m.values[k]; ok {
		return v
	}
	v := new(V)
	m.keys = append(m.keys, k)
	m.values[k] = v
	return v
}

func (m *orderedMap[K, V]) each(fn func(k K, v *V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

func (m *orderedMap[K, V]) len() int {
	return len(m.keys)
}
