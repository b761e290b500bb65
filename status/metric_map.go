package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap hands out one stable *T per key
// Writers fetch the pointer once and update it directly; the map is only
// touched again by readers enumerating it
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	n     atomic.Int64
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	if p, ok := m.items.Load(key); ok {
		return p.(*T)
	}
	p, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.n.Add(1)
	}
	return p.(*T)
}

// Range calls fn for every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)

	for _, k := range keys {
		if p, ok := m.items.Load(k); ok {
			fn(k, p.(*T))
		}
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	return int(m.n.Load())
}
