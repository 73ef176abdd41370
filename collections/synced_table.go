package collections

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// syncedTable guards every call on the wrapped table with a single
// mutex. The chained table itself has no internal locking, so this is
// the required wrapper for any multi-threaded use.
type syncedTable[K constraints.Integer, V any] struct {
	mu    sync.Mutex
	inner Table[K, V]
}

func Synced[K constraints.Integer, V any](inner Table[K, V]) Table[K, V] {
	return &syncedTable[K, V]{inner: inner}
}

func (t *syncedTable[K, V]) Contains(k K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Contains(k)
}

func (t *syncedTable[K, V]) Put(k K, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inner.Put(k, v)
}

func (t *syncedTable[K, V]) Get(k K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Get(k)
}

func (t *syncedTable[K, V]) Delete(k K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Delete(k)
}

func (t *syncedTable[K, V]) Empty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Empty()
}

func (t *syncedTable[K, V]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Size()
}

func (t *syncedTable[K, V]) Capacity() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Capacity()
}

func (t *syncedTable[K, V]) LoadFactor() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.LoadFactor()
}

func (t *syncedTable[K, V]) Keys() Set[K] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Keys()
}

func (t *syncedTable[K, V]) Values() []V {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Values()
}
