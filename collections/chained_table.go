package collections

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/itis-algos/chaintable/utils/hashing"
)

const growthCoefficient = 2

type entry[K constraints.Integer, V any] struct {
	key   K
	value V
}

type chainedTable[K constraints.Integer, V any] struct {
	buckets    [][]entry[K, V]
	numKeys    int
	loadFactor float64
	log        *log.Entry
}

// NewChainedTable allocates a table with capacity empty buckets.
// loadFactor is the size/capacity ratio at which the table grows; it is
// fixed for the lifetime of the table.
func NewChainedTable[K constraints.Integer, V any](capacity int, loadFactor float64) (Table[K, V], error) {
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	if loadFactor <= 0.0 || loadFactor > 1.0 {
		return nil, ErrLoadFactorOutOfRange
	}
	return &chainedTable[K, V]{
		buckets:    make([][]entry[K, V], capacity),
		numKeys:    0,
		loadFactor: loadFactor,
		log:        log.WithFields(log.Fields{"component": "chainedTable"}),
	}, nil
}

func (t *chainedTable[K, V]) hash(k K) int {
	return hashing.Index(k, len(t.buckets))
}

func (t *chainedTable[K, V]) Contains(k K) bool {
	_, ok := t.Get(k)
	return ok
}

func (t *chainedTable[K, V]) Put(k K, v V) {
	index := t.hash(k)
	for i := range t.buckets[index] {
		if t.buckets[index][i].key == k {
			t.buckets[index][i].value = v
			return
		}
	}
	t.buckets[index] = append(t.buckets[index], entry[K, V]{key: k, value: v})
	t.numKeys++
	if float64(t.numKeys)/float64(len(t.buckets)) >= t.loadFactor {
		t.grow()
	}
}

func (t *chainedTable[K, V]) grow() {
	newCapacity := len(t.buckets) * growthCoefficient
	newBuckets := make([][]entry[K, V], newCapacity)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			index := hashing.Index(e.key, newCapacity)
			newBuckets[index] = append(newBuckets[index], e)
		}
	}
	t.log.Debugf("table grown, capacity %d -> %d", len(t.buckets), newCapacity)
	t.buckets = newBuckets
}

func (t *chainedTable[K, V]) Get(k K) (v V, ok bool) {
	for _, e := range t.buckets[t.hash(k)] {
		if e.key == k {
			return e.value, true
		}
	}
	return v, false
}

func (t *chainedTable[K, V]) Delete(k K) (v V, ok bool) {
	index := t.hash(k)
	bucket := t.buckets[index]
	for i := range bucket {
		if bucket[i].key == k {
			v = bucket[i].value
			t.buckets[index] = append(bucket[:i], bucket[i+1:]...)
			t.numKeys--
			return v, true
		}
	}
	return v, false
}

func (t *chainedTable[K, V]) Empty() bool {
	return t.Size() == 0
}

func (t *chainedTable[K, V]) Size() int {
	return t.numKeys
}

func (t *chainedTable[K, V]) Capacity() int {
	return len(t.buckets)
}

func (t *chainedTable[K, V]) LoadFactor() float64 {
	return t.loadFactor
}

func (t *chainedTable[K, V]) Keys() Set[K] {
	keys := NewHashSet[K]()
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			// keys are unique across buckets, Add cannot fail
			_ = keys.Add(e.key)
		}
	}
	return keys
}

func (t *chainedTable[K, V]) Values() []V {
	arr := make([]V, 0, t.numKeys)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			arr = append(arr, e.value)
		}
	}
	return arr
}

func (t chainedTable[K, V]) String() string {
	m := make(map[K]V, t.numKeys)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			m[e.key] = e.value
		}
	}
	return fmt.Sprint(m)
}
