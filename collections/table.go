package collections

import "golang.org/x/exp/constraints"

type Table[K constraints.Integer, V any] interface {
	Contains(k K) bool
	Put(k K, v V)
	Get(k K) (V, bool)
	Delete(k K) (V, bool)
	Empty() bool
	Size() int
	Capacity() int
	LoadFactor() float64
	Keys() Set[K]
	Values() []V
}
