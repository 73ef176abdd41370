package collections

type hashSet[V comparable] struct {
	entries map[V]struct{}
}

func NewHashSet[V comparable]() Set[V] {
	return &hashSet[V]{
		entries: make(map[V]struct{}),
	}
}

func (s *hashSet[V]) Contains(v V) bool {
	if _, ok := s.entries[v]; ok {
		return true
	}
	return false
}

func (s *hashSet[V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries[v] = struct{}{}
	return nil
}

func (s *hashSet[V]) Remove(v V) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	delete(s.entries, v)
	return nil
}

func (s *hashSet[V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}
