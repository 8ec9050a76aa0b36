package monotonic

import "sync"

// Set is an append-only set. The zero value is an empty set ready to use.
type Set[T comparable] struct {
	mu    sync.RWMutex
	index map[T]struct{}
	order []T // insertion order, for deterministic iteration
}

// New returns a set holding values (duplicates are dropped).
func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{}
	s.AddAll(values...)

	return s
}

// Add inserts v if it is absent and reports whether it was inserted.
// Adding a value that is already present is a no-op.
func (s *Set[T]) Add(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(v)
}

// AddAll inserts every value and returns the number of new members.
func (s *Set[T]) AddAll(values ...T) int {
	if len(values) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0

	for _, v := range values {
		if s.addLocked(v) {
			added++
		}
	}

	return added
}

func (s *Set[T]) addLocked(v T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}

	if _, ok := s.index[v]; ok {
		return false
	}

	s.index[v] = struct{}{}
	s.order = append(s.order, v)

	return true
}

// Contains reports whether v was ever added.
func (s *Set[T]) Contains(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[v]

	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Values returns the members in insertion order. The slice is a copy.
func (s *Set[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.order))
	copy(out, s.order)

	return out
}

// Snapshot returns an independent copy of the current membership.
func (s *Set[T]) Snapshot() *Set[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Set[T]{
		index: make(map[T]struct{}, len(s.order)),
		order: make([]T, len(s.order)),
	}
	copy(snap.order, s.order)

	for _, v := range s.order {
		snap.index[v] = struct{}{}
	}

	return snap
}
