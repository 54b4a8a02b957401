// internal/entity/store.go
package entity

import (
	"sync"

	"go-vector-demo/internal/types"
)

// Store holds one attribute type keyed by entity.
// Entities are kept in insertion order; replacing a value keeps its slot.
type Store[T any] struct {
	mu       sync.RWMutex
	values   map[types.EntityID]T
	entities []types.EntityID
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		values:   make(map[types.EntityID]T),
		entities: make([]types.EntityID, 0, 16),
	}
}

// Set attaches val to e, replacing any previous value.
func (s *Store[T]) Set(e types.EntityID, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.values[e] = val
}

func (s *Store[T]) Get(e types.EntityID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[e]
	return val, ok
}

// Update applies fn to the value of e in place. It reports false if e has no value.
func (s *Store[T]) Update(e types.EntityID, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.values[e]
	if !ok {
		return false
	}
	fn(&val)
	s.values[e] = val
	return true
}

// Remove detaches the value of e. Remaining entities keep their order.
func (s *Store[T]) Remove(e types.EntityID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		return
	}
	delete(s.values, e)
	for i, id := range s.entities {
		if id == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

func (s *Store[T]) Has(e types.EntityID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[e]
	return ok
}

// All returns a copy of the entity list in insertion order.
func (s *Store[T]) All() []types.EntityID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[types.EntityID]T)
	s.entities = s.entities[:0]
}
