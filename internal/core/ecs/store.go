package ecs

import "iter"

// Table is implemented by every component store so the Registry can address
// stores by kind without knowing their row type.
type Table interface {
	Remove(id EntityID)
	Has(id EntityID) bool
	Len() int
}

// Store is a generic typed component table: one row per entity, iterated in
// insertion order. No reflect, no interface{}.
//
// Removing a row leaves a hole that iteration skips; holes are compacted the
// next time an iteration starts with no other pass in flight. This makes it
// safe to remove the current entity's row (or any other row) mid-iteration.
// Rows added during a pass land past its end and are not visited by it.
type Store[T any] struct {
	index     map[EntityID]int
	ids       []EntityID // 0 marks a hole
	rows      []*T
	holes     int
	iterating int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: make(map[EntityID]int, 64),
		ids:   make([]EntityID, 0, 64),
		rows:  make([]*T, 0, 64),
	}
}

// Set inserts or overwrites the row for id.
func (s *Store[T]) Set(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.rows[i] = c
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.rows = append(s.rows, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.rows[i], true
}

// Remove deletes the row for id. No-op when absent.
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.ids[i] = 0
	s.rows[i] = nil
	s.holes++
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.index)
}

// All yields every row in insertion order.
func (s *Store[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		s.begin()
		defer s.end()
		n := len(s.ids)
		for i := 0; i < n; i++ {
			id := s.ids[i]
			if id == 0 {
				continue
			}
			if !yield(id, s.rows[i]) {
				return
			}
		}
	}
}

func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.All() {
		fn(id, c)
	}
}

func (s *Store[T]) begin() {
	if s.iterating == 0 && s.holes > 0 {
		s.compact()
	}
	s.iterating++
}

func (s *Store[T]) end() {
	s.iterating--
}

func (s *Store[T]) compact() {
	w := 0
	for r, id := range s.ids {
		if id == 0 {
			continue
		}
		s.ids[w] = id
		s.rows[w] = s.rows[r]
		s.index[id] = w
		w++
	}
	clear(s.rows[w:])
	s.ids = s.ids[:w]
	s.rows = s.rows[:w]
	s.holes = 0
}
