package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hp struct{ v int }
type tag struct{}

func collect[T any](s *Store[T]) []EntityID {
	var ids []EntityID
	for id := range s.All() {
		ids = append(ids, id)
	}
	return ids
}

func TestStore_Basic(t *testing.T) {
	s := NewStore[hp]()
	s.Set(1, &hp{v: 10})
	s.Set(2, &hp{v: 20})

	c, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, 10, c.v)

	s.Set(1, &hp{v: 11})
	c, _ = s.Get(1)
	require.Equal(t, 11, c.v)
	require.Equal(t, 2, s.Len(), "overwrite must not add a second row")

	s.Remove(1)
	s.Remove(1)
	s.Remove(99)
	_, ok = s.Get(1)
	require.False(t, ok)
	require.False(t, s.Has(1))
	require.Equal(t, 1, s.Len())
	require.Equal(t, []EntityID{2}, collect(s))
}

func TestStore_InsertionOrder(t *testing.T) {
	s := NewStore[hp]()
	for _, id := range []EntityID{5, 3, 9, 1} {
		s.Set(id, &hp{})
	}
	s.Remove(3)
	s.Set(3, &hp{})
	require.Equal(t, []EntityID{5, 9, 1, 3}, collect(s))
}

func TestStore_RemoveCurrentDuringIteration(t *testing.T) {
	s := NewStore[hp]()
	for id := EntityID(1); id <= 6; id++ {
		s.Set(id, &hp{v: int(id)})
	}

	visits := map[EntityID]int{}
	for id := range s.All() {
		visits[id]++
		if id%2 == 0 {
			s.Remove(id)
		}
	}

	for id := EntityID(1); id <= 6; id++ {
		assert.Equal(t, 1, visits[id], "entity %d visited once", id)
	}
	require.Equal(t, []EntityID{1, 3, 5}, collect(s))
}

func TestStore_RemoveOtherDuringIteration(t *testing.T) {
	s := NewStore[hp]()
	for id := EntityID(1); id <= 4; id++ {
		s.Set(id, &hp{})
	}

	var seen []EntityID
	s.Each(func(id EntityID, _ *hp) {
		seen = append(seen, id)
		if id == 1 {
			s.Remove(3)
		}
	})
	require.Equal(t, []EntityID{1, 2, 4}, seen)
}

func TestStore_InsertDuringIterationNotVisited(t *testing.T) {
	s := NewStore[hp]()
	s.Set(1, &hp{})
	s.Set(2, &hp{})

	var seen []EntityID
	for id := range s.All() {
		seen = append(seen, id)
		s.Set(id+10, &hp{})
	}
	require.Equal(t, []EntityID{1, 2}, seen)
	require.Equal(t, 4, s.Len())
}

func TestStore_BreakReleasesIteration(t *testing.T) {
	s := NewStore[hp]()
	s.Set(1, &hp{})
	s.Set(2, &hp{})
	for range s.All() {
		break
	}
	s.Remove(1)
	require.Equal(t, []EntityID{2}, collect(s))
	require.Zero(t, s.iterating)
	require.Zero(t, s.holes)
}

func TestEach2(t *testing.T) {
	a := NewStore[hp]()
	b := NewStore[tag]()
	for id := EntityID(1); id <= 5; id++ {
		a.Set(id, &hp{v: int(id)})
	}
	b.Set(2, &tag{})
	b.Set(4, &tag{})

	var got []EntityID
	Each2(a, b, func(id EntityID, h *hp, _ *tag) {
		got = append(got, id)
		h.v *= 10
	})
	require.Equal(t, []EntityID{2, 4}, got)
	c, _ := a.Get(4)
	require.Equal(t, 40, c.v, "rows are yielded by pointer")
}

func TestEach2_RemoveJoinedRowMidPass(t *testing.T) {
	a := NewStore[hp]()
	b := NewStore[tag]()
	for id := EntityID(1); id <= 4; id++ {
		a.Set(id, &hp{})
		b.Set(id, &tag{})
	}

	var got []EntityID
	Each2(a, b, func(id EntityID, _ *hp, _ *tag) {
		got = append(got, id)
		b.Remove(id)
		if id == 1 {
			b.Remove(3)
		}
	})
	require.Equal(t, []EntityID{1, 2, 4}, got)
	require.Zero(t, b.Len())
}

func TestEach3(t *testing.T) {
	a := NewStore[hp]()
	b := NewStore[hp]()
	c := NewStore[tag]()
	for id := EntityID(1); id <= 3; id++ {
		a.Set(id, &hp{})
		b.Set(id, &hp{})
	}
	c.Set(3, &tag{})

	var got []EntityID
	Each3(a, b, c, func(id EntityID, _ *hp, _ *hp, _ *tag) {
		got = append(got, id)
	})
	require.Equal(t, []EntityID{3}, got)
}

func TestEntityPool_Monotonic(t *testing.T) {
	p := NewEntityPool()
	require.False(t, p.Alive(0))
	a := p.Create()
	b := p.Create()
	require.Equal(t, EntityID(1), a)
	require.Equal(t, EntityID(2), b)
	require.True(t, p.Alive(b))
	require.False(t, p.Alive(3))
	require.Equal(t, 2, p.Allocated())
	require.Equal(t, "e2", b.String())
}

func TestRegistry(t *testing.T) {
	const (
		kindHP Kind = iota
		kindTag
	)
	w := NewWorld()
	hps := NewStore[hp]()
	tags := NewStore[tag]()
	w.Registry().Register(kindHP, hps)
	w.Registry().Register(kindTag, tags)

	id := w.CreateEntity()
	hps.Set(id, &hp{})
	tags.Set(id, &tag{})
	require.Equal(t, []Kind{kindHP, kindTag}, w.Components(id))

	w.Registry().Remove(id, kindTag)
	w.Registry().Remove(id, Kind(42))
	require.Equal(t, []Kind{kindHP}, w.Components(id))

	require.Panics(t, func() { w.Registry().Register(kindHP, hps) })
}
