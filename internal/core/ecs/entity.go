package ecs

import "strconv"

// EntityID is an opaque entity handle. Ids are allocated monotonically from 1
// and never reused; 0 is the invalid id.
type EntityID uint64

func (id EntityID) IsZero() bool   { return id == 0 }
func (id EntityID) String() string { return "e" + strconv.FormatUint(uint64(id), 10) }

// EntityPool allocates entity ids. There is no free list: rows are deleted
// from stores but the id itself is never reclaimed.
type EntityPool struct {
	next uint64
}

func NewEntityPool() *EntityPool {
	return &EntityPool{next: 1}
}

func (p *EntityPool) Create() EntityID {
	id := EntityID(p.next)
	p.next++
	return id
}

// Alive reports whether id was handed out by this pool.
func (p *EntityPool) Alive(id EntityID) bool {
	return id != 0 && uint64(id) < p.next
}

// Allocated returns how many ids have been handed out.
func (p *EntityPool) Allocated() int {
	return int(p.next - 1)
}
