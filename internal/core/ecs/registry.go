package ecs

import "fmt"

// Kind is a small closed tag naming one component table.
type Kind uint8

// Registry maps component kinds to their stores so rows can be addressed by
// kind tag instead of by Go type.
type Registry struct {
	tables map[Kind]Table
	order  []Kind
}

func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[Kind]Table, 16),
		order:  make([]Kind, 0, 16),
	}
}

// Register adds a component store under kind. Registering a kind twice is a
// wiring bug and panics.
func (r *Registry) Register(kind Kind, t Table) {
	if _, dup := r.tables[kind]; dup {
		panic(fmt.Sprintf("ecs: component kind %d registered twice", kind))
	}
	r.tables[kind] = t
	r.order = append(r.order, kind)
}

// Table returns the store registered under kind.
func (r *Registry) Table(kind Kind) (Table, bool) {
	t, ok := r.tables[kind]
	return t, ok
}

// Remove deletes id's row from the kind's store. No-op for unknown kinds.
func (r *Registry) Remove(id EntityID, kind Kind) {
	if t, ok := r.tables[kind]; ok {
		t.Remove(id)
	}
}

// Each visits every registered store in registration order.
func (r *Registry) Each(fn func(Kind, Table)) {
	for _, k := range r.order {
		fn(k, r.tables[k])
	}
}
