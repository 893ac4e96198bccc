package ecs

// World is the top-level ECS container. It owns the entity pool and the
// registry of component stores. Game-specific stores live on top of it.
type World struct {
	pool     *EntityPool
	registry *Registry
}

func NewWorld() *World {
	return &World{
		pool:     NewEntityPool(),
		registry: NewRegistry(),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Components lists the kinds that hold a row for id.
func (w *World) Components(id EntityID) []Kind {
	var kinds []Kind
	w.registry.Each(func(k Kind, t Table) {
		if t.Has(id) {
			kinds = append(kinds, k)
		}
	})
	return kinds
}
