package world

import (
	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
)

// State is the game's component arena: one typed store per component kind,
// registered with the ECS world under its kind tag.
// Accessed only from the game loop goroutine, no locks.
type State struct {
	*ecs.World

	Positions        *ecs.Store[component.Position]
	Velocities       *ecs.Store[component.Velocity]
	Accelerations    *ecs.Store[component.Acceleration]
	Timers           *ecs.Store[component.Timer]
	ResourceTimers   *ecs.Store[component.ResourceTimer]
	Resources        *ecs.Store[component.Resources]
	AddResources     *ecs.Store[component.AddResource]
	PlayerControlled *ecs.Store[component.PlayerControlled]
	CurrentPlayers   *ecs.Store[component.CurrentPlayer]
	Sprites          *ecs.Store[component.Sprite]
}

func NewState() *State {
	s := &State{
		World:            ecs.NewWorld(),
		Positions:        ecs.NewStore[component.Position](),
		Velocities:       ecs.NewStore[component.Velocity](),
		Accelerations:    ecs.NewStore[component.Acceleration](),
		Timers:           ecs.NewStore[component.Timer](),
		ResourceTimers:   ecs.NewStore[component.ResourceTimer](),
		Resources:        ecs.NewStore[component.Resources](),
		AddResources:     ecs.NewStore[component.AddResource](),
		PlayerControlled: ecs.NewStore[component.PlayerControlled](),
		CurrentPlayers:   ecs.NewStore[component.CurrentPlayer](),
		Sprites:          ecs.NewStore[component.Sprite](),
	}
	reg := s.Registry()
	reg.Register(component.KindPosition, s.Positions)
	reg.Register(component.KindVelocity, s.Velocities)
	reg.Register(component.KindAcceleration, s.Accelerations)
	reg.Register(component.KindTimer, s.Timers)
	reg.Register(component.KindResourceTimer, s.ResourceTimers)
	reg.Register(component.KindResources, s.Resources)
	reg.Register(component.KindAddResource, s.AddResources)
	reg.Register(component.KindPlayerControlled, s.PlayerControlled)
	reg.Register(component.KindCurrentPlayer, s.CurrentPlayers)
	reg.Register(component.KindSprite, s.Sprites)
	return s
}

// Option inserts one initial component row for a new entity.
type Option func(s *State, id ecs.EntityID)

// CreateEntity allocates a fresh id and inserts the given components. Never fails.
func (s *State) CreateEntity(opts ...Option) ecs.EntityID {
	id := s.World.CreateEntity()
	for _, opt := range opts {
		opt(s, id)
	}
	return id
}

// RemoveComponent deletes id's row of the given kind. No-op when absent.
func (s *State) RemoveComponent(id ecs.EntityID, kind ecs.Kind) {
	s.Registry().Remove(id, kind)
}

// Counts returns the number of rows per component kind.
func (s *State) Counts() map[ecs.Kind]int {
	counts := make(map[ecs.Kind]int, 16)
	s.Registry().Each(func(k ecs.Kind, t ecs.Table) {
		counts[k] = t.Len()
	})
	return counts
}

func WithPosition(p geom.Vec2) Option {
	return func(s *State, id ecs.EntityID) { s.Positions.Set(id, &component.Position{Vec2: p}) }
}

func WithVelocity(v geom.Vec2) Option {
	return func(s *State, id ecs.EntityID) { s.Velocities.Set(id, &component.Velocity{Vec2: v}) }
}

func WithAcceleration(a geom.Vec2) Option {
	return func(s *State, id ecs.EntityID) { s.Accelerations.Set(id, &component.Acceleration{Vec2: a}) }
}

func WithTimer(t component.Timer) Option {
	return func(s *State, id ecs.EntityID) { s.Timers.Set(id, &t) }
}

func WithResourceTimer(t component.ResourceTimer) Option {
	return func(s *State, id ecs.EntityID) { s.ResourceTimers.Set(id, &t) }
}

func WithResources(r component.Resources) Option {
	return func(s *State, id ecs.EntityID) { s.Resources.Set(id, &r) }
}

func WithPlayerControlled() Option {
	return func(s *State, id ecs.EntityID) { s.PlayerControlled.Set(id, &component.PlayerControlled{}) }
}

func WithCurrentPlayer() Option {
	return func(s *State, id ecs.EntityID) { s.CurrentPlayers.Set(id, &component.CurrentPlayer{}) }
}

func WithSprite(visual string) Option {
	return func(s *State, id ecs.EntityID) { s.Sprites.Set(id, &component.Sprite{Visual: visual}) }
}
