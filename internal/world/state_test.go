package world

import (
	"testing"

	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
	"github.com/stretchr/testify/require"
)

func TestCreateEntity(t *testing.T) {
	s := NewState()
	a := s.CreateEntity(WithCurrentPlayer(), WithResources(component.Resources{}))
	b := s.CreateEntity(
		WithPlayerControlled(),
		WithPosition(geom.Splat(128)),
		WithVelocity(geom.Splat(128)),
		WithSprite("green_circle"),
	)
	empty := s.CreateEntity()

	require.Less(t, a, b)
	require.Less(t, b, empty)
	require.True(t, s.Alive(empty))
	require.Empty(t, s.Components(empty))

	p, ok := s.Positions.Get(b)
	require.True(t, ok)
	require.Equal(t, geom.V(128, 128), p.Vec2)
	require.True(t, s.CurrentPlayers.Has(a))
	require.False(t, s.CurrentPlayers.Has(b))
	require.Equal(t, []ecs.Kind{
		component.KindPosition,
		component.KindVelocity,
		component.KindPlayerControlled,
		component.KindSprite,
	}, s.Components(b))
}

func TestRemoveComponentByKind(t *testing.T) {
	s := NewState()
	id := s.CreateEntity(
		WithResourceTimer(component.ResourceTimer{Timer: component.Timer{Timeout: 3}, Amount: 10}),
		WithPosition(geom.V(1, 2)),
	)

	s.RemoveComponent(id, component.KindResourceTimer)
	s.RemoveComponent(id, component.KindResourceTimer)
	s.RemoveComponent(id, component.KindVelocity)

	require.False(t, s.ResourceTimers.Has(id))
	require.True(t, s.Positions.Has(id))

	counts := s.Counts()
	require.Equal(t, 1, counts[component.KindPosition])
	require.Zero(t, counts[component.KindResourceTimer])
}

func TestWithOptionsCopyValues(t *testing.T) {
	s := NewState()
	timer := component.Timer{Timeout: 1}
	a := s.CreateEntity(WithTimer(timer))
	b := s.CreateEntity(WithTimer(timer))

	ta, _ := s.Timers.Get(a)
	ta.Elapsed = 0.5
	tb, _ := s.Timers.Get(b)
	require.Zero(t, tb.Elapsed, "each entity owns its own row")
}
