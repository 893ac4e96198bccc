package component

import "github.com/l1jgo/planter/internal/core/ecs"

// Component kinds, one per table in world.State.
const (
	KindPosition ecs.Kind = iota
	KindVelocity
	KindAcceleration
	KindTimer
	KindResourceTimer
	KindResources
	KindAddResource
	KindPlayerControlled
	KindCurrentPlayer
	KindSprite
)
