package event

import (
	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
)

// Planted is emitted when the planter spawns a producing plant.
type Planted struct {
	Plant ecs.EntityID
	Owner ecs.EntityID
	Seed  string
	At    geom.Vec2
}

// ResourceGained is emitted when a mailbox row is applied to a wallet.
type ResourceGained struct {
	Owner  ecs.EntityID
	Kind   component.ResourceKind
	Amount int
	Total  int
}
