package component

import "github.com/l1jgo/planter/internal/core/ecs"

// Timer is a generic countdown. Elapsed and Timeout are in seconds.
type Timer struct {
	Timeout float64
	Elapsed float64
	Paused  bool
	Repeat  bool
}

// ResourceTimer is a timed production order: every time it expires Amount
// units of Resource are mailed to Owner.
type ResourceTimer struct {
	Timer
	Owner    ecs.EntityID // weak reference, lookup only
	Resource ResourceKind
	Amount   int
}

// AddResource is a transient mailbox row. It is created and consumed inside
// ResourceTimerSystem within a single tick.
type AddResource struct {
	Owner  ecs.EntityID
	Kind   ResourceKind
	Amount int
}
