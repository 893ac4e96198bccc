package component

import "github.com/l1jgo/planter/internal/core/geom"

// Position is a world-space location in pixels.
type Position struct {
	geom.Vec2
}

// Velocity is the per-second rate of change of Position.
type Velocity struct {
	geom.Vec2
}

// Acceleration is the per-second rate of change of Velocity. Physics zeroes
// it after every integration, so a force has to be rewritten each tick.
type Acceleration struct {
	geom.Vec2
}
