package system

import (
	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/world"
)

const (
	// PlayerImpulse is added to a steered entity's velocity every tick a
	// movement key is held. Not scaled by dt: the effect is frame-rate
	// dependent.
	PlayerImpulse = 20.0
	// Damping is applied to velocity once per tick after integration.
	Damping = 0.9
)

// PhysicsSystem integrates acceleration into velocity, then zeroes the
// acceleration: a force lasts exactly one tick. Phase 5 (Motion).
type PhysicsSystem struct {
	ws   *world.State
	time *TimeSystem
}

func NewPhysicsSystem(ws *world.State, r *coresys.Runner) (*PhysicsSystem, error) {
	ts, err := coresys.Require[*TimeSystem](r)
	if err != nil {
		return nil, err
	}
	return &PhysicsSystem{ws: ws, time: ts}, nil
}

func (s *PhysicsSystem) Phase() coresys.Phase { return coresys.PhaseMotion }

func (s *PhysicsSystem) Update() {
	dt := s.time.DT()
	ecs.Each2(s.ws.Velocities, s.ws.Accelerations, func(_ ecs.EntityID, vel *component.Velocity, acc *component.Acceleration) {
		vel.Vec2 = vel.Add(acc.Scale(dt))
		acc.Vec2 = geom.Vec2{}
	})
}

// PlayerMovementSystem turns held movement keys into a velocity impulse for
// every PlayerControlled entity. Phase 5 (Motion).
type PlayerMovementSystem struct {
	ws    *world.State
	input *InputSystem
}

func NewPlayerMovementSystem(ws *world.State, r *coresys.Runner) (*PlayerMovementSystem, error) {
	input, err := coresys.Require[*InputSystem](r)
	if err != nil {
		return nil, err
	}
	return &PlayerMovementSystem{ws: ws, input: input}, nil
}

func (s *PlayerMovementSystem) Phase() coresys.Phase { return coresys.PhaseMotion }

func (s *PlayerMovementSystem) Update() {
	dir := moveDirection(s.input.Snapshot())
	if dir.IsZero() {
		return
	}
	impulse := dir.Normalize().Scale(PlayerImpulse)
	ecs.Each2(s.ws.Velocities, s.ws.PlayerControlled, func(_ ecs.EntityID, vel *component.Velocity, _ *component.PlayerControlled) {
		vel.Vec2 = vel.Add(impulse)
	})
}

// moveDirection sums one unit axis vector per held key; screen y grows down.
func moveDirection(in InputSnapshot) geom.Vec2 {
	var dir geom.Vec2
	if in.MoveLeft {
		dir = dir.Add(geom.V(-1, 0))
	}
	if in.MoveRight {
		dir = dir.Add(geom.V(1, 0))
	}
	if in.MoveUp {
		dir = dir.Add(geom.V(0, -1))
	}
	if in.MoveDown {
		dir = dir.Add(geom.V(0, 1))
	}
	return dir
}

// MovementSystem integrates velocity into position, then damps velocity.
// Phase 5 (Motion).
type MovementSystem struct {
	ws   *world.State
	time *TimeSystem
}

func NewMovementSystem(ws *world.State, r *coresys.Runner) (*MovementSystem, error) {
	ts, err := coresys.Require[*TimeSystem](r)
	if err != nil {
		return nil, err
	}
	return &MovementSystem{ws: ws, time: ts}, nil
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMotion }

func (s *MovementSystem) Update() {
	dt := s.time.DT()
	ecs.Each2(s.ws.Positions, s.ws.Velocities, func(_ ecs.EntityID, pos *component.Position, vel *component.Velocity) {
		pos.Vec2 = pos.Add(vel.Scale(dt))
		vel.Vec2 = vel.Scale(Damping)
	})
}
