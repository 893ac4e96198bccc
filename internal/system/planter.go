package system

import (
	"errors"
	"fmt"

	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/event"
	"github.com/l1jgo/planter/internal/core/geom"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/data"
	"github.com/l1jgo/planter/internal/scripting"
	"github.com/l1jgo/planter/internal/world"
	"go.uber.org/zap"
)

// ErrUnknownSeed is returned when the configured seed is not in the seed table.
var ErrUnknownSeed = errors.New("unknown seed")

// PlanterSystem plants a producing seed at the pointer on every click, one
// plant per CurrentPlayer, paying into that player's wallet.
// Phase 1 (Action).
type PlanterSystem struct {
	ws    *world.State
	input *InputSystem
	seed  *data.Seed
	lua   *scripting.Engine // optional
	bus   *event.Bus
	log   *zap.Logger
}

func NewPlanterSystem(
	ws *world.State,
	r *coresys.Runner,
	seeds *data.SeedTable,
	seedName string,
	lua *scripting.Engine,
	bus *event.Bus,
	log *zap.Logger,
) (*PlanterSystem, error) {
	input, err := coresys.Require[*InputSystem](r)
	if err != nil {
		return nil, fmt.Errorf("planter: %w", err)
	}
	var seed *data.Seed
	if seeds != nil {
		seed = seeds.Get(seedName)
	}
	if seed == nil {
		return nil, fmt.Errorf("planter: %w %q", ErrUnknownSeed, seedName)
	}
	return &PlanterSystem{
		ws:    ws,
		input: input,
		seed:  seed,
		lua:   lua,
		bus:   bus,
		log:   log,
	}, nil
}

func (s *PlanterSystem) Phase() coresys.Phase { return coresys.PhaseAction }

func (s *PlanterSystem) Update() {
	in := s.input.Snapshot()
	if !in.Click {
		return
	}
	s.log.Debug("planter clicked", zap.Float64("x", in.Pointer.X), zap.Float64("y", in.Pointer.Y))

	for owner := range s.ws.CurrentPlayers.All() {
		s.plant(owner, in.Pointer)
	}
}

func (s *PlanterSystem) plant(owner ecs.EntityID, at geom.Vec2) {
	order := scripting.PlantOrder{Amount: s.seed.Amount, Timeout: s.seed.Timeout, Repeat: s.seed.Repeat}
	if s.lua != nil {
		order = s.lua.PlantOrder(scripting.PlantContext{
			Seed:     s.seed.Name,
			Resource: s.seed.Resource.String(),
			Amount:   s.seed.Amount,
			Timeout:  s.seed.Timeout,
			Repeat:   s.seed.Repeat,
			X:        at.X,
			Y:        at.Y,
			Planted:  s.plantsOf(owner),
		})
	}

	plant := s.ws.CreateEntity(
		world.WithResourceTimer(component.ResourceTimer{
			Timer:    component.Timer{Timeout: order.Timeout, Repeat: order.Repeat},
			Owner:    owner,
			Resource: s.seed.Resource,
			Amount:   order.Amount,
		}),
		world.WithPosition(at),
		world.WithSprite(s.seed.Visual),
	)
	event.Emit(s.bus, event.Planted{Plant: plant, Owner: owner, Seed: s.seed.Name, At: at})
}

// plantsOf counts the producing plants already paying owner.
func (s *PlanterSystem) plantsOf(owner ecs.EntityID) int {
	n := 0
	for _, t := range s.ws.ResourceTimers.All() {
		if t.Owner == owner {
			n++
		}
	}
	return n
}

// Seed returns the seed planted on click.
func (s *PlanterSystem) Seed() *data.Seed { return s.seed }
