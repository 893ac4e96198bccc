package system

import (
	"fmt"
	"time"

	"github.com/l1jgo/planter/internal/core/event"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/data"
	"github.com/l1jgo/planter/internal/scripting"
	"github.com/l1jgo/planter/internal/world"
	"go.uber.org/zap"
)

// Deps carries the collaborators the pipeline is built from.
type Deps struct {
	Input       InputSource // nil: IdleInput
	Clock       Clock       // nil: wall clock
	MaxStep     time.Duration
	CellSize    int
	Seeds       *data.SeedTable
	DefaultSeed string
	Lua         *scripting.Engine // nil: seeds are planted as defined
	Bus         *event.Bus        // nil: a private bus
	Log         *zap.Logger
}

// Build registers the fixed per-tick pipeline:
//
//	Input → Planter → Time → Timer → ResourceTimer → Grid → Physics → PlayerMovement → Movement → Event
//
// Each constructor resolves the systems it reads from once, here. Any error
// is a configuration error and the game must not start.
func Build(ws *world.State, d Deps) (*coresys.Runner, error) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Bus == nil {
		d.Bus = event.NewBus()
	}

	r := coresys.NewRunner()
	ctors := []func() (coresys.System, error){
		func() (coresys.System, error) { return NewInputSystem(d.Input), nil },
		func() (coresys.System, error) {
			return NewPlanterSystem(ws, r, d.Seeds, d.DefaultSeed, d.Lua, d.Bus, d.Log)
		},
		func() (coresys.System, error) { return NewTimeSystem(d.Clock, d.MaxStep), nil },
		func() (coresys.System, error) { return NewTimerSystem(ws, r) },
		func() (coresys.System, error) { return NewResourceTimerSystem(ws, r, d.Bus, d.Log) },
		func() (coresys.System, error) { return NewGridSystem(ws, d.CellSize), nil },
		func() (coresys.System, error) { return NewPhysicsSystem(ws, r) },
		func() (coresys.System, error) { return NewPlayerMovementSystem(ws, r) },
		func() (coresys.System, error) { return NewMovementSystem(ws, r) },
		func() (coresys.System, error) { return NewEventSystem(d.Bus), nil },
	}
	for _, ctor := range ctors {
		s, err := ctor()
		if err != nil {
			return nil, fmt.Errorf("build pipeline: %w", err)
		}
		if err := r.Register(s); err != nil {
			return nil, fmt.Errorf("build pipeline: %w", err)
		}
		d.Log.Debug("system registered", zap.String("system", fmt.Sprintf("%T", s)), zap.Stringer("phase", s.Phase()))
	}
	return r, nil
}
