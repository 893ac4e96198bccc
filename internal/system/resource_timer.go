package system

import (
	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/event"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/world"
	"go.uber.org/zap"
)

// ResourceTimerSystem runs production orders in two phases per tick.
//
// Advance: every unpaused ResourceTimer ticks forward; on expiry it mails an
// AddResource row to its owner (overwriting any pending one, so an owner
// holds at most one per tick) and then restarts (repeat) or is removed from
// its own entity (one-shot).
//
// Apply: every AddResource row is credited to the owner's Resources wallet,
// if it has one, and deleted either way. Unmatched mail is dropped, never
// retried. No AddResource row outlives this system's Update.
//
// Phase 3 (Timers).
type ResourceTimerSystem struct {
	ws   *world.State
	time *TimeSystem
	bus  *event.Bus
	log  *zap.Logger
}

func NewResourceTimerSystem(ws *world.State, r *coresys.Runner, bus *event.Bus, log *zap.Logger) (*ResourceTimerSystem, error) {
	ts, err := coresys.Require[*TimeSystem](r)
	if err != nil {
		return nil, err
	}
	return &ResourceTimerSystem{ws: ws, time: ts, bus: bus, log: log}, nil
}

func (s *ResourceTimerSystem) Phase() coresys.Phase { return coresys.PhaseTimers }

func (s *ResourceTimerSystem) Update() {
	s.advance(s.time.DT())
	s.apply()
}

func (s *ResourceTimerSystem) advance(dt float64) {
	for id, t := range s.ws.ResourceTimers.All() {
		if !advanceTimer(&t.Timer, dt) {
			continue
		}
		s.ws.AddResources.Set(t.Owner, &component.AddResource{
			Owner:  t.Owner,
			Kind:   t.Resource,
			Amount: t.Amount,
		})
		if !t.Repeat {
			s.ws.ResourceTimers.Remove(id)
		}
	}
}

func (s *ResourceTimerSystem) apply() {
	for id, add := range s.ws.AddResources.All() {
		if res, ok := s.ws.Resources.Get(add.Owner); ok && res.Add(add.Kind, add.Amount) {
			event.Emit(s.bus, event.ResourceGained{
				Owner:  add.Owner,
				Kind:   add.Kind,
				Amount: add.Amount,
				Total:  res.Get(add.Kind),
			})
		} else {
			s.log.Debug("resource mail dropped", zap.Stringer("owner", add.Owner), zap.Stringer("kind", add.Kind))
		}
		s.ws.AddResources.Remove(id)
	}
}
