package system

import (
	"github.com/l1jgo/planter/internal/component"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/world"
)

// advanceTimer moves an unpaused timer forward by dt and reports whether it
// expired this tick. A repeating timer restarts from 0 when it expires; a
// one-shot timer is left expired for the caller to remove.
func advanceTimer(t *component.Timer, dt float64) bool {
	if t.Paused {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Timeout {
		return false
	}
	if t.Repeat {
		t.Elapsed = 0
	}
	return true
}

// TimerSystem advances plain Timer rows. Expired one-shot timers are removed
// from their entity. Phase 3 (Timers).
type TimerSystem struct {
	ws   *world.State
	time *TimeSystem
}

func NewTimerSystem(ws *world.State, r *coresys.Runner) (*TimerSystem, error) {
	ts, err := coresys.Require[*TimeSystem](r)
	if err != nil {
		return nil, err
	}
	return &TimerSystem{ws: ws, time: ts}, nil
}

func (s *TimerSystem) Phase() coresys.Phase { return coresys.PhaseTimers }

func (s *TimerSystem) Update() {
	dt := s.time.DT()
	for id, t := range s.ws.Timers.All() {
		if advanceTimer(t, dt) && !t.Repeat {
			s.ws.Timers.Remove(id)
		}
	}
}
