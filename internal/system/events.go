package system

import (
	"github.com/l1jgo/planter/internal/core/event"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"go.uber.org/zap"
)

// EventSystem delivers the events emitted during this tick.
// Phase 6 (Events).
type EventSystem struct {
	bus *event.Bus
}

func NewEventSystem(bus *event.Bus) *EventSystem {
	return &EventSystem{bus: bus}
}

func (s *EventSystem) Phase() coresys.Phase { return coresys.PhaseEvents }

func (s *EventSystem) Update() {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

// SubscribeLog reports gameplay events through log.
func SubscribeLog(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(ev event.Planted) {
		log.Info("planted",
			zap.String("seed", ev.Seed),
			zap.Stringer("plant", ev.Plant),
			zap.Stringer("owner", ev.Owner),
			zap.Float64("x", ev.At.X),
			zap.Float64("y", ev.At.Y),
		)
	})
	event.Subscribe(bus, func(ev event.ResourceGained) {
		log.Info("resources gained",
			zap.Stringer("owner", ev.Owner),
			zap.Stringer("kind", ev.Kind),
			zap.Int("amount", ev.Amount),
			zap.Int("total", ev.Total),
		)
	})
}
