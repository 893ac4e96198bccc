package system

// Phase defines execution ordering within a single tick. Systems must be
// registered in non-decreasing phase order.
type Phase int

const (
	PhaseInput   Phase = iota // 0: poll the input snapshot
	PhaseAction               // 1: gameplay actions driven by input (planting)
	PhaseTime                 // 2: measure elapsed time
	PhaseTimers               // 3: advance timers, post and apply mailboxes
	PhaseSpatial              // 4: rebuild the spatial grid
	PhaseMotion               // 5: physics, player impulses, movement
	PhaseEvents               // 6: dispatch this tick's events
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseAction:
		return "action"
	case PhaseTime:
		return "time"
	case PhaseTimers:
		return "timers"
	case PhaseSpatial:
		return "spatial"
	case PhaseMotion:
		return "motion"
	case PhaseEvents:
		return "events"
	}
	return "unknown"
}

// System is the interface every processor implements.
type System interface {
	Phase() Phase
	Update()
}
