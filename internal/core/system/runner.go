package system

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDependency is returned when a system is constructed before a
	// system it reads from has been registered.
	ErrMissingDependency = errors.New("missing system dependency")
	// ErrPhaseOrder is returned when a system is registered after a system of
	// a later phase.
	ErrPhaseOrder = errors.New("system registered out of phase order")
)

// Runner executes systems in registration order each tick.
type Runner struct {
	systems []System
	ticking bool
	ticks   uint64
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

// Register appends s to the pipeline.
func (r *Runner) Register(s System) error {
	if n := len(r.systems); n > 0 {
		last := r.systems[n-1]
		if s.Phase() < last.Phase() {
			return fmt.Errorf("%w: %T (%s) after %T (%s)", ErrPhaseOrder, s, s.Phase(), last, last.Phase())
		}
	}
	r.systems = append(r.systems, s)
	return nil
}

// Tick runs every registered system's Update exactly once, in order.
func (r *Runner) Tick() {
	if r.ticking {
		panic("system: Runner.Tick called re-entrantly")
	}
	r.ticking = true
	defer func() { r.ticking = false }()

	for _, s := range r.systems {
		s.Update()
	}
	r.ticks++
}

// Ticks returns how many ticks have completed.
func (r *Runner) Ticks() uint64 { return r.ticks }

// Systems returns the registered systems in execution order.
func (r *Runner) Systems() []System {
	out := make([]System, len(r.systems))
	copy(out, r.systems)
	return out
}

// Lookup returns the first registered system of type T.
func Lookup[T System](r *Runner) (T, bool) {
	for _, s := range r.systems {
		if t, ok := s.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Require is Lookup for constructors: a missing dependency is a
// configuration error that must stop startup.
func Require[T System](r *Runner) (T, error) {
	t, ok := Lookup[T](r)
	if !ok {
		return t, fmt.Errorf("%w: %T must be registered first", ErrMissingDependency, t)
	}
	return t, nil
}
