package system

import (
	"time"

	coresys "github.com/l1jgo/planter/internal/core/system"
)

// Clock is the host's time collaborator: elapsed real time since the
// previous call.
type Clock interface {
	Elapsed() time.Duration
}

// RealClock measures wall-clock time between calls. The first call returns 0.
type RealClock struct {
	last time.Time
	now  func() time.Time
}

func NewRealClock() *RealClock {
	return &RealClock{now: time.Now}
}

func (c *RealClock) Elapsed() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}

// StepClock reports a fixed step every call. Used headless and in tests.
type StepClock struct {
	Step time.Duration
}

func (c StepClock) Elapsed() time.Duration { return c.Step }

// fpsSmoothing is the weight of the newest sample in the FPS moving average.
const fpsSmoothing = 0.1

// TimeSystem publishes the tick's elapsed time, capped at maxStep.
// Phase 2 (Time).
type TimeSystem struct {
	clock   Clock
	maxStep time.Duration
	dt      float64
	fps     float64
}

func NewTimeSystem(clock Clock, maxStep time.Duration) *TimeSystem {
	if clock == nil {
		clock = NewRealClock()
	}
	return &TimeSystem{clock: clock, maxStep: maxStep}
}

func (s *TimeSystem) Phase() coresys.Phase { return coresys.PhaseTime }

func (s *TimeSystem) Update() {
	d := s.clock.Elapsed()
	if d < 0 {
		d = 0
	}
	if s.maxStep > 0 && d > s.maxStep {
		d = s.maxStep
	}
	s.dt = d.Seconds()

	if s.dt > 0 {
		inst := 1 / s.dt
		if s.fps == 0 {
			s.fps = inst
		} else {
			s.fps += (inst - s.fps) * fpsSmoothing
		}
	}
}

// DT returns this tick's elapsed time in seconds.
func (s *TimeSystem) DT() float64 { return s.dt }

// FPS returns a smoothed tick rate.
func (s *TimeSystem) FPS() float64 { return s.fps }
