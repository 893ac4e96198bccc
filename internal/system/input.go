package system

import (
	"github.com/l1jgo/planter/internal/core/geom"
	coresys "github.com/l1jgo/planter/internal/core/system"
)

// InputSnapshot is one tick's worth of player input. Immutable once polled.
type InputSnapshot struct {
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool
	Pointer   geom.Vec2 // world-space pointer position
	Click     bool      // primary button pressed this tick
	Quit      bool
}

// InputSource is the host's input collaborator.
type InputSource interface {
	Poll() InputSnapshot
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() InputSnapshot

func (f InputFunc) Poll() InputSnapshot { return f() }

// IdleInput never presses anything.
var IdleInput InputSource = InputFunc(func() InputSnapshot { return InputSnapshot{} })

// InputSystem polls the input collaborator once per tick and publishes the
// snapshot to the systems registered after it. Phase 0 (Input).
type InputSystem struct {
	src  InputSource
	snap InputSnapshot
}

func NewInputSystem(src InputSource) *InputSystem {
	if src == nil {
		src = IdleInput
	}
	return &InputSystem{src: src}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update() {
	s.snap = s.src.Poll()
}

// Snapshot returns the input polled this tick.
func (s *InputSystem) Snapshot() InputSnapshot { return s.snap }
