package system

import (
	"testing"
	"time"

	"github.com/l1jgo/planter/internal/core/event"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/data"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seqClock replays a fixed list of steps, then keeps returning the last one.
type seqClock struct {
	steps []time.Duration
	i     int
}

func (c *seqClock) Elapsed() time.Duration {
	if len(c.steps) == 0 {
		return 0
	}
	d := c.steps[min(c.i, len(c.steps)-1)]
	c.i++
	return d
}

// scriptedInput hands out one snapshot per poll, then idles.
type scriptedInput struct {
	frames []InputSnapshot
	i      int
}

func (s *scriptedInput) Poll() InputSnapshot {
	if s.i >= len(s.frames) {
		return InputSnapshot{}
	}
	in := s.frames[s.i]
	s.i++
	return in
}

// timeRunner returns a runner with only a TimeSystem registered.
func timeRunner(t *testing.T, clock Clock) (*coresys.Runner, *TimeSystem) {
	t.Helper()
	r := coresys.NewRunner()
	ts := NewTimeSystem(clock, time.Second)
	require.NoError(t, r.Register(ts))
	return r, ts
}

func testSeeds(t *testing.T) *data.SeedTable {
	t.Helper()
	tbl, err := data.ParseSeedTable([]byte(`
seeds:
  - name: cog
    resource: r1
    amount: 10
    timeout: 3.0
    repeat: true
    visual: cog
  - name: once
    resource: r2
    amount: 4
    timeout: 1.0
    repeat: false
    visual: red_rect
`))
	require.NoError(t, err)
	return tbl
}

// gains collects ResourceGained events delivered on bus.
func gains(bus *event.Bus) *[]event.ResourceGained {
	var got []event.ResourceGained
	event.Subscribe(bus, func(ev event.ResourceGained) { got = append(got, ev) })
	return &got
}

func nop() *zap.Logger { return zap.NewNop() }
