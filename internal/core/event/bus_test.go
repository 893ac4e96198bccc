package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ n int }
type pong struct{ s string }

func TestBus_DeliversAfterSwapInOrder(t *testing.T) {
	b := NewBus()
	var got []string
	Subscribe(b, func(p ping) { got = append(got, "ping") })
	Subscribe(b, func(p pong) { got = append(got, "pong:"+p.s) })

	Emit(b, ping{n: 1})
	Emit(b, pong{s: "a"})
	Emit(b, ping{n: 2})
	require.Equal(t, 3, b.Pending())

	b.DispatchAll()
	require.Empty(t, got, "nothing is delivered before the swap")

	b.SwapBuffers()
	require.Zero(t, b.Pending())
	b.DispatchAll()
	require.Equal(t, []string{"ping", "pong:a", "ping"}, got)

	got = nil
	b.SwapBuffers()
	b.DispatchAll()
	require.Empty(t, got, "events are delivered once")
}

func TestBus_EmitFromHandler(t *testing.T) {
	b := NewBus()
	var pongs int
	Subscribe(b, func(p ping) { Emit(b, pong{}) })
	Subscribe(b, func(pong) { pongs++ })

	Emit(b, ping{})
	b.SwapBuffers()
	b.DispatchAll()
	require.Zero(t, pongs)
	require.Equal(t, 1, b.Pending())

	b.SwapBuffers()
	b.DispatchAll()
	require.Equal(t, 1, pongs)
}

func TestBus_UnsubscribedTypeIgnored(t *testing.T) {
	b := NewBus()
	Emit(b, 42)
	b.SwapBuffers()
	require.NotPanics(t, b.DispatchAll)
}
