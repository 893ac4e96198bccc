package event

import "reflect"

// Bus is a double-buffered event bus. Events emitted during a tick are
// delivered, in emission order, when EventSystem swaps and dispatches at the
// end of that tick. Single goroutine (game loop) only.
type Bus struct {
	front    []any
	back     []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]any, 0, 32),
		back:     make([]any, 0, 32),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer.
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, event)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeFor[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers rotates back→front and clears the new back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front[:0]
}

// DispatchAll delivers all front-buffer events to their subscribed handlers.
// Handlers may Emit; those events land in the back buffer for the next swap.
func (b *Bus) DispatchAll() {
	for _, ev := range b.front {
		for _, h := range b.handlers[reflect.TypeOf(ev)] {
			h(ev)
		}
	}
}

// Pending returns the number of events waiting for the next swap.
func (b *Bus) Pending() int { return len(b.back) }
