package engine

// EventWithArg is a multicast event carrying one value. Listeners see the
// value after the state change that produced it is complete.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls listeners in the order they were added.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}
