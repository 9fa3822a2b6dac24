package dom

// Event names dispatched by the rendering surfaces.
const (
	EventLoad   = "load"
	EventError  = "error"
	EventResize = "resize"
)

// Event carries a dispatched event and its target element.
type Event struct {
	Type   string
	Target *Element
	// Err holds the failure for EventError dispatches, nil otherwise.
	Err error
}

// Listener handles a dispatched event.
type Listener func(Event)

// AddEventListener registers a listener for the given event type. Listeners
// for the same type fire in registration order.
func (e *Element) AddEventListener(eventType string, fn Listener) {
	if fn == nil {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// ListenerCount returns the number of listeners registered for a type.
func (e *Element) ListenerCount(eventType string) int {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return len(e.listeners[eventType])
}

// Dispatch invokes the element's listeners for the event type synchronously,
// in the caller's goroutine. The tree lock is not held during callbacks, so
// listeners may query and mutate the tree.
func (e *Element) Dispatch(event Event) {
	event.Target = e

	e.doc.mu.RLock()
	registered := e.listeners[event.Type]
	fns := make([]Listener, len(registered))
	copy(fns, registered)
	e.doc.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
}
