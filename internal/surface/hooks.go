// Package surface defines the named events a display surface can raise
// and the hook registry that routes them to handlers.
package surface

// Event names a user intent raised by a display surface. Surfaces only
// announce intent; deciding what the intent means is the binder's job.
type Event string

const (
	// EventAddRequested fires when the user asks to add a new item.
	EventAddRequested Event = "add-requested"
	// EventRemoveRequested fires when the user asks to remove the
	// current selection.
	EventRemoveRequested Event = "remove-requested"
	// EventCloseRequested fires when the user asks to close the surface.
	EventCloseRequested Event = "close-requested"
	// EventSubmitRequested fires when the user submits entered text.
	EventSubmitRequested Event = "submit-requested"
)

// Hooks routes named surface events to bound handlers. Handlers for an
// event run synchronously in bind order when the event is raised.
//
// Hooks lives on the UI loop and is not safe for concurrent use.
type Hooks struct {
	handlers map[Event][]func()
}

// NewHooks returns an empty registry.
func NewHooks() *Hooks {
	return &Hooks{handlers: make(map[Event][]func())}
}

// Bind registers fn to run whenever ev is raised. Binding the same
// function again adds a second, independent registration.
func (h *Hooks) Bind(ev Event, fn func()) {
	h.handlers[ev] = append(h.handlers[ev], fn)
}

// Raise runs every handler bound to ev, in bind order. Raising an event
// nothing is bound to is a no-op.
func (h *Hooks) Raise(ev Event) {
	for _, fn := range h.handlers[ev] {
		fn()
	}
}

// Bound reports how many handlers are bound to ev.
func (h *Hooks) Bound(ev Event) int {
	return len(h.handlers[ev])
}
