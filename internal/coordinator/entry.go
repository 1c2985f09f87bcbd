package coordinator

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"basket/internal/surface"
)

// EntrySurface is the display side of the item entry field. It holds
// text the user is typing and raises submit and close intents.
type EntrySurface interface {
	// CurrentValue returns the text as typed, verbatim. Whitespace is
	// content; only the empty string counts as blank.
	CurrentValue() string
	// Notice shows a transient advisory message to the user.
	Notice(text string)
	// Hooks exposes the event registry the coordinator binds against.
	Hooks() *surface.Hooks
	// Release tears the surface down. Called once, by the coordinator.
	Release()
}

// EntryCoordinator is the transient mediator behind one item entry
// surface. It validates submitted text and turns it into a store Add.
// It lives from RequestAdd until a successful submit or a close, then
// releases its surface and tells its parent it is gone.
type EntryCoordinator struct {
	id     string
	store  Store
	surf   EntrySurface
	onDone func()
	log    *slog.Logger

	state Lifecycle
}

// NewEntry wires an entry coordinator to the store it will add into and
// the surface it reads from. onDone runs after the surface is released,
// so the parent can forget the child; nil is allowed.
func NewEntry(st Store, surf EntrySurface, onDone func(), log *slog.Logger) *EntryCoordinator {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &EntryCoordinator{
		id:     id,
		store:  st,
		surf:   surf,
		onDone: onDone,
		log:    log.With("entry", id),
	}
}

// ID returns the entry coordinator's correlation id as it appears in logs.
func (e *EntryCoordinator) ID() string { return e.id }

// State reports the current lifecycle state.
func (e *EntryCoordinator) State() Lifecycle { return e.state }

// Attach binds the surface's submit and close intents.
func (e *EntryCoordinator) Attach() error {
	if e.state != StateCreated {
		return fmt.Errorf("attach: %w", ErrAttached)
	}
	hooks := e.surf.Hooks()
	hooks.Bind(surface.EventSubmitRequested, func() { _ = e.Submit() })
	hooks.Bind(surface.EventCloseRequested, func() { _ = e.Close() })
	e.state = StateAttached
	return nil
}

// Submit reads the surface's current text and adds it to the store,
// then closes the entry. An empty value is rejected with a notice and
// ErrEmptyInput; the entry stays open so the user can finish typing.
func (e *EntryCoordinator) Submit() error {
	if e.state != StateAttached {
		return fmt.Errorf("submit: %w", ErrDetached)
	}
	value := e.surf.CurrentValue()
	if value == "" {
		e.surf.Notice("Type an item before submitting.")
		return fmt.Errorf("submit: %w", ErrEmptyInput)
	}
	e.store.Add(value)
	e.log.Debug("item submitted", "length", len(value))
	return e.Close()
}

// Close releases the surface without touching the store and reports
// back to the parent. After Close, Submit reports ErrDetached.
func (e *EntryCoordinator) Close() error {
	if e.state != StateAttached {
		return fmt.Errorf("close: %w", ErrDetached)
	}
	e.state = StateDetached
	e.surf.Release()
	if e.onDone != nil {
		e.onDone()
	}
	e.log.Debug("entry closed")
	return nil
}
