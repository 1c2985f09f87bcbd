// Package coordinator mediates between the list store and the display
// surfaces. Surfaces raise intents, coordinators decide what they mean,
// the store answers with change notifications.
package coordinator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"basket/internal/store"
	"basket/internal/surface"
)

var (
	// ErrDetached is returned when an operation needs an attached
	// coordinator and the coordinator is not attached.
	ErrDetached = errors.New("coordinator is detached")
	// ErrAttached is returned by Attach on a coordinator that already
	// went through its attach.
	ErrAttached = errors.New("coordinator already attached")
	// ErrNoSelection is returned by RequestRemove when the surface has
	// no selected item.
	ErrNoSelection = errors.New("no selection")
	// ErrEmptyInput is returned by Submit when the entry field is empty.
	ErrEmptyInput = errors.New("empty input")
)

// Store is the slice of list state the coordinators drive. *store.Store
// satisfies it.
type Store interface {
	Add(item string)
	Remove(index int) error
	Items() []string
	Subscribe(fn store.Callback) store.Subscription
	Unsubscribe(sub store.Subscription) error
}

// ListSurface is the display side of a list screen. Implementations
// render, track the cursor and raise intent events; they never touch
// the store themselves.
type ListSurface interface {
	// Refresh replaces the rendered items with the given snapshot.
	Refresh(items []string)
	// SelectedIndex reports the currently selected row. The bool is
	// false when nothing is selected, for example on an empty list.
	SelectedIndex() (int, bool)
	// Notice shows a transient advisory message to the user.
	Notice(text string)
	// Hooks exposes the event registry the coordinator binds against.
	Hooks() *surface.Hooks
	// Release tears the surface down. Called once, by the coordinator.
	Release()
}

// EntryFactory opens a fresh item entry surface. The shell supplies
// this so coordinators stay ignorant of how surfaces come to exist.
type EntryFactory func() EntrySurface

// Lifecycle is the attach state of a coordinator.
type Lifecycle int

const (
	// StateCreated means New ran but Attach has not.
	StateCreated Lifecycle = iota
	// StateAttached means the coordinator is live: subscribed to the
	// store and bound to its surface.
	StateAttached
	// StateDetached means Close ran. Terminal.
	StateDetached
)

// ListCoordinator owns one list surface for its whole lifetime. It
// subscribes to the store on Attach, keeps the surface current on every
// store change and translates surface intents into store mutations.
//
// The lifecycle is strictly Created, Attached, Detached, each state
// entered exactly once.
type ListCoordinator struct {
	id        string
	store     Store
	surf      ListSurface
	openEntry EntryFactory
	log       *slog.Logger

	state Lifecycle
	sub   store.Subscription
	entry *EntryCoordinator
}

// New wires a coordinator to its store and surface. The coordinator is
// inert until Attach. openEntry may be nil when the surface never
// raises add requests, as in tests that only exercise removal.
func New(st Store, surf ListSurface, openEntry EntryFactory, log *slog.Logger) *ListCoordinator {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &ListCoordinator{
		id:        id,
		store:     st,
		surf:      surf,
		openEntry: openEntry,
		log:       log.With("coordinator", id),
	}
}

// ID returns the coordinator's correlation id as it appears in logs.
func (c *ListCoordinator) ID() string { return c.id }

// State reports the current lifecycle state.
func (c *ListCoordinator) State() Lifecycle { return c.state }

// Attach makes the coordinator live: it subscribes to the store, binds
// the surface's intent events to its own operations and pushes the
// first refresh so the surface starts out showing current content.
func (c *ListCoordinator) Attach() error {
	if c.state != StateCreated {
		return fmt.Errorf("attach: %w", ErrAttached)
	}
	c.sub = c.store.Subscribe(c.onStoreChanged)
	c.bindSurface()
	c.state = StateAttached
	c.onStoreChanged()
	c.log.Debug("coordinator attached", "items", len(c.store.Items()))
	return nil
}

// bindSurface routes the surface's intents to coordinator operations.
// Errors from the operations are not re-raised here: each operation has
// already posted its advisory notice by the time it returns.
func (c *ListCoordinator) bindSurface() {
	hooks := c.surf.Hooks()
	hooks.Bind(surface.EventAddRequested, func() { _ = c.RequestAdd() })
	hooks.Bind(surface.EventRemoveRequested, func() { _ = c.RequestRemove() })
	hooks.Bind(surface.EventCloseRequested, func() { _ = c.Close() })
}

// onStoreChanged re-reads the store and pushes the fresh snapshot to
// the surface. This is the only path by which list content reaches the
// surface, including after this coordinator's own mutations.
func (c *ListCoordinator) onStoreChanged() {
	c.surf.Refresh(c.store.Items())
}

// RequestAdd opens the item entry surface with a transient entry
// coordinator attached to it. While an entry is already open the
// request is ignored; one entry at a time.
func (c *ListCoordinator) RequestAdd() error {
	if c.state != StateAttached {
		return fmt.Errorf("add request: %w", ErrDetached)
	}
	if c.entry != nil {
		return nil
	}
	if c.openEntry == nil {
		c.log.Warn("add requested but no entry factory is wired")
		return nil
	}
	entry := NewEntry(c.store, c.openEntry(), func() { c.entry = nil }, c.log)
	if err := entry.Attach(); err != nil {
		return fmt.Errorf("failed to open entry: %w", err)
	}
	c.entry = entry
	c.log.Debug("entry opened", "entry", entry.ID())
	return nil
}

// RequestRemove removes the surface's selected item from the store.
// With no selection it posts a notice and reports ErrNoSelection. When
// the selected index no longer exists in the store the store's error is
// surfaced the same way; the list is left unchanged either way.
func (c *ListCoordinator) RequestRemove() error {
	if c.state != StateAttached {
		return fmt.Errorf("remove request: %w", ErrDetached)
	}
	index, ok := c.surf.SelectedIndex()
	if !ok {
		c.surf.Notice("Nothing selected. Move the cursor to an item first.")
		return fmt.Errorf("remove request: %w", ErrNoSelection)
	}
	if err := c.store.Remove(index); err != nil {
		c.surf.Notice("That item is no longer in the list.")
		c.log.Warn("remove rejected by store", "index", index, "error", err)
		return fmt.Errorf("remove request: %w", err)
	}
	c.log.Debug("item removed", "index", index)
	return nil
}

// Entry returns the live entry coordinator, or nil when none is open.
func (c *ListCoordinator) Entry() *EntryCoordinator { return c.entry }

// Close detaches the coordinator: any open entry is closed first, the
// store subscription is dropped, then the surface is released. After
// Close every operation reports ErrDetached.
func (c *ListCoordinator) Close() error {
	if c.state != StateAttached {
		return fmt.Errorf("close: %w", ErrDetached)
	}
	c.state = StateDetached
	if c.entry != nil {
		if err := c.entry.Close(); err != nil {
			c.log.Warn("entry close during teardown failed", "error", err)
		}
	}
	if err := c.store.Unsubscribe(c.sub); err != nil {
		c.log.Warn("unsubscribe during teardown failed", "error", err)
	}
	c.surf.Release()
	c.log.Debug("coordinator closed")
	return nil
}
