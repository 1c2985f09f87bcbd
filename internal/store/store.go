// Package store holds the authoritative list state and pushes change
// notifications to subscribers.
package store

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrIndexOutOfRange is returned by Remove for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotSubscribed is returned by Unsubscribe for a token this store
	// did not issue or has already removed.
	ErrNotSubscribed = errors.New("not subscribed")
)

// Callback is a zero-argument notification handler. It is invoked
// synchronously after every successful mutation, before the mutating
// call returns.
type Callback func()

// Subscription identifies one registration with a store. The zero value
// is never issued and never matches.
type Subscription struct {
	id uint64
}

type subscriber struct {
	id uint64
	fn Callback
}

// Store is an ordered list of text items with subscriber notification.
// Items keep insertion order and duplicates are permitted.
//
// Mutations and reads may come from any goroutine; internal state is
// guarded by a mutex that is released before callbacks run, so handlers
// can call Items or Len freely. Handlers must not mutate the store they
// are being notified about: dispatch is synchronous and reentrant
// mutation has undefined ordering.
type Store struct {
	mu     sync.Mutex
	items  []string
	subs   []subscriber
	nextID uint64
}

// New creates a store seeded with the given items, in order.
func New(items ...string) *Store {
	s := &Store{items: make([]string, 0, len(items))}
	s.items = append(s.items, items...)
	return s
}

// Add appends item to the end of the list and notifies all subscribers.
// Content is not validated here; empty strings are legal list items and
// rejecting them is the caller's policy.
func (s *Store) Add(item string) {
	s.mu.Lock()
	s.items = append(s.items, item)
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	dispatch(subs)
}

// Remove deletes the element at index and notifies all subscribers.
// An index outside [0, Len()) leaves the list unchanged, notifies
// nobody and reports ErrIndexOutOfRange.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("remove item %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	dispatch(subs)
	return nil
}

// Items returns a copy of the current contents.
func (s *Store) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Subscribe registers fn for notification on every future mutation and
// returns the token that identifies this registration.
//
// Every call registers independently: subscribing the same function
// twice means it runs twice per notification, once per registration.
// Dispatch order is registration order.
func (s *Store) Subscribe(fn Callback) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sub := Subscription{id: s.nextID}
	s.subs = append(s.subs, subscriber{id: sub.id, fn: fn})
	return sub
}

// Unsubscribe removes the registration identified by sub. Removing a
// token that was never issued by this store, or was already removed,
// reports ErrNotSubscribed.
func (s *Store) Unsubscribe(sub Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.subs {
		if reg.id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unsubscribe: %w", ErrNotSubscribed)
}

// SubscriberCount reports how many registrations are currently held.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// snapshotSubsLocked copies the subscriber list so dispatch can run
// without holding the lock. Callers must hold s.mu.
func (s *Store) snapshotSubsLocked() []subscriber {
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	return subs
}

func dispatch(subs []subscriber) {
	for _, reg := range subs {
		reg.fn()
	}
}
