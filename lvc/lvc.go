// Package lvc implements the latest-value channel: a one-slot mailbox
// coalescing producer writes down to whatever the consumer last observed.
// Unlike a buffered channel it never blocks the producer and never queues —
// history is explicitly not a goal, only "what's current" matters.
package lvc

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DeadGetterError is returned by Updater.Update when the paired Getter has
// been closed. The rejected value is handed back so the producer can decide
// what to do with it (usually: nothing, and terminate).
type DeadGetterError[T any] struct {
	Value T
}

func (e *DeadGetterError[T]) Error() string {
	return fmt.Sprintf("lvc: getter is dead, value dropped: %v", e.Value)
}

// Getter owns the locally cached current value and pulls from the shared
// slot on every read. At most one Getter exists per channel.
type Getter[T any] struct {
	mu      sync.Mutex
	current T
	pending *T
	dead    atomic.Bool
}

// Updater writes into the shared slot, replacing whatever was there.
// At most one Updater exists per channel.
type Updater[T any] struct {
	getter *Getter[T]
}

// NewChannel creates a paired Getter/Updater with the given initial value.
func NewChannel[T any](initial T) (*Getter[T], *Updater[T]) {
	g := &Getter[T]{current: initial}
	return g, &Updater[T]{getter: g}
}

// Latest returns a pointer to the most recently observed value, first
// moving any pending update into the Getter's owned cell. The critical
// section is a pointer swap — it never blocks for longer than that.
func (g *Getter[T]) Latest() *T {
	g.mu.Lock()
	if g.pending != nil {
		g.current = *g.pending
		g.pending = nil
	}
	g.mu.Unlock()
	return &g.current
}

// Close marks the Getter as gone. Subsequent Updater.Update calls fail with
// DeadGetterError and IsGetterDead reports true. Go has no destructors, so
// the consumer that stops reading must call this explicitly — it is the
// one cancellation signal the whole concurrency fabric relies on.
func (g *Getter[T]) Close() {
	g.dead.Store(true)
}

// Update replaces the shared slot with v. Never blocks for longer than a
// mutex swap; returns DeadGetterError if the Getter has been closed.
func (u *Updater[T]) Update(v T) error {
	if u.getter.dead.Load() {
		return &DeadGetterError[T]{Value: v}
	}
	u.getter.mu.Lock()
	u.getter.pending = &v
	u.getter.mu.Unlock()
	return nil
}

// IsGetterDead is a non-consuming liveness probe.
func (u *Updater[T]) IsGetterDead() bool {
	return u.getter.dead.Load()
}
