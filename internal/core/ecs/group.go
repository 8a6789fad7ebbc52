package ecs

import (
	"iter"
	"reflect"
	"strings"

	"github.com/sdg/ecscore/internal/core/event"
	"go.uber.org/zap"
)

// Group caches the rows of every alive entity holding all of a fixed set of
// component types. It is seeded by one full scan and then kept current from
// the Context's events, so iterating it costs O(matches) instead of a query's
// O(alive * types).
//
// A Group must be disposed before the Context is cleared or dropped, otherwise
// its subscriptions stay registered for the Context's lifetime.
type Group[V any] struct {
	entries  slotSet[V]
	types    []reflect.Type
	fetch    func(Id) (V, bool)
	bus      *event.Bus
	subs     [4]event.Subscription
	log      *zap.Logger
	disposed bool
}

func newGroup[E Poolable, V any](c *Context[E], types []reflect.Type, fetch func(Id) (V, bool)) *Group[V] {
	g := &Group[V]{
		types: types,
		fetch: fetch,
		bus:   c.bus,
		log:   c.log,
	}

	for id := range c.AliveIDs() {
		if row, ok := fetch(id); ok {
			g.entries.add(id, row)
		}
	}

	g.subs[0] = c.OnComponentAdded(g.handleComponentAdded)
	g.subs[1] = c.OnComponentRemoved(g.handleComponentRemoved)
	g.subs[2] = c.OnEntityCreated(g.handleEntityCreated)
	g.subs[3] = c.OnEntityDestroyed(g.handleEntityDestroyed)

	g.log.Debug("entity group created",
		zap.String("types", g.typeNames()),
		zap.Int("entities", g.entries.len()),
	)
	return g
}

// tracks reports whether t is one of the group's component types.
func (g *Group[V]) tracks(t reflect.Type) bool {
	for _, own := range g.types {
		if own == t {
			return true
		}
	}
	return false
}

// The row is refetched even when cached: a remove followed by a re-add within
// one frame suppresses the removal event, and the cached pointer would
// otherwise keep referring to the old component.
func (g *Group[V]) handleComponentAdded(ev ComponentAdded) {
	if g.disposed || !g.tracks(ev.Type.rtype) {
		return
	}
	if row, ok := g.fetch(ev.ID); ok {
		g.entries.put(ev.ID, row)
	}
}

// A removed tracked type always breaks the match; only a later add can
// restore it.
func (g *Group[V]) handleComponentRemoved(ev ComponentRemoved) {
	if g.disposed || !g.tracks(ev.Type.rtype) {
		return
	}
	g.entries.remove(ev.ID)
}

// Covers entities whose components were all attached before their creation
// was applied.
func (g *Group[V]) handleEntityCreated(ev EntityCreated) {
	if g.disposed || g.entries.has(ev.ID) {
		return
	}
	if row, ok := g.fetch(ev.ID); ok {
		g.entries.add(ev.ID, row)
	}
}

func (g *Group[V]) handleEntityDestroyed(ev EntityDestroyed) {
	if g.disposed {
		return
	}
	g.entries.remove(ev.ID)
}

func (g *Group[V]) Len() int { return g.entries.len() }

func (g *Group[V]) Contains(id Id) bool { return g.entries.has(id) }

// Get returns the cached row of id.
func (g *Group[V]) Get(id Id) (V, bool) { return g.entries.get(id) }

// All yields every cached row.
func (g *Group[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, row := range g.entries.values {
			if !yield(row) {
				return
			}
		}
	}
}

// Types returns the component types the group requires.
func (g *Group[V]) Types() []reflect.Type {
	out := make([]reflect.Type, len(g.types))
	copy(out, g.types)
	return out
}

// Dispose unsubscribes the group and empties it. Further calls do nothing.
func (g *Group[V]) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, s := range g.subs {
		g.bus.Unsubscribe(s)
	}
	g.entries.reset()
	g.log.Debug("entity group disposed", zap.String("types", g.typeNames()))
}

func (g *Group[V]) Disposed() bool { return g.disposed }

func (g *Group[V]) typeNames() string {
	names := make([]string, len(g.types))
	for i, t := range g.types {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}
