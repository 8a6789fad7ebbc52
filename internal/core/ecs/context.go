package ecs

import (
	"iter"

	"github.com/sdg/ecscore/internal/core/event"
	"go.uber.org/zap"
)

// Option configures a Context.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger used for pool growth, type registration and
// flush diagnostics. A nil logger keeps the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Context owns the entity pool, one column per registered component type and
// the deferred command queue.
//
// Structural changes land in storage immediately, but their visibility (alive
// set membership and events) is deferred until ApplyChanges. Systems iterating
// the alive set therefore never observe entities created or destroyed during
// the same frame.
type Context[E Poolable] struct {
	pool     *Pool[E]
	registry *registry
	alive    slotSet[struct{}]
	queue    commandQueue
	bus      *event.Bus
	log      *zap.Logger
	flushing bool
}

// NewContext creates a Context whose pool starts with initSize slots. factory
// builds the entity record for each slot and receives the Context as a
// back-reference.
func NewContext[E Poolable](initSize int, factory func(*Context[E]) E, opts ...Option) *Context[E] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context[E]{
		bus: event.NewBus(),
		log: o.log,
	}
	c.pool = NewPool(initSize, func() E { return factory(c) })
	c.registry = newRegistry(c.pool.Count())
	c.queue.commands = make([]command, 0, 64)
	c.pool.OnResize(c.handlePoolResized)
	return c
}

func (c *Context[E]) handlePoolResized(size int) {
	c.registry.grow(size)
	if size > 0 {
		c.log.Debug("entity pool resized",
			zap.Int("slots", size),
			zap.Int("component_types", len(c.registry.types)),
		)
	}
}

// CreateEntity allocates an entity. It becomes alive at the next ApplyChanges.
func (c *Context[E]) CreateEntity() E {
	e := c.pool.Create()
	c.queue.push(command{kind: cmdCreateEntity, id: e.ID()})
	return e
}

// DestroyEntity queues id for destruction. It reports false if id is not a
// currently allocated slot. Destroying twice before a flush is harmless.
func (c *Context[E]) DestroyEntity(id Id) bool {
	if !c.pool.CheckValid(id) {
		return false
	}
	c.queue.push(command{kind: cmdDestroyEntity, id: id})
	return true
}

// IsValid reports whether id refers to an allocated slot, alive or not.
func (c *Context[E]) IsValid(id Id) bool {
	return c.pool.CheckValid(id)
}

// IsAlive reports whether id's creation has been applied and its destruction
// has not.
func (c *Context[E]) IsAlive(id Id) bool {
	return c.pool.CheckValid(id) && c.alive.has(id)
}

// Entity returns the record for id if id is valid.
func (c *Context[E]) Entity(id Id) (E, bool) {
	return c.pool.Get(id)
}

func (c *Context[E]) AliveEntityCount() int   { return c.alive.len() }
func (c *Context[E]) ComponentTypeCount() int { return len(c.registry.types) }
func (c *Context[E]) Capacity() int           { return c.pool.Count() }
func (c *Context[E]) PendingCommands() int    { return c.queue.len() }

// ComponentTypes returns the registered types in registration order.
func (c *Context[E]) ComponentTypes() []ComponentType {
	out := make([]ComponentType, len(c.registry.types))
	copy(out, c.registry.types)
	return out
}

// AliveIDs yields the id of every alive entity.
func (c *Context[E]) AliveIDs() iter.Seq[Id] {
	return func(yield func(Id) bool) {
		for _, id := range c.alive.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Entities yields every alive entity. It is the query with no required types.
func (c *Context[E]) Entities() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, id := range c.alive.ids {
			if !yield(c.pool.at(id.Index)) {
				return
			}
		}
	}
}

// ApplyChanges applies every queued command in enqueue order and emits the
// matching events. Commands queued by event handlers during the flush are
// applied by the same flush. A nested call from a handler does nothing.
func (c *Context[E]) ApplyChanges() {
	if c.flushing || c.queue.len() == 0 {
		return
	}
	c.flushing = true
	defer func() { c.flushing = false }()

	applied := 0
	for i := 0; i < len(c.queue.commands); i++ {
		cmd := c.queue.commands[i]
		switch cmd.kind {
		case cmdCreateEntity:
			c.createEntity(cmd.id)
		case cmdDestroyEntity:
			c.destroyEntity(cmd.id)
		case cmdComponentAdded:
			c.notifyAdded(cmd.id, cmd.typeIndex)
		case cmdComponentRemoved:
			c.notifyRemoved(cmd.id, cmd.typeIndex)
		}
		applied++
	}
	c.queue.reset()

	c.log.Debug("applied entity commands",
		zap.Int("commands", applied),
		zap.Int("alive", c.alive.len()),
	)
}

func (c *Context[E]) createEntity(id Id) {
	if !c.pool.CheckValid(id) {
		return
	}
	if c.alive.add(id, struct{}{}) {
		event.Emit(c.bus, EntityCreated{ID: id})
	}
}

func (c *Context[E]) destroyEntity(id Id) {
	if !c.alive.remove(id) {
		return
	}
	event.Emit(c.bus, EntityDestroyed{ID: id})
	c.registry.clearSlot(id.Index)
	c.pool.Discard(id)
}

func (c *Context[E]) notifyAdded(id Id, typeIndex int) {
	if typeIndex >= len(c.registry.columns) {
		return
	}
	if c.IsAlive(id) && c.registry.columns[typeIndex].has(id.Index) {
		event.Emit(c.bus, ComponentAdded{ID: id, Type: c.registry.types[typeIndex]})
	}
}

func (c *Context[E]) notifyRemoved(id Id, typeIndex int) {
	if typeIndex >= len(c.registry.columns) {
		return
	}
	if c.IsAlive(id) && !c.registry.columns[typeIndex].has(id.Index) {
		event.Emit(c.bus, ComponentRemoved{ID: id, Type: c.registry.types[typeIndex]})
	}
}

// Clear drops every registered type, column, subscriber, pool slot, alive
// entity and pending command. Groups built on this Context become stale, so
// Clear is meant for shutdown only.
func (c *Context[E]) Clear() {
	types := len(c.registry.types)
	alive := c.alive.len()

	c.registry.reset()
	c.bus.Reset()
	c.pool.Clear()
	c.alive.reset()
	c.queue.reset()

	c.log.Info("entity context cleared",
		zap.Int("component_types", types),
		zap.Int("alive", alive),
	)
}

// ── Subscriptions ─────────────────────────────────────────────────

func (c *Context[E]) OnComponentAdded(fn func(ComponentAdded)) event.Subscription {
	return event.Subscribe(c.bus, fn)
}

func (c *Context[E]) OnComponentRemoved(fn func(ComponentRemoved)) event.Subscription {
	return event.Subscribe(c.bus, fn)
}

func (c *Context[E]) OnEntityCreated(fn func(EntityCreated)) event.Subscription {
	return event.Subscribe(c.bus, fn)
}

func (c *Context[E]) OnEntityDestroyed(fn func(EntityDestroyed)) event.Subscription {
	return event.Subscribe(c.bus, fn)
}

// Unsubscribe removes a handler registered with one of the On* methods.
func (c *Context[E]) Unsubscribe(s event.Subscription) bool {
	return c.bus.Unsubscribe(s)
}
