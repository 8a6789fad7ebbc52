package ecs

import "go.uber.org/zap"

// AddComponent attaches v to id. It fails if id is not an allocated slot, v is
// nil, or id already holds a T; components are never silently overwritten.
// The value is readable immediately, the ComponentAdded event is deferred to
// the next ApplyChanges.
func AddComponent[T any, E Poolable](c *Context[E], id Id, v *T) bool {
	if v == nil || !c.pool.CheckValid(id) {
		return false
	}

	col, ct, created := register[T](c.registry)
	if created {
		c.log.Debug("component type registered",
			zap.Stringer("type", ct),
			zap.Int("index", ct.index),
			zap.Int("slots", c.registry.slots),
		)
	}
	if col.cells[id.Index] != nil {
		return false
	}
	col.cells[id.Index] = v
	c.queue.push(command{kind: cmdComponentAdded, id: id, typeIndex: ct.index})
	return true
}

// RemoveComponent detaches the T held by id. It fails if id is invalid, T was
// never registered or id holds no T.
func RemoveComponent[T any, E Poolable](c *Context[E], id Id) bool {
	if !c.pool.CheckValid(id) {
		return false
	}
	i, ok := c.registry.index[typeOf[T]()]
	if !ok || !c.registry.columns[i].clear(id.Index) {
		return false
	}
	c.queue.push(command{kind: cmdComponentRemoved, id: id, typeIndex: i})
	return true
}

// GetComponent returns the T held by id. Absence is a normal outcome: invalid
// ids, unregistered types and empty cells all report false.
func GetComponent[T any, E Poolable](c *Context[E], id Id) (*T, bool) {
	if !c.pool.CheckValid(id) {
		return nil, false
	}
	return componentAt[T](c.registry, id.Index)
}

func HasComponent[T any, E Poolable](c *Context[E], id Id) bool {
	_, ok := GetComponent[T](c, id)
	return ok
}

// componentAt reads slot from T's column without validating the id.
func componentAt[T any](r *registry, slot int) (*T, bool) {
	col, ok := lookup[T](r)
	if !ok {
		return nil, false
	}
	v := col.cells[slot]
	return v, v != nil
}

// ComponentTypeOf returns the registered descriptor of T, if any.
func ComponentTypeOf[T any, E Poolable](c *Context[E]) (ComponentType, bool) {
	i, ok := c.registry.index[typeOf[T]()]
	if !ok {
		return ComponentType{}, false
	}
	return c.registry.types[i], true
}
