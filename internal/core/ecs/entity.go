package ecs

// Entity is the default entity record: an Id plus a back-reference to the
// Context that owns it. It carries no component data itself.
type Entity struct {
	id  Id
	ctx *EntityContext
}

// EntityContext is a Context of default Entity records.
type EntityContext = Context[*Entity]

// NewEntity is the factory used by NewEntityContext.
func NewEntity(ctx *EntityContext) *Entity {
	return &Entity{ctx: ctx}
}

// NewEntityContext creates a Context of *Entity records.
func NewEntityContext(initSize int, opts ...Option) *EntityContext {
	return NewContext(initSize, NewEntity, opts...)
}

func (e *Entity) ID() Id                  { return e.id }
func (e *Entity) SetID(id Id)             { e.id = id }
func (e *Entity) Context() *EntityContext { return e.ctx }

// Destroy flags the entity for destruction at the next ApplyChanges. Safe to
// call on an entity that is already gone.
func (e *Entity) Destroy() bool {
	return e.ctx.DestroyEntity(e.id)
}

func (e *Entity) IsAlive() bool {
	return e.ctx.IsAlive(e.id)
}

// Attach adds v to e and returns e so calls can be chained. A rejected add
// (duplicate type, stale entity) is ignored, as with a plain AddComponent
// whose result is dropped.
func Attach[T any](e *Entity, v *T) *Entity {
	AddComponent(e.ctx, e.id, v)
	return e
}

func Detach[T any](e *Entity) bool {
	return RemoveComponent[T](e.ctx, e.id)
}

// ComponentOf returns e's T, if it holds one.
func ComponentOf[T any](e *Entity) (*T, bool) {
	return GetComponent[T](e.ctx, e.id)
}
