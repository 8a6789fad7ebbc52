package ecs

// Events raised by Context.ApplyChanges.

// ComponentAdded is emitted once an added component becomes visible on an
// alive entity.
type ComponentAdded struct {
	ID   Id
	Type ComponentType
}

// ComponentRemoved is emitted once a removal becomes visible on an alive entity.
type ComponentRemoved struct {
	ID   Id
	Type ComponentType
}

// EntityCreated is emitted right after an entity joins the alive set.
type EntityCreated struct {
	ID Id
}

// EntityDestroyed is emitted right before the entity's components are wiped,
// so handlers can still read them.
type EntityDestroyed struct {
	ID Id
}
