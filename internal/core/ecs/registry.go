package ecs

import "reflect"

// ComponentType describes a component type registered in a Context.
type ComponentType struct {
	index int
	rtype reflect.Type
}

// Index is the type's column position, stable for the Context's lifetime.
func (t ComponentType) Index() int { return t.index }

func (t ComponentType) Type() reflect.Type { return t.rtype }

func (t ComponentType) String() string {
	if t.rtype == nil {
		return "<nil>"
	}
	return t.rtype.String()
}

// anyColumn is the type-erased view of a column so the registry can grow and
// wipe every column without knowing T.
type anyColumn interface {
	has(slot int) bool
	clear(slot int) bool
	grow(size int)
	reset()
}

// column stores the components of one type, indexed by slot. A nil cell
// means the slot holds no component of this type.
type column[T any] struct {
	cells []*T
}

func (c *column[T]) has(slot int) bool { return c.cells[slot] != nil }

func (c *column[T]) clear(slot int) bool {
	if c.cells[slot] == nil {
		return false
	}
	c.cells[slot] = nil
	return true
}

func (c *column[T]) grow(size int) {
	if size <= len(c.cells) {
		return
	}
	c.cells = append(c.cells, make([]*T, size-len(c.cells))...)
}

func (c *column[T]) reset() {
	clear(c.cells)
	c.cells = nil
}

// registry maps component types to columns. Columns are kept at the pool's
// slot count so any valid slot index can be read without bounds checks.
type registry struct {
	index   map[reflect.Type]int
	types   []ComponentType
	columns []anyColumn
	slots   int
}

func newRegistry(slots int) *registry {
	return &registry{
		index:   make(map[reflect.Type]int, 16),
		types:   make([]ComponentType, 0, 16),
		columns: make([]anyColumn, 0, 16),
		slots:   slots,
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// register returns the column for T, creating it on first use.
func register[T any](r *registry) (*column[T], ComponentType, bool) {
	t := typeOf[T]()
	if i, ok := r.index[t]; ok {
		return r.columns[i].(*column[T]), r.types[i], false
	}
	ct := ComponentType{index: len(r.types), rtype: t}
	col := &column[T]{cells: make([]*T, r.slots)}
	r.index[t] = ct.index
	r.types = append(r.types, ct)
	r.columns = append(r.columns, col)
	return col, ct, true
}

func lookup[T any](r *registry) (*column[T], bool) {
	i, ok := r.index[typeOf[T]()]
	if !ok {
		return nil, false
	}
	return r.columns[i].(*column[T]), true
}

func (r *registry) grow(slots int) {
	if slots <= r.slots {
		return
	}
	r.slots = slots
	for _, c := range r.columns {
		c.grow(slots)
	}
}

// clearSlot wipes every column cell of slot.
func (r *registry) clearSlot(slot int) {
	for _, c := range r.columns {
		c.clear(slot)
	}
}

func (r *registry) reset() {
	for _, c := range r.columns {
		c.reset()
	}
	clear(r.index)
	r.types = r.types[:0]
	r.columns = r.columns[:0]
	r.slots = 0
}
