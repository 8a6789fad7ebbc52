package ecs

import "fmt"

// Pool hands out generation-stamped records and recycles their slots.
// It does not track "alive" records, callers own that responsibility.
type Pool[T Poolable] struct {
	slots    []T
	nextFree int
	free     int
	counter  uint64
	factory  func() T
	onResize []func(int)
}

// NewPool allocates initSize records up front. factory returns a fresh record,
// its Id is overwritten by the pool.
func NewPool[T Poolable](initSize int, factory func() T) *Pool[T] {
	if initSize < 0 {
		initSize = 0
	}
	p := &Pool[T]{
		slots:    make([]T, 0, initSize),
		nextFree: NullIndex,
		factory:  factory,
	}
	p.resize(initSize)
	if initSize > 0 {
		p.nextFree = 0
	}
	return p
}

// OnResize registers fn to be called with the new slot count after growth.
func (p *Pool[T]) OnResize(fn func(int)) {
	p.onResize = append(p.onResize, fn)
}

func (p *Pool[T]) Count() int { return len(p.slots) }

// Free returns the number of unallocated slots.
func (p *Pool[T]) Free() int { return p.free }

func (p *Pool[T]) resize(newSize int) {
	cur := len(p.slots)
	if newSize <= cur {
		return
	}
	for i := cur; i < newSize; i++ {
		t := p.factory()
		t.SetID(Id{Index: i, NextFreeIndex: i + 1, Generation: NullGeneration})
		p.slots = append(p.slots, t)
	}
	last := p.slots[newSize-1]
	id := last.ID()
	id.NextFreeIndex = NullIndex
	last.SetID(id)
	p.free += newSize - cur

	for _, fn := range p.onResize {
		fn(newSize)
	}
}

func (p *Pool[T]) at(index int) T {
	if index < 0 || index >= len(p.slots) {
		panic(fmt.Sprintf("ecs: slot index %d out of range [0,%d)", index, len(p.slots)))
	}
	return p.slots[index]
}

// Create stamps the head of the free list with a fresh generation and returns
// it, growing the pool to 2n+1 slots when the free list is exhausted.
func (p *Pool[T]) Create() T {
	if p.nextFree == NullIndex {
		cur := len(p.slots)
		p.resize(cur*2 + 1)
		p.nextFree = cur
	}

	index := p.nextFree
	t := p.slots[index]
	id := t.ID()
	p.nextFree = id.NextFreeIndex

	id.NextFreeIndex = NullIndex
	id.Generation = p.counter
	p.counter++
	t.SetID(id)
	p.free--
	return t
}

// CheckValid reports whether id refers to the current occupant of its slot.
func (p *Pool[T]) CheckValid(id Id) bool {
	if id.IsNull() || id.Index < 0 || id.Index >= len(p.slots) {
		return false
	}
	return p.slots[id.Index].ID().Generation == id.Generation
}

// Get returns the record for id, or the zero value if id is stale.
func (p *Pool[T]) Get(id Id) (T, bool) {
	if !p.CheckValid(id) {
		var zero T
		return zero, false
	}
	return p.slots[id.Index], true
}

// Discard returns the slot of id to the free list. It reports false if id
// is stale or already free.
func (p *Pool[T]) Discard(id Id) bool {
	if !p.CheckValid(id) {
		return false
	}
	p.slots[id.Index].SetID(Id{
		Index:         id.Index,
		NextFreeIndex: p.nextFree,
		Generation:    NullGeneration,
	})
	p.nextFree = id.Index
	p.free++
	return true
}

// DiscardAll invalidates every outstanding id and relinks the free list in
// index order. Generations keep increasing across the reset.
func (p *Pool[T]) DiscardAll() {
	n := len(p.slots)
	if n == 0 {
		return
	}
	for i, t := range p.slots {
		t.SetID(Id{Index: i, NextFreeIndex: i + 1, Generation: NullGeneration})
	}
	p.slots[n-1].SetID(Id{Index: n - 1, NextFreeIndex: NullIndex, Generation: NullGeneration})
	p.nextFree = 0
	p.free = n
}

// Clear drops every slot. Only meant for full teardown.
func (p *Pool[T]) Clear() {
	clear(p.slots)
	p.slots = p.slots[:0]
	p.nextFree = NullIndex
	p.free = 0
	for _, fn := range p.onResize {
		fn(0)
	}
}
