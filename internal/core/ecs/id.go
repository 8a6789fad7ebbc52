package ecs

import (
	"fmt"
	"math"
)

const (
	NullIndex      = math.MaxInt
	NullGeneration = uint64(math.MaxUint64)
)

// Id identifies a pool slot. Index is the dense slot position, NextFreeIndex
// links free slots together and Generation distinguishes successive
// occupants of the same slot.
type Id struct {
	Index         int
	NextFreeIndex int
	Generation    uint64
}

// NullId is the identifier of nothing.
var NullId = Id{Index: NullIndex, NextFreeIndex: NullIndex, Generation: NullGeneration}

func (id Id) IsNull() bool { return id.Generation == NullGeneration }

// Equal compares generations only; free-list links are bookkeeping.
func (id Id) Equal(other Id) bool { return id.Generation == other.Generation }

func (id Id) String() string {
	if id.IsNull() {
		return "Id(null)"
	}
	return fmt.Sprintf("Id(%d:%d)", id.Index, id.Generation)
}

// Poolable is implemented by every record stored in a Pool.
type Poolable interface {
	ID() Id
	SetID(Id)
}
