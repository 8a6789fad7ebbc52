package ecs

const tombstone = -1

// slotSet is a sparse set keyed by slot index. Membership also requires the
// generation to match, so a stale id never aliases the slot's next occupant.
// Iteration order is insertion order until the first removal, which swaps the
// last entry into the hole.
type slotSet[V any] struct {
	sparse []int
	ids    []Id
	values []V
}

func (s *slotSet[V]) len() int { return len(s.ids) }

func (s *slotSet[V]) pos(id Id) (int, bool) {
	if id.Index < 0 || id.Index >= len(s.sparse) {
		return 0, false
	}
	p := s.sparse[id.Index]
	if p == tombstone || !s.ids[p].Equal(id) {
		return 0, false
	}
	return p, true
}

func (s *slotSet[V]) has(id Id) bool {
	_, ok := s.pos(id)
	return ok
}

func (s *slotSet[V]) get(id Id) (V, bool) {
	p, ok := s.pos(id)
	if !ok {
		var zero V
		return zero, false
	}
	return s.values[p], true
}

// add inserts id unless it is already present. An entry left behind by a
// previous occupant of the slot is replaced.
func (s *slotSet[V]) add(id Id, v V) bool {
	if id.Index >= len(s.sparse) {
		oldLen := len(s.sparse)
		newLen := max(oldLen*2, id.Index+1)
		grown := make([]int, newLen)
		copy(grown, s.sparse)
		for i := oldLen; i < newLen; i++ {
			grown[i] = tombstone
		}
		s.sparse = grown
	}
	if p := s.sparse[id.Index]; p != tombstone {
		if s.ids[p].Equal(id) {
			return false
		}
		s.ids[p] = id
		s.values[p] = v
		return true
	}
	s.sparse[id.Index] = len(s.ids)
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
	return true
}

// put inserts id or overwrites its value.
func (s *slotSet[V]) put(id Id, v V) {
	if p, ok := s.pos(id); ok {
		s.values[p] = v
		return
	}
	s.add(id, v)
}

func (s *slotSet[V]) remove(id Id) bool {
	p, ok := s.pos(id)
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	if p != last {
		moved := s.ids[last]
		s.ids[p] = moved
		s.values[p] = s.values[last]
		s.sparse[moved.Index] = p
	}
	var zero V
	s.values[last] = zero
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	s.sparse[id.Index] = tombstone
	return true
}

func (s *slotSet[V]) reset() {
	clear(s.values)
	s.sparse = s.sparse[:0]
	s.ids = s.ids[:0]
	s.values = s.values[:0]
}
