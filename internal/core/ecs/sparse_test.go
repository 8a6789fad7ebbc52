package ecs

import "testing"

func TestSlotSetAddRemove(t *testing.T) {
	var s slotSet[string]
	a := Id{Index: 0, Generation: 1}
	b := Id{Index: 5, Generation: 2}
	c := Id{Index: 2, Generation: 3}

	for _, id := range []Id{a, b, c} {
		if !s.add(id, id.String()) {
			t.Fatalf("add %v failed", id)
		}
	}
	if s.add(b, "again") {
		t.Fatal("duplicate add succeeded")
	}
	if v, _ := s.get(b); v != b.String() {
		t.Fatalf("duplicate add overwrote value: %q", v)
	}

	if !s.remove(a) {
		t.Fatal("remove failed")
	}
	if s.remove(a) {
		t.Fatal("second remove succeeded")
	}
	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}
	// c was swapped into a's position.
	if s.ids[0] != c || s.values[0] != c.String() {
		t.Fatalf("swap-remove left %v/%q at 0", s.ids[0], s.values[0])
	}
	if !s.has(b) || !s.has(c) {
		t.Fatal("survivors lost")
	}
}

func TestSlotSetGenerationMismatch(t *testing.T) {
	var s slotSet[int]
	old := Id{Index: 3, Generation: 7}
	s.add(old, 1)

	reused := Id{Index: 3, Generation: 9}
	if s.has(reused) {
		t.Fatal("new occupant aliases stale entry")
	}
	if s.remove(reused) {
		t.Fatal("removed stale entry through new occupant")
	}
	if !s.add(reused, 2) {
		t.Fatal("add over stale entry failed")
	}
	if s.has(old) {
		t.Fatal("stale entry still present")
	}
	if v, ok := s.get(reused); !ok || v != 2 || s.len() != 1 {
		t.Fatalf("get = %d,%v len=%d", v, ok, s.len())
	}
}

func TestSlotSetPut(t *testing.T) {
	var s slotSet[int]
	id := Id{Index: 1, Generation: 4}
	s.put(id, 10)
	s.put(id, 20)
	if v, _ := s.get(id); v != 20 || s.len() != 1 {
		t.Fatalf("put: value=%d len=%d", v, s.len())
	}

	s.reset()
	if s.len() != 0 || s.has(id) {
		t.Fatal("reset left entries")
	}
}
