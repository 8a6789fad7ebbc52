package ecs_test

import (
	"fmt"
	"testing"

	"github.com/sdg/ecscore/internal/core/ecs"
)

type renderGroup = ecs.Group[ecs.Tuple3[*ecs.Entity, position, sprite, tag]]

func groupIDs(g *renderGroup) map[ecs.Id]bool {
	out := make(map[ecs.Id]bool, g.Len())
	for row := range g.All() {
		out[row.Entity.ID()] = true
	}
	return out
}

func queryIDs(c *ecs.EntityContext) map[ecs.Id]bool {
	out := map[ecs.Id]bool{}
	for row := range ecs.Find3[position, sprite, tag](c) {
		out[row.Entity.ID()] = true
	}
	return out
}

func sameIDs(a, b map[ecs.Id]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

func TestGroupBeforeAndAfterAgree(t *testing.T) {
	c := ecs.NewEntityContext(16)
	early := ecs.NewGroup3[position, sprite, tag](c)
	defer early.Dispose()

	var doomed []*ecs.Entity
	for i := 0; i < 40; i++ {
		var e *ecs.Entity
		switch i % 4 {
		case 0:
			e = spawn(c, &position{}, &tag{})
		case 1:
			e = spawn(c, &position{}, &sprite{}, &tag{})
		case 2:
			e = spawn(c, &position{}, &sprite{}, &tag{}, &transform{})
		default:
			e = spawn(c, &sprite{}, &tag{})
		}
		if i%5 == 0 {
			doomed = append(doomed, e)
		}
		if i%3 == 0 {
			c.ApplyChanges()
		}
	}
	c.ApplyChanges()
	for _, e := range doomed {
		e.Destroy()
	}
	c.ApplyChanges()

	late := ecs.NewGroup3[position, sprite, tag](c)
	defer late.Dispose()

	want := queryIDs(c)
	if len(want) == 0 {
		t.Fatal("workload produced no matches")
	}
	if !sameIDs(groupIDs(early), want) {
		t.Fatalf("early group has %d entries, query has %d", early.Len(), len(want))
	}
	if !sameIDs(groupIDs(late), want) {
		t.Fatalf("late group has %d entries, query has %d", late.Len(), len(want))
	}
}

func TestGroupTracksComponentChanges(t *testing.T) {
	c := ecs.NewEntityContext(4)
	e := spawn(c, &position{}, &tag{})
	c.ApplyChanges()

	g := ecs.NewGroup3[position, sprite, tag](c)
	defer g.Dispose()
	if g.Len() != 0 {
		t.Fatal("partial holder cached")
	}

	ecs.Attach(e, &sprite{Name: "a"})
	if g.Contains(e.ID()) {
		t.Fatal("group updated before ApplyChanges")
	}
	c.ApplyChanges()
	if !g.Contains(e.ID()) {
		t.Fatal("completed entity not cached")
	}

	ecs.Detach[tag](e)
	c.ApplyChanges()
	if g.Contains(e.ID()) {
		t.Fatal("entity cached after losing a tracked type")
	}

	// Untracked changes leave the entry alone.
	ecs.Attach(e, &tag{})
	c.ApplyChanges()
	ecs.Attach(e, &transform{})
	ecs.Detach[transform](e)
	c.ApplyChanges()
	if !g.Contains(e.ID()) {
		t.Fatal("untracked removal evicted the entry")
	}

	e.Destroy()
	c.ApplyChanges()
	if g.Len() != 0 {
		t.Fatal("destroyed entity still cached")
	}
}

func TestGroupRefreshesReplacedComponent(t *testing.T) {
	c := ecs.NewEntityContext(4)
	e := spawn(c, &position{}, &sprite{Name: "old"}, &tag{})
	c.ApplyChanges()
	g := ecs.NewGroup3[position, sprite, tag](c)
	defer g.Dispose()

	ecs.Detach[sprite](e)
	ecs.Attach(e, &sprite{Name: "new"})
	c.ApplyChanges()

	row, ok := g.Get(e.ID())
	if !ok || row.C2.Name != "new" {
		t.Fatalf("cached row = %+v,%v", row, ok)
	}
}

func TestGroupIgnoresRecycledSlot(t *testing.T) {
	c := ecs.NewEntityContext(1)
	old := spawn(c, &position{}, &sprite{}, &tag{})
	c.ApplyChanges()
	g := ecs.NewGroup3[position, sprite, tag](c)
	defer g.Dispose()

	oldID := old.ID()
	old.Destroy()
	c.ApplyChanges()
	next := spawn(c, &position{}, &tag{})
	c.ApplyChanges()

	if next.ID().Index != oldID.Index {
		t.Fatalf("slot not recycled")
	}
	if g.Contains(oldID) || g.Contains(next.ID()) {
		t.Fatal("recycled slot cached")
	}
}

func TestGroupDispose(t *testing.T) {
	c := ecs.NewEntityContext(4)
	g := ecs.NewGroup3[position, sprite, tag](c)
	g.Dispose()
	g.Dispose()
	if !g.Disposed() {
		t.Fatal("not disposed")
	}

	spawn(c, &position{}, &sprite{}, &tag{})
	c.ApplyChanges()
	if g.Len() != 0 {
		t.Fatal("disposed group kept updating")
	}
	if len(g.Types()) != 3 {
		t.Fatalf("types = %v", g.Types())
	}
}

// The reference workload: four patterns interleaved over 10,000 entities in a
// context that starts at 256 slots.
func TestReferenceWorkload(t *testing.T) {
	const total = 10000
	c := ecs.NewEntityContext(256)

	for i := 0; i < total; i++ {
		name := fmt.Sprintf("e%d", i)
		switch i % 4 {
		case 0: // camera
			spawn(c, &position{}, &tag{Name: name})
		case 1: // joe
			spawn(c, &position{}, &tag{Name: name}, &sprite{Name: "joe"})
		case 2: // bob
			spawn(c, &position{}, &tag{Name: name}, &sprite{Name: "bob"}, &transform{Scale: 1})
		case 3: // bush
			spawn(c, &position{}, &tag{Name: name}, &sprite{Name: "bush"})
		}
	}
	c.ApplyChanges()

	if c.AliveEntityCount() != total {
		t.Fatalf("alive = %d, want %d", c.AliveEntityCount(), total)
	}

	g := ecs.NewGroup3[position, sprite, tag](c)
	defer g.Dispose()
	if g.Len() != total*3/4 {
		t.Fatalf("group = %d, want %d", g.Len(), total*3/4)
	}
	if !sameIDs(groupIDs(g), queryIDs(c)) {
		t.Fatal("group and query disagree")
	}

	bobs := ecs.NewGroup4[position, sprite, tag, transform](c)
	defer bobs.Dispose()
	if bobs.Len() != total/4 {
		t.Fatalf("bob group = %d, want %d", bobs.Len(), total/4)
	}
	for row := range bobs.All() {
		if row.C2.Name != "bob" {
			t.Fatalf("bob group holds %q", row.C2.Name)
		}
	}
}

func TestReferenceWorkloadGroupBuiltFirst(t *testing.T) {
	c := ecs.NewEntityContext(256)
	g := ecs.NewGroup3[position, sprite, tag](c)
	defer g.Dispose()

	for i := 0; i < 10000; i++ {
		if i%4 == 0 {
			spawn(c, &position{}, &tag{})
			continue
		}
		spawn(c, &position{}, &tag{}, &sprite{})
	}
	c.ApplyChanges()

	if g.Len() != 7500 {
		t.Fatalf("group = %d, want 7500", g.Len())
	}
}
