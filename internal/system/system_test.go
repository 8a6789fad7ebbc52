package system

import (
	"testing"
	"time"

	"github.com/sdg/ecscore/internal/component"
	"github.com/sdg/ecscore/internal/core/ecs"
	coresys "github.com/sdg/ecscore/internal/core/system"
	"github.com/sdg/ecscore/internal/data"
	"go.uber.org/zap"
)

const smallWorkload = `
patterns:
  - name: camera
    count: 10
    components:
      position: {x: 50, y: 100}
      tag: {name: Camera}
  - name: joe
    count: 30
    components:
      position: {}
      tag: {name: Joe}
      sprite: {atlas: Main}
`

func setup(t *testing.T, churn int) (*ecs.EntityContext, *coresys.Runner, *QuerySystem, *GroupSystem, *ChurnSystem, *FlushSystem) {
	t.Helper()
	w, err := data.ParseWorkload([]byte(smallWorkload))
	if err != nil {
		t.Fatal(err)
	}
	c := ecs.NewEntityContext(16)
	if _, err := w.Spawn(c); err != nil {
		t.Fatal(err)
	}
	c.ApplyChanges()

	q := NewQuerySystem(c)
	g := NewGroupSystem(c)
	t.Cleanup(g.Close)
	ch := NewChurnSystem(c, w, churn, 7, zap.NewNop())
	f := NewFlushSystem(c)

	r := coresys.NewRunner()
	r.Register(f)
	r.Register(ch)
	r.Register(g)
	r.Register(q)
	return c, r, q, g, ch, f
}

func TestFramesKeepGroupAndQueryInStep(t *testing.T) {
	c, r, q, g, ch, f := setup(t, 5)

	for frame := 0; frame < 50; frame++ {
		r.Tick(16 * time.Millisecond)

		if c.AliveEntityCount() != 40 {
			t.Fatalf("frame %d: alive = %d", frame, c.AliveEntityCount())
		}
		want := 0
		for range ecs.Find3[component.Tag, component.Position, component.Sprite](c) {
			want++
		}
		if g.Group().Len() != want {
			t.Fatalf("frame %d: group = %d, query = %d", frame, g.Group().Len(), want)
		}
	}

	for _, s := range []*Stats{q.Stats(), g.Stats(), ch.Stats(), f.Stats()} {
		if s.Frames != 50 {
			t.Fatalf("%s ran %d frames", s.Name, s.Frames)
		}
	}
	if ch.Stats().Rows != 250 {
		t.Fatalf("churned %d", ch.Stats().Rows)
	}
	if f.Stats().RowsPerFrame() == 0 {
		t.Fatal("flush applied nothing")
	}
}

func TestQueryAndGroupTouchSameRows(t *testing.T) {
	_, r, q, g, _, _ := setup(t, 0)
	r.Tick(0)
	if q.Stats().Rows != 30 || g.Stats().Rows != 30 {
		t.Fatalf("query rows = %d, group rows = %d", q.Stats().Rows, g.Stats().Rows)
	}
}

func TestChurnDisabled(t *testing.T) {
	c, r, _, _, ch, _ := setup(t, 0)
	before := make(map[ecs.Id]bool)
	for id := range c.AliveIDs() {
		before[id] = true
	}
	r.Tick(0)
	for id := range c.AliveIDs() {
		if !before[id] {
			t.Fatalf("%v appeared with churn disabled", id)
		}
	}
	if ch.Stats().Frames != 0 {
		t.Fatal("disabled churn recorded a frame")
	}
}

func TestStats(t *testing.T) {
	var s Stats
	if s.Average() != 0 || s.RowsPerFrame() != 0 {
		t.Fatal("empty stats not zero")
	}
	s.record(10, 2*time.Millisecond)
	s.record(20, 4*time.Millisecond)
	if s.Average() != 3*time.Millisecond || s.Max != 4*time.Millisecond || s.RowsPerFrame() != 15 {
		t.Fatalf("stats = %+v", s)
	}
	if len(s.Fields()) != 5 {
		t.Fatal("fields")
	}
}
