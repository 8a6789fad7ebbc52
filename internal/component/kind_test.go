package component

import (
	"errors"
	"testing"

	"github.com/sdg/ecscore/internal/core/ecs"
	"gopkg.in/yaml.v3"
)

func TestAttachDecodesNode(t *testing.T) {
	var node yaml.Node
	src := "atlas: Main\norigin: {x: 10, y: 20, width: 16, height: 16}\n"
	if err := yaml.Unmarshal([]byte(src), &node); err != nil {
		t.Fatal(err)
	}

	c := ecs.NewEntityContext(4)
	e := c.CreateEntity()
	// Unmarshal into a Node yields a document node; its first child is the map.
	if err := Attach(c, e.ID(), "sprite", node.Content[0]); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	s, ok := ecs.GetComponent[Sprite](c, e.ID())
	if !ok {
		t.Fatal("sprite not attached")
	}
	if s.Atlas != "Main" || s.Origin != (Rect{X: 10, Y: 20, Width: 16, Height: 16}) {
		t.Fatalf("sprite = %+v", s)
	}
}

func TestAttachValue(t *testing.T) {
	c := ecs.NewEntityContext(4)
	e := c.CreateEntity()

	err := AttachValue(c, e.ID(), "transform", map[string]any{
		"degrees": 20,
		"scale_x": 2.4,
		"scale_y": 1.2,
	})
	if err != nil {
		t.Fatalf("AttachValue: %v", err)
	}
	tr, _ := ecs.GetComponent[Transform](c, e.ID())
	if tr.Degrees != 20 || tr.ScaleX != 2.4 || tr.ScaleY != 1.2 {
		t.Fatalf("transform = %+v", tr)
	}
}

func TestAttachErrors(t *testing.T) {
	c := ecs.NewEntityContext(4)
	e := c.CreateEntity()

	if err := Attach(c, e.ID(), "velocity", nil); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("unknown kind: err = %v", err)
	}
	if err := Attach(c, e.ID(), "tag", nil); err != nil {
		t.Fatalf("zero tag: %v", err)
	}
	if err := Attach(c, e.ID(), "tag", nil); !errors.Is(err, ErrRejected) {
		t.Fatalf("duplicate: err = %v", err)
	}
	if err := AttachValue(c, e.ID(), "position", map[string]any{"x": "left"}); err == nil {
		t.Fatal("string decoded into int field")
	}
}

func TestDetachAndHas(t *testing.T) {
	c := ecs.NewEntityContext(4)
	e := c.CreateEntity()
	if err := Attach(c, e.ID(), "position", nil); err != nil {
		t.Fatal(err)
	}

	if ok, err := Has(c, e.ID(), "position"); err != nil || !ok {
		t.Fatalf("Has = %v,%v", ok, err)
	}
	if ok, err := Detach(c, e.ID(), "position"); err != nil || !ok {
		t.Fatalf("Detach = %v,%v", ok, err)
	}
	if ok, _ := Has(c, e.ID(), "position"); ok {
		t.Fatal("still attached")
	}
	if _, err := Detach(c, e.ID(), "nope"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v", err)
	}
}

func TestKinds(t *testing.T) {
	got := Kinds()
	want := []string{"position", "sprite", "tag", "transform"}
	if len(got) != len(want) {
		t.Fatalf("Kinds = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Kinds = %v", got)
		}
	}
}
