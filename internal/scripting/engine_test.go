package scripting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sdg/ecscore/internal/component"
	"github.com/sdg/ecscore/internal/core/ecs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) (*Engine, *ecs.EntityContext) {
	t.Helper()
	c := ecs.NewEntityContext(8)
	e := NewEngine(c, zap.NewNop())
	t.Cleanup(e.Close)
	return e, c
}

func TestSpawnFromLua(t *testing.T) {
	e, c := newTestEngine(t)
	err := e.LoadString(`
local ecs = require("ecs")
function spawn(i)
  local id = ecs.create()
  ecs.add(id, "position", {x = i, y = i * 2})
  ecs.add(id, "tag", {name = "npc" .. i, group = "NPC"})
  if i % 2 == 0 then
    ecs.add(id, "transform", {degrees = 1.5, scale_x = 2})
  end
end
`)
	if err != nil {
		t.Fatal(err)
	}

	n, err := e.Spawn("spawn", 4)
	if err != nil || n != 4 {
		t.Fatalf("Spawn = %d,%v", n, err)
	}
	c.ApplyChanges()

	if c.AliveEntityCount() != 4 {
		t.Fatalf("alive = %d", c.AliveEntityCount())
	}
	rows := 0
	for row := range ecs.Find3[component.Position, component.Tag, component.Transform](c) {
		if row.C1.Y != row.C1.X*2 || row.C3.Degrees != 1.5 || row.C3.ScaleX != 2 {
			t.Fatalf("row = %+v %+v", row.C1, row.C3)
		}
		if !strings.HasPrefix(row.C2.Name, "npc") {
			t.Fatalf("tag = %+v", row.C2)
		}
		rows++
	}
	if rows != 2 {
		t.Fatalf("transform holders = %d", rows)
	}
}

func TestLuaLifecycle(t *testing.T) {
	e, c := newTestEngine(t)
	err := e.LoadString(`
local ecs = require("ecs")
local id = ecs.create()
assert(not ecs.alive(id))
ecs.apply()
assert(ecs.alive(id))
assert(ecs.alive_count() == 1)

assert(ecs.add(id, "tag", {name = "a"}))
local ok, msg = ecs.add(id, "tag", {name = "b"})
assert(not ok and msg ~= nil)
assert(ecs.has(id, "tag"))
assert(ecs.remove(id, "tag"))
assert(not ecs.has(id, "tag"))

assert(tostring(id) ~= "")
assert(ecs.destroy(id))
ecs.apply()
assert(not ecs.alive(id))
assert(not ecs.destroy(id))
`)
	if err != nil {
		t.Fatal(err)
	}
	if c.AliveEntityCount() != 0 {
		t.Fatalf("alive = %d", c.AliveEntityCount())
	}
}

func TestLuaErrors(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.LoadString(`local ecs = require("ecs"); ecs.add(ecs.create(), "velocity", {})`); err == nil {
		t.Fatal("unknown kind did not raise")
	}
	if err := e.LoadString(`local ecs = require("ecs"); ecs.alive(42)`); err == nil {
		t.Fatal("non-id argument accepted")
	}
	if _, err := e.Spawn("missing", 1); err == nil {
		t.Fatal("missing function accepted")
	}
	if err := e.LoadString(`function boom(i) error("bad " .. i) end`); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Spawn("boom", 3); err == nil || !strings.Contains(err.Error(), "bad 1") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	e, c := newTestEngine(t)
	dir := t.TempDir()
	src := "local ecs = require('ecs')\nfunction spawn(i) ecs.create() end\n"
	if err := os.WriteFile(filepath.Join(dir, "spawn.lua"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not lua"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := e.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := e.LoadDir(filepath.Join(dir, "missing")); err != nil {
		t.Fatalf("missing dir: %v", err)
	}
	if n, err := e.Spawn("spawn", 3); err != nil || n != 3 {
		t.Fatalf("Spawn = %d,%v", n, err)
	}
	if c.PendingCommands() != 3 {
		t.Fatalf("pending = %d", c.PendingCommands())
	}
}

func TestLuaToGo(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.LoadString(`t = {i = 3, f = 2.5, s = "x", b = true, n = {k = 1}, [1] = "skip"}`); err != nil {
		t.Fatal(err)
	}
	m := tableToMap(e.vm.GetGlobal("t").(*lua.LTable))
	if m["i"] != int64(3) || m["f"] != 2.5 || m["s"] != "x" || m["b"] != true {
		t.Fatalf("m = %v", m)
	}
	if nested, ok := m["n"].(map[string]any); !ok || nested["k"] != int64(1) {
		t.Fatalf("nested = %v", m["n"])
	}
	if len(m) != 5 {
		t.Fatalf("non-string key kept: %v", m)
	}
}
