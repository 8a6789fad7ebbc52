package scripting

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/sdg/ecscore/internal/component"
	"github.com/sdg/ecscore/internal/core/ecs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const idTypeName = "ecs.id"

// Engine wraps a single gopher-lua VM bound to one entity context. Scripts
// reach the context through the "ecs" module:
//
//	local ecs = require("ecs")
//	local id = ecs.create()
//	ecs.add(id, "position", {x = 1, y = 2})
//
// Single-goroutine access only, same as the context.
type Engine struct {
	vm      *lua.LState
	ctx     *ecs.EntityContext
	log     *zap.Logger
	created int
}

func NewEngine(ctx *ecs.EntityContext, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, ctx: ctx, log: log}

	mt := vm.NewTypeMetatable(idTypeName)
	vm.SetField(mt, "__tostring", vm.NewFunction(e.idToString))
	vm.SetField(mt, "__eq", vm.NewFunction(e.idEqual))

	vm.PreloadModule("ecs", e.loadModule)
	return e
}

func (e *Engine) loadModule(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"create":      e.luaCreate,
		"destroy":     e.luaDestroy,
		"add":         e.luaAdd,
		"remove":      e.luaRemove,
		"has":         e.luaHas,
		"alive":       e.luaAlive,
		"alive_count": e.luaAliveCount,
		"apply":       e.luaApply,
	})
	L.Push(mod)
	return 1
}

// LoadDir loads all .lua files in a directory. A missing directory is not an
// error.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		if err := e.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) LoadFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

func (e *Engine) LoadString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load lua chunk: %w", err)
	}
	return nil
}

// Spawn calls the global Lua function fn once per entity with the 1-based
// index and returns how many entities the calls created. Changes are not
// applied.
func (e *Engine) Spawn(fn string, n int) (int, error) {
	f := e.vm.GetGlobal(fn)
	if f.Type() != lua.LTFunction {
		return 0, fmt.Errorf("lua function %s not found", fn)
	}

	before := e.created
	for i := 1; i <= n; i++ {
		if err := e.vm.CallByParam(lua.P{
			Fn:      f,
			NRet:    0,
			Protect: true,
		}, lua.LNumber(i)); err != nil {
			return e.created - before, fmt.Errorf("lua %s(%d): %w", fn, i, err)
		}
	}
	e.log.Debug("lua spawn finished",
		zap.String("func", fn),
		zap.Int("calls", n),
		zap.Int("created", e.created-before),
	)
	return e.created - before, nil
}

func (e *Engine) Close() {
	e.vm.Close()
}

// ── ecs module ────────────────────────────────────────────────────

func (e *Engine) pushID(L *lua.LState, id ecs.Id) {
	ud := L.NewUserData()
	ud.Value = id
	L.SetMetatable(ud, L.GetTypeMetatable(idTypeName))
	L.Push(ud)
}

func (e *Engine) checkID(L *lua.LState, n int) ecs.Id {
	ud := L.CheckUserData(n)
	id, ok := ud.Value.(ecs.Id)
	if !ok {
		L.ArgError(n, "entity id expected")
	}
	return id
}

func (e *Engine) idToString(L *lua.LState) int {
	L.Push(lua.LString(e.checkID(L, 1).String()))
	return 1
}

func (e *Engine) idEqual(L *lua.LState) int {
	a, b := e.checkID(L, 1), e.checkID(L, 2)
	L.Push(lua.LBool(a.Index == b.Index && a.Equal(b)))
	return 1
}

func (e *Engine) luaCreate(L *lua.LState) int {
	ent := e.ctx.CreateEntity()
	e.created++
	e.pushID(L, ent.ID())
	return 1
}

func (e *Engine) luaDestroy(L *lua.LState) int {
	L.Push(lua.LBool(e.ctx.DestroyEntity(e.checkID(L, 1))))
	return 1
}

// ecs.add(id, kind [, fields]) returns true, or false plus a message when the
// context rejects the component. Unknown kinds and bad fields raise errors.
func (e *Engine) luaAdd(L *lua.LState) int {
	id := e.checkID(L, 1)
	kind := L.CheckString(2)
	fields := map[string]any{}
	if L.GetTop() >= 3 {
		fields = tableToMap(L.CheckTable(3))
	}

	err := component.AttachValue(e.ctx, id, kind, fields)
	switch {
	case err == nil:
		L.Push(lua.LTrue)
		return 1
	case errors.Is(err, component.ErrRejected):
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.RaiseError("%v", err)
	return 0
}

func (e *Engine) luaRemove(L *lua.LState) int {
	ok, err := component.Detach(e.ctx, e.checkID(L, 1), L.CheckString(2))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LBool(ok))
	return 1
}

func (e *Engine) luaHas(L *lua.LState) int {
	ok, err := component.Has(e.ctx, e.checkID(L, 1), L.CheckString(2))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LBool(ok))
	return 1
}

func (e *Engine) luaAlive(L *lua.LState) int {
	L.Push(lua.LBool(e.ctx.IsAlive(e.checkID(L, 1))))
	return 1
}

func (e *Engine) luaAliveCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.ctx.AliveEntityCount()))
	return 1
}

func (e *Engine) luaApply(L *lua.LState) int {
	e.ctx.ApplyChanges()
	return 0
}

// tableToMap converts a Lua table with string keys into plain Go values.
// Integral numbers become int64 so they decode into int fields.
func tableToMap(t *lua.LTable) map[string]any {
	out := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			return
		}
		out[string(key)] = luaToGo(v)
	})
	return out
}

func luaToGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LString:
		return string(v)
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case *lua.LTable:
		return tableToMap(v)
	}
	return nil
}
