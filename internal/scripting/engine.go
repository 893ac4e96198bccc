package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for gameplay hooks.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory: core/ first, then plant/. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "plant"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// PlantContext holds the pre-packed data for a plant order decision.
type PlantContext struct {
	Seed     string
	Resource string
	Amount   int
	Timeout  float64
	Repeat   bool
	X, Y     float64
	Planted  int // producing plants already paying the same owner
}

// PlantOrder is the production order a new plant will carry.
type PlantOrder struct {
	Amount  int
	Timeout float64
	Repeat  bool
}

// PlantOrder calls the optional Lua plant_order(ctx) hook. The hook may
// return a table overriding amount, timeout and repeat; any field it leaves
// out keeps the seed's value. Without the hook, or on a script error, the
// seed's values are used unchanged.
func (e *Engine) PlantOrder(ctx PlantContext) PlantOrder {
	order := PlantOrder{Amount: ctx.Amount, Timeout: ctx.Timeout, Repeat: ctx.Repeat}

	fn := e.vm.GetGlobal("plant_order")
	if fn == lua.LNil {
		return order
	}

	t := e.vm.NewTable()
	t.RawSetString("seed", lua.LString(ctx.Seed))
	t.RawSetString("resource", lua.LString(ctx.Resource))
	t.RawSetString("amount", lua.LNumber(ctx.Amount))
	t.RawSetString("timeout", lua.LNumber(ctx.Timeout))
	t.RawSetString("repeat", lua.LBool(ctx.Repeat))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("planted", lua.LNumber(ctx.Planted))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua plant_order error", zap.String("seed", ctx.Seed), zap.Error(err))
		return order
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua plant_order returned non-table", zap.String("seed", ctx.Seed))
		return order
	}

	if v, ok := rt.RawGetString("amount").(lua.LNumber); ok {
		order.Amount = int(v)
	}
	if v, ok := rt.RawGetString("timeout").(lua.LNumber); ok && float64(v) > 0 {
		order.Timeout = float64(v)
	}
	if v, ok := rt.RawGetString("repeat").(lua.LBool); ok {
		order.Repeat = bool(v)
	}
	return order
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
