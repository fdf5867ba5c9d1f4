package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for scripted entity steering.
// Single-goroutine access only (simulation loop).
//
// A steering behavior is a global Lua function taking
// (distance_to_player, speed, dt) and returning a signed position delta.
// Species reference behaviors by function name.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory yields an engine with no behaviors, which
// makes every species fall back to its built-in movement.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load behavior scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
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
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded behavior script", zap.String("file", path))
	}
	return nil
}

// Has reports whether a behavior function of the given name is defined.
func (e *Engine) Has(name string) bool {
	if name == "" {
		return false
	}
	return e.vm.GetGlobal(name).Type() == lua.LTFunction
}

// Steer calls the named behavior and returns its position delta. The
// second result is false when the behavior is missing or fails, in which
// case the caller uses its built-in movement.
func (e *Engine) Steer(name string, distToPlayer, speed, dt float64) (float64, bool) {
	fn := e.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return 0, false
	}
	err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(distToPlayer), lua.LNumber(speed), lua.LNumber(dt))
	if err != nil {
		e.log.Warn("behavior call failed", zap.String("behavior", name), zap.Error(err))
		return 0, false
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		e.log.Warn("behavior returned non-number", zap.String("behavior", name), zap.String("type", ret.Type().String()))
		return 0, false
	}
	return float64(n), true
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
