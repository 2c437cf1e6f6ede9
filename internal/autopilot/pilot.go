// Package autopilot drives sessions headlessly with a Lua decision script
// under a manual clock. Used by `flappy sim` for deterministic replays and
// tuning experiments.
package autopilot

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

//go:embed scripts/default.lua
var defaultScript string

// DefaultScript returns the embedded default pilot source.
func DefaultScript() string { return defaultScript }

// Pilot wraps a single gopher-lua VM holding a decide(state) function.
// Single-goroutine access only.
type Pilot struct {
	vm     *lua.LState
	name   string
	logger *log.Logger
	errors int
}

// NewPilot compiles source and checks that it defines decide.
func NewPilot(name, source string, logger *log.Logger) (*Pilot, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	if _, ok := vm.GetGlobal("decide").(*lua.LFunction); !ok {
		vm.Close()
		return nil, fmt.Errorf("autopilot: %s does not define decide(state)", name)
	}
	return &Pilot{vm: vm, name: name, logger: logger}, nil
}

// LoadPilot reads a script from path, or uses the embedded default when
// path is empty.
func LoadPilot(path string, logger *log.Logger) (*Pilot, error) {
	if path == "" {
		return NewPilot("default.lua", defaultScript, logger)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("autopilot: read %s: %w", path, err)
	}
	return NewPilot(path, string(src), logger)
}

// Close releases the VM.
func (p *Pilot) Close() {
	if p.vm != nil {
		p.vm.Close()
		p.vm = nil
	}
}

// Errors returns how many decide calls failed.
func (p *Pilot) Errors() int { return p.errors }

// Decide calls decide(state) with the snapshot and reports whether to flap.
// Script errors count as "do not flap".
func (p *Pilot) Decide(snap flappy.Snapshot) bool {
	if p.vm == nil {
		return false
	}
	fn := p.vm.GetGlobal("decide")

	if err := p.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, p.stateTable(snap)); err != nil {
		p.errors++
		// Log the first failure only; a broken script fails every tick.
		if p.errors == 1 {
			p.logger.Warn("autopilot decide failed", "script", p.name, "error", err)
		}
		return false
	}

	result := p.vm.Get(-1)
	p.vm.Pop(1)
	return lua.LVAsBool(result)
}

func (p *Pilot) stateTable(snap flappy.Snapshot) *lua.LTable {
	t := p.vm.NewTable()
	t.RawSetString("y", lua.LNumber(snap.Player.Y))
	t.RawSetString("velocity", lua.LNumber(snap.Player.Velocity))
	t.RawSetString("boost", lua.LNumber(snap.Player.BoostTicks))
	t.RawSetString("score", lua.LNumber(snap.Score))
	t.RawSetString("tick", lua.LNumber(snap.Ticks))
	t.RawSetString("style", lua.LString(snap.Style))

	player := p.vm.NewTable()
	player.RawSetString("left", lua.LNumber(snap.PlayerBox.X))
	player.RawSetString("right", lua.LNumber(snap.PlayerBox.Right()))
	player.RawSetString("top", lua.LNumber(snap.PlayerBox.Y))
	player.RawSetString("bottom", lua.LNumber(snap.PlayerBox.Bottom()))
	t.RawSetString("player", player)

	world := p.vm.NewTable()
	world.RawSetString("width", lua.LNumber(snap.WorldW))
	world.RawSetString("height", lua.LNumber(snap.WorldH))
	t.RawSetString("world", world)

	pipes := p.vm.NewTable()
	for _, pv := range snap.Pipes {
		pt := p.pipeTable(pv)
		pipes.Append(pt)
		if t.RawGetString("next_pipe") == lua.LNil && pv.X+pv.Width > snap.PlayerBox.X {
			t.RawSetString("next_pipe", pt)
		}
	}
	t.RawSetString("pipes", pipes)
	return t
}

func (p *Pilot) pipeTable(pv flappy.PipeView) *lua.LTable {
	pt := p.vm.NewTable()
	pt.RawSetString("x", lua.LNumber(pv.X))
	pt.RawSetString("width", lua.LNumber(pv.Width))
	pt.RawSetString("gap_top", lua.LNumber(pv.GapTop))
	pt.RawSetString("gap_bottom", lua.LNumber(pv.GapBottom))
	pt.RawSetString("passed", lua.LBool(pv.Passed))

	pu := p.vm.NewTable()
	pu.RawSetString("x", lua.LNumber(pv.PowerUp.Box.X))
	pu.RawSetString("y", lua.LNumber(pv.PowerUp.Box.Y))
	pu.RawSetString("size", lua.LNumber(pv.PowerUp.Box.W))
	pu.RawSetString("collected", lua.LBool(pv.PowerUp.Collected))
	pt.RawSetString("power_up", pu)
	return pt
}
