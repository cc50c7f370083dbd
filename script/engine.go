// Package script embeds a Lua VM so user scripts can customize navigation
// bars at runtime: style overrides, the back glyph, and the global back
// action, all through the registry shared by every bar.
package script

import (
	"log"
	"os"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/navbar"
	"github.com/drake/navbar/config"
	"github.com/drake/navbar/debug"
)

// Engine wraps gopher-lua and manages the VM lifecycle. It is a pure
// mechanism: it knows how to run Lua and expose the navbar API, not where
// scripts come from.
type Engine struct {
	L   *glua.LState
	reg *navbar.Registry

	logger *log.Logger
	trace  *log.Logger
}

// NewEngine creates an Engine bound to the given registry. A nil registry
// binds to the shared default.
func NewEngine(reg *navbar.Registry) *Engine {
	if reg == nil {
		reg = navbar.DefaultRegistry()
	}
	return &Engine{
		reg:    reg,
		logger: log.New(os.Stderr, "script: ", log.LstdFlags),
		trace:  debug.Logger("script: "),
	}
}

// Init initializes (or re-initializes) the Lua VM with fresh state and
// registers the navbar API.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}
	e.L = glua.NewState()
	e.registerNavbarFuncs()
	return nil
}

// Close tears down the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// LoadFile executes a script file in the VM.
func (e *Engine) LoadFile(path string) error {
	e.trace.Printf("loading %s", path)
	return e.L.DoFile(path)
}

// LoadString executes inline Lua source.
func (e *Engine) LoadString(src string) error {
	return e.L.DoString(src)
}

// LoadInit runs the user's init.lua when one exists. A missing init file is
// not an error.
func (e *Engine) LoadInit() error {
	if !config.HasInitFile() {
		e.trace.Printf("no init file at %s", config.InitFile())
		return nil
	}
	return e.LoadFile(config.InitFile())
}
