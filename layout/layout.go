// Package layout composes dock-based screens: fixed-height bars pinned to
// the top and bottom edges with a flexible content region between them.
package layout

import "strings"

// Renderer is the minimal contract for dockable components.
type Renderer interface {
	SetWidth(w int)
	Height() int
	View() string
}

// Dock is an ordered stack of renderers pinned to one screen edge.
type Dock struct {
	Renderers []Renderer
}

// Height returns the total height of every renderer in the dock.
func (d *Dock) Height() int {
	h := 0
	for _, r := range d.Renderers {
		h += r.Height()
	}
	return h
}

// SetWidth propagates the dock width to every renderer.
func (d *Dock) SetWidth(w int) {
	for _, r := range d.Renderers {
		r.SetWidth(w)
	}
}

// View renders every visible renderer, one below the other.
func (d *Dock) View() string {
	var parts []string
	for _, r := range d.Renderers {
		if r.Height() > 0 {
			parts = append(parts, r.View())
		}
	}
	return strings.Join(parts, "\n")
}

// Engine tracks the screen size and sizes the content region left over
// between the docks.
type Engine struct {
	width  int
	height int
}

// NewEngine creates an empty layout engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetSize records the total available screen size.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Width returns the current screen width.
func (e *Engine) Width() int {
	return e.width
}

// Content sizes both docks to the screen width and returns the rows left for
// the content region, never less than one.
func (e *Engine) Content(top, bottom *Dock) int {
	top.SetWidth(e.width)
	bottom.SetWidth(e.width)

	h := e.height - top.Height() - bottom.Height()
	if h < 1 {
		h = 1
	}
	return h
}
