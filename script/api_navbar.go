package script

import (
	"github.com/charmbracelet/lipgloss"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/navbar"
)

// registerNavbarFuncs registers the global navbar table.
func (e *Engine) registerNavbarFuncs() {
	t := e.L.NewTable()
	e.L.SetGlobal("navbar", t)

	// navbar.set_style(slot, fragment) - Set a global style override.
	// fragment = { fg = "#rrggbb", bg = ..., bold = true, italic = true,
	//              underline = true, faint = true, padding = n }
	e.L.SetField(t, "set_style", e.L.NewFunction(func(L *glua.LState) int {
		slot := L.CheckString(1)
		tbl := L.CheckTable(2)
		e.reg.SetStyle(navbar.Slot(slot), styleFromTable(L, tbl))
		return 0
	}))

	// navbar.set_back_action(fn) - Replace the global back handler.
	// nil clears it. Errors raised by fn are logged, never fatal.
	e.L.SetField(t, "set_back_action", e.L.NewFunction(func(L *glua.LState) int {
		if L.Get(1) == glua.LNil {
			e.reg.SetBackAction(nil)
			return 0
		}
		fn := L.CheckFunction(1)
		e.reg.SetBackAction(func() {
			e.L.Push(fn)
			if err := e.L.PCall(0, 0, nil); err != nil {
				e.logger.Printf("back action: %v", err)
			}
		})
		return 0
	}))

	// navbar.set_back_glyph(glyph) - Replace the back-button glyph.
	e.L.SetField(t, "set_back_glyph", e.L.NewFunction(func(L *glua.LState) int {
		e.reg.SetBackGlyph(L.CheckString(1))
		return 0
	}))

	// navbar.slots() - List the recognized style slots.
	e.L.SetField(t, "slots", e.L.NewFunction(func(L *glua.LState) int {
		out := L.NewTable()
		for _, slot := range navbar.Slots() {
			out.Append(glua.LString(slot))
		}
		L.Push(out)
		return 1
	}))

	// Layout coordination metrics.
	e.L.SetField(t, "status_bar_height", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LNumber(navbar.StatusBarHeight()))
		return 1
	}))
	e.L.SetField(t, "bar_height", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LNumber(navbar.BarHeight))
		return 1
	}))
	e.L.SetField(t, "total_height", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LNumber(navbar.TotalHeight()))
		return 1
	}))
}

// styleFromTable converts a Lua style table to a lipgloss fragment. Unknown
// keys are ignored so scripts stay forward-compatible.
func styleFromTable(L *glua.LState, tbl *glua.LTable) lipgloss.Style {
	s := lipgloss.NewStyle()
	if v := L.GetField(tbl, "fg"); v != glua.LNil {
		s = s.Foreground(lipgloss.Color(v.String()))
	}
	if v := L.GetField(tbl, "bg"); v != glua.LNil {
		s = s.Background(lipgloss.Color(v.String()))
	}
	if v := L.GetField(tbl, "bold"); v != glua.LNil {
		s = s.Bold(glua.LVAsBool(v))
	}
	if v := L.GetField(tbl, "italic"); v != glua.LNil {
		s = s.Italic(glua.LVAsBool(v))
	}
	if v := L.GetField(tbl, "underline"); v != glua.LNil {
		s = s.Underline(glua.LVAsBool(v))
	}
	if v := L.GetField(tbl, "faint"); v != glua.LNil {
		s = s.Faint(glua.LVAsBool(v))
	}
	if v, ok := L.GetField(tbl, "padding").(glua.LNumber); ok {
		s = s.Padding(0, int(v))
	}
	return s
}
