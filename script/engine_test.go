package script

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/navbar"
)

// setupTest creates an engine bound to an isolated registry with captured
// diagnostics.
func setupTest(t *testing.T) (*Engine, *navbar.Registry, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	reg := navbar.NewRegistry()
	reg.SetLogger(log.New(&buf, "", 0))

	e := NewEngine(reg)
	e.logger = log.New(&buf, "", 0)
	if err := e.Init(); err != nil {
		t.Fatal("engine init:", err)
	}
	t.Cleanup(e.Close)
	return e, reg, &buf
}

func TestSetStyleFromLua(t *testing.T) {
	e, reg, _ := setupTest(t)

	err := e.LoadString(`navbar.set_style("title", { fg = "#ff0000", bold = true })`)
	if err != nil {
		t.Fatal(err)
	}

	s, ok := reg.Style(navbar.SlotTitle)
	if !ok {
		t.Fatal("no global override stored for title slot")
	}
	if s.GetForeground() != lipgloss.Color("#ff0000") {
		t.Errorf("foreground = %v", s.GetForeground())
	}
	if !s.GetBold() {
		t.Error("bold not carried over from Lua table")
	}
}

func TestSetStyleUnknownSlotIsNonFatal(t *testing.T) {
	e, _, buf := setupTest(t)

	if err := e.LoadString(`navbar.set_style("bogus", { bold = true })`); err != nil {
		t.Fatalf("unknown slot must not raise: %v", err)
	}
	if !strings.Contains(buf.String(), "unknown slot") {
		t.Errorf("expected a diagnostic, got %q", buf.String())
	}
}

func TestBackActionRoundTrip(t *testing.T) {
	e, reg, _ := setupTest(t)

	err := e.LoadString(`
		count = 0
		navbar.set_back_action(function() count = count + 1 end)
	`)
	if err != nil {
		t.Fatal(err)
	}

	fn := reg.BackAction()
	if fn == nil {
		t.Fatal("back action not registered")
	}
	fn()
	fn()

	if got := e.L.GetGlobal("count"); got != glua.LNumber(2) {
		t.Errorf("count = %v, want 2", got)
	}

	if err := e.LoadString(`navbar.set_back_action(nil)`); err != nil {
		t.Fatal(err)
	}
	if reg.BackAction() != nil {
		t.Error("nil must clear the back action")
	}
}

func TestBackActionErrorIsLoggedNotFatal(t *testing.T) {
	e, reg, buf := setupTest(t)

	err := e.LoadString(`navbar.set_back_action(function() error("boom") end)`)
	if err != nil {
		t.Fatal(err)
	}

	reg.BackAction()() // must not panic
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("script error not logged: %q", buf.String())
	}
}

func TestSetBackGlyphFromLua(t *testing.T) {
	e, reg, _ := setupTest(t)

	if err := e.LoadString(`navbar.set_back_glyph("←")`); err != nil {
		t.Fatal(err)
	}
	if reg.BackGlyph() != "←" {
		t.Errorf("glyph = %q", reg.BackGlyph())
	}
}

func TestMetricsAndSlotsExposed(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")
	e, _, _ := setupTest(t)

	err := e.LoadString(`
		assert(navbar.bar_height() == 2)
		assert(navbar.status_bar_height() == 0)
		assert(navbar.total_height() == 2)
		assert(#navbar.slots() == 8)
	`)
	if err != nil {
		t.Fatal(err)
	}
}

func TestInitResetsVMNotRegistry(t *testing.T) {
	e, reg, _ := setupTest(t)

	if err := e.LoadString(`navbar.set_back_glyph("x")`); err != nil {
		t.Fatal(err)
	}
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}

	// Registry state outlives the VM; the API is registered again.
	if reg.BackGlyph() != "x" {
		t.Error("registry reset by engine re-init")
	}
	if err := e.LoadString(`navbar.set_back_glyph("y")`); err != nil {
		t.Fatalf("navbar API missing after re-init: %v", err)
	}
	if reg.BackGlyph() != "y" {
		t.Error("API not functional after re-init")
	}
}
