package navbar

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// newTestRegistry returns an isolated registry with captured diagnostics.
func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	reg := NewRegistry()
	var buf bytes.Buffer
	reg.SetLogger(log.New(&buf, "", 0))
	return reg, &buf
}

func TestSetStyleStoresFragment(t *testing.T) {
	reg, _ := newTestRegistry(t)

	frag := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	reg.SetStyle(SlotTitle, frag)

	got, ok := reg.Style(SlotTitle)
	if !ok {
		t.Fatal("expected a stored fragment for title slot")
	}
	if got.GetForeground() != lipgloss.Color("#ff0000") {
		t.Errorf("stored fragment foreground = %v", got.GetForeground())
	}

	// Replacement, not accumulation.
	reg.SetStyle(SlotTitle, lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")))
	got, _ = reg.Style(SlotTitle)
	if got.GetForeground() != lipgloss.Color("#00ff00") {
		t.Errorf("replaced fragment foreground = %v", got.GetForeground())
	}
}

func TestSetStyleUnknownSlotIsLoggedNoop(t *testing.T) {
	reg, buf := newTestRegistry(t)

	gen := reg.generation
	reg.SetStyle(Slot("bogus"), lipgloss.NewStyle().Bold(true))

	if _, ok := reg.Style(Slot("bogus")); ok {
		t.Error("unknown slot must not be stored")
	}
	if reg.generation != gen {
		t.Error("unknown slot must not bump the generation")
	}
	if !strings.Contains(buf.String(), "unknown slot") {
		t.Errorf("expected a diagnostic, got %q", buf.String())
	}
}

func TestSetBackGlyphAcceptedTypes(t *testing.T) {
	reg, buf := newTestRegistry(t)

	reg.SetBackGlyph(GlyphArrow)
	if reg.BackGlyph() != "←" {
		t.Errorf("glyph = %q, want arrow", reg.BackGlyph())
	}

	reg.SetBackGlyph("<-")
	if reg.BackGlyph() != "<-" {
		t.Errorf("glyph = %q, want <-", reg.BackGlyph())
	}

	reg.SetBackGlyph(42)
	if reg.BackGlyph() != "<-" {
		t.Error("invalid type must not replace the glyph")
	}
	if !strings.Contains(buf.String(), "unsupported type") {
		t.Errorf("expected a diagnostic, got %q", buf.String())
	}
}

func TestSetBackActionReplaceAndClear(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if reg.BackAction() != nil {
		t.Fatal("back action must start absent")
	}

	calls := 0
	reg.SetBackAction(func() { calls++ })
	reg.BackAction()()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	reg.SetBackAction(nil)
	if reg.BackAction() != nil {
		t.Error("nil must clear the back action")
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, _ := newTestRegistry(t)
	b, _ := newTestRegistry(t)

	a.SetStyle(SlotTitle, lipgloss.NewStyle().Bold(true))
	a.SetBackGlyph("x")

	if _, ok := b.Style(SlotTitle); ok {
		t.Error("style leaked between registries")
	}
	if b.BackGlyph() != string(defaultBackGlyph) {
		t.Error("glyph leaked between registries")
	}
}

func TestPackageSettersUseDefaultRegistry(t *testing.T) {
	old := defaultRegistry
	defaultRegistry = NewRegistry()
	t.Cleanup(func() { defaultRegistry = old })

	SetBackGlyph("»")
	if DefaultRegistry().BackGlyph() != "»" {
		t.Error("package setter did not reach the default registry")
	}

	called := false
	SetBackAction(func() { called = true })
	DefaultRegistry().BackAction()()
	if !called {
		t.Error("package back action not stored")
	}

	SetStyle(SlotSeparator, lipgloss.NewStyle().Faint(true))
	if _, ok := DefaultRegistry().Style(SlotSeparator); !ok {
		t.Error("package style not stored")
	}
}
