package navbar

import (
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Glyph is a reference to one of the bundled back-button glyphs.
type Glyph string

// Bundled back glyphs.
const (
	GlyphChevron Glyph = "‹"
	GlyphArrow   Glyph = "←"
	GlyphCaret   Glyph = "<"
)

const defaultBackGlyph = GlyphChevron

// Registry holds process-wide bar customizations: per-slot style overrides,
// the back glyph, and the global back action. Every bar reads its registry at
// render and dispatch time, so a change is visible to all mounted and future
// bars without re-propagation.
//
// The package-level setters operate on a shared default registry. Tests and
// embedders that need isolation construct their own with NewRegistry and pass
// it to bars via WithRegistry.
type Registry struct {
	logger     *log.Logger
	styles     map[Slot]lipgloss.Style
	backAction func()
	backGlyph  string
	generation uint64
}

// NewRegistry returns an empty registry with the bundled back glyph.
func NewRegistry() *Registry {
	return &Registry{
		logger:    log.New(os.Stderr, "navbar: ", log.LstdFlags),
		styles:    make(map[Slot]lipgloss.Style),
		backGlyph: string(defaultBackGlyph),
	}
}

// SetLogger redirects the registry's diagnostics, stderr by default.
func (r *Registry) SetLogger(l *log.Logger) {
	if l != nil {
		r.logger = l
	}
}

// SetStyle stores a global style fragment for slot, replacing any prior
// value. An unrecognized slot is logged and ignored; misconfiguration must
// not take down a running UI.
func (r *Registry) SetStyle(slot Slot, fragment lipgloss.Style) {
	if !validSlot(slot) {
		r.logger.Printf("SetStyle: unknown slot %q", slot)
		return
	}
	r.styles[slot] = fragment
	r.generation++
}

// Style returns the global fragment for slot, if one has been set.
func (r *Registry) Style(slot Slot) (lipgloss.Style, bool) {
	s, ok := r.styles[slot]
	return s, ok
}

// SetBackAction replaces the global back handler. Nil clears it.
func (r *Registry) SetBackAction(fn func()) {
	r.backAction = fn
}

// BackAction returns the global back handler, or nil.
func (r *Registry) BackAction() func() {
	return r.backAction
}

// SetBackGlyph replaces the back-button glyph for every bar. It accepts a
// bundled Glyph reference or a raw string; any other type is logged and
// ignored.
func (r *Registry) SetBackGlyph(v any) {
	switch g := v.(type) {
	case Glyph:
		r.backGlyph = string(g)
	case string:
		r.backGlyph = g
	default:
		r.logger.Printf("SetBackGlyph: unsupported type %T", v)
		return
	}
	r.generation++
}

// BackGlyph returns the current back-button glyph.
func (r *Registry) BackGlyph() string {
	return r.backGlyph
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared registry used by bars constructed
// without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SetStyle stores a global style fragment in the default registry.
func SetStyle(slot Slot, fragment lipgloss.Style) {
	defaultRegistry.SetStyle(slot, fragment)
}

// SetBackAction replaces the global back handler in the default registry.
func SetBackAction(fn func()) {
	defaultRegistry.SetBackAction(fn)
}

// SetBackGlyph replaces the back glyph in the default registry.
func SetBackGlyph(v any) {
	defaultRegistry.SetBackGlyph(v)
}
