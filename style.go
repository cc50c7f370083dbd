package navbar

import (
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Slot names a stylable region of the bar.
type Slot string

// The fixed set of recognized style slots.
const (
	SlotBar       Slot = "bar"
	SlotTitle     Slot = "title"
	SlotTitleZone Slot = "titleZone"
	SlotLeftZone  Slot = "leftZone"
	SlotRightZone Slot = "rightZone"
	SlotText      Slot = "buttonText"
	SlotBackGlyph Slot = "backGlyph"
	SlotSeparator Slot = "separator"
)

// Slots returns every recognized slot in display order.
func Slots() []Slot {
	return []Slot{
		SlotBar, SlotTitle, SlotTitleZone,
		SlotLeftZone, SlotRightZone,
		SlotText, SlotBackGlyph, SlotSeparator,
	}
}

func validSlot(slot Slot) bool {
	switch slot {
	case SlotBar, SlotTitle, SlotTitleZone, SlotLeftZone, SlotRightZone,
		SlotText, SlotBackGlyph, SlotSeparator:
		return true
	}
	return false
}

// Base palette - muted greys so the bar reads as chrome, not content.
const (
	colorTitle     lipgloss.Color = "255"
	colorButton    lipgloss.Color = "252"
	colorGlyph     lipgloss.Color = "250"
	colorSeparator lipgloss.Color = "240"
)

// defaultStyle returns the built-in fragment for a slot, the lowest layer of
// the resolution chain.
func defaultStyle(slot Slot) lipgloss.Style {
	switch slot {
	case SlotTitle:
		return lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	case SlotText:
		return lipgloss.NewStyle().Foreground(colorButton)
	case SlotBackGlyph:
		return lipgloss.NewStyle().Foreground(colorGlyph).Bold(true)
	case SlotSeparator:
		return lipgloss.NewStyle().Foreground(colorSeparator)
	default:
		return lipgloss.NewStyle()
	}
}

type styleCacheKey struct {
	slot   Slot
	regGen uint64
}

// styleResolver merges the four override layers for one bar instance.
// Resolved no-call-site chains are cached; the registry generation in the
// cache key invalidates entries whenever a global override changes.
type styleResolver struct {
	reg       *Registry
	overrides map[Slot]lipgloss.Style
	cache     *lru.Cache[styleCacheKey, lipgloss.Style]
}

func newStyleResolver(reg *Registry, overrides map[Slot]lipgloss.Style) *styleResolver {
	cache, _ := lru.New[styleCacheKey, lipgloss.Style](32)
	return &styleResolver{reg: reg, overrides: overrides, cache: cache}
}

// chain returns the style fragments for slot ordered lowest to highest
// precedence: built-in default, global override, instance override, then any
// call-site fragments. Later fragments win on conflicting properties.
func (sr *styleResolver) chain(slot Slot, callSite ...lipgloss.Style) []lipgloss.Style {
	frags := make([]lipgloss.Style, 0, 3+len(callSite))
	frags = append(frags, defaultStyle(slot))
	if g, ok := sr.reg.Style(slot); ok {
		frags = append(frags, g)
	}
	if inst, ok := sr.overrides[slot]; ok {
		frags = append(frags, inst)
	}
	frags = append(frags, callSite...)
	return frags
}

// mergeStyles flattens a fragment list with last-wins semantics.
func mergeStyles(frags []lipgloss.Style) lipgloss.Style {
	merged := frags[0]
	for _, f := range frags[1:] {
		merged = f.Inherit(merged)
	}
	return merged
}

// resolve returns the flattened style for slot. Call-site fragments bypass
// the cache since they vary per invocation.
func (sr *styleResolver) resolve(slot Slot, callSite ...lipgloss.Style) lipgloss.Style {
	if len(callSite) > 0 {
		return mergeStyles(sr.chain(slot, callSite...))
	}
	key := styleCacheKey{slot: slot, regGen: sr.reg.generation}
	if s, ok := sr.cache.Get(key); ok {
		return s
	}
	s := mergeStyles(sr.chain(slot))
	sr.cache.Add(key, s)
	return s
}
