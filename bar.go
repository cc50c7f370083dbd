package navbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// config is the immutable per-bar configuration assembled from Options.
type config struct {
	translucent     bool
	title           string
	titleView       string
	titleViewSet    bool
	inlineTitle     bool
	separator       bool
	left            []Item
	right           []Item
	onLeft          TapHandler
	onRight         TapHandler
	dismissKeyboard bool
	navigator       Navigator
	lock            bool
	styles          map[Slot]lipgloss.Style
	registry        *Registry
}

// Option configures a Bar at construction time.
type Option func(*config)

// WithTitle sets a plain-text title, truncated to a single line when it
// outgrows the title container.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithTitleView sets a pre-built title element, rendered verbatim.
func WithTitleView(view string) Option {
	return func(c *config) {
		c.titleView = view
		c.titleViewSet = true
	}
}

// WithInlineTitle squeezes the title between the zones instead of centering
// it in a full-width overlay container.
func WithInlineTitle() Option {
	return func(c *config) { c.inlineTitle = true }
}

// WithoutSeparator drops the bottom separator line.
func WithoutSeparator() Option {
	return func(c *config) { c.separator = false }
}

// Translucent floats the bar content below the host status line without
// painting the bar background behind it.
func Translucent() Option {
	return func(c *config) { c.translucent = true }
}

// WithLeft replaces the left zone content. The default is the back button;
// calling WithLeft with no items clears the zone.
func WithLeft(items ...Item) Option {
	return func(c *config) {
		c.left = append([]Item(nil), items...)
	}
}

// WithRight sets the right zone content, empty by default.
func WithRight(items ...Item) Option {
	return func(c *config) {
		c.right = append([]Item(nil), items...)
	}
}

// OnLeft sets the tap handler for the left zone.
func OnLeft(fn TapHandler) Option {
	return func(c *config) { c.onLeft = fn }
}

// OnRight sets the tap handler for the right zone.
func OnRight(fn TapHandler) Option {
	return func(c *config) { c.onRight = fn }
}

// WithNavigator supplies a host navigation handle for the back action.
func WithNavigator(nav Navigator) Option {
	return func(c *config) { c.navigator = nav }
}

// WithoutLock disables the per-button reentrancy guard; every tap invokes
// its handler.
func WithoutLock() Option {
	return func(c *config) { c.lock = false }
}

// KeepKeyboard disables the automatic keyboard-dismiss request on tap.
func KeepKeyboard() Option {
	return func(c *config) { c.dismissKeyboard = false }
}

// WithStyle sets a per-instance style override for slot, ranking above the
// registry's global override for the same slot.
func WithStyle(slot Slot, fragment lipgloss.Style) Option {
	return func(c *config) {
		if c.styles == nil {
			c.styles = make(map[Slot]lipgloss.Style)
		}
		c.styles[slot] = fragment
	}
}

// WithRegistry binds the bar to a specific registry instead of the shared
// default.
func WithRegistry(reg *Registry) Option {
	return func(c *config) { c.registry = reg }
}

// hitRect is the horizontal extent of one rendered button on the content
// row, half-open [x0, x1).
type hitRect struct {
	side   Side
	index  int
	x0, x1 int
}

// Bar is the navigation-bar widget. It implements tea.Model for event
// handling and the dock Renderer contract for placement by a layout engine.
// A Bar owns its layout state and lock table; the registry is shared.
type Bar struct {
	cfg    config
	reg    *Registry
	styles *styleResolver
	layout layoutState
	locks  map[lockKey]bool
	width  int
	hits   []hitRect
}

// New builds a bar. Defaults: centered title, separator shown, left zone
// holding the back button, right zone empty, tap lock on, keyboard
// auto-dismiss on, shared default registry.
func New(opts ...Option) *Bar {
	cfg := config{
		separator:       true,
		dismissKeyboard: true,
		lock:            true,
		left:            []Item{Back},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	reg := cfg.registry
	if reg == nil {
		reg = defaultRegistry
	}
	return &Bar{
		cfg:    cfg,
		reg:    reg,
		styles: newStyleResolver(reg, cfg.styles),
		locks:  make(map[lockKey]bool),
	}
}

// Init implements tea.Model.
func (b *Bar) Init() tea.Cmd { return nil }

// Update implements tea.Model. Left-button presses on the content row are
// hit-tested against the buttons rendered on the previous View pass.
func (b *Bar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if side, index, ok := b.hitTest(msg.X, msg.Y); ok {
				return b, b.tap(side, index)
			}
		}
	}
	return b, nil
}

// SetWidth implements the dock Renderer contract.
func (b *Bar) SetWidth(w int) {
	b.width = w
}

// Height implements the dock Renderer contract: status padding plus the
// content row plus the optional separator row.
func (b *Bar) Height() int {
	h := StatusBarHeight() + 1
	if b.cfg.separator {
		h++
	}
	return h
}

// View renders the bar. Zone widths are measured before the title container
// is sized, so the centered title never overlaps a button zone regardless of
// which side is wider.
func (b *Bar) View() string {
	width := b.width
	if width <= 0 {
		return ""
	}

	b.hits = b.hits[:0]
	left, leftWidths := b.renderZone(SideLeft)
	right, rightWidths := b.renderZone(SideRight)
	lw := ansi.StringWidth(left)
	rw := ansi.StringWidth(right)
	b.layout.setZoneWidth(SideLeft, lw)
	b.layout.setZoneWidth(SideRight, rw)
	b.recordHits(SideLeft, 0, leftWidths)
	b.recordHits(SideRight, width-rw, rightWidths)

	barStyle := b.styles.resolve(SlotBar)
	blank := strings.Repeat(" ", width)

	var rows []string
	for i := 0; i < StatusBarHeight(); i++ {
		if b.cfg.translucent {
			// Content floats below the host status line; nothing painted.
			rows = append(rows, "")
		} else {
			rows = append(rows, barStyle.Render(blank))
		}
	}

	rows = append(rows, b.renderContent(left, right, lw, rw, width))

	if b.cfg.separator {
		sep := b.styles.resolve(SlotSeparator).Render(strings.Repeat("─", width))
		rows = append(rows, sep)
	}
	return strings.Join(rows, "\n")
}

// renderContent lays out the content row. Inline mode squeezes the title
// between the zones; centered mode composites it over the full-width row,
// inset symmetrically by the balanced edge.
func (b *Bar) renderContent(left, right string, lw, rw, width int) string {
	if b.cfg.inlineTitle {
		avail := width - lw - rw - 2
		title := b.renderTitle(avail)
		tw := ansi.StringWidth(title)

		leftPad := (width-tw)/2 - lw
		if leftPad < 1 {
			leftPad = 1
		}
		rightPad := width - lw - leftPad - tw - rw
		if rightPad < 1 {
			rightPad = 1
		}
		return left + strings.Repeat(" ", leftPad) + title + strings.Repeat(" ", rightPad) + right
	}

	pad := width - lw - rw
	if pad < 1 {
		pad = 1
	}
	row := left + strings.Repeat(" ", pad) + right

	edge := b.layout.edge()
	avail := width - 2*edge
	if avail <= 0 {
		return padRight(row, width)
	}
	title := b.renderTitle(avail)
	tw := ansi.StringWidth(title)
	x := edge + (avail-tw)/2
	return overlayRow(row, title, x, width)
}

// renderTitle renders the title clamped to maxWidth cells. A pre-built title
// view is returned untouched; plain text is reduced to its first line and
// truncated with an ellipsis.
func (b *Bar) renderTitle(maxWidth int) string {
	if b.cfg.titleViewSet {
		return b.cfg.titleView
	}
	t := b.cfg.title
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		t = t[:i]
	}
	if maxWidth > 0 && runewidth.StringWidth(t) > maxWidth {
		t = runewidth.Truncate(t, maxWidth, "…")
	}
	zone := b.styles.resolve(SlotTitleZone)
	return b.styles.resolve(SlotTitle, zone).Render(t)
}

// renderZone renders one button zone and returns the joined string plus the
// cell width of each button, in order. Buttons are joined by single spaces.
func (b *Bar) renderZone(side Side) (string, []int) {
	items := b.zoneItems(side)
	if len(items) == 0 {
		return "", nil
	}

	zoneSlot := SlotLeftZone
	if side == SideRight {
		zoneSlot = SlotRightZone
	}
	zone := b.styles.resolve(zoneSlot)

	parts := make([]string, 0, len(items))
	widths := make([]int, 0, len(items))
	for _, it := range items {
		var piece string
		switch it.kind {
		case itemBack:
			piece = b.styles.resolve(SlotBackGlyph, zone).Render(b.reg.BackGlyph())
		case itemText:
			piece = b.styles.resolve(SlotText, zone).Render(it.label)
		default:
			piece = it.view // custom element, untouched
		}
		parts = append(parts, piece)
		widths = append(widths, ansi.StringWidth(piece))
	}
	return strings.Join(parts, " "), widths
}

// recordHits registers the hit rectangle of each button in a zone, given the
// zone's starting column and per-button widths.
func (b *Bar) recordHits(side Side, x0 int, widths []int) {
	x := x0
	for i, w := range widths {
		b.hits = append(b.hits, hitRect{side: side, index: i, x0: x, x1: x + w})
		x += w + 1 // joining space
	}
}

// hitTest maps a terminal coordinate to a button. The bar is assumed to be
// docked at the top of the program view, so the content row sits below the
// status padding.
func (b *Bar) hitTest(x, y int) (Side, int, bool) {
	if y != StatusBarHeight() {
		return 0, 0, false
	}
	for _, h := range b.hits {
		if x >= h.x0 && x < h.x1 {
			return h.side, h.index, true
		}
	}
	return 0, 0, false
}
