package navbar

// titleEdgePadding is the constant gap kept between the centered title and
// the wider button zone.
const titleEdgePadding = 15

// Side identifies a button zone.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// layoutState holds the last measured cell width of each button zone. The
// two fields are written independently, one per zone per render pass, and
// read together only when the title inset is computed. Before the first
// measurement both are zero, so the inset starts at titleEdgePadding and
// self-corrects on the next pass.
type layoutState struct {
	leftWidth  int
	rightWidth int
}

func (ls *layoutState) setZoneWidth(side Side, w int) {
	if side == SideLeft {
		ls.leftWidth = w
		return
	}
	ls.rightWidth = w
}

// edge returns the symmetric horizontal inset of the centered-title
// container: max zone width plus the constant padding. Recomputed on every
// pass, never cached across configuration changes.
func (ls *layoutState) edge() int {
	m := ls.leftWidth
	if ls.rightWidth > m {
		m = ls.rightWidth
	}
	return m + titleEdgePadding
}
