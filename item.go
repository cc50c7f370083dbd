package navbar

// BackID is the legacy string marker for the built-in back button. Text
// recognizes it, so the marker can appear anywhere in a content sequence
// built from plain labels.
const BackID = "__gobackbutton__"

type itemKind int

const (
	itemBack itemKind = iota
	itemText
	itemCustom
)

// Item is a single entry in a button zone: the built-in back button, a text
// label, or a pre-rendered element placed verbatim.
type Item struct {
	kind  itemKind
	label string
	view  string
}

// Back is the built-in back button item.
var Back = Item{kind: itemBack}

// Text returns a labeled button item. The BackID marker maps to Back.
func Text(label string) Item {
	if label == BackID {
		return Back
	}
	return Item{kind: itemText, label: label}
}

// Custom returns an item rendered exactly as given, untouched by any style.
func Custom(view string) Item {
	return Item{kind: itemCustom, view: view}
}

// IsBack reports whether the item is the built-in back button.
func (it Item) IsBack() bool {
	return it.kind == itemBack
}
