package square

// ColorGroup is a single-choice group: exactly one ColorChoice is selected at
// all times.
type ColorGroup struct {
	selected  ColorChoice
	listeners []func(ColorChoice)
}

// NewColorGroup starts with initial selected, or Red if initial is invalid.
func NewColorGroup(initial ColorChoice) *ColorGroup {
	if !initial.Valid() {
		initial = Red
	}
	return &ColorGroup{selected: initial}
}

// Selected returns the active choice.
func (g *ColorGroup) Selected() ColorChoice { return g.selected }

// IsSelected reports whether c is the active choice.
func (g *ColorGroup) IsSelected(c ColorChoice) bool { return g.selected == c }

// Select makes c the active choice and notifies listeners. Listeners run on
// every selection event, including re-selecting the active choice. Invalid
// choices are ignored.
func (g *ColorGroup) Select(c ColorChoice) {
	if !c.Valid() {
		return
	}
	g.selected = c
	for _, fn := range g.listeners {
		fn(c)
	}
}

// OnChange registers fn for selection events.
func (g *ColorGroup) OnChange(fn func(ColorChoice)) {
	g.listeners = append(g.listeners, fn)
}
