package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerDrag
	PointerRelease
)

// PointerEvent travels down the scene tree until a node consumes it.
type PointerEvent struct {
	Kind   PointerKind
	Button ebiten.MouseButton
	X, Y   float64

	target Node
}

// Consume stops propagation and records n as the node that took the event.
func (e *PointerEvent) Consume(n Node) { e.target = n }

func (e *PointerEvent) Consumed() bool { return e.target != nil }

// Node is an element of the scene tree.
type Node interface {
	// Measure reports the preferred size.
	Measure() (w, h float64)
	Arrange(r Rect)
	Bounds() Rect
	HandlePointer(e *PointerEvent)
	Draw(dst *ebiten.Image)
}

type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

type Align int

const (
	AlignCenter Align = iota
	AlignStart
)

// Box lays its children out along one axis. Pointer events are offered to
// children topmost first; the first child that consumes one ends the walk.
type Box struct {
	Axis     Axis
	Align    Align
	Spacing  float64
	Padding  float64
	Children []Node

	bounds Rect
}

func NewColumn(spacing float64, children ...Node) *Box {
	return &Box{Axis: Vertical, Spacing: spacing, Children: children}
}

func NewRow(spacing float64, children ...Node) *Box {
	return &Box{Axis: Horizontal, Spacing: spacing, Children: children}
}

func (b *Box) Measure() (float64, float64) {
	var main, cross float64
	for i, c := range b.Children {
		w, h := c.Measure()
		if b.Axis == Horizontal {
			w, h = h, w
		}
		// w is now the cross extent, h the main extent
		main += h
		if i > 0 {
			main += b.Spacing
		}
		cross = max(cross, w)
	}
	if b.Axis == Horizontal {
		return main + 2*b.Padding, cross + 2*b.Padding
	}
	return cross + 2*b.Padding, main + 2*b.Padding
}

func (b *Box) Arrange(r Rect) {
	b.bounds = r
	inner := Rect{X: r.X + b.Padding, Y: r.Y + b.Padding, W: r.W - 2*b.Padding, H: r.H - 2*b.Padding}

	if b.Axis == Vertical {
		y := inner.Y
		for _, c := range b.Children {
			w, h := c.Measure()
			x := inner.X
			if b.Align == AlignCenter {
				x += (inner.W - w) / 2
			}
			c.Arrange(Rect{X: x, Y: y, W: w, H: h})
			y += h + b.Spacing
		}
		return
	}

	total, _ := b.Measure()
	x := inner.X + (inner.W-(total-2*b.Padding))/2
	if b.Align == AlignStart {
		x = inner.X
	}
	for _, c := range b.Children {
		w, h := c.Measure()
		c.Arrange(Rect{X: x, Y: inner.Y + (inner.H-h)/2, W: w, H: h})
		x += w + b.Spacing
	}
}

func (b *Box) Bounds() Rect { return b.bounds }

func (b *Box) HandlePointer(e *PointerEvent) {
	for i := len(b.Children) - 1; i >= 0; i-- {
		c := b.Children[i]
		if !c.Bounds().Contains(e.X, e.Y) {
			continue
		}
		c.HandlePointer(e)
		if e.Consumed() {
			return
		}
	}
}

func (b *Box) Draw(dst *ebiten.Image) {
	for _, c := range b.Children {
		c.Draw(dst)
	}
}

// Scene owns the root node and turns raw pointer input into press, drag and
// release events, tracked separately per mouse button. A node that consumes a
// press captures that button until release. Otherwise the release is offered
// to the tree like a press; if nothing consumes it either, it is a click on
// the root and goes to OnClick.
type Scene struct {
	Root    Node
	OnClick func(x, y float64)

	buttons map[ebiten.MouseButton]*buttonState
}

type buttonState struct {
	pressed  bool
	captured Node
}

func (s *Scene) Arrange(w, h float64) {
	s.Root.Arrange(Rect{W: w, H: h})
}

func (s *Scene) state(b ebiten.MouseButton) *buttonState {
	if s.buttons == nil {
		s.buttons = make(map[ebiten.MouseButton]*buttonState)
	}
	st, ok := s.buttons[b]
	if !ok {
		st = &buttonState{}
		s.buttons[b] = st
	}
	return st
}

func (s *Scene) Press(b ebiten.MouseButton, x, y float64) {
	e := &PointerEvent{Kind: PointerPress, Button: b, X: x, Y: y}
	s.Root.HandlePointer(e)
	st := s.state(b)
	st.captured = e.target
	st.pressed = true
}

func (s *Scene) Drag(b ebiten.MouseButton, x, y float64) {
	st := s.state(b)
	if st.captured == nil {
		return
	}
	st.captured.HandlePointer(&PointerEvent{Kind: PointerDrag, Button: b, X: x, Y: y})
}

func (s *Scene) Release(b ebiten.MouseButton, x, y float64) {
	st := s.state(b)
	if !st.pressed {
		return
	}
	st.pressed = false
	e := &PointerEvent{Kind: PointerRelease, Button: b, X: x, Y: y}
	if c := st.captured; c != nil {
		st.captured = nil
		c.HandlePointer(e)
		return
	}
	s.Root.HandlePointer(e)
	if e.Consumed() {
		return
	}
	if s.OnClick != nil && s.Root.Bounds().Contains(x, y) {
		s.OnClick(x, y)
	}
}
