package game

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/squarefx/internal/config"
	"github.com/iburimskiy/squarefx/internal/square"
)

var (
	onyx      = square.MustHex(config.Onyx)
	trackGrey = color.RGBA{R: 0xB8, G: 0xB4, B: 0xA8, A: 0xFF}
	thumbFill = color.RGBA{R: 0xF4, G: 0xF4, B: 0xF4, A: 0xFF}
	hoverRing = color.RGBA{R: 0x9C, G: 0x98, B: 0x8C, A: 0xFF}
)

// Label is centered multi-line text. It never consumes pointer events.
type Label struct {
	Text  string
	Color color.Color
	Face  text.Face

	bounds Rect
}

func (l *Label) Measure() (float64, float64) {
	return text.Measure(l.Text, l.Face, config.LineSpacing)
}

func (l *Label) Arrange(r Rect) { l.bounds = r }
func (l *Label) Bounds() Rect { return l.bounds }
func (l *Label) HandlePointer(*PointerEvent) {}

func (l *Label) Draw(dst *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.bounds.X+l.bounds.W/2, l.bounds.Y)
	op.ColorScale.ScaleWithColor(l.Color)
	op.LineSpacing = config.LineSpacing
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, l.Text, l.Face, op)
}

// RadioButton selects its choice in the group when clicked.
type RadioButton struct {
	Choice square.ColorChoice
	Group  *square.ColorGroup
	Face   text.Face

	armed  bool
	bounds Rect
}

const radioGap = 8

func (b *RadioButton) Measure() (float64, float64) {
	tw, th := text.Measure(b.Choice.String(), b.Face, config.LineSpacing)
	return 2*config.RadioDotRadius + radioGap + tw, max(th, 2*config.RadioDotRadius)
}

func (b *RadioButton) Arrange(r Rect) { b.bounds = r }
func (b *RadioButton) Bounds() Rect { return b.bounds }

// HandlePointer consumes every button but only the left one selects.
func (b *RadioButton) HandlePointer(e *PointerEvent) {
	e.Consume(b)
	if e.Button != ebiten.MouseButtonLeft {
		return
	}
	switch e.Kind {
	case PointerPress:
		b.armed = true
	case PointerRelease:
		if b.armed && b.bounds.Contains(e.X, e.Y) {
			b.Group.Select(b.Choice)
		}
		b.armed = false
	}
}

func (b *RadioButton) Draw(dst *ebiten.Image) {
	cx := float32(b.bounds.X + config.RadioDotRadius)
	cy := float32(b.bounds.Y + b.bounds.H/2)
	r := float32(config.RadioDotRadius)

	ring := color.Color(trackGrey)
	if b.hovered() {
		ring = hoverRing
	}
	vector.DrawFilledCircle(dst, cx, cy, r, thumbFill, true)
	vector.StrokeCircle(dst, cx, cy, r, 1.5, ring, true)
	if b.Group.IsSelected(b.Choice) {
		vector.DrawFilledCircle(dst, cx, cy, r/2, onyx, true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(b.bounds.X+2*config.RadioDotRadius+radioGap, b.bounds.Y)
	op.ColorScale.ScaleWithColor(onyx)
	op.LineSpacing = config.LineSpacing
	text.Draw(dst, b.Choice.String(), b.Face, op)
}

func (b *RadioButton) hovered() bool {
	x, y := ebiten.CursorPosition()
	return b.bounds.Contains(float64(x), float64(y))
}

// NewRadioGroup builds one RadioButton per color, stacked and left aligned.
func NewRadioGroup(group *square.ColorGroup, face text.Face) (*Box, []*RadioButton) {
	col := NewColumn(config.RadioSpacing)
	col.Align = AlignStart
	buttons := make([]*RadioButton, 0, len(square.Choices))
	for _, c := range square.Choices {
		b := &RadioButton{Choice: c, Group: group, Face: face}
		buttons = append(buttons, b)
		col.Children = append(col.Children, b)
	}
	return col, buttons
}

// Slider edits a square.Scale. The value is continuous; ticks are drawn every
// config.MajorTickUnit and carry no snapping.
type Slider struct {
	Scale    *square.Scale
	TickFace text.Face

	dragging bool
	bounds   Rect
}

const (
	trackY     = 12
	tickLength = 6
)

func (s *Slider) Measure() (float64, float64) {
	return config.SliderWidth, config.SliderHeight
}

func (s *Slider) Arrange(r Rect) { s.bounds = r }
func (s *Slider) Bounds() Rect { return s.bounds }

// track returns the horizontal extent the thumb center can travel.
func (s *Slider) track() (left, width float64) {
	return s.bounds.X + config.SliderThumbSize, s.bounds.W - 2*config.SliderThumbSize
}

func (s *Slider) valueAt(x float64) float64 {
	left, width := s.track()
	if width <= 0 {
		return config.ScaleMin
	}
	return config.ScaleMin + clamp01((x-left)/width)*(config.ScaleMax-config.ScaleMin)
}

func (s *Slider) thumbX() float64 {
	left, width := s.track()
	return left + (s.Scale.Value()-config.ScaleMin)/(config.ScaleMax-config.ScaleMin)*width
}

func (s *Slider) HandlePointer(e *PointerEvent) {
	e.Consume(s)
	if e.Button != ebiten.MouseButtonLeft {
		return
	}
	switch e.Kind {
	case PointerPress:
		s.dragging = true
		s.Scale.Set(s.valueAt(e.X))
	case PointerDrag:
		if s.dragging {
			s.Scale.Set(s.valueAt(e.X))
		}
	case PointerRelease:
		if s.dragging {
			s.Scale.Set(s.valueAt(e.X))
		}
		s.dragging = false
	}
}

func (s *Slider) Draw(dst *ebiten.Image) {
	left, width := s.track()
	y := s.bounds.Y + trackY
	vector.StrokeLine(dst, float32(left), float32(y), float32(left+width), float32(y), 4, trackGrey, true)

	for v := config.ScaleMin; v <= config.ScaleMax; v += config.MajorTickUnit {
		tx := left + float64(v-config.ScaleMin)/(config.ScaleMax-config.ScaleMin)*width
		ty := y + config.SliderThumbSize + 2
		vector.StrokeLine(dst, float32(tx), float32(ty), float32(tx), float32(ty+tickLength), 1, onyx, true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(tx, ty+tickLength+2)
		op.ColorScale.ScaleWithColor(onyx)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(dst, strconv.Itoa(v), s.TickFace, op)
	}

	ring := color.Color(trackGrey)
	cx, cy := ebiten.CursorPosition()
	if s.dragging || s.bounds.Contains(float64(cx), float64(cy)) {
		ring = hoverRing
	}
	tx := float32(s.thumbX())
	vector.DrawFilledCircle(dst, tx, float32(y), config.SliderThumbSize, thumbFill, true)
	vector.StrokeCircle(dst, tx, float32(y), config.SliderThumbSize, 1.5, ring, true)
}

// SquareView draws the square scaled about the center of its fixed layout
// box. It does not consume pointer events.
type SquareView struct {
	Square *square.Square

	bounds Rect
}

func (v *SquareView) Measure() (float64, float64) {
	return v.Square.Size, v.Square.Size
}

func (v *SquareView) Arrange(r Rect) { v.bounds = r }
func (v *SquareView) Bounds() Rect { return v.bounds }
func (v *SquareView) HandlePointer(*PointerEvent) {}

func (v *SquareView) Draw(dst *ebiten.Image) {
	w, h := v.Square.Extent()
	if w <= 0 || h <= 0 {
		return
	}
	cx, cy := v.bounds.Center()
	radius := v.Square.Arc / 2 * min(v.Square.ScaleX, v.Square.ScaleY)
	drawRoundedRect(dst, cx-w/2, cy-h/2, w, h, radius, v.Square.Fill)
}
