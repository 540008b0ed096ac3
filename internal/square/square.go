package square

import (
	"image/color"

	"github.com/iburimskiy/squarefx/internal/config"
)

// Square is the rounded rectangle the controls act on. Its base size never
// changes; only the fill and the two scale factors do.
type Square struct {
	Size   float64
	Arc    float64
	Fill   color.RGBA
	ScaleX float64
	ScaleY float64
}

func New() *Square {
	return &Square{
		Size:   config.SquareSize,
		Arc:    config.SquareArc,
		Fill:   Red.Fill(),
		ScaleX: 1,
		ScaleY: 1,
	}
}

// Extent returns the rendered width and height.
func (s *Square) Extent() (w, h float64) {
	return s.Size * s.ScaleX, s.Size * s.ScaleY
}

// Controller keeps a Square in sync with a ColorGroup and a Scale.
type Controller struct {
	Square *Square
	Colors *ColorGroup
	Scale  *Scale
}

// Bind wires the group and the scale to sq and applies the current state.
func Bind(sq *Square, colors *ColorGroup, scale *Scale) *Controller {
	c := &Controller{Square: sq, Colors: colors, Scale: scale}
	colors.OnChange(func(ColorChoice) { c.applyColor() })
	c.applyColor()
	scale.Subscribe(func(v float64) {
		f := Factor(v)
		sq.ScaleX = f
		sq.ScaleY = f
	})
	return c
}

func (c *Controller) applyColor() {
	c.Square.Fill = c.Colors.Selected().Fill()
}
