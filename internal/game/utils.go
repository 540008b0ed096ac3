package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomedium"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundedRect is a rectangle with quarter-circle corners, split into two
// overlapping bars and four corner discs of radius r.
type roundedRect struct {
	bars    [2]Rect
	corners [4][2]float64
	r       float64
}

func newRoundedRect(x, y, w, h, r float64) roundedRect {
	r = max(0, min(r, w/2, h/2))
	return roundedRect{
		bars: [2]Rect{
			{X: x + r, Y: y, W: w - 2*r, H: h},
			{X: x, Y: y + r, W: w, H: h - 2*r},
		},
		corners: [4][2]float64{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}},
		r:       r,
	}
}

// drawRoundedRect fills the shape with every part antialiased alike, so no
// seam shows where bars and discs meet.
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	const antialias = true
	rr := newRoundedRect(x, y, w, h, r)
	for _, b := range rr.bars {
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, antialias)
	}
	if rr.r == 0 {
		return
	}
	for _, c := range rr.corners {
		vector.DrawFilledCircle(dst, float32(c[0]), float32(c[1]), float32(rr.r), clr, antialias)
	}
}

type faces struct {
	body  text.Face
	small text.Face
}

// loadFaces builds the text faces from the bundled Go Medium font.
func loadFaces(bodySize, smallSize float64) (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomedium.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load font: %w", err)
	}
	return faces{
		body:  &text.GoTextFace{Source: src, Size: bodySize},
		small: &text.GoTextFace{Source: src, Size: smallSize},
	}, nil
}
