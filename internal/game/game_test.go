package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/squarefx/internal/sound"
	"github.com/iburimskiy/squarefx/internal/square"
)

const leftButton = ebiten.MouseButtonLeft

type countingCue struct{ plays int }

func (c *countingCue) Play() { c.plays++ }

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T, cue *countingCue) *Game {
	t.Helper()
	scale, err := square.NewScale(75)
	require.NoError(t, err)
	ctrl := square.Bind(square.New(), square.NewColorGroup(square.Red), scale)

	var player sound.Player
	if cue != nil {
		player = cue
	}
	g, err := NewGame(ctrl, player, discardLog())
	require.NoError(t, err)
	w, h := g.Layout(800, 700)
	require.Equal(t, 800, w)
	require.Equal(t, 700, h)
	return g
}

func click(g *Game, x, y float64) {
	clickWith(g, leftButton, x, y)
}

func clickWith(g *Game, b ebiten.MouseButton, x, y float64) {
	g.scene.Press(b, x, y)
	g.scene.Release(b, x, y)
}

func TestLayoutPlacesControls(t *testing.T) {
	g := newTestGame(t, nil)

	require.Len(t, g.radios, 3)
	for i := 1; i < len(g.radios); i++ {
		assert.Greater(t, g.radios[i].Bounds().Y, g.radios[i-1].Bounds().Y)
		assert.Equal(t, g.radios[0].Bounds().X, g.radios[i].Bounds().X)
	}

	view := g.view.Bounds()
	assert.Equal(t, 180.0, view.W)
	assert.Equal(t, 180.0, view.H)
	assert.Greater(t, view.X, g.radios[0].Bounds().X+g.radios[0].Bounds().W)

	slider := g.slider.Bounds()
	assert.Equal(t, 500.0, slider.W)
	assert.InDelta(t, 400, slider.X+slider.W/2, 1e-9, "slider is centered")
	assert.Greater(t, slider.Y, view.Y+view.H)
}

func TestLayoutRecentersOnResize(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.slider.Bounds()

	g.Layout(1000, 700)
	after := g.slider.Bounds()
	assert.InDelta(t, 100, after.X-before.X, 1e-9)
	assert.Equal(t, before.Y, after.Y)
}

func TestRadioClickSelectsColor(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)

	x, y := g.radios[1].Bounds().Center()
	click(g, x, y)

	assert.Equal(t, square.Green, g.ctrl.Colors.Selected())
	assert.Equal(t, square.Green.Fill(), g.ctrl.Square.Fill)
	assert.Equal(t, 0.75, g.ctrl.Square.ScaleX)
	assert.Zero(t, cue.plays, "radio clicks are consumed")
}

func TestRadioReleaseOutsideDoesNotSelect(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)

	x, y := g.radios[2].Bounds().Center()
	g.scene.Press(leftButton, x, y)
	g.scene.Release(leftButton, 5, 5)

	assert.Equal(t, square.Red, g.ctrl.Colors.Selected())
	assert.Zero(t, cue.plays)
}

func TestSliderDragScalesSquare(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)
	left, width := g.slider.track()
	_, y := g.slider.Bounds().Center()

	g.scene.Press(leftButton, left+0.4*width, y)
	assert.InDelta(t, 40, g.ctrl.Scale.Value(), 1e-9)
	assert.InDelta(t, 0.40, g.ctrl.Square.ScaleX, 1e-9)
	assert.Equal(t, g.ctrl.Square.ScaleX, g.ctrl.Square.ScaleY)

	// dragging past either end clamps, even outside the slider bounds
	g.scene.Drag(leftButton, left+width+300, y+200)
	assert.Equal(t, 100.0, g.ctrl.Scale.Value())
	assert.Equal(t, 1.0, g.ctrl.Square.ScaleX)

	g.scene.Drag(leftButton, left-300, y)
	assert.Equal(t, 0.0, g.ctrl.Scale.Value())
	assert.Equal(t, 0.0, g.ctrl.Square.ScaleY)

	g.scene.Release(leftButton, 5, 5)
	assert.Equal(t, 0.0, g.ctrl.Scale.Value())
	assert.Zero(t, cue.plays, "slider clicks are consumed")
	assert.Equal(t, square.Red.Fill(), g.ctrl.Square.Fill)
}

func TestDragWithoutCaptureIsIgnored(t *testing.T) {
	g := newTestGame(t, nil)
	left, width := g.slider.track()
	_, y := g.slider.Bounds().Center()

	g.scene.Press(leftButton, 5, 5)
	g.scene.Drag(leftButton, left+0.1*width, y)
	assert.Equal(t, 75.0, g.ctrl.Scale.Value())
}

func TestStrayClickPlaysCue(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)
	g.ctrl.Colors.Select(square.Orange)

	click(g, 5, 5)
	assert.Equal(t, 1, cue.plays)

	// the square and the text blocks do not consume clicks
	x, y := g.view.Bounds().Center()
	click(g, x, y)
	assert.Equal(t, 2, cue.plays)

	assert.Equal(t, square.Orange, g.ctrl.Colors.Selected())
	assert.Equal(t, 75.0, g.ctrl.Scale.Value())
}

func TestStrayClickWithoutCue(t *testing.T) {
	g := newTestGame(t, nil)
	assert.NotPanics(t, func() { click(g, 5, 5) })
	assert.Equal(t, square.Red, g.ctrl.Colors.Selected())
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)
	g.scene.Release(leftButton, 5, 5)
	assert.Zero(t, cue.plays)
}

func TestOtherButtonsOnBackgroundPlayCue(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)

	clickWith(g, ebiten.MouseButtonRight, 5, 5)
	assert.Equal(t, 1, cue.plays)
	clickWith(g, ebiten.MouseButtonMiddle, 5, 5)
	assert.Equal(t, 2, cue.plays)
}

func TestOtherButtonsOnControlsAreConsumed(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)

	x, y := g.radios[1].Bounds().Center()
	clickWith(g, ebiten.MouseButtonRight, x, y)
	assert.Equal(t, square.Red, g.ctrl.Colors.Selected(), "only the left button selects")

	left, width := g.slider.track()
	_, sy := g.slider.Bounds().Center()
	clickWith(g, ebiten.MouseButtonMiddle, left+0.1*width, sy)
	assert.Equal(t, 75.0, g.ctrl.Scale.Value(), "only the left button drags")

	assert.Zero(t, cue.plays)
}

func TestButtonsAreTrackedSeparately(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)
	left, width := g.slider.track()
	_, y := g.slider.Bounds().Center()

	g.scene.Press(leftButton, left+0.5*width, y)
	clickWith(g, ebiten.MouseButtonRight, 5, 5)
	assert.Equal(t, 1, cue.plays)

	g.scene.Drag(leftButton, left+0.2*width, y)
	assert.InDelta(t, 20, g.ctrl.Scale.Value(), 1e-9, "left drag survives the right click")
	g.scene.Release(leftButton, left+0.2*width, y)
	assert.Equal(t, 1, cue.plays)
}

func TestBackgroundPressReleasedOnControlIsNotStray(t *testing.T) {
	cue := &countingCue{}
	g := newTestGame(t, cue)

	x, y := g.radios[2].Bounds().Center()
	g.scene.Press(leftButton, 5, 5)
	g.scene.Release(leftButton, x, y)
	assert.Zero(t, cue.plays)
	assert.Equal(t, square.Red, g.ctrl.Colors.Selected())

	sx, sy := g.slider.Bounds().Center()
	g.scene.Press(leftButton, 5, 5)
	g.scene.Release(leftButton, sx, sy)
	assert.Zero(t, cue.plays)
	assert.Equal(t, 75.0, g.ctrl.Scale.Value())
}
