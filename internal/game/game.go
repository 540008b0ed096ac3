package game

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/squarefx/internal/config"
	"github.com/iburimskiy/squarefx/internal/sound"
	"github.com/iburimskiy/squarefx/internal/square"
)

const tickFontSize = 12

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game is the single window of the program. It owns the scene tree built
// once at startup and forwards mouse input to it.
type Game struct {
	ctrl  *square.Controller
	cue   sound.Player
	log   *slog.Logger
	scene *Scene

	radios []*RadioButton
	slider *Slider
	view   *SquareView

	background    color.RGBA
	width, height int
}

// NewGame builds the layout tree: instructions, the color options beside the
// square, the slider, and the warning. cue may be nil, in which case stray
// clicks are silent.
func NewGame(ctrl *square.Controller, cue sound.Player, log *slog.Logger) (*Game, error) {
	f, err := loadFaces(config.FontSize, tickFontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctrl:       ctrl,
		cue:        cue,
		log:        log,
		background: square.MustHex(config.Background),
	}

	instructions := &Label{Text: config.InstructionsText, Color: onyx, Face: f.body}
	warning := &Label{Text: config.WarningText, Color: square.Red.Fill(), Face: f.body}

	options, radios := NewRadioGroup(ctrl.Colors, f.body)
	g.radios = radios
	g.view = &SquareView{Square: ctrl.Square}
	g.slider = &Slider{Scale: ctrl.Scale, TickFace: f.small}

	root := NewColumn(config.RootSpacing,
		instructions,
		NewRow(config.RowSpacing, options, g.view),
		NewRow(0, g.slider),
		warning,
	)
	root.Padding = config.RootPadding

	g.scene = &Scene{Root: root, OnClick: g.onStrayClick}
	return g, nil
}

func (g *Game) onStrayClick(x, y float64) {
	g.log.Debug("stray click", slog.Float64("x", x), slog.Float64("y", y))
	if g.cue != nil {
		g.cue.Play()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	for _, b := range mouseButtons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b):
			g.scene.Press(b, x, y)
		case ebiten.IsMouseButtonPressed(b):
			g.scene.Drag(b, x, y)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			g.scene.Release(b, x, y)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.scene.Root.Draw(screen)
}

// Layout tracks the window size one to one and re-centers the tree when it
// changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Arrange(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
