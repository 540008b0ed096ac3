package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/squarefx/internal/config"
	"github.com/iburimskiy/squarefx/internal/dialog"
	"github.com/iburimskiy/squarefx/internal/sound"
	"github.com/iburimskiy/squarefx/internal/square"
)

type Stage int

const (
	Uninitialized Stage = iota
	SoundInitialized
	UIBuilt
	Displayed
)

func (s Stage) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case SoundInitialized:
		return "sound-initialized"
	case UIBuilt:
		return "ui-built"
	case Displayed:
		return "displayed"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

var ErrStageOrder = errors.New("startup stage out of order")

// Deps are the side-effecting collaborators of the startup sequence.
type Deps struct {
	Log      *slog.Logger
	Notifier dialog.Notifier
	// LoadCue gets the configured sound file, empty for the bundled cue.
	LoadCue  func(path string) (sound.Player, error)
	// Window applies title and minimum size before the loop starts.
	Window   func(title string, minWidth, minHeight int)
	Run      func(ebiten.Game) error
}

// DefaultDeps wires the real speaker, zenity dialogs and the ebiten loop.
func DefaultDeps(log *slog.Logger) Deps {
	return Deps{
		Log:      log,
		Notifier: dialog.Zenity{Log: log},
		LoadCue: func(path string) (sound.Player, error) {
			c, err := sound.Open(path)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		Window: func(title string, minWidth, minHeight int) {
			ebiten.SetWindowTitle(title)
			ebiten.SetWindowSize(minWidth, minHeight)
			ebiten.SetWindowSizeLimits(minWidth, minHeight, -1, -1)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		},
		Run: ebiten.RunGame,
	}
}

// Startup walks Uninitialized, SoundInitialized, UIBuilt, Displayed in that
// order and no other.
type Startup struct {
	cfg   config.Config
	deps  Deps
	stage Stage

	cue  sound.Player
	game *Game
}

func NewStartup(cfg config.Config, deps Deps) *Startup {
	return &Startup{cfg: cfg, deps: deps}
}

func (s *Startup) Stage() Stage { return s.stage }

// Game is nil until the UIBuilt stage.
func (s *Startup) Game() *Game { return s.game }

func (s *Startup) expect(from, to Stage) error {
	if s.stage != from {
		return fmt.Errorf("%w: at %s, want %s before %s", ErrStageOrder, s.stage, from, to)
	}
	return nil
}

func (s *Startup) advance(to Stage) {
	s.stage = to
	s.deps.Log.Info("startup", slog.String("stage", to.String()))
}

// InitSound loads the stray-click cue. Failure is reported to the user and the
// program continues silent.
func (s *Startup) InitSound() error {
	if err := s.expect(Uninitialized, SoundInitialized); err != nil {
		return err
	}
	name := s.cfg.SoundFile
	if name == "" {
		name = sound.BundledName
	}
	cue, err := s.deps.LoadCue(s.cfg.SoundFile)
	if err != nil {
		s.deps.Log.Warn("sound disabled", slog.String("file", name), slog.Any("err", err))
		s.deps.Notifier.Error("Audio Error", audioErrorMessage(name, err))
		cue = nil
	}
	s.cue = cue
	s.advance(SoundInitialized)
	return nil
}

func audioErrorMessage(file string, err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("Sound file %q was not found in resources.\nThe app will run without sound effects.", file)
	}
	return fmt.Sprintf("Error: %v\nThe app will run without sound effects.", err)
}

// BuildUI creates the state model and the scene. An out-of-range initial
// scale is reported and replaced by the default.
func (s *Startup) BuildUI() error {
	if err := s.expect(SoundInitialized, UIBuilt); err != nil {
		return err
	}
	scale, err := square.NewScale(s.cfg.InitialScale)
	if err != nil {
		s.deps.Log.Warn("initial scale rejected", slog.Float64("initial_scale", s.cfg.InitialScale), slog.Any("err", err))
		s.deps.Notifier.Error("Slider error", fmt.Sprintf(
			"Initial scale must be between %d and %d. The initial scale will be set to %d so the program can run.",
			config.ScaleMin, config.ScaleMax, config.DefaultScale))
	}
	ctrl := square.Bind(square.New(), square.NewColorGroup(square.Red), scale)

	g, err := NewGame(ctrl, s.cue, s.deps.Log)
	if err != nil {
		return err
	}
	s.game = g
	s.advance(UIBuilt)
	return nil
}

// Display shows the window and blocks in the event loop until it closes.
func (s *Startup) Display() error {
	if err := s.expect(UIBuilt, Displayed); err != nil {
		return err
	}
	s.advance(Displayed)
	s.deps.Window(config.WindowTitle, config.WindowMinWidth, config.WindowMinHeight)
	if err := s.deps.Run(s.game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Start runs the whole startup sequence and then the program itself.
func Start(cfg config.Config, deps Deps) error {
	s := NewStartup(cfg, deps)
	for _, step := range []func() error{s.InitSound, s.BuildUI, s.Display} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
