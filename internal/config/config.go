package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	WindowTitle     = "SquareFX App"
	WindowMinWidth  = 600
	WindowMinHeight = 600

	// Palette
	Background = "#FFFCEF"
	Onyx       = "#3E3E3E"
	Red        = "#D54063"
	Green      = "#81B29A"
	Orange     = "#FFA97D"

	// Square
	SquareSize = 180
	SquareArc  = 10 // corner arc diameter

	// Slider
	ScaleMin        = 0
	ScaleMax        = 100
	DefaultScale    = 75
	MajorTickUnit   = 25
	SliderWidth     = 500
	SliderHeight    = 40
	SliderThumbSize = 8

	// Layout
	RootPadding    = 50
	RootSpacing    = 50
	RowSpacing     = 100
	RadioSpacing   = 10
	RadioDotRadius = 8
	FontSize       = 18
	LineSpacing    = 24

	DefaultFile = "squarefx.toml"
)

const (
	InstructionsText = "Change the square color using the radio buttons.\n" +
		"Change the scale of the square from 0-100% with the slider."
	WarningText = "Select the radio buttons or the slider only.\n" +
		"A warning sound will play if the mouse is clicked elsewhere."
)

// Config holds the few values that may be overridden from squarefx.toml.
type Config struct {
	InitialScale float64 `toml:"initial_scale"`
	// SoundFile replaces the bundled cue when set.
	SoundFile    string  `toml:"sound_file"`
}

func Default() Config {
	return Config{
		InitialScale: DefaultScale,
	}
}

// Parse decodes TOML data on top of the defaults. Keys absent from data keep
// their default value.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads path. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}
