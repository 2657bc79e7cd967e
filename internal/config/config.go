// Package config loads the game's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/plus3/minefx/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config is the full game configuration.
type Config struct {
	Window  Window        `yaml:"window"`
	Board   Board         `yaml:"board"`
	Effects Effects       `yaml:"effects"`
	Assets  Assets        `yaml:"assets"`
	Log     logger.Config `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Board struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	Mines    int `yaml:"mines"`
	CellSize int `yaml:"cell_size"`
	// Bombs is the number of demolition charges per round.
	Bombs int `yaml:"bombs"`
}

type Effects struct {
	Ring      Ring      `yaml:"ring"`
	Flash     Flash     `yaml:"flash"`
	Explosion Explosion `yaml:"explosion"`
}

type Ring struct {
	StartRadius float32 `yaml:"start_radius"`
	EndRadius   float32 `yaml:"end_radius"`
	Lifetime    float64 `yaml:"lifetime"`
	Color       RGBA    `yaml:"color"`
}

type Flash struct {
	Lifetime float64 `yaml:"lifetime"`
	Color    RGBA    `yaml:"color"`
}

type Explosion struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type Assets struct {
	Background string `yaml:"background"`
	Tile       string `yaml:"tile"`
}

// RGBA is a colour written as [r, g, b, a] in YAML.
type RGBA [4]uint8

func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 960, Height: 720, Title: "minefx"},
		Board: Board{
			Rows:     16,
			Cols:     16,
			Mines:    40,
			CellSize: 32,
			Bombs:    3,
		},
		Effects: Effects{
			Ring: Ring{
				StartRadius: 4,
				EndRadius:   96,
				Lifetime:    0.5,
				Color:       RGBA{255, 200, 64, 255},
			},
			Flash: Flash{
				Lifetime: 0.15,
				Color:    RGBA{255, 64, 32, 96},
			},
			Explosion: Explosion{
				File:   "assets/explosion.wav",
				Volume: 100,
			},
		},
		Assets: Assets{
			Background: "assets/background.png",
			Tile:       "assets/tile.png",
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks sizes and ranges.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Board.Rows <= 0 || c.Board.Cols <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	case c.Board.Mines < 0 || c.Board.Mines >= c.Board.Rows*c.Board.Cols:
		return fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalid, c.Board.Mines, c.Board.Rows, c.Board.Cols)
	case c.Board.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.Board.CellSize)
	case c.Board.Bombs < 0:
		return fmt.Errorf("%w: %d bombs", ErrInvalid, c.Board.Bombs)
	case c.Effects.Explosion.Volume < 0 || c.Effects.Explosion.Volume > 100:
		return fmt.Errorf("%w: explosion volume %g", ErrInvalid, c.Effects.Explosion.Volume)
	}
	return nil
}
