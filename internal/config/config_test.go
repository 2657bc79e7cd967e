package config_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/minefx/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minefx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
board:
  rows: 9
  cols: 9
  mines: 10
effects:
  ring:
    end_radius: 48
    color: [10, 20, 30, 40]
  explosion:
    volume: 35
log:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Board.Rows)
	assert.Equal(t, 10, cfg.Board.Mines)
	assert.Equal(t, config.Default().Board.CellSize, cfg.Board.CellSize)
	assert.Equal(t, float32(48), cfg.Effects.Ring.EndRadius)
	assert.Equal(t, config.Default().Effects.Ring.StartRadius, cfg.Effects.Ring.StartRadius)
	assert.Equal(t, color.RGBA{10, 20, 30, 40}, cfg.Effects.Ring.Color.Color())
	assert.Equal(t, 35.0, cfg.Effects.Explosion.Volume)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "board: [1, 2"},
		{"zero rows", "board: {rows: 0}"},
		{"too many mines", "board: {rows: 3, cols: 3, mines: 9}"},
		{"negative mines", "board: {mines: -1}"},
		{"bad cell size", "board: {cell_size: 0}"},
		{"negative bombs", "board: {bombs: -2}"},
		{"loud explosion", "effects: {explosion: {volume: 150}}"},
		{"zero window", "window: {width: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("board: {rows: -1}"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "minefx.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
