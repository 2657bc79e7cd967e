package assets

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		w, h   int
		want   image.Rectangle
	}{
		{"fits", image.Rect(0, 0, 100, 100), 32, 16, image.Rect(0, 0, 32, 16)},
		{"larger than image", image.Rect(0, 0, 20, 10), 32, 32, image.Rect(0, 0, 20, 10)},
		{"offset bounds", image.Rect(5, 5, 50, 50), 10, 10, image.Rect(5, 5, 15, 15)},
		{"empty request", image.Rect(0, 0, 10, 10), 0, 10, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clip(tt.bounds, tt.w, tt.h)
			if tt.want.Empty() {
				assert.True(t, got.Empty())
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheRemembersFailures(t *testing.T) {
	calls := map[string]int{}
	errMissing := errors.New("missing")
	c := NewCacheWithLoader(func(path string) (*ebiten.Image, error) {
		calls[path]++
		return nil, errMissing
	}, nil)

	assert.Nil(t, c.Image("a.png"))
	assert.Nil(t, c.Image("a.png"))
	assert.Nil(t, c.Image("b.png"))

	assert.Equal(t, 1, calls["a.png"])
	assert.Equal(t, 1, calls["b.png"])
	assert.Equal(t, 2, c.Len())
	assert.ErrorIs(t, c.Err("a.png"), errMissing)
	assert.NoError(t, c.Err("never-loaded.png"))
}

func TestDrawTileMissingImage(t *testing.T) {
	c := NewCacheWithLoader(func(string) (*ebiten.Image, error) {
		return nil, errors.New("missing")
	}, nil)

	assert.NotPanics(t, func() {
		c.DrawTile(nil, "tile.png", 32, 32, 10, 10)
	})
}
