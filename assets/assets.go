// Package assets loads and caches images and draws backgrounds and tiles.
package assets

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/minefx/internal/logger"
)

// Background images are clipped to this area.
const (
	BackgroundWidth  = 1920
	BackgroundHeight = 1080
)

// LoadFunc loads one image from disk.
type LoadFunc func(path string) (*ebiten.Image, error)

func loadFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

type entry struct {
	img *ebiten.Image
	err error
}

// Cache loads each path once. Failed loads are remembered too, so a missing
// file is only attempted and logged once; drawing it is a no-op.
type Cache struct {
	load    LoadFunc
	entries map[string]entry
	log     logger.Logger
}

// NewCache creates a cache that reads from disk.
func NewCache(log logger.Logger) *Cache {
	return NewCacheWithLoader(loadFile, log)
}

// NewCacheWithLoader creates a cache with a custom loader.
func NewCacheWithLoader(load LoadFunc, log logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{
		load:    load,
		entries: make(map[string]entry),
		log:     log,
	}
}

// Image returns the image at path, or nil if it could not be loaded.
func (c *Cache) Image(path string) *ebiten.Image {
	if e, ok := c.entries[path]; ok {
		return e.img
	}

	img, err := c.load(path)
	if err != nil {
		c.log.Debug("image load failed", logger.F("path", path), logger.F("err", err))
		img = nil
	}
	c.entries[path] = entry{img: img, err: err}
	return img
}

// Err returns the load error recorded for path.
func (c *Cache) Err(path string) error {
	return c.entries[path].err
}

// Len returns the number of cached paths, failures included.
func (c *Cache) Len() int {
	return len(c.entries)
}

// DrawBackground clears screen to black and draws the image at path from
// the origin, clipped to the background area.
func (c *Cache) DrawBackground(screen *ebiten.Image, path string) {
	screen.Fill(color.Black)

	img := c.Image(path)
	if img == nil {
		return
	}
	r := clip(img.Bounds(), BackgroundWidth, BackgroundHeight)
	screen.DrawImage(img.SubImage(r).(*ebiten.Image), nil)
}

// DrawTile draws the top-left w x h region of the image at path with its
// corner at (x, y).
func (c *Cache) DrawTile(screen *ebiten.Image, path string, w, h int, x, y float64) {
	img := c.Image(path)
	if img == nil {
		return
	}
	r := clip(img.Bounds(), w, h)
	if r.Empty() {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(img.SubImage(r).(*ebiten.Image), opts)
}

// clip returns the w x h rectangle at the top-left of bounds, cut to fit.
func clip(bounds image.Rectangle, w, h int) image.Rectangle {
	r := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Min.Y+h)
	return r.Intersect(bounds)
}
