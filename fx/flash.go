package fx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenFlash covers the whole screen with a solid colour for its lifetime.
type ScreenFlash struct {
	Color color.Color
	clock frameClock
}

func NewScreenFlash(clr color.Color, lifetime float64) *ScreenFlash {
	return &ScreenFlash{
		Color: clr,
		clock: newFrameClock(lifetime),
	}
}

func (f *ScreenFlash) Update(float64) bool {
	return f.clock.step()
}

func (f *ScreenFlash) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), f.Color, false)
}

// TotalFrames returns the number of updates the flash lives for.
func (f *ScreenFlash) TotalFrames() int {
	return f.clock.total
}
