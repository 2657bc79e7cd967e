// Package fx provides short-lived visual and audio feedback effects and the
// Manager that steps, draws and retires them once per frame.
package fx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// FPS is the frame rate lifetimes are converted at. Effects count frames,
// not wall-clock time.
const FPS = 60

// Effect is a transient, frame-stepped effect.
type Effect interface {
	// Update advances the effect by one frame and reports whether it has
	// finished. dt is the frame time in seconds.
	Update(dt float64) bool
	// Draw renders the effect's current state.
	Draw(screen *ebiten.Image)
}

// Frames converts a lifetime in seconds to a frame count at FPS, rounding
// half up. Non-positive lifetimes and anything rounding to zero last one
// frame.
func Frames(seconds float64) int {
	if seconds <= 0 {
		return 1
	}
	f := int(math.Floor(seconds*FPS + 0.5))
	if f < 1 {
		return 1
	}
	return f
}

// frameClock counts frames lived against a fixed total.
type frameClock struct {
	lived int
	total int
}

func newFrameClock(seconds float64) frameClock {
	return frameClock{total: Frames(seconds)}
}

// progress returns lived/total clamped to [0, 1].
func (c *frameClock) progress() float64 {
	if c.total <= 0 {
		return 1
	}
	p := float64(c.lived) / float64(c.total)
	return min(max(p, 0), 1)
}

// step advances one frame and reports completion.
func (c *frameClock) step() bool {
	if c.lived < c.total {
		c.lived++
	}
	return c.lived >= c.total
}
