package fx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RingThickness is the outline width of a RingWave in pixels.
const RingThickness = 6

// RingWave is an unfilled circle that grows from StartRadius to EndRadius
// around a fixed centre over its lifetime.
type RingWave struct {
	X, Y        float32
	StartRadius float32
	EndRadius   float32
	Color       color.Color

	radius float32
	clock  frameClock
}

// NewRingWave creates a ring centred on (x, y).
func NewRingWave(x, y, startRadius, endRadius float32, lifetime float64, clr color.Color) *RingWave {
	return &RingWave{
		X:           x,
		Y:           y,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Color:       clr,
		radius:      startRadius,
		clock:       newFrameClock(lifetime),
	}
}

// Update sets the radius for the current frame, then advances.
func (r *RingWave) Update(float64) bool {
	p := float32(r.clock.progress())
	r.radius = r.StartRadius + (r.EndRadius-r.StartRadius)*p
	return r.clock.step()
}

func (r *RingWave) Draw(screen *ebiten.Image) {
	// outline sits outside the radius
	vector.StrokeCircle(screen, r.X, r.Y, r.radius+RingThickness/2, RingThickness, r.Color, true)
}

// Radius returns the radius applied by the last Update.
func (r *RingWave) Radius() float32 {
	return r.radius
}

// TotalFrames returns the number of updates the ring lives for.
func (r *RingWave) TotalFrames() int {
	return r.clock.total
}
