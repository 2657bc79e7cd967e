// Package engine runs the game's per-frame systems in a fixed order and
// defers effect spawns and cancellations to the end of each frame.
package engine

import "github.com/hajimehoshi/ebiten/v2"

// System is a unit of per-frame game logic. Systems keep their own state
// between frames.
type System interface {
	Execute(frame *Frame)
}

// Renderer is implemented by systems that also draw. Render is called in
// registration order, after the frame's update has completed.
type Renderer interface {
	Render(screen *ebiten.Image)
}
