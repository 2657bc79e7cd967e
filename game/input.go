package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame player input the session reads.
type Input interface {
	Cursor() (x, y int)
	RevealPressed() bool
	DemolishPressed() bool
	RestartPressed() bool
}

// EbitenInput reads the mouse and keyboard through ebiten. Left click
// reveals, right click drops a demolition charge, R restarts.
type EbitenInput struct{}

func (EbitenInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) RevealPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenInput) DemolishPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

func (EbitenInput) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
