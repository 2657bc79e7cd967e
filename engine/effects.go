package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/minefx/fx"
)

// EffectSystem steps and draws the effect manager. Register it after the
// systems that spawn effects so their spawns are stepped on the next frame.
type EffectSystem struct {
	Effects *fx.Manager
}

func NewEffectSystem(effects *fx.Manager) *EffectSystem {
	return &EffectSystem{Effects: effects}
}

func (s *EffectSystem) Execute(frame *Frame) {
	s.Effects.Update(frame.DeltaTime)
}

func (s *EffectSystem) Render(screen *ebiten.Image) {
	s.Effects.Draw(screen)
}
