package engine

import "github.com/plus3/minefx/fx"

type Frame struct {
	DeltaTime float64
	Index     uint64
	Commands  *Commands
	Effects   *fx.Manager
}

func newFrame(dt float64, index uint64, effects *fx.Manager) *Frame {
	return &Frame{
		DeltaTime: dt,
		Index:     index,
		Commands:  newCommands(),
		Effects:   effects,
	}
}
