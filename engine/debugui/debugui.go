// Package debugui provides Dear ImGui debug panels for the game: scheduler
// timings, effect counters and board state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/minefx/engine"
)

// Panel renders one ImGui window.
type Panel interface {
	Render()
}

// PanelFunc adapts a function to Panel.
type PanelFunc func()

func (f PanelFunc) Render() { f() }

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System records ImGui's input capture state and defers every panel's
// render function to the end of the frame.
type System struct {
	Panels []Panel
	Input  InputState
}

func (s *System) Add(p Panel) {
	s.Panels = append(s.Panels, p)
}

// Execute updates input state and queues all panels for rendering.
func (s *System) Execute(frame *engine.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range s.Panels {
		frame.Commands.Defer(p.Render)
	}
}
