package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/minefx/engine"
	"github.com/plus3/minefx/engine/debugui"
	debugui_ebiten "github.com/plus3/minefx/engine/debugui/ebiten"
)

// Game runs the scheduler between ImGui's begin and end frame calls.
type Game struct {
	scheduler *engine.Scheduler
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.imgui.BeginFrame()
	g.scheduler.Once(1.0 / 60.0)
	g.imgui.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Render(screen)
	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Debug UI Example", 1280, 720)

	scheduler := engine.NewScheduler(nil)
	overlay := &debugui.System{}
	overlay.Add(debugui.PanelFunc(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from the overlay!")
		imgui.End()
	}))
	overlay.Add(debugui.NewEffectBrowser(scheduler.Effects(), 25))
	scheduler.Register(engine.NewEffectSystem(scheduler.Effects()))
	scheduler.Register(overlay)

	if err := ebiten.RunGame(&Game{scheduler: scheduler, imgui: backend}); err != nil {
		panic(err)
	}
}
