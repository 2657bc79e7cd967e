package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/minefx/assets"
	"github.com/plus3/minefx/engine"
	"github.com/plus3/minefx/engine/debugui"
	debugui_ebiten "github.com/plus3/minefx/engine/debugui/ebiten"
	"github.com/plus3/minefx/fx"
	"github.com/plus3/minefx/game"
	"github.com/plus3/minefx/grid"
	"github.com/plus3/minefx/internal/config"
	"github.com/plus3/minefx/internal/logger"
	"github.com/plus3/minefx/sound"
)

// Game implements ebiten.Game on top of the scheduler.
type Game struct {
	Scheduler *engine.Scheduler
	Imgui     *debugui_ebiten.ImguiBackend
	Width     int
	Height    int
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	g.Scheduler.Once(1.0 / fx.FPS)
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Scheduler.Render(screen)
	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.Width, g.Height
}

func main() {
	configPath := flag.String("config", "minefx.yaml", "Path to the YAML configuration file.")
	debug := flag.Bool("debug", false, "Show the debug overlay.")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	speaker := sound.NewSpeaker(sound.DefaultSampleRate)
	if err := speaker.Init(100 * time.Millisecond); err != nil {
		log.Warn("audio unavailable, continuing silently", logger.F("err", err))
	}
	defer speaker.Close()

	effects := fx.NewManager()
	scheduler := engine.NewScheduler(effects)

	g := &Game{
		Scheduler: scheduler,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
	}

	opts := game.Options{
		Input:  game.EbitenInput{},
		Player: speaker,
		Assets: assets.NewCache(log),
		Logger: log,
	}

	var overlay *debugui.System
	if debug {
		g.Imgui = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		overlay = &debugui.System{}
		opts.Blocked = func() bool { return overlay.Input.WantCaptureMouse }
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	session := game.NewSession(cfg, opts)
	scheduler.Register(session)
	scheduler.Register(engine.NewEffectSystem(effects))

	if overlay != nil {
		overlay.Add(debugui.NewPerformancePanel(scheduler, 120))
		overlay.Add(debugui.NewEffectBrowser(effects, 50))
		overlay.Add(debugui.NewBoardPanel(func() *grid.Board { return session.Board }))
		scheduler.Register(overlay)
	}

	log.Info("starting", logger.F("config", configPath), logger.F("debug", debug))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	stats := effects.Stats()
	log.Info("stopped",
		logger.F("frames", int64(scheduler.GetStats().Frames)),
		logger.F("effects_spawned", stats.Spawned),
		logger.F("effects_finished", stats.Finished),
	)
	return nil
}
