package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/minefx/engine"
	"github.com/plus3/minefx/fx"
	"github.com/plus3/minefx/grid"
	"github.com/plus3/minefx/internal/logger"
)

// churnSystem keeps the effect manager busy: every frame it spawns a batch
// of rings and flashes with random lifetimes.
type churnSystem struct {
	rng     *rand.Rand
	perTick int
}

func (s *churnSystem) Execute(frame *engine.Frame) {
	for i := 0; i < s.perTick; i++ {
		lifetime := s.rng.Float64() * 2
		if s.rng.IntN(4) == 0 {
			frame.Commands.Spawn(fx.NewScreenFlash(color.White, lifetime))
			continue
		}
		x, y := s.rng.Float32()*1920, s.rng.Float32()*1080
		frame.Commands.Spawn(fx.NewRingWave(x, y, 0, 64, lifetime, color.White))
	}
}

// sweepSystem plays random boards to exercise the flood routines.
type sweepSystem struct {
	rng         *rand.Rand
	board       *grid.Board
	mines       int
	boards      int64
	cellsScored int64
}

func (s *sweepSystem) Execute(*engine.Frame) {
	b := s.board
	row, col := s.rng.IntN(b.Rows()), s.rng.IntN(b.Cols())
	if b.Mines.Count() == 0 || b.Cleared() {
		b.PlaceMines(s.rng, s.mines, row, col)
		s.boards++
	}

	res := b.Reveal(row, col)
	s.cellsScored += int64(res.Cells)
	if res.Exploded {
		b.Mines.Clear()
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	initial := flag.Int("effects", 10000, "The initial number of effects to spawn.")
	perTick := flag.Int("spawn-per-frame", 100, "Effects spawned every frame.")
	rows := flag.Int("rows", 64, "Board rows for the flood workload.")
	cols := flag.Int("cols", 64, "Board columns for the flood workload.")
	mines := flag.Int("mines", 400, "Mines per board.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting effect stress test")

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	// 1. Setup manager, scheduler and workload systems
	effects := fx.NewManager()
	scheduler := engine.NewScheduler(effects)
	sweeper := &sweepSystem{rng: rng, board: grid.NewBoard(*rows, *cols), mines: *mines}
	scheduler.Register(&churnSystem{rng: rng, perTick: *perTick})
	scheduler.Register(sweeper)
	scheduler.Register(engine.NewEffectSystem(effects))

	// 2. Populate the manager with initial effects
	log.Info("populating", logger.F("effects", *initial))
	for i := 0; i < *initial; i++ {
		effects.Spawn(fx.NewRingWave(0, 0, 0, 32, rng.Float64()*5, color.White))
	}

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Effects:        *initial,
		SpawnPerFrame:  *perTick,
		BoardRows:      *rows,
		BoardCols:      *cols,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running", logger.F("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Manager = effects.Stats()
	report.Scheduler = scheduler.GetStats()
	report.Boards = sweeper.boards
	report.CellsScored = sweeper.cellsScored
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Error("failed to generate report", logger.F("err", err))
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}
