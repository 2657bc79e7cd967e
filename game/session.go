// Package game wires the board, input and feedback effects into the systems
// the engine runs each frame.
package game

import (
	"image/color"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/plus3/minefx/assets"
	"github.com/plus3/minefx/engine"
	"github.com/plus3/minefx/fx"
	"github.com/plus3/minefx/grid"
	"github.com/plus3/minefx/internal/config"
	"github.com/plus3/minefx/internal/logger"
)

type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

var winColor = color.RGBA{255, 215, 64, 96}

// Options are the session's collaborators. Zero values are replaced with
// silent or no-op implementations.
type Options struct {
	Input  Input
	Player fx.Player
	Assets *assets.Cache
	Logger logger.Logger
	Rand   *rand.Rand
	// Blocked reports that another layer (the debug UI) owns the mouse.
	Blocked func() bool
}

// Session is one game of Minesweeper. It reads input, applies it to the
// board and requests feedback effects through the frame's commands.
type Session struct {
	ID     uuid.UUID
	Board  *grid.Board
	Layout Layout
	State  State
	Bombs  int

	cfg     config.Config
	input   Input
	player  fx.Player
	assets  *assets.Cache
	log     logger.Logger
	rng     *rand.Rand
	blocked func() bool
	placed  bool
	restart bool
}

// NewSession creates a session sized from cfg.
func NewSession(cfg config.Config, opts Options) *Session {
	s := &Session{
		cfg:     cfg,
		input:   opts.Input,
		player:  opts.Player,
		assets:  opts.Assets,
		log:     opts.Logger,
		rng:     opts.Rand,
		blocked: opts.Blocked,
		Layout: CenteredLayout(cfg.Window.Width, cfg.Window.Height,
			cfg.Board.Rows, cfg.Board.Cols, cfg.Board.CellSize),
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.assets == nil {
		s.assets = assets.NewCache(s.log)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.reset()
	return s
}

// Restart begins a new round on the next frame.
func (s *Session) Restart() {
	s.restart = true
}

func (s *Session) reset() {
	s.ID = uuid.New()
	s.Board = grid.NewBoard(s.cfg.Board.Rows, s.cfg.Board.Cols)
	s.State = StatePlaying
	s.Bombs = s.cfg.Board.Bombs
	s.placed = false
	s.log.Info("round started",
		logger.F("session", s.ID.String()),
		logger.F("rows", s.cfg.Board.Rows),
		logger.F("cols", s.cfg.Board.Cols),
		logger.F("mines", s.cfg.Board.Mines),
	)
}

func (s *Session) Execute(frame *engine.Frame) {
	if s.input == nil {
		return
	}
	if s.restart || s.input.RestartPressed() {
		s.restart = false
		frame.Commands.Defer(frame.Effects.Clear)
		s.reset()
		return
	}
	if s.State != StatePlaying || (s.blocked != nil && s.blocked()) {
		return
	}

	x, y := s.input.Cursor()
	row, col, ok := s.Layout.CellAt(x, y)
	if !ok {
		return
	}

	switch {
	case s.input.RevealPressed():
		s.reveal(frame, row, col)
	case s.input.DemolishPressed():
		s.demolish(frame, row, col)
	}
}

func (s *Session) reveal(frame *engine.Frame, row, col int) {
	if !s.placed {
		s.Board.PlaceMines(s.rng, s.cfg.Board.Mines, row, col)
		s.placed = true
	}

	res := s.Board.Reveal(row, col)
	cx, cy := s.Layout.CellCenter(row, col)
	fxc := s.cfg.Effects

	if res.Exploded {
		s.State = StateLost
		frame.Commands.Spawn(fx.NewScreenFlash(fxc.Flash.Color.Color(), fxc.Flash.Lifetime))
		frame.Commands.Spawn(fx.NewRingWave(cx, cy, fxc.Ring.StartRadius, fxc.Ring.EndRadius*2, fxc.Ring.Lifetime, fxc.Flash.Color.Color()))
		sound := fx.NewExplosionSound(s.player, fxc.Explosion.File, fxc.Explosion.Volume)
		if err := sound.Err(); err != nil {
			s.log.Debug("explosion sound unavailable", logger.F("file", fxc.Explosion.File), logger.F("err", err))
		}
		frame.Commands.Spawn(sound)
		s.log.Info("mine hit",
			logger.F("session", s.ID.String()),
			logger.F("row", row),
			logger.F("col", col),
			logger.F("score", s.Board.Score),
		)
		return
	}

	if res.Cells == 0 {
		return
	}
	frame.Commands.Spawn(fx.NewRingWave(cx, cy, fxc.Ring.StartRadius, fxc.Ring.EndRadius, fxc.Ring.Lifetime, fxc.Ring.Color.Color()))
	s.log.Debug("revealed",
		logger.F("row", row),
		logger.F("col", col),
		logger.F("cells", res.Cells),
		logger.F("gained", res.Score),
	)
	s.checkCleared(frame)
}

func (s *Session) demolish(frame *engine.Frame, row, col int) {
	if s.Bombs <= 0 || !s.placed {
		return
	}
	s.Bombs--
	s.Board.Demolish(row, col)

	cx, cy := s.Layout.CellCenter(row, col)
	ring := s.cfg.Effects.Ring
	frame.Commands.Spawn(fx.NewRingWave(cx, cy, ring.StartRadius, float32(s.Layout.CellSize)*1.5, ring.Lifetime/2, ring.Color.Color()))
	s.log.Debug("demolished", logger.F("row", row), logger.F("col", col), logger.F("bombs", s.Bombs))
	s.checkCleared(frame)
}

func (s *Session) checkCleared(frame *engine.Frame) {
	if !s.Board.Cleared() {
		return
	}
	s.State = StateWon
	frame.Commands.Spawn(fx.NewScreenFlash(winColor, s.cfg.Effects.Flash.Lifetime*2))
	s.log.Info("board cleared",
		logger.F("session", s.ID.String()),
		logger.F("score", s.Board.Score),
	)
}
