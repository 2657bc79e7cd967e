package game

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/minefx/engine"
	"github.com/plus3/minefx/fx"
	"github.com/plus3/minefx/grid"
	"github.com/plus3/minefx/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	x, y     int
	reveal   bool
	demolish bool
	restart  bool
}

func (f *fakeInput) Cursor() (int, int)    { return f.x, f.y }
func (f *fakeInput) RevealPressed() bool   { return f.reveal }
func (f *fakeInput) DemolishPressed() bool { return f.demolish }
func (f *fakeInput) RestartPressed() bool  { return f.restart }

// click aims at a cell and presses the given button for one frame.
func (f *fakeInput) click(l Layout, row, col int, demolish bool) {
	x, y := l.CellCenter(row, col)
	f.x, f.y = int(x), int(y)
	f.reveal = !demolish
	f.demolish = demolish
}

func (f *fakeInput) release() {
	f.reveal, f.demolish, f.restart = false, false, false
}

type harness struct {
	session   *Session
	input     *fakeInput
	scheduler *engine.Scheduler
}

func newHarness(t *testing.T, rows, cols, mines int) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Mines = rows, cols, mines
	cfg.Effects.Explosion.File = "testdata/missing.wav"
	require.NoError(t, cfg.Validate())

	input := &fakeInput{}
	session := NewSession(cfg, Options{
		Input: input,
		Rand:  rand.New(rand.NewPCG(7, 11)),
	})

	effects := fx.NewManager()
	scheduler := engine.NewScheduler(effects)
	scheduler.Register(session)
	scheduler.Register(engine.NewEffectSystem(effects))

	return &harness{session: session, input: input, scheduler: scheduler}
}

func (h *harness) frame() {
	h.scheduler.Once(1.0 / fx.FPS)
	h.input.release()
}

// rig replaces the random layout with a fixed one.
func (h *harness) rig(rows ...string) {
	b := grid.NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			b.Mines.Set(r, c, ch == '*')
		}
	}
	h.session.Board = b
	h.session.placed = true
}

func TestFirstClickIsSafe(t *testing.T) {
	for i := 0; i < 10; i++ {
		h := newHarness(t, 8, 8, 20)
		h.input.click(h.session.Layout, 3, 4, false)
		h.frame()

		assert.NotEqual(t, StateLost, h.session.State)
		assert.False(t, h.session.Board.Mines.At(3, 4))
		assert.Equal(t, 20, h.session.Board.Mines.Count())
		assert.True(t, h.session.Board.Scored.At(3, 4))
	}
}

func TestRevealSpawnsRing(t *testing.T) {
	h := newHarness(t, 3, 3, 1)
	h.rig(
		"*..",
		"...",
		"...",
	)

	h.input.click(h.session.Layout, 1, 1, false)
	h.frame()

	assert.Equal(t, StatePlaying, h.session.State)
	assert.Equal(t, grid.CellScore, h.session.Board.Score)
	assert.Equal(t, 1, h.scheduler.Effects().Len())

	frames := fx.Frames(h.session.cfg.Effects.Ring.Lifetime)
	for range frames {
		h.frame()
	}
	assert.Equal(t, 0, h.scheduler.Effects().Len())
}

func TestMineEndsRound(t *testing.T) {
	h := newHarness(t, 3, 3, 1)
	h.rig(
		"*..",
		"...",
		"...",
	)

	h.input.click(h.session.Layout, 0, 0, false)
	h.frame()

	assert.Equal(t, StateLost, h.session.State)
	// flash, ring and the (silent) explosion sound
	assert.Equal(t, 3, h.scheduler.Effects().Len())

	h.frame()
	assert.Equal(t, 2, h.scheduler.Effects().Len(), "missing sound finishes on its first update")

	h.input.click(h.session.Layout, 1, 1, false)
	h.frame()
	assert.Equal(t, 0, h.session.Board.Score, "input ignored after the round ends")
}

func TestClearingBoardWins(t *testing.T) {
	h := newHarness(t, 3, 3, 1)
	h.rig(
		"...",
		"...",
		"..*",
	)

	h.input.click(h.session.Layout, 0, 0, false)
	h.frame()

	assert.Equal(t, StateWon, h.session.State)
	assert.Equal(t, 8*grid.CellScore, h.session.Board.Score)
	assert.Equal(t, 2, h.scheduler.Effects().Len())
}

func TestDemolition(t *testing.T) {
	h := newHarness(t, 3, 3, 2)
	h.rig(
		"*..",
		"...",
		"..*",
	)
	bombs := h.session.Bombs
	require.Greater(t, bombs, 0)

	h.input.click(h.session.Layout, 1, 1, true)
	h.frame()

	assert.Equal(t, bombs-1, h.session.Bombs)
	assert.Equal(t, 6, h.session.Board.Selected.Count())
	assert.Equal(t, 0, h.session.Board.Score)
	assert.Equal(t, StatePlaying, h.session.State)

	h.input.click(h.session.Layout, 1, 1, false)
	h.frame()
	assert.Equal(t, StateWon, h.session.State)
}

func TestDemolitionNeedsCharges(t *testing.T) {
	h := newHarness(t, 3, 3, 1)
	h.rig("*..", "...", "...")
	h.session.Bombs = 0

	h.input.click(h.session.Layout, 1, 1, true)
	h.frame()

	assert.Equal(t, 0, h.session.Board.Selected.Count())
	assert.Equal(t, 0, h.scheduler.Effects().Len())
}

func TestRestart(t *testing.T) {
	h := newHarness(t, 3, 3, 1)
	h.rig("*..", "...", "...")
	h.input.click(h.session.Layout, 0, 0, false)
	h.frame()
	require.Equal(t, StateLost, h.session.State)
	id := h.session.ID

	h.input.restart = true
	h.frame()

	assert.Equal(t, StatePlaying, h.session.State)
	assert.NotEqual(t, id, h.session.ID)
	assert.Equal(t, 0, h.session.Board.Mines.Count())
	assert.Equal(t, 0, h.scheduler.Effects().Len())
}

func TestBlockedInput(t *testing.T) {
	h := newHarness(t, 3, 3, 1)
	h.session.blocked = func() bool { return true }

	h.input.click(h.session.Layout, 1, 1, false)
	h.frame()

	assert.Equal(t, 0, h.session.Board.Scored.Count())
}

func TestLayout(t *testing.T) {
	l := CenteredLayout(200, 200+HUDHeight, 4, 5, 20)
	assert.Equal(t, 50, l.OriginX)
	assert.Equal(t, HUDHeight+60, l.OriginY)

	row, col, ok := l.CellAt(l.OriginX+45, l.OriginY+65)
	assert.True(t, ok)
	assert.Equal(t, 3, row)
	assert.Equal(t, 2, col)

	_, _, ok = l.CellAt(l.OriginX-1, l.OriginY)
	assert.False(t, ok)
	_, _, ok = l.CellAt(l.OriginX+100, l.OriginY)
	assert.False(t, ok)

	x, y := l.CellCenter(0, 0)
	assert.Equal(t, float32(l.OriginX+10), x)
	assert.Equal(t, float32(l.OriginY+10), y)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "won", StateWon.String())
	assert.Equal(t, "lost", StateLost.String())
	assert.Equal(t, "unknown", State(9).String())
}
