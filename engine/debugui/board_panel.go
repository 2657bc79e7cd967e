package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/minefx/grid"
)

// BoardSummary is the board state shown in the board panel.
type BoardSummary struct {
	Rows, Cols int
	Mines      int
	Selected   int
	Scored     int
	Remaining  int
	Score      int
}

// Summarize counts the board's grids.
func Summarize(b *grid.Board) BoardSummary {
	mines := b.Mines.Count()
	scored := b.Scored.Count()
	return BoardSummary{
		Rows:      b.Rows(),
		Cols:      b.Cols(),
		Mines:     mines,
		Selected:  b.Selected.Count(),
		Scored:    scored,
		Remaining: b.Rows()*b.Cols() - mines - scored,
		Score:     b.Score,
	}
}

// BoardPanel shows the live board counters and, optionally, a mine map.
type BoardPanel struct {
	board     func() *grid.Board
	showMines bool
}

// NewBoardPanel takes a getter so the panel follows board replacement on
// restart.
func NewBoardPanel(board func() *grid.Board) *BoardPanel {
	return &BoardPanel{board: board}
}

func (bp *BoardPanel) Render() {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := bp.board()
	if b == nil {
		imgui.Text("No board")
		imgui.End()
		return
	}

	s := Summarize(b)
	imgui.Text(fmt.Sprintf("Size: %dx%d", s.Rows, s.Cols))
	imgui.Text(fmt.Sprintf("Mines: %d", s.Mines))
	imgui.Text(fmt.Sprintf("Selected: %d  Scored: %d  Remaining: %d", s.Selected, s.Scored, s.Remaining))
	imgui.Text(fmt.Sprintf("Score: %d", s.Score))

	imgui.Checkbox("Show mines", &bp.showMines)
	if bp.showMines {
		imgui.Separator()
		for r := 0; r < s.Rows; r++ {
			line := make([]byte, s.Cols)
			for c := range line {
				switch {
				case b.Mines.At(r, c):
					line[c] = '*'
				case b.Scored.At(r, c):
					line[c] = byte('0' + b.Count(r, c))
				default:
					line[c] = '.'
				}
			}
			imgui.Text(string(line))
		}
	}

	imgui.End()
}
