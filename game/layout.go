package game

// HUDHeight is the strip above the board reserved for the score line.
const HUDHeight = 32

// Layout maps between screen pixels and board cells.
type Layout struct {
	OriginX, OriginY int
	CellSize         int
	Rows, Cols       int
}

// CenteredLayout places a rows x cols board in the middle of the screen,
// below the HUD.
func CenteredLayout(screenW, screenH, rows, cols, cellSize int) Layout {
	w, h := cols*cellSize, rows*cellSize
	return Layout{
		OriginX:  max((screenW-w)/2, 0),
		OriginY:  max(HUDHeight+(screenH-HUDHeight-h)/2, HUDHeight),
		CellSize: cellSize,
		Rows:     rows,
		Cols:     cols,
	}
}

// CellAt returns the cell under pixel (x, y).
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	row, col = dy/l.CellSize, dx/l.CellSize
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// CellOrigin returns the top-left pixel of a cell.
func (l Layout) CellOrigin(row, col int) (x, y float32) {
	return float32(l.OriginX + col*l.CellSize), float32(l.OriginY + row*l.CellSize)
}

// CellCenter returns the centre pixel of a cell.
func (l Layout) CellCenter(row, col int) (x, y float32) {
	ox, oy := l.CellOrigin(row, col)
	half := float32(l.CellSize) / 2
	return ox + half, oy + half
}
