package grid

import "math/rand/v2"

// Board bundles the mine layout with the selection and scoring grids a
// round is played on.
type Board struct {
	Mines    *Grid
	Selected *Grid
	Scored   *Grid
	Score    int
}

// RevealResult describes what a single Reveal changed.
type RevealResult struct {
	Exploded bool
	Cells    int
	Score    int
}

// NewBoard creates an empty rows x cols board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		Mines:    NewGrid(rows, cols),
		Selected: NewGrid(rows, cols),
		Scored:   NewGrid(rows, cols),
	}
}

func (b *Board) Rows() int { return b.Mines.Rows() }
func (b *Board) Cols() int { return b.Mines.Cols() }

// PlaceMines clears the board and scatters count mines, never on the safe
// cell. The count is clamped so at least one cell stays free. Returns the
// number of mines placed.
func (b *Board) PlaceMines(rng *rand.Rand, count, safeRow, safeCol int) int {
	b.Reset()
	b.Mines.Clear()

	candidates := make([][2]int, 0, b.Rows()*b.Cols())
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if r == safeRow && c == safeCol {
				continue
			}
			candidates = append(candidates, [2]int{r, c})
		}
	}

	if count > len(candidates) {
		count = len(candidates)
	}
	if count < 0 {
		count = 0
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, p := range candidates[:count] {
		b.Mines.Set(p[0], p[1], true)
	}
	return count
}

// Count returns the number of mines adjacent to (row, col).
func (b *Board) Count(row, col int) int {
	return CountMines(b.Mines, row, col)
}

// Reveal selects and scores (row, col). Revealing a mine explodes it.
// Revealing a cell with no adjacent mines floods outward through every
// connected zero-count cell.
func (b *Board) Reveal(row, col int) RevealResult {
	var res RevealResult
	if !b.Mines.In(row, col) || b.Scored.At(row, col) {
		return res
	}

	b.Selected.Set(row, col, true)
	if b.Mines.At(row, col) {
		res.Exploded = true
		return res
	}

	b.Scored.Set(row, col, true)
	res.Cells++
	res.Score += CellScore

	queue := [][2]int{{row, col}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if b.Count(p[0], p[1]) != 0 {
			continue
		}

		var fresh [][2]int
		for r, c := range Neighbors(b.Mines, p[0], p[1]) {
			if !b.Scored.At(r, c) && !b.Mines.At(r, c) {
				fresh = append(fresh, [2]int{r, c})
			}
		}

		gained := FloodScore(b.Mines, b.Selected, b.Scored, p[0], p[1])
		res.Score += gained
		res.Cells += gained / CellScore
		queue = append(queue, fresh...)
	}

	b.Score += res.Score
	return res
}

// Demolish selects every non-mine cell around (row, col) without scoring
// them. A demolished cell can still be revealed for its score.
func (b *Board) Demolish(row, col int) {
	FloodDemolition(b.Mines, b.Selected, row, col)
}

// Cleared reports whether every non-mine cell has been selected, either by
// revealing or by demolition.
func (b *Board) Cleared() bool {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if !b.Mines.At(r, c) && !b.Selected.At(r, c) {
				return false
			}
		}
	}
	return true
}

// Reset clears selection, scoring and the running score. Mines stay.
func (b *Board) Reset() {
	b.Selected.Clear()
	b.Scored.Clear()
	b.Score = 0
}
