// Package grid implements fixed-size boolean grids and the 8-neighbourhood
// routines used by the game: mine counting and the two flood variants.
package grid

import (
	"fmt"
	"iter"
)

// CellScore is the score gained for every cell a flood newly scores.
const CellScore = 100

// offsets lists the 8-neighbourhood in row-major order.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size rows x cols grid of booleans.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an empty grid. Panics if either dimension is not positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the value at (row, col), or false when out of bounds.
func (g *Grid) At(row, col int) bool {
	if !g.In(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Set stores v at (row, col). Out of bounds writes are ignored.
func (g *Grid) Set(row, col int, v bool) {
	if !g.In(row, col) {
		return
	}
	g.cells[row*g.cols+col] = v
}

// Clear resets every cell to false.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Count returns the number of true cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Neighbors yields the in-bounds 8-neighbours of (row, col) in row-major
// order. The cell itself is never yielded.
func Neighbors(g *Grid, row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, off := range offsets {
			r, c := row+off[0], col+off[1]
			if !g.In(r, c) {
				continue
			}
			if !yield(r, c) {
				return
			}
		}
	}
}

// CountMines returns the number of mines adjacent to (row, col).
func CountMines(mines *Grid, row, col int) int {
	count := 0
	for r, c := range Neighbors(mines, row, col) {
		if mines.At(r, c) {
			count++
		}
	}
	return count
}

// FloodScore selects and scores every adjacent cell that is neither a mine
// nor already scored, returning CellScore for each one.
func FloodScore(mines, selected, scored *Grid, row, col int) int {
	mustMatch(mines, selected)
	mustMatch(mines, scored)

	score := 0
	for r, c := range Neighbors(mines, row, col) {
		if mines.At(r, c) || scored.At(r, c) {
			continue
		}
		selected.Set(r, c, true)
		scored.Set(r, c, true)
		score += CellScore
	}
	return score
}

// FloodDemolition selects every adjacent cell that is not a mine.
func FloodDemolition(mines, selected *Grid, row, col int) {
	mustMatch(mines, selected)

	for r, c := range Neighbors(mines, row, col) {
		if !mines.At(r, c) {
			selected.Set(r, c, true)
		}
	}
}

func mustMatch(a, b *Grid) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(fmt.Sprintf("grid: size mismatch %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
}
