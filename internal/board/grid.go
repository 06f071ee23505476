package board

import "fmt"

// Size is the board dimension along both axes.
const Size = 10

// Coord addresses a cell by column and row.
type Coord struct {
	Col, Row int
}

// String formats the coordinate in board notation (A1..J10).
func (c Coord) String() string {
	if !InBounds(c.Col, c.Row) {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}

// Grid is one side's 10x10 board, indexed [row][col].
// The zero value is a board of Empty cells.
type Grid [Size][Size]CellState

// InBounds reports whether both coordinates lie in [0, Size-1].
func InBounds(col, row int) bool {
	return col >= 0 && col < Size && row >= 0 && row < Size
}

// At returns the state of the cell at (col, row).
// Out-of-bounds coordinates read as Empty.
func (g *Grid) At(col, row int) CellState {
	if !InBounds(col, row) {
		return Empty
	}
	return g[row][col]
}

// Set overwrites the cell at (col, row). Out-of-bounds writes are ignored.
func (g *Grid) Set(col, row int, state CellState) {
	if !InBounds(col, row) {
		return
	}
	g[row][col] = state
}

// Count returns how many cells are in the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for row := range Size {
		for col := range Size {
			if g[row][col] == state {
				n++
			}
		}
	}
	return n
}

// CellAt is the free-function form of Grid.At.
func CellAt(g *Grid, col, row int) CellState {
	return g.At(col, row)
}
