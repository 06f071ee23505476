package board

import "fmt"

// footprint lists length cells starting at the anchor without bounds checks.
func footprint(length, col, row int, horizontal bool) []Coord {
	cells := make([]Coord, 0, length)
	for i := range length {
		if horizontal {
			cells = append(cells, Coord{Col: col + i, Row: row})
		} else {
			cells = append(cells, Coord{Col: col, Row: row + i})
		}
	}
	return cells
}

// Footprint returns the in-bounds cells a candidate placement would cover.
// Used for live preview; cells past the edge are dropped.
func Footprint(kind ShipKind, col, row int, horizontal bool) []Coord {
	all := footprint(kind.Length(), col, row, horizontal)
	cells := all[:0]
	for _, c := range all {
		if InBounds(c.Col, c.Row) {
			cells = append(cells, c)
		}
	}
	return cells
}

// CanPlace reports whether a ship of the given kind fits at the anchor.
// Every occupied cell must be on the board and currently Empty.
func CanPlace(g *Grid, kind ShipKind, col, row int, horizontal bool) bool {
	n := kind.Length()
	if n == 0 {
		return false
	}
	for _, c := range footprint(n, col, row, horizontal) {
		if !InBounds(c.Col, c.Row) {
			return false
		}
		if g.At(c.Col, c.Row) != Empty {
			return false
		}
	}
	return true
}

// ApplyPlacement marks the ship's cells as Ship and records it in the fleet.
// The caller must have checked CanPlace; an illegal placement panics.
func ApplyPlacement(g *Grid, f *Fleet, kind ShipKind, col, row int, horizontal bool) {
	if !CanPlace(g, kind, col, row, horizontal) {
		panic(fmt.Sprintf("board: illegal placement of %s at %s", kind, Coord{col, row}))
	}
	ship := PlacedShip{Kind: kind, Col: col, Row: row, Horizontal: horizontal}
	for _, c := range ship.Cells() {
		g.Set(c.Col, c.Row, Ship)
	}
	f.Ships = append(f.Ships, ship)
}
