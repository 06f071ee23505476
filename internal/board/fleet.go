package board

// PlacedShip records where a ship sits on the grid.
// The anchor (Col, Row) is its lowest-index cell; the ship extends in +col
// when Horizontal and in +row otherwise.
type PlacedShip struct {
	Kind       ShipKind
	Col        int
	Row        int
	Horizontal bool
}

// Cells returns every coordinate the ship occupies, anchor first.
func (s PlacedShip) Cells() []Coord {
	return footprint(s.Kind.Length(), s.Col, s.Row, s.Horizontal)
}

// Covers reports whether the ship occupies (col, row).
func (s PlacedShip) Covers(col, row int) bool {
	n := s.Kind.Length()
	if s.Horizontal {
		return row == s.Row && col >= s.Col && col < s.Col+n
	}
	return col == s.Col && row >= s.Row && row < s.Row+n
}

// Sunk reports whether every cell of the ship is Hit on g.
func (s PlacedShip) Sunk(g *Grid) bool {
	for _, c := range s.Cells() {
		if g.At(c.Col, c.Row) != Hit {
			return false
		}
	}
	return true
}

// Fleet is the set of ships placed on one grid, at most one per kind.
type Fleet struct {
	Ships []PlacedShip
}

// Len returns the number of placed ships.
func (f Fleet) Len() int {
	return len(f.Ships)
}

// Has reports whether a ship of the given kind is placed.
func (f Fleet) Has(kind ShipKind) bool {
	_, ok := f.Ship(kind)
	return ok
}

// Ship returns the placed ship of the given kind.
func (f Fleet) Ship(kind ShipKind) (PlacedShip, bool) {
	for _, s := range f.Ships {
		if s.Kind == kind {
			return s, true
		}
	}
	return PlacedShip{}, false
}

// ShipAt returns the kind of the ship covering (col, row), if any.
func (f Fleet) ShipAt(col, row int) (ShipKind, bool) {
	for _, s := range f.Ships {
		if s.Covers(col, row) {
			return s.Kind, true
		}
	}
	return 0, false
}

// IsSunk reports whether the ship of the given kind is placed and fully hit.
func (f Fleet) IsSunk(g *Grid, kind ShipKind) bool {
	s, ok := f.Ship(kind)
	return ok && s.Sunk(g)
}

// SunkCount returns how many placed ships are fully hit.
func (f Fleet) SunkCount(g *Grid) int {
	n := 0
	for _, s := range f.Ships {
		if s.Sunk(g) {
			n++
		}
	}
	return n
}

// AllSunk reports whether the fleet has at least one ship and every ship is sunk.
func (f Fleet) AllSunk(g *Grid) bool {
	return len(f.Ships) > 0 && f.SunkCount(g) == len(f.Ships)
}

// Clone returns a copy that shares no memory with f.
func (f Fleet) Clone() Fleet {
	ships := make([]PlacedShip, len(f.Ships))
	copy(ships, f.Ships)
	return Fleet{Ships: ships}
}

// ShipAt is the free-function form of Fleet.ShipAt.
func ShipAt(f Fleet, col, row int) (ShipKind, bool) {
	return f.ShipAt(col, row)
}
