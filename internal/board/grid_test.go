package board

import "testing"

func TestInBounds(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 9, 9, true},
		{"negative col", -1, 0, false},
		{"negative row", 0, -1, false},
		{"col past edge", 10, 5, false},
		{"row past edge", 5, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(tc.col, tc.row); got != tc.expected {
				t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
			}
		})
	}
}

func TestGridAccessors(t *testing.T) {
	var g Grid

	if g.Count(Empty) != Size*Size {
		t.Fatalf("fresh grid should be all Empty, got %d empty cells", g.Count(Empty))
	}

	g.Set(3, 7, Miss)
	if CellAt(&g, 3, 7) != Miss {
		t.Errorf("CellAt(3, 7) = %v, expected Miss", CellAt(&g, 3, 7))
	}
	// Indexed [row][col]
	if g[7][3] != Miss {
		t.Errorf("g[7][3] = %v, expected Miss", g[7][3])
	}

	// Out-of-bounds writes are ignored, reads are Empty
	g.Set(10, 0, Hit)
	if g.Count(Hit) != 0 {
		t.Error("out-of-bounds Set should not modify the grid")
	}
	if g.At(-1, 4) != Empty {
		t.Error("out-of-bounds At should read Empty")
	}
}

func TestCellStateLabels(t *testing.T) {
	for _, s := range []CellState{Empty, Ship, Hit, Miss} {
		parsed, err := ParseCellState(s.String())
		if err != nil {
			t.Fatalf("ParseCellState(%q) failed: %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseCellState(%q) = %v, expected %v", s.String(), parsed, s)
		}
	}

	if _, err := ParseCellState("Wreck"); err == nil {
		t.Error("ParseCellState should reject unknown labels")
	}
}

func TestShipKindCatalog(t *testing.T) {
	expected := map[ShipKind]int{
		Carrier:    5,
		Battleship: 4,
		Cruiser:    3,
		Submarine:  3,
		Destroyer:  2,
	}

	kinds := AllKinds()
	if len(kinds) != KindCount {
		t.Fatalf("AllKinds() returned %d kinds, expected %d", len(kinds), KindCount)
	}

	for _, k := range kinds {
		if k.Length() != expected[k] {
			t.Errorf("%s.Length() = %d, expected %d", k, k.Length(), expected[k])
		}
		parsed, err := ParseShipKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseShipKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}

	if Carrier.Name() != "Carrier (5)" {
		t.Errorf("Carrier.Name() = %q", Carrier.Name())
	}
	if _, err := ParseShipKind("Frigate"); err == nil {
		t.Error("ParseShipKind should reject unknown labels")
	}
}

func TestCoordString(t *testing.T) {
	tests := []struct {
		c        Coord
		expected string
	}{
		{Coord{0, 0}, "A1"},
		{Coord{9, 9}, "J10"},
		{Coord{4, 2}, "E3"},
		{Coord{12, 0}, "(12,0)"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("Coord%v.String() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
