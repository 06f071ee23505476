package board

import (
	"errors"
	"testing"
)

func TestFireDestroyerScenario(t *testing.T) {
	var g Grid
	var f Fleet
	ApplyPlacement(&g, &f, Destroyer, 0, 0, true)
	ApplyPlacement(&g, &f, Carrier, 0, 5, true)

	res, err := Fire(&g, f, 0, 0)
	if err != nil {
		t.Fatalf("Fire() error: %v", err)
	}
	if res.Outcome != OutcomeHit || res.Kind != Destroyer {
		t.Errorf("first shot = %v, expected Hit on Destroyer", res)
	}

	res, err = Fire(&g, f, 1, 0)
	if err != nil {
		t.Fatalf("Fire() error: %v", err)
	}
	if res.Outcome != OutcomeSunk || res.Kind != Destroyer {
		t.Errorf("second shot = %v, expected Sunk(Destroyer)", res)
	}
	if res.String() != "Sunk(Destroyer)" {
		t.Errorf("String() = %q", res.String())
	}
}

func TestFireMissAndRepeat(t *testing.T) {
	var g Grid
	var f Fleet
	ApplyPlacement(&g, &f, Cruiser, 3, 3, false)

	tests := []struct {
		name     string
		col, row int
		expected ShotOutcome
		cell     CellState
	}{
		{"miss on empty water", 0, 0, OutcomeMiss, Miss},
		{"repeat miss", 0, 0, OutcomeAlreadyTargeted, Miss},
		{"hit the cruiser", 3, 4, OutcomeHit, Hit},
		{"repeat hit", 3, 4, OutcomeAlreadyTargeted, Hit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Fire(&g, f, tc.col, tc.row)
			if err != nil {
				t.Fatalf("Fire() error: %v", err)
			}
			if res.Outcome != tc.expected {
				t.Errorf("Fire(%d, %d) = %v, expected %v", tc.col, tc.row, res.Outcome, tc.expected)
			}
			if g.At(tc.col, tc.row) != tc.cell {
				t.Errorf("cell = %v, expected %v", g.At(tc.col, tc.row), tc.cell)
			}
		})
	}
}

func TestFireOutOfBounds(t *testing.T) {
	var g Grid
	var f Fleet
	before := g

	for _, c := range []Coord{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		_, err := Fire(&g, f, c.Col, c.Row)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Fire(%d, %d) error = %v, expected ErrOutOfBounds", c.Col, c.Row, err)
		}
	}
	if g != before {
		t.Error("out-of-bounds shots must not modify the grid")
	}
}

func TestSunkReportedOnceOnFinalCell(t *testing.T) {
	for _, kind := range AllKinds() {
		for _, horizontal := range []bool{true, false} {
			var g Grid
			var f Fleet
			ApplyPlacement(&g, &f, kind, 2, 2, horizontal)
			// A second ship keeps the last hit from escalating to Defeat.
			ApplyPlacement(&g, &f, otherKind(kind), 0, 9, true)

			cells := f.Ships[0].Cells()
			sunk := 0
			for i, c := range cells {
				res, err := Fire(&g, f, c.Col, c.Row)
				if err != nil {
					t.Fatalf("Fire() error: %v", err)
				}
				if res.Outcome == OutcomeSunk {
					sunk++
					if i != len(cells)-1 {
						t.Errorf("%s sunk early on cell %d of %d", kind, i+1, len(cells))
					}
				}
			}
			if sunk != 1 {
				t.Errorf("%s (horizontal=%v) reported Sunk %d times, expected 1", kind, horizontal, sunk)
			}
		}
	}
}

func TestDefeatOnLastShip(t *testing.T) {
	var g Grid
	var f Fleet
	for i, kind := range AllKinds() {
		ApplyPlacement(&g, &f, kind, 0, i*2, true)
	}

	var last ShotResult
	shots := 0
	for _, s := range f.Ships {
		for _, c := range s.Cells() {
			res, err := Fire(&g, f, c.Col, c.Row)
			if err != nil {
				t.Fatalf("Fire() error: %v", err)
			}
			if res.Outcome == OutcomeDefeat && shots != 16 {
				t.Fatalf("Defeat reported on shot %d, expected on shot 17", shots+1)
			}
			last = res
			shots++
		}
	}

	if last.Outcome != OutcomeDefeat || last.Kind != Destroyer {
		t.Errorf("final shot = %v, expected Defeat(Destroyer)", last)
	}
	if !f.AllSunk(&g) {
		t.Error("AllSunk() should be true after defeat")
	}
}

func TestFireIsDeterministic(t *testing.T) {
	var g Grid
	var f Fleet
	ApplyPlacement(&g, &f, Battleship, 1, 1, false)

	a, b := g, g
	ra, _ := Fire(&a, f, 1, 2)
	rb, _ := Fire(&b, f, 1, 2)

	if ra != rb || a != b {
		t.Error("identical states and coordinates must produce identical outcomes")
	}
}

func TestFireOnOrphanShipCell(t *testing.T) {
	var g Grid
	g.Set(4, 4, Ship)

	res, err := Fire(&g, Fleet{}, 4, 4)
	if err != nil {
		t.Fatalf("Fire() error: %v", err)
	}
	if res.Outcome != OutcomeHit || res.HasKind {
		t.Errorf("orphan ship cell = %+v, expected plain Hit", res)
	}
}

func otherKind(k ShipKind) ShipKind {
	if k == Destroyer {
		return Carrier
	}
	return Destroyer
}
