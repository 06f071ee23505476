package board

import "fmt"

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Ship
	Hit
	Miss
)

// String returns the label used in save documents.
func (c CellState) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Ship:
		return "Ship"
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Targeted reports whether a shot already landed on the cell.
func (c CellState) Targeted() bool {
	return c == Hit || c == Miss
}

// ParseCellState converts a label back to a CellState.
func ParseCellState(label string) (CellState, error) {
	switch label {
	case "Empty":
		return Empty, nil
	case "Ship":
		return Ship, nil
	case "Hit":
		return Hit, nil
	case "Miss":
		return Miss, nil
	}
	return Empty, fmt.Errorf("board: unknown cell state %q", label)
}
