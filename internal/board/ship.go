package board

import "fmt"

// ShipKind identifies one of the five ships in a fleet.
type ShipKind uint8

const (
	Carrier ShipKind = iota
	Battleship
	Cruiser
	Submarine
	Destroyer
)

// KindCount is the number of ship kinds in the catalog.
const KindCount = 5

// AllKinds returns every ship kind in catalog order.
func AllKinds() []ShipKind {
	return []ShipKind{Carrier, Battleship, Cruiser, Submarine, Destroyer}
}

// Length returns the number of cells the ship occupies.
func (k ShipKind) Length() int {
	switch k {
	case Carrier:
		return 5
	case Battleship:
		return 4
	case Cruiser, Submarine:
		return 3
	case Destroyer:
		return 2
	default:
		return 0
	}
}

// String returns the kind label used in save documents.
func (k ShipKind) String() string {
	switch k {
	case Carrier:
		return "Carrier"
	case Battleship:
		return "Battleship"
	case Cruiser:
		return "Cruiser"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	default:
		return "Unknown"
	}
}

// Name returns the display name including length, e.g. "Carrier (5)".
func (k ShipKind) Name() string {
	return fmt.Sprintf("%s (%d)", k, k.Length())
}

// Valid reports whether k is one of the catalog kinds.
func (k ShipKind) Valid() bool {
	return k < KindCount
}

// ParseShipKind converts a label back to a ShipKind.
func ParseShipKind(label string) (ShipKind, error) {
	for _, k := range AllKinds() {
		if k.String() == label {
			return k, nil
		}
	}
	return 0, fmt.Errorf("board: unknown ship kind %q", label)
}
