// Package savegame persists complete games as named YAML documents.
//
// A Record is the typed snapshot; Encode and Decode convert it to and from
// the on-disk document. A Store ties the codec to a Backend (one file per
// save, or a SQLite table) and generates adjective-noun-verb names when the
// caller does not supply one.
package savegame

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/board"
)

var (
	// ErrNotFound is returned when no save exists under the requested name.
	ErrNotFound = errors.New("savegame: save not found")

	// ErrCorrupt is returned when a stored document cannot be turned back
	// into a game: missing fields, wrong board dimensions, unknown labels.
	ErrCorrupt = errors.New("savegame: corrupt save")

	// ErrInvalidName is returned for names that cannot address a save.
	ErrInvalidName = errors.New("savegame: invalid save name")
)

// Record is a full snapshot of one game.
type Record struct {
	Name          string
	PlayerBoard   board.Grid
	OpponentBoard board.Grid
	Ships         []board.PlacedShip
	Placed        []board.ShipKind
}

// document is the YAML layout of a Record. All keys are required.
type document struct {
	Name          string         `yaml:"name"`
	PlayerBoard   [][]string     `yaml:"player_board"`
	OpponentBoard [][]string     `yaml:"opponent_board"`
	ShipPositions []shipPosition `yaml:"ship_positions"`
	ShipsPlaced   []string       `yaml:"ships_placed"`
}

type shipPosition struct {
	ShipType     string `yaml:"ship_type"`
	X            int    `yaml:"x"`
	Y            int    `yaml:"y"`
	IsHorizontal bool   `yaml:"is_horizontal"`
}

var (
	requiredKeys     = []string{"name", "player_board", "opponent_board", "ship_positions", "ships_placed"}
	requiredShipKeys = []string{"ship_type", "x", "y", "is_horizontal"}
)

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}

func gridToLabels(g board.Grid) [][]string {
	rows := make([][]string, board.Size)
	for row := range board.Size {
		rows[row] = make([]string, board.Size)
		for col := range board.Size {
			rows[row][col] = g[row][col].String()
		}
	}
	return rows
}

func labelsToGrid(field string, rows [][]string) (board.Grid, error) {
	var g board.Grid
	if len(rows) != board.Size {
		return g, corrupt("%s has %d rows, expected %d", field, len(rows), board.Size)
	}
	for row, cells := range rows {
		if len(cells) != board.Size {
			return g, corrupt("%s row %d has %d cells, expected %d", field, row, len(cells), board.Size)
		}
		for col, label := range cells {
			state, err := board.ParseCellState(label)
			if err != nil {
				return g, corrupt("%s (%d,%d): %v", field, col, row, err)
			}
			g[row][col] = state
		}
	}
	return g, nil
}

func toDocument(rec Record) document {
	doc := document{
		Name:          rec.Name,
		PlayerBoard:   gridToLabels(rec.PlayerBoard),
		OpponentBoard: gridToLabels(rec.OpponentBoard),
		ShipPositions: make([]shipPosition, 0, len(rec.Ships)),
		ShipsPlaced:   make([]string, 0, len(rec.Placed)),
	}
	for _, s := range rec.Ships {
		doc.ShipPositions = append(doc.ShipPositions, shipPosition{
			ShipType:     s.Kind.String(),
			X:            s.Col,
			Y:            s.Row,
			IsHorizontal: s.Horizontal,
		})
	}
	for _, k := range rec.Placed {
		doc.ShipsPlaced = append(doc.ShipsPlaced, k.String())
	}
	return doc
}

func fromDocument(doc document) (Record, error) {
	var rec Record
	var err error

	if doc.Name == "" {
		return rec, corrupt("name is empty")
	}
	rec.Name = doc.Name

	if rec.PlayerBoard, err = labelsToGrid("player_board", doc.PlayerBoard); err != nil {
		return rec, err
	}
	if rec.OpponentBoard, err = labelsToGrid("opponent_board", doc.OpponentBoard); err != nil {
		return rec, err
	}

	seen := make(map[board.ShipKind]bool)
	occupied := make(map[board.Coord]board.ShipKind)
	for i, p := range doc.ShipPositions {
		kind, err := board.ParseShipKind(p.ShipType)
		if err != nil {
			return rec, corrupt("ship_positions[%d]: %v", i, err)
		}
		if seen[kind] {
			return rec, corrupt("ship_positions lists %s twice", kind)
		}
		seen[kind] = true

		ship := board.PlacedShip{Kind: kind, Col: p.X, Row: p.Y, Horizontal: p.IsHorizontal}
		for _, c := range ship.Cells() {
			if !board.InBounds(c.Col, c.Row) {
				return rec, corrupt("%s extends off the board at %s", kind, c)
			}
			if st := rec.PlayerBoard.At(c.Col, c.Row); st != board.Ship && st != board.Hit {
				return rec, corrupt("%s covers %s which is %s on player_board", kind, c, st)
			}
			if other, ok := occupied[c]; ok {
				return rec, corrupt("%s overlaps %s at %s", kind, other, c)
			}
			occupied[c] = kind
		}
		rec.Ships = append(rec.Ships, ship)
	}

	placed := make(map[board.ShipKind]bool)
	for _, label := range doc.ShipsPlaced {
		kind, err := board.ParseShipKind(label)
		if err != nil {
			return rec, corrupt("ships_placed: %v", err)
		}
		if placed[kind] {
			return rec, corrupt("ships_placed lists %s twice", kind)
		}
		placed[kind] = true
		rec.Placed = append(rec.Placed, kind)
	}

	// Every positioned ship is placed and every placed kind has a position.
	for kind := range seen {
		if !placed[kind] {
			return rec, corrupt("%s has a position but is not in ships_placed", kind)
		}
	}
	for kind := range placed {
		if !seen[kind] {
			return rec, corrupt("%s is in ships_placed but has no position", kind)
		}
	}

	return rec, nil
}
