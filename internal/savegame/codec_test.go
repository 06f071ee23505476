package savegame

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/board"
)

func sampleRecord() Record {
	var rec Record
	var fleet board.Fleet
	board.ApplyPlacement(&rec.PlayerBoard, &fleet, board.Carrier, 0, 0, true)
	board.ApplyPlacement(&rec.PlayerBoard, &fleet, board.Destroyer, 9, 3, false)
	board.Fire(&rec.PlayerBoard, fleet, 1, 0)
	board.Fire(&rec.PlayerBoard, fleet, 5, 5)
	rec.OpponentBoard.Set(2, 2, board.Hit)
	rec.OpponentBoard.Set(3, 8, board.Miss)
	rec.Ships = fleet.Ships
	rec.Placed = []board.ShipKind{board.Carrier, board.Destroyer}
	rec.Name = "test-save"
	return rec
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := sampleRecord()

	data, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	for _, key := range requiredKeys {
		if !strings.Contains(string(data), key+":") {
			t.Errorf("encoded document is missing %q", key)
		}
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if got.Name != rec.Name {
		t.Errorf("Name = %q, expected %q", got.Name, rec.Name)
	}
	if got.PlayerBoard != rec.PlayerBoard {
		t.Error("player board differs after round trip")
	}
	if got.OpponentBoard != rec.OpponentBoard {
		t.Error("opponent board differs after round trip")
	}
	if len(got.Ships) != len(rec.Ships) {
		t.Fatalf("got %d ships, expected %d", len(got.Ships), len(rec.Ships))
	}
	for i := range rec.Ships {
		if got.Ships[i] != rec.Ships[i] {
			t.Errorf("ship %d = %+v, expected %+v", i, got.Ships[i], rec.Ships[i])
		}
	}
	if len(got.Placed) != 2 || got.Placed[0] != board.Carrier || got.Placed[1] != board.Destroyer {
		t.Errorf("Placed = %v", got.Placed)
	}
}

func TestEncodeEmptyFleet(t *testing.T) {
	data, err := Encode(Record{Name: "fresh"})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() of an empty game failed: %v", err)
	}
	if len(got.Ships) != 0 || len(got.Placed) != 0 {
		t.Errorf("expected empty fleet, got %v / %v", got.Ships, got.Placed)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	valid, err := Encode(sampleRecord())
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	doc := string(valid)

	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "{{{"},
		{"empty document", ""},
		{"a list", "- 1\n- 2\n"},
		{"missing ships_placed", cutKey(doc, "ships_placed")},
		{"missing name", cutKey(doc, "name")},
		{"unknown ship kind", strings.Replace(doc, "ship_type: Carrier", "ship_type: Frigate", 1)},
		{"unknown cell label", strings.Replace(doc, "- Empty", "- Lava", 1)},
		{"short board", "name: x\nplayer_board: [[Empty]]\nopponent_board: []\nship_positions: []\nships_placed: []\n"},
		{"duplicate placed kind", strings.Replace(doc, "- Destroyer", "- Carrier", 1)},
		{"ship off the board", strings.Replace(doc, "x: 9", "x: 12", 1)},
		{"ship missing x", regexp.MustCompile(`(?m)^\s+x: \d+\n`).ReplaceAllString(doc, "")},
		{"ship missing orientation", regexp.MustCompile(`(?m)^\s+is_horizontal: \w+\n`).ReplaceAllString(doc, "")},
		{"positioned ship not placed", encodeWith(func(r *Record) {
			r.Placed = []board.ShipKind{board.Carrier}
		})},
		{"placed kinds without positions", encodeWith(func(r *Record) {
			r.Placed = board.AllKinds()
		})},
		{"overlapping ships", encodeWith(func(r *Record) {
			r.Ships = append(r.Ships, board.PlacedShip{Kind: board.Submarine, Col: 2, Row: 0, Horizontal: true})
			r.Placed = append(r.Placed, board.Submarine)
		})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Decode() error = %v, expected ErrCorrupt", err)
			}
		})
	}
}

func TestDecodeRejectsShipOverWater(t *testing.T) {
	rec := sampleRecord()
	rec.Ships = append(rec.Ships, board.PlacedShip{Kind: board.Submarine, Col: 4, Row: 7, Horizontal: true})

	data, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decode() error = %v, expected ErrCorrupt for ship over Empty cells", err)
	}
}

// encodeWith encodes sampleRecord after applying change.
func encodeWith(change func(*Record)) string {
	rec := sampleRecord()
	change(&rec)
	data, err := Encode(rec)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// cutKey drops a top-level key and its block from a YAML document.
func cutKey(doc, key string) string {
	var out []string
	skipping := false
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, key+":") {
			skipping = true
			continue
		}
		if skipping && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "-")) {
			continue
		}
		skipping = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
