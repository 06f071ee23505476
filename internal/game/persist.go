package game

import (
	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/savegame"
)

// Record snapshots the persistent part of the state.
// Cursor, focus and any pending placement are not saved.
func (s *State) Record() savegame.Record {
	return savegame.Record{
		PlayerBoard:   s.PlayerGrid,
		OpponentBoard: s.OpponentGrid,
		Ships:         s.Fleet.Clone().Ships,
		Placed:        append([]board.ShipKind(nil), s.Placed...),
	}
}

// FromRecord rebuilds a state from a saved record. The phase is derived
// from the fleet: all five kinds placed means combat, a fully sunk fleet
// means the game is over.
func FromRecord(rec savegame.Record) *State {
	s := New()
	s.PlayerGrid = rec.PlayerBoard
	s.OpponentGrid = rec.OpponentBoard
	s.Fleet = board.Fleet{Ships: append([]board.PlacedShip(nil), rec.Ships...)}
	s.Placed = append([]board.ShipKind(nil), rec.Placed...)

	switch {
	case len(s.Placed) < board.KindCount:
		s.Phase = PhasePlacing
	case s.Fleet.AllSunk(&s.PlayerGrid):
		s.Phase = PhaseFinished
	default:
		s.Phase = PhaseCombat
	}
	return s
}

// Save writes the state under name (or a generated name when empty) and
// returns the name used.
func Save(store *savegame.Store, s *State, name string) (string, error) {
	return store.Save(s.Record(), name)
}

// Load reads a saved game. On error no state is returned, so the caller's
// current game is left untouched.
func Load(store *savegame.Store, name string) (*State, error) {
	rec, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	return FromRecord(rec), nil
}
