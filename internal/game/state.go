// Package game holds the battleship game state and the commands that mutate it.
// State is an explicitly owned value: every command is a method on *State and
// nothing is shared between instances.
package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Phase is the current stage of a game.
type Phase string

const (
	PhasePlacing  Phase = "placing"
	PhaseCombat   Phase = "combat"
	PhaseFinished Phase = "finished"
)

// Focus selects which board the cursor is on.
type Focus int

const (
	FocusPlayer Focus = iota
	FocusOpponent
)

var (
	ErrShipAlreadyPlaced = errors.New("game: ship already placed")
	ErrIllegalPlacement  = errors.New("game: ship does not fit there")
	ErrWrongPhase        = errors.New("game: command not allowed in this phase")
	ErrGameOver          = errors.New("game: fleet already defeated")
	ErrNoPendingShip     = errors.New("game: no ship selected for placement")
	ErrInvalidMark       = errors.New("game: opponent board only takes Hit, Miss or Empty")
)

// Pending is a ship selected for placement but not yet put on the board.
type Pending struct {
	Kind       board.ShipKind
	Horizontal bool
}

// Stats summarizes shots resolved against the player board.
type Stats struct {
	Shots  int
	Hits   int
	Misses int
	Sunk   int
}

// State is the complete game: both boards, the player's fleet and the
// input-layer cursor.
type State struct {
	PlayerGrid   board.Grid
	OpponentGrid board.Grid
	Fleet        board.Fleet
	Placed       []board.ShipKind
	Phase        Phase
	Pending      *Pending
	Cursor       board.Coord
	Focus        Focus
}

// New returns a fresh game: empty boards, no ships, placement phase.
func New() *State {
	return &State{Phase: PhasePlacing}
}

// NewGame discards everything and starts over.
func (s *State) NewGame() {
	*s = *New()
}

// IsPlaced reports whether a ship of the given kind is already on the board.
func (s *State) IsPlaced(kind board.ShipKind) bool {
	for _, k := range s.Placed {
		if k == kind {
			return true
		}
	}
	return false
}

// Remaining returns the kinds still to be placed, in catalog order.
func (s *State) Remaining() []board.ShipKind {
	var kinds []board.ShipKind
	for _, k := range board.AllKinds() {
		if !s.IsPlaced(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// SelectShip starts placing a ship of the given kind, horizontal first.
func (s *State) SelectShip(kind board.ShipKind) error {
	if s.Phase != PhasePlacing {
		return ErrWrongPhase
	}
	if s.IsPlaced(kind) {
		return fmt.Errorf("%s: %w", kind, ErrShipAlreadyPlaced)
	}
	s.Pending = &Pending{Kind: kind, Horizontal: true}
	s.Focus = FocusPlayer
	return nil
}

// RotatePending flips the orientation of the ship being placed.
func (s *State) RotatePending() {
	if s.Pending != nil {
		s.Pending.Horizontal = !s.Pending.Horizontal
	}
}

// CancelPending drops the ship being placed.
func (s *State) CancelPending() {
	s.Pending = nil
}

// PlaceShip puts a ship on the player board. On any error the state is unchanged.
// Placing the last of the five kinds moves the game into combat.
func (s *State) PlaceShip(kind board.ShipKind, col, row int, horizontal bool) error {
	if s.Phase != PhasePlacing {
		return ErrWrongPhase
	}
	if s.IsPlaced(kind) {
		return fmt.Errorf("%s: %w", kind, ErrShipAlreadyPlaced)
	}
	if !board.CanPlace(&s.PlayerGrid, kind, col, row, horizontal) {
		return fmt.Errorf("%s at %s: %w", kind, board.Coord{Col: col, Row: row}, ErrIllegalPlacement)
	}

	board.ApplyPlacement(&s.PlayerGrid, &s.Fleet, kind, col, row, horizontal)
	s.Placed = append(s.Placed, kind)
	if s.Pending != nil && s.Pending.Kind == kind {
		s.Pending = nil
	}
	if len(s.Placed) == board.KindCount {
		s.Phase = PhaseCombat
	}
	return nil
}

// PlacePending places the selected ship at the cursor.
func (s *State) PlacePending() error {
	if s.Pending == nil {
		return ErrNoPendingShip
	}
	return s.PlaceShip(s.Pending.Kind, s.Cursor.Col, s.Cursor.Row, s.Pending.Horizontal)
}

// CanPlacePending reports whether the selected ship fits at the cursor.
func (s *State) CanPlacePending() bool {
	if s.Pending == nil {
		return false
	}
	return board.CanPlace(&s.PlayerGrid, s.Pending.Kind, s.Cursor.Col, s.Cursor.Row, s.Pending.Horizontal)
}

// Fire resolves an opponent shot against the player board.
// A Defeat outcome ends the game.
func (s *State) Fire(col, row int) (board.ShotResult, error) {
	switch s.Phase {
	case PhasePlacing:
		return board.ShotResult{}, ErrWrongPhase
	case PhaseFinished:
		return board.ShotResult{}, ErrGameOver
	}

	res, err := board.Fire(&s.PlayerGrid, s.Fleet, col, row)
	if err != nil {
		return res, err
	}
	if res.Outcome == board.OutcomeDefeat {
		s.Phase = PhaseFinished
	}
	return res, nil
}

// MarkOpponent records the result of the player's own shot on the
// opponent board. Only Hit, Miss and Empty (clear) are accepted.
func (s *State) MarkOpponent(col, row int, mark board.CellState) error {
	if !board.InBounds(col, row) {
		return fmt.Errorf("mark at (%d,%d): %w", col, row, board.ErrOutOfBounds)
	}
	if mark == board.Ship {
		return ErrInvalidMark
	}
	s.OpponentGrid.Set(col, row, mark)
	return nil
}

// MoveCursor shifts the cursor, clamped to the board.
func (s *State) MoveCursor(dc, dr int) {
	s.Cursor.Col = core.Clamp(s.Cursor.Col+dc, 0, board.Size-1)
	s.Cursor.Row = core.Clamp(s.Cursor.Row+dr, 0, board.Size-1)
}

// ToggleFocus switches the cursor between the two boards.
// Boards cannot be switched while a ship is being placed.
func (s *State) ToggleFocus() {
	if s.Pending != nil {
		return
	}
	if s.Focus == FocusPlayer {
		s.Focus = FocusOpponent
	} else {
		s.Focus = FocusPlayer
	}
}

// OpponentView returns the opponent board as the firing side may see it:
// only Hit, Miss and Empty.
func (s *State) OpponentView() board.Grid {
	view := s.OpponentGrid
	for row := range board.Size {
		for col := range board.Size {
			if view[row][col] == board.Ship {
				view[row][col] = board.Empty
			}
		}
	}
	return view
}

// Stats counts shots resolved against the player board.
func (s *State) Stats() Stats {
	hits := s.PlayerGrid.Count(board.Hit)
	misses := s.PlayerGrid.Count(board.Miss)
	return Stats{
		Shots:  hits + misses,
		Hits:   hits,
		Misses: misses,
		Sunk:   s.Fleet.SunkCount(&s.PlayerGrid),
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Fleet = s.Fleet.Clone()
	c.Placed = append([]board.ShipKind(nil), s.Placed...)
	if s.Pending != nil {
		p := *s.Pending
		c.Pending = &p
	}
	return &c
}
