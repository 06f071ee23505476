package game

import (
	"github.com/vovakirdan/tui-battleship/internal/board"
)

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Placed    int
	Remaining int
	CursorCol int
	CursorRow int
	Focus     Focus
	Pending   bool
	Stats     Stats
	Message   string
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Tick:      g.tick,
		Phase:     s.Phase,
		Placed:    len(s.Placed),
		Remaining: board.KindCount - len(s.Placed),
		CursorCol: s.Cursor.Col,
		CursorRow: s.Cursor.Row,
		Focus:     s.Focus,
		Pending:   s.Pending != nil,
		Stats:     s.Stats(),
		Message:   g.message,
	}
}
