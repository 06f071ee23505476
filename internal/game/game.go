package game

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/savegame"
)

// ErrNoStore is returned by Save and Load when the game has no save store.
var ErrNoStore = errors.New("game: saving is not configured")

// Game drives a State from per-tick input and draws it onto a core.Screen.
type Game struct {
	state  *State
	store  *savegame.Store
	logger *log.Logger

	tick        uint64
	tickRate    int
	combatStart uint64 // tick at which combat began

	message string // last command result
	isError bool

	screenW int
	screenH int
}

// NewGame creates a controller. store may be nil, in which case Save and
// Load report ErrNoStore.
func NewGame(store *savegame.Store, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		state:  New(),
		store:  store,
		logger: logger,
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Battleship Tracker"
}

// Reset starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = New()
	g.tick = 0
	g.combatStart = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.message = ""
	g.isError = false
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Current returns the underlying game state. Callers must not keep it
// across a Load or Reset.
func (g *Game) Current() *State {
	return g.state
}

// Step applies every action of the frame in order.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	for _, a := range input.Actions {
		g.apply(a)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	s := g.state

	if idx, ok := a.ShipIndex(); ok {
		kind := board.AllKinds()[idx]
		if err := s.SelectShip(kind); err != nil {
			g.fail(err)
			return
		}
		g.note("")
		return
	}

	switch a {
	case core.ActionUp:
		s.MoveCursor(0, -1)
	case core.ActionDown:
		s.MoveCursor(0, 1)
	case core.ActionLeft:
		s.MoveCursor(-1, 0)
	case core.ActionRight:
		s.MoveCursor(1, 0)
	case core.ActionRotate:
		s.RotatePending()
	case core.ActionCancel:
		if s.Pending != nil {
			s.CancelPending()
			g.note("Placement cancelled")
		}
	case core.ActionSwitch:
		s.ToggleFocus()
	case core.ActionConfirm:
		g.confirm()
	case core.ActionMarkHit:
		g.mark(board.Hit)
	case core.ActionMarkMiss:
		g.mark(board.Miss)
	case core.ActionClear:
		g.mark(board.Empty)
	case core.ActionReset:
		g.state = New()
		g.combatStart = 0
		g.note("Boards cleared")
		g.logger.Debug("game reset")
	}
}

// confirm places the pending ship, or fires at the cursor when the
// player board is focused during combat.
func (g *Game) confirm() {
	s := g.state
	if s.Pending != nil {
		kind := s.Pending.Kind
		if err := s.PlacePending(); err != nil {
			g.fail(err)
			return
		}
		g.note(fmt.Sprintf("%s placed at %s", kind, s.Cursor))
		if s.Phase == PhaseCombat {
			g.combatStart = g.tick
		}
		return
	}
	if s.Focus == FocusPlayer {
		g.fire()
	}
}

// mark applies a tracker mark on the opponent board, or resolves a shot
// on the player board.
func (g *Game) mark(m board.CellState) {
	s := g.state
	if s.Pending != nil {
		return
	}
	if s.Focus == FocusOpponent {
		if err := s.MarkOpponent(s.Cursor.Col, s.Cursor.Row, m); err != nil {
			g.fail(err)
			return
		}
		if m == board.Empty {
			g.note(fmt.Sprintf("Cleared %s", s.Cursor))
		} else {
			g.note(fmt.Sprintf("Marked %s at %s", m, s.Cursor))
		}
		return
	}
	if m == board.Empty {
		g.fail(errors.New("shots on your own board cannot be cleared"))
		return
	}
	g.fire()
}

func (g *Game) fire() {
	s := g.state
	at := s.Cursor
	res, err := s.Fire(at.Col, at.Row)
	if err != nil {
		g.fail(err)
		return
	}
	switch res.Outcome {
	case board.OutcomeAlreadyTargeted:
		g.note(fmt.Sprintf("%s was already targeted", at))
	case board.OutcomeDefeat:
		g.note(fmt.Sprintf("%s: %s. The whole fleet is sunk!", at, res))
		g.logger.Info("fleet defeated", "shots", s.Stats().Shots)
	default:
		g.note(fmt.Sprintf("%s: %s", at, res))
	}
}

func (g *Game) note(msg string) {
	g.message = msg
	g.isError = false
}

func (g *Game) fail(err error) {
	g.message = err.Error()
	g.isError = true
}

// Save stores the current game under name, generating one when empty.
func (g *Game) Save(name string) (string, error) {
	if g.store == nil {
		return "", ErrNoStore
	}
	saved, err := Save(g.store, g.state, name)
	if err != nil {
		g.fail(err)
		return "", err
	}
	g.note(fmt.Sprintf("Saved as %q", saved))
	return saved, nil
}

// Load replaces the current game with a saved one. On error the current
// game is kept.
func (g *Game) Load(name string) error {
	if g.store == nil {
		return ErrNoStore
	}
	st, err := Load(g.store, name)
	if err != nil {
		g.fail(err)
		return err
	}
	g.state = st
	g.combatStart = g.tick
	g.note(fmt.Sprintf("Loaded %q", name))
	return nil
}

// Finished reports whether the player's fleet has been sunk.
func (g *Game) Finished() bool {
	return g.state.Phase == PhaseFinished
}

// CombatSeconds returns the time spent in combat so far.
func (g *Game) CombatSeconds() int {
	if g.state.Phase == PhasePlacing || g.tickRate <= 0 {
		return 0
	}
	return int((g.tick - g.combatStart) / uint64(g.tickRate))
}

// Message returns the last command result and whether it was an error.
func (g *Game) Message() (string, bool) {
	return g.message, g.isError
}

// Status returns the placement status line.
func (g *Game) Status() string {
	s := g.state
	if p := s.Pending; p != nil {
		orient := "Vertical"
		if p.Horizontal {
			orient = "Horizontal"
		}
		return fmt.Sprintf("Placing %s - %s | Space: Rotate | Enter: Place | Esc: Cancel", p.Kind, orient)
	}

	remaining := s.Remaining()
	if len(remaining) == 0 {
		if s.Phase == PhaseFinished {
			return "All ships sunk. Press R to start over."
		}
		return "All ships placed! Game ready."
	}
	parts := make([]string, 0, len(remaining))
	for _, k := range remaining {
		parts = append(parts, fmt.Sprintf("%d:%s(%d)", int(k)+1, k, k.Length()))
	}
	return "Ships to place: " + strings.Join(parts, " | ")
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    string(g.state.Phase),
		GameOver: g.state.Phase == PhaseFinished,
		Status:   g.Status(),
	}
}
