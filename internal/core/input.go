package core

// Action is a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, w - cursor up
	ActionDown           // Down arrow, s - cursor down
	ActionLeft           // Left arrow, a - cursor left
	ActionRight          // Right arrow, d - cursor right
	ActionConfirm        // Enter - place pending ship / fire at cursor
	ActionRotate         // Space - rotate pending ship
	ActionCancel         // Esc - drop pending ship
	ActionSwitch         // Tab - switch focused board
	ActionMarkHit        // h, x - mark a hit
	ActionMarkMiss       // m, o - mark a miss
	ActionClear          // c - clear an opponent mark
	ActionReset          // r - start a new game
	ActionShip1          // 1 - select Carrier
	ActionShip2          // 2 - select Battleship
	ActionShip3          // 3 - select Cruiser
	ActionShip4          // 4 - select Submarine
	ActionShip5          // 5 - select Destroyer
	ActionQuit           // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRotate:
		return "Rotate"
	case ActionCancel:
		return "Cancel"
	case ActionSwitch:
		return "Switch"
	case ActionMarkHit:
		return "MarkHit"
	case ActionMarkMiss:
		return "MarkMiss"
	case ActionClear:
		return "Clear"
	case ActionReset:
		return "Reset"
	case ActionShip1, ActionShip2, ActionShip3, ActionShip4, ActionShip5:
		return "Ship"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ShipIndex returns the 0-based catalog index for ActionShip1..ActionShip5.
func (a Action) ShipIndex() (int, bool) {
	if a < ActionShip1 || a > ActionShip5 {
		return 0, false
	}
	return int(a - ActionShip1), true
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	// Actions in arrival order; duplicates are kept so two quick presses
	// of the same key both move the cursor.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
