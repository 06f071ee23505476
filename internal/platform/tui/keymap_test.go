package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"1 carrier", runeKey('1'), core.ActionShip1, false},
		{"3 cruiser", runeKey('3'), core.ActionShip3, false},
		{"5 destroyer", runeKey('5'), core.ActionShip5, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotate, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSwitch, false},
		{"h", runeKey('h'), core.ActionMarkHit, false},
		{"m", runeKey('m'), core.ActionMarkMiss, false},
		{"c", runeKey('c'), core.ActionClear, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('d'), &frame) {
		t.Error("d should not quit")
	}
	km.MapKeyToFrame(runeKey('z'), &frame)
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}

	if len(frame.Actions) != 1 || !frame.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only Right", frame.Actions)
	}
}
