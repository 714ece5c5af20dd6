package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToWheelAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected WheelAction
	}{
		{"q quits", runeKey("q"), WheelActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, WheelActionQuit},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, WheelActionBack},
		{"b goes back", runeKey("b"), WheelActionBack},
		{"tab cycles focus", tea.KeyMsg{Type: tea.KeyTab}, WheelActionFocusNext},
		{"down cycles focus", tea.KeyMsg{Type: tea.KeyDown}, WheelActionFocusNext},
		{"vim j cycles focus", runeKey("j"), WheelActionFocusNext},
		{"shift+tab cycles focus back", tea.KeyMsg{Type: tea.KeyShiftTab}, WheelActionFocusPrev},
		{"vim k cycles focus back", runeKey("k"), WheelActionFocusPrev},
		{"left turns left", tea.KeyMsg{Type: tea.KeyLeft}, WheelActionTurnLeft},
		{"vim h turns left", runeKey("h"), WheelActionTurnLeft},
		{"right turns right", tea.KeyMsg{Type: tea.KeyRight}, WheelActionTurnRight},
		{"vim l turns right", runeKey("l"), WheelActionTurnRight},
		{"enter commits", tea.KeyMsg{Type: tea.KeyEnter}, WheelActionCommit},
		{"space commits", tea.KeyMsg{Type: tea.KeySpace}, WheelActionCommit},
		{"1 picks first spiral", runeKey("1"), WheelActionSpiral1},
		{"2 picks second spiral", runeKey("2"), WheelActionSpiral2},
		{"3 picks third spiral", runeKey("3"), WheelActionSpiral3},
		{"g cycles game", runeKey("g"), WheelActionNextGame},
		{"t opens browser", runeKey("t"), WheelActionBrowse},
		{"unbound key ignored", runeKey("x"), WheelActionNone},
		{"unbound digit ignored", runeKey("4"), WheelActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action := km.MapKeyToWheelAction(tc.msg)
			if action != tc.expected {
				t.Errorf("MapKeyToWheelAction(%q) = %v, expected %v", tc.msg.String(), action, tc.expected)
			}
		})
	}
}

func TestMapKeyToPickerAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected PickerAction
	}{
		{"q quits", runeKey("q"), PickerActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, PickerActionQuit},
		{"up moves up", tea.KeyMsg{Type: tea.KeyUp}, PickerActionUp},
		{"vim k moves up", runeKey("k"), PickerActionUp},
		{"down moves down", tea.KeyMsg{Type: tea.KeyDown}, PickerActionDown},
		{"vim j moves down", runeKey("j"), PickerActionDown},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, PickerActionSelect},
		{"space selects", tea.KeyMsg{Type: tea.KeySpace}, PickerActionSelect},
		{"unbound key ignored", runeKey("z"), PickerActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action := km.MapKeyToPickerAction(tc.msg)
			if action != tc.expected {
				t.Errorf("MapKeyToPickerAction(%q) = %v, expected %v", tc.msg.String(), action, tc.expected)
			}
		})
	}
}
