package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to wheel actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// WheelAction represents an action on the wheel screen derived from input.
type WheelAction int

const (
	WheelActionNone WheelAction = iota
	WheelActionQuit
	WheelActionBack
	WheelActionFocusNext
	WheelActionFocusPrev
	WheelActionTurnLeft
	WheelActionTurnRight
	WheelActionCommit
	WheelActionSpiral1
	WheelActionSpiral2
	WheelActionSpiral3
	WheelActionNextGame
	WheelActionBrowse
)

// MapKeyToWheelAction translates a key to a wheel screen action.
func (km *KeyMapper) MapKeyToWheelAction(msg tea.KeyMsg) WheelAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return WheelActionQuit
	case "b", "esc":
		return WheelActionBack
	case "tab", "down", "s", "j": // vim-style j for down
		return WheelActionFocusNext
	case "shift+tab", "up", "w", "k": // vim-style k for up
		return WheelActionFocusPrev
	case "left", "h":
		return WheelActionTurnLeft
	case "right", "l":
		return WheelActionTurnRight
	case "enter", " ":
		return WheelActionCommit
	case "1":
		return WheelActionSpiral1
	case "2":
		return WheelActionSpiral2
	case "3":
		return WheelActionSpiral3
	case "g":
		return WheelActionNextGame
	case "t":
		return WheelActionBrowse
	}

	return WheelActionNone
}

// PickerAction represents a picker-menu action derived from input.
type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionUp
	PickerActionDown
	PickerActionSelect
	PickerActionQuit
)

// MapKeyToPickerAction translates a key to a game picker action.
func (km *KeyMapper) MapKeyToPickerAction(msg tea.KeyMsg) PickerAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return PickerActionQuit
	case "w", "up", "k":
		return PickerActionUp
	case "s", "down", "j":
		return PickerActionDown
	case "enter", " ":
		return PickerActionSelect
	}

	return PickerActionNone
}
