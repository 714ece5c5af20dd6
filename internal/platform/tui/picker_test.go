package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codewheel/internal/wheel"
)

func TestPickerCursorStaysInRange(t *testing.T) {
	m := NewPickerModel(80, 24)

	for i := 0; i < 3; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(PickerModel)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after stepping above the first game, expected 0", m.cursor)
	}

	for i := 0; i < wheel.NumGames+2; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(PickerModel)
	}
	if m.cursor != wheel.NumGames-1 {
		t.Errorf("cursor = %d after stepping past the last game, expected %d", m.cursor, wheel.NumGames-1)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)
	if m.Selected() == nil || *m.Selected() != wheel.Hillsfar {
		t.Errorf("Selected() = %v, expected the last game in the list", m.Selected())
	}
}

func TestPickerQuit(t *testing.T) {
	m := NewPickerModel(80, 24)

	next, _ := m.Update(runeKey("q"))
	m = next.(PickerModel)

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q, expected true")
	}
	if m.Selected() != nil {
		t.Errorf("Selected() = %v after quit, expected nil", *m.Selected())
	}
}

func TestPickerViewListsGames(t *testing.T) {
	m := NewPickerModel(80, 24)
	view := m.View()

	for _, g := range wheel.Games() {
		if !strings.Contains(view, g.Title()) {
			t.Errorf("picker view missing %q", g.Title())
		}
	}
	if !strings.Contains(view, "> "+wheel.PoolOfRadiance.Title()) {
		t.Error("picker view does not mark the first game as selected")
	}
}
