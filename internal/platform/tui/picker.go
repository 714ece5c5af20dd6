package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codewheel/internal/core"
	"github.com/vovakirdan/codewheel/internal/wheel"
)

// PickerModel is the Bubble Tea model for the game picker shown before the
// wheel when no game was named on the command line.
type PickerModel struct {
	games    []wheel.Game
	cursor   int
	width    int
	height   int
	keys     *KeyMapper
	quitting bool
	selected *wheel.Game
}

// NewPickerModel creates a new picker model.
func NewPickerModel(width, height int) PickerModel {
	return PickerModel{
		games:  wheel.Games(),
		cursor: 0,
		width:  width,
		height: height,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for picker navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToPickerAction(msg) {
	case PickerActionQuit:
		m.quitting = true
		return m, tea.Quit

	case PickerActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.games)-1)

	case PickerActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.games)-1)

	case PickerActionSelect:
		selected := m.games[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  C O D E   W H E E L  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	subtitle := "Whose journal are you decoding?"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, g := range m.games {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+g.Title(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m PickerModel) Selected() *wheel.Game {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	Game   wheel.Game
	Quit   bool
	Width  int
	Height int
}

// RunPicker runs the game picker and returns the selection result.
func RunPicker(width, height int) (PickerResult, error) {
	model := NewPickerModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Quit: true, Width: width, Height: height}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Quit: true, Width: width, Height: height}, nil
	}

	result := PickerResult{Width: m.width, Height: m.height}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Game = *m.Selected()
	return result, nil
}
