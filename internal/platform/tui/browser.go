package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/codewheel/internal/core"
	"github.com/vovakirdan/codewheel/internal/wheel"
)

// Browser layout constants
const (
	browserTableHeightMin = 5
	browserChromeHeight   = 9 // title, tabs, borders, help
)

// BrowserKeyMap defines the key bindings for the word table browser.
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "t"),
			key.WithHelp("esc/b", "back to wheel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the word table browser.
type BrowserModel struct {
	games      []wheel.Game
	gameCursor int
	table      table.Model
	help       help.Model
	keys       BrowserKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewBrowserModel creates a browser opened on the given game's table.
func NewBrowserModel(game wheel.Game, width, height int) BrowserModel {
	keys := DefaultBrowserKeyMap()
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		games:      wheel.Games(),
		gameCursor: int(game),
		keys:       keys,
		help:       h,
		width:      width,
		height:     height,
	}

	m.table = m.createTable()
	m.loadWords(m.games[m.gameCursor])

	return m
}

// browserTableHeight sizes the table viewport for a terminal height, keeping
// a few words visible even on cramped terminals.
func browserTableHeight(h int) int {
	return core.Max(h-browserChromeHeight, browserTableHeightMin)
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Index", Width: 7},
		{Title: "Word", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(browserTableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadWords fills the table with the given game's answer words.
func (m *BrowserModel) loadWords(g wheel.Game) {
	words := wheel.Table(g).Words()
	rows := make([]table.Row, len(words))
	for i, w := range words {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i),
			w,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.gameCursor = (m.gameCursor + 1) % len(m.games)
			m.loadWords(m.games[m.gameCursor])
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.gameCursor--
			if m.gameCursor < 0 {
				m.gameCursor = len(m.games) - 1
			}
			m.loadWords(m.games[m.gameCursor])
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadWords(m.games[m.gameCursor])
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("WORD TABLE - %s", m.games[m.gameCursor].Title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the game switcher tabs above the table.
func (m BrowserModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := g.Title()
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show current game with arrows
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title())
	}
	return centerText(tabLine, m.width)
}

// IsGoingBack returns true if user wants to go back to the wheel.
func (m BrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// Game returns the game whose table is currently shown.
func (m BrowserModel) Game() wheel.Game {
	return m.games[m.gameCursor]
}

// RunBrowser runs the word table browser.
// Returns the game left showing and whether the user wants back to the wheel.
func RunBrowser(game wheel.Game, width, height int) (wheel.Game, bool, error) {
	model := NewBrowserModel(game, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return game, false, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return game, false, nil
	}

	if m.IsQuitting() {
		return m.Game(), false, nil
	}
	return m.Game(), m.IsGoingBack(), nil
}
