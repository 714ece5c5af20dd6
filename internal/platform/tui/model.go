// Package tui provides the Bubble Tea integration for the decoder wheel.
// It handles the terminal UI loop, input mapping, and face rendering.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codewheel/internal/core"
	"github.com/vovakirdan/codewheel/internal/wheel"
)

// wordDisplay is the notification target registered with the selection
// state. Bubble Tea copies the model by value on every update, so the
// display lives behind a pointer that survives those copies.
type wordDisplay struct {
	mu   sync.Mutex
	word string
}

func (d *wordDisplay) set(word string) {
	d.mu.Lock()
	d.word = word
	d.mu.Unlock()
}

func (d *wordDisplay) current() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.word
}

// WheelModel is the Bubble Tea model for the wheel screen. Turning a ring
// commits the new position to the selection state, which pushes the decoded
// word back through the display; the view only ever reads the pushed value.
type WheelModel struct {
	state   *wheel.State
	display *wordDisplay
	screen  *core.Screen
	keys    *KeyMapper

	game   wheel.Game
	outer  wheel.Symbol // outer ring cursor
	inner  wheel.Symbol // inner ring cursor
	spiral wheel.Spiral // spiral cursor
	focus  focusTarget
	ascii  bool

	quitting  bool
	goingBack bool
	browsing  bool
}

// NewWheelModel creates the wheel screen for the given game.
func NewWheelModel(game wheel.Game, width, height int, ascii bool) WheelModel {
	state := wheel.NewState()
	display := &wordDisplay{}
	// Fires immediately, so the window shows the placeholder before the
	// first key press.
	state.SetNotify(display.set)
	state.ChooseGame(game)

	return WheelModel{
		state:   state,
		display: display,
		screen:  core.NewScreen(width, height),
		keys:    NewKeyMapper(),
		game:    game,
		ascii:   ascii,
	}
}

// Init initializes the model.
func (m WheelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m WheelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for the wheel.
func (m WheelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToWheelAction(msg) {
	case WheelActionQuit:
		m.quitting = true
		return m, tea.Quit

	case WheelActionBack:
		m.goingBack = true
		return m, tea.Quit

	case WheelActionBrowse:
		m.browsing = true
		return m, tea.Quit

	case WheelActionFocusNext:
		m.focus = (m.focus + 1) % numFocusTargets

	case WheelActionFocusPrev:
		m.focus = (m.focus + numFocusTargets - 1) % numFocusTargets

	case WheelActionTurnLeft:
		m.turn(-1)

	case WheelActionTurnRight:
		m.turn(1)

	case WheelActionCommit:
		m.commit()

	case WheelActionSpiral1:
		m.setSpiral(0)

	case WheelActionSpiral2:
		m.setSpiral(1)

	case WheelActionSpiral3:
		m.setSpiral(2)

	case WheelActionNextGame:
		m.game = (m.game + 1) % wheel.NumGames
		m.state.ChooseGame(m.game)
	}

	return m, nil
}

// wrap keeps a ring position in [0, n) as the cursor turns past either end.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// turn rotates the focused control and commits the new position.
func (m *WheelModel) turn(delta int) {
	switch m.focus {
	case focusOuter:
		m.outer = wheel.Symbol(wrap(int(m.outer)+delta, wheel.AlphabetSize))
		m.state.ChooseSymbol(wheel.Espuar, m.outer)
	case focusInner:
		m.inner = wheel.Symbol(wrap(int(m.inner)+delta, wheel.AlphabetSize))
		m.state.ChooseSymbol(wheel.Dethek, m.inner)
	case focusSpiral:
		m.spiral = wheel.Spiral(wrap(int(m.spiral)+delta, wheel.NumSpirals))
		m.state.ChooseSpiral(m.spiral)
	}
}

// commit locks in the focused control at its current cursor position
// without turning it, for selecting the position the cursor starts on.
func (m *WheelModel) commit() {
	switch m.focus {
	case focusOuter:
		m.state.ChooseSymbol(wheel.Espuar, m.outer)
	case focusInner:
		m.state.ChooseSymbol(wheel.Dethek, m.inner)
	case focusSpiral:
		m.state.ChooseSpiral(m.spiral)
	}
}

// setSpiral jumps the spiral directly, as the number keys do.
func (m *WheelModel) setSpiral(sp wheel.Spiral) {
	m.spiral = sp
	m.state.ChooseSpiral(sp)
}

// View renders the current wheel face.
func (m WheelModel) View() string {
	if m.quitting || m.goingBack || m.browsing {
		return ""
	}

	DrawFace(m.screen, faceView{
		game:   m.game,
		sel:    m.state.Selection(),
		outer:  m.outer,
		inner:  m.inner,
		spiral: m.spiral,
		word:   m.display.current(),
		focus:  m.focus,
		ascii:  m.ascii,
	})

	return RenderScreen(m.screen)
}

// Game returns the game currently dialed in, which the g key may have
// changed since the model was created.
func (m WheelModel) Game() wheel.Game {
	return m.game
}

// WheelResult tells the caller why the wheel screen exited.
type WheelResult struct {
	Game   wheel.Game
	Browse bool // open the word table browser
	Back   bool // return to the game picker
	Quit   bool
}

// RunWheel runs the wheel screen and reports how it was left.
func RunWheel(game wheel.Game, width, height int, ascii bool) (WheelResult, error) {
	model := NewWheelModel(game, width, height, ascii)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return WheelResult{Game: game, Quit: true}, err
	}

	m, ok := finalModel.(WheelModel)
	if !ok {
		return WheelResult{Game: game, Quit: true}, nil
	}

	result := WheelResult{Game: m.Game()}
	switch {
	case m.browsing:
		result.Browse = true
	case m.goingBack:
		result.Back = true
	default:
		result.Quit = true
	}
	return result, nil
}
