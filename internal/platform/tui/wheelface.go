package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/codewheel/internal/core"
	"github.com/vovakirdan/codewheel/internal/wheel"
)

// Minimum terminal size the wheel face fits in. Below this the renderer
// shows a resize hint instead of a clipped wheel.
const (
	MinFaceWidth  = 60
	MinFaceHeight = 18
)

// Radius caps so the face stays wheel-shaped on very large terminals.
const (
	maxOuterRX = 30
	maxOuterRY = 10
)

// focusTarget identifies which wheel control the turn keys act on.
type focusTarget int

const (
	focusOuter focusTarget = iota
	focusInner
	focusSpiral
	numFocusTargets
)

// label returns the control name shown in the status line.
func (f focusTarget) label() string {
	switch f {
	case focusOuter:
		return "Espuar"
	case focusInner:
		return "Dethek"
	case focusSpiral:
		return "Spiral"
	default:
		return "?"
	}
}

// faceView is everything the face renderer needs for one frame.
type faceView struct {
	game   wheel.Game
	sel    wheel.Selection // committed choices
	outer  wheel.Symbol    // outer ring cursor
	inner  wheel.Symbol    // inner ring cursor
	spiral wheel.Spiral    // spiral cursor
	word   string          // decoded word or placeholder
	focus  focusTarget
	ascii  bool
}

// ringPoint returns the cell for ring position i on an ellipse centered at
// (cx, cy). Position 0 sits at twelve o'clock and positions advance
// clockwise, matching the printed wheel.
func ringPoint(cx, cy, rx, ry, i int) (int, int) {
	theta := 2*math.Pi*float64(i)/wheel.AlphabetSize - math.Pi/2
	x := cx + int(math.Round(float64(rx)*math.Cos(theta)))
	y := cy + int(math.Round(float64(ry)*math.Sin(theta)))
	return x, y
}

// faceRadii computes the outer ring radii for a screen size.
func faceRadii(w, h int) (rx, ry int) {
	rx = core.Min((w-4)/2, maxOuterRX)
	ry = core.Min((h-6)/2, maxOuterRY)
	return rx, ry
}

// spiralColors maps each spiral to the path color printed on the wheel.
var spiralColors = [wheel.NumSpirals]core.Color{
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightRed,
}

// DrawFace renders the wheel onto the screen buffer: the game title, both
// symbol rings, the three spiral marks, the word window, and the help line.
func DrawFace(s *core.Screen, v faceView) {
	s.Clear()
	w, h := s.Width(), s.Height()

	if w < MinFaceWidth || h < MinFaceHeight {
		msg := fmt.Sprintf("Terminal too small (need %dx%d)", MinFaceWidth, MinFaceHeight)
		s.DrawTextCentered(h/2, msg, core.ColorBrightRed)
		return
	}

	s.DrawTextCentered(0, v.game.Title(), core.ColorBrightWhite)
	drawStatus(s, v, 1)

	cx, cy := w/2, h/2
	rx, ry := faceRadii(w, h)
	rx2, ry2 := rx*2/3, ry*2/3

	// Outer (Espuar) ring
	for i := wheel.Symbol(0); i < wheel.AlphabetSize; i++ {
		x, y := ringPoint(cx, cy, rx, ry, int(i))
		color := core.ColorBrightCyan
		if i == v.outer {
			color = cursorColor(v.sel.First != nil)
		}
		s.SetCell(x, y, core.Cell{Rune: glyphFor(wheel.Espuar, i, v.ascii), Color: color})
	}

	// Inner (Dethek) ring
	for i := wheel.Symbol(0); i < wheel.AlphabetSize; i++ {
		x, y := ringPoint(cx, cy, rx2, ry2, int(i))
		color := core.ColorOrange
		if i == v.inner {
			color = cursorColor(v.sel.Second != nil)
		}
		s.SetCell(x, y, core.Cell{Rune: glyphFor(wheel.Dethek, i, v.ascii), Color: color})
	}

	// Spiral entry marks between the rings
	rmx, rmy := (rx+rx2)/2, (ry+ry2)/2
	for k := wheel.Spiral(0); k < wheel.NumSpirals; k++ {
		theta := 2*math.Pi*float64(k)/wheel.NumSpirals - math.Pi/2
		x := cx + int(math.Round(float64(rmx)*math.Cos(theta)))
		y := cy + int(math.Round(float64(rmy)*math.Sin(theta)))
		color := core.ColorGray
		if v.sel.Spiral != nil && *v.sel.Spiral == k {
			color = spiralColors[k]
		}
		s.SetCell(x, y, core.Cell{Rune: rune('1' + k), Color: color})
	}

	// Word window at the hub
	window := core.NewRect(cx-7, cy-1, 14, 3)
	s.DrawBox(window, core.ColorGray)
	wordColor := core.ColorGray
	if v.sel.Complete() {
		wordColor = core.ColorBrightGreen
	}
	wx, wy := window.Center()
	s.DrawTextColored(wx-len([]rune(v.word))/2, wy, v.word, wordColor)

	help := "h/l: Turn | Tab: Ring | Enter: Set | 1-3: Spiral | G: Game | T: Words | Q: Quit"
	s.DrawTextCentered(h-1, help, core.ColorGray)
}

// cursorColor distinguishes a committed dial position from one the cursor
// is merely resting on.
func cursorColor(committed bool) core.Color {
	if committed {
		return core.ColorBrightYellow
	}
	return core.ColorBrightWhite
}

// drawStatus renders the three dial readouts, highlighting the focused one.
func drawStatus(s *core.Screen, v faceView, y int) {
	type segment struct {
		text      string
		committed bool
		focus     focusTarget
	}

	segs := []segment{
		{fmt.Sprintf("%s %c", focusOuter.label(), glyphFor(wheel.Espuar, v.outer, v.ascii)), v.sel.First != nil, focusOuter},
		{fmt.Sprintf("%s %c", focusInner.label(), glyphFor(wheel.Dethek, v.inner, v.ascii)), v.sel.Second != nil, focusInner},
		{fmt.Sprintf("%s %d", focusSpiral.label(), v.spiral+1), v.sel.Spiral != nil, focusSpiral},
	}

	total := 0
	for i, seg := range segs {
		text := seg.text
		if seg.focus == v.focus {
			text = "[" + text + "]"
		}
		segs[i].text = text
		total += len([]rune(text))
	}
	total += (len(segs) - 1) * 3

	x := (s.Width() - total) / 2
	for _, seg := range segs {
		color := core.ColorGray
		switch {
		case seg.focus == v.focus:
			color = core.ColorBrightYellow
		case seg.committed:
			color = core.ColorWhite
		}
		s.DrawTextColored(x, y, seg.text, color)
		x += len([]rune(seg.text)) + 3
	}
}
