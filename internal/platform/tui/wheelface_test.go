package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/codewheel/internal/core"
	"github.com/vovakirdan/codewheel/internal/wheel"
)

func TestRingPointPlacement(t *testing.T) {
	// Every ring position must land on its own cell inside the screen, for
	// both rings, at the minimum size and at common larger sizes.
	sizes := []struct{ w, h int }{
		{MinFaceWidth, MinFaceHeight},
		{80, 24},
		{100, 30},
		{120, 40},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.w, size.h), func(t *testing.T) {
			cx, cy := size.w/2, size.h/2
			rx, ry := faceRadii(size.w, size.h)
			rings := []struct {
				name   string
				rx, ry int
			}{
				{"outer", rx, ry},
				{"inner", rx * 2 / 3, ry * 2 / 3},
			}

			seen := make(map[[2]int]string)
			for _, ring := range rings {
				for i := 0; i < wheel.AlphabetSize; i++ {
					x, y := ringPoint(cx, cy, ring.rx, ring.ry, i)
					if x < 0 || x >= size.w || y < 0 || y >= size.h {
						t.Errorf("%s position %d lands outside the screen at (%d, %d)", ring.name, i, x, y)
					}
					at := [2]int{x, y}
					if prev, taken := seen[at]; taken {
						t.Errorf("%s position %d collides with %s at (%d, %d)", ring.name, i, prev, x, y)
					}
					seen[at] = fmt.Sprintf("%s position %d", ring.name, i)
				}
			}
		})
	}
}

func TestRingPointTwelveOClock(t *testing.T) {
	// Position 0 sits at the top of the ring, like the printed wheel's
	// index mark.
	x, y := ringPoint(40, 12, 30, 9, 0)
	if x != 40 || y != 3 {
		t.Errorf("ringPoint(position 0) = (%d, %d), expected (40, 3)", x, y)
	}
}

func TestDrawFacePlaceholderWindow(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawFace(s, faceView{
		game: wheel.PoolOfRadiance,
		word: wheel.Placeholder,
	})

	center := s.Row(12)
	if !strings.Contains(center, wheel.Placeholder) {
		t.Errorf("window row %q does not show the placeholder", center)
	}
	if !strings.Contains(s.Row(0), "Pool of Radiance") {
		t.Errorf("title row %q does not show the game title", s.Row(0))
	}
	if !strings.Contains(s.Row(23), "Spiral") {
		t.Errorf("help row %q does not show the controls", s.Row(23))
	}
}

func TestDrawFaceDecodedWord(t *testing.T) {
	g := wheel.PoolOfRadiance
	first := wheel.Symbol(0)
	second := wheel.Symbol(0)
	spiral := wheel.Spiral(0)

	s := core.NewScreen(80, 24)
	DrawFace(s, faceView{
		game:   g,
		sel:    wheel.Selection{Game: &g, First: &first, Second: &second, Spiral: &spiral},
		outer:  first,
		inner:  second,
		spiral: spiral,
		word:   "BEWARE",
	})

	// The word is centered on the hub at (40, 12).
	start := 40 - len("BEWARE")/2
	for i, r := range "BEWARE" {
		c := s.GetCell(start+i, 12)
		if c.Rune != r {
			t.Fatalf("window cell (%d, 12) = %q, expected %q from the decoded word", start+i, c.Rune, r)
		}
		if c.Color != core.ColorBrightGreen {
			t.Errorf("decoded word cell (%d, 12) drawn in %v, expected ColorBrightGreen", start+i, c.Color)
		}
	}
}

func TestDrawFaceCursorHighlight(t *testing.T) {
	first := wheel.Symbol(5)

	// Uncommitted cursor
	s := core.NewScreen(80, 24)
	DrawFace(s, faceView{
		game:  wheel.Hillsfar,
		outer: first,
		word:  wheel.Placeholder,
	})

	rx, ry := faceRadii(80, 24)
	x, y := ringPoint(40, 12, rx, ry, int(first))
	if c := s.GetCell(x, y); c.Color != core.ColorBrightWhite {
		t.Errorf("resting cursor color = %v, expected ColorBrightWhite", c.Color)
	}

	// Committed cursor
	DrawFace(s, faceView{
		game:  wheel.Hillsfar,
		sel:   wheel.Selection{First: &first},
		outer: first,
		word:  wheel.Placeholder,
	})
	c := s.GetCell(x, y)
	if c.Color != core.ColorBrightYellow {
		t.Errorf("committed cursor color = %v, expected ColorBrightYellow", c.Color)
	}
	if c.Rune != espuarGlyphs[first] {
		t.Errorf("cursor cell shows %q, expected the position %d glyph %q", c.Rune, first, espuarGlyphs[first])
	}
}

func TestDrawFaceTooSmall(t *testing.T) {
	s := core.NewScreen(40, 10)
	DrawFace(s, faceView{
		game: wheel.PoolOfRadiance,
		word: wheel.Placeholder,
	})

	if !strings.Contains(s.Row(5), "Terminal too small") {
		t.Errorf("small screen row %q does not show the resize hint", s.Row(5))
	}
	if strings.Contains(s.String(), wheel.Placeholder) {
		t.Error("small screen should not draw the word window")
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		name     string
		alphabet wheel.Alphabet
		symbol   wheel.Symbol
		ascii    bool
		expected rune
	}{
		{"first espuar glyph", wheel.Espuar, 0, false, 'Ⰰ'},
		{"last espuar glyph", wheel.Espuar, 34, false, 'Ⱒ'},
		{"first dethek glyph", wheel.Dethek, 0, false, 'ᚠ'},
		{"last dethek glyph", wheel.Dethek, 34, false, 'ᛂ'},
		{"ascii digit", wheel.Espuar, 0, true, '0'},
		{"ascii last digit", wheel.Dethek, 9, true, '9'},
		{"ascii first letter", wheel.Espuar, 10, true, 'A'},
		{"ascii last letter", wheel.Dethek, 34, true, 'Y'},
		{"out of range", wheel.Espuar, 35, false, '?'},
		{"translate slot", wheel.Dethek, wheel.Translate, false, '?'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := glyphFor(tc.alphabet, tc.symbol, tc.ascii)
			if got != tc.expected {
				t.Errorf("glyphFor(%v, %d, %v) = %q, expected %q", tc.alphabet, tc.symbol, tc.ascii, got, tc.expected)
			}
		})
	}
}

func TestRingGlyphsDistinct(t *testing.T) {
	seen := make(map[rune]string)
	for i, r := range espuarGlyphs {
		if prev, dup := seen[r]; dup {
			t.Errorf("espuar glyph %d repeats %s", i, prev)
		}
		seen[r] = fmt.Sprintf("espuar %d", i)
	}
	for i, r := range dethekGlyphs {
		if prev, dup := seen[r]; dup {
			t.Errorf("dethek glyph %d repeats %s", i, prev)
		}
		seen[r] = fmt.Sprintf("dethek %d", i)
	}
}
