package tui

import (
	"github.com/vovakirdan/codewheel/internal/wheel"
)

// Ring glyphs are presentation stand-ins for the symbols printed on the
// cardboard wheel: Glagolitic letters for the elvish Espuar ring and runic
// letters for the dwarvish Dethek ring. The decoder only cares about ring
// positions, so any 35 distinct runes per ring would do.
var espuarGlyphs = [wheel.AlphabetSize]rune{
	'Ⰰ', 'Ⰱ', 'Ⰲ', 'Ⰳ', 'Ⰴ', 'Ⰵ', 'Ⰶ', 'Ⰷ', 'Ⰸ', 'Ⰹ', 'Ⰺ', 'Ⰻ',
	'Ⰼ', 'Ⰽ', 'Ⰾ', 'Ⰿ', 'Ⱀ', 'Ⱁ', 'Ⱂ', 'Ⱃ', 'Ⱄ', 'Ⱅ', 'Ⱆ', 'Ⱇ',
	'Ⱈ', 'Ⱉ', 'Ⱊ', 'Ⱋ', 'Ⱌ', 'Ⱍ', 'Ⱎ', 'Ⱏ', 'Ⱐ', 'Ⱑ', 'Ⱒ',
}

var dethekGlyphs = [wheel.AlphabetSize]rune{
	'ᚠ', 'ᚡ', 'ᚢ', 'ᚣ', 'ᚤ', 'ᚥ', 'ᚦ', 'ᚧ', 'ᚨ', 'ᚩ', 'ᚪ', 'ᚫ',
	'ᚬ', 'ᚭ', 'ᚮ', 'ᚯ', 'ᚰ', 'ᚱ', 'ᚲ', 'ᚳ', 'ᚴ', 'ᚵ', 'ᚶ', 'ᚷ',
	'ᚸ', 'ᚹ', 'ᚺ', 'ᚻ', 'ᚼ', 'ᚽ', 'ᚾ', 'ᚿ', 'ᛀ', 'ᛁ', 'ᛂ',
}

// asciiGlyph labels ring positions 0..34 as 0-9 then A-Y for terminals
// without the glyph ranges.
func asciiGlyph(s wheel.Symbol) rune {
	if s < 10 {
		return rune('0' + s)
	}
	return rune('A' + s - 10)
}

// glyphFor returns the display rune for a ring position.
func glyphFor(a wheel.Alphabet, s wheel.Symbol, ascii bool) rune {
	if s < 0 || s >= wheel.AlphabetSize {
		return '?'
	}
	if ascii {
		return asciiGlyph(s)
	}
	switch a {
	case wheel.Espuar:
		return espuarGlyphs[s]
	case wheel.Dethek:
		return dethekGlyphs[s]
	default:
		return '?'
	}
}
