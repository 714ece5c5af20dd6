// Package wheel implements the decoder wheel from the Adventurer's Journal
// accessory bundled with three late-80s AD&D adventure games. Dialing one
// symbol from each alphabet ring and picking one of three spirals lines a
// window up with a six-letter verification word for the selected game.
//
// The package is pure lookup logic with no terminal dependencies; input
// mapping and rendering live in the platform layer.
package wheel

import (
	"fmt"
	"strconv"
)

// Game identifies one of the three games covered by the wheel accessory.
type Game int

const (
	PoolOfRadiance Game = iota
	CurseOfTheAzureBonds
	Hillsfar
)

// NumGames is the number of games sharing the wheel.
const NumGames = 3

// ID returns the short identifier used on the command line.
func (g Game) ID() string {
	switch g {
	case PoolOfRadiance:
		return "poolrad"
	case CurseOfTheAzureBonds:
		return "curse"
	case Hillsfar:
		return "hillsfar"
	default:
		return "unknown"
	}
}

// Title returns the boxed name of the game for display.
func (g Game) Title() string {
	switch g {
	case PoolOfRadiance:
		return "Pool of Radiance"
	case CurseOfTheAzureBonds:
		return "Curse of the Azure Bonds"
	case Hillsfar:
		return "Hillsfar"
	default:
		return "Unknown"
	}
}

func (g Game) String() string {
	return g.Title()
}

// Valid reports whether g names one of the covered games.
func (g Game) Valid() bool {
	return g >= 0 && g < NumGames
}

// Games returns all covered games in wheel order.
func Games() []Game {
	return []Game{PoolOfRadiance, CurseOfTheAzureBonds, Hillsfar}
}

// ParseGame resolves a game from its short identifier or its decimal index.
func ParseGame(s string) (Game, error) {
	for _, g := range Games() {
		if s == g.ID() {
			return g, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		if g := Game(i); g.Valid() {
			return g, nil
		}
	}
	return 0, fmt.Errorf("wheel: unknown game %q", s)
}

// Alphabet identifies one of the two symbol rings on the wheel face.
type Alphabet int

const (
	// Espuar is the elvish-styled alphabet printed on the outer ring.
	Espuar Alphabet = iota
	// Dethek is the dwarvish-styled alphabet printed on the inner ring.
	Dethek
)

// AlphabetSize is the number of selectable symbols on each ring.
const AlphabetSize = 35

func (a Alphabet) String() string {
	switch a {
	case Espuar:
		return "Espuar"
	case Dethek:
		return "Dethek"
	default:
		return "Unknown"
	}
}

// Symbol is a position on one of the alphabet rings, in [0, AlphabetSize).
type Symbol int

// Translate is the reserved ring position between the last and first
// symbols. The printed wheel uses it for glyph-at-a-time translation, which
// the decoder does not support, so NewSymbol rejects it along with every
// other out-of-range value.
const Translate Symbol = -1

// NewSymbol validates a ring position.
func NewSymbol(i int) (Symbol, error) {
	if i < 0 || i >= AlphabetSize {
		return 0, fmt.Errorf("wheel: symbol %d out of range [0, %d)", i, AlphabetSize)
	}
	return Symbol(i), nil
}

// Spiral identifies one of the three reading paths marked on the inner disk.
type Spiral int

// NumSpirals is the number of reading paths.
const NumSpirals = 3

// NewSpiral validates a reading path index.
func NewSpiral(i int) (Spiral, error) {
	if i < 0 || i >= NumSpirals {
		return 0, fmt.Errorf("wheel: spiral %d out of range [0, %d)", i, NumSpirals)
	}
	return Spiral(i), nil
}
