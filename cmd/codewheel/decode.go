package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codewheel/internal/wheel"
)

var (
	flagGame   string
	flagEspuar int
	flagDethek int
	flagSpiral int
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Look up the answer word for a dial setting",
	Long: `Decode one verification prompt without the interactive wheel.

Ring positions count clockwise from the wheel's index mark, starting at 0.
Spirals are numbered 1 to 3 as printed on the inner disk.

Examples:
  codewheel decode --game poolrad --espuar 0 --dethek 0 --spiral 1
  codewheel decode --game curse --espuar 12 --dethek 30 --spiral 3
  codewheel decode --game 2 --espuar 7 --dethek 7`,
	Run: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&flagGame, "game", "", "Game id or index (see 'codewheel games')")
	decodeCmd.Flags().IntVar(&flagEspuar, "espuar", -1, "Outer ring position (0-34)")
	decodeCmd.Flags().IntVar(&flagDethek, "dethek", -1, "Inner ring position (0-34)")
	decodeCmd.Flags().IntVar(&flagSpiral, "spiral", 1, "Spiral to read (1-3)")
}

func runDecode(cmd *cobra.Command, args []string) {
	game, err := wheel.ParseGame(flagGame)
	if err != nil {
		logger.Fatal("unknown game", "game", flagGame, "hint", "run 'codewheel games'")
	}

	first, err := wheel.NewSymbol(flagEspuar)
	if err != nil {
		logger.Fatal("bad outer ring position", "error", err)
	}

	second, err := wheel.NewSymbol(flagDethek)
	if err != nil {
		logger.Fatal("bad inner ring position", "error", err)
	}

	// The CLI takes spirals 1-based, like the labels on the disk.
	spiral, err := wheel.NewSpiral(flagSpiral - 1)
	if err != nil {
		logger.Fatal("bad spiral", "spiral", flagSpiral, "hint", "spirals are numbered 1 to 3")
	}

	word := wheel.Lookup(game, first, second, spiral)
	logger.Debug("decoded",
		"game", game.ID(),
		"espuar", int(first),
		"dethek", int(second),
		"spiral", flagSpiral,
		"word", word,
	)

	fmt.Println(word)
}
