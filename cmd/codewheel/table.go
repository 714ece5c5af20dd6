package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codewheel/internal/wheel"
)

var tableCmd = &cobra.Command{
	Use:   "table <game>",
	Short: "Print a game's answer word table",
	Long: `Display all 36 answer words for the specified game in window order.

Examples:
  codewheel table poolrad
  codewheel table hillsfar`,
	Args: cobra.ExactArgs(1),
	Run:  runTable,
}

func runTable(cmd *cobra.Command, args []string) {
	game, err := wheel.ParseGame(args[0])
	if err != nil {
		logger.Fatal("unknown game", "game", args[0], "hint", "run 'codewheel games'")
	}

	tbl := wheel.Table(game)

	fmt.Printf("Word Table - %s\n", game.Title())
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %s\n", "Index", "Word")
	fmt.Printf("  %-5s  %s\n", "-----", "----")

	// Print words
	for i := 0; i < wheel.WordsPerTable; i++ {
		fmt.Printf("  %-5d  %s\n", i, tbl.Word(i))
	}
}
