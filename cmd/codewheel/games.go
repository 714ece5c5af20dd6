package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codewheel/internal/wheel"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games the wheel covers",
	Long:  `Shows the games whose verification words are printed on the wheel.`,
	Run:   runGames,
}

func runGames(cmd *cobra.Command, args []string) {
	games := wheel.Games()

	fmt.Println("Supported games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID()) > maxIDLen {
			maxIDLen = len(g.ID())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID(), g.Title())
	}

	fmt.Println()
	fmt.Println("Run 'codewheel spin <id>' to dial a wheel.")
}
