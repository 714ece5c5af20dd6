// codewheel reproduces the cardboard decoder wheel bundled with three
// late-80s AD&D adventure games. Dial a symbol on each alphabet ring, pick
// a spiral, and read the six-letter verification word in the window.
//
// Usage:
//
//	codewheel games             - List the games the wheel covers
//	codewheel decode            - Look up a word from dial positions
//	codewheel table <game>      - Print a game's full word table
//	codewheel spin [<game>]     - Dial the wheel interactively
//
// Global flags:
//
//	--verbose       - Enable debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/codewheel/internal/wheel"
)

var (
	// Global flags
	flagVerbose bool
)

// logger reports diagnostics on stderr so stdout stays clean for lookups.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "codewheel",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codewheel",
	Short: "Decoder wheel for the Adventurer's Journal verification prompts",
	Long: `codewheel is a terminal rendition of the code wheel shipped with
Pool of Radiance, Curse of the Azure Bonds, and Hillsfar. When a game asks
for the word at two journal symbols, dial them here instead of digging the
cardboard out of the box.

Available commands:
  games    - Show the games the wheel covers
  decode   - One-shot lookup from dial positions
  table    - Print a game's 36-word table
  spin     - Interactive wheel

Examples:
  codewheel games
  codewheel decode --game poolrad --espuar 0 --dethek 0 --spiral 1
  codewheel table curse
  codewheel spin hillsfar`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		// The word tables are embedded at build time; refuse to run with
		// broken data rather than decode garbage.
		if err := wheel.Init(); err != nil {
			logger.Fatal("invalid embedded word tables", "error", err)
		}
		logger.Debug("word tables loaded", "games", wheel.NumGames)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(spinCmd)
}
