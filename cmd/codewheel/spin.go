package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/codewheel/internal/platform/tui"
	"github.com/vovakirdan/codewheel/internal/wheel"
)

var flagASCII bool

var spinCmd = &cobra.Command{
	Use:   "spin [<game>]",
	Short: "Dial the wheel interactively",
	Long: `Open the wheel in the terminal. With no game argument a picker is
shown first.

Controls:
  Left/Right/h/l - Turn the focused ring
  Tab            - Switch between rings and spiral
  Enter/Space    - Lock in the current position
  1-3            - Choose the spiral to read
  G              - Switch game
  T              - Browse the word table
  B/Esc          - Back to the picker
  Q/Ctrl+C       - Quit

Examples:
  codewheel spin
  codewheel spin poolrad
  codewheel spin hillsfar --ascii`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSpin,
}

func init() {
	spinCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Label ring positions 0-9/A-Y instead of journal glyphs")
}

func runSpin(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	var game wheel.Game
	haveGame := false
	if len(args) == 1 {
		g, err := wheel.ParseGame(args[0])
		if err != nil {
			logger.Fatal("unknown game", "game", args[0], "hint", "run 'codewheel games'")
		}
		game = g
		haveGame = true
	}

	// Picker loop
	for {
		if !haveGame {
			pick, err := tui.RunPicker(width, height)
			if err != nil {
				logger.Fatal("picker failed", "error", err)
			}
			width, height = pick.Width, pick.Height
			if pick.Quit {
				return
			}
			game = pick.Game
		}
		// Leaving the wheel with back goes to the picker, even when the
		// game came from the command line.
		haveGame = false

		// Wheel loop: bounce between the wheel and the table browser
		// until the user backs out or quits.
		for {
			result, err := tui.RunWheel(game, width, height, flagASCII)
			if err != nil {
				logger.Fatal("wheel failed", "error", err)
			}
			game = result.Game

			if result.Browse {
				g, back, browseErr := tui.RunBrowser(game, width, height)
				if browseErr != nil {
					logger.Fatal("browser failed", "error", browseErr)
				}
				game = g
				if back {
					continue
				}
				return
			}

			if result.Back {
				break
			}
			return
		}
	}
}
