package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-evasion/internal/config"
	"github.com/vovakirdan/space-evasion/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Start with a difficulty picker menu.

Use arrow keys or j/k to navigate, Enter to play.
After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Run history
  Q            - Quit

Examples:
  evasion menu
  evasion menu --mute --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	g, err := openGame()
	if err != nil {
		return err
	}
	defer g.Close()

	name := flagDifficulty
	if name == "" {
		name = g.cfg.Difficulty.Preset
	}
	current, err := config.ParsePreset(name)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for ctx.Err() == nil {
		width, height := terminalSize()
		result, err := tui.RunMenu(g.store, current, width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			if err := tui.RunScoreboard(g.store, string(current), 0, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			current = result.Preset
			if err := g.play(ctx, current); err != nil {
				return err
			}
		}
	}
	return nil
}
