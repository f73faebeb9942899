// evasion is a terminal survival game: dodge and shoot the enemies that
// keep spawning around you while the difficulty climbs.
//
// Usage:
//
//	evasion play             - Start a game
//	evasion menu             - Pick a difficulty, then play
//	evasion scores           - Show the run history
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Set database path (default: ~/.evasion/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "evasion",
	Short: "Space Evasion - survive the swarm in your terminal",
	Long: `Space Evasion is a real-time survival game played in the terminal.
Enemies spawn around you and home in; every destroyed enemy scores and the
swarm grows harder the longer you last.

Available commands:
  play     - Start a game
  menu     - Difficulty picker menu
  scores   - View the run history

Examples:
  evasion play
  evasion play --difficulty hard
  evasion scores --difficulty insane`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.evasion/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
