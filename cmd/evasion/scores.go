package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-evasion/internal/config"
	"github.com/vovakirdan/space-evasion/internal/platform/tui"
	"github.com/vovakirdan/space-evasion/internal/storage"
)

var (
	flagScoresDifficulty string
	flagLimit            int
	flagClear            bool
	flagPlain            bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs, per difficulty or across all of them.

Examples:
  evasion scores
  evasion scores --difficulty hard --limit 20
  evasion scores --plain
  evasion scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.StringVar(&flagScoresDifficulty, "difficulty", "", "Only this difficulty (default: all)")
	f.IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	f.BoolVar(&flagClear, "clear", false, "Delete the selected run history")
	f.BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) error {
	difficulty := ""
	if flagScoresDifficulty != "" {
		preset, err := config.ParsePreset(flagScoresDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(difficulty); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 80, 24
		}
		return tui.RunScoreboard(store, difficulty, flagLimit, w, h)
	}
	return printScores(store, difficulty)
}

func printScores(store *storage.Store, difficulty string) error {
	runs, err := store.TopRuns(difficulty, flagLimit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'evasion play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Preset", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-8d  %s\n", i+1, r.Score, r.Difficulty, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.StatsByDifficulty()
	if err != nil {
		return err
	}
	fmt.Println()
	for _, p := range config.Presets {
		st, ok := stats[string(p)]
		if !ok || (difficulty != "" && difficulty != st.Difficulty) {
			continue
		}
		fmt.Printf("%-7s best %d over %d runs (avg %.0f)\n", st.Difficulty, st.HighScore, st.Runs, st.AvgScore)
	}
	return nil
}
