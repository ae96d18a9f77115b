package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/levels"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show recorded runs",
	Long: `Display run history. With a pack argument, shows the best runs for
that pack plus summary stats; without one, the most recent runs across
all packs.

Examples:
  crossing scores
  crossing scores classic
  crossing scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded runs for the given pack")
}

func runScores(_ *cobra.Command, args []string) {
	if _, _, err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a pack argument.")
			os.Exit(1)
		}
		showRecentRuns(store)
		return
	}

	packID := args[0]
	if !levels.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'crossing packs' to see available packs.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.Clear(packID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all recorded runs for %s.\n", packID)
		return
	}

	showPackRuns(store, packID)
}

func showRecentRuns(store *storage.Store) {
	runs, err := store.RecentRuns(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing menu' to make some history!")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-5s  %-5s  %-6s  %s\n", "Pack", "Result", "Level", "Lives", "Time", "Date")
	fmt.Printf("  %-10s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-10s  %-8s  %-5d  %-5d  %-6s  %s\n",
			r.Pack, resultWord(r.Outcome), r.LevelReached, r.Lives,
			formatRunTime(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func showPackRuns(store *storage.Store, packID string) {
	runs, err := store.TopRuns(packID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs - %s\n", packID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crossing play %s' to set the first record!\n", packID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "Rank", "Result", "Level", "Lives", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-5d  %-5d  %-6s  %s\n",
			i+1, resultWord(r.Outcome), r.LevelReached, r.Lives,
			formatRunTime(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(packID)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("%d runs, %d cleared", stats.Runs, stats.Completed)
	if stats.Completed > 0 {
		fmt.Printf(", best time %s", formatRunTime(stats.BestTime))
	} else {
		fmt.Printf(", best level %d", stats.BestLevel)
	}
	fmt.Println()
}

func resultWord(outcome string) string {
	if outcome == storage.OutcomeCompleted {
		return "cleared"
	}
	return "lost"
}

// formatRunTime renders whole seconds as m:ss.
func formatRunTime(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
