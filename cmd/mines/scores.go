package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times and stats",
	Long: `Display the fastest wins and overall stats for a preset.
Without an argument, prints a summary line for every preset.

Examples:
  mines scores
  mines scores advanced
  mines scores beginner --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the stored scores and results of the preset")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 && !flagClearScores {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID, settings := presetRow(presetFromArgs(args))

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", settings.Title)
		return
	}

	results, err := store.BestTimes(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best times: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", settings.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first time!\n", args[0])
	} else {
		fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Time", "Score", "Date")
		fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "----", "-----", "----")
		for i, r := range results {
			dateStr := r.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-6s  %-6d  %s\n", i+1, fmt.Sprintf("%ds", r.Elapsed), r.Score, dateStr)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%), exploded %d, timed out %d\n",
			stats.Played, stats.Won, stats.WinRate()*100, stats.Exploded, stats.TimedOut)
		if stats.HighScore > 0 {
			fmt.Printf("High score: %d\n", stats.HighScore)
		}
	}
}

// printSummary prints one stats line per preset.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-14s  %-6s  %-5s  %-6s  %s\n", "Preset", "Played", "Won", "Best", "High")
	fmt.Printf("  %-14s  %-6s  %-5s  %-6s  %s\n", "------", "------", "---", "----", "----")
	for _, p := range config.Presets {
		gameID, _ := presetRow(p)
		s, ok := all[gameID]
		if !ok {
			s = &storage.GameStats{GameID: gameID}
		}
		best := "-"
		if s.BestTime > 0 {
			best = fmt.Sprintf("%ds", s.BestTime)
		}
		fmt.Printf("  %-14s  %-6d  %-5d  %-6s  %d\n", p, s.Played, s.Won, best, s.HighScore)
	}
	return nil
}
