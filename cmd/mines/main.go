// mines is a terminal minesweeper with local play and an SSH server.
//
// Usage:
//
//	mines list               - List board presets
//	mines play [preset]      - Play a board (default: beginner)
//	mines menu               - Pick a board interactively
//	mines serve              - Start SSH server for remote play
//	mines scores [preset]    - Show best times and stats
//	mines config             - Print the default preset file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.mines/scores.db)
//	--config <path>       - Load presets from a custom YAML file
//	--time-limit <secs>   - Override every preset's time limit (0 = none)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/games/mines"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagTimeLimit int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal, playable locally or over SSH.

Available commands:
  list     - Show the board presets
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View best times and stats
  config   - Print the default preset file

Examples:
  mines play
  mines play advanced --time-limit 0
  mines menu
  mines serve --ssh :2222 --http :9090
  mines scores intermediate`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := mines.SetConfigPath(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mines.SetTimeLimitOverride(flagTimeLimit)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom presets YAML")
	rootCmd.PersistentFlags().IntVar(&flagTimeLimit, "time-limit", -1, "Time limit in seconds for every preset (0 = no limit, -1 = preset default)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
