package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default preset file",
	Long: `Print the built-in presets as YAML. Save the output to
~/.mines/configs/mines.yaml or pass it with --config to customize boards.

Examples:
  mines config > ~/.mines/configs/mines.yaml
  mines config --check --config ./my-mines.yaml`,
	Run: runConfig,
}

var flagCheckConfig bool

func init() {
	configCmd.Flags().BoolVar(&flagCheckConfig, "check", false, "Validate the active configuration instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheckConfig {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	cfg, err := config.LoadMines(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.OverrideTimeLimit(flagTimeLimit)

	for _, p := range config.Presets {
		pc, _ := cfg.Lookup(p)
		fmt.Printf("%-14s %dx%d, %d mines, limit %s\n", p, pc.Rows, pc.Cols, pc.Mines, limitLabel(pc.TimeLimit))
	}
	fmt.Println("Configuration OK")
}
