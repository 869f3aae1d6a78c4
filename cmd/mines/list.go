package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board presets",
	Long:  `Shows every preset with its size, mine count and time limit.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Available boards:")
	fmt.Println()

	fmt.Printf("  %-14s  %-19s  %-7s  %-5s  %s\n", "Preset", "ID", "Size", "Mines", "Limit")
	fmt.Printf("  %-14s  %-19s  %-7s  %-5s  %s\n", "------", "--", "----", "-----", "-----")

	for _, p := range config.Presets {
		id, s := presetRow(p)
		size := fmt.Sprintf("%dx%d", s.Rows, s.Cols)
		fmt.Printf("  %-14s  %-19s  %-7s  %-5d  %s\n", p, id, size, s.Mines, limitLabel(s.TimeLimit))
	}

	fmt.Println()
	fmt.Println("Run 'mines play <preset>' to play a board.")
}
