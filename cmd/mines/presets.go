package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/mines"
)

// resolvePreset accepts a preset name ("advanced") or a game ID
// ("mines_advanced"). An empty argument selects beginner.
func resolvePreset(arg string) (config.Preset, error) {
	return config.ParsePreset(strings.TrimPrefix(strings.ToLower(arg), "mines_"))
}

// presetFromArgs resolves the optional preset argument or exits.
func presetFromArgs(args []string) config.Preset {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	p, err := resolvePreset(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", arg)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available presets.")
		os.Exit(1)
	}
	return p
}

// limitLabel formats a time limit for listings.
func limitLabel(seconds int) string {
	if seconds <= 0 {
		return "none"
	}
	return fmt.Sprintf("%ds", seconds)
}

// presetRow returns the settings and game ID shown for p.
func presetRow(p config.Preset) (string, config.PresetConfig) {
	return mines.GameID(p), mines.Settings(p)
}
