package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing the given preset (beginner if omitted).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Reveal
  F                 - Toggle flag
  Left/Right click  - Reveal / toggle flag
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Examples:
  mines play
  mines play intermediate
  mines play advanced --time-limit 900
  mines play beginner --seed 42
  mines play --config ./my-mines.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, warning and continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := mines.GameID(presetFromArgs(args))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Storage is optional; the game still works without it
	store := openStore()

	runErr := tui.Run(game, terminalConfig(), tui.ModelOptions{
		Store:     store,
		SessionID: "local-" + uuid.NewString(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
