// Package mines adapts the minefield engine to the platform game loop.
// One Game is registered per difficulty preset.
package mines

import (
	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines/minefield"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var _ registry.Resizable = (*Game)(nil)

// Package-level settings applied on the next Reset.
var (
	configPath        string
	timeLimitOverride = -1
)

// SetConfigPath sets a custom presets file. The file is loaded once here so
// a missing or invalid file is reported instead of falling back to the
// defaults; on error the previous path stays in effect. An empty path
// restores the default search order.
func SetConfigPath(path string) error {
	if path != "" {
		if _, err := config.LoadMines(path); err != nil {
			return err
		}
	}
	configPath = path
	return nil
}

// SetTimeLimitOverride replaces every preset's time limit in seconds.
// Zero disables the timer; a negative value restores the configured limits.
func SetTimeLimitOverride(seconds int) {
	timeLimitOverride = seconds
}

// GameID returns the registry ID of a preset.
func GameID(p config.Preset) string {
	return "mines_" + string(p)
}

func init() {
	for _, p := range config.Presets {
		registry.Register(GameID(p), func() registry.Game {
			return New(p)
		})
	}
}

// Game plays one preset with a keyboard cursor and mouse support.
type Game struct {
	preset   config.Preset
	settings config.PresetConfig
	board    *minefield.Board
	tick     uint64

	cursorRow int
	cursorCol int

	// Clock: the board advances one second every tickRate steps once the
	// first cell is opened or flagged.
	tickRate int
	subTicks int
	running  bool

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game for the given preset.
func New(p config.Preset) *Game {
	g := &Game{preset: p}
	g.settings, _ = config.DefaultMinesConfig().Lookup(p)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper: " + g.settings.Title
}

// Reset deals a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.settings = loadSettings(g.preset, g.settings)

	// Settings are validated by the loader, so New only fails on a bug.
	board, err := minefield.New(
		g.settings.Rows, g.settings.Cols, g.settings.Mines,
		minefield.WithSeed(cfg.Seed),
		minefield.WithTimeLimit(g.settings.TimeLimit),
	)
	if err != nil {
		panic(err)
	}
	g.board = board

	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.subTicks = 0
	g.running = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursorRow = g.settings.Rows / 2
	g.cursorCol = g.settings.Cols / 2

	g.checkScreenSize()
}

// Resize adapts the layout to a new terminal size without dealing a new board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Settings returns the effective configuration of a preset, as the next
// Reset will see it.
func Settings(p config.Preset) config.PresetConfig {
	fallback, _ := config.DefaultMinesConfig().Lookup(p)
	return loadSettings(p, fallback)
}

// loadSettings reads the preset from config, keeping fallback when the
// file is missing or broken.
func loadSettings(p config.Preset, fallback config.PresetConfig) config.PresetConfig {
	cfg, err := config.LoadMines(configPath)
	if err != nil {
		cfg = config.DefaultMinesConfig()
	}
	cfg.OverrideTimeLimit(timeLimitOverride)

	pc, err := cfg.Lookup(p)
	if err != nil {
		return fallback
	}
	return pc
}

// checkScreenSize checks if the screen fits the board, HUD and status line.
func (g *Game) checkScreenSize() {
	minW := g.settings.Cols*cellWidth + 3
	minH := g.settings.Rows + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.board.Outcome().Terminal()

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused || over {
		// Restart after game over is handled by the platform
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	for _, c := range in.Clicks {
		g.handleClick(c)
	}
	if in.Has(core.ActionFlag) {
		g.flag(g.cursorRow, g.cursorCol)
	}
	if in.Has(core.ActionReveal) {
		g.reveal(g.cursorRow, g.cursorCol)
	}

	g.advanceClock()

	alert := g.board.Reason() == minefield.Exploded
	return core.StepResult{State: g.State(), Alert: alert}
}

// moveCursor applies directional actions, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow--
	case in.Has(core.ActionDown):
		g.cursorRow++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursorCol--
	case in.Has(core.ActionRight):
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.settings.Rows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.settings.Cols-1)
}

// handleClick moves the cursor to the clicked cell and acts on it.
// Clicks outside the grid are ignored.
func (g *Game) handleClick(c core.Click) {
	row, col, ok := g.layout().grid.Grid(c.X, c.Y, cellWidth, 1)
	if !ok || g.board.Outcome().Terminal() {
		return
	}
	g.cursorRow, g.cursorCol = row, col

	switch c.Button {
	case core.MousePrimary:
		g.reveal(row, col)
	case core.MouseSecondary:
		g.flag(row, col)
	}
}

func (g *Game) reveal(row, col int) {
	g.running = true
	//nolint:errcheck // Coordinates come from the clamped cursor or the grid
	g.board.Reveal(row, col)
}

func (g *Game) flag(row, col int) {
	g.running = true
	//nolint:errcheck // Coordinates come from the clamped cursor or the grid
	g.board.ToggleFlag(row, col)
}

// advanceClock converts steps into whole seconds on the board.
func (g *Game) advanceClock() {
	if !g.running || g.board.Outcome().Terminal() {
		return
	}
	g.subTicks++
	if g.subTicks >= g.tickRate {
		g.subTicks = 0
		g.board.Tick(1)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	outcome := g.board.Outcome()
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: outcome.Terminal(),
		Won:      outcome == minefield.Won,
		Outcome:  outcome.String(),
		Reason:   g.board.Reason().String(),
		Elapsed:  g.board.Elapsed(),
		Revealed: g.board.RevealedCount(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Board exposes the underlying board for inspection.
func (g *Game) Board() *minefield.Board {
	return g.board
}
