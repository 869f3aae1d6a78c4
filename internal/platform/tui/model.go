package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/metrics"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// ModelOptions carries the optional collaborators of a game model.
// Every field may be left zero.
type ModelOptions struct {
	Store     *storage.Store
	Metrics   *metrics.Recorder
	SessionID string // Stored with each result
	Bell      bool   // Ring the terminal bell when a mine goes off
	Logger    *log.Logger

	// Embedded models report BackToMenu instead of quitting the program.
	Embedded bool
}

const bellChar = "\a"

// Model is the Bubble Tea model for running one game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	opts        ModelOptions
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result has been stored for the current game over
	lastResult  string
	gen         uint64
	bell        bool // A BEL is due with the next rendered frame
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        nextTickGen(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Metrics.GameStarted(m.game.ID())
	// gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if click, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddClick(click)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves once the game is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.opts.Embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.opts.Metrics.GameStarted(m.game.ID())
		m.gameState = m.game.State()
		m.resultSaved = false
		m.bell = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.bell = result.Alert && m.opts.Bell

	if m.gameState.GameOver && !m.resultSaved {
		m.recordResult()
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordResult stores the finished game and updates metrics.
func (m *Model) recordResult() {
	st := m.gameState
	id := m.game.ID()

	m.opts.Metrics.GameFinished(id, st.Outcome, st.Reason, st.Elapsed)
	if m.opts.Logger != nil {
		m.opts.Logger.Info("game finished",
			"session", m.opts.SessionID,
			"game", id,
			"outcome", st.Outcome,
			"reason", st.Reason,
			"elapsed", st.Elapsed,
			"score", st.Score,
		)
	}

	if m.opts.Store == nil {
		return
	}
	// Only wins rank; a loss still scores its revealed cells.
	if st.Won && st.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.opts.Store.SaveScore(id, st.Score)
	}
	resultID, err := m.opts.Store.SaveResult(storage.GameResult{
		SessionID: m.opts.SessionID,
		GameID:    id,
		Outcome:   st.Outcome,
		Reason:    st.Reason,
		Score:     st.Score,
		Elapsed:   st.Elapsed,
		Revealed:  st.Revealed,
	})
	if err == nil {
		m.lastResult = resultID
	}
}

// saveScreenshot saves the current screen as plain text under ~/.mines/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mines", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	frame := RenderScreen(m.screen)
	if m.bell {
		// Goes out with the frame so the renderer stays the only writer.
		return bellChar + frame
	}
	return frame
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastResultID returns the stored ID of the most recent finished game.
func (m Model) LastResultID() string {
	return m.lastResult
}

// Run starts a Bubble Tea program for a single game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	opts.Bell = true
	opts.Embedded = false

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click reveals, right click flags
	)

	_, err := p.Run()
	return err
}
