package mines

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines/minefield"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// useDefaultConfig points the loader at a copy of the built-in presets so
// tests do not pick up a config from the user's home directory.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mines.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := SetConfigPath(path); err != nil {
		t.Fatalf("SetConfigPath failed: %v", err)
	}
	t.Cleanup(func() { _ = SetConfigPath("") })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 10, Seed: 42}
}

// newFixedGame builds a game on a hand-placed board with the cursor at (0,0).
func newFixedGame(t *testing.T, rows, cols, timeLimit int, mines ...minefield.Coord) *Game {
	t.Helper()
	useDefaultConfig(t)

	g := New(config.PresetBeginner)
	g.Reset(testConfig())

	b, err := minefield.New(rows, cols, len(mines), minefield.WithMines(mines...), minefield.WithTimeLimit(timeLimit))
	if err != nil {
		t.Fatalf("minefield.New failed: %v", err)
	}
	g.settings = config.PresetConfig{Title: "Test", Rows: rows, Cols: cols, Mines: len(mines), TimeLimit: timeLimit}
	g.board = b
	g.cursorRow, g.cursorCol = 0, 0
	g.checkScreenSize()
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func steps(g *Game, n int) core.StepResult {
	var res core.StepResult
	for range n {
		res = g.Step(core.NewInputFrame())
	}
	return res
}

func TestRegisteredPresets(t *testing.T) {
	for _, p := range config.Presets {
		id := GameID(p)
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
		if !strings.HasPrefix(g.Title(), "Minesweeper") {
			t.Errorf("Title() = %q", g.Title())
		}
	}
}

func TestResetUsesPreset(t *testing.T) {
	useDefaultConfig(t)

	tests := []struct {
		preset    config.Preset
		rows      int
		cols      int
		mines     int
		timeLimit int
	}{
		{config.PresetBeginner, 6, 9, 11, 300},
		{config.PresetIntermediate, 12, 18, 36, 180},
		{config.PresetAdvanced, 21, 26, 92, 660},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			g := New(tc.preset)
			g.Reset(testConfig())

			b := g.Board()
			if b.Rows() != tc.rows || b.Cols() != tc.cols || b.MineCount() != tc.mines {
				t.Errorf("board = %dx%d/%d, want %dx%d/%d", b.Rows(), b.Cols(), b.MineCount(), tc.rows, tc.cols, tc.mines)
			}
			if b.TimeLimit() != tc.timeLimit {
				t.Errorf("TimeLimit = %d, want %d", b.TimeLimit(), tc.timeLimit)
			}
			if st := g.State(); st.GameOver || st.Outcome != "in_progress" {
				t.Errorf("fresh state = %+v", st)
			}
		})
	}
}

func TestTimeLimitOverride(t *testing.T) {
	useDefaultConfig(t)
	SetTimeLimitOverride(0)
	t.Cleanup(func() { SetTimeLimitOverride(-1) })

	g := New(config.PresetIntermediate)
	g.Reset(testConfig())
	if got := g.Board().TimeLimit(); got != 0 {
		t.Errorf("TimeLimit = %d, want 0 with override", got)
	}
}

func TestSeedDeterminism(t *testing.T) {
	useDefaultConfig(t)

	g1 := New(config.PresetIntermediate)
	g2 := New(config.PresetIntermediate)
	g1.Reset(testConfig())
	g2.Reset(testConfig())

	g1.Step(frame(core.ActionReveal))
	g2.Step(frame(core.ActionReveal))

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed and input produced different snapshots")
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	g := newFixedGame(t, 3, 4, 0, minefield.At(2, 3))

	g.Step(frame(core.ActionUp, core.ActionLeft))
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor = (%d,%d), want clamped at (0,0)", g.cursorRow, g.cursorCol)
	}

	g.Step(frame(core.ActionDown, core.ActionRight))
	if g.cursorRow != 1 || g.cursorCol != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", g.cursorRow, g.cursorCol)
	}

	for range 10 {
		g.Step(frame(core.ActionDown, core.ActionRight))
	}
	if g.cursorRow != 2 || g.cursorCol != 3 {
		t.Errorf("cursor = (%d,%d), want clamped at (2,3)", g.cursorRow, g.cursorCol)
	}
}

func TestRevealActionWins(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(2, 2))

	res := g.Step(frame(core.ActionReveal))
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("state = %+v, want won", res.State)
	}
	if res.State.Score != 8 {
		t.Errorf("Score = %d, want 8", res.State.Score)
	}
	if res.Alert {
		t.Error("winning should not raise an alert")
	}
}

func TestFlagAction(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(2, 2))

	g.Step(frame(core.ActionFlag))
	v, err := g.Board().Cell(0, 0)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if v.State != minefield.Flagged {
		t.Errorf("state = %v, want flagged", v.State)
	}
	if g.Board().MinesLeft() != 0 {
		t.Errorf("MinesLeft = %d, want 0", g.Board().MinesLeft())
	}

	// Revealing under a flag does nothing.
	g.Step(frame(core.ActionReveal))
	if g.State().GameOver {
		t.Error("reveal on a flagged cell should be ignored")
	}

	g.Step(frame(core.ActionFlag))
	if v, _ := g.Board().Cell(0, 0); v.State != minefield.Hidden {
		t.Errorf("state = %v, want hidden after second toggle", v.State)
	}
}

func TestClicksMapToCells(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(1, 1))
	l := g.layout()

	in := core.NewInputFrame()
	in.AddClick(core.Click{X: l.grid.X + 2*cellWidth + 1, Y: l.grid.Y, Button: core.MouseSecondary})
	g.Step(in)

	if v, _ := g.Board().Cell(0, 2); v.State != minefield.Flagged {
		t.Errorf("right click should flag (0,2), state = %v", v.State)
	}
	if g.cursorRow != 0 || g.cursorCol != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", g.cursorRow, g.cursorCol)
	}

	in = core.NewInputFrame()
	in.AddClick(core.Click{X: l.grid.X, Y: l.grid.Y + 2, Button: core.MousePrimary})
	g.Step(in)

	v, _ := g.Board().Cell(2, 0)
	if v.State != minefield.Revealed || v.Adjacent != 1 {
		t.Errorf("left click should reveal (2,0) with count 1, got %+v", v)
	}

	in = core.NewInputFrame()
	in.AddClick(core.Click{X: 0, Y: 0, Button: core.MousePrimary})
	before := g.Board().Snapshot()
	g.Step(in)
	if !reflect.DeepEqual(before, g.Board().Snapshot()) {
		t.Error("click outside the grid changed the board")
	}
}

func TestClockStartsOnFirstMove(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(2, 2))

	steps(g, 30)
	if g.Board().Elapsed() != 0 {
		t.Fatalf("clock ran before the first move: %d", g.Board().Elapsed())
	}

	g.Step(frame(core.ActionFlag))
	steps(g, 8)
	if g.Board().Elapsed() != 0 {
		t.Errorf("Elapsed = %d after 9 ticks, want 0", g.Board().Elapsed())
	}
	steps(g, 1)
	if g.Board().Elapsed() != 1 {
		t.Errorf("Elapsed = %d after 10 ticks, want 1", g.Board().Elapsed())
	}
}

func TestPauseStopsClock(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(2, 2))
	g.Step(frame(core.ActionFlag))

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	steps(g, 50)
	if g.Board().Elapsed() != 0 {
		t.Errorf("clock advanced while paused: %d", g.Board().Elapsed())
	}

	// Moves are ignored while paused.
	g.Step(frame(core.ActionRight))
	if g.cursorCol != 0 {
		t.Error("cursor moved while paused")
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render should show PAUSED")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestTimeOutEndsGame(t *testing.T) {
	g := newFixedGame(t, 3, 3, 2, minefield.At(2, 2))
	g.Step(frame(core.ActionFlag))

	res := steps(g, 25)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, want lost", res.State)
	}
	if res.State.Reason != "timed_out" {
		t.Errorf("Reason = %q, want timed_out", res.State.Reason)
	}
	if res.State.Elapsed != 2 {
		t.Errorf("Elapsed = %d, want 2", res.State.Elapsed)
	}
}

func TestDetonationAlertsOnce(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(1, 1))

	res := g.Step(frame(core.ActionDown, core.ActionRight, core.ActionReveal))
	if !res.Alert {
		t.Error("detonation should raise an alert")
	}
	if res.State.Reason != "exploded" || !res.State.GameOver {
		t.Errorf("state = %+v, want exploded", res.State)
	}

	res = g.Step(frame(core.ActionPause, core.ActionLeft))
	if res.Alert {
		t.Error("alert should fire only on the detonating step")
	}
	if res.State.Paused {
		t.Error("finished game should not pause")
	}
	if g.cursorCol != 1 {
		t.Error("finished game should ignore cursor moves")
	}
}

func TestTooSmallScreen(t *testing.T) {
	useDefaultConfig(t)

	g := New(config.PresetAdvanced)
	cfg := testConfig()
	cfg.ScreenW = 30
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("too small screen should report paused")
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small message")
	}

	before := g.Board().Snapshot()
	g.Step(frame(core.ActionReveal))
	if !reflect.DeepEqual(before, g.Board().Snapshot()) {
		t.Error("input should be ignored while the screen is too small")
	}
}

func TestRenderHUD(t *testing.T) {
	useDefaultConfig(t)

	g := New(config.PresetBeginner)
	g.Reset(testConfig())

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	hud := screen.Row(0)
	for _, want := range []string{"Mines: 11", "Time: 300"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screen.Row(1), "Beginner") {
		t.Errorf("board border %q should carry the preset title", screen.Row(1))
	}

	g.Step(frame(core.ActionFlag))
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Mines: 10") {
		t.Errorf("HUD %q should count the flag", screen.Row(0))
	}
	if screen.GetCell(g.layout().grid.X+g.cursorCol*cellWidth+1, g.layout().grid.Y+g.cursorRow).Color != core.ColorCursor {
		t.Error("cursor cell should be highlighted")
	}
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		name  string
		view  minefield.CellView
		glyph rune
	}{
		{"hidden", minefield.CellView{State: minefield.Hidden}, glyphHidden},
		{"flagged", minefield.CellView{State: minefield.Flagged}, glyphFlag},
		{"empty", minefield.CellView{State: minefield.Revealed}, glyphEmpty},
		{"three", minefield.CellView{State: minefield.Revealed, Adjacent: 3}, '3'},
		{"eight", minefield.CellView{State: minefield.Revealed, Adjacent: 8}, '8'},
		{"detonated", minefield.CellView{State: minefield.Revealed, Mine: true, Mark: minefield.MarkDetonated}, glyphMine},
		{"mine", minefield.CellView{State: minefield.Revealed, Mine: true, Mark: minefield.MarkMine}, glyphMine},
		{"flagged mine", minefield.CellView{State: minefield.Flagged, Mine: true, Mark: minefield.MarkFlaggedMine}, glyphFlag},
		{"wrong flag", minefield.CellView{State: minefield.Flagged, Mark: minefield.MarkWrongFlag}, glyphWrongFlag},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, _ := cellGlyph(tc.view); got != tc.glyph {
				t.Errorf("cellGlyph() = %q, want %q", got, tc.glyph)
			}
		})
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(1, 1))
	g.Step(frame(core.ActionDown, core.ActionRight, core.ActionReveal))

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.Row(g.layout().statusY), "BOOM") {
		t.Errorf("status line %q should report the explosion", screen.Row(g.layout().statusY))
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newFixedGame(t, 3, 3, 0, minefield.At(2, 2))
	g.Step(frame(core.ActionFlag))

	g.Resize(5, 5)
	if !g.State().Paused {
		t.Error("shrinking below the board should pause")
	}

	g.Resize(80, 30)
	if g.State().Paused {
		t.Error("growing back should resume")
	}
	if v, _ := g.Board().Cell(0, 0); v.State != minefield.Flagged {
		t.Error("resize should keep the board")
	}
}

func TestSettingsFollowsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	if err := os.WriteFile(path, []byte("presets:\n  advanced:\n    time_limit: 999\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := SetConfigPath(path); err != nil {
		t.Fatalf("SetConfigPath failed: %v", err)
	}
	t.Cleanup(func() { _ = SetConfigPath("") })

	pc := Settings(config.PresetAdvanced)
	if pc.TimeLimit != 999 || pc.Rows != 21 {
		t.Errorf("Settings = %+v, want advanced board with 999s", pc)
	}
}

func TestSetConfigPathRejectsBadFile(t *testing.T) {
	useDefaultConfig(t)
	good := configPath

	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("presets:\n  beginner:\n    rows: 2\n    cols: 2\n    mines: 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), invalid} {
		if err := SetConfigPath(path); err == nil {
			t.Errorf("SetConfigPath(%s) should fail", filepath.Base(path))
		}
		if configPath != good {
			t.Errorf("configPath = %q after a failed set, want %q kept", configPath, good)
		}
	}

	if pc := Settings(config.PresetBeginner); pc.Rows != 6 || pc.TimeLimit != 300 {
		t.Errorf("Settings = %+v, want defaults from the kept file", pc)
	}
}
