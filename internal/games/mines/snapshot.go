package mines

import "github.com/vovakirdan/tui-mines/internal/games/mines/minefield"

// Snapshot captures the adapter state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Preset    string
	CursorRow int
	CursorCol int
	Paused    bool
	Running   bool
	Board     minefield.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Preset:    string(g.preset),
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Paused:    g.paused,
		Running:   g.running,
		Board:     g.board.Snapshot(),
	}
}
