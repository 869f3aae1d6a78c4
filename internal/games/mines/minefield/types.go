// Package minefield implements the mine-clearing board engine.
// It is UI-agnostic and deterministic for a given random source: renderers
// read everything they need from Snapshot and never hold game state.
package minefield

// CellState is the player-visible state of a single cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Outcome is the state of the game as a whole.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// LossReason explains a Lost outcome. LossNone for any other outcome.
type LossReason uint8

const (
	LossNone LossReason = iota
	Exploded
	TimedOut
)

// String returns the string representation of a loss reason.
func (r LossReason) String() string {
	switch r {
	case LossNone:
		return ""
	case Exploded:
		return "exploded"
	case TimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Mark is an end-of-game display annotation for a cell.
type Mark uint8

const (
	MarkNone        Mark = iota
	MarkDetonated        // The mine that ended the game
	MarkMine             // Any other mine, shown once the game is over
	MarkWrongFlag        // A flag placed on a safe cell
	MarkFlaggedMine      // A flag that was right
)

// cell is the internal per-position record.
type cell struct {
	mine     bool
	adjacent uint8
	state    CellState
}
