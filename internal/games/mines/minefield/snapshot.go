package minefield

// CellView is the renderer-facing view of one cell.
type CellView struct {
	State    CellState
	Adjacent int  // Valid only for a revealed safe cell
	Mine     bool // Reported only once the game is over
	Mark     Mark
}

// Snapshot is a read-only copy of the board for renderers and tests.
// While the game is in progress it carries no information about where
// the mines are.
type Snapshot struct {
	Rows      int
	Cols      int
	Mines     int
	Cells     []CellView // Row-major, length Rows*Cols
	Revealed  int
	Flags     int
	Elapsed   int
	TimeLimit int
	Outcome   Outcome
	Reason    LossReason
	Detonated *Coord
	Score     int
}

// At returns the view of the cell at (row, col).
// The caller is expected to stay within Rows x Cols.
func (s Snapshot) At(row, col int) CellView {
	return s.Cells[row*s.Cols+col]
}

// MinesLeft returns mines minus flags.
func (s Snapshot) MinesLeft() int {
	return s.Mines - s.Flags
}

// Snapshot returns the current board view.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:      b.rows,
		Cols:      b.cols,
		Mines:     b.mineCount,
		Cells:     make([]CellView, len(b.cells)),
		Revealed:  b.revealed,
		Flags:     b.flags,
		Elapsed:   b.elapsed,
		TimeLimit: b.timeLimit,
		Outcome:   b.outcome,
		Reason:    b.reason,
		Score:     b.Score(),
	}
	if b.hasDetonated {
		d := b.detonated
		snap.Detonated = &d
	}

	for i := range b.cells {
		snap.Cells[i] = b.view(i)
	}
	return snap
}

// Cell returns the view of a single cell, following the same disclosure
// rules as Snapshot.
func (b *Board) Cell(row, col int) (CellView, error) {
	if err := b.checkBounds(row, col); err != nil {
		return CellView{}, err
	}
	return b.view(b.index(row, col)), nil
}

// view builds the disclosed view of the cell at flat index idx.
func (b *Board) view(idx int) CellView {
	c := b.cells[idx]
	v := CellView{State: c.state}

	if !b.outcome.Terminal() {
		if c.state == Revealed {
			v.Adjacent = int(c.adjacent)
		}
		return v
	}

	v.Mine = c.mine
	switch {
	case c.mine && b.hasDetonated && idx == b.index(b.detonated.Row, b.detonated.Col):
		v.Mark = MarkDetonated
	case c.mine && c.state == Flagged:
		v.Mark = MarkFlaggedMine
	case c.mine:
		v.Mark = MarkMine
	case c.state == Flagged:
		v.Mark = MarkWrongFlag
	case c.state == Revealed:
		v.Adjacent = int(c.adjacent)
	}
	return v
}
