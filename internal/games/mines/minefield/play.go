package minefield

// Reveal uncovers the cell at (row, col).
// Revealing a zero-count cell opens its whole connected zero region and
// the numbered border around it. Acting on a finished game or on a cell
// that is not Hidden is a no-op. Only out-of-bounds coordinates fail.
func (b *Board) Reveal(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	if b.outcome.Terminal() {
		return nil
	}

	idx := b.index(row, col)
	if b.cells[idx].state != Hidden {
		return nil
	}

	if b.cells[idx].mine {
		b.cells[idx].state = Revealed
		b.detonated = At(row, col)
		b.hasDetonated = true
		b.lose(Exploded)
		return nil
	}

	b.flood(row, col)

	if b.revealed == b.SafeCells() {
		b.outcome = Won
	}
	return nil
}

// flood reveals (row, col) and propagates through zero-count cells using
// an explicit stack. A cell's Revealed state doubles as its visited mark.
func (b *Board) flood(row, col int) {
	b.open(b.index(row, col))
	if b.cells[b.index(row, col)].adjacent != 0 {
		return
	}

	stack := []Coord{At(row, col)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.eachNeighbor(top.Row, top.Col, func(r, c int) {
			idx := b.index(r, c)
			// Flagged neighbours stay flagged; mines cannot border a zero cell.
			if b.cells[idx].state != Hidden || b.cells[idx].mine {
				return
			}
			b.open(idx)
			if b.cells[idx].adjacent == 0 {
				stack = append(stack, At(r, c))
			}
		})
	}
}

// open marks a safe cell revealed.
func (b *Board) open(idx int) {
	b.cells[idx].state = Revealed
	b.revealed++
}

// ToggleFlag flips a Hidden cell to Flagged and back. Revealed cells and
// finished games are left untouched.
func (b *Board) ToggleFlag(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	if b.outcome.Terminal() {
		return nil
	}

	c := &b.cells[b.index(row, col)]
	switch c.state {
	case Hidden:
		c.state = Flagged
		b.flags++
	case Flagged:
		c.state = Hidden
		b.flags--
	}
	return nil
}

// Tick advances the game clock by deltaSeconds. Reaching the time limit
// loses the game. Non-positive deltas and finished games are ignored.
func (b *Board) Tick(deltaSeconds int) {
	if b.outcome.Terminal() || deltaSeconds <= 0 {
		return
	}

	b.elapsed += deltaSeconds
	if b.timeLimit > 0 && b.elapsed >= b.timeLimit {
		b.lose(TimedOut)
	}
}

// lose ends the game and uncovers every hidden mine for display.
// Flags are left in place so the snapshot can grade them.
func (b *Board) lose(reason LossReason) {
	b.outcome = Lost
	b.reason = reason
	for i := range b.cells {
		if b.cells[i].mine && b.cells[i].state == Hidden {
			b.cells[i].state = Revealed
		}
	}
}
