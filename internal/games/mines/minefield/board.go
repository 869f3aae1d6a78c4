package minefield

import (
	"fmt"
	"math/rand"
	"time"
)

// Board is the complete state of one game.
// Cells are stored in row-major order: index = row*cols + col.
// A Board is not safe for concurrent use; callers serialize access.
type Board struct {
	rows      int
	cols      int
	mineCount int
	cells     []cell

	revealed  int // Non-mine cells in Revealed state
	flags     int
	elapsed   int // Seconds
	timeLimit int // Seconds, 0 = unlimited

	outcome      Outcome
	reason       LossReason
	detonated    Coord
	hasDetonated bool
}

// options collects construction settings.
type options struct {
	rng       *rand.Rand
	fixed     []Coord
	timeLimit int
}

// Option configures a Board at construction.
type Option func(*options)

// WithRand sets the random source used for mine placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds mine placement for reproducible layouts.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMines places mines at exactly the given coordinates instead of
// sampling them. The list must contain mineCount distinct in-bounds cells.
func WithMines(mines ...Coord) Option {
	return func(o *options) {
		o.fixed = append([]Coord(nil), mines...)
	}
}

// WithTimeLimit sets the number of seconds after which the game is lost.
// Zero disables the limit.
func WithTimeLimit(seconds int) Option {
	return func(o *options) {
		o.timeLimit = seconds
	}
}

// New creates a board with mines placed and adjacency counts computed.
func New(rows, cols, mineCount int, opts ...Option) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if mineCount <= 0 || mineCount >= rows*cols {
		return nil, fmt.Errorf("%w: mine count must be in [1, %d), got %d", ErrInvalidConfiguration, rows*cols, mineCount)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeLimit < 0 {
		return nil, fmt.Errorf("%w: negative time limit %d", ErrInvalidConfiguration, o.timeLimit)
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		cells:     make([]cell, rows*cols),
		timeLimit: o.timeLimit,
		outcome:   InProgress,
	}

	if o.fixed != nil {
		if err := b.placeFixed(o.fixed); err != nil {
			return nil, err
		}
	} else {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		b.placeRandom(rng)
	}

	b.countAdjacent()
	return b, nil
}

// placeRandom picks mineCount distinct cells with a partial Fisher-Yates
// shuffle over the flattened index space.
func (b *Board) placeRandom(rng *rand.Rand) {
	indices := make([]int, len(b.cells))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < b.mineCount; i++ {
		j := i + rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		b.cells[indices[i]].mine = true
	}
}

// placeFixed places mines at caller-chosen coordinates.
func (b *Board) placeFixed(mines []Coord) error {
	if len(mines) != b.mineCount {
		return fmt.Errorf("%w: %d fixed mines given for mine count %d", ErrInvalidConfiguration, len(mines), b.mineCount)
	}
	for _, c := range mines {
		if !b.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: fixed mine %v outside %dx%d board", ErrInvalidConfiguration, c, b.rows, b.cols)
		}
		idx := b.index(c.Row, c.Col)
		if b.cells[idx].mine {
			return fmt.Errorf("%w: duplicate fixed mine %v", ErrInvalidConfiguration, c)
		}
		b.cells[idx].mine = true
	}
	return nil
}

// countAdjacent computes the neighbour mine count of every cell in one pass.
func (b *Board) countAdjacent() {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			n := uint8(0)
			b.eachNeighbor(r, c, func(nr, nc int) {
				if b.cells[b.index(nr, nc)].mine {
					n++
				}
			})
			b.cells[b.index(r, c)].adjacent = n
		}
	}
}

// eachNeighbor calls fn for every in-bounds Moore neighbour of (row, col).
func (b *Board) eachNeighbor(row, col int, fn func(r, c int)) {
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if b.InBounds(r, c) {
			fn(r, c)
		}
	}
}

// index converts a coordinate to a flat slice index.
func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) checkBounds(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrCoordinateOutOfBounds, At(row, col), b.rows, b.cols)
	}
	return nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mineCount }

// Outcome returns the current game outcome.
func (b *Board) Outcome() Outcome { return b.outcome }

// Reason returns why the game was lost, or LossNone.
func (b *Board) Reason() LossReason { return b.reason }

// Elapsed returns the number of seconds played.
func (b *Board) Elapsed() int { return b.elapsed }

// TimeLimit returns the configured limit in seconds, 0 when unlimited.
func (b *Board) TimeLimit() int { return b.timeLimit }

// Remaining returns the seconds left before a timeout, 0 when unlimited.
func (b *Board) Remaining() int {
	if b.timeLimit == 0 {
		return 0
	}
	return max(0, b.timeLimit-b.elapsed)
}

// RevealedCount returns the number of revealed safe cells.
func (b *Board) RevealedCount() int { return b.revealed }

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int { return b.flags }

// MinesLeft returns mines minus flags. It goes negative when the player
// over-flags, which is what the classic counter shows.
func (b *Board) MinesLeft() int { return b.mineCount - b.flags }

// SafeCells returns the number of cells that must be revealed to win.
func (b *Board) SafeCells() int { return b.rows*b.cols - b.mineCount }

// Detonated returns the mine that ended the game, if any.
func (b *Board) Detonated() (Coord, bool) {
	return b.detonated, b.hasDetonated
}

// Score returns one point per revealed safe cell, plus one point per
// remaining second when a timed game is won.
func (b *Board) Score() int {
	score := b.revealed
	if b.outcome == Won {
		score += b.Remaining()
	}
	return score
}
