package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines/minefield"
)

const cellWidth = 2 // Glyph plus a spacer column

const (
	glyphHidden    = '■'
	glyphEmpty     = '·'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphWrongFlag = 'X'
)

// numberColors follows the classic palette for counts 1-8.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// layout holds screen positions derived from the board and screen size.
type layout struct {
	box     core.Rect // Border around the grid
	grid    core.Rect // Clickable cell area, cellWidth columns per cell
	hudY    int
	statusY int
}

func (g *Game) layout() layout {
	w := g.settings.Cols*cellWidth + 3
	x := (g.screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return layout{
		box:     core.NewRect(x, 1, w, g.settings.Rows+2),
		grid:    core.NewRect(x+1, 2, g.settings.Cols*cellWidth, g.settings.Rows),
		hudY:    0,
		statusY: g.settings.Rows + 3,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	snap := g.board.Snapshot()

	g.renderHUD(dst, l, snap)
	dst.DrawBox(l.box, core.ColorGray)
	dst.DrawTextCentered(l.box.Y, " "+g.settings.Title+" ", core.ColorBrightWhite)

	if g.paused {
		dst.DrawTextCentered(l.box.Y+l.box.H/2, "PAUSED", core.ColorBrightYellow)
	} else {
		g.renderCells(dst, l, snap)
	}

	g.renderStatus(dst, l, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	need := fmt.Sprintf("Need %dx%d", g.settings.Cols*cellWidth+3, g.settings.Rows+4)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

// renderHUD draws the mine counter and the clock above the board.
func (g *Game) renderHUD(dst *core.Screen, l layout, snap minefield.Snapshot) {
	left := fmt.Sprintf("Mines: %d", snap.MinesLeft())
	dst.DrawTextColor(l.box.X, l.hudY, left, core.ColorBrightRed)

	clock := fmt.Sprintf("Time: %03d", snap.Elapsed)
	color := core.ColorBrightWhite
	if snap.TimeLimit > 0 {
		remaining := max(0, snap.TimeLimit-snap.Elapsed)
		clock = fmt.Sprintf("Time: %03d", remaining)
		if remaining <= 10 {
			color = core.ColorBrightRed
		}
	}
	dst.DrawTextColor(l.box.Right()-len(clock), l.hudY, clock, color)
}

// renderCells draws one glyph per cell and highlights the cursor.
func (g *Game) renderCells(dst *core.Screen, l layout, snap minefield.Snapshot) {
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			glyph, color := cellGlyph(snap.At(r, c))
			if r == g.cursorRow && c == g.cursorCol && snap.Outcome == minefield.InProgress {
				color = core.ColorCursor
			}
			dst.SetColor(l.grid.X+c*cellWidth+1, l.grid.Y+r, glyph, color)
		}
	}
}

// cellGlyph picks the rune and color for a cell view.
func cellGlyph(v minefield.CellView) (rune, core.Color) {
	switch v.Mark {
	case minefield.MarkDetonated:
		return glyphMine, core.ColorBrightRed
	case minefield.MarkMine:
		return glyphMine, core.ColorWhite
	case minefield.MarkFlaggedMine:
		return glyphFlag, core.ColorBrightGreen
	case minefield.MarkWrongFlag:
		return glyphWrongFlag, core.ColorRed
	}

	switch v.State {
	case minefield.Flagged:
		return glyphFlag, core.ColorBrightYellow
	case minefield.Revealed:
		if v.Adjacent == 0 {
			return glyphEmpty, core.ColorGray
		}
		return rune('0' + v.Adjacent), numberColors[v.Adjacent]
	default:
		return glyphHidden, core.ColorDefault
	}
}

// renderStatus draws the hint or result line under the board.
func (g *Game) renderStatus(dst *core.Screen, l layout, snap minefield.Snapshot) {
	var msg string
	color := core.ColorGray

	switch {
	case snap.Outcome == minefield.Won:
		msg = fmt.Sprintf("Cleared in %ds! Score %d  R: restart  Q: quit", snap.Elapsed, snap.Score)
		color = core.ColorBrightGreen
	case snap.Reason == minefield.Exploded:
		msg = "BOOM! R: restart  Q: quit"
		color = core.ColorBrightRed
	case snap.Reason == minefield.TimedOut:
		msg = "Time's up! R: restart  Q: quit"
		color = core.ColorBrightRed
	case g.paused:
		msg = "P: resume  Q: quit"
	default:
		msg = "Arrows: move  Space: reveal  F: flag  P: pause"
	}

	dst.DrawTextCentered(l.statusY, msg, color)
}
