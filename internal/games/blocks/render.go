package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

const (
	cellWidth  = 2  // Screen columns per board cell
	panelWidth = 16 // Side panel (preview and stats)
	panelGap   = 1
	titleLines = 1
)

// PieceColor returns the screen color for a board cell.
func PieceColor(c engine.Cell) core.Color {
	switch engine.PieceType(c) {
	case engine.PieceNone:
		return core.ColorDefault
	case engine.PieceI:
		return core.ColorCyan
	case engine.PieceJ:
		return core.ColorBlue
	case engine.PieceL:
		return core.ColorOrange
	case engine.PieceO:
		return core.ColorYellow
	case engine.PieceS:
		return core.ColorGreen
	case engine.PieceT:
		return core.ColorMagenta
	case engine.PieceZ:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// wellSize returns the size of the bordered playfield.
func (g *Game) wellSize() (w, h int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.VisibleRows() + 2
}

// layoutSize returns the minimum screen size the game needs.
func (g *Game) layoutSize() (w, h int) {
	wellW, wellH := g.wellSize()
	return wellW + panelGap + panelWidth, wellH + titleLines
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	w, h := g.layoutSize()
	area := core.Centered(w, h, dst.Width(), dst.Height())
	wellW, wellH := g.wellSize()
	well := core.NewRect(area.X, area.Y+titleLines, wellW, wellH)

	title := "BLOCKFALL · " + g.mode.Title
	dst.DrawTextColored(area.X+(w-len([]rune(title)))/2, area.Y, title, core.ColorBrightWhite)

	view := g.board.View()
	g.renderWell(dst, well, view)
	g.renderPanel(dst, core.NewRect(well.Right()+panelGap, well.Y, panelWidth, wellH), view)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderWell draws the locked cells, the ghost and the active piece.
// Hidden rows above the visible area are not drawn.
func (g *Game) renderWell(dst *core.Screen, well core.Rect, view engine.ViewSnapshot) {
	dst.DrawBox(well, core.ColorGray)

	hidden := g.cfg.Board.HiddenRows
	inner := well.Inset(1)
	grid := g.board.Grid()

	visible := core.NewRect(0, hidden, grid.Width(), grid.Height()-hidden)

	toScreen := func(x, y int) (int, int, bool) {
		if !visible.Contains(x, y) {
			return 0, 0, false
		}
		return inner.X + x*cellWidth, inner.Y + y - hidden, true
	}

	for y := hidden; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			sx, sy, _ := toScreen(x, y)
			if c := grid.At(x, y); c != engine.Empty {
				drawBlock(dst, sx, sy, '█', PieceColor(c))
			} else {
				dst.SetColored(sx+1, sy, '·', core.ColorGray)
			}
		}
	}

	if !view.HasPiece() || g.gameOver {
		return
	}

	if view.GhostY != view.Y {
		for _, b := range view.Shape.Blocks() {
			if sx, sy, ok := toScreen(view.X+b[0], view.GhostY+b[1]); ok {
				drawBlock(dst, sx, sy, '░', core.ColorGray)
			}
		}
	}
	for _, b := range view.Shape.Blocks() {
		if sx, sy, ok := toScreen(view.X+b[0], view.Y+b[1]); ok {
			drawBlock(dst, sx, sy, '█', PieceColor(view.Piece.Color()))
		}
	}
}

// renderPanel draws the next-piece preview and the statistics.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, view engine.ViewSnapshot) {
	next := core.NewRect(panel.X, panel.Y, panel.W, engine.ShapeSize+2)
	dst.DrawBox(next, core.ColorGray)
	dst.DrawText(next.X+2, next.Y, " NEXT ")

	previewX := next.X + (next.W-engine.ShapeSize*cellWidth)/2
	for _, b := range view.NextShape.Blocks() {
		drawBlock(dst, previewX+b[0]*cellWidth, next.Y+1+b[1], '█', PieceColor(view.Next.Color()))
	}

	st := g.State()
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", st.Score)},
		{"LINES", fmt.Sprintf("%d", st.Lines)},
		{"LEVEL", fmt.Sprintf("%d", st.Level)},
		{"PIECES", fmt.Sprintf("%d", st.Pieces)},
	}

	y := next.Bottom() + 1
	for _, s := range stats {
		dst.DrawTextColored(panel.X+1, y, s.label, core.ColorGray)
		dst.DrawTextColored(panel.X+1, y+1, s.value, core.ColorBrightWhite)
		y += 2
	}

	if g.lastClear > 0 && !g.gameOver {
		dst.DrawTextColored(panel.X+1, y, clearName(g.lastClear), core.ColorBrightYellow)
	}
}

// renderOverlays draws pause and game-over messages over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	var lines []string
	switch {
	case g.gameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score %d", g.board.Score()), "", "R restart", "B menu"}
	case g.paused:
		lines = []string{"PAUSED", "", "P resume", "B menu"}
	default:
		return
	}

	inner := well.Inset(1)
	y := inner.Y + (inner.H-len(lines))/2
	dst.DrawRect(core.NewRect(inner.X, y-1, inner.W, len(lines)+2), ' ', core.ColorDefault)

	for i, line := range lines {
		if line == "" {
			continue
		}
		x := core.Clamp(inner.X+(inner.W-len([]rune(line)))/2, inner.X, inner.Right()-1)
		dst.DrawTextColored(x, y+i, line, core.ColorBrightWhite)
	}
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

// clearName names a multi-row clear.
func clearName(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "BLOCKFALL!"
	}
}
