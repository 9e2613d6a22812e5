package snake

import (
	"fmt"

	"github.com/jharviy/snake/internal/core"
)

const (
	hudHeight  = 1 // Score line above the board
	cellWidth  = 2 // Terminal columns per board cell, keeps cells roughly square
	borderSize = 1
)

// boardSize returns the board's footprint on screen including its border.
func (g *Game) boardSize() (w, h int) {
	grid := g.opts.Settings.Grid
	return grid.Cols()*cellWidth + 2*borderSize, grid.Rows() + 2*borderSize
}

// boardRect returns where the bordered board is drawn, centered horizontally.
func (g *Game) boardRect() core.Rect {
	w, h := g.boardSize()
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.boardSize()
		renderOverlay(dst, dst.Bounds(), "Window too small",
			fmt.Sprintf("Need %dx%d", w, h+hudHeight), core.ColorYellow)
		return
	}

	snap := g.Snapshot()
	board := g.boardRect()

	g.renderHUD(dst, snap, board)
	dst.DrawBox(board, core.ColorGray)
	g.renderSnake(dst, snap, board)
	g.renderFood(dst, snap, board)

	switch {
	case snap.Terminal:
		renderOverlay(dst, board, "Game Over", "Press SPACE for NEW GAME", core.ColorRed)
	case g.paused:
		renderOverlay(dst, board, "Paused", "Press P to continue", core.ColorWhite)
	}
}

// renderHUD draws the score line above the board.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, board core.Rect) {
	dst.DrawTextColor(board.X, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawTextColor(board.Right()-len(best), 0, best, core.ColorGray)
}

// cellOrigin maps a board pixel position to the screen column and row of
// the left half of its cell.
func (g *Game) cellOrigin(p Point, board core.Rect) (x, y int) {
	col, row := g.opts.Settings.Grid.CellOf(p)
	return board.X + borderSize + col*cellWidth, board.Y + borderSize + row
}

func (g *Game) renderSnake(dst *core.Screen, snap Snapshot, board core.Rect) {
	// Tail first so the head stays on top when segments overlap
	for i := len(snap.Body) - 1; i >= 0; i-- {
		x, y := g.cellOrigin(snap.Body[i], board)
		dst.SetColor(x, y, '[', core.ColorDarkGreen)
		dst.SetColor(x+1, y, ']', core.ColorDarkGreen)
	}

	x, y := g.cellOrigin(snap.Head, board)
	dst.SetColor(x, y, '█', core.ColorDarkGreen)
	dst.SetColor(x+1, y, '█', core.ColorDarkGreen)
}

func (g *Game) renderFood(dst *core.Screen, snap Snapshot, board core.Rect) {
	x, y := g.cellOrigin(snap.Food, board)
	dst.SetColor(x, y, '(', core.ColorBlue)
	dst.SetColor(x+1, y, ')', core.ColorBlue)
}

// renderOverlay draws a two-line message box centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string, c core.Color) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColor(cx-len(line1)/2, box.Y+1, line1, c)
	dst.DrawTextColor(cx-len(line2)/2, box.Y+3, line2, c)
}
