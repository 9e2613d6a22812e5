// Package snake implements the classic wraparound Snake game.
//
// The package is split in two layers. The core (Grid, Actor, Food and
// State) is a pure, tick-driven state machine with no notion of real time
// or terminals: State.Step advances exactly one unit of game time and
// returns the next state. Game is the frame adapter used by the platform;
// it buffers input between moves, owns pacing and draws into a core.Screen.
package snake

import "fmt"

// Point is a pixel coordinate on the board.
// Actor segments are stored as the top-left corner of their cell;
// food is stored as the center of its cell.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid describes the board: its size in pixels and the size of one cell.
type Grid struct {
	Width  int // Board width in pixels
	Height int // Board height in pixels
	Cell   int // Cell edge length in pixels
}

// DefaultGrid returns the reference 1280x720 board with 40px cells.
func DefaultGrid() Grid {
	return Grid{Width: 1280, Height: 720, Cell: 40}
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.Cell
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.Cell
}

// Wrap applies toroidal wraparound to a cell-aligned point.
// Leaving through the right or bottom edge re-enters at 0; leaving through
// the left or top edge re-enters at the last cell on that axis.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

func wrap(v, bound int) int {
	v %= bound
	if v < 0 {
		v += bound
	}
	return v
}

// CellOf returns the (col, row) of the cell containing p.
func (g Grid) CellOf(p Point) (col, row int) {
	return p.X / g.Cell, p.Y / g.Cell
}

// Snap returns the top-left corner of the cell containing p.
func (g Grid) Snap(p Point) Point {
	col, row := g.CellOf(p)
	return g.CellOrigin(col, row)
}

// CellOrigin returns the top-left pixel of the given cell.
func (g Grid) CellOrigin(col, row int) Point {
	return Point{X: col * g.Cell, Y: row * g.Cell}
}

// CellCenter returns the center pixel of the given cell.
func (g Grid) CellCenter(col, row int) Point {
	half := g.Cell / 2
	return Point{X: col*g.Cell + half, Y: row*g.Cell + half}
}

// Center returns the top-left corner of the cell at the middle of the board.
func (g Grid) Center() Point {
	return g.CellOrigin(g.Cols()/2, g.Rows()/2)
}
