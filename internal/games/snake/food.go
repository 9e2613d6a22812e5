package snake

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it; tests can pass a seeded one or a stub.
type Rand interface {
	Intn(n int) int
}

// Food is the single piece of food on the board.
// Pos is the center pixel of the cell it occupies.
type Food struct {
	Pos Point
}

// NewFood places food on a random cell.
func NewFood(g Grid, rng Rand) Food {
	var f Food
	f.Respawn(g, rng)
	return f
}

// Respawn moves the food to a cell chosen uniformly over the whole board.
// Cells covered by the snake are not excluded, so food can land on the body.
func (f *Food) Respawn(g Grid, rng Rand) {
	col := rng.Intn(g.Cols())
	row := rng.Intn(g.Rows())
	f.Pos = g.CellCenter(col, row)
}

// Cell returns the top-left corner of the cell the food sits in,
// comparable against actor segments.
func (f Food) Cell(g Grid) Point {
	return g.Snap(f.Pos)
}

// Touches reports whether the food's cell is covered by the actor.
func (f Food) Touches(g Grid, a Actor) bool {
	return a.Occupies(f.Cell(g))
}
