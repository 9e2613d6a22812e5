package snake

// Actor is the snake itself: a head, an ordered body and a heading.
// Body is stored head-to-tail; Body[0] is the segment right behind Head.
type Actor struct {
	Head Point
	Body []Point
	Dir  Direction
}

// NewActor places a fresh snake with its head on the center cell of the
// board and bodyLen segments trailing behind it, opposite to dir.
func NewActor(g Grid, bodyLen int, dir Direction) Actor {
	head := g.Center()
	dx, dy := dir.Vector()

	body := make([]Point, bodyLen)
	for i := range body {
		step := (i + 1) * g.Cell
		body[i] = g.Wrap(head.Add(-dx*step, -dy*step))
	}

	return Actor{Head: head, Body: body, Dir: dir}
}

// Advance moves the snake one cell.
// A non-nil req changes the heading unless it would reverse the snake onto
// itself. Every body segment then takes the position its predecessor held
// before the move, the first segment takes the old head, and the head
// steps one cell along Dir with toroidal wraparound.
func (a *Actor) Advance(g Grid, req *Direction) {
	if req != nil && !req.IsReverseOf(a.Dir) {
		a.Dir = *req
	}

	for i := len(a.Body) - 1; i > 0; i-- {
		a.Body[i] = a.Body[i-1]
	}
	if len(a.Body) > 0 {
		a.Body[0] = a.Head
	}

	dx, dy := a.Dir.Vector()
	a.Head = g.Wrap(a.Head.Add(dx*g.Cell, dy*g.Cell))
}

// Grow appends a copy of the tail segment. The copy overlaps the tail for
// one tick and separates from it on the next Advance.
func (a *Actor) Grow() {
	a.Body = append(a.Body, a.Tail())
}

// Len returns the number of body segments, excluding the head.
func (a Actor) Len() int {
	return len(a.Body)
}

// Tail returns the last body segment, or the head for a headless body.
func (a Actor) Tail() Point {
	if len(a.Body) == 0 {
		return a.Head
	}
	return a.Body[len(a.Body)-1]
}

// BodyContains reports whether any body segment sits on p.
func (a Actor) BodyContains(p Point) bool {
	for _, seg := range a.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupies reports whether the head or any body segment sits on p.
func (a Actor) Occupies(p Point) bool {
	return a.Head == p || a.BodyContains(p)
}

// HitsSelf reports whether the head overlaps its own body.
func (a Actor) HitsSelf() bool {
	return a.BodyContains(a.Head)
}

// Segments returns head followed by body, as a new slice.
func (a Actor) Segments() []Point {
	segs := make([]Point, 0, len(a.Body)+1)
	segs = append(segs, a.Head)
	return append(segs, a.Body...)
}

// Clone returns a deep copy so the clone can be advanced independently.
func (a Actor) Clone() Actor {
	body := make([]Point, len(a.Body))
	copy(body, a.Body)
	a.Body = body
	return a
}
