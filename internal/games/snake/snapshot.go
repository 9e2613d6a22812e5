package snake

// Snapshot is the renderable view of a State: everything a presentation
// layer needs to draw one frame, plus what determinism tests compare.
// Positions are in pixels; use Grid.CellOf for cell coordinates.
type Snapshot struct {
	Tick     uint64  `yaml:"tick"`
	Score    int     `yaml:"score"`
	Terminal bool    `yaml:"terminal"`
	Phase    string  `yaml:"phase"`
	Dir      string  `yaml:"direction"`
	Head     Point   `yaml:"head"`
	Body     []Point `yaml:"body"`
	Food     Point   `yaml:"food"`
}

// Snapshot returns a copy of the state suitable for rendering.
// The Body slice is not shared with the state.
func (s State) Snapshot() Snapshot {
	segs := s.Actor.Segments()

	return Snapshot{
		Tick:     s.Tick,
		Score:    s.Score,
		Terminal: s.Phase == PhaseLost,
		Phase:    s.Phase.String(),
		Dir:      s.Actor.Dir.String(),
		Head:     segs[0],
		Body:     segs[1:],
		Food:     s.Food.Pos,
	}
}

// Equal reports whether two snapshots describe the same frame.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Tick != b.Tick || a.Score != b.Score || a.Terminal != b.Terminal ||
		a.Dir != b.Dir || a.Head != b.Head || a.Food != b.Food ||
		len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Body {
		if a.Body[i] != b.Body[i] {
			return false
		}
	}
	return true
}
