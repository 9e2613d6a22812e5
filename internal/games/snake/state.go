package snake

import "fmt"

// Input is the per-tick command delivered to State.Step.
// The set is closed: the platform must translate raw keys into one of
// these values before calling the core.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputRestart
)

// Valid reports whether in belongs to the closed input set.
func (in Input) Valid() bool {
	return in >= InputNone && in <= InputRestart
}

// Direction returns the heading requested by in, if any.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return DirUp, true
	case InputDown:
		return DirDown, true
	case InputLeft:
		return DirLeft, true
	case InputRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputRestart:
		return "restart"
	default:
		return fmt.Sprintf("Input(%d)", int(in))
	}
}

// Phase is the game state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost
)

func (p Phase) String() string {
	if p == PhaseLost {
		return "lost"
	}
	return "playing"
}

// Event is something notable that happened during a Step.
type Event int

const (
	EventScored Event = iota
	EventLost
	EventRestarted
)

func (e Event) String() string {
	switch e {
	case EventScored:
		return "scored"
	case EventLost:
		return "lost"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Settings fixes the board and the starting snake for a session.
type Settings struct {
	Grid    Grid
	BodyLen int       // Initial body segments behind the head
	Dir     Direction // Initial heading
}

// DefaultSettings returns the reference setup: 1280x720 board, 40px cells,
// three body segments, heading right.
func DefaultSettings() Settings {
	return Settings{
		Grid:    DefaultGrid(),
		BodyLen: 3,
		Dir:     DirRight,
	}
}

// State is the complete game state. It is a value: Step never mutates the
// receiver and always returns the next state.
type State struct {
	Settings Settings
	Actor    Actor
	Food     Food
	Score    int
	Phase    Phase
	Tick     uint64 // Steps taken since the last (re)start
}

// NewState creates a fresh game in the Playing phase.
func NewState(s Settings, rng Rand) State {
	return State{
		Settings: s,
		Actor:    NewActor(s.Grid, s.BodyLen, s.Dir),
		Food:     NewFood(s.Grid, rng),
		Phase:    PhasePlaying,
	}
}

// Lost reports whether the game has reached the terminal phase.
func (s State) Lost() bool {
	return s.Phase == PhaseLost
}

// Step advances the game by one tick and returns the next state together
// with the events produced by this tick.
//
// While Playing the actor advances, then food is checked against the head
// and body, then the head is checked against the body. While Lost only
// InputRestart has an effect. Step panics on an input outside the closed
// set, which indicates a bug in the caller.
func (s State) Step(in Input, rng Rand) (State, []Event) {
	if !in.Valid() {
		panic(fmt.Sprintf("snake: invalid input %d", int(in)))
	}

	if s.Phase == PhaseLost {
		if in == InputRestart {
			return NewState(s.Settings, rng), []Event{EventRestarted}
		}
		return s, nil
	}

	g := s.Settings.Grid
	next := s
	next.Actor = s.Actor.Clone()
	next.Tick++

	var req *Direction
	if dir, ok := in.Direction(); ok {
		req = &dir
	}
	next.Actor.Advance(g, req)

	var events []Event

	// Food first, on post-advance positions
	if next.Food.Touches(g, next.Actor) {
		next.Score++
		next.Actor.Grow()
		next.Food.Respawn(g, rng)
		events = append(events, EventScored)
	}

	if next.Actor.HitsSelf() {
		next.Phase = PhaseLost
		events = append(events, EventLost)
	}

	return next, events
}
