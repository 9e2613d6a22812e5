package snake

import (
	"math/rand"

	"github.com/jharviy/snake/internal/core"
)

// Options configures the frame adapter.
type Options struct {
	Settings       Settings
	MoveEveryTicks int // Platform frames per core tick
}

// DefaultOptions returns the reference settings moving once every 7 frames.
func DefaultOptions() Options {
	return Options{
		Settings:       DefaultSettings(),
		MoveEveryTicks: 7,
	}
}

// Game adapts the tick-driven core to the platform's frame loop.
// The platform calls Step once per frame; Game buffers the latest
// direction and advances the core once every MoveEveryTicks frames.
type Game struct {
	opts  Options
	rng   *rand.Rand
	state State

	moveTicker int   // Counts frames until next core tick
	pending    Input // Buffered direction for next core tick
	paused     bool
	best       int // Best score this process

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Snake game with the given options.
func New(opts Options) *Game {
	if opts.MoveEveryTicks <= 0 {
		opts.MoveEveryTicks = 1
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new session with a fresh random source.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = NewState(g.opts.Settings, g.rng)
	g.moveTicker = 0
	g.pending = InputNone
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the available screen size without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < bh+hudHeight
}

// Step processes one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Lost() {
		if in.Has(core.ActionRestart) {
			return g.tick(InputRestart)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.bufferInput(in)

	g.moveTicker++
	if g.moveTicker < g.opts.MoveEveryTicks {
		return core.StepResult{State: g.State()}
	}

	next := g.pending
	g.pending = InputNone
	return g.tick(next)
}

// tick advances the core by exactly one step.
func (g *Game) tick(in Input) core.StepResult {
	var events []Event
	g.state, events = g.state.Step(in, g.rng)
	g.moveTicker = 0
	g.best = max(g.best, g.state.Score)

	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.String()
	}
	return core.StepResult{State: g.State(), Moved: true, Events: names}
}

// bufferInput keeps the most recent direction that is not a reversal of
// the current heading, so a quick turn is not lost to a rejected key.
func (g *Game) bufferInput(in core.InputFrame) {
	candidate, ok := directionInput(in)
	if !ok {
		return
	}
	dir, _ := candidate.Direction()
	if dir.IsReverseOf(g.state.Actor.Dir) {
		return
	}
	g.pending = candidate
}

// directionInput picks the direction requested by a frame. When several
// directions were pressed, the last one wins.
func directionInput(in core.InputFrame) (Input, bool) {
	if dir, ok := actionInput(in.Last); ok {
		return dir, true
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return actionInput(a)
		}
	}
	return InputNone, false
}

func actionInput(a core.Action) (Input, bool) {
	switch a {
	case core.ActionUp:
		return InputUp, true
	case core.ActionDown:
		return InputDown, true
	case core.ActionLeft:
		return InputLeft, true
	case core.ActionRight:
		return InputRight, true
	}
	return InputNone, false
}

// State returns the platform-level summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Lost(),
		Paused:   g.paused,
	}
}

// Snapshot returns the renderable view of the current core state.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Best returns the highest score reached since the process started.
func (g *Game) Best() int {
	return g.best
}
