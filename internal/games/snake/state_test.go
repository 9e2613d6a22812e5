package snake

import (
	"math/rand"
	"testing"
)

// farRand places food in the top-left corner, away from the starting snake.
func farRand() *seqRand {
	return &seqRand{vals: []int{0}}
}

func newTestState(rng Rand) State {
	return NewState(DefaultSettings(), rng)
}

func hasEvent(events []Event, e Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func TestNewState(t *testing.T) {
	s := newTestState(farRand())

	if s.Phase != PhasePlaying || s.Lost() {
		t.Errorf("Phase = %v, expected playing", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
	if s.Actor.Len() != 3 {
		t.Errorf("body length = %d, expected 3", s.Actor.Len())
	}
	if s.Food.Pos != (Point{X: 20, Y: 20}) {
		t.Errorf("Food = %v, expected (20, 20)", s.Food.Pos)
	}
}

func TestStepNoneMovesRight(t *testing.T) {
	rng := farRand()
	s := newTestState(rng)

	next, events := s.Step(InputNone, rng)

	if next.Actor.Head != (Point{X: 680, Y: 360}) {
		t.Errorf("Head = %v, expected (680, 360)", next.Actor.Head)
	}
	if next.Score != 0 {
		t.Errorf("Score = %d, expected 0", next.Score)
	}
	if len(events) != 0 {
		t.Errorf("events = %v, expected none", events)
	}
	if next.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", next.Tick)
	}
}

func TestStepDoesNotMutateReceiver(t *testing.T) {
	rng := farRand()
	s := newTestState(rng)
	before := s.Snapshot()

	s.Step(InputDown, rng)

	if !s.Snapshot().Equal(before) {
		t.Errorf("Step mutated its receiver: %+v vs %+v", s.Snapshot(), before)
	}
}

func TestStepEatsFood(t *testing.T) {
	// First draw puts food on the cell right of the head, then far away
	rng := &seqRand{vals: []int{17, 9, 0, 0}}
	s := newTestState(rng)

	next, events := s.Step(InputNone, rng)

	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	if next.Actor.Len() != 4 {
		t.Errorf("body length = %d, expected 4", next.Actor.Len())
	}
	if next.Food.Pos != (Point{X: 20, Y: 20}) {
		t.Errorf("food should be resampled to (20, 20), got %v", next.Food.Pos)
	}
	if !hasEvent(events, EventScored) {
		t.Errorf("events = %v, expected scored", events)
	}
	if next.Lost() {
		t.Error("eating food should not end the game")
	}
}

func TestStepEatsFoodUnderBody(t *testing.T) {
	// Food on the second body segment is consumed too
	rng := &seqRand{vals: []int{14, 9, 0, 0}}
	s := newTestState(rng)

	next, events := s.Step(InputNone, rng)

	if next.Score != 1 || !hasEvent(events, EventScored) {
		t.Errorf("food under the body should score, got score %d events %v", next.Score, events)
	}
}

func TestStepRejectsReversal(t *testing.T) {
	rng := farRand()
	s := newTestState(rng)

	s, _ = s.Step(InputRight, rng)
	s, _ = s.Step(InputLeft, rng)

	if s.Actor.Dir != DirRight {
		t.Errorf("Dir = %v, expected right", s.Actor.Dir)
	}
	if s.Actor.Head != (Point{X: 720, Y: 360}) {
		t.Errorf("Head = %v, expected (720, 360)", s.Actor.Head)
	}
}

func TestStepRestartWhilePlayingJustAdvances(t *testing.T) {
	rng := farRand()
	s := newTestState(rng)

	next, events := s.Step(InputRestart, rng)

	if next.Actor.Head != (Point{X: 680, Y: 360}) || next.Tick != 1 {
		t.Errorf("restart while playing should advance normally, got head %v tick %d", next.Actor.Head, next.Tick)
	}
	if hasEvent(events, EventRestarted) {
		t.Error("restart should be ignored while playing")
	}
}

// loopState returns a state whose next move to the right runs into the body.
func loopState(rng Rand) State {
	s := newTestState(rng)
	s.Actor = Actor{
		Head: Point{X: 200, Y: 200},
		Body: []Point{
			{X: 200, Y: 240},
			{X: 240, Y: 240},
			{X: 240, Y: 200},
			{X: 240, Y: 160},
			{X: 200, Y: 160},
		},
		Dir: DirUp,
	}
	return s
}

func TestStepSelfCollision(t *testing.T) {
	rng := farRand()
	s := loopState(rng)

	next, events := s.Step(InputRight, rng)

	if !next.Lost() {
		t.Fatalf("Phase = %v, expected lost (head %v body %v)", next.Phase, next.Actor.Head, next.Actor.Body)
	}
	if !hasEvent(events, EventLost) {
		t.Errorf("events = %v, expected lost", events)
	}
	if !next.Snapshot().Terminal {
		t.Error("snapshot should be terminal")
	}
}

func TestStepFoodCheckedBeforeSelfCollision(t *testing.T) {
	// Food sits where the head lands on the body: score first, then lose
	rng := &seqRand{vals: []int{6, 5, 0, 0}}
	s := loopState(rng)

	next, events := s.Step(InputRight, rng)

	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	if !next.Lost() {
		t.Error("expected lost after collision")
	}
	if len(events) != 2 || events[0] != EventScored || events[1] != EventLost {
		t.Errorf("events = %v, expected [scored lost]", events)
	}
}

func TestLostIsTerminal(t *testing.T) {
	rng := farRand()
	lost, _ := loopState(rng).Step(InputRight, rng)
	before := lost.Snapshot()

	for _, in := range []Input{InputUp, InputDown, InputLeft, InputRight, InputNone} {
		next, events := lost.Step(in, rng)
		if !next.Snapshot().Equal(before) {
			t.Errorf("Step(%v) changed a lost game", in)
		}
		if len(events) != 0 {
			t.Errorf("Step(%v) on a lost game raised %v", in, events)
		}
		lost = next
	}
}

func TestRestartAfterLost(t *testing.T) {
	rng := farRand()
	lost, _ := loopState(rng).Step(InputRight, rng)
	lost.Score = 12

	next, events := lost.Step(InputRestart, rng)

	if next.Lost() {
		t.Error("restart should return to playing")
	}
	if next.Score != 0 {
		t.Errorf("Score = %d, expected 0", next.Score)
	}
	if next.Actor.Len() != 3 {
		t.Errorf("body length = %d, expected 3", next.Actor.Len())
	}
	if next.Actor.Head != (Point{X: 640, Y: 360}) {
		t.Errorf("Head = %v, expected (640, 360)", next.Actor.Head)
	}
	if next.Tick != 0 {
		t.Errorf("Tick = %d, expected 0", next.Tick)
	}
	if !hasEvent(events, EventRestarted) {
		t.Errorf("events = %v, expected restarted", events)
	}
}

func TestGrowthInvariant(t *testing.T) {
	// Every respawn drops food on the cell ahead of the head, so each step scores.
	g := DefaultGrid()
	s := newTestState(&seqRand{vals: []int{17, 9}})

	for n := 1; n <= 10; n++ {
		col, row := g.CellOf(s.Actor.Head)
		rng := &seqRand{vals: []int{col + 2, row}}
		var events []Event
		s, events = s.Step(InputNone, rng)

		if s.Lost() {
			t.Fatalf("step %d: unexpected loss", n)
		}
		if !hasEvent(events, EventScored) {
			t.Fatalf("step %d: expected to score, food %v head %v", n, s.Food.Pos, s.Actor.Head)
		}
		if s.Actor.Len() != 3+n {
			t.Errorf("step %d: body length = %d, expected %d", n, s.Actor.Len(), 3+n)
		}
		if s.Score != n {
			t.Errorf("step %d: score = %d, expected %d", n, s.Score, n)
		}
	}
}

func TestInvalidInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Step should panic on an input outside the closed set")
		}
	}()

	rng := farRand()
	newTestState(rng).Step(Input(42), rng)
}

func TestDeterminism(t *testing.T) {
	inputs := []Input{InputNone, InputDown, InputNone, InputLeft, InputLeft, InputUp, InputRight}

	run := func() Snapshot {
		rng := rand.New(rand.NewSource(12345))
		s := newTestState(rng)
		for i := 0; i < 500; i++ {
			s, _ = s.Step(inputs[i%len(inputs)], rng)
			if s.Lost() {
				s, _ = s.Step(InputRestart, rng)
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !a.Equal(b) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotDoesNotShareBody(t *testing.T) {
	s := newTestState(farRand())
	snap := s.Snapshot()

	if snap.Head != s.Actor.Head || len(snap.Body) != len(s.Actor.Body) {
		t.Fatalf("Snapshot() = %+v, expected head %v and %d segments", snap, s.Actor.Head, len(s.Actor.Body))
	}

	snap.Body[0] = Point{X: -1, Y: -1}
	if s.Actor.Body[0] == snap.Body[0] {
		t.Error("editing the snapshot changed the state's body")
	}
}
