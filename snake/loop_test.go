package snake

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// scriptedInput replays one entry per Poll; 0 means no key that tick.
// Once the script runs out it presses quit.
type scriptedInput struct {
	polls    []rune
	waits    []rune
	timeouts []time.Duration
	waited   int
	err      error
}

func (s *scriptedInput) Poll(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	if s.err != nil {
		return 0, false, s.err
	}
	s.timeouts = append(s.timeouts, timeout)
	if len(s.polls) == 0 {
		return 'x', true, nil
	}
	key := s.polls[0]
	s.polls = s.polls[1:]
	return key, key != 0, nil
}

func (s *scriptedInput) Wait(ctx context.Context) (rune, error) {
	s.waited++
	if len(s.waits) == 0 {
		return 0, errors.New("unexpected wait")
	}
	key := s.waits[0]
	s.waits = s.waits[1:]
	return key, nil
}

type recordingDisplay struct {
	frames []Frame
	err    error
}

func (d *recordingDisplay) Show(f Frame) error {
	d.frames = append(d.frames, f)
	return d.err
}

func newTestLoop(input *scriptedInput) (*Loop, *recordingDisplay) {
	g := Setup(WithSeed(1))
	g.Fruit = Position{0, 0}
	display := &recordingDisplay{}
	return NewLoop(g, input, display, zerolog.Nop()), display
}

func TestLoopQuit(t *testing.T) {
	loop, display := newTestLoop(&scriptedInput{polls: []rune{'x'}})

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if loop.State() != Terminated {
		t.Errorf("state = %v, want terminated", loop.State())
	}
	if len(display.frames) != 1 {
		t.Errorf("rendered %d frames, want 1", len(display.frames))
	}
	if loop.Game().Head != (Position{10, 10}) {
		t.Errorf("quit tick moved the head to %v", loop.Game().Head)
	}
}

func TestLoopMovesEachTick(t *testing.T) {
	input := &scriptedInput{polls: []rune{'d', 0, 0, 'x'}}
	loop, display := newTestLoop(input)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	g := loop.Game()
	if g.Head != (Position{13, 10}) {
		t.Errorf("head = %v, want {13 10}", g.Head)
	}
	if len(display.frames) != 4 {
		t.Errorf("rendered %d frames, want 4", len(display.frames))
	}
	for i, d := range input.timeouts {
		if d != DefaultTick {
			t.Errorf("poll %d used timeout %v, want %v", i, d, DefaultTick)
		}
	}
	// Render happens before the step, so frame 2 shows the first move.
	if got := display.frames[1].Board[11][12]; got != GlyphHead {
		t.Errorf("second frame has %q at {11 10}, want head", got)
	}
}

func TestLoopIgnoresUnknownKeys(t *testing.T) {
	loop, _ := newTestLoop(&scriptedInput{polls: []rune{'q', 'W', 'x'}})

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g := loop.Game(); g.Dir != Stopped || g.Head != (Position{10, 10}) {
		t.Errorf("unknown keys changed the game: dir=%v head=%v", g.Dir, g.Head)
	}
}

func TestLoopSpeedKeys(t *testing.T) {
	input := &scriptedInput{polls: []rune{'+', '+', '-', 0, 'x'}}
	loop, _ := newTestLoop(input)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []time.Duration{
		DefaultTick,
		DefaultTick - TickDelta,
		DefaultTick - 2*TickDelta,
		DefaultTick - TickDelta,
		DefaultTick - TickDelta,
	}
	if len(input.timeouts) != len(want) {
		t.Fatalf("polled %d times, want %d", len(input.timeouts), len(want))
	}
	for i := range want {
		if input.timeouts[i] != want[i] {
			t.Errorf("poll %d timeout = %v, want %v", i, input.timeouts[i], want[i])
		}
	}
}

func TestLoopPause(t *testing.T) {
	input := &scriptedInput{polls: []rune{'d', 'p', 'x'}, waits: []rune{'a'}}
	loop, display := newTestLoop(input)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if input.waited != 1 {
		t.Errorf("waited %d times, want 1", input.waited)
	}
	// The resuming key is swallowed.
	if g := loop.Game(); g.Dir != Right {
		t.Errorf("dir = %v, want right", g.Dir)
	}

	var sawPaused bool
	for _, f := range display.frames {
		if strings.Contains(f.String(), "Game Paused") {
			sawPaused = true
		}
	}
	if !sawPaused {
		t.Error("no paused frame was shown")
	}
}

func TestLoopEndsOnSelfCollision(t *testing.T) {
	input := &scriptedInput{polls: []rune{'d'}}
	loop, _ := newTestLoop(input)
	g := loop.Game()
	g.Head = Position{5, 5}
	g.Tail = []Position{{6, 5}, {7, 5}}

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !g.Over || loop.State() != Terminated {
		t.Errorf("over=%v state=%v, want game over", g.Over, loop.State())
	}
	if g.Score != 0 {
		t.Errorf("score = %d, want 0", g.Score)
	}
}

func TestLoopEatsFruit(t *testing.T) {
	loop, _ := newTestLoop(&scriptedInput{polls: []rune{'d', 'x'}})
	loop.Game().Fruit = Position{11, 10}

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g := loop.Game(); g.Score != FruitReward || len(g.Tail) != 1 {
		t.Errorf("score=%d tail=%d, want %d and 1", g.Score, len(g.Tail), FruitReward)
	}
}

func TestLoopInputError(t *testing.T) {
	input := &scriptedInput{err: context.Canceled}
	loop, _ := newTestLoop(input)

	err := loop.Run(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
	if loop.State() != Terminated {
		t.Errorf("state = %v, want terminated", loop.State())
	}
}

func TestLoopDisplayError(t *testing.T) {
	loop, display := newTestLoop(&scriptedInput{})
	display.err = errors.New("broken pipe")

	if err := loop.Run(context.Background()); err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("Run = %v, want display error", err)
	}
}
