package snake

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// InputPoller reads single keystrokes from the player.
type InputPoller interface {
	// Poll waits up to timeout for one key. ok is false if none arrived.
	Poll(ctx context.Context, timeout time.Duration) (key rune, ok bool, err error)

	// Wait blocks with no timeout until a key arrives or ctx is done.
	Wait(ctx context.Context) (rune, error)
}

// Display shows a rendered frame, replacing whatever was on screen.
type Display interface {
	Show(Frame) error
}

type State int

const (
	Running State = iota
	Paused
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Loop drives one game: render, poll input, step, until the game is over.
type Loop struct {
	game    *Game
	input   InputPoller
	display Display
	log     zerolog.Logger
	state   State
}

func NewLoop(g *Game, input InputPoller, display Display, log zerolog.Logger) *Loop {
	return &Loop{
		game:    g,
		input:   input,
		display: display,
		log:     log,
		state:   Running,
	}
}

func (l *Loop) Game() *Game {
	return l.game
}

func (l *Loop) State() State {
	return l.state
}

// Run ticks until the game ends. A nil error means the player quit or the
// snake ran into itself; any error leaves the loop Terminated as well.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().
		Int("width", l.game.Width).
		Int("height", l.game.Height).
		Dur("tick", l.game.Tick).
		Msg("game started")

	for l.state != Terminated {
		if err := l.tick(ctx); err != nil {
			l.state = Terminated
			l.log.Error().Err(err).Int("score", l.game.Score).Msg("game aborted")
			return err
		}
	}

	l.log.Info().
		Int("score", l.game.Score).
		Int("length", len(l.game.Tail)).
		Msg("game over")
	return nil
}

func (l *Loop) tick(ctx context.Context) error {
	if err := l.display.Show(Render(l.game, false)); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	key, ok, err := l.input.Poll(ctx, l.game.Tick)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if ok {
		if err := l.handle(ctx, key); err != nil {
			return err
		}
	}

	if l.game.Over {
		l.state = Terminated
		return nil
	}

	score := l.game.Score
	l.game.Step()

	if l.game.Score != score {
		l.log.Debug().
			Int("score", l.game.Score).
			Int("length", len(l.game.Tail)).
			Interface("fruit", l.game.Fruit).
			Msg("fruit eaten")
	}
	if l.game.Over {
		l.log.Debug().Interface("head", l.game.Head).Msg("self collision")
		l.state = Terminated
	}
	return nil
}

func (l *Loop) handle(ctx context.Context, key rune) error {
	cmd := CommandFor(key)
	switch cmd {
	case CmdNone:
		l.log.Trace().Str("key", string(key)).Msg("ignored key")
		return nil
	case CmdPause:
		return l.pause(ctx)
	}

	l.game.Apply(cmd)
	switch cmd {
	case CmdFaster, CmdSlower:
		l.log.Debug().Stringer("command", cmd).Dur("tick", l.game.Tick).Msg("speed changed")
	case CmdQuit:
		l.log.Debug().Msg("quit requested")
	}
	return nil
}

// pause blocks until any key. The key that resumes play is not applied.
func (l *Loop) pause(ctx context.Context) error {
	l.state = Paused
	l.log.Debug().Msg("paused")

	if err := l.display.Show(Render(l.game, true)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := l.input.Wait(ctx); err != nil {
		return fmt.Errorf("wait input: %w", err)
	}

	l.state = Running
	l.log.Debug().Msg("resumed")
	return nil
}
