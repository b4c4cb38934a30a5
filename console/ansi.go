package console

import (
	"context"
	"time"

	"github.com/rovaughn/termsnake/snake"
	"github.com/rovaughn/termsnake/termapp"
)

// ANSI runs the game on a raw tty through termapp.
type ANSI struct {
	term *termapp.Terminal
}

func NewANSI(t *termapp.Terminal) *ANSI {
	return &ANSI{term: t}
}

func (a *ANSI) Show(f snake.Frame) error {
	lines := f.Lines()
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	screen := termapp.NewScreen(width, len(lines))
	back := termapp.Hex(colorBackground)
	for y, line := range f.Board {
		x := 0
		for _, r := range line {
			screen.PrintRune(x, y, back, termapp.Hex(glyphColor(r)), r)
			x++
		}
	}
	for i, line := range f.Status {
		screen.Print(0, len(f.Board)+i, back, termapp.Hex(colorText), line)
	}

	return a.term.Draw(screen)
}

func (a *ANSI) Poll(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	k, ok, err := a.term.PollKey(ctx, timeout)
	if err != nil || !ok {
		return 0, false, err
	}
	return translate(k), true, nil
}

func (a *ANSI) Wait(ctx context.Context) (rune, error) {
	k, err := a.term.WaitKey(ctx)
	if err != nil {
		return 0, err
	}
	return translate(k), nil
}

func (a *ANSI) Close() error {
	return a.term.Close()
}
