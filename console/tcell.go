package console

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rovaughn/termsnake/snake"
)

// Tcell runs the game on a tcell screen. tcell only offers a blocking
// PollEvent, so a pump goroutine feeds events into a channel the game reads
// with a timeout.
type Tcell struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	closed bool
}

// NewTcell initialises screen and takes ownership of it.
func NewTcell(screen tcell.Screen) (*Tcell, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: init tcell screen: %w", err)
	}
	screen.HideCursor()

	c := &Tcell{
		screen: screen,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go c.pump()
	return c, nil
}

func (c *Tcell) pump() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.quit:
			return
		}
	}
}

func (c *Tcell) Show(f snake.Frame) error {
	c.screen.Clear()
	for y, line := range f.Board {
		x := 0
		for _, r := range line {
			c.screen.SetContent(x, y, r, nil, tcellStyle(glyphColor(r)))
			x++
		}
	}
	for i, line := range f.Status {
		x := 0
		for _, r := range line {
			c.screen.SetContent(x, len(f.Board)+i, r, nil, tcellStyle(colorText))
			x++
		}
	}
	c.screen.Show()
	return nil
}

func (c *Tcell) Poll(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, false, ctx.Err()
		case <-timer.C:
			return 0, false, nil
		case ev := <-c.events:
			if key, ok := c.keyRune(ev); ok {
				return key, true, nil
			}
		}
	}
}

func (c *Tcell) Wait(ctx context.Context) (rune, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case ev := <-c.events:
			if key, ok := c.keyRune(ev); ok {
				return key, nil
			}
		}
	}
}

// keyRune extracts a game key from ev. Resizes trigger a full resync.
func (c *Tcell) keyRune(ev tcell.Event) (rune, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return ev.Rune(), true
		case tcell.KeyUp:
			return 'w', true
		case tcell.KeyDown:
			return 's', true
		case tcell.KeyLeft:
			return 'a', true
		case tcell.KeyRight:
			return 'd', true
		case tcell.KeyCtrlC:
			return 'x', true
		}
	}
	return 0, false
}

// Close restores the terminal. Calling it more than once is a no-op.
func (c *Tcell) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.quit)
	c.screen.Fini()
	return nil
}
