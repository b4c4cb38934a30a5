package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rovaughn/termsnake/snake"
)

func simTcell(t *testing.T) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := NewTcell(screen)
	if err != nil {
		t.Fatalf("NewTcell: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	screen.SetSize(40, 30)
	return c, screen
}

func TestTcellShow(t *testing.T) {
	c, screen := simTcell(t)

	g := snake.Setup(snake.WithSeed(1))
	g.Fruit = snake.Position{X: 0, Y: 0}
	g.Tail = []snake.Position{{X: 9, Y: 10}}
	if err := c.Show(snake.Render(g, false)); err != nil {
		t.Fatalf("Show: %v", err)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, snake.GlyphBorder},
		{21, 21, snake.GlyphBorder},
		{1, 1, snake.GlyphFruit},
		{11, 11, snake.GlyphHead},
		{10, 11, snake.GlyphBody},
		{0, 22, 'S'},
	}
	for _, tt := range tests {
		r, _, _, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, r, tt.want)
		}
	}
}

func TestTcellPoll(t *testing.T) {
	c, screen := simTcell(t)
	ctx := context.Background()

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	screen.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))

	for _, want := range []rune{'d', 'w', 'x'} {
		key, ok, err := c.Poll(ctx, time.Second)
		if err != nil || !ok || key != want {
			t.Errorf("Poll = (%q, %v, %v), want %q", key, ok, err, want)
		}
	}

	if key, ok, err := c.Poll(ctx, 20*time.Millisecond); ok || err != nil {
		t.Errorf("Poll on idle screen = (%q, %v, %v), want timeout", key, ok, err)
	}
}

func TestTcellWaitCancelled(t *testing.T) {
	c, _ := simTcell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestTcellCloseTwice(t *testing.T) {
	c, _ := simTcell(t)

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
