package snake

import (
	"strconv"
	"strings"
)

const (
	GlyphBorder = '#'
	GlyphHead   = 'O'
	GlyphFruit  = 'F'
	GlyphBody   = 'o'
	GlyphEmpty  = ' '
)

const pausedLine = "Game Paused"

// Frame is one full redraw: the bordered board followed by status lines.
type Frame struct {
	Board  []string
	Status []string
}

func (f Frame) Lines() []string {
	lines := make([]string, 0, len(f.Board)+len(f.Status))
	lines = append(lines, f.Board...)
	return append(lines, f.Status...)
}

func (f Frame) String() string {
	return strings.Join(f.Lines(), "\n") + "\n"
}

// Render draws g as text. Head wins over fruit, fruit wins over body.
func Render(g *Game, paused bool) Frame {
	body := make([]bool, g.Width*g.Height)
	for _, seg := range g.Tail {
		body[seg.Y*g.Width+seg.X] = true
	}

	edge := strings.Repeat(string(GlyphBorder), g.Width+2)

	board := make([]string, 0, g.Height+2)
	board = append(board, edge)

	row := make([]rune, g.Width+2)
	for y := 0; y < g.Height; y++ {
		row[0] = GlyphBorder
		row[g.Width+1] = GlyphBorder
		for x := 0; x < g.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case p == g.Head:
				row[x+1] = GlyphHead
			case p == g.Fruit:
				row[x+1] = GlyphFruit
			case body[y*g.Width+x]:
				row[x+1] = GlyphBody
			default:
				row[x+1] = GlyphEmpty
			}
		}
		board = append(board, string(row))
	}
	board = append(board, edge)

	status := []string{"Score:" + strconv.Itoa(g.Score)}
	if paused {
		status = append(status, pausedLine)
	}

	return Frame{Board: board, Status: status}
}
