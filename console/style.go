// Package console adapts terminal backends to the snake game's input and
// display interfaces.
package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rovaughn/termsnake/snake"
	"github.com/rovaughn/termsnake/termapp"
)

// Glyph colours as 0xRRGGBB.
const (
	colorBackground = 0x000000
	colorBorder     = 0x808080
	colorHead       = 0x7fff7f
	colorBody       = 0x00c000
	colorFruit      = 0xff3030
	colorText       = 0xffffff
)

func glyphColor(r rune) int {
	switch r {
	case snake.GlyphBorder:
		return colorBorder
	case snake.GlyphHead:
		return colorHead
	case snake.GlyphBody:
		return colorBody
	case snake.GlyphFruit:
		return colorFruit
	}
	return colorText
}

func tcellStyle(fore int) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(fore))).
		Background(tcell.NewHexColor(colorBackground))
}

// translate folds terminal-specific keys onto the game's key set: arrows
// steer like w/a/s/d and Ctrl-C quits like x.
func translate(k termapp.Key) rune {
	switch k {
	case termapp.KeyUp:
		return 'w'
	case termapp.KeyDown:
		return 's'
	case termapp.KeyLeft:
		return 'a'
	case termapp.KeyRight:
		return 'd'
	case termapp.KeyCtrlC:
		return 'x'
	}
	return rune(k)
}
