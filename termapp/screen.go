// Package termapp draws cell screens on a raw ANSI terminal and reads keys
// from it.
package termapp

type Color struct {
	R, G, B uint8
}

var Black = Color{0x00, 0x00, 0x00}
var White = Color{0xff, 0xff, 0xff}

// Hex builds a Color from a 0xRRGGBB literal.
func Hex(c int) Color {
	return Color{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c >> 0),
	}
}

type Style struct {
	fore Color
	back Color
}

type Cell struct {
	Style
	text rune
}

type Cursor struct {
	Style
	x, y    int
	visible bool
}

// Screen is an off-screen grid of cells that a Terminal draws in one pass.
type Screen struct {
	width, height int
	cells         []Cell
	cursor        Cursor
}

func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Print writes text starting at (x, y). Runes past the right edge are dropped.
func (s *Screen) Print(x, y int, back, fore Color, text string) {
	for _, r := range text {
		s.PrintRune(x, y, back, fore, r)
		x++
	}
}

func (s *Screen) PrintRune(x, y int, back, fore Color, r rune) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{
		Style: Style{
			back: back,
			fore: fore,
		},
		text: r,
	}
}

// Rune returns the rune stored at (x, y), or 0 for a blank or out of range cell.
func (s *Screen) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.cells[y*s.width+x].text
}

func (s *Screen) SetCursor(x, y int, visible bool) {
	s.cursor.x = x
	s.cursor.y = y
	s.cursor.visible = visible
}
