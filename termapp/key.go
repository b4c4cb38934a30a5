package termapp

import (
	"fmt"
	"unicode/utf8"
)

// Key is a decoded keystroke. Printable keys are their rune; special keys
// are negative.
type Key rune

const (
	KeyUp Key = -(iota + 1)
	KeyDown
	KeyRight
	KeyLeft
	KeyEscape
	KeyUnknown
)

const (
	KeyCtrlC     Key = 0x03
	KeyEnter     Key = '\r'
	KeyBackspace Key = 0x7f
)

var keyNames = map[Key]string{
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyEscape:    "Esc",
	KeyUnknown:   "Unknown",
	KeyCtrlC:     "Ctrl+C",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	' ':          "Space",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > 0 && k < 0x20 {
		return fmt.Sprintf("Ctrl+%c", rune(k)+'@')
	}
	if k < 0 {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return string(rune(k))
}

// decodeKey reads one key from the front of b and reports how many bytes it
// used. It returns 0 bytes only for empty input.
func decodeKey(b []byte) (Key, int) {
	if len(b) == 0 {
		return 0, 0
	}

	if b[0] == 0x1b {
		if len(b) == 1 || (b[1] != '[' && b[1] != 'O') {
			return KeyEscape, 1
		}
		if len(b) == 2 {
			return KeyEscape, 2
		}
		switch b[2] {
		case 'A':
			return KeyUp, 3
		case 'B':
			return KeyDown, 3
		case 'C':
			return KeyRight, 3
		case 'D':
			return KeyLeft, 3
		}
		// Skip the rest of an unrecognised CSI sequence up to its final byte.
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return KeyUnknown, i + 1
			}
		}
		return KeyUnknown, len(b)
	}

	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError && n <= 1 {
		return KeyUnknown, 1
	}
	return Key(r), n
}
