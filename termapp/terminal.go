package termapp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/crypto/ssh/terminal"
)

// CSI is "\x1b["

var (
	ErrNotTerminal = errors.New("termapp: not a terminal")
	ErrTooSmall    = errors.New("termapp: terminal too small")
)

const (
	seqEnter = "\x1b[?1049h\x1b[?25l"
	seqLeave = "\x1b[0m\x1b[?25h\x1b[?1049l"
	seqClear = "\x1b[H\x1b[2J\x1b[0m"
)

// Terminal owns a tty in raw mode. Every Draw clears the display and rewrites
// the whole screen.
type Terminal struct {
	file     *os.File
	in       *os.File // held so its finalizer cannot close fd
	out      io.Writer
	fd       int
	oldState *terminal.State

	width, height int

	buf     []byte
	pending []byte
	cursor  Cursor
	styled  bool
	closed  bool
}

// Open puts the tty at path into raw mode and switches to the alternate
// screen. The caller must Close the terminal to restore the original mode.
func Open(path string) (*Terminal, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("termapp: open %s: %w", path, err)
	}

	fd := int(f.Fd())
	if !terminal.IsTerminal(fd) {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, path)
	}

	width, height, err := terminal.GetSize(fd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("termapp: get size: %w", err)
	}

	oldState, err := terminal.MakeRaw(fd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("termapp: raw mode: %w", err)
	}

	t := New(f, f)
	t.file = f
	t.oldState = oldState
	t.width, t.height = width, height

	t.buf = append(t.buf, seqEnter...)
	t.clear()
	if err := t.flush(); err != nil {
		t.Close()
		return nil, err
	}

	return t, nil
}

// New wraps in and out as they are, without touching tty modes or the
// alternate screen.
func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:  in,
		out: out,
		fd:  int(in.Fd()),
	}
}

func (t *Terminal) Size() (width, height int) {
	return t.width, t.height
}

// Fit reports ErrTooSmall when a width x height frame cannot be shown.
func (t *Terminal) Fit(width, height int) error {
	if t.width < width || t.height < height {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, width, height, t.width, t.height)
	}
	return nil
}

// Close leaves the alternate screen and restores the original tty mode.
// Calling it more than once is a no-op.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	t.buf = append(t.buf, seqLeave...)
	err := t.flush()

	if t.oldState != nil {
		if rerr := terminal.Restore(t.fd, t.oldState); rerr != nil && err == nil {
			err = fmt.Errorf("termapp: restore: %w", rerr)
		}
	}
	if t.file != nil {
		if cerr := t.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (t *Terminal) flush() error {
	n, err := t.out.Write(t.buf)
	if n == len(t.buf) {
		t.buf = t.buf[:0]
	} else {
		copy(t.buf, t.buf[n:])
		t.buf = t.buf[:len(t.buf)-n]
	}
	return err
}

func (t *Terminal) clear() {
	t.buf = append(t.buf, seqClear...)
	t.cursor.x = 0
	t.cursor.y = 0
	t.styled = false
}

func (t *Terminal) moveCursor(x, y int) {
	if t.cursor.x == x && t.cursor.y == y {
		return
	}

	t.buf = append(t.buf, []byte("\x1b[")...)
	t.buf = strconv.AppendInt(t.buf, int64(y)+1, 10)
	t.buf = append(t.buf, ';')
	t.buf = strconv.AppendInt(t.buf, int64(x)+1, 10)
	t.buf = append(t.buf, 'H')

	t.cursor.x = x
	t.cursor.y = y
}

var numTable = func() (table []string) {
	table = make([]string, 256)
	for i := 0; i < 256; i++ {
		table[i] = strconv.Itoa(i)
	}
	return
}()

func (t *Terminal) setCursorStyle(s Style) {
	// SGR is short for Select Graphic Rendition
	sgrs := make([]int, 0, 10)

	if !t.styled || s.fore != t.cursor.fore {
		sgrs = append(sgrs, 38, 2, int(s.fore.R), int(s.fore.G), int(s.fore.B))
		t.cursor.fore = s.fore
	}

	if !t.styled || s.back != t.cursor.back {
		sgrs = append(sgrs, 48, 2, int(s.back.R), int(s.back.G), int(s.back.B))
		t.cursor.back = s.back
	}
	t.styled = true

	if len(sgrs) > 0 {
		t.buf = append(t.buf, []byte("\x1b[")...)
		t.buf = append(t.buf, numTable[sgrs[0]]...)
		for _, sgr := range sgrs[1:] {
			t.buf = append(t.buf, ';')
			t.buf = append(t.buf, numTable[sgr]...)
		}
		t.buf = append(t.buf, 'm')
	}
}

func (t *Terminal) setCursorVisibility(visible bool) {
	if visible && !t.cursor.visible {
		t.buf = append(t.buf, []byte("\x1b[?25h")...)
	} else if !visible && t.cursor.visible {
		t.buf = append(t.buf, []byte("\x1b[?25l")...)
	}
	t.cursor.visible = visible
}

// Draw clears the display and writes every cell of s, top-left aligned.
func (t *Terminal) Draw(s *Screen) error {
	t.clear()

	p := make([]byte, 4)

	for y := 0; y < s.height; y++ {
		t.moveCursor(0, y)
		for x := 0; x < s.width; x++ {
			c := s.cells[y*s.width+x]
			t.setCursorStyle(c.Style)
			text := c.text
			if text == 0 {
				text = ' '
			}
			n := utf8.EncodeRune(p, text)
			t.buf = append(t.buf, p[:n]...)
			t.cursor.x++
		}
	}

	t.moveCursor(s.cursor.x, s.cursor.y)
	t.setCursorVisibility(s.cursor.visible)

	return t.flush()
}
