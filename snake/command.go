package snake

type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdQuit
	CmdPause
	CmdFaster
	CmdSlower
)

var commandNames = [...]string{
	CmdNone:   "none",
	CmdLeft:   "left",
	CmdRight:  "right",
	CmdUp:     "up",
	CmdDown:   "down",
	CmdQuit:   "quit",
	CmdPause:  "pause",
	CmdFaster: "faster",
	CmdSlower: "slower",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Key bindings are case-sensitive.
var keyCommands = map[rune]Command{
	'a': CmdLeft,
	'd': CmdRight,
	'w': CmdUp,
	's': CmdDown,
	'x': CmdQuit,
	'p': CmdPause,
	'+': CmdFaster,
	'-': CmdSlower,
}

// CommandFor maps a keystroke to its command. Unbound keys map to CmdNone.
func CommandFor(key rune) Command {
	return keyCommands[key]
}

// Apply mutates the game for c. Turning is unconditional, so reversing into
// the neck is allowed. CmdPause and CmdNone leave the game untouched; pausing
// is the loop's job.
func (g *Game) Apply(c Command) {
	switch c {
	case CmdLeft:
		g.Dir = Left
	case CmdRight:
		g.Dir = Right
	case CmdUp:
		g.Dir = Up
	case CmdDown:
		g.Dir = Down
	case CmdQuit:
		g.Over = true
	case CmdFaster:
		g.Tick -= TickDelta
		if g.Tick < MinTick {
			g.Tick = MinTick
		}
	case CmdSlower:
		g.Tick += TickDelta
	}
}
