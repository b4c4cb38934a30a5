package snake

import (
	"time"

	"golang.org/x/exp/rand"
)

// Game is the whole mutable state of one session.
type Game struct {
	Width, Height int

	Head  Position
	Tail  []Position
	Fruit Position

	Score int
	Dir   Direction
	Over  bool

	// Tick is both the input wait and the frame period.
	Tick time.Duration

	rng *rand.Rand
}

type Option func(*Game)

// WithSeed makes fruit placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithTick(d time.Duration) Option {
	return func(g *Game) {
		g.Tick = d
	}
}

// Setup starts a session: snake stopped at the board centre with no tail,
// score zero, fruit somewhere random.
func Setup(opts ...Option) *Game {
	g := &Game{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Dir:    Stopped,
		Tick:   DefaultTick,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g.Head = Position{X: g.Width / 2, Y: g.Height / 2}
	g.Tail = make([]Position, 0, 16)
	g.Fruit = g.randomPosition()
	return g
}

func (g *Game) randomPosition() Position {
	return Position{
		X: g.rng.Intn(g.Width),
		Y: g.rng.Intn(g.Height),
	}
}

// Step advances the simulation one tick. It does nothing once the game is over.
func (g *Game) Step() {
	if g.Over {
		return
	}

	// The tail follows the cells the head held before this move.
	prev := g.Head
	for i := range g.Tail {
		g.Tail[i], prev = prev, g.Tail[i]
	}

	dx, dy := g.Dir.delta()
	g.Head = g.wrap(Position{X: g.Head.X + dx, Y: g.Head.Y + dy})

	if g.onTail(g.Head) {
		g.Over = true
	}

	if g.Head == g.Fruit {
		g.eat()
	}
}

func (g *Game) wrap(p Position) Position {
	p.X = ((p.X % g.Width) + g.Width) % g.Width
	p.Y = ((p.Y % g.Height) + g.Height) % g.Height
	return p
}

func (g *Game) onTail(p Position) bool {
	for _, seg := range g.Tail {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) eat() {
	g.Score += FruitReward

	grow := g.Head
	if n := len(g.Tail); n > 0 {
		grow = g.Tail[n-1]
	}
	g.Tail = append(g.Tail, grow)

	// Fruit may land on the body; there is no retry.
	g.Fruit = g.randomPosition()
}

// Eaten is the number of fruits eaten so far.
func (g *Game) Eaten() int {
	return len(g.Tail)
}
