// Package snake holds the game state, the per-tick simulation, the text
// renderer and the loop that drives them. It has no terminal dependency;
// input and output go through the InputPoller and Display interfaces.
package snake

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultWidth  = 20
	DefaultHeight = 20

	FruitReward = 10

	DefaultTick = 100 * time.Millisecond
	TickDelta   = 5 * time.Millisecond

	// MinTick is the floor for speed-up. Speed-down has no ceiling.
	MinTick = TickDelta
)

var ErrInvalidInterval = errors.New("snake: tick interval must be positive")

// CheckTick validates a configured tick interval.
func CheckTick(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, d)
	}
	return nil
}

type Position struct {
	X, Y int
}

type Direction int

const (
	Stopped Direction = iota
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Stopped:
		return "stopped"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}
