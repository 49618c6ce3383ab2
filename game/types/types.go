package types

import "time"

// Board constants. The board is not resizable at runtime.
const (
	CellSize    = 9
	BoardWidth  = 300
	BoardHeight = 300
	TickRate    = 10 // steps per second
)

// TickInterval is the time between two engine steps.
const TickInterval = time.Second / TickRate

// Position is the top-left corner of one grid cell, in board units.
type Position struct {
	X, Y int
}

// Offset returns p moved by dx, dy.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Rand is the random source the engine draws from. Both math/rand and
// golang.org/x/exp/rand generators satisfy it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// RandomDirection picks a heading uniformly.
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the per-axis step of one cell in direction d.
func (d Direction) Delta(cellSize int) (dx, dy int) {
	switch d {
	case Up:
		return 0, -cellSize
	case Down:
		return 0, cellSize
	case Left:
		return -cellSize, 0
	default:
		return cellSize, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// IsDirectionConflict reports whether next would reverse prev by 180 degrees.
func IsDirectionConflict(prev, next Direction) bool {
	return next == prev.Opposite()
}

// Key identifies a key as seen by the engine.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Direction maps an arrow key to its heading.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

// KeyState is the button state carried by an input event.
type KeyState int

const (
	Released KeyState = iota
	Pressed
)

// InputEvent is a single key transition delivered by a front-end.
type InputEvent struct {
	Key   Key
	State KeyState
}

// Press is shorthand for a pressed key event.
func Press(k Key) InputEvent {
	return InputEvent{Key: k, State: Pressed}
}
