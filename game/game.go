package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcome is what a single step did.
type Outcome int

const (
	Moved Outcome = iota
	Ate
	WallCollision
	SelfCollision
	BoardFull
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == WallCollision || o == SelfCollision || o == BoardFull
}

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case WallCollision:
		return "wall collision"
	case SelfCollision:
		return "self collision"
	case BoardFull:
		return "board full"
	}
	return "unknown"
}

// Rules is the read-only part of a game: the board and the managers that
// judge moves on it.
type Rules struct {
	Grid       types.Grid
	Collisions *manager.CollisionManager
	Foods      *manager.FoodManager
}

func NewRules(grid types.Grid, rng types.Rand) Rules {
	return Rules{
		Grid:       grid,
		Collisions: manager.NewCollisionManager(grid),
		Foods:      manager.NewFoodManager(grid, rng),
	}
}

// State is everything a step changes.
type State struct {
	Snake    *entity.Snake
	Food     *entity.Food
	GameOver bool
	Outcome  Outcome
}

// Clone returns a state sharing nothing with s.
func (s State) Clone() State {
	food := *s.Food
	s.Snake = s.Snake.Clone()
	s.Food = &food
	return s
}

func (s State) end(o Outcome) (State, Outcome) {
	s.GameOver = true
	s.Outcome = o
	return s, o
}

// Step advances s by one tick and returns the new state; s itself is not
// modified. A finished state is returned as is.
//
// The head is pushed first and tested against the body set of the previous
// tick. On a collision the returned body keeps that provisional head while
// the body set does not.
func Step(s State, rules Rules) (State, Outcome) {
	if s.GameOver {
		return s, s.Outcome
	}

	next := s.Clone()
	snake := next.Snake

	head := snake.NextHead(rules.Grid.CellSize)
	snake.PushHead(head)

	switch rules.Collisions.CheckCollision(head, snake.BodySet) {
	case manager.WallCollision:
		return next.end(WallCollision)
	case manager.SelfCollision:
		return next.end(SelfCollision)
	}

	snake.CommitHead()

	if rules.Collisions.IsFoodCollision(head, next.Food.Position) {
		if !rules.Foods.Respawn(next.Food, snake.BodySet) {
			return next.end(BoardFull)
		}
		next.Outcome = Ate
		return next, Ate
	}

	snake.RemoveTail()
	next.Outcome = Moved
	return next, Moved
}

// Game owns one running state. It is not safe for concurrent use; a single
// loop drives Step and SetDirection.
type Game struct {
	ID    string
	rules Rules
	state State
	steps int
	log   zerolog.Logger
}

// New starts a game on grid with a random snake and food drawn from rng.
// A board with no cell left for the food starts out finished with
// BoardFull.
func New(grid types.Grid, rng types.Rand, logger zerolog.Logger) *Game {
	snake := entity.NewSnake(grid, rng)
	food := entity.NewFood(grid, rng)
	rules := NewRules(grid, rng)

	state := State{Snake: snake, Food: food}
	if !rules.Foods.Place(food, snake) {
		state, _ = state.end(BoardFull)
	}
	return NewFromState(rules, state, logger)
}

// NewFromState wraps an existing state, typically a hand built scenario.
func NewFromState(rules Rules, state State, logger zerolog.Logger) *Game {
	id := uuid.New().String()
	g := &Game{
		ID:    id,
		rules: rules,
		state: state,
		log:   logger.With().Str("game", id).Logger(),
	}
	g.log.Info().
		Interface("head", state.Snake.GetHead()).
		Stringer("direction", state.Snake.Direction).
		Interface("food", state.Food.Position).
		Int("cells", len(rules.Foods.AllPositions())).
		Bool("over", state.GameOver).
		Msg("game started")
	return g
}

// Step runs one tick.
func (g *Game) Step() Outcome {
	if g.state.GameOver {
		return g.state.Outcome
	}

	next, outcome := Step(g.state, g.rules)
	g.state = next
	g.steps++

	head := g.state.Snake.GetHead()
	g.log.Debug().
		Int("step", g.steps).
		Int("x", head.X).
		Int("y", head.Y).
		Int("length", g.state.Snake.Len()).
		Stringer("outcome", outcome).
		Msg("step")

	switch {
	case outcome == Ate:
		g.log.Info().
			Int("step", g.steps).
			Int("length", g.state.Snake.Len()).
			Interface("food", g.state.Food.Position).
			Msg("food eaten")
	case outcome.Terminal():
		g.log.Info().
			Int("steps", g.steps).
			Int("length", g.state.Snake.Len()).
			Stringer("outcome", outcome).
			Msg("game over")
	}
	return outcome
}

// SetDirection applies a key press to the snake's heading. Releases, keys
// that are not arrows and reversals are ignored. It reports whether the
// heading was accepted.
func (g *Game) SetDirection(ev types.InputEvent) bool {
	if g.state.GameOver || ev.State != types.Pressed {
		return false
	}
	dir, ok := ev.Key.Direction()
	if !ok {
		return false
	}
	if !g.state.Snake.SetDirection(dir) {
		g.log.Debug().Stringer("from", g.state.Snake.Direction).Stringer("to", dir).Msg("reversal ignored")
		return false
	}
	return true
}

func (g *Game) Over() bool {
	return g.state.GameOver
}

// Outcome is the result of the last step.
func (g *Game) Outcome() Outcome {
	return g.state.Outcome
}

func (g *Game) Length() int {
	return g.state.Snake.Len()
}

func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) Grid() types.Grid {
	return g.rules.Grid
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state.Clone()
}
