package entity

import (
	"gridsnake/game/types"
)

// Snake is an ordered body, head first, plus a set of the same cells for
// constant time lookups.
//
// BodySet mirrors Body except between PushHead and CommitHead, where Body
// already holds the new head and BodySet still describes the previous tick.
type Snake struct {
	Body      []types.Position
	BodySet   types.PositionSet
	Direction types.Direction
}

// NewSnake places a one cell snake on a random cell with a random heading.
func NewSnake(grid types.Grid, rng types.Rand) *Snake {
	dir := types.RandomDirection(rng)
	return SnakeFromBody(dir, grid.RandomPosition(rng))
}

// SnakeFromBody builds a snake from an explicit body, head first.
func SnakeFromBody(dir types.Direction, body ...types.Position) *Snake {
	b := make([]types.Position, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		BodySet:   types.NewPositionSet(body...),
		Direction: dir,
	}
}

func (s *Snake) GetHead() types.Position {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Position {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the cell one step ahead of the head in the current heading.
func (s *Snake) NextHead(cellSize int) types.Position {
	dx, dy := s.Direction.Delta(cellSize)
	return s.GetHead().Offset(dx, dy)
}

// PushHead prepends p to Body. BodySet is left untouched until CommitHead.
func (s *Snake) PushHead(p types.Position) {
	s.Body = append(s.Body, types.Position{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = p
}

// CommitHead records the current head in BodySet.
func (s *Snake) CommitHead() {
	s.BodySet.Add(s.GetHead())
}

// RemoveTail drops the last segment from both Body and BodySet.
func (s *Snake) RemoveTail() {
	if len(s.Body) == 0 {
		return
	}
	s.BodySet.Remove(s.GetTail())
	s.Body = s.Body[:len(s.Body)-1]
}

// SetDirection turns the snake unless dir would reverse it. It reports
// whether the heading was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if types.IsDirectionConflict(s.Direction, dir) {
		return false
	}
	s.Direction = dir
	return true
}

// Clone returns a deep copy.
func (s *Snake) Clone() *Snake {
	body := make([]types.Position, len(s.Body))
	copy(body, s.Body)
	return &Snake{
		Body:      body,
		BodySet:   s.BodySet.Clone(),
		Direction: s.Direction,
	}
}
