package game

import (
	"gridsnake/game/types"
)

// Frame is what a front-end needs to draw one picture of the board.
type Frame struct {
	Grid     types.Grid
	Body     []types.Position
	Food     types.Position
	GameOver bool
	Outcome  Outcome
}

// Frame snapshots the board for rendering. Body is a copy, head first.
func (g *Game) Frame() Frame {
	body := make([]types.Position, len(g.state.Snake.Body))
	copy(body, g.state.Snake.Body)
	return Frame{
		Grid:     g.rules.Grid,
		Body:     body,
		Food:     g.state.Food.Position,
		GameOver: g.state.GameOver,
		Outcome:  g.state.Outcome,
	}
}
