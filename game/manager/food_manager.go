package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// FoodManager owns the enumerated board and moves food onto free cells.
type FoodManager struct {
	grid         types.Grid
	allPositions types.Cells
}

// NewFoodManager enumerates the board once; the enumeration is read-only
// afterwards.
func NewFoodManager(grid types.Grid, rng types.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		allPositions: grid.Positions(rng),
	}
}

// AllPositions returns every cell of the board.
func (fm *FoodManager) AllPositions() types.Cells {
	return fm.allPositions
}

// Respawn moves food to a cell outside occupied. It returns false and leaves
// food where it was when the board is full.
func (fm *FoodManager) Respawn(food *entity.Food, occupied types.PositionSet) bool {
	pos, ok := food.RefreshPosition(fm.allPositions, occupied)
	if !ok {
		return false
	}
	food.Position = pos
	return true
}

// Place makes sure a freshly created food does not sit on the snake.
func (fm *FoodManager) Place(food *entity.Food, snake *entity.Snake) bool {
	if !snake.BodySet.Contains(food.Position) {
		return true
	}
	return fm.Respawn(food, snake.BodySet)
}
