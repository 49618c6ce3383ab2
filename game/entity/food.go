package entity

import (
	"gridsnake/game/types"
)

// Food is the single item the snake can eat.
type Food struct {
	Position types.Position
}

func NewFood(grid types.Grid, rng types.Rand) *Food {
	return &Food{Position: grid.RandomPosition(rng)}
}

// RefreshPosition picks a cell from all that is not in invalid. Which free
// cell comes back is unspecified. ok is false when no free cell is left.
func (f *Food) RefreshPosition(all types.Cells, invalid types.PositionSet) (pos types.Position, ok bool) {
	free := all.Difference(invalid)
	if len(free) == 0 {
		return types.Position{}, false
	}
	return free[0], true
}
