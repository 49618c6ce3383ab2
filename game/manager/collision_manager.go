package manager

import (
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision tests a provisional head against the walls and against the
// cells the body occupied before the head moved. The tail is still part of
// occupied, so moving into the cell it is about to leave counts as a hit.
func (cm *CollisionManager) CheckCollision(head types.Position, occupied types.PositionSet) CollisionType {
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if occupied.Contains(head) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Position) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Position, food types.Position) bool {
	return pos == food
}
