package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head position. The head is
// compared against every other segment, so it must already be prepended.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return types.WallCollision
	}
	if cm.isSelfCollision(head, snake.Body[1:]) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Point, body []types.Point) bool {
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with a food slot
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food entity.FoodSlot) bool {
	return food.Present && pos == food.Pos
}
