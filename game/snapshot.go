package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Grid      types.Grid
	CellSize  int
	Body      []types.Point
	Direction types.Point
	Food      [entity.FoodKinds]entity.FoodSlot
	Score     int
	TimeLeft  int
	Paused    bool
	RoundID   string
	Stats     manager.StatsSummary
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return Snapshot{
		Grid:      g.rules.Grid,
		CellSize:  g.rules.CellSize,
		Body:      body,
		Direction: g.snake.Direction,
		Food:      g.foodMgr.Slots(),
		Score:     g.score,
		TimeLeft:  g.timeLeft,
		Paused:    g.paused,
		RoundID:   g.roundID,
		Stats:     g.stateMgr.Summary(),
	}
}
