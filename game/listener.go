package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// EndCause tells why a round ended.
type EndCause int

const (
	CauseWall EndCause = iota + 1
	CauseSelf
	CauseTimeUp
)

const (
	ReasonCollision = "Game Over!"
	ReasonTimeUp    = "Time's up!"
)

// Reason is the player-facing message. Wall and self collisions share it.
func (c EndCause) Reason() string {
	if c == CauseTimeUp {
		return ReasonTimeUp
	}
	return ReasonCollision
}

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseTimeUp:
		return "timeout"
	default:
		return "unknown"
	}
}

func causeOf(c types.CollisionType) EndCause {
	if c == types.SelfCollision {
		return CauseSelf
	}
	return CauseWall
}

// GameOverEvent is delivered to listeners before the round is reset.
type GameOverEvent struct {
	Reason   string
	Cause    EndCause
	Score    int
	RoundID  string
	Duration time.Duration
}

// Listener receives engine side effects. Calls happen synchronously on the
// goroutine driving the engine and must not block.
type Listener interface {
	ScoreChanged(score int)
	TimeChanged(seconds int)
	FoodEaten(kind entity.FoodKind)
	GameOver(ev GameOverEvent)
}

// NopListener can be embedded to implement only part of Listener.
type NopListener struct{}

func (NopListener) ScoreChanged(int)          {}
func (NopListener) TimeChanged(int)           {}
func (NopListener) FoodEaten(entity.FoodKind) {}
func (NopListener) GameOver(GameOverEvent)    {}

type listeners []Listener

func (ls listeners) scoreChanged(score int) {
	for _, l := range ls {
		l.ScoreChanged(score)
	}
}

func (ls listeners) timeChanged(seconds int) {
	for _, l := range ls {
		l.TimeChanged(seconds)
	}
}

func (ls listeners) foodEaten(kind entity.FoodKind) {
	for _, l := range ls {
		l.FoodEaten(kind)
	}
}

func (ls listeners) gameOver(ev GameOverEvent) {
	for _, l := range ls {
		l.GameOver(ev)
	}
}
