package entity

import (
	"snake-arcade/game/types"
)

// Snake holds the body head-first: Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

func NewSnake(startPos types.Point, dir types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

// Move prepends a new head
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head enters on the next step.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection only accepts 90° turns: the requested vector must be a unit
// vector on the axis that is currently zero. Reversals and same-axis
// requests are dropped.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !dir.IsUnit() {
		return false
	}
	if dir.X != 0 && s.Direction.X != 0 {
		return false
	}
	if dir.Y != 0 && s.Direction.Y != 0 {
		return false
	}
	s.Direction = dir
	return true
}
