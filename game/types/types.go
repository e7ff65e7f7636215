package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsUnit reports whether p is one of the four cardinal unit vectors.
func (p Point) IsUnit() bool {
	return (p.X == 0 && (p.Y == 1 || p.Y == -1)) || (p.Y == 0 && (p.X == 1 || p.X == -1))
}

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
	default:
		return "none"
	}
}

// Default rules of a round.
const (
	DefaultInitialTime  = 60 // seconds on the clock after a reset
	DefaultSpecialEvery = 10 // primary apples per special spawn
	DefaultPenaltyEvery = 3  // special apples per penalty spawn
	DefaultBonusEvery   = 2  // penalty apples per bonus spawn
	DefaultSpecialTime  = 30 // seconds added by a special apple
	DefaultBonusPoints  = 10
)
