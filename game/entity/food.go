package entity

import "snake-arcade/game/types"

// FoodKind identifies one of the collectible tiers. The order of the
// constants is the order in which a shared cell is resolved.
type FoodKind int

const (
	Primary FoodKind = iota // red apple
	Special                 // green apple
	Penalty                 // black apple
	Bonus                   // yellow apple

	FoodKinds = 4
)

func (k FoodKind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Special:
		return "special"
	case Penalty:
		return "penalty"
	case Bonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// FoodSlot is an optional food position.
type FoodSlot struct {
	Pos     types.Point
	Present bool
}
