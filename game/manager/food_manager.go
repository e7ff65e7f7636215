package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// SpawnRules sets how many eats of one tier unlock the next tier.
type SpawnRules struct {
	SpecialEvery int // primary eats per special spawn
	PenaltyEvery int // special eats per penalty spawn
	BonusEvery   int // penalty eats per bonus spawn
}

// FoodManager owns the four food slots and the per-tier eat counters.
// Spawned cells are uniform random draws over the grid; they are not
// checked against the snake or the other slots.
type FoodManager struct {
	grid         types.Grid
	rules        SpawnRules
	rng          *rand.Rand
	collisionMgr *CollisionManager
	slots        [entity.FoodKinds]entity.FoodSlot
	eaten        [entity.FoodKinds]int
}

func NewFoodManager(grid types.Grid, rules SpawnRules, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	fm := &FoodManager{
		grid:         grid,
		rules:        rules,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
	fm.Reset()
	return fm
}

// Reset clears every slot and counter and places a fresh primary apple.
func (fm *FoodManager) Reset() {
	fm.slots = [entity.FoodKinds]entity.FoodSlot{}
	fm.eaten = [entity.FoodKinds]int{}
	fm.Spawn(entity.Primary)
}

// GenerateFood draws a random cell
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// Spawn places kind at a random cell, replacing any previous position.
func (fm *FoodManager) Spawn(kind entity.FoodKind) types.Point {
	p := fm.GenerateFood()
	fm.Place(kind, p)
	return p
}

// Place puts kind at p.
func (fm *FoodManager) Place(kind entity.FoodKind, p types.Point) {
	fm.slots[kind] = entity.FoodSlot{Pos: p, Present: true}
}

func (fm *FoodManager) clear(kind entity.FoodKind) {
	fm.slots[kind] = entity.FoodSlot{}
}

// FoodAt returns the highest-priority food at pos.
func (fm *FoodManager) FoodAt(pos types.Point) (entity.FoodKind, bool) {
	for kind := entity.Primary; kind < entity.FoodKinds; kind++ {
		if fm.collisionMgr.IsFoodCollision(pos, fm.slots[kind]) {
			return kind, true
		}
	}
	return 0, false
}

// Consume applies the spawn rules for eating kind. It returns the tier that
// was spawned as a consequence, if any. A primary apple that unlocks a
// special one is left where it was eaten.
func (fm *FoodManager) Consume(kind entity.FoodKind) (entity.FoodKind, bool) {
	switch kind {
	case entity.Primary:
		if fm.bump(entity.Primary, fm.rules.SpecialEvery) {
			fm.Spawn(entity.Special)
			return entity.Special, true
		}
		fm.Spawn(entity.Primary)
		return entity.Primary, true
	case entity.Special:
		fm.clear(entity.Special)
		if fm.bump(entity.Special, fm.rules.PenaltyEvery) {
			fm.Spawn(entity.Penalty)
			return entity.Penalty, true
		}
	case entity.Penalty:
		fm.clear(entity.Penalty)
		if fm.bump(entity.Penalty, fm.rules.BonusEvery) {
			fm.Spawn(entity.Bonus)
			return entity.Bonus, true
		}
	case entity.Bonus:
		fm.clear(entity.Bonus)
	}
	return 0, false
}

// bump increments the counter of kind and reports whether it reached
// threshold, resetting it if so.
func (fm *FoodManager) bump(kind entity.FoodKind, threshold int) bool {
	fm.eaten[kind]++
	if fm.eaten[kind] >= threshold {
		fm.eaten[kind] = 0
		return true
	}
	return false
}

func (fm *FoodManager) Slot(kind entity.FoodKind) entity.FoodSlot {
	return fm.slots[kind]
}

func (fm *FoodManager) Slots() [entity.FoodKinds]entity.FoodSlot {
	return fm.slots
}

// Counter returns the eat counter of kind.
func (fm *FoodManager) Counter(kind entity.FoodKind) int {
	return fm.eaten[kind]
}
