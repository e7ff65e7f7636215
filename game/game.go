package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Rules fixes the board and the food economy of every round.
type Rules struct {
	Grid        types.Grid
	CellSize    int
	Start       types.Point
	StartDir    types.Point
	InitialTime int
	Spawn       manager.SpawnRules
	SpecialTime int // seconds added by a special apple
	BonusPoints int
}

// DefaultRules is a 20x20 board of 20px cells.
func DefaultRules() Rules {
	return Rules{
		Grid:        types.Grid{Width: 20, Height: 20},
		CellSize:    20,
		Start:       types.Point{X: 10, Y: 10},
		StartDir:    types.RIGHT.ToPoint(),
		InitialTime: types.DefaultInitialTime,
		Spawn: manager.SpawnRules{
			SpecialEvery: types.DefaultSpecialEvery,
			PenaltyEvery: types.DefaultPenaltyEvery,
			BonusEvery:   types.DefaultBonusEvery,
		},
		SpecialTime: types.DefaultSpecialTime,
		BonusPoints: types.DefaultBonusPoints,
	}
}

// Game is the single owner of the simulation state. It is not safe for
// concurrent use; the frontend loop calls every method from one goroutine.
type Game struct {
	rules Rules
	log   *zap.Logger
	now   func() time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	snake     *entity.Snake
	score     int
	timeLeft  int
	paused    bool
	roundID   string
	startTime time.Time

	listeners listeners
}

// NewGame creates a running round. rng drives every food spawn.
func NewGame(rules Rules, rng *rand.Rand, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	collisionMgr := manager.NewCollisionManager(rules.Grid)
	g := &Game{
		rules:        rules,
		log:          log,
		now:          time.Now,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(rules.Grid, rules.Spawn, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
	g.Reset()
	return g
}

// AddListener subscribes l to score, timer, food and game-over events.
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// SetDirection requests a turn. Only 90° turns are taken; everything else
// is ignored.
func (g *Game) SetDirection(dir types.Point) bool {
	if !g.snake.SetDirection(dir) {
		return false
	}
	g.log.Debug("Turn", zap.Stringer("direction", types.DirectionOf(dir)), zap.Bool("paused", g.paused))
	return true
}

// TogglePause flips the pause flag and returns the new value.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	g.log.Info("Pause toggled", zap.Bool("paused", g.paused), zap.String("round", g.roundID))
	return g.paused
}

// Tick advances the snake by one cell.
func (g *Game) Tick() {
	if g.paused {
		return
	}

	newHead := g.snake.NextHead()
	g.snake.Move(newHead)

	if kind, ok := g.foodMgr.FoodAt(newHead); ok {
		g.eat(kind)
	} else {
		g.snake.RemoveTail()
	}

	if c := g.collisionMgr.CheckCollision(g.snake); c != types.NoCollision {
		g.endRound(causeOf(c))
	}
}

func (g *Game) eat(kind entity.FoodKind) {
	switch kind {
	case entity.Primary, entity.Special:
		g.addScore(1)
	case entity.Penalty:
		g.addScore(-1)
	case entity.Bonus:
		g.addScore(g.rules.BonusPoints)
	}
	if kind == entity.Special {
		g.setTime(g.timeLeft + g.rules.SpecialTime)
	}

	spawned, ok := g.foodMgr.Consume(kind)
	if ok && spawned != kind {
		g.log.Debug("Food tier spawned",
			zap.Stringer("kind", spawned),
			zap.Int("x", g.foodMgr.Slot(spawned).Pos.X),
			zap.Int("y", g.foodMgr.Slot(spawned).Pos.Y))
	}
	g.log.Debug("Food eaten", zap.Stringer("kind", kind), zap.Int("score", g.score), zap.Int("length", g.snake.Len()))
	g.listeners.foodEaten(kind)
}

// Collision reports whether the head is outside the grid or on the body.
func (g *Game) Collision() bool {
	return g.CollisionKind() != types.NoCollision
}

// CollisionKind classifies the current head position.
func (g *Game) CollisionKind() types.CollisionType {
	return g.collisionMgr.CheckCollision(g.snake)
}

// TimerTick counts the clock down by one second. Reaching zero ends the
// round.
func (g *Game) TimerTick() {
	if g.paused || g.timeLeft <= 0 {
		return
	}
	g.setTime(g.timeLeft - 1)
	if g.timeLeft == 0 {
		g.endRound(CauseTimeUp)
	}
}

// Reset starts a new round.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.rules.Start, g.rules.StartDir)
	g.paused = false
	g.foodMgr.Reset()
	g.roundID = uuid.New().String()
	g.startTime = g.now()
	g.setScore(0)
	g.setTime(g.rules.InitialTime)

	primary := g.foodMgr.Slot(entity.Primary).Pos
	g.log.Info("Round started",
		zap.String("round", g.roundID),
		zap.Int("food_x", primary.X),
		zap.Int("food_y", primary.Y))
}

// endRound notifies listeners and resets. It never waits on them.
func (g *Game) endRound(cause EndCause) {
	end := g.now()
	ev := GameOverEvent{
		Reason:   cause.Reason(),
		Cause:    cause,
		Score:    g.score,
		RoundID:  g.roundID,
		Duration: end.Sub(g.startTime),
	}
	g.stateMgr.AddRound(manager.RoundRecord{
		ID:        g.roundID,
		StartTime: g.startTime,
		EndTime:   end,
		Score:     g.score,
		Cause:     cause.String(),
	})
	g.log.Info("Game over",
		zap.String("round", g.roundID),
		zap.String("reason", ev.Reason),
		zap.Stringer("cause", cause),
		zap.Int("score", ev.Score),
		zap.Int("length", g.snake.Len()),
		zap.Duration("duration", ev.Duration))

	g.listeners.gameOver(ev)
	g.Reset()
}

func (g *Game) addScore(delta int) {
	g.setScore(g.score + delta)
}

func (g *Game) setScore(score int) {
	g.score = score
	g.listeners.scoreChanged(score)
}

func (g *Game) setTime(seconds int) {
	g.timeLeft = seconds
	g.listeners.timeChanged(seconds)
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) TimeLeft() int {
	return g.timeLeft
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) RoundID() string {
	return g.roundID
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood(kind entity.FoodKind) entity.FoodSlot {
	return g.foodMgr.Slot(kind)
}

// PlaceFood puts kind at p, bypassing the random spawner.
func (g *Game) PlaceFood(kind entity.FoodKind, p types.Point) {
	g.foodMgr.Place(kind, p)
}

// FoodCounter returns the eat counter that gates the tier after kind.
func (g *Game) FoodCounter(kind entity.FoodKind) int {
	return g.foodMgr.Counter(kind)
}

func (g *Game) Stats() manager.StatsSummary {
	return g.stateMgr.Summary()
}
