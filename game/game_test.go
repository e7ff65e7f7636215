package game

import (
	"reflect"
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"go.uber.org/zap/zaptest"
	"golang.org/x/exp/rand"
)

type recorder struct {
	scores []int
	times  []int
	eaten  []entity.FoodKind
	overs  []GameOverEvent
}

func (r *recorder) ScoreChanged(score int)         { r.scores = append(r.scores, score) }
func (r *recorder) TimeChanged(seconds int)        { r.times = append(r.times, seconds) }
func (r *recorder) FoodEaten(kind entity.FoodKind) { r.eaten = append(r.eaten, kind) }
func (r *recorder) GameOver(ev GameOverEvent)      { r.overs = append(r.overs, ev) }

func newTestGame(t *testing.T, rules Rules) (*Game, *recorder) {
	t.Helper()
	g := NewGame(rules, rand.New(rand.NewSource(42)), zaptest.NewLogger(t))
	rec := &recorder{}
	g.AddListener(rec)
	// keep the random primary apple out of the way unless a test moves it
	g.PlaceFood(entity.Primary, types.Point{X: 0, Y: 0})
	return g, rec
}

// wideRules leaves room for ten straight apples to the right of the start.
func wideRules() Rules {
	r := DefaultRules()
	r.Grid = types.Grid{Width: 40, Height: 20}
	return r
}

// eatAhead places kind on the cell in front of the head and ticks once.
func eatAhead(g *Game, kind entity.FoodKind) {
	g.PlaceFood(kind, g.GetSnake().NextHead())
	g.Tick()
}

func TestNewGameInitialState(t *testing.T) {
	g, _ := newTestGame(t, DefaultRules())

	snap := g.Snapshot()
	if want := []types.Point{{X: 10, Y: 10}}; !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("Body = %v, want %v", snap.Body, want)
	}
	if snap.Direction != (types.Point{X: 1, Y: 0}) {
		t.Errorf("Direction = %v, want (1,0)", snap.Direction)
	}
	if snap.Score != 0 || snap.TimeLeft != 60 || snap.Paused {
		t.Errorf("score=%d time=%d paused=%v, want 0 60 false", snap.Score, snap.TimeLeft, snap.Paused)
	}
	if !snap.Food[entity.Primary].Present {
		t.Error("primary food should be present")
	}
	for _, k := range []entity.FoodKind{entity.Special, entity.Penalty, entity.Bonus} {
		if snap.Food[k].Present {
			t.Errorf("%s food should be absent", k)
		}
	}
	if snap.RoundID == "" {
		t.Error("round ID should be set")
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	g, _ := newTestGame(t, DefaultRules())

	for i := 0; i < 5; i++ {
		g.Tick()
		if n := g.GetSnake().Len(); n != 1 {
			t.Fatalf("tick %d: length = %d, want 1", i+1, n)
		}
	}
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 15, Y: 10}) {
		t.Errorf("head = %v, want (15,10)", head)
	}
}

func TestEatPrimary(t *testing.T) {
	g, rec := newTestGame(t, DefaultRules())

	eatAhead(g, entity.Primary)

	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if c := g.FoodCounter(entity.Primary); c != 1 {
		t.Errorf("primary counter = %d, want 1", c)
	}
	if n := g.GetSnake().Len(); n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
	food := g.GetFood(entity.Primary)
	if !food.Present || !g.Rules().Grid.Contains(food.Pos) {
		t.Errorf("primary food = %+v, want present inside grid", food)
	}
	if len(rec.eaten) != 1 || rec.eaten[0] != entity.Primary {
		t.Errorf("eaten events = %v, want [primary]", rec.eaten)
	}
	if last := rec.scores[len(rec.scores)-1]; last != 1 {
		t.Errorf("last score event = %d, want 1", last)
	}
}

func TestTenthPrimarySpawnsSpecial(t *testing.T) {
	g, _ := newTestGame(t, wideRules())

	for i := 1; i <= 9; i++ {
		eatAhead(g, entity.Primary)
		if g.Score() != i || g.GetSnake().Len() != i+1 {
			t.Fatalf("after %d eats: score=%d length=%d", i, g.Score(), g.GetSnake().Len())
		}
	}
	if c := g.FoodCounter(entity.Primary); c != 9 {
		t.Fatalf("primary counter = %d, want 9", c)
	}
	if g.GetFood(entity.Special).Present {
		t.Fatal("special food spawned early")
	}

	target := g.GetSnake().NextHead()
	eatAhead(g, entity.Primary)

	if c := g.FoodCounter(entity.Primary); c != 0 {
		t.Errorf("primary counter = %d, want 0", c)
	}
	if !g.GetFood(entity.Special).Present {
		t.Error("special food should have spawned")
	}
	if p := g.GetFood(entity.Primary); !p.Present || p.Pos != target {
		t.Errorf("primary food = %+v, want left at %v", p, target)
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, want 10", g.Score())
	}
}

func TestEatSpecial(t *testing.T) {
	g, rec := newTestGame(t, DefaultRules())

	for g.TimeLeft() > 40 {
		g.TimerTick()
	}
	eatAhead(g, entity.Special)

	if g.TimeLeft() != 70 {
		t.Errorf("time = %d, want 70", g.TimeLeft())
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if g.GetFood(entity.Special).Present {
		t.Error("special slot should be cleared")
	}
	if n := g.GetSnake().Len(); n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
	if last := rec.times[len(rec.times)-1]; last != 70 {
		t.Errorf("last time event = %d, want 70", last)
	}
}

func TestFoodTierChain(t *testing.T) {
	g, _ := newTestGame(t, wideRules())

	for i := 0; i < 2; i++ {
		eatAhead(g, entity.Special)
		if g.GetFood(entity.Penalty).Present {
			t.Fatalf("penalty spawned after %d special eats", i+1)
		}
	}
	eatAhead(g, entity.Special)
	if !g.GetFood(entity.Penalty).Present {
		t.Fatal("third special eat should spawn penalty")
	}
	if c := g.FoodCounter(entity.Special); c != 0 {
		t.Errorf("special counter = %d, want 0", c)
	}
	if g.Score() != 3 {
		t.Fatalf("score = %d, want 3", g.Score())
	}

	eatAhead(g, entity.Penalty)
	if g.Score() != 2 {
		t.Errorf("score after penalty = %d, want 2", g.Score())
	}
	if g.GetFood(entity.Bonus).Present {
		t.Fatal("bonus spawned after one penalty eat")
	}
	eatAhead(g, entity.Penalty)
	if g.Score() != 1 {
		t.Errorf("score after second penalty = %d, want 1", g.Score())
	}
	if g.GetFood(entity.Penalty).Present {
		t.Error("penalty slot should be cleared")
	}
	if !g.GetFood(entity.Bonus).Present {
		t.Fatal("second penalty eat should spawn bonus")
	}

	eatAhead(g, entity.Bonus)
	if g.Score() != 11 {
		t.Errorf("score after bonus = %d, want 11", g.Score())
	}
	if g.GetFood(entity.Bonus).Present {
		t.Error("bonus slot should be cleared")
	}
}

func TestScoreCanGoNegative(t *testing.T) {
	g, _ := newTestGame(t, DefaultRules())

	eatAhead(g, entity.Penalty)
	if g.Score() != -1 {
		t.Errorf("score = %d, want -1", g.Score())
	}
}

func TestSharedCellResolvesHighestPriorityOnly(t *testing.T) {
	g, rec := newTestGame(t, DefaultRules())

	ahead := g.GetSnake().NextHead()
	g.PlaceFood(entity.Special, ahead)
	g.PlaceFood(entity.Primary, ahead)
	g.Tick()

	if len(rec.eaten) != 1 || rec.eaten[0] != entity.Primary {
		t.Fatalf("eaten = %v, want [primary]", rec.eaten)
	}
	if s := g.GetFood(entity.Special); !s.Present || s.Pos != ahead {
		t.Errorf("special food = %+v, want untouched at %v", s, ahead)
	}
	if g.TimeLeft() != 60 {
		t.Errorf("time = %d, want 60", g.TimeLeft())
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		current types.Point
		request types.Point
		applied bool
	}{
		{"reverse", types.Point{X: 1, Y: 0}, types.Point{X: -1, Y: 0}, false},
		{"same", types.Point{X: 1, Y: 0}, types.Point{X: 1, Y: 0}, false},
		{"turn up", types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: -1}, true},
		{"turn down", types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 1}, true},
		{"vertical reverse", types.Point{X: 0, Y: 1}, types.Point{X: 0, Y: -1}, false},
		{"turn left from down", types.Point{X: 0, Y: 1}, types.Point{X: -1, Y: 0}, true},
		{"diagonal", types.Point{X: 1, Y: 0}, types.Point{X: 1, Y: 1}, false},
		{"zero", types.Point{X: 1, Y: 0}, types.Point{}, false},
		{"long", types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, DefaultRules())
			g.GetSnake().Direction = tt.current

			got := g.SetDirection(tt.request)
			if got != tt.applied {
				t.Errorf("SetDirection(%v) = %v, want %v", tt.request, got, tt.applied)
			}
			want := tt.current
			if tt.applied {
				want = tt.request
			}
			if d := g.GetSnake().Direction; d != want {
				t.Errorf("direction = %v, want %v", d, want)
			}
		})
	}
}

func TestCollision(t *testing.T) {
	rules := DefaultRules()
	cols, rows := rules.Grid.Width, rules.Grid.Height

	tests := []struct {
		name string
		body []types.Point
		want types.CollisionType
	}{
		{"inside", []types.Point{{X: 5, Y: 5}}, types.NoCollision},
		{"left wall", []types.Point{{X: -1, Y: 5}}, types.WallCollision},
		{"right wall", []types.Point{{X: cols, Y: 5}}, types.WallCollision},
		{"top wall", []types.Point{{X: 5, Y: -1}}, types.WallCollision},
		{"bottom wall", []types.Point{{X: 5, Y: rows}}, types.WallCollision},
		{"corner cells", []types.Point{{X: cols - 1, Y: rows - 1}}, types.NoCollision},
		{"body", []types.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 3, Y: 3}}, types.SelfCollision},
		{"body without overlap", []types.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}, types.NoCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, rules)
			g.GetSnake().Body = tt.body

			if got := g.CollisionKind(); got != tt.want {
				t.Errorf("CollisionKind() = %v, want %v", got, tt.want)
			}
			if got := g.Collision(); got != (tt.want != types.NoCollision) {
				t.Errorf("Collision() = %v", got)
			}
		})
	}
}

func TestWallCollisionEndsRound(t *testing.T) {
	rules := DefaultRules()
	rules.Start = types.Point{X: rules.Grid.Width - 1, Y: 5}
	g, rec := newTestGame(t, rules)
	firstRound := g.RoundID()

	g.Tick()

	if len(rec.overs) != 1 {
		t.Fatalf("game over events = %d, want 1", len(rec.overs))
	}
	ev := rec.overs[0]
	if ev.Reason != "Game Over!" || ev.Cause != CauseWall || ev.RoundID != firstRound {
		t.Errorf("event = %+v", ev)
	}
	if head := g.GetSnake().GetHead(); head != rules.Start {
		t.Errorf("head after reset = %v, want %v", head, rules.Start)
	}
	if g.RoundID() == firstRound {
		t.Error("reset should start a new round")
	}
	if st := g.Stats(); st.GamesPlayed != 1 {
		t.Errorf("games played = %d, want 1", st.GamesPlayed)
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	g, rec := newTestGame(t, DefaultRules())

	for i := 0; i < 4; i++ {
		eatAhead(g, entity.Primary)
	}
	g.PlaceFood(entity.Primary, types.Point{X: 0, Y: 0})
	if n := g.GetSnake().Len(); n != 5 {
		t.Fatalf("length = %d, want 5", n)
	}

	for _, cmd := range []Command{CmdDown, CmdLeft, CmdUp} {
		if !g.Apply(cmd) {
			t.Fatalf("Apply(%v) rejected", cmd)
		}
		g.Tick()
	}

	if len(rec.overs) != 1 {
		t.Fatalf("game over events = %d, want 1", len(rec.overs))
	}
	if ev := rec.overs[0]; ev.Cause != CauseSelf || ev.Reason != "Game Over!" || ev.Score != 4 {
		t.Errorf("event = %+v", ev)
	}
	if g.Score() != 0 || g.GetSnake().Len() != 1 {
		t.Errorf("after reset score=%d length=%d", g.Score(), g.GetSnake().Len())
	}
}

func TestMovingIntoVacatedTailCell(t *testing.T) {
	g, rec := newTestGame(t, DefaultRules())

	for i := 0; i < 3; i++ {
		eatAhead(g, entity.Primary)
	}
	g.PlaceFood(entity.Primary, types.Point{X: 0, Y: 0})

	// a 4-cell snake turning in a tight square chases its own tail
	for _, cmd := range []Command{CmdDown, CmdLeft, CmdUp} {
		g.Apply(cmd)
		g.Tick()
	}
	if len(rec.overs) != 0 {
		t.Fatalf("unexpected game over: %+v", rec.overs)
	}
	if n := g.GetSnake().Len(); n != 4 {
		t.Errorf("length = %d, want 4", n)
	}
}

func TestTimerExpiry(t *testing.T) {
	g, rec := newTestGame(t, DefaultRules())

	for i := 0; i < 59; i++ {
		g.TimerTick()
	}
	if len(rec.overs) != 0 {
		t.Fatalf("game over fired early at time %d", g.TimeLeft())
	}
	if g.TimeLeft() != 1 {
		t.Fatalf("time = %d, want 1", g.TimeLeft())
	}

	g.TimerTick()

	if len(rec.overs) != 1 {
		t.Fatalf("game over events = %d, want 1", len(rec.overs))
	}
	if ev := rec.overs[0]; ev.Reason != "Time's up!" || ev.Cause != CauseTimeUp {
		t.Errorf("event = %+v", ev)
	}
	if g.TimeLeft() != 60 {
		t.Errorf("time after reset = %d, want 60", g.TimeLeft())
	}
}

func TestPauseFreezesState(t *testing.T) {
	g, _ := newTestGame(t, DefaultRules())
	eatAhead(g, entity.Primary)

	if !g.TogglePause() {
		t.Fatal("TogglePause should report paused")
	}
	g.PlaceFood(entity.Special, g.GetSnake().NextHead())
	before := g.Snapshot()

	g.Tick()
	g.TimerTick()

	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed while paused:\nbefore %+v\nafter  %+v", before, after)
	}

	g.TogglePause()
	g.Tick()
	if g.Score() != 2 {
		t.Errorf("score after resume = %d, want 2", g.Score())
	}
}

func TestDirectionAcceptedWhilePaused(t *testing.T) {
	g, _ := newTestGame(t, DefaultRules())
	g.Apply(CmdPause)

	if !g.Apply(CmdUp) {
		t.Error("direction changes are still accepted while paused")
	}
	if !g.Paused() {
		t.Error("game should stay paused")
	}
}

func TestReset(t *testing.T) {
	g, rec := newTestGame(t, wideRules())

	for i := 0; i < 3; i++ {
		eatAhead(g, entity.Special)
	}
	eatAhead(g, entity.Primary)
	g.Apply(CmdDown)
	g.TimerTick()
	g.TogglePause()

	g.Reset()

	snap := g.Snapshot()
	if snap.Score != 0 || snap.TimeLeft != 60 || snap.Paused {
		t.Errorf("score=%d time=%d paused=%v", snap.Score, snap.TimeLeft, snap.Paused)
	}
	if want := []types.Point{{X: 10, Y: 10}}; !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("body = %v, want %v", snap.Body, want)
	}
	if snap.Direction != (types.Point{X: 1, Y: 0}) {
		t.Errorf("direction = %v", snap.Direction)
	}
	for _, k := range []entity.FoodKind{entity.Special, entity.Penalty, entity.Bonus} {
		if snap.Food[k].Present {
			t.Errorf("%s should be cleared", k)
		}
	}
	for _, k := range []entity.FoodKind{entity.Primary, entity.Special, entity.Penalty} {
		if c := g.FoodCounter(k); c != 0 {
			t.Errorf("%s counter = %d, want 0", k, c)
		}
	}
	if !snap.Food[entity.Primary].Present {
		t.Error("primary food should be present")
	}
	if rec.scores[len(rec.scores)-1] != 0 || rec.times[len(rec.times)-1] != 60 {
		t.Error("reset should publish score and time")
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	g, _ := newTestGame(t, DefaultRules())
	if g.Apply(CmdNone) {
		t.Error("CmdNone should not change state")
	}
}
