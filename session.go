package main

import (
	"fmt"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/loop"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/ui"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	taskTick  = "tick"
	taskTimer = "timer"
)

// Session binds one engine to its scheduler, HUD and themes. Every method
// runs on the frontend's main goroutine.
type Session struct {
	game.NopListener

	log    *zap.Logger
	game   *game.Game
	sched  *loop.Scheduler
	hud    *ui.HUD
	themes *ui.Themes
	quit   bool
}

func rulesFromConfig(cfg *config.Config) game.Rules {
	return game.Rules{
		Grid:        types.Grid{Width: cfg.Board.Cols(), Height: cfg.Board.Rows()},
		CellSize:    cfg.Board.BoxSize,
		Start:       types.Point{X: cfg.Board.StartX, Y: cfg.Board.StartY},
		StartDir:    types.RIGHT.ToPoint(),
		InitialTime: cfg.Timing.InitialTime,
		Spawn: manager.SpawnRules{
			SpecialEvery: cfg.Food.SpecialEvery,
			PenaltyEvery: cfg.Food.PenaltyEvery,
			BonusEvery:   cfg.Food.BonusEvery,
		},
		SpecialTime: cfg.Food.SpecialTime,
		BonusPoints: cfg.Food.BonusPoints,
	}
}

func NewSession(cfg *config.Config, clock loop.Clock, rng *rand.Rand, themes *ui.Themes, log *zap.Logger) (*Session, error) {
	s := &Session{
		log:    log,
		game:   game.NewGame(rulesFromConfig(cfg), rng, log.Named("game")),
		sched:  loop.NewScheduler(clock),
		hud:    ui.NewHUD(clock, cfg.Timing.NoticeDuration),
		themes: themes,
	}
	// NewGame already announced the first round; seed the HUD by hand.
	s.hud.ScoreChanged(s.game.Score())
	s.hud.TimeChanged(s.game.TimeLeft())
	s.game.AddListener(s.hud)
	s.game.AddListener(s)

	if err := s.sched.Every(taskTick, cfg.Timing.TickRate, s.game.Tick); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if err := s.sched.Every(taskTimer, cfg.Timing.TimerInterval, s.game.TimerTick); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return s, nil
}

// GameOver restarts the countdown so the next round gets a full first
// second.
func (s *Session) GameOver(game.GameOverEvent) {
	s.sched.Restart(taskTimer)
}

// AddListener forwards engine events to l.
func (s *Session) AddListener(l game.Listener) {
	s.game.AddListener(l)
}

// Handle applies one frontend action.
func (s *Session) Handle(a ui.Action) {
	switch a {
	case ui.ActionNone:
	case ui.ActionQuit:
		s.quit = true
	case ui.ActionTheme:
		th := s.themes.Next()
		s.log.Debug("Theme changed", zap.String("theme", th.Name))
	default:
		if cmd, ok := a.Command(); ok {
			s.game.Apply(cmd)
		}
	}
}

// Update runs whatever scheduled work is due.
func (s *Session) Update() int {
	return s.sched.Poll()
}

func (s *Session) Snapshot() game.Snapshot {
	return s.game.Snapshot()
}

func (s *Session) HUD() *ui.HUD {
	return s.hud
}

func (s *Session) Themes() *ui.Themes {
	return s.themes
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) Done() bool {
	return s.quit
}

// Close logs the session summary.
func (s *Session) Close() {
	st := s.game.Stats()
	s.log.Info("Session finished",
		zap.Int("games", st.GamesPlayed),
		zap.Int("high_score", st.HighScore),
		zap.Float64("average", st.AverageScore),
		zap.Float64("median", st.MedianScore))
}
