package ui

import (
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/loop"
)

// HUD mirrors the score and timer labels and holds the game-over notice.
// It is fed by the engine's listener calls.
type HUD struct {
	game.NopListener

	clock    loop.Clock
	duration time.Duration

	score       int
	timeLeft    int
	notice      string
	noticeUntil time.Time
}

// NewHUD shows each game-over notice for duration.
func NewHUD(clock loop.Clock, duration time.Duration) *HUD {
	if clock == nil {
		clock = loop.SystemClock{}
	}
	return &HUD{clock: clock, duration: duration}
}

func (h *HUD) ScoreChanged(score int) {
	h.score = score
}

func (h *HUD) TimeChanged(seconds int) {
	h.timeLeft = seconds
}

func (h *HUD) GameOver(ev game.GameOverEvent) {
	h.notice = fmt.Sprintf("%s Your final score was: %d", ev.Reason, ev.Score)
	h.noticeUntil = h.clock.Now().Add(h.duration)
}

func (h *HUD) ScoreText() string {
	return fmt.Sprintf("Score: %d", h.score)
}

func (h *HUD) TimeText() string {
	return fmt.Sprintf("Time Left: %ds", h.timeLeft)
}

// StatsText summarises the session for the status line.
func (h *HUD) StatsText(s game.Snapshot) string {
	return fmt.Sprintf("Best: %d  Games: %d  Avg: %.1f", s.Stats.HighScore, s.Stats.GamesPlayed, s.Stats.AverageScore)
}

// Notice returns the game-over message while it is still on screen.
func (h *HUD) Notice() (string, bool) {
	if h.notice == "" || !h.clock.Now().Before(h.noticeUntil) {
		return "", false
	}
	return h.notice, true
}

// DismissNotice hides the current notice early.
func (h *HUD) DismissNotice() {
	h.notice = ""
}
