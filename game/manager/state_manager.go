package manager

import (
	"sort"
	"time"
)

// MaxRecords bounds the in-memory round history.
const MaxRecords = 200

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     string
}

// Duration of the round.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsSummary is a read-only view for the HUD.
type StatsSummary struct {
	GamesPlayed  int
	HighScore    int
	AverageScore float64
	MedianScore  float64
	LastScore    int
}

// StateManager keeps the session's round history. It lives only as long
// as the process.
type StateManager struct {
	history     []RoundRecord
	gamesPlayed int
	highScore   int
	hasHigh     bool
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round, dropping the oldest record once
// MaxRecords is exceeded. High score and game count cover the whole session.
func (sm *StateManager) AddRound(rec RoundRecord) {
	if len(sm.history) >= MaxRecords {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, rec)
	sm.gamesPlayed++
	if !sm.hasHigh || rec.Score > sm.highScore {
		sm.highScore = rec.Score
		sm.hasHigh = true
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetHistory returns a copy of the retained records, oldest first.
func (sm *StateManager) GetHistory() []RoundRecord {
	out := make([]RoundRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

// GetAverageScore averages the retained records.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.history {
		total += r.Score
	}
	return float64(total) / float64(len(sm.history))
}

// GetMedianScore returns the median of the retained records.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	scores := make([]int, len(sm.history))
	for i, r := range sm.history {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (sm *StateManager) Summary() StatsSummary {
	s := StatsSummary{
		GamesPlayed:  sm.gamesPlayed,
		HighScore:    sm.highScore,
		AverageScore: sm.GetAverageScore(),
		MedianScore:  sm.GetMedianScore(),
	}
	if n := len(sm.history); n > 0 {
		s.LastScore = sm.history[n-1].Score
	}
	return s
}
