// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/entity"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate   = beep.SampleRate(44100)
	cueLength    = 80 * time.Millisecond
	noteLength   = 120 * time.Millisecond
	masterVolume = 0.25
)

var foodFreq = [entity.FoodKinds]float64{
	entity.Primary: 660,
	entity.Special: 880,
	entity.Penalty: 220,
	entity.Bonus:   1320,
}

var gameOverNotes = []float64{440, 330, 220}

// tone is a sine at freq lasting d.
func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// FoodSound is the cue for eating kind.
func FoodSound(sr beep.SampleRate, kind entity.FoodKind) (beep.Streamer, error) {
	s, err := tone(sr, foodFreq[kind], cueLength)
	if err != nil {
		return nil, err
	}
	return volume(s, masterVolume), nil
}

// GameOverSound is a short falling phrase.
func GameOverSound(sr beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, f := range gameOverNotes {
		s, err := tone(sr, f, noteLength)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return volume(beep.Seq(notes...), masterVolume), nil
}

// Player turns engine events into sounds. Until Init succeeds every event
// is dropped, so a machine without an audio device plays silently.
type Player struct {
	game.NopListener

	log   *zap.Logger
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{log: log, mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.log.Info("Audio ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *Player) FoodEaten(kind entity.FoodKind) {
	p.play(func() (beep.Streamer, error) { return FoodSound(sampleRate, kind) })
}

func (p *Player) GameOver(game.GameOverEvent) {
	p.play(func() (beep.Streamer, error) { return GameOverSound(sampleRate) })
}

func (p *Player) play(build func() (beep.Streamer, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	s, err := build()
	if err != nil {
		p.log.Warn("Sound skipped", zap.Error(err))
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
