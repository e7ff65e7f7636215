package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	Board   BoardConfig   `toml:"board"`
	Timing  TimingConfig  `toml:"timing"`
	Food    FoodConfig    `toml:"food"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

type BoardConfig struct {
	CanvasWidth  int `toml:"canvas_width"`  // pixels
	CanvasHeight int `toml:"canvas_height"` // pixels
	BoxSize      int `toml:"box_size"`      // pixels per grid cell
	StartX       int `toml:"start_x"`
	StartY       int `toml:"start_y"`
}

// Cols and Rows give the grid size in cells.
func (b BoardConfig) Cols() int { return b.CanvasWidth / b.BoxSize }
func (b BoardConfig) Rows() int { return b.CanvasHeight / b.BoxSize }

type TimingConfig struct {
	TickRate       time.Duration `toml:"tick_rate"`
	TimerInterval  time.Duration `toml:"timer_interval"`
	InitialTime    int           `toml:"initial_time"` // seconds
	NoticeDuration time.Duration `toml:"notice_duration"`
}

type FoodConfig struct {
	SpecialEvery int `toml:"special_every"`
	PenaltyEvery int `toml:"penalty_every"`
	BonusEvery   int `toml:"bonus_every"`
	SpecialTime  int `toml:"special_time"` // seconds
	BonusPoints  int `toml:"bonus_points"`
}

type DisplayConfig struct {
	Frontend   string `toml:"frontend"` // "window" or "terminal"
	Theme      string `toml:"theme"`
	ThemesFile string `toml:"themes_file"` // empty uses the built-in palettes
	Sound      bool   `toml:"sound"`
	Seed       uint64 `toml:"seed"` // 0 seeds from the clock
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path; empty picks a default per frontend
}

// Load reads path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when path does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return Load(path)
}

func Defaults() *Config {
	return &Config{
		Board: BoardConfig{
			CanvasWidth:  400,
			CanvasHeight: 400,
			BoxSize:      20,
			StartX:       10,
			StartY:       10,
		},
		Timing: TimingConfig{
			TickRate:       100 * time.Millisecond,
			TimerInterval:  time.Second,
			InitialTime:    60,
			NoticeDuration: 3 * time.Second,
		},
		Food: FoodConfig{
			SpecialEvery: 10,
			PenaltyEvery: 3,
			BonusEvery:   2,
			SpecialTime:  30,
			BonusPoints:  10,
		},
		Display: DisplayConfig{
			Frontend: FrontendWindow,
			Theme:    "default",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the values the game cannot run with.
func (c *Config) Validate() error {
	b := c.Board
	switch {
	case b.BoxSize <= 0:
		return fmt.Errorf("%w: board.box_size must be positive, got %d", ErrInvalid, b.BoxSize)
	case b.Cols() < 1 || b.Rows() < 1:
		return fmt.Errorf("%w: canvas %dx%d holds no %dpx cell", ErrInvalid, b.CanvasWidth, b.CanvasHeight, b.BoxSize)
	case b.StartX < 0 || b.StartX >= b.Cols() || b.StartY < 0 || b.StartY >= b.Rows():
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalid, b.StartX, b.StartY, b.Cols(), b.Rows())
	}

	t := c.Timing
	switch {
	case t.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %s", ErrInvalid, t.TickRate)
	case t.TimerInterval <= 0:
		return fmt.Errorf("%w: timing.timer_interval must be positive, got %s", ErrInvalid, t.TimerInterval)
	case t.InitialTime <= 0:
		return fmt.Errorf("%w: timing.initial_time must be positive, got %d", ErrInvalid, t.InitialTime)
	case t.NoticeDuration < 0:
		return fmt.Errorf("%w: timing.notice_duration must not be negative", ErrInvalid)
	}

	f := c.Food
	if f.SpecialEvery < 1 || f.PenaltyEvery < 1 || f.BonusEvery < 1 {
		return fmt.Errorf("%w: food thresholds must be at least 1 (special_every=%d penalty_every=%d bonus_every=%d)",
			ErrInvalid, f.SpecialEvery, f.PenaltyEvery, f.BonusEvery)
	}

	switch c.Display.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Display.Frontend)
	}
	return nil
}

// LogOutput is where log lines go: stderr for the window, a file for the
// terminal frontend so the screen stays clean.
func (c *Config) LogOutput() string {
	if c.Logging.Output != "" {
		return c.Logging.Output
	}
	if c.Display.Frontend == FrontendTerminal {
		return "snake.log"
	}
	return "stderr"
}
