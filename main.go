package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game/loop"
	"snake-arcade/ui"
	"snake-arcade/ui/window"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/rand"
)

const frameInterval = time.Second / 60

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	frontend   string
	theme      string
	speedMs    int
	sound      bool
	seed       uint64
	set        map[string]bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	o := &options{set: make(map[string]bool)}
	fs.StringVar(&o.configPath, "config", "snake.toml", "Path to the TOML config file")
	fs.StringVar(&o.frontend, "frontend", config.FrontendWindow, "Frontend: window or terminal")
	fs.StringVar(&o.theme, "theme", "default", "Colour theme")
	fs.IntVar(&o.speedMs, "speed", 100, "Game speed in milliseconds per move (lower = faster)")
	fs.BoolVar(&o.sound, "sound", false, "Play sound effects")
	fs.Uint64Var(&o.seed, "seed", 0, "Food placement seed (0 = random)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides cfg with the flags given on the command line.
func (o *options) apply(cfg *config.Config) {
	if o.set["frontend"] {
		cfg.Display.Frontend = o.frontend
	}
	if o.set["theme"] {
		cfg.Display.Theme = o.theme
	}
	if o.set["speed"] {
		cfg.Timing.TickRate = time.Duration(o.speedMs) * time.Millisecond
	}
	if o.set["sound"] {
		cfg.Display.Sound = o.sound
	}
	if o.set["seed"] {
		cfg.Display.Seed = o.seed
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	load := config.LoadOrDefault
	if opts.set["config"] {
		load = config.Load
	}
	cfg, err := load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	themes, err := ui.LoadThemes(cfg.Display.ThemesFile)
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}
	if err := themes.Select(cfg.Display.Theme); err != nil {
		return fmt.Errorf("select theme: %w", err)
	}

	seed := cfg.Display.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	s, err := NewSession(cfg, loop.SystemClock{}, rng, themes, log)
	if err != nil {
		return err
	}
	defer s.Close()

	if cfg.Display.Sound {
		player := audio.NewPlayer(log.Named("audio"))
		if err := player.Init(); err != nil {
			log.Warn("Sound disabled", zap.Error(err))
		} else {
			defer player.Close()
			s.AddListener(player)
		}
	}

	log.Info("Snake starting",
		zap.String("frontend", cfg.Display.Frontend),
		zap.Int("cols", cfg.Board.Cols()),
		zap.Int("rows", cfg.Board.Rows()),
		zap.Duration("tick_rate", cfg.Timing.TickRate),
		zap.String("theme", cfg.Display.Theme),
		zap.Uint64("seed", seed))

	if cfg.Display.Frontend == config.FrontendTerminal {
		return runTerminal(s, log)
	}
	return runWindow(s, cfg)
}

func runWindow(s *Session, cfg *config.Config) error {
	w, h := window.WindowSize(cfg.Board.Cols(), cfg.Board.Rows(), cfg.Board.BoxSize)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc is mapped to quit like Q
	rl.SetTargetFPS(60)

	renderer := window.NewRenderer(s.HUD(), s.Themes())
	for !rl.WindowShouldClose() && !s.Done() {
		for _, a := range window.PollActions() {
			s.Handle(a)
		}
		s.Update()
		renderer.Draw(s.Snapshot())
	}
	return nil
}

func runTerminal(s *Session, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	grid := s.Snapshot().Grid
	if w, h := screen.Size(); w < grid.Width*2+2 || h < grid.Height+4 {
		log.Warn("Terminal smaller than the board", zap.Int("width", w), zap.Int("height", h))
	}

	term := ui.NewTerminal(screen, s.HUD(), s.Themes())

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	for !s.Done() {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.Handle(ui.KeyAction(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-frame.C:
			s.Update()
			term.Draw(s.Snapshot())
		}
	}
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	output := cfg.LogOutput()
	var zapCfg zap.Config
	if cfg.Logging.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if output != "stderr" && output != "stdout" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{output}

	return zapCfg.Build()
}
