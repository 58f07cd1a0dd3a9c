package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/microwave/app"
	"github.com/lixenwraith/microwave/audio"
	"github.com/lixenwraith/microwave/config"
	"github.com/lixenwraith/microwave/console"
	"github.com/lixenwraith/microwave/render"
	"github.com/lixenwraith/microwave/service"
	"github.com/lixenwraith/microwave/terminal"
	"github.com/lixenwraith/microwave/trace"
	"github.com/rs/zerolog/log"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	envFlag     = flag.String("env", ".env", "Path to a .env file, ignored if missing")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to -logdir")
	logDirFlag  = flag.String("logdir", "logs", "Directory for debug logs")
	colorFlag   = flag.String("color", "", "Color mode: auto, 256, truecolor, mono (overrides config)")
	consoleFlag = flag.Bool("console", false, "Line-mode console instead of the full-screen UI")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if f := setupLogging(*logDirFlag, *debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *colorFlag != "" {
		cfg.Display.Color = *colorFlag
	}
	log.Info().
		Str("config", *configFlag).
		Ints64("presets_ms", cfg.Timer.PresetsMs).
		Int64("default_ms", cfg.Timer.DefaultMs).
		Msg("microwave starting")

	// Audio and tracing are optional, the session runs without either
	hub := service.NewHub()
	hub.Register(audio.NewSoundManager(cfg.AudioSettings()))
	if cfg.Trace.Path != "" {
		hub.Register(trace.NewFileService(cfg.Trace.Path))
	}
	if err := hub.StartAll(); err != nil {
		log.Warn().Err(err).Msg("optional services unavailable, continuing without them")
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			log.Warn().Err(err).Msg("service shutdown")
		}
	}()

	var player app.Player
	if sound, ok := service.Get[*audio.SoundManager](hub, audio.ServiceName); ok {
		player = sound
	}
	var tw *trace.Writer
	if ts, ok := service.Get[*trace.FileService](hub, trace.ServiceName); ok {
		tw = ts.Writer()
		log.Info().Str("path", cfg.Trace.Path).Stringer("session", tw.Session()).Msg("tracing transitions")
	}

	clock := clockwork.NewRealClock()
	logger := log.Logger
	session := app.NewSession(app.Options{
		PresetsMs: cfg.SortedPresets(),
		DefaultMs: cfg.Timer.DefaultMs,
		Clock:     clock,
		Player:    player,
		Trace:     tw,
		Logger:    &logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *consoleFlag {
		return runConsole(ctx, session, clock)
	}
	if !terminal.IsInteractive(os.Stdout) {
		log.Warn().Msg("stdout is not a terminal, falling back to console mode")
		return runConsole(ctx, session, clock)
	}
	return runScreen(ctx, cfg, session, clock)
}

func runConsole(ctx context.Context, session *app.Session, clock clockwork.Clock) int {
	con, err := console.New(session, clock, log.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start console: %v\n", err)
		return 1
	}
	if err := con.Run(ctx); err != nil {
		log.Error().Err(err).Msg("console stopped")
		return 1
	}
	return 0
}

func runScreen(ctx context.Context, cfg *config.Config, session *app.Session, clock clockwork.Clock) (code int) {
	mode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid color mode: %v\n", err)
		return 1
	}
	if err := terminal.Prepare(mode); err != nil {
		log.Warn().Err(err).Msg("failed to prepare color environment")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic recovery: reset the terminal before printing so the trace stays readable
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMICROWAVE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	screen.HideCursor()
	log.Debug().Stringer("color", mode).Msg("screen ready")

	theme := render.NewTheme(mode == terminal.ColorModeMono)
	host := app.NewHost(session, screen, render.NewTerminalRenderer(theme), clock, cfg.Display.FrameInterval, log.Logger)
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("frame loop stopped")
		return 1
	}
	return 0
}
