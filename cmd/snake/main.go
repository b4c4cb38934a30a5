package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rovaughn/termsnake/console"
	"github.com/rovaughn/termsnake/snake"
	"github.com/rovaughn/termsnake/termapp"
	"github.com/rs/zerolog"
)

// frontend is a terminal the game can read keys from and draw on.
type frontend interface {
	snake.InputPoller
	snake.Display
	Close() error
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := setupLogging(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg, logger)
	logFile.Close()
	os.Exit(code)
}

func run(cfg config, logger zerolog.Logger) (code int) {
	front, err := openFrontend(cfg)
	if err != nil {
		logger.Error().Err(err).Str("backend", cfg.Backend).Msg("terminal unavailable")
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	// Restore the terminal before reporting a crash, otherwise the trace is
	// printed into raw mode.
	defer func() {
		if r := recover(); r != nil {
			front.Close()
			logger.Error().Interface("panic", r).Msg("crashed")
			fmt.Fprintf(os.Stderr, "snake crashed: %v\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	opts := []snake.Option{snake.WithTick(cfg.Tick)}
	if cfg.Seed != 0 {
		opts = append(opts, snake.WithSeed(uint64(cfg.Seed)))
	}
	loop := snake.NewLoop(snake.Setup(opts...), front, front, logger)

	runErr := loop.Run(ctx)

	if err := front.Close(); err != nil {
		logger.Warn().Err(err).Msg("terminal restore failed")
	}

	fmt.Printf("Score:%d\n", loop.Game().Score)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "snake: %v\n", runErr)
		return 1
	}
	return 0
}

func openFrontend(cfg config) (frontend, error) {
	switch cfg.Backend {
	case backendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		c, err := console.NewTcell(screen)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		t, err := termapp.Open(cfg.TTY)
		if err != nil {
			return nil, err
		}
		// Border rows plus the score and pause lines.
		if err := t.Fit(snake.DefaultWidth+2, snake.DefaultHeight+4); err != nil {
			t.Close()
			return nil, err
		}
		return console.NewANSI(t), nil
	}
}
