package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rovaughn/termsnake/snake"
	"github.com/rs/zerolog"
)

const (
	backendANSI  = "ansi"
	backendTcell = "tcell"
)

type config struct {
	Backend  string
	TTY      string
	Tick     time.Duration
	Seed     int64
	LogPath  string
	LogLevel zerolog.Level
}

// loadConfig reads SNAKE_* environment defaults, then lets flags override them.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	env := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	tick := snake.DefaultTick
	if v := getenv("SNAKE_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("SNAKE_TICK: %w", err)
		}
		tick = d
	}

	var cfg config
	var level string

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Backend, "backend", env("SNAKE_BACKEND", backendANSI), "terminal backend: ansi or tcell")
	fs.StringVar(&cfg.TTY, "tty", env("SNAKE_TTY", "/dev/tty"), "terminal device for the ansi backend")
	fs.DurationVar(&cfg.Tick, "tick", tick, "initial tick interval")
	fs.Int64Var(&cfg.Seed, "seed", 0, "fruit placement seed (0 picks one from the clock)")
	fs.StringVar(&cfg.LogPath, "log", env("SNAKE_LOG", ""), "write a JSON log to this file")
	fs.StringVar(&level, "log-level", env("SNAKE_LOG_LEVEL", "info"), "log level")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch cfg.Backend {
	case backendANSI, backendTcell:
	default:
		return config{}, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	if err := snake.CheckTick(cfg.Tick); err != nil {
		return config{}, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl

	return cfg, nil
}
