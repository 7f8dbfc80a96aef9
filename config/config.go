// Package config loads runtime settings from the environment and the command
// line. Environment values are defaults; flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Frontends accepted by UI.
const (
	UIAuto    = "auto"
	UIConsole = "console"
	UITview   = "tview"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Glyphs are the markers the frontends draw for cells that are not numbers.
type Glyphs struct {
	Hidden string `env:"HIDDEN" envDefault:"."`
	Mine   string `env:"MINE" envDefault:"M"`
	Flag   string `env:"FLAG" envDefault:"F"`
}

type Config struct {
	UI       string `env:"MINESWEEPER_UI" envDefault:"auto"`
	Level    int    `env:"MINESWEEPER_LEVEL" envDefault:"0"`
	Layout   string `env:"MINESWEEPER_LAYOUT"`
	Seed     int64  `env:"MINESWEEPER_SEED" envDefault:"0"`
	LogLevel string `env:"MINESWEEPER_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"MINESWEEPER_LOG_FILE"`
	Glyphs   Glyphs `envPrefix:"MINESWEEPER_GLYPH_"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads environment defaults, applies args as flags, and validates the
// result.
func Load(name string, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: auto, console or tview")
	fs.IntVar(&cfg.Level, "level", cfg.Level, "random board level 1-5; 0 keeps the default or layout board")
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "path to a mine layout file")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random boards; 0 uses the clock")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file; empty logs to stderr")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that the parsers accept but the game cannot use.
func (c Config) Validate() error {
	switch c.UI {
	case UIAuto, UIConsole, UITview:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalidConfig, c.UI)
	}
	if c.Level < 0 || c.Level > 5 {
		return fmt.Errorf("%w: level %d outside 0-5", ErrInvalidConfig, c.Level)
	}
	if c.Level > 0 && c.Layout != "" {
		return fmt.Errorf("%w: level and layout are mutually exclusive", ErrInvalidConfig)
	}
	if c.Glyphs.Hidden == "" || c.Glyphs.Mine == "" || c.Glyphs.Flag == "" {
		return fmt.Errorf("%w: glyphs must not be empty", ErrInvalidConfig)
	}
	return nil
}
