package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/config"
	"github.com/dimaq12/minefield/game"
	"github.com/dimaq12/minefield/models"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		config.Exit("minefield", err)
	}
}

func run(args []string, in *os.File, out io.Writer) error {
	cfg, err := config.Load("minefield", args)
	if err != nil {
		return err
	}

	ui := game.ResolveUI(cfg.UI, in)
	logger, closeLog, err := newLogger(cfg, ui)
	if err != nil {
		return err
	}
	defer closeLog()

	layout, err := loadLayout(cfg)
	if err != nil {
		return err
	}
	board, err := models.NewBoard(layout)
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}

	controller := game.NewGameController(ui, in, out, game.Glyphs(cfg.Glyphs), logger)
	if _, err := controller.StartGame(board); err != nil {
		controller.TerminateGame()
		if errors.Is(err, game.ErrInputClosed) || errors.Is(err, game.ErrAbandoned) {
			fmt.Fprintln(out, "Quitting...")
			return nil
		}
		return err
	}
	return nil
}

// loadLayout picks the board source: a layout file, a random level, or the
// built-in practice board.
func loadLayout(cfg config.Config) ([][]bool, error) {
	switch {
	case cfg.Layout != "":
		f, err := os.Open(cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("open layout: %w", err)
		}
		defer f.Close()

		layout, err := game.ParseLayout(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfg.Layout, err)
		}
		return layout, nil
	case cfg.Level > 0:
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return game.LevelLayout(cfg.Level, rand.New(rand.NewSource(seed))), nil
	default:
		return game.DefaultLayout(), nil
	}
}

// newLogger builds the process logger. The terminal UI owns the screen, so
// without a log file its logs are dropped.
func newLogger(cfg config.Config, ui string) (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		return logger, func() { f.Close() }, nil
	case ui == config.UITview:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}
	return logger, func() {}, nil
}
