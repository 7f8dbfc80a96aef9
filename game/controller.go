package game

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/dimaq12/minefield/config"
	"github.com/dimaq12/minefield/models"
)

var isTerminal = term.IsTerminal

// ResolveUI turns "auto" into a concrete frontend: the terminal UI when in is
// an interactive terminal, the console otherwise.
func ResolveUI(ui string, in io.Reader) string {
	if ui != config.UIAuto {
		return ui
	}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		return config.UITview
	}
	return config.UIConsole
}

type GameController struct {
	service GameService
	out     io.Writer
	log     logrus.FieldLogger
}

// NewGameController picks the frontend named by ui. in and out are only used
// by the console frontend and for the closing message.
func NewGameController(ui string, in io.Reader, out io.Writer, glyphs Glyphs, log logrus.FieldLogger) *GameController {
	var service GameService
	switch ResolveUI(ui, in) {
	case config.UITview:
		service = NewMinesweeperService(glyphs, log)
	default:
		service = NewConsole(in, out, glyphs, log)
	}
	return &GameController{service: service, out: out, log: log}
}

// StartGame plays board to completion and returns the final state.
func (c *GameController) StartGame(board *models.Board) (models.State, error) {
	c.log.WithFields(logrus.Fields{
		"frontend": fmt.Sprintf("%T", c.service),
		"rows":     board.Rows(),
		"cols":     board.Cols(),
		"mines":    board.MineCount(),
	}).Info("starting game")

	state, err := c.service.Run(board)
	if err != nil {
		c.log.WithError(err).WithField("state", state.String()).Warn("game stopped early")
		return state, err
	}

	fmt.Fprintln(c.out, OutcomeMessage(state))
	c.log.WithFields(logrus.Fields{
		"state":    state.String(),
		"revealed": board.RevealedCount(),
		"flagged":  board.FlaggedCount(),
	}).Info("game finished")
	return state, nil
}

func (c *GameController) TerminateGame() {
	c.log.Info("terminating the game")
}
