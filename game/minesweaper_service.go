package game

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

// ErrAbandoned is returned when the player quits before the game is over.
var ErrAbandoned = errors.New("game abandoned")

// GameService is a frontend that plays one board to completion.
type GameService interface {
	Run(board *models.Board) (models.State, error)
}

// MinesweeperService is the interactive terminal frontend. All board calls
// happen on the tview event goroutine.
type MinesweeperService struct {
	game     *models.Board
	renderer *Renderer
	app      *tview.Application
	log      logrus.FieldLogger
}

func NewMinesweeperService(glyphs Glyphs, log logrus.FieldLogger) *MinesweeperService {
	return &MinesweeperService{
		renderer: NewRenderer(glyphs),
		log:      log,
	}
}

// Run draws the board and blocks until the game ends or the player quits.
func (s *MinesweeperService) Run(board *models.Board) (models.State, error) {
	s.game = board
	s.renderer.DrawBoard(board.Snapshot())
	s.app = tview.NewApplication()
	s.app.SetRoot(s.renderer.root, true)

	s.handleInput()

	if err := s.app.Run(); err != nil {
		return board.State(), fmt.Errorf("run terminal ui: %w", err)
	}
	if !board.Finished() {
		return board.State(), ErrAbandoned
	}
	return board.State(), nil
}

func (s *MinesweeperService) handleInput() {
	s.renderer.boardTable.SetInputCapture(s.handleKey)
}

func (s *MinesweeperService) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if s.game.Finished() {
		s.app.Stop()
		return nil
	}

	row, col := s.renderer.boardTable.GetSelection()

	switch event.Key() {
	case tcell.KeyEnter:
		s.play(Move{Row: row, Col: col})
		return nil
	case tcell.KeyEscape:
		s.app.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f', 'F':
			s.play(Move{Row: row, Col: col, Flag: true})
			return nil
		case 'q', 'Q':
			s.app.Stop()
			return nil
		}
	}

	return event
}

func (s *MinesweeperService) play(move Move) {
	if !s.game.InBounds(move.Row, move.Col) {
		return
	}

	move.Apply(s.game)
	s.log.WithFields(logrus.Fields{
		"row":    move.Row,
		"col":    move.Col,
		"action": move.Action(),
		"state":  s.game.State().String(),
	}).Debug("applied move")

	s.renderer.DrawBoard(s.game.Snapshot())
	if s.game.Finished() {
		s.app.Stop()
	}
}
