package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minefield/models"
)

// newTestService prepares a service without starting the tview event loop;
// Stop on an unstarted application is a no-op.
func newTestService(t *testing.T, board *models.Board) *MinesweeperService {
	t.Helper()
	s := NewMinesweeperService(DefaultGlyphs, quietLogger())
	s.game = board
	s.app = tview.NewApplication()
	s.renderer.DrawBoard(board.Snapshot())
	return s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestServiceEnterRevealsSelection(t *testing.T) {
	board := cornerBoard(t)
	s := newTestService(t, board)

	s.renderer.boardTable.Select(0, 0)
	if ev := s.handleKey(key(tcell.KeyEnter)); ev != nil {
		t.Fatalf("expected enter to be consumed, got %v", ev)
	}

	if board.RevealedCount() != 8 {
		t.Fatalf("expected cascade to reveal 8 cells, got %d", board.RevealedCount())
	}
	if got := s.renderer.boardTable.GetCell(1, 0).Text; got != "1" {
		t.Fatalf("expected rendered count 1, got %q", got)
	}
	if got := s.renderer.boardTable.GetCell(2, 0).Text; got != "." {
		t.Fatalf("expected mine cell to stay hidden, got %q", got)
	}
}

func TestServiceFlagWins(t *testing.T) {
	board := cornerBoard(t)
	s := newTestService(t, board)

	s.renderer.boardTable.Select(0, 0)
	s.handleKey(key(tcell.KeyEnter))
	s.renderer.boardTable.Select(2, 0)
	if ev := s.handleKey(runeKey('f')); ev != nil {
		t.Fatalf("expected flag key to be consumed, got %v", ev)
	}

	if board.State() != models.Won {
		t.Fatalf("expected won, got %v", board.State())
	}
	if got := s.renderer.boardTable.GetCell(2, 0).Text; got != "F" {
		t.Fatalf("expected flag glyph, got %q", got)
	}
	if got := s.renderer.status.GetText(true); got != wonMessage {
		t.Fatalf("expected status %q, got %q", wonMessage, got)
	}
}

func TestServiceRevealMineLoses(t *testing.T) {
	board := cornerBoard(t)
	s := newTestService(t, board)

	s.renderer.boardTable.Select(2, 0)
	s.handleKey(key(tcell.KeyEnter))

	if board.State() != models.Lost {
		t.Fatalf("expected lost, got %v", board.State())
	}
	if got := s.renderer.boardTable.GetCell(2, 0).Text; got != "M" {
		t.Fatalf("expected mine glyph, got %q", got)
	}

	// Keys after the end do not touch the board.
	s.renderer.boardTable.Select(0, 0)
	s.handleKey(key(tcell.KeyEnter))
	if board.RevealedCount() != 1 {
		t.Fatalf("expected no reveal after loss, got %d", board.RevealedCount())
	}
}

func TestServicePassesNavigationKeys(t *testing.T) {
	s := newTestService(t, cornerBoard(t))

	ev := key(tcell.KeyDown)
	if got := s.handleKey(ev); got != ev {
		t.Fatalf("expected navigation key to pass through, got %v", got)
	}
	if got := s.handleKey(runeKey('q')); got != nil {
		t.Fatalf("expected quit key to be consumed, got %v", got)
	}
}

func TestStatusLine(t *testing.T) {
	board := cornerBoard(t)
	board.ToggleFlag(0, 0)

	want := "Mines left: 0  (Enter reveal, f flag, q quit)"
	if got := statusLine(board.Snapshot()); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
