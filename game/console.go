package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

const (
	wonMessage  = "Congratulations! You won the game!"
	lostMessage = "Game Over! You hit a mine."
)

var (
	// ErrMalformedInput matches every *InputError.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInputClosed is returned when input ends before the game does.
	ErrInputClosed = errors.New("input closed before the game finished")
)

// InputError describes a line that could not be read as a move.
type InputError struct {
	Line   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Line)
}

func (e *InputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Glyphs are the markers drawn for cells that do not show a count.
type Glyphs struct {
	Hidden string
	Mine   string
	Flag   string
}

// DefaultGlyphs matches the markers of the terminal renderer.
var DefaultGlyphs = Glyphs{Hidden: ".", Mine: "M", Flag: "F"}

// CellText is the marker for one snapshot cell: the hidden glyph, the flag
// glyph, the mine glyph or the adjacent count.
func (g Glyphs) CellText(v models.CellView) string {
	switch v.State {
	case models.Flagged:
		return g.Flag
	case models.Revealed:
		if v.Mine {
			return g.Mine
		}
		return strconv.Itoa(v.AdjacentMines)
	default:
		return g.Hidden
	}
}

// width is the display width every cell is padded to.
func (g Glyphs) width() int {
	w := 1
	for _, s := range []string{g.Hidden, g.Mine, g.Flag} {
		if sw := runewidth.StringWidth(s); sw > w {
			w = sw
		}
	}
	return w
}

// Move is one parsed player command.
type Move struct {
	Row  int
	Col  int
	Flag bool
}

func (m Move) Action() string {
	if m.Flag {
		return "flag"
	}
	return "reveal"
}

// Apply runs the move against the board. Coordinates must already be in
// bounds.
func (m Move) Apply(b *models.Board) {
	if m.Flag {
		b.ToggleFlag(m.Row, m.Col)
		return
	}
	b.Reveal(m.Row, m.Col)
}

// ParseMove reads "row col" as a reveal and "row col <anything>" as a flag.
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return Move{}, &InputError{Line: line, Reason: "expected row, column and an optional flag marker"}
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, &InputError{Line: line, Reason: "row is not a number"}
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, &InputError{Line: line, Reason: "column is not a number"}
	}

	return Move{Row: row, Col: col, Flag: len(fields) == 3}, nil
}

// Console is the line-oriented frontend: it prints the board, reads one move
// per line and stops once the game is over.
type Console struct {
	in     io.Reader
	out    io.Writer
	glyphs Glyphs
	log    logrus.FieldLogger
}

func NewConsole(in io.Reader, out io.Writer, glyphs Glyphs, log logrus.FieldLogger) *Console {
	return &Console{in: in, out: out, glyphs: glyphs, log: log}
}

// Render writes the snapshot, one board row per line.
func (c *Console) Render(snap models.Snapshot) {
	width := c.glyphs.width() + 1
	var sb strings.Builder
	for _, row := range snap.Cells {
		for _, v := range row {
			sb.WriteString(runewidth.FillLeft(c.glyphs.CellText(v), width))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(c.out, sb.String())
}

// Run plays the board until it is won or lost. Bad lines are reported and
// skipped; running out of input returns ErrInputClosed.
func (c *Console) Run(board *models.Board) (models.State, error) {
	scanner := bufio.NewScanner(c.in)

	c.Render(board.Snapshot())
	fmt.Fprintln(c.out)

	for !board.Finished() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return board.State(), fmt.Errorf("read move: %w", err)
			}
			return board.State(), ErrInputClosed
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		move, err := ParseMove(line)
		if err != nil {
			c.log.WithError(err).Debug("rejected move")
			fmt.Fprintf(c.out, "invalid input: %v\n", err)
			continue
		}
		if !board.InBounds(move.Row, move.Col) {
			err := &models.CoordinateError{Row: move.Row, Col: move.Col, Rows: board.Rows(), Cols: board.Cols()}
			c.log.WithError(err).Debug("rejected move")
			fmt.Fprintf(c.out, "invalid move: %v\n", err)
			continue
		}

		move.Apply(board)
		c.log.WithFields(logrus.Fields{
			"row":    move.Row,
			"col":    move.Col,
			"action": move.Action(),
			"state":  board.State().String(),
		}).Debug("applied move")

		fmt.Fprintln(c.out)
		c.Render(board.Snapshot())
		fmt.Fprintln(c.out)
	}

	return board.State(), nil
}

// OutcomeMessage is the closing line for a finished board.
func OutcomeMessage(state models.State) string {
	switch state {
	case models.Won:
		return wonMessage
	case models.Lost:
		return lostMessage
	default:
		return ""
	}
}
