package models

// State is the lifecycle of a board. Lost and Won are terminal.
type State int

const (
	InProgress State = iota
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// CellState says how much of a cell a viewer may see.
type CellState int

const (
	// Hidden cells disclose nothing.
	Hidden CellState = iota
	// Flagged cells disclose only the flag, never the count or the mine.
	Flagged
	// Revealed cells disclose Mine and AdjacentMines.
	Revealed
)

// CellView is the viewer-safe form of a Cell. Mine and AdjacentMines are
// zero unless State is Revealed.
type CellView struct {
	State         CellState
	Mine          bool
	AdjacentMines int
}

// Snapshot is a copy of the board as a player is allowed to see it.
type Snapshot struct {
	Rows           int
	Cols           int
	Cells          [][]CellView
	Finished       bool
	Won            bool
	State          State
	MinesRemaining int
}

// At returns the view of a single cell.
func (s Snapshot) At(row, col int) CellView {
	return s.Cells[row][col]
}

// Snapshot returns the viewer-safe state of every cell. The result shares no
// memory with the board.
func (b *Board) Snapshot() Snapshot {
	views := make([][]CellView, b.rows)
	for row := range b.cells {
		views[row] = make([]CellView, b.cols)
		for col, cell := range b.cells[row] {
			views[row][col] = viewOf(cell)
		}
	}

	return Snapshot{
		Rows:           b.rows,
		Cols:           b.cols,
		Cells:          views,
		Finished:       b.finished,
		Won:            b.won,
		State:          b.State(),
		MinesRemaining: b.mines - b.flagged,
	}
}

func viewOf(cell Cell) CellView {
	switch {
	case cell.Revealed:
		return CellView{State: Revealed, Mine: cell.Mine, AdjacentMines: cell.AdjacentMines}
	case cell.Flagged:
		return CellView{State: Flagged}
	default:
		return CellView{State: Hidden}
	}
}
