package models

// Cell is one grid position. Mine and AdjacentMines are fixed once the board
// is built; Revealed and Flagged only change through Board operations.
type Cell struct {
	Mine          bool
	AdjacentMines int
	Revealed      bool
	Flagged       bool
}

// Board owns the grid and the counters derived from it.
type Board struct {
	cells [][]Cell
	rows  int
	cols  int

	mines    int
	total    int
	revealed int
	flagged  int

	finished bool
	won      bool
}

// NewBoard builds a board from a rectangular mine layout. The layout is
// copied; later changes to it do not affect the board.
func NewBoard(layout [][]bool) (*Board, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	rows, cols := len(layout), len(layout[0])
	cells := make([][]Cell, rows)
	for row := range layout {
		if len(layout[row]) != cols {
			return nil, &LayoutError{Line: row + 1, Err: ErrRaggedLayout}
		}
		cells[row] = make([]Cell, cols)
		for col, mine := range layout[row] {
			cells[row][col].Mine = mine
		}
	}

	b := &Board{
		cells: cells,
		rows:  rows,
		cols:  cols,
		total: rows * cols,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b.cells[row][col].AdjacentMines = b.countNearbyMines(row, col)
			if b.cells[row][col].Mine {
				b.mines++
			}
		}
	}

	return b, nil
}

// InBounds reports whether row and col address a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// countNearbyMines counts mines among the up-to-8 neighbours of a cell.
func (b *Board) countNearbyMines(row, col int) int {
	nearby := 0
	b.forEachNeighbor(row, col, func(r, c int) {
		if b.cells[r][c].Mine {
			nearby++
		}
	})
	return nearby
}

func (b *Board) forEachNeighbor(row, col int, fn func(r, c int)) {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			if r, c := row+deltaRow, col+deltaCol; b.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

func (b *Board) mustBeInBounds(row, col int) {
	if !b.InBounds(row, col) {
		panic(&CoordinateError{Row: row, Col: col, Rows: b.rows, Cols: b.cols})
	}
}

// Reveal opens the cell at row, col. Revealed and flagged cells are left
// alone. Opening a mine ends the game as lost; opening a cell with no
// adjacent mines opens the surrounding region until it is bordered by
// numbered cells. Out-of-range coordinates panic with a *CoordinateError.
func (b *Board) Reveal(row, col int) {
	b.mustBeInBounds(row, col)

	cell := &b.cells[row][col]
	if cell.Revealed || cell.Flagged {
		return
	}

	cell.Revealed = true
	b.revealed++

	if cell.Mine {
		if !b.finished {
			b.finished = true
			b.won = false
		}
		return
	}

	if cell.AdjacentMines == 0 {
		b.cascade(row, col)
	}

	b.checkWin()
}

// cascade opens the zero-count region around an already revealed cell. Each
// coordinate enters the stack at most once.
func (b *Board) cascade(row, col int) {
	queued := make([]bool, b.total)
	queued[row*b.cols+col] = true
	stack := [][2]int{{row, col}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.forEachNeighbor(top[0], top[1], func(r, c int) {
			idx := r*b.cols + c
			next := &b.cells[r][c]
			if queued[idx] || next.Revealed || next.Flagged {
				return
			}
			queued[idx] = true

			// A zero-count cell never borders a mine, so the cascade cannot
			// open one.
			next.Revealed = true
			b.revealed++
			if next.AdjacentMines == 0 {
				stack = append(stack, [2]int{r, c})
			}
		})
	}
}

// ToggleFlag flags an unrevealed cell or clears an existing flag. Revealed
// cells cannot be flagged. Out-of-range coordinates panic with a
// *CoordinateError.
func (b *Board) ToggleFlag(row, col int) {
	b.mustBeInBounds(row, col)

	cell := &b.cells[row][col]
	switch {
	case cell.Flagged:
		cell.Flagged = false
		b.flagged--
	case !cell.Revealed:
		cell.Flagged = true
		b.flagged++
	}

	b.checkWin()
}

// checkWin compares counters only; it does not check which cells carry the
// flags.
func (b *Board) checkWin() {
	if b.finished {
		return
	}
	if b.flagged == b.mines && b.revealed == b.total-b.mines {
		b.finished = true
		b.won = true
	}
}

// Rows is the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols is the number of grid columns.
func (b *Board) Cols() int { return b.cols }

// CellCount is Rows*Cols.
func (b *Board) CellCount() int { return b.total }

// MineCount is the number of mines in the layout.
func (b *Board) MineCount() int { return b.mines }

// RevealedCount is the number of open cells, including an opened mine.
func (b *Board) RevealedCount() int { return b.revealed }

// FlaggedCount is the number of flags currently placed.
func (b *Board) FlaggedCount() int { return b.flagged }

// Finished reports whether the game has been won or lost. It never goes back
// to false.
func (b *Board) Finished() bool { return b.finished }

// Won reports whether the game ended in a win. It implies Finished.
func (b *Board) Won() bool { return b.won }

// State folds the finished and won flags into a single value.
func (b *Board) State() State {
	switch {
	case !b.finished:
		return InProgress
	case b.won:
		return Won
	default:
		return Lost
	}
}
