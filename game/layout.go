package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/dimaq12/minefield/models"
)

// DefaultLayout is the 5x4 practice board with mines at (2,1) and (4,3).
func DefaultLayout() [][]bool {
	return [][]bool{
		{false, false, false, false},
		{false, false, false, false},
		{false, true, false, false},
		{false, false, false, false},
		{false, false, false, true},
	}
}

// BoardDimensions maps a level to a square board size and mine count.
// Unknown levels get the level 1 board.
func BoardDimensions(level int) (boardSize, mineQuantity int) {
	switch level {
	case 1:
		return 10, 10
	case 2:
		return 15, 40
	case 3:
		return 20, 80
	case 4:
		return 25, 125
	case 5:
		return 30, 180
	default:
		return 10, 10
	}
}

// LevelLayout builds the random board for a level.
func LevelLayout(level int, rnd *rand.Rand) [][]bool {
	size, mines := BoardDimensions(level)
	return RandomLayout(size, size, mines, rnd)
}

// RandomLayout places mines on the first N cells of a Fisher-Yates shuffle
// of every coordinate. N is clipped to the number of cells.
func RandomLayout(rows, cols, mines int, rnd *rand.Rand) [][]bool {
	layout := make([][]bool, rows)
	for i := range layout {
		layout[i] = make([]bool, cols)
	}

	coords := make([][2]int, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			coords[row*cols+col] = [2]int{row, col}
		}
	}

	for i := len(coords) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}

	for i := 0; i < mines && i < len(coords); i++ {
		layout[coords[i][0]][coords[i][1]] = true
	}
	return layout
}

// ParseLayout reads one board row per line. '*', 'x', 'X' and 'M' are mines;
// '.', '_', '0' and '-' are empty. Blank lines and lines starting with '#'
// are skipped.
func ParseLayout(r io.Reader) ([][]bool, error) {
	var layout [][]bool
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		row := make([]bool, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			switch ch {
			case '*', 'x', 'X', 'M':
				row = append(row, true)
			case '.', '_', '0', '-':
				row = append(row, false)
			default:
				return nil, &models.LayoutError{Line: line, Column: col, Err: fmt.Errorf("unexpected %q", ch)}
			}
		}
		if len(layout) > 0 && len(row) != len(layout[0]) {
			return nil, &models.LayoutError{Line: line, Err: models.ErrRaggedLayout}
		}
		layout = append(layout, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if len(layout) == 0 {
		return nil, models.ErrEmptyLayout
	}
	return layout, nil
}
