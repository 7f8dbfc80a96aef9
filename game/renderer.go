package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minefield/models"
)

var countColors = [...]tcell.Color{
	tcell.ColorGray,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorWhite,
	tcell.ColorSilver,
}

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	root       *tview.Flex
	glyphs     Glyphs
}

func NewRenderer(glyphs Glyphs) *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView(),
		glyphs:     glyphs,
	}
	r.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.boardTable, 0, 1, true).
		AddItem(r.status, 1, 0, false)
	return r
}

func (r *Renderer) DrawBoard(snap models.Snapshot) {
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			r.RenderCell(snap, row, col)
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.boardTable.SetFixed(snap.Rows, snap.Cols)
	r.status.SetText(statusLine(snap))
}

func (r *Renderer) RenderCell(snap models.Snapshot, row, col int) {
	view := snap.At(row, col)

	cell := tview.NewTableCell(r.glyphs.CellText(view)).SetAlign(tview.AlignCenter)
	switch view.State {
	case models.Flagged:
		cell.SetTextColor(tcell.ColorYellow)
	case models.Revealed:
		if view.Mine {
			cell.SetTextColor(tcell.ColorRed).SetAttributes(tcell.AttrBold)
		} else {
			cell.SetTextColor(countColors[view.AdjacentMines])
		}
	}

	r.boardTable.SetCell(row, col, cell)
}

func statusLine(snap models.Snapshot) string {
	switch snap.State {
	case models.Won:
		return wonMessage
	case models.Lost:
		return lostMessage
	default:
		return fmt.Sprintf("Mines left: %d  (Enter reveal, f flag, q quit)", snap.MinesRemaining)
	}
}
