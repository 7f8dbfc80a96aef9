package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLayout is returned for a layout with no rows or no columns.
	ErrEmptyLayout = errors.New("layout has no cells")
	// ErrRaggedLayout is returned when layout rows differ in length.
	ErrRaggedLayout = errors.New("layout rows differ in length")
	// ErrInvalidCoordinate matches every *CoordinateError.
	ErrInvalidCoordinate = errors.New("coordinate outside the board")
)

// CoordinateError is the panic value for operations addressed outside the
// board.
type CoordinateError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside %dx%d board", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// LayoutError reports where a layout stopped making sense. Line and Column
// are 1-based; Column is 0 when the whole row is at fault.
type LayoutError struct {
	Line   int
	Column int
	Err    error
}

func (e *LayoutError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("layout line %d column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("layout line %d: %v", e.Line, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}
