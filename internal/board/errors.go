package board

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned when the target cell is occupied or the move captures nothing
	ErrIllegalMove = errors.New("illegal move")
	// ErrOutOfBounds is returned when the position lies outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidSize is returned when a board is too small to hold the starting cross
	ErrInvalidSize = errors.New("invalid board size")
	// ErrBadCoordinate is returned when board notation cannot be parsed
	ErrBadCoordinate = errors.New("bad coordinate")
)

// MoveError describes a rejected placement
type MoveError struct {
	Color Color
	Pos   Vec
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s at %s: %v", e.Color, e.Pos, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
