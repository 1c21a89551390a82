package board

import (
	"fmt"
	"strings"
)

// Color identifies a side. The zero value is Black, which moves first.
type Color uint8

const (
	Black Color = iota
	White
)

// Opponent returns the other side
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// Cell returns the cell state holding a disc of this color
func (c Color) Cell() Cell {
	if c == Black {
		return BlackCell
	}
	return WhiteCell
}

// String returns the lowercase name of the color
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Title returns the capitalised name used in announcements
func (c Color) Title() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// ParseColor parses "black"/"white" (or "b"/"w")
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("unknown color %q", s)
	}
}

// Cell is the content of a single grid square
type Cell uint8

const (
	EmptyCell Cell = iota
	BlackCell
	WhiteCell
)

// Color reports which side owns the cell, if any
func (c Cell) Color() (Color, bool) {
	switch c {
	case BlackCell:
		return Black, true
	case WhiteCell:
		return White, true
	default:
		return Black, false
	}
}

// String returns the single-character form used by FromRows and Board.String
func (c Cell) String() string {
	switch c {
	case BlackCell:
		return "b"
	case WhiteCell:
		return "w"
	default:
		return "."
	}
}
