package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Vec is a grid coordinate or a direction step (X = column, Y = row)
type Vec struct {
	X, Y int
}

// NoMove is returned when a player has nothing to choose from
var NoMove = Vec{X: -1, Y: -1}

// The eight unit directions. North is towards row 0.
var (
	North     = Vec{X: 0, Y: -1}
	NorthEast = Vec{X: 1, Y: -1}
	East      = Vec{X: 1, Y: 0}
	SouthEast = Vec{X: 1, Y: 1}
	South     = Vec{X: 0, Y: 1}
	SouthWest = Vec{X: -1, Y: 1}
	West      = Vec{X: -1, Y: 0}
	NorthWest = Vec{X: -1, Y: -1}
)

// Directions lists every direction a capture can run in
var Directions = [8]Vec{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Add returns the component-wise sum of two vectors
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul scales the vector by k
func (v Vec) Mul(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// String formats the vector in board notation ("a1" is the top-left cell).
// Coordinates that have no letter fall back to "(x,y)".
func (v Vec) String() string {
	if v.X < 0 || v.X >= 26 || v.Y < 0 {
		return fmt.Sprintf("(%d,%d)", v.X, v.Y)
	}
	return string(rune('a'+v.X)) + strconv.Itoa(v.Y+1)
}

// ParseVec parses board notation such as "d3" or "F5"
func ParseVec(s string) (Vec, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoMove, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	col := s[0]
	if col < 'a' || col > 'z' {
		return NoMove, fmt.Errorf("%w: %q: column must be a letter", ErrBadCoordinate, s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return NoMove, fmt.Errorf("%w: %q: row must be a positive number", ErrBadCoordinate, s)
	}

	return Vec{X: int(col - 'a'), Y: row - 1}, nil
}
