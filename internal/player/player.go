// Package player defines the capability every Reversi participant provides
// and the built-in variants: search-based, uniform random and human.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/reversi/internal/board"
)

// ErrNoLegalMove is returned when a player is asked to move without any legal option
var ErrNoLegalMove = errors.New("no legal move")

// Player chooses a position for color c on a snapshot of the board.
// The board passed in is a copy; players may inspect it freely.
type Player interface {
	Decide(b *board.Board, c board.Color) (board.Vec, error)
}

// Teller is implemented by players that want game announcements
type Teller interface {
	Tell(msg string)
}

// ColorTeller is implemented by players that want to know their side before the first move
type ColorTeller interface {
	TellColor(c board.Color)
}

// Kind names a built-in player variant
type Kind string

const (
	KindHuman  Kind = "human"
	KindRandom Kind = "random"
	KindSearch Kind = "search"
)

// Kinds lists every built-in variant
var Kinds = []Kind{KindHuman, KindRandom, KindSearch}

// ParseKind parses a player kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindHuman, KindRandom, KindSearch:
		return k, nil
	case "minimax", "ai":
		return KindSearch, nil
	case "rand":
		return KindRandom, nil
	default:
		return "", fmt.Errorf("unknown player kind %q (want human, random or search)", s)
	}
}
