package player

import (
	"fmt"
	"io"

	"github.com/lox/reversi/internal/board"
)

// Picker asks a person for a position
type Picker interface {
	Pick(b *board.Board, c board.Color) (board.Vec, error)
}

// Human forwards decisions to an interactive Picker and prints announcements
type Human struct {
	picker Picker
	out    io.Writer
}

// NewHuman creates a human player. Announcements are written to out.
func NewHuman(picker Picker, out io.Writer) *Human {
	if out == nil {
		out = io.Discard
	}
	return &Human{picker: picker, out: out}
}

// Tell prints an announcement
func (h *Human) Tell(msg string) {
	fmt.Fprintln(h.out, msg)
}

// TellColor tells the person which side they play
func (h *Human) TellColor(c board.Color) {
	fmt.Fprintf(h.out, "You play %s.\n", c.Title())
}

// Decide asks the picker for a position. Positions the picker returns are
// re-checked here since the game only retries a limited number of times.
func (h *Human) Decide(b *board.Board, c board.Color) (board.Vec, error) {
	if !b.HasAnyLegalMove(c) {
		return board.NoMove, ErrNoLegalMove
	}

	for {
		p, err := h.picker.Pick(b, c)
		if err != nil {
			return board.NoMove, fmt.Errorf("pick move: %w", err)
		}
		if b.IsLegal(c, p) {
			return p, nil
		}
		fmt.Fprintf(h.out, "%s is not a legal move.\n", p)
	}
}
