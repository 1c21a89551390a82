package player

import (
	rand "math/rand/v2"

	"github.com/lox/reversi/internal/board"
)

// Random picks uniformly among the legal moves
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player drawing from rng
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Decide returns a uniformly chosen legal move for c
func (r *Random) Decide(b *board.Board, c board.Color) (board.Vec, error) {
	moves := b.LegalMoves(c)
	if len(moves) == 0 {
		return board.NoMove, ErrNoLegalMove
	}
	return moves[r.rng.IntN(len(moves))], nil
}
