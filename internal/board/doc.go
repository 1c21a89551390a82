// Package board implements the Reversi (Othello) rules on a rectangular grid.
//
// The main type is Board, which owns the grid state, enumerates legal moves
// for each side, applies moves and resolves captures.
//
// # Basic Usage
//
//	b := board.MustNew(8, 8)
//	moves := b.LegalMoves(board.Black) // d3, c4, f5, e6
//	if err := b.Place(board.Black, moves[0]); err != nil {
//	    // errors.Is(err, board.ErrIllegalMove) or board.ErrOutOfBounds
//	}
//
// A side without a legal move passes. The game is over when neither side
// can move (see Board.IsTerminal).
//
// # Copies
//
// A Board is mutated in place by Place. Code exploring hypothetical
// futures works on Clone()s so the authoritative position never changes
// underneath it. Boards are not safe for concurrent mutation.
//
// # Fixtures
//
// FromRows builds arbitrary positions for tests and tools:
//
//	b, err := board.FromRows(
//	    "wbb.",
//	    "....",
//	)
package board
