// Package game runs a Reversi match between two players.
//
// A Game owns the board and asks each side for a move in turn. Players only
// ever see a copy of the position, so a misbehaving player cannot corrupt it.
//
// # Basic Usage
//
//	b := board.MustNew(8, 8)
//	g := game.New(b, player.NewSearch(4, logger), player.NewRandom(rng), logger)
//	result, err := g.Run(ctx)
//
// # Turn Order
//
// Black moves first. A side without a legal move passes and play returns to
// the opponent. The game ends when neither side can move, which covers a
// full board as well as positions where one colour has been wiped out.
//
// Illegal answers are retried up to the configured limit (see
// WithMaxRetries) before Run gives up with ErrTooManyRetries.
package game
