package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/player"
)

// DefaultMaxRetries is how many illegal answers a player may give per turn
const DefaultMaxRetries = 3

// ErrTooManyRetries is returned when a player keeps answering with illegal moves
var ErrTooManyRetries = errors.New("too many illegal moves")

// Move records one turn. Pass is set when the side had no legal move.
type Move struct {
	Color   board.Color
	Pos     board.Vec
	Pass    bool
	Flipped int
}

func (m Move) String() string {
	if m.Pass {
		return fmt.Sprintf("%s passes", m.Color)
	}
	return fmt.Sprintf("%s %s (+%d)", m.Color, m.Pos, m.Flipped)
}

// Result contains the outcome of a finished game
type Result struct {
	ID     string
	Black  int
	White  int
	Winner board.Cell // EmptyCell on a draw
	Moves  []Move
	Passes int
}

// Margin returns the disc differential from Black's point of view
func (r *Result) Margin() int {
	return r.Black - r.White
}

// Draw reports whether both sides finished with the same number of discs
func (r *Result) Draw() bool {
	return r.Winner == board.EmptyCell
}

// Observer is called after every placement or pass with the current board
type Observer func(b *board.Board, m Move)

// Option configures a Game
type Option func(*Game)

// WithObserver registers an observer
func WithObserver(o Observer) Option {
	return func(g *Game) {
		if o != nil {
			g.observers = append(g.observers, o)
		}
	}
}

// WithMaxRetries sets how many times a player is re-asked after an illegal move
func WithMaxRetries(n int) Option {
	return func(g *Game) {
		if n >= 0 {
			g.maxRetries = n
		}
	}
}

// WithID sets the identifier reported in the Result
func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// Game alternates two players on a board until neither can move
type Game struct {
	board      *board.Board
	players    [2]player.Player
	logger     *log.Logger
	observers  []Observer
	maxRetries int
	id         string
}

// New creates a game on b. Black moves first.
func New(b *board.Board, black, white player.Player, logger *log.Logger, opts ...Option) *Game {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	g := &Game{
		board:      b,
		players:    [2]player.Player{black, white},
		logger:     logger.WithPrefix("game"),
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Board returns a copy of the current position
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

func (g *Game) player(c board.Color) player.Player {
	return g.players[c]
}

func (g *Game) broadcast(msg string) {
	for _, p := range g.players {
		if t, ok := p.(player.Teller); ok {
			t.Tell(msg)
		}
	}
}

// Run plays the game to completion. It stops early when ctx is done or a
// player fails to produce a legal move.
func (g *Game) Run(ctx context.Context) (*Result, error) {
	result := &Result{ID: g.id}

	for _, c := range []board.Color{board.Black, board.White} {
		if t, ok := g.player(c).(player.ColorTeller); ok {
			t.TellColor(c)
		}
	}
	g.broadcast("Game started!")
	g.logger.Debug("Starting game", "id", g.id, "width", g.board.Width(), "height", g.board.Height())

	turn := board.Black
	for !g.board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !g.board.HasAnyLegalMove(turn) {
			m := Move{Color: turn, Pos: board.NoMove, Pass: true}
			result.Moves = append(result.Moves, m)
			result.Passes++
			g.logger.Debug("Pass", "color", turn)
			g.broadcast(fmt.Sprintf("%s has no legal move and passes.", turn.Title()))
			g.notify(m)
			turn = turn.Opponent()
			continue
		}

		m, err := g.play(ctx, turn)
		if err != nil {
			return nil, err
		}
		result.Moves = append(result.Moves, m)
		g.notify(m)
		turn = turn.Opponent()
	}

	result.Black = g.board.Count(board.Black)
	result.White = g.board.Count(board.White)
	result.Winner = g.board.Winner()

	g.broadcast("Game over")
	g.broadcast(outcome(result))
	g.logger.Debug("Game finished", "id", g.id, "black", result.Black, "white", result.White, "winner", result.Winner)

	return result, nil
}

// play asks the side to move for a position and applies it
func (g *Game) play(ctx context.Context, c board.Color) (Move, error) {
	p := g.player(c)

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		pos, err := p.Decide(g.board.Clone(), c)
		if err != nil {
			return Move{}, fmt.Errorf("%s player: %w", c, err)
		}
		if err := ctx.Err(); err != nil {
			return Move{}, err
		}

		before := g.board.Count(c)
		err = g.board.Place(c, pos)
		if err == nil {
			flipped := g.board.Count(c) - before - 1
			g.logger.Debug("Move", "color", c, "pos", pos, "flipped", flipped)
			return Move{Color: c, Pos: pos, Flipped: flipped}, nil
		}
		if !errors.Is(err, board.ErrIllegalMove) && !errors.Is(err, board.ErrOutOfBounds) {
			return Move{}, err
		}

		lastErr = err
		g.logger.Warn("Illegal move", "color", c, "pos", pos, "attempt", attempt+1)
		if t, ok := p.(player.Teller); ok {
			t.Tell(fmt.Sprintf("%s is not a legal move, try again.", pos))
		}
	}

	return Move{}, fmt.Errorf("%w: %w", ErrTooManyRetries, lastErr)
}

func (g *Game) notify(m Move) {
	if len(g.observers) == 0 {
		return
	}
	snapshot := g.board.Clone()
	for _, o := range g.observers {
		o(snapshot, m)
	}
}

func outcome(r *Result) string {
	if r.Draw() {
		return fmt.Sprintf("Draw, %d to %d.", r.Black, r.White)
	}
	winner, _ := r.Winner.Color()
	return fmt.Sprintf("%s wins %d to %d.", winner.Title(), max(r.Black, r.White), min(r.Black, r.White))
}
