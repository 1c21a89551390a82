// Package search implements a fixed-depth heuristic minimax player.
//
// Every explored branch works on its own clone of the board, so the
// position handed to Decide is never modified and no undo logic exists.
// A Searcher holds only immutable parameters and is safe for concurrent use.
package search

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/lox/reversi/internal/board"
)

// Defaults for the heuristic and the search
const (
	DefaultDepth           = 4
	DefaultMaterialDivisor = 64.0 // cells on the standard 8x8 board, independent of the live size
	DefaultCornerGate      = 48   // corners only score while fewer discs than this are on the board
	DefaultCornerBonus     = 1.0
	DefaultDiscount        = 0.98 // weight of the position after the opponent's reply
)

// Scores returned by Evaluate outside the heuristic range
const (
	IllegalScore  = -1.0
	NoReplyScore  = 1.0
	HorizonScore  = 0.0
	unsetMaxScore = -math.MaxFloat64
)

// Params holds the tunable constants of the evaluation
type Params struct {
	Depth           int
	MaterialDivisor float64
	CornerGate      int
	CornerBonus     float64
	Discount        float64
}

// DefaultParams returns the standard parameter set
func DefaultParams() Params {
	return Params{
		Depth:           DefaultDepth,
		MaterialDivisor: DefaultMaterialDivisor,
		CornerGate:      DefaultCornerGate,
		CornerBonus:     DefaultCornerBonus,
		Discount:        DefaultDiscount,
	}
}

// Option configures a Searcher
type Option func(s *Searcher)

// WithDepth sets the default depth used by Searcher.Best
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.params.Depth = depth
		}
	}
}

// WithMaterialDivisor sets the divisor applied to the disc count
func WithMaterialDivisor(divisor float64) Option {
	return func(s *Searcher) {
		if divisor > 0 {
			s.params.MaterialDivisor = divisor
		}
	}
}

// WithCornerGate sets the disc total below which corners earn a bonus
func WithCornerGate(gate int) Option {
	return func(s *Searcher) {
		if gate > 0 {
			s.params.CornerGate = gate
		}
	}
}

// WithCornerBonus sets the bonus for each held corner
func WithCornerBonus(bonus float64) Option {
	return func(s *Searcher) {
		if bonus >= 0 {
			s.params.CornerBonus = bonus
		}
	}
}

// WithDiscount sets the weight of the position after the opponent's reply
func WithDiscount(discount float64) Option {
	return func(s *Searcher) {
		if discount > 0 {
			s.params.Discount = discount
		}
	}
}

// WithParams replaces the whole parameter set
func WithParams(p Params) Option {
	return func(s *Searcher) {
		s.params = p
	}
}

// WithLogger enables debug logging of decisions
func WithLogger(logger *log.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger.WithPrefix("search")
		}
	}
}

// Searcher chooses moves by depth-limited minimax over cloned boards
type Searcher struct {
	params Params
	logger *log.Logger
}

// New creates a Searcher with the default parameters and the given options applied
func New(options ...Option) *Searcher {
	s := &Searcher{
		params: DefaultParams(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Params returns the parameters in use
func (s *Searcher) Params() Params {
	return s.params
}

// Best chooses a move for c at the configured depth
func (s *Searcher) Best(c board.Color, b *board.Board) board.Vec {
	return s.Decide(c, b, s.params.Depth)
}

// Decide returns the legal move for c with the highest evaluation at the
// given depth. Ties go to the move listed first by LegalMoves.
//
// Callers must only ask when c has a legal move; otherwise Decide returns
// board.NoMove.
func (s *Searcher) Decide(c board.Color, b *board.Board, depth int) board.Vec {
	r := &run{params: s.params}
	move, score := r.best(c, b, depth)

	s.logger.Debug("Move decided",
		"color", c,
		"move", move,
		"score", score,
		"depth", depth,
		"nodes", r.nodes)

	return move
}

// Evaluate scores placing c at p, looking depth plies ahead
func (s *Searcher) Evaluate(c board.Color, b *board.Board, p board.Vec, depth int) float64 {
	r := &run{params: s.params}
	return r.evaluate(c, b, p, depth)
}

// Heuristic returns the static value of b for c: material share plus a
// bonus per held corner while the board is less than CornerGate discs full
func (s *Searcher) Heuristic(c board.Color, b *board.Board) float64 {
	return heuristic(s.params, c, b)
}

func heuristic(p Params, c board.Color, b *board.Board) float64 {
	own := b.Count(c)
	score := float64(own) / p.MaterialDivisor

	if own+b.Count(c.Opponent()) < p.CornerGate {
		for _, corner := range b.Corners() {
			if b.At(corner) == c.Cell() {
				score += p.CornerBonus
			}
		}
	}

	return score
}

// run carries per-decision bookkeeping
type run struct {
	params Params
	nodes  int
}

func (r *run) best(c board.Color, b *board.Board, depth int) (board.Vec, float64) {
	bestMove := board.NoMove
	bestScore := unsetMaxScore

	for _, p := range b.LegalMoves(c) {
		score := r.evaluate(c, b, p, depth)
		if score > bestScore {
			bestScore = score
			bestMove = p
		}
	}

	return bestMove, bestScore
}

func (r *run) evaluate(c board.Color, b *board.Board, p board.Vec, depth int) float64 {
	r.nodes++

	if depth <= 0 {
		return HorizonScore
	}
	if !b.IsLegal(c, p) {
		return IllegalScore
	}

	next := b.Clone()
	mustPlace(next, c, p)
	score := heuristic(r.params, c, next)

	opp := c.Opponent()
	if !next.HasAnyLegalMove(opp) {
		return NoReplyScore
	}

	reply, _ := r.best(opp, next, depth-1)
	mustPlace(next, opp, reply)

	return score - r.params.Discount*heuristic(r.params, c, next)
}

// mustPlace applies a move that was taken from LegalMoves or checked with IsLegal
func mustPlace(b *board.Board, c board.Color, p board.Vec) {
	if err := b.Place(c, p); err != nil {
		panic("search: legal move rejected: " + err.Error())
	}
}
