package player

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/search"
)

// Search plays the move chosen by a minimax Searcher
type Search struct {
	searcher *search.Searcher
	depth    int
	logger   *log.Logger
}

// NewSearch creates a search player looking depth plies ahead
func NewSearch(depth int, logger *log.Logger, options ...search.Option) *Search {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	options = append(options, search.WithLogger(logger))
	s := search.New(options...)
	if depth <= 0 {
		depth = s.Params().Depth
	}
	return &Search{
		searcher: s,
		depth:    depth,
		logger:   logger.WithPrefix("search-player"),
	}
}

// Depth returns the search depth
func (p *Search) Depth() int {
	return p.depth
}

// TellColor logs the side this player was seated on
func (p *Search) TellColor(c board.Color) {
	p.logger.Debug("Seated", "color", c, "depth", p.depth)
}

// Decide returns the highest scoring legal move for c
func (p *Search) Decide(b *board.Board, c board.Color) (board.Vec, error) {
	if !b.HasAnyLegalMove(c) {
		return board.NoMove, ErrNoLegalMove
	}
	return p.searcher.Decide(c, b, p.depth), nil
}
