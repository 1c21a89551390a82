// Package simulator plays many seeded games between two player kinds and
// aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/game"
	"github.com/lox/reversi/internal/gameid"
	"github.com/lox/reversi/internal/player"
	"github.com/lox/reversi/internal/randutil"
	"github.com/lox/reversi/internal/search"
	"github.com/lox/reversi/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrGameTimeout is returned when a single game exceeds Config.Timeout
var ErrGameTimeout = errors.New("game timed out")

// Factory creates a fresh player for one game. The seed is unique per game and side.
type Factory func(seed int64) player.Player

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Width   int
	Height  int
	Seed    int64
	Workers int
	Timeout time.Duration // per game; zero disables the watchdog

	A     Factory
	B     Factory
	AName string
	BName string

	Logger   *log.Logger
	Clock    quartz.Clock
	Reporter *Reporter
}

// Simulator runs self-play matches
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a simulator, filling in defaults for unset fields
func New(config Config) *Simulator {
	if config.Width == 0 {
		config.Width = 8
	}
	if config.Height == 0 {
		config.Height = 8
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.AName == "" {
		config.AName = "a"
	}
	if config.BName == "" {
		config.BName = "b"
	}
	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
	}
}

// Run plays every game and returns statistics from A's point of view.
// A plays Black in even-numbered games and White in odd-numbered ones.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.A == nil || s.config.B == nil {
		return nil, errors.New("both player factories are required")
	}
	if _, err := board.New(s.config.Width, s.config.Height); err != nil {
		return nil, err
	}

	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"a", s.config.AName,
		"b", s.config.BName,
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		g.Go(func() error {
			result, err := s.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, result.Seed, err)
			}
			results[i] = result
			if s.config.Reporter != nil {
				s.config.Reporter.Game(result, s.config.AName, s.config.BName)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation finished", "games", stats.Games, "wins", stats.Wins, "losses", stats.Losses, "draws", stats.Draws)
	return stats, nil
}

// playGame runs game i with timeout protection
func (s *Simulator) playGame(ctx context.Context, i int) (statistics.GameResult, error) {
	seed := randutil.Derive(s.config.Seed, i)
	result := statistics.GameResult{
		ID:     gameid.Generate(),
		Seed:   seed,
		AColor: board.Black,
	}
	if i%2 == 1 {
		result.AColor = board.White
	}

	a := s.config.A(randutil.Derive(seed, 0))
	b := s.config.B(randutil.Derive(seed, 1))
	black, white := a, b
	if result.AColor == board.White {
		black, white = b, a
	}

	gameCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if s.config.Timeout > 0 {
		timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
			cancel(ErrGameTimeout)
		}, "simulator", "game")
		defer timer.Stop()
	}

	pos, err := board.New(s.config.Width, s.config.Height)
	if err != nil {
		return result, err
	}

	res, err := game.New(pos, black, white, s.logger, game.WithID(result.ID)).Run(gameCtx)
	if err != nil {
		if errors.Is(context.Cause(gameCtx), ErrGameTimeout) {
			return result, fmt.Errorf("%w after %v", ErrGameTimeout, s.config.Timeout)
		}
		return result, err
	}

	result.ADiscs, result.BDiscs = res.Black, res.White
	if result.AColor == board.White {
		result.ADiscs, result.BDiscs = res.White, res.Black
	}
	result.Moves = len(res.Moves) - res.Passes
	result.Passes = res.Passes

	s.logger.Debug("Game finished", "game", i+1, "id", result.ID, "a", result.ADiscs, "b", result.BDiscs)
	return result, nil
}

// FactoryFor builds a factory for one of the non-interactive player kinds
func FactoryFor(kind player.Kind, depth int, logger *log.Logger, options ...search.Option) (Factory, error) {
	switch kind {
	case player.KindRandom:
		return func(seed int64) player.Player {
			return player.NewRandom(randutil.New(seed))
		}, nil
	case player.KindSearch:
		return func(int64) player.Player {
			return player.NewSearch(depth, logger, options...)
		}, nil
	default:
		return nil, fmt.Errorf("player kind %q cannot be simulated", kind)
	}
}
