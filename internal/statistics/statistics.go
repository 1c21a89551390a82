package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/reversi/internal/board"
)

// GameResult is the outcome of one game seen from player A
type GameResult struct {
	ID     string
	Seed   int64       // RNG seed for this game (for replay)
	AColor board.Color // side player A was seated on
	ADiscs int
	BDiscs int
	Moves  int
	Passes int
}

// Margin returns A's disc differential
func (r GameResult) Margin() int {
	return r.ADiscs - r.BDiscs
}

// ColorStats tracks results for the games A played on one colour
type ColorStats struct {
	Games      int
	Wins       int
	Draws      int
	SumMargin  float64
	SumMargin2 float64
}

// Mean returns the mean margin for this colour
func (c ColorStats) Mean() float64 {
	if c.Games == 0 {
		return 0
	}
	return c.SumMargin / float64(c.Games)
}

// Statistics aggregates game results from player A's point of view
type Statistics struct {
	Games      int
	Wins       int
	Losses     int
	Draws      int
	SumMargin  float64
	SumMargin2 float64   // Sum of squares for variance calculation
	Values     []float64 // Every margin, for median/percentile calculation

	ByColor [2]ColorStats // indexed by board.Color

	TotalMoves  int
	TotalPasses int
	Shutouts    int // games where B finished with no discs
}

// Add incorporates a game result
func (s *Statistics) Add(result GameResult) {
	margin := float64(result.Margin())

	s.Games++
	s.SumMargin += margin
	s.SumMargin2 += margin * margin
	s.Values = append(s.Values, margin)
	s.TotalMoves += result.Moves
	s.TotalPasses += result.Passes

	cs := &s.ByColor[result.AColor]
	cs.Games++
	cs.SumMargin += margin
	cs.SumMargin2 += margin * margin

	switch {
	case margin > 0:
		s.Wins++
		cs.Wins++
		if result.BDiscs == 0 {
			s.Shutouts++
		}
	case margin < 0:
		s.Losses++
	default:
		s.Draws++
		cs.Draws++
	}
}

// Mean returns the mean disc differential per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMargin / float64(s.Games)
}

// Variance returns the sample variance of the margins
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumMargin2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the margins
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Score returns A's match score: one point per win, half per draw, divided by games
func (s *Statistics) Score() float64 {
	if s.Games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games)
}

// Median returns the median margin
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the margin at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// AverageMoves returns the mean number of placements per game
func (s *Statistics) AverageMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if s.Wins+s.Losses+s.Draws != s.Games {
		return fmt.Errorf("wins (%d) + losses (%d) + draws (%d) does not match games (%d)",
			s.Wins, s.Losses, s.Draws, s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	if s.ByColor[board.Black].Games+s.ByColor[board.White].Games != s.Games {
		return fmt.Errorf("colour games total (%d) does not match total games (%d)",
			s.ByColor[board.Black].Games+s.ByColor[board.White].Games, s.Games)
	}

	colorSum := s.ByColor[board.Black].SumMargin + s.ByColor[board.White].SumMargin
	if math.Abs(colorSum-s.SumMargin) > 1e-6 {
		return fmt.Errorf("margin mismatch: total=%.6f, by colour=%.6f", s.SumMargin, colorSum)
	}

	return nil
}
