package statistics

import (
	"math"
	"testing"

	"github.com/lox/reversi/internal/board"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Score() != 0 {
		t.Errorf("Expected score of 0 for empty stats, got %f", stats.Score())
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected empty stats to fail validation")
	}
}

func TestStatistics_SingleGame(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 12345, AColor: board.White, ADiscs: 40, BDiscs: 24, Moves: 60})

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.Mean() != 16 {
		t.Errorf("Expected mean of 16, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Wins != 1 || stats.ByColor[board.White].Wins != 1 {
		t.Errorf("Expected one win as White, got %d (white %d)", stats.Wins, stats.ByColor[board.White].Wins)
	}
	if stats.AverageMoves() != 60 {
		t.Errorf("Expected 60 moves per game, got %f", stats.AverageMoves())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := &Statistics{}

	results := []GameResult{
		{AColor: board.Black, ADiscs: 33, BDiscs: 31},
		{AColor: board.White, ADiscs: 20, BDiscs: 44},
		{AColor: board.Black, ADiscs: 32, BDiscs: 32},
		{AColor: board.White, ADiscs: 13, BDiscs: 0, Passes: 1},
		{AColor: board.Black, ADiscs: 30, BDiscs: 34},
	}
	for _, r := range results {
		stats.Add(r)
	}

	// margins: 2, -24, 0, 13, -4
	expectedMean := (2.0 - 24.0 + 0.0 + 13.0 - 4.0) / 5.0
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0, got %f", stats.Median())
	}
	if stats.Wins != 2 || stats.Losses != 2 || stats.Draws != 1 {
		t.Errorf("Expected 2/2/1, got %d/%d/%d", stats.Wins, stats.Losses, stats.Draws)
	}
	if stats.Shutouts != 1 {
		t.Errorf("Expected 1 shutout, got %d", stats.Shutouts)
	}
	if stats.TotalPasses != 1 {
		t.Errorf("Expected 1 pass, got %d", stats.TotalPasses)
	}
	if math.Abs(stats.Score()-0.5) > 1e-9 {
		t.Errorf("Expected score of 0.5, got %f", stats.Score())
	}

	black := stats.ByColor[board.Black]
	if black.Games != 3 || black.Wins != 1 || black.Draws != 1 {
		t.Errorf("Unexpected black split: %+v", black)
	}
	if math.Abs(black.Mean()-(-2.0/3.0)) > 1e-9 {
		t.Errorf("Expected black mean of -0.667, got %f", black.Mean())
	}
	white := stats.ByColor[board.White]
	if white.Games != 2 || math.Abs(white.Mean()-(-5.5)) > 1e-9 {
		t.Errorf("Unexpected white split: %+v", white)
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Variance(t *testing.T) {
	stats := &Statistics{}

	// Margins [1, 3, 5] have sample variance 4
	for _, m := range []int{1, 3, 5} {
		stats.Add(GameResult{ADiscs: 10 + m, BDiscs: 10})
	}

	if math.Abs(stats.Variance()-4.0) > 1e-9 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-2.0) > 1e-9 {
		t.Errorf("Expected stddev of 2, got %f", stats.StdDev())
	}
	if math.Abs(stats.StdError()-2.0/math.Sqrt(3)) > 1e-9 {
		t.Errorf("Expected stderr of %f, got %f", 2.0/math.Sqrt(3), stats.StdError())
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(GameResult{ADiscs: i, BDiscs: 0})
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()

	if math.Abs((low+high)/2-mean) > 1e-9 {
		t.Errorf("Confidence interval not symmetric around mean. Low: %f, High: %f, Mean: %f", low, high, mean)
	}
	if high-low <= 0 {
		t.Errorf("Confidence interval should be positive width, got %f", high-low)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(GameResult{ADiscs: i})
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
	}

	for _, test := range tests {
		result := stats.Percentile(test.percentile)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("Percentile %.2f: expected %f, got %f", test.percentile, test.expected, result)
		}
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{ADiscs: 3, BDiscs: 1})
	stats.Wins++

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for inconsistent counters")
	}
}
