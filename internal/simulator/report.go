package simulator

import (
	"fmt"
	"io"

	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/statistics"
	"github.com/rs/zerolog"
)

// Reporter writes one JSON event per finished game and a final summary
type Reporter struct {
	logger zerolog.Logger
}

// NewReporter creates a reporter writing newline-delimited JSON to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		logger: zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Logger(),
	}
}

// NewReporterWithLogger wraps an existing zerolog logger
func NewReporterWithLogger(logger zerolog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Game records a single game result
func (r *Reporter) Game(result statistics.GameResult, aName, bName string) {
	winner := "draw"
	switch {
	case result.Margin() > 0:
		winner = aName
	case result.Margin() < 0:
		winner = bName
	}

	black, white := aName, bName
	if result.AColor == board.White {
		black, white = bName, aName
	}

	r.logger.Info().
		Str("id", result.ID).
		Int64("seed", result.Seed).
		Str("black", black).
		Str("white", white).
		Int("a_discs", result.ADiscs).
		Int("b_discs", result.BDiscs).
		Int("margin", result.Margin()).
		Int("moves", result.Moves).
		Int("passes", result.Passes).
		Str("winner", winner).
		Msg("game")
}

// Summary records the aggregate statistics
func (r *Reporter) Summary(stats *statistics.Statistics, aName, bName string) {
	low, high := stats.ConfidenceInterval95()
	r.logger.Info().
		Str("a", aName).
		Str("b", bName).
		Int("games", stats.Games).
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("draws", stats.Draws).
		Float64("score", stats.Score()).
		Float64("mean_margin", stats.Mean()).
		Float64("stddev", stats.StdDev()).
		Float64("ci95_low", low).
		Float64("ci95_high", high).
		Msg("summary")
}

// PrintSummary writes a human readable summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, aName, bName string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS: %s vs %s ===\n", aName, bName)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "Record (%s): %d wins, %d losses, %d draws (score %.1f%%)\n",
		aName, stats.Wins, stats.Losses, stats.Draws, stats.Score()*100)

	fmt.Fprintf(w, "\n=== DISC DIFFERENTIAL ===\n")
	fmt.Fprintf(w, "Mean: %.2f discs/game\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.2f discs/game\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.2f\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.2f\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== BY COLOUR ===\n")
	for _, c := range []board.Color{board.Black, board.White} {
		cs := stats.ByColor[c]
		if cs.Games == 0 {
			continue
		}
		fmt.Fprintf(w, "%s as %s: %d games, %d wins, %d draws, %.2f discs/game\n",
			aName, c.Title(), cs.Games, cs.Wins, cs.Draws, cs.Mean())
	}

	fmt.Fprintf(w, "\nMoves per game: %.1f, passes: %d, shutouts: %d\n",
		stats.AverageMoves(), stats.TotalPasses, stats.Shutouts)
}
