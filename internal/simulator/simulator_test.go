package simulator

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func randomFactory(t *testing.T) Factory {
	t.Helper()
	f, err := FactoryFor(player.KindRandom, 0, quietLogger())
	require.NoError(t, err)
	return f
}

func TestRun(t *testing.T) {
	sim := New(Config{
		Games:   6,
		Width:   6,
		Height:  6,
		Seed:    12345,
		Workers: 3,
		Timeout: time.Minute,
		A:       randomFactory(t),
		B:       randomFactory(t),
		Logger:  quietLogger(),
		Clock:   quartz.NewMock(t),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Games)
	assert.Equal(t, 6, stats.Wins+stats.Losses+stats.Draws)
	assert.Equal(t, 3, stats.ByColor[board.Black].Games)
	assert.Equal(t, 3, stats.ByColor[board.White].Games)
	assert.Len(t, stats.Values, 6)
	assert.Greater(t, stats.AverageMoves(), 0.0)
	assert.LessOrEqual(t, stats.AverageMoves(), 32.0)
}

func TestRunIsReproducible(t *testing.T) {
	run := func(workers int) []float64 {
		stats, err := New(Config{
			Games:   8,
			Width:   6,
			Height:  6,
			Seed:    99,
			Workers: workers,
			A:       randomFactory(t),
			B:       randomFactory(t),
		}).Run(context.Background())
		require.NoError(t, err)
		return stats.Values
	}

	assert.Equal(t, run(1), run(4), "results do not depend on scheduling")
}

func TestRunSearchAgainstRandom(t *testing.T) {
	searchFactory, err := FactoryFor(player.KindSearch, 2, quietLogger())
	require.NoError(t, err)

	stats, err := New(Config{
		Games:  2,
		Width:  4,
		Height: 4,
		Seed:   7,
		A:      searchFactory,
		B:      randomFactory(t),
		AName:  "search",
		BName:  "random",
	}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Games)
}

// stallingPlayer moves the mock clock forward while "thinking"
type stallingPlayer struct {
	ctx   context.Context
	clock *quartz.Mock
	think time.Duration
}

func (p *stallingPlayer) Decide(b *board.Board, c board.Color) (board.Vec, error) {
	p.clock.Advance(p.think).MustWait(p.ctx)
	return b.LegalMoves(c)[0], nil
}

func TestRunTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	stalling := func(int64) player.Player {
		return &stallingPlayer{ctx: ctx, clock: mClock, think: 5 * time.Second}
	}

	_, err := New(Config{
		Games:   1,
		Timeout: 5 * time.Second,
		A:       stalling,
		B:       randomFactory(t),
		Clock:   mClock,
		Logger:  quietLogger(),
	}).Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGameTimeout)
	assert.Contains(t, err.Error(), "game 1")
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Games: 0, A: randomFactory(t), B: randomFactory(t)}).Run(context.Background())
	assert.Error(t, err)

	_, err = New(Config{Games: 1}).Run(context.Background())
	assert.Error(t, err)

	_, err = New(Config{Games: 1, Width: 1, A: randomFactory(t), B: randomFactory(t)}).Run(context.Background())
	assert.ErrorIs(t, err, board.ErrInvalidSize)
}

func TestFactoryFor(t *testing.T) {
	_, err := FactoryFor(player.KindHuman, 0, quietLogger())
	assert.Error(t, err)

	f, err := FactoryFor(player.KindSearch, 3, quietLogger())
	require.NoError(t, err)
	p, ok := f(1).(*player.Search)
	require.True(t, ok)
	assert.Equal(t, 3, p.Depth())
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	stats, err := New(Config{
		Games:    4,
		Width:    4,
		Height:   4,
		Seed:     1,
		Workers:  2,
		A:        randomFactory(t),
		B:        randomFactory(t),
		AName:    "alpha",
		BName:    "beta",
		Reporter: reporter,
	}).Run(context.Background())
	require.NoError(t, err)
	reporter.Summary(stats, "alpha", "beta")

	var events []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var event map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.Len(t, events, 5)

	for _, event := range events[:4] {
		assert.Equal(t, "game", event["message"])
		assert.Contains(t, []any{"alpha", "beta", "draw"}, event["winner"])
		assert.Contains(t, []any{"alpha", "beta"}, event["black"])
		assert.NotEmpty(t, event["id"])
	}

	summary := events[4]
	assert.Equal(t, "summary", summary["message"])
	assert.Equal(t, float64(4), summary["games"])
}

func TestPrintSummary(t *testing.T) {
	stats, err := New(Config{
		Games:  2,
		Width:  4,
		Height: 4,
		A:      randomFactory(t),
		B:      randomFactory(t),
	}).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, stats, "a", "b")

	out := buf.String()
	assert.Contains(t, out, "=== FINAL RESULTS: a vs b ===")
	assert.Contains(t, out, "Games played: 2")
	assert.Contains(t, out, "a as Black: 1 games")
	assert.Contains(t, out, "a as White: 1 games")
}
