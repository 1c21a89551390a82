package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/reversi/cmd/reversi/shared"
	"github.com/lox/reversi/internal/config"
	"github.com/lox/reversi/internal/player"
	"github.com/lox/reversi/internal/randutil"
	"github.com/lox/reversi/internal/simulator"
)

type SimulateCmd struct {
	Games   int           `short:"n" default:"100" help:"Number of games to play"`
	A       string        `default:"search" help:"Player A (random, search)"`
	B       string        `default:"random" help:"Player B (random, search)"`
	DepthA  int           `name:"depth-a" default:"4" help:"Search depth for player A"`
	DepthB  int           `name:"depth-b" default:"4" help:"Search depth for player B"`
	Size    string        `short:"s" default:"8x8" help:"Board size as WxH"`
	Seed    int64         `help:"Base seed (0 = time based)"`
	Workers int           `short:"w" help:"Concurrent games (0 = number of CPUs)"`
	Timeout time.Duration `default:"1m" help:"Abort if a single game takes longer than this"`
	Config  string        `short:"c" type:"path" help:"HCL match file for search parameters"`
	JSON    bool          `help:"Write one JSON line per game to stdout instead of the summary"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	return c.run(globals, os.Stdout)
}

func (c *SimulateCmd) run(globals *Globals, out io.Writer) error {
	width, height, err := parseSize(c.Size)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if c.Config != "" {
		if cfg, err = config.Load(c.Config); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := shared.SetupCharmLogger(os.Stderr, globals.Debug)

	a, err := c.factory(c.A, c.DepthA, cfg, globals)
	if err != nil {
		return fmt.Errorf("player A: %w", err)
	}
	b, err := c.factory(c.B, c.DepthB, cfg, globals)
	if err != nil {
		return fmt.Errorf("player B: %w", err)
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sc := simulator.Config{
		Games:   c.Games,
		Width:   width,
		Height:  height,
		Seed:    randutil.Seed(c.Seed),
		Workers: workers,
		Timeout: c.Timeout,
		A:       a,
		B:       b,
		AName:   fmt.Sprintf("%s(a)", c.A),
		BName:   fmt.Sprintf("%s(b)", c.B),
		Logger:  logger,
		Clock:   quartz.NewReal(),
	}

	var reporter *simulator.Reporter
	if c.JSON {
		reporter = simulator.NewReporterWithLogger(shared.SetupStructuredLogger(out, globals.Debug))
		sc.Reporter = reporter
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(shared.SetupLogger(globals.Debug))
	defer cancel()

	start := time.Now()
	stats, err := simulator.New(sc).Run(ctx)
	if err != nil {
		return err
	}

	if reporter != nil {
		reporter.Summary(stats, sc.AName, sc.BName)
		return nil
	}

	simulator.PrintSummary(out, stats, sc.AName, sc.BName)
	fmt.Fprintf(out, "Seed: %d, elapsed: %v\n", sc.Seed, time.Since(start).Round(time.Millisecond))
	return nil
}

func (c *SimulateCmd) factory(name string, depth int, cfg *config.MatchConfig, globals *Globals) (simulator.Factory, error) {
	kind, err := player.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return simulator.FactoryFor(kind, depth, shared.SetupCharmLogger(os.Stderr, globals.Debug), cfg.SearchOptions()...)
}
