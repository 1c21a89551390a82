package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/reversi/cmd/reversi/shared"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/config"
	"github.com/lox/reversi/internal/display"
	"github.com/lox/reversi/internal/game"
	"github.com/lox/reversi/internal/gameid"
	"github.com/lox/reversi/internal/player"
	"github.com/lox/reversi/internal/randutil"
	"github.com/lox/reversi/internal/tui"
)

type PlayCmd struct {
	Black  string `default:"human" help:"Black player (human, random, search)"`
	White  string `default:"search" help:"White player (human, random, search)"`
	Depth  int    `short:"d" default:"4" help:"Search depth in plies"`
	Size   string `short:"s" default:"8x8" help:"Board size as WxH"`
	Seed   int64  `help:"Seed for random players (0 = time based)"`
	Config string `short:"c" type:"path" help:"HCL match file; replaces the player and board flags"`
}

func (c *PlayCmd) matchConfig() (*config.MatchConfig, error) {
	if c.Config != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}

	width, height, err := parseSize(c.Size)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.Board.Width, cfg.Board.Height = width, height
	cfg.Search.Depth = c.Depth
	cfg.Players = []config.PlayerConfig{
		{Color: "black", Kind: c.Black, Depth: c.Depth},
		{Color: "white", Kind: c.White, Depth: c.Depth},
	}
	return cfg, cfg.Validate()
}

func (c *PlayCmd) Run(globals *Globals) error {
	return c.run(globals, os.Stdout)
}

func (c *PlayCmd) run(globals *Globals, out io.Writer) error {
	cfg, err := c.matchConfig()
	if err != nil {
		return err
	}

	logger := shared.SetupCharmLogger(os.Stderr, globals.Debug)
	renderer := display.NewRenderer(out)

	hasHuman := false
	for _, color := range []board.Color{board.Black, board.White} {
		if kind, _ := player.ParseKind(cfg.Player(color).Kind); kind == player.KindHuman {
			hasHuman = true
		}
	}

	seats := seating{
		cfg:    cfg,
		seed:   randutil.Seed(c.Seed),
		logger: logger,
		picker: tui.NewPicker(nil, nil, renderer),
		out:    out,
	}
	black, err := seats.player(board.Black)
	if err != nil {
		return err
	}
	white, err := seats.player(board.White)
	if err != nil {
		return err
	}

	pos, err := board.New(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler()
	defer cancel()

	if !hasHuman {
		fmt.Fprint(out, renderer.Board(pos, nil))
	}

	g := game.New(pos, black, white, logger,
		game.WithID(gameid.Generate()),
		game.WithObserver(func(b *board.Board, m game.Move) {
			fmt.Fprintln(out, renderer.Move(m))
			if !hasHuman {
				fmt.Fprint(out, renderer.Board(b, nil))
			}
		}),
	)

	result, err := g.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) || ctx.Err() != nil {
			fmt.Fprintln(out, "Game abandoned.")
			return nil
		}
		return err
	}

	final := g.Board()
	fmt.Fprintln(out)
	fmt.Fprint(out, renderer.Board(final, nil))
	fmt.Fprintln(out, renderer.Score(final))
	fmt.Fprintln(out, renderer.Result(result))
	return nil
}
