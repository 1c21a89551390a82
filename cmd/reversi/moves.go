package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/display"
	"github.com/lox/reversi/internal/game"
	"github.com/lox/reversi/internal/search"
	"github.com/muesli/termenv"
)

type MovesCmd struct {
	Size  string   `short:"s" default:"8x8" help:"Board size as WxH, used when no rows are given"`
	Color string   `default:"black" enum:"black,white" help:"Side to move"`
	Depth int      `short:"d" default:"4" help:"Search depth used to score each move"`
	Plain bool     `help:"Disable colours"`
	Rows  []string `arg:"" optional:"" help:"Board rows using . b w, top row first"`
}

func (c *MovesCmd) Run(globals *Globals) error {
	return c.run(os.Stdout)
}

func (c *MovesCmd) position() (*board.Board, error) {
	if len(c.Rows) > 0 {
		return board.FromRows(c.Rows...)
	}
	width, height, err := parseSize(c.Size)
	if err != nil {
		return nil, err
	}
	return board.New(width, height)
}

func (c *MovesCmd) run(out io.Writer) error {
	b, err := c.position()
	if err != nil {
		return err
	}
	color, err := board.ParseColor(c.Color)
	if err != nil {
		return err
	}

	renderer := display.NewRenderer(out)
	if c.Plain {
		renderer = display.NewRendererWithProfile(termenv.Ascii)
	}

	moves := b.LegalMoves(color)
	fmt.Fprint(out, renderer.Board(b, moves))
	fmt.Fprintln(out, renderer.Score(b))

	if len(moves) == 0 {
		if b.IsTerminal() {
			result := &game.Result{Black: b.Count(board.Black), White: b.Count(board.White), Winner: b.Winner()}
			fmt.Fprintln(out, "Game over:", renderer.Result(result))
		} else {
			fmt.Fprintf(out, "%s has no legal move and must pass.\n", color.Title())
		}
		return nil
	}

	searcher := search.New(search.WithDepth(c.Depth))
	best := searcher.Decide(color, b, c.Depth)

	fmt.Fprintf(out, "%s to move:\n", color.Title())
	for _, p := range moves {
		after := b.Clone()
		if err := after.Place(color, p); err != nil {
			return err
		}
		marker := " "
		if p == best {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-4s flips %-2d score %+.4f\n",
			marker, p, after.Count(color)-b.Count(color)-1, searcher.Evaluate(color, b, p, c.Depth))
	}
	return nil
}
