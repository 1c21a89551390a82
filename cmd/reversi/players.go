package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/config"
	"github.com/lox/reversi/internal/player"
	"github.com/lox/reversi/internal/randutil"
)

// parseSize parses "8x8" or "8" into width and height
func parseSize(s string) (int, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	w, h, found := strings.Cut(s, "x")
	if !found {
		h = w
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid board size %q: want WxH, e.g. 8x8", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid board size %q: want WxH, e.g. 8x8", s)
	}
	if width < config.MinSize || width > config.MaxSize || height < config.MinSize || height > config.MaxSize {
		return 0, 0, fmt.Errorf("%w: %dx%d (sides must be %d-%d)", board.ErrInvalidSize, width, height, config.MinSize, config.MaxSize)
	}

	return width, height, nil
}

// seating builds concrete players from a match configuration
type seating struct {
	cfg    *config.MatchConfig
	seed   int64
	logger *log.Logger
	picker player.Picker
	out    io.Writer
}

func (s seating) player(c board.Color) (player.Player, error) {
	pc := s.cfg.Player(c)
	kind, err := player.ParseKind(pc.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case player.KindHuman:
		return player.NewHuman(s.picker, s.out), nil
	case player.KindRandom:
		seed := pc.Seed
		if seed == 0 {
			seed = randutil.Derive(s.seed, int(c))
		}
		return player.NewRandom(randutil.New(seed)), nil
	case player.KindSearch:
		return player.NewSearch(pc.Depth, s.logger, s.cfg.SearchOptions()...), nil
	default:
		return nil, fmt.Errorf("unsupported player kind %q", kind)
	}
}
