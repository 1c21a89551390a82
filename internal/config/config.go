// Package config loads match settings from an HCL file.
//
// A match file looks like:
//
//	board {
//	  width  = 8
//	  height = 8
//	}
//
//	search {
//	  depth    = 4
//	  discount = 0.98
//	}
//
//	player "black" {
//	  kind = "human"
//	}
//
//	player "white" {
//	  kind  = "search"
//	  depth = 5
//	}
//
// Every block and attribute is optional.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/reversi/internal/board"
	"github.com/lox/reversi/internal/player"
	"github.com/lox/reversi/internal/search"
)

// Board size limits. Columns are named by a single letter.
const (
	MinSize = 2
	MaxSize = 26
)

// MatchConfig is the complete match file
type MatchConfig struct {
	Board   *BoardSettings  `hcl:"board,block"`
	Search  *SearchSettings `hcl:"search,block"`
	Players []PlayerConfig  `hcl:"player,block"`
}

// BoardSettings sets the grid size
type BoardSettings struct {
	Width  int `hcl:"width,optional"`
	Height int `hcl:"height,optional"`
}

// SearchSettings tunes the heuristic search shared by all search players
type SearchSettings struct {
	Depth           int     `hcl:"depth,optional"`
	Discount        float64 `hcl:"discount,optional"`
	CornerGate      int     `hcl:"corner_gate,optional"`
	CornerBonus     float64 `hcl:"corner_bonus,optional"`
	MaterialDivisor float64 `hcl:"material_divisor,optional"`
}

// PlayerConfig seats a player on one colour
type PlayerConfig struct {
	Color string `hcl:"color,label"`
	Kind  string `hcl:"kind,optional"`
	Depth int    `hcl:"depth,optional"`
	Seed  int64  `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is given:
// a human playing Black against the search player.
func Default() *MatchConfig {
	c := &MatchConfig{
		Players: []PlayerConfig{
			{Color: "black", Kind: string(player.KindHuman)},
			{Color: "white", Kind: string(player.KindSearch)},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads a match file. A missing file yields Default().
func Load(filename string) (*MatchConfig, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*MatchConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config MatchConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *MatchConfig) applyDefaults() {
	if c.Board == nil {
		c.Board = &BoardSettings{}
	}
	if c.Board.Width == 0 {
		c.Board.Width = 8
	}
	if c.Board.Height == 0 {
		c.Board.Height = 8
	}

	defaults := search.DefaultParams()
	if c.Search == nil {
		c.Search = &SearchSettings{}
	}
	if c.Search.Depth == 0 {
		c.Search.Depth = defaults.Depth
	}
	if c.Search.Discount == 0 {
		c.Search.Discount = defaults.Discount
	}
	if c.Search.CornerGate == 0 {
		c.Search.CornerGate = defaults.CornerGate
	}
	if c.Search.CornerBonus == 0 {
		c.Search.CornerBonus = defaults.CornerBonus
	}
	if c.Search.MaterialDivisor == 0 {
		c.Search.MaterialDivisor = defaults.MaterialDivisor
	}

	for _, color := range []string{"black", "white"} {
		if c.find(color) < 0 {
			c.Players = append(c.Players, PlayerConfig{Color: color})
		}
	}
	for i := range c.Players {
		if c.Players[i].Kind == "" {
			c.Players[i].Kind = string(player.KindSearch)
		}
		if c.Players[i].Depth == 0 {
			c.Players[i].Depth = c.Search.Depth
		}
	}
}

func (c *MatchConfig) find(color string) int {
	for i, p := range c.Players {
		if parsed, err := board.ParseColor(p.Color); err == nil && parsed.String() == color {
			return i
		}
	}
	return -1
}

// Validate checks sizes, search constants and player blocks
func (c *MatchConfig) Validate() error {
	if c.Board.Width < MinSize || c.Board.Width > MaxSize {
		return fmt.Errorf("board width must be between %d and %d, got %d", MinSize, MaxSize, c.Board.Width)
	}
	if c.Board.Height < MinSize || c.Board.Height > MaxSize {
		return fmt.Errorf("board height must be between %d and %d, got %d", MinSize, MaxSize, c.Board.Height)
	}

	if c.Search.Depth < 1 {
		return fmt.Errorf("search depth must be positive, got %d", c.Search.Depth)
	}
	if c.Search.Discount < 0 {
		return fmt.Errorf("search discount must not be negative, got %g", c.Search.Discount)
	}
	if c.Search.MaterialDivisor <= 0 {
		return fmt.Errorf("material divisor must be positive, got %g", c.Search.MaterialDivisor)
	}
	if c.Search.CornerGate < 0 {
		return fmt.Errorf("corner gate must not be negative, got %d", c.Search.CornerGate)
	}

	seen := map[board.Color]bool{}
	for _, p := range c.Players {
		color, err := board.ParseColor(p.Color)
		if err != nil {
			return fmt.Errorf("player %q: %w", p.Color, err)
		}
		if seen[color] {
			return fmt.Errorf("player %q: configured more than once", p.Color)
		}
		seen[color] = true

		if _, err := player.ParseKind(p.Kind); err != nil {
			return fmt.Errorf("player %q: %w", p.Color, err)
		}
		if p.Depth < 1 {
			return fmt.Errorf("player %q: depth must be positive, got %d", p.Color, p.Depth)
		}
	}

	return nil
}

// Player returns the settings for color. Applied defaults guarantee an entry.
func (c *MatchConfig) Player(color board.Color) PlayerConfig {
	if i := c.find(color.String()); i >= 0 {
		return c.Players[i]
	}
	return PlayerConfig{Color: color.String(), Kind: string(player.KindSearch), Depth: c.Search.Depth}
}

// SearchOptions converts the search block into searcher options
func (c *MatchConfig) SearchOptions() []search.Option {
	return []search.Option{
		search.WithParams(search.Params{
			Depth:           c.Search.Depth,
			MaterialDivisor: c.Search.MaterialDivisor,
			CornerGate:      c.Search.CornerGate,
			CornerBonus:     c.Search.CornerBonus,
			Discount:        c.Search.Discount,
		}),
	}
}
