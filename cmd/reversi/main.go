package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Debug bool `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a game in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many games between two computer players"`
	Moves    MovesCmd         `cmd:"" help:"Show a position and its legal moves"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("reversi"),
		kong.Description("Reversi with a fixed-depth minimax opponent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
