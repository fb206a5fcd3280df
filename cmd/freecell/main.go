package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play FreeCell in the terminal"`
	Stats   StatsCmd         `cmd:"" help:"Report deal statistics across a range of seeds"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("freecell"),
		kong.Description("FreeCell solitaire with unlimited undo and reproducible deals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
