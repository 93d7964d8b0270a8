package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lox/holdemsim/internal/bot"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Run     RunCmd           `cmd:"" default:"withargs" help:"Simulate sessions between bots (default)"`
	Eval    EvalCmd          `cmd:"" help:"Score one or more hands"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Texas Hold'em simulator for automated players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    version,
			"strategies": strings.Join(bot.Strategies(), ", "),
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
