package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/hangman/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Config files consulted when --config is not given. Later files win.
var defaultConfigPaths = []string{
	"~/.config/hangman/config.hcl",
	"./hangman.hcl",
}

type CLI struct {
	Globals

	Random RandomCmd `cmd:"" default:"withargs" help:"Guess phrases drawn from the built-in word list"`
	Manual ManualCmd `cmd:"" help:"Guess a phrase typed in by another player"`
	Rules  RulesCmd  `cmd:"" help:"Show how the game is played and scored"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("hangman"),
		kong.Description("Guess the phrase before the hangman is complete"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Configuration(config.Loader, defaultConfigPaths...),
	}, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
