package main

import (
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/wordlist"
)

type RandomCmd struct {
	MinLength       uint8 `short:"l" help:"Minimum number of letters in a phrase" default:"3"`
	MaxLength       uint8 `short:"L" help:"Maximum number of letters in a phrase" default:"50"`
	MinScore        uint8 `short:"s" help:"Minimum coolness score (0-100)" default:"51"`
	MaxScore        uint8 `short:"S" help:"Maximum coolness score (0-100)" default:"100"`
	MaxWrongGuesses uint8 `short:"W" help:"Wrong guesses allowed before a round is lost" default:"6"`
	Seed            int64 `help:"Seed for the phrase order, 0 picks one at random"`
}

func (c *RandomCmd) mode() game.RandomMode {
	return game.RandomMode{
		MinLength:       c.MinLength,
		MaxLength:       c.MaxLength,
		MinScore:        c.MinScore,
		MaxScore:        c.MaxScore,
		MaxWrongGuesses: c.MaxWrongGuesses,
	}
}

// Validate is called by kong after parsing.
func (c *RandomCmd) Validate() error {
	return game.Validate(c.mode())
}

func (c *RandomCmd) Run(globals *Globals) error {
	logger, closeLog, err := globals.logger()
	if err != nil {
		return err
	}
	defer closeLog()

	corpus := wordlist.Default()
	stats := wordlist.Stats(corpus)
	logger.Info("Loaded word list",
		"entries", stats.Entries,
		"min_score", stats.MinScore,
		"max_score", stats.MaxScore,
		"longest", stats.Longest)
	if c.Seed != 0 {
		logger.Debug("Using fixed seed", "seed", c.Seed)
	}

	return play(globals, logger, c.mode(),
		game.WithCorpus(corpus),
		game.WithRand(randutil.NewFromSeed(c.Seed)))
}
