package main

import "github.com/lox/hangman/internal/game"

type ManualCmd struct {
	MaxWrongGuesses uint8 `short:"W" help:"Wrong guesses allowed before a round is lost" default:"6"`
}

func (c *ManualCmd) Run(globals *Globals) error {
	logger, closeLog, err := globals.logger()
	if err != nil {
		return err
	}
	defer closeLog()

	return play(globals, logger, game.ManualMode{MaxWrongGuesses: c.MaxWrongGuesses})
}
