package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/tui"
)

// play runs one interactive session to completion.
func play(g *Globals, logger *log.Logger, mode game.Mode, opts ...game.Option) error {
	g.setupColor()

	ctx, stop := setupSignalHandler(context.Background(), logger)
	defer stop()

	logger.Info("Starting session", "mode", mode)
	state := game.New(mode, opts...)

	final, err := tui.Run(ctx, state, logger)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	logger.Info("Session finished", final.Fields()...)
	return nil
}
