package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/game"
)

// Run plays a session in the terminal until it reaches GameEnd, the player
// presses Ctrl+C, or ctx is cancelled. It returns the final state.
func Run(ctx context.Context, state game.State, logger *log.Logger, opts ...tea.ProgramOption) (game.State, error) {
	model := NewModel(state, logger, quartz.NewReal())
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		logger.Info("Game UI stopped", "reason", ctx.Err())
		return model.State(), nil
	}
	if err != nil {
		return model.State(), fmt.Errorf("failed to run game UI: %w", err)
	}
	return final.(*Model).State(), nil
}
