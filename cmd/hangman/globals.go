package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/hangman/internal/config"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   kong.ConfigFlag  `help:"Read flag defaults from an HCL file" placeholder:"FILE"`
	LogFile  string           `help:"Write logs to this file instead of discarding them" type:"path" placeholder:"FILE"`
	LogLevel string           `help:"Log level (${enum})" enum:"debug,info,warn,error" default:"info"`
	NoColor  bool             `help:"Disable colors (also set by NO_COLOR)"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

// colorsDisabled reports whether output must stay plain.
func (g *Globals) colorsDisabled() bool {
	return g.NoColor || os.Getenv("NO_COLOR") != ""
}

func (g *Globals) setupColor() {
	if g.colorsDisabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// logger opens the log destination and builds the session logger. The
// returned func closes the destination.
func (g *Globals) logger() (*log.Logger, func(), error) {
	w, err := config.OpenLog(g.LogFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(w, g.LogLevel)
	if err != nil {
		_ = w.Close()
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, func() {
		if err := w.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}, nil
}
