package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lox/hangman/internal/rules"
)

const (
	defaultRulesWidth = 80
	maxRulesWidth     = 100
)

type RulesCmd struct {
	Style string `help:"Rendering style (${enum})" enum:"auto,dark,light,notty,ascii,plain" default:"auto"`
}

// style resolves "auto" against the terminal and color settings.
func (c *RulesCmd) style(tty, noColor bool) string {
	switch {
	case c.Style != "auto":
		return c.Style
	case !tty:
		return rules.Plain
	case noColor:
		return "notty"
	default:
		return ""
	}
}

func (c *RulesCmd) Run(globals *Globals) error {
	fd := int(os.Stdout.Fd())
	tty := term.IsTerminal(fd)

	width := defaultRulesWidth
	if tty {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = min(w, maxRulesWidth)
		}
	}

	out, err := rules.Render(width, c.style(tty, globals.colorsDisabled()))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
