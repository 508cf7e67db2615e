// Package rules renders the player-facing rules page.
package rules

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
)

//go:embed rules.md
var source string

// Plain is the style name that skips rendering entirely.
const Plain = "plain"

// Render formats the rules for a terminal of the given width. An empty style
// picks a light or dark theme from the terminal background; any other value
// is a glamour standard style name such as "dark" or "notty".
func Render(width int, style string) (string, error) {
	if style == Plain {
		return source, nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("failed to render rules: %w", err)
	}
	return out, nil
}
