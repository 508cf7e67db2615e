package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/rules"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	var cli CLI
	parser, err := newParser(&cli, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	return &cli, ctx, err
}

func TestRandomDefaults(t *testing.T) {
	cli, ctx, err := parse(t, "random")
	require.NoError(t, err)
	assert.Equal(t, "random", ctx.Command())

	mode := cli.Random.mode()
	assert.Equal(t, uint8(3), mode.MinLength)
	assert.Equal(t, uint8(50), mode.MaxLength)
	assert.Equal(t, uint8(51), mode.MinScore)
	assert.Equal(t, uint8(100), mode.MaxScore)
	assert.Equal(t, uint8(6), mode.MaxWrongGuesses)
	assert.Equal(t, int64(0), cli.Random.Seed)
	assert.Equal(t, "info", cli.LogLevel)
}

func TestRandomIsTheDefaultCommand(t *testing.T) {
	_, ctx, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "random", ctx.Command())
}

func TestShortFlags(t *testing.T) {
	cli, _, err := parse(t, "random", "-l", "4", "-L", "9", "-s", "10", "-S", "20", "-W", "2", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, RandomCmd{
		MinLength:       4,
		MaxLength:       9,
		MinScore:        10,
		MaxScore:        20,
		MaxWrongGuesses: 2,
		Seed:            42,
	}, cli.Random)

	cli, _, err = parse(t, "manual", "-W", "3")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), cli.Manual.MaxWrongGuesses)
}

func TestRandomValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "length range",
			args: []string{"random", "-l", "10", "-L", "3"},
			want: "min word length (10) must be smaller than max length (3)",
		},
		{
			name: "score range",
			args: []string{"random", "-s", "90", "-S", "20"},
			want: "min word score (90) must be smaller than max score (20)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parse(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, _, err := parse(t, "random", "-l", "300")
	assert.Error(t, err, "values above 255 do not fit a uint8")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

random {
  min_length = 5
  seed       = 7
}

manual {
  max_wrong_guesses = 4
}
`), 0o644))

	cli, _, err := parse(t, "--config", path, "random", "-S", "80")
	require.NoError(t, err)
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, uint8(5), cli.Random.MinLength)
	assert.Equal(t, uint8(80), cli.Random.MaxScore)
	assert.Equal(t, int64(7), cli.Random.Seed)

	cli, _, err = parse(t, "--config", path, "manual")
	require.NoError(t, err)
	assert.Equal(t, uint8(4), cli.Manual.MaxWrongGuesses)
}

func TestRulesStyle(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		tty     bool
		noColor bool
		want    string
	}{
		{name: "explicit style wins", flag: "dark", tty: false, want: "dark"},
		{name: "pipe gets plain markdown", flag: "auto", tty: false, want: rules.Plain},
		{name: "no color terminal", flag: "auto", tty: true, noColor: true, want: "notty"},
		{name: "terminal picks theme", flag: "auto", tty: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := RulesCmd{Style: tt.flag}
			assert.Equal(t, tt.want, cmd.style(tt.tty, tt.noColor))
		})
	}
}

func TestGlobalsLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.log")
	g := Globals{LogFile: path, LogLevel: "debug"}

	logger, closeLog, err := g.logger()
	require.NoError(t, err)
	logger.Debug("hello", "round", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "round=1")

	g = Globals{LogLevel: "loud"}
	_, _, err = g.logger()
	assert.Error(t, err)
}

func TestSignalHandlerStop(t *testing.T) {
	g := Globals{LogLevel: "info"}
	logger, closeLog, err := g.logger()
	require.NoError(t, err)
	defer closeLog()

	ctx, stop := setupSignalHandler(context.Background(), logger)
	require.NoError(t, ctx.Err())
	stop()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
