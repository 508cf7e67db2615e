package game

import (
	"fmt"

	"github.com/lox/hangman/internal/wordlist"
)

// Defaults used by the CLI.
const (
	DefaultMinLength       uint8 = 3
	DefaultMaxLength       uint8 = 50
	DefaultMinScore        uint8 = 51
	DefaultMaxScore        uint8 = 100
	DefaultMaxWrongGuesses uint8 = 6
)

// Mode is the game configuration. It is either ManualMode or RandomMode.
type Mode interface {
	fmt.Stringer
	isMode()
}

// ManualMode has a player type in a secret phrase for each round.
type ManualMode struct {
	MaxWrongGuesses uint8
}

// RandomMode draws phrases from the corpus.
type RandomMode struct {
	MinLength       uint8
	MaxLength       uint8
	MinScore        uint8
	MaxScore        uint8
	MaxWrongGuesses uint8
}

func (ManualMode) isMode() {}
func (RandomMode) isMode() {}

func (m ManualMode) String() string {
	return fmt.Sprintf("manual(max_wrong=%d)", m.MaxWrongGuesses)
}

func (m RandomMode) String() string {
	return fmt.Sprintf("random(length=%d-%d score=%d-%d max_wrong=%d)",
		m.MinLength, m.MaxLength, m.MinScore, m.MaxScore, m.MaxWrongGuesses)
}

// Bounds converts the mode into word filter bounds.
func (m RandomMode) Bounds() wordlist.Bounds {
	return wordlist.Bounds{
		MinLength: m.MinLength,
		MaxLength: m.MaxLength,
		MinScore:  m.MinScore,
		MaxScore:  m.MaxScore,
	}
}

// DefaultRandomMode returns RandomMode with the CLI defaults.
func DefaultRandomMode() RandomMode {
	return RandomMode{
		MinLength:       DefaultMinLength,
		MaxLength:       DefaultMaxLength,
		MinScore:        DefaultMinScore,
		MaxScore:        DefaultMaxScore,
		MaxWrongGuesses: DefaultMaxWrongGuesses,
	}
}

// DefaultManualMode returns ManualMode with the CLI defaults.
func DefaultManualMode() ManualMode {
	return ManualMode{MaxWrongGuesses: DefaultMaxWrongGuesses}
}

// MaxWrongGuesses returns the wrong-guess budget of a mode.
func MaxWrongGuesses(m Mode) uint8 {
	switch m := m.(type) {
	case ManualMode:
		return m.MaxWrongGuesses
	case RandomMode:
		return m.MaxWrongGuesses
	default:
		panic(fmt.Sprintf("unknown game mode %T", m))
	}
}
