package tui

import (
	"strings"

	"github.com/lox/hangman/internal/game"
)

const maskChar = '_'

// FormatWord masks the letters of word that are not in guessed. Anything that
// is not an ASCII letter is shown as is. With spaced set, characters are
// separated by single spaces so the blanks can be counted.
func FormatWord(word string, guessed game.LetterSet, spaced bool) string {
	var b strings.Builder
	for i, r := range []rune(word) {
		if spaced && i > 0 {
			b.WriteByte(' ')
		}
		if game.IsLetter(r) && !guessed.Has(r) {
			b.WriteRune(maskChar)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatGuesses lists the guessed letters A-Z, highlighting the ones that
// occur in word and dimming the misses.
func FormatGuesses(word string, guessed game.LetterSet) string {
	inWord := game.LettersOf(word)
	var b strings.Builder
	for _, r := range guessed.Letters() {
		upper := string(r - ('a' - 'A'))
		if inWord.Has(r) {
			b.WriteString(GuessedStyle.Render(upper))
		} else {
			b.WriteString(MissedStyle.Render(upper))
		}
	}
	return b.String()
}

var gallowsStages = []string{
	`
  +---+
      |
      |
      |
     ===`,
	`
  +---+
  O   |
      |
      |
     ===`,
	`
  +---+
  O   |
  |   |
      |
     ===`,
	`
  +---+
  O   |
 /|   |
      |
     ===`,
	`
  +---+
  O   |
 /|\  |
      |
     ===`,
	`
  +---+
  O   |
 /|\  |
 /    |
     ===`,
	`
  +---+
  O   |
 /|\  |
 / \  |
     ===`,
}

// Gallows draws the hangman for wrong guesses out of a budget of maxWrong.
// The figure is complete only once the budget is exceeded.
func Gallows(wrong, maxWrong int) string {
	last := len(gallowsStages) - 1
	var stage int
	switch {
	case wrong <= 0:
		stage = 0
	case wrong > maxWrong:
		stage = last
	default:
		// spread the budget over the stages before the final one
		stage = wrong * (last - 1) / maxWrong
		stage = max(stage, 1)
	}
	return strings.TrimPrefix(gallowsStages[stage], "\n")
}
