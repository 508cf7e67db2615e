package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/wordlist"
)

const (
	wonBaseScore           = 10.0
	wonLeftGuessMultiplier = 1.75

	// how many upcoming pool words Fields reports
	poolPreview = 10
)

// State is one game session. Transitions return a new State and leave the
// receiver untouched; slices held by a State are never written after
// construction, only resliced or copied.
type State struct {
	mode          Mode
	scene         Scene
	score         float64
	roundsPlayed  uint32
	unplayedWords []string
	playedWords   []string
}

// Option configures New.
type Option func(*options)

type options struct {
	corpus []wordlist.Entry
	rng    *rand.Rand
}

// WithCorpus replaces the embedded corpus used in random mode.
func WithCorpus(entries []wordlist.Entry) Option {
	return func(o *options) {
		o.corpus = entries
	}
}

// WithRand sets the RNG used to shuffle the random mode pool.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// New builds the initial State for a validated mode. In random mode the
// corpus is filtered up front; an empty pool ends the game immediately with
// NoWordsFound.
func New(mode Mode, opts ...Option) State {
	if mode == nil {
		panic("mode is required for a new game")
	}

	s := State{
		mode:  mode,
		scene: Init{},
	}

	random, ok := mode.(RandomMode)
	if !ok {
		return s
	}

	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.corpus == nil {
		cfg.corpus = wordlist.Default()
	}
	if cfg.rng == nil {
		cfg.rng = randutil.NewFromSeed(0)
	}

	s.unplayedWords = wordlist.Filter(cfg.corpus, random.Bounds(), cfg.rng)
	if len(s.unplayedWords) == 0 {
		s.scene = GameEnd{Reason: NoWordsFound}
	}
	return s
}

// StartManualGame begins a round with a phrase typed in by a player. It is
// accepted in either mode; a random pool is left as it is.
func (s State) StartManualGame(word string) State {
	if _, ok := s.scene.(Init); !ok {
		invalidTransition("StartManualGame", s.scene)
	}
	return s.startRound(word)
}

// StartRandomGame begins a round with the next phrase from the pool, or ends
// the game with NoMoreWordsFound when the pool is empty.
func (s State) StartRandomGame() State {
	if _, ok := s.scene.(Init); !ok {
		invalidTransition("StartRandomGame", s.scene)
	}
	if _, ok := s.mode.(RandomMode); !ok {
		panic(fmt.Sprintf("StartRandomGame executed in %s mode", s.mode))
	}

	n := len(s.unplayedWords)
	if n == 0 {
		s.scene = GameEnd{Reason: NoMoreWordsFound}
		return s
	}

	word := s.unplayedWords[n-1]
	s.unplayedWords = s.unplayedWords[:n-1:n-1]
	return s.startRound(word)
}

func (s State) startRound(word string) State {
	s.scene = AwaitingGuess{
		Word:     word,
		Feedback: Feedback{Kind: LetsGo},
	}
	s.roundsPlayed++
	return s
}

// MakeGuess evaluates one key press. Rules are applied in order: a
// non-letter is rejected, a repeated letter is reported, a correct letter may
// win the round, and a wrong letter may lose it once the number of wrong
// guesses exceeds the mode's budget.
func (s State) MakeGuess(guess rune) State {
	scene, ok := s.scene.(AwaitingGuess)
	if !ok {
		invalidTransition("MakeGuess", s.scene)
	}

	guess = ToLower(guess)
	wordLetters := LettersOf(scene.Word)
	wrongGuesses := scene.Guessed.Len() - scene.Guessed.Intersect(wordLetters).Len()
	maxWrong := int(MaxWrongGuesses(s.mode))

	switch {
	case !IsLetter(guess):
		scene.Feedback = Feedback{Kind: BadChar, Letter: guess}
		s.scene = scene

	case scene.Guessed.Has(guess):
		scene.Feedback = Feedback{Kind: AlreadyTried, Letter: guess}
		s.scene = scene

	case wordLetters.Has(guess):
		guessed := scene.Guessed.With(guess)
		if guessed.Intersect(wordLetters) == wordLetters {
			roundScore := RoundScore(maxWrong - wrongGuesses)
			s.score += roundScore
			s.scene = RoundEnd{
				Word:       scene.Word,
				Won:        true,
				RoundScore: roundScore,
				Guessed:    guessed,
			}
			return s
		}
		scene.Guessed = guessed
		scene.Feedback = Feedback{Kind: Correct, Letter: guess}
		s.scene = scene

	default:
		guessed := scene.Guessed.With(guess)
		if wrongGuesses+1 > maxWrong {
			s.playedWords = append(slices.Clip(s.playedWords), scene.Word)
			s.scene = RoundEnd{
				Word:       scene.Word,
				Won:        false,
				RoundScore: 0,
				Guessed:    guessed,
			}
			return s
		}
		scene.Guessed = guessed
		scene.Feedback = Feedback{Kind: Wrong, Letter: guess}
		s.scene = scene
	}

	return s
}

// RoundScore is the score for winning with leftGuesses wrong guesses to spare.
func RoundScore(leftGuesses int) float64 {
	return math.Round(wonBaseScore * math.Pow(wonLeftGuessMultiplier, float64(leftGuesses)))
}

// NewRound returns to Init from any scene, keeping score and pools.
func (s State) NewRound() State {
	s.scene = Init{}
	return s
}

// EndGame moves to GameEnd from any scene.
func (s State) EndGame(reason EndReason) State {
	s.scene = GameEnd{Reason: reason}
	return s
}

func invalidTransition(op string, scene Scene) {
	panic(fmt.Sprintf("invalid scene transition %s executed on scene %s", op, scene))
}

// Mode returns the configured mode.
func (s State) Mode() Mode { return s.mode }

// Scene returns the current scene.
func (s State) Scene() Scene { return s.scene }

// Score returns the cumulative score.
func (s State) Score() float64 { return s.score }

// RoundsPlayed returns how many rounds have started.
func (s State) RoundsPlayed() uint32 { return s.roundsPlayed }

// UnplayedCount returns the number of phrases left in the pool.
func (s State) UnplayedCount() int { return len(s.unplayedWords) }

// UnplayedWords returns a copy of the pool, next phrase last.
func (s State) UnplayedWords() []string { return slices.Clone(s.unplayedWords) }

// PlayedWords returns a copy of the phrases of lost rounds.
func (s State) PlayedWords() []string { return slices.Clone(s.playedWords) }

// IsOver reports whether the session reached GameEnd.
func (s State) IsOver() bool {
	_, ok := s.scene.(GameEnd)
	return ok
}

// WrongGuesses counts guessed letters that are not in the current phrase.
// Outside a round it is zero.
func (s State) WrongGuesses() int {
	var word string
	var guessed LetterSet
	switch scene := s.scene.(type) {
	case AwaitingGuess:
		word, guessed = scene.Word, scene.Guessed
	case RoundEnd:
		word, guessed = scene.Word, scene.Guessed
	default:
		return 0
	}
	return guessed.Len() - guessed.Intersect(LettersOf(word)).Len()
}

// LeftGuesses returns how many more wrong guesses the round can absorb.
func (s State) LeftGuesses() int {
	return max(int(MaxWrongGuesses(s.mode))-s.WrongGuesses(), 0)
}

// Fields returns key/value pairs describing the state for structured logs.
// Only the next few pool phrases are included.
func (s State) Fields() []any {
	next := make([]string, 0, poolPreview)
	for i := len(s.unplayedWords) - 1; i >= 0 && len(next) < poolPreview; i-- {
		next = append(next, s.unplayedWords[i])
	}
	return []any{
		"scene", s.scene.String(),
		"mode", s.mode.String(),
		"score", s.score,
		"rounds_played", s.roundsPlayed,
		"played_words", s.playedWords,
		"unplayed", len(s.unplayedWords),
		"next", next,
	}
}
