package game

import "fmt"

// FeedbackKind describes the outcome of the most recent guess.
type FeedbackKind int

const (
	LetsGo FeedbackKind = iota
	Correct
	Wrong
	AlreadyTried
	BadChar
)

func (k FeedbackKind) String() string {
	switch k {
	case LetsGo:
		return "LetsGo"
	case Correct:
		return "Correct"
	case Wrong:
		return "Wrong"
	case AlreadyTried:
		return "AlreadyTried"
	case BadChar:
		return "BadChar"
	default:
		return fmt.Sprintf("FeedbackKind(%d)", int(k))
	}
}

// Feedback is attached to AwaitingGuess. Letter is zero for LetsGo.
type Feedback struct {
	Kind   FeedbackKind
	Letter rune
}

func (f Feedback) String() string {
	if f.Kind == LetsGo {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", f.Kind, f.Letter)
}

// EndReason explains why a session reached GameEnd.
type EndReason int

const (
	NoWordsFound EndReason = iota
	NoMoreWordsFound
	ManuallyEnded
)

func (r EndReason) String() string {
	switch r {
	case NoWordsFound:
		return "NoWordsFound"
	case NoMoreWordsFound:
		return "NoMoreWordsFound"
	case ManuallyEnded:
		return "ManuallyEnded"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// Scene is the current phase of a session: Init, AwaitingGuess, RoundEnd or
// GameEnd. The set is closed; switch on the concrete type.
type Scene interface {
	fmt.Stringer
	isScene()
}

// Init waits for a round to start.
type Init struct{}

// AwaitingGuess is a round in progress.
type AwaitingGuess struct {
	Word     string
	Guessed  LetterSet
	Feedback Feedback
}

// RoundEnd is a finished round waiting for the continue/stop decision.
type RoundEnd struct {
	Word       string
	Won        bool
	RoundScore float64
	Guessed    LetterSet
}

// GameEnd is terminal.
type GameEnd struct {
	Reason EndReason
}

func (Init) isScene()          {}
func (AwaitingGuess) isScene() {}
func (RoundEnd) isScene()      {}
func (GameEnd) isScene()       {}

func (Init) String() string { return "Init" }

func (s AwaitingGuess) String() string {
	return fmt.Sprintf("AwaitingGuess{word=%q guessed=%s feedback=%s}", s.Word, s.Guessed, s.Feedback)
}

func (s RoundEnd) String() string {
	return fmt.Sprintf("RoundEnd{word=%q won=%t round_score=%.0f guessed=%s}", s.Word, s.Won, s.RoundScore, s.Guessed)
}

func (s GameEnd) String() string {
	return fmt.Sprintf("GameEnd{%s}", s.Reason)
}
