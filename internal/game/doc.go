// Package game implements the hangman session state machine.
//
// The main type is State, which holds the configured Mode, the current Scene,
// the cumulative score and the pools of unplayed and played phrases.
//
// # Basic Usage
//
// Play a manual round:
//
//	s := game.New(game.ManualMode{MaxWrongGuesses: 6})
//	s = s.StartManualGame("cat")
//	s = s.MakeGuess('a')
//	s = s.MakeGuess('t')
//	s = s.MakeGuess('c')
//	if end, ok := s.Scene().(game.RoundEnd); ok && end.Won {
//	    fmt.Println(end.RoundScore) // 287
//	}
//
// # Transitions
//
// Every transition takes the State by value and returns the next State. The
// previous value is never modified, so callers can keep snapshots around and
// compare them. Calling a transition from a Scene it does not apply to is a
// bug in the driving loop and panics.
//
//	Init -> AwaitingGuess -> RoundEnd -> Init ...
//	RoundEnd -> GameEnd
//	Init -> GameEnd (pool exhausted)
//
// # Deterministic Testing
//
// Random mode draws its pool from the embedded corpus using a time-seeded RNG.
// Inject both for reproducible games:
//
//	s := game.New(mode,
//	    game.WithCorpus(wordlist.ParseCorpus("cat::60\n")),
//	    game.WithRand(randutil.New(42)))
package game
