// Package wordlist parses the phrase corpus and draws candidate pools from it.
//
// The corpus is a list of lines of the form `phrase::score`, where score is a
// "coolness" rating between 0 and 100 used by crossword constructors. Lines
// that do not follow that shape are skipped rather than reported.
package wordlist

import (
	_ "embed"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

//go:embed phrases.txt
var embeddedCorpus string

const separator = "::"

// Entry is one corpus record.
type Entry struct {
	Phrase string
	Score  uint8
}

// Bounds holds the inclusive length and score ranges a phrase must fall in.
type Bounds struct {
	MinLength uint8
	MaxLength uint8
	MinScore  uint8
	MaxScore  uint8
}

// Matches reports whether the entry's score and letter count are in range.
func (b Bounds) Matches(e Entry) bool {
	if e.Score < b.MinScore || e.Score > b.MaxScore {
		return false
	}
	n := LetterCount(e.Phrase)
	return n >= int(b.MinLength) && n <= int(b.MaxLength)
}

var (
	defaultOnce    sync.Once
	defaultEntries []Entry
)

// Default returns the embedded corpus, parsed on first use.
func Default() []Entry {
	defaultOnce.Do(func() {
		defaultEntries = ParseCorpus(embeddedCorpus)
	})
	return defaultEntries
}

// ParseCorpus turns `phrase::score` lines into entries. A line needs exactly
// one separator and a score that fits in a uint8.
func ParseCorpus(text string) []Entry {
	var entries []Entry
	for line := range strings.Lines(text) {
		if e, ok := ParseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// ParseLine parses a single corpus line.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, separator)
	if len(parts) != 2 {
		return Entry{}, false
	}
	// a single leading plus sign is accepted
	score, err := strconv.ParseUint(strings.TrimPrefix(parts[1], "+"), 10, 8)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Phrase: parts[0], Score: uint8(score)}, true
}

// LetterCount counts the alphabetic characters in phrase.
func LetterCount(phrase string) int {
	n := 0
	for _, r := range phrase {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// Filter returns the phrases of every entry matching bounds, in an order
// drawn uniformly at random from rng.
func Filter(entries []Entry, bounds Bounds, rng *rand.Rand) []string {
	if rng == nil {
		panic("rng is required for filtering")
	}

	var phrases []string
	for _, e := range entries {
		if bounds.Matches(e) {
			phrases = append(phrases, e.Phrase)
		}
	}

	rng.Shuffle(len(phrases), func(i, j int) {
		phrases[i], phrases[j] = phrases[j], phrases[i]
	})
	return phrases
}

// FilterWords parses corpus and filters it in one step.
func FilterWords(corpus string, minLength, maxLength, minScore, maxScore uint8, rng *rand.Rand) []string {
	return Filter(ParseCorpus(corpus), Bounds{
		MinLength: minLength,
		MaxLength: maxLength,
		MinScore:  minScore,
		MaxScore:  maxScore,
	}, rng)
}

// CorpusStats summarises a corpus for startup logging.
type CorpusStats struct {
	Entries  int
	MinScore uint8
	MaxScore uint8
	Longest  int
}

// Stats computes CorpusStats. An empty corpus yields the zero value.
func Stats(entries []Entry) CorpusStats {
	if len(entries) == 0 {
		return CorpusStats{}
	}
	stats := CorpusStats{
		Entries:  len(entries),
		MinScore: math.MaxUint8,
	}
	for _, e := range entries {
		stats.MinScore = min(stats.MinScore, e.Score)
		stats.MaxScore = max(stats.MaxScore, e.Score)
		stats.Longest = max(stats.Longest, LetterCount(e.Phrase))
	}
	return stats
}
