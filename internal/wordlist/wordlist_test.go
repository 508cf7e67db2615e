package wordlist

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/randutil"
)

const testCorpus = `cat::50
kitten::80
big cat::60
red herring::69
broken line
too::many::separators::10
noscore::
negative::-1
overflow::256
words::abc
emu::40
`

func TestParseCorpus(t *testing.T) {
	t.Parallel()

	entries := ParseCorpus(testCorpus)
	require.Len(t, entries, 5)

	assert.Equal(t, Entry{Phrase: "cat", Score: 50}, entries[0])
	assert.Equal(t, Entry{Phrase: "kitten", Score: 80}, entries[1])
	assert.Equal(t, Entry{Phrase: "big cat", Score: 60}, entries[2])
	assert.Equal(t, Entry{Phrase: "red herring", Score: 69}, entries[3])
	assert.Equal(t, Entry{Phrase: "emu", Score: 40}, entries[4])
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Entry
		ok   bool
	}{
		{name: "plain", line: "cat::50", want: Entry{"cat", 50}, ok: true},
		{name: "crlf", line: "cat::50\r\n", want: Entry{"cat", 50}, ok: true},
		{name: "max score", line: "x::255", want: Entry{"x", 255}, ok: true},
		{name: "zero score", line: "and::0", want: Entry{"and", 0}, ok: true},
		{name: "no separator", line: "cat 50", ok: false},
		{name: "extra separator", line: "a::b::1", ok: false},
		{name: "plus sign", line: "cat::+50", want: Entry{"cat", 50}, ok: true},
		{name: "lone plus sign", line: "cat::+", ok: false},
		{name: "double plus sign", line: "cat::++5", ok: false},
		{name: "minus sign", line: "cat::-5", ok: false},
		{name: "empty score", line: "cat::", ok: false},
		{name: "score too large", line: "cat::256", ok: false},
		{name: "non numeric", line: "cat::high", ok: false},
		{name: "empty line", line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLetterCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, LetterCount(""))
	assert.Equal(t, 3, LetterCount("cat"))
	assert.Equal(t, 6, LetterCount("big cat!"))
	assert.Equal(t, 11, LetterCount("baker's dozen"))
	assert.Equal(t, 4, LetterCount("Café"))
	assert.Equal(t, 0, LetterCount("1 2 3 ?"))
}

func TestFilterMembership(t *testing.T) {
	t.Parallel()

	entries := ParseCorpus(testCorpus)

	tests := []struct {
		name   string
		bounds Bounds
		want   []string
	}{
		{
			name:   "everything",
			bounds: Bounds{MinLength: 0, MaxLength: 255, MinScore: 0, MaxScore: 255},
			want:   []string{"big cat", "cat", "emu", "kitten", "red herring"},
		},
		{
			name:   "score range inclusive",
			bounds: Bounds{MinLength: 0, MaxLength: 255, MinScore: 50, MaxScore: 69},
			want:   []string{"big cat", "cat", "red herring"},
		},
		{
			name:   "length counts letters only",
			bounds: Bounds{MinLength: 6, MaxLength: 6, MinScore: 0, MaxScore: 100},
			want:   []string{"big cat", "kitten"},
		},
		{
			name:   "length range inclusive",
			bounds: Bounds{MinLength: 3, MaxLength: 3, MinScore: 0, MaxScore: 100},
			want:   []string{"cat", "emu"},
		},
		{
			name:   "nothing matches",
			bounds: Bounds{MinLength: 20, MaxLength: 30, MinScore: 0, MaxScore: 100},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(entries, tt.bounds, randutil.New(1))
			sort.Strings(got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterIsPermutation(t *testing.T) {
	t.Parallel()

	entries := Default()
	bounds := Bounds{MinLength: 3, MaxLength: 50, MinScore: 51, MaxScore: 100}

	var expected []string
	for _, e := range entries {
		if bounds.Matches(e) {
			expected = append(expected, e.Phrase)
		}
	}
	require.NotEmpty(t, expected)

	a := Filter(entries, bounds, randutil.New(1))
	b := Filter(entries, bounds, randutil.New(2))

	assert.ElementsMatch(t, expected, a)
	assert.ElementsMatch(t, expected, b)
	assert.NotEqual(t, a, b, "different seeds should reorder a pool this size")
}

func TestFilterDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	entries := Default()
	bounds := Bounds{MinLength: 0, MaxLength: 255, MinScore: 0, MaxScore: 100}

	assert.Equal(t,
		Filter(entries, bounds, randutil.New(99)),
		Filter(entries, bounds, randutil.New(99)))
}

func TestFilterRequiresRNG(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Filter(nil, Bounds{}, nil)
	})
}

func TestFilterWords(t *testing.T) {
	t.Parallel()

	got := FilterWords(testCorpus, 3, 3, 0, 100, randutil.New(5))
	assert.ElementsMatch(t, []string{"cat", "emu"}, got)
}

func TestDefaultCorpus(t *testing.T) {
	t.Parallel()

	entries := Default()
	require.NotEmpty(t, entries)

	stats := Stats(entries)
	assert.Equal(t, len(entries), stats.Entries)
	assert.LessOrEqual(t, stats.MaxScore, uint8(100))
	assert.LessOrEqual(t, stats.MinScore, stats.MaxScore)
	assert.Positive(t, stats.Longest)
}

func TestStatsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CorpusStats{}, Stats(nil))
}
