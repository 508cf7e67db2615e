package game

import (
	"math/bits"
	"strings"
)

// LetterSet is a set of the lowercase ASCII letters a-z, one bit per letter.
// It is a plain value, so copies never share state.
type LetterSet uint32

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// ToLower lowercases ASCII letters and returns anything else unchanged.
func ToLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func letterBit(r rune) LetterSet {
	return 1 << uint(ToLower(r)-'a')
}

// LettersOf returns the distinct letters of word, case-folded. Anything that
// is not an ASCII letter is ignored.
func LettersOf(word string) LetterSet {
	var s LetterSet
	for _, r := range word {
		if IsLetter(r) {
			s |= letterBit(r)
		}
	}
	return s
}

// Has reports whether the letter is in the set, ignoring case.
func (s LetterSet) Has(r rune) bool {
	if !IsLetter(r) {
		return false
	}
	return s&letterBit(r) != 0
}

// With returns a copy of the set that also holds r. Non-letters are ignored.
func (s LetterSet) With(r rune) LetterSet {
	if !IsLetter(r) {
		return s
	}
	return s | letterBit(r)
}

// Intersect returns the letters present in both sets.
func (s LetterSet) Intersect(o LetterSet) LetterSet {
	return s & o
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Letters returns the letters in alphabetical order.
func (s LetterSet) Letters() []rune {
	letters := make([]rune, 0, s.Len())
	for r := 'a'; r <= 'z'; r++ {
		if s.Has(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

func (s LetterSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range s.Letters() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('}')
	return b.String()
}
