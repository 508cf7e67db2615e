package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLettersOf(t *testing.T) {
	t.Parallel()

	s := LettersOf("Hello, World!")
	assert.Equal(t, []rune("dehlorw"), s.Letters())
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, "{d,e,h,l,o,r,w}", s.String())

	assert.Zero(t, LettersOf("123 ?!").Len())
	assert.Zero(t, LettersOf("café").Intersect(LettersOf("é")).Len())
}

func TestLetterSetWith(t *testing.T) {
	t.Parallel()

	var s LetterSet
	a := s.With('a')
	assert.Zero(t, s.Len(), "With returns a copy")
	assert.True(t, a.Has('a'))
	assert.True(t, a.Has('A'))
	assert.Equal(t, a, a.With('A'), "set semantics")
	assert.Equal(t, a, a.With('3'), "non-letters are ignored")
	assert.False(t, a.Has('?'))
}

func TestToLower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 'a', ToLower('A'))
	assert.Equal(t, 'z', ToLower('z'))
	assert.Equal(t, '3', ToLower('3'))
	assert.Equal(t, 'É', ToLower('É'))
}
