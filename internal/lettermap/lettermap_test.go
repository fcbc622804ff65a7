package lettermap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultLayout(t *testing.T) {
	m, err := New(DefaultSize)
	require.NoError(t, err)
	require.Equal(t, 300, m.Len())

	// 300 = 11*26 + 14: a..n get 12 slots, o..z get 11.
	cases := []struct {
		letter byte
		lo, hi int
	}{
		{'a', 1, 12},
		{'c', 25, 36},
		{'n', 157, 168},
		{'o', 169, 179},
		{'t', 224, 234},
		{'z', 290, 300},
	}
	for _, c := range cases {
		lo, hi, ok := m.Span(c.letter)
		require.True(t, ok, "letter %q", c.letter)
		require.Equal(t, c.lo, lo, "lo for %q", c.letter)
		require.Equal(t, c.hi, hi, "hi for %q", c.letter)
	}
}

func TestLetterDeterministic(t *testing.T) {
	m, _ := New(DefaultSize)
	for r := 1; r <= m.Len(); r++ {
		first, err := m.Letter(r)
		require.NoError(t, err)
		for k := 0; k < 3; k++ {
			again, _ := m.Letter(r)
			require.Equal(t, first, again)
		}
	}
}

func TestLetterOutOfRange(t *testing.T) {
	m, _ := New(DefaultSize)
	for _, r := range []int{-80, -1, 0, 301, 1000} {
		_, err := m.Letter(r)
		require.Error(t, err, "reading %d", r)
		require.True(t, errors.Is(err, ErrIndexOutOfRange))

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		require.Equal(t, r, ie.Reading)
		require.Equal(t, r-1, ie.Index)
	}
	for _, r := range []int{1, 300} {
		_, err := m.Letter(r)
		require.NoError(t, err, "reading %d", r)
	}
}

func TestSmallMap(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	got := []byte{}
	for r := 1; r <= 3; r++ {
		l, err := m.Letter(r)
		require.NoError(t, err)
		got = append(got, l)
	}
	require.Equal(t, "abc", string(got))
	_, _, ok := m.Span('d')
	require.False(t, ok)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
}

func TestReadingsFor(t *testing.T) {
	m, _ := New(DefaultSize)
	rs, err := m.ReadingsFor("cat")
	require.NoError(t, err)
	require.Equal(t, []int{25, 1, 224}, rs)

	word := make([]byte, 0, len(rs))
	for _, r := range rs {
		l, err := m.Letter(r)
		require.NoError(t, err)
		word = append(word, l)
	}
	require.Equal(t, "cat", string(word))

	_, err = m.ReadingsFor("c4t")
	require.Error(t, err)
}
