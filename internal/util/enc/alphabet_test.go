package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AlphabetLookup(t *testing.T) {
	a, err := NewAlphabet("abc", true, nil)
	require.NoError(t, err)
	require.Equal(t, 3, a.Size())
	require.Equal(t, 'b', a.Symbol(1))
	require.Equal(t, 2, a.IndexOf('c'))
	require.Equal(t, -1, a.IndexOf('C'))
	require.Equal(t, -1, a.IndexOf('x'))
	require.Equal(t, "abc", a.String())
	require.True(t, a.IsCaseSensitive())
}

func Test_AlphabetCaseInsensitive(t *testing.T) {
	a := MustAlphabet("aBc", false, nil)
	require.Equal(t, 0, a.IndexOf('A'))
	require.Equal(t, 0, a.IndexOf('a'))
	require.Equal(t, 1, a.IndexOf('b'))
	require.Equal(t, 1, a.IndexOf('B'))
	require.Equal(t, 'B', a.Symbol(1))
	require.False(t, a.IsCaseSensitive())
}

func Test_AlphabetUnicode(t *testing.T) {
	a := MustAlphabet("αβγ", false, nil)
	require.Equal(t, 3, a.Size())
	require.Equal(t, 1, a.IndexOf('β'))
	require.Equal(t, 1, a.IndexOf('Β'))
	require.Equal(t, 'γ', a.Symbol(2))
}

func Test_AlphabetSynonyms(t *testing.T) {
	a := MustAlphabet("0123", false, map[rune]string{
		'0': "Oo",
		'1': "Il",
	})
	require.Equal(t, 0, a.IndexOf('O'))
	require.Equal(t, 0, a.IndexOf('o'))
	require.Equal(t, 1, a.IndexOf('i'))
	require.Equal(t, 1, a.IndexOf('L'))
	require.Equal(t, '0', a.Symbol(0))
}

func Test_AlphabetInvalid(t *testing.T) {
	tests := []struct {
		name          string
		symbols       string
		caseSensitive bool
		synonyms      map[rune]string
	}{
		{"empty", "", true, nil},
		{"invalid utf-8", "ab\xff", true, nil},
		{"duplicate", "abca", true, nil},
		{"case duplicate", "abA", false, nil},
		{"unknown synonym target", "abc", true, map[rune]string{'x': "y"}},
		{"synonym collision", "abc", true, map[rune]string{'a': "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlphabet(tt.symbols, tt.caseSensitive, tt.synonyms)
			require.Error(t, err)
			require.Nil(t, a)
			require.True(t, IsInvalidConfiguration(err))
			require.False(t, IsMalformedInput(err))
		})
	}
}

func Test_AlphabetCaseSensitiveAllowsCaseVariants(t *testing.T) {
	_, err := NewAlphabet("abA", true, nil)
	require.NoError(t, err)
}

func Test_MustAlphabetPanics(t *testing.T) {
	require.Panics(t, func() {
		MustAlphabet("aa", true, nil)
	})
}
