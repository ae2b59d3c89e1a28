package enc

import (
	"unicode"
	"unicode/utf8"
)

// Alphabet maps symbol values (0 to Size()-1) to characters and back. Alphabets are immutable and can
// be shared by any number of encoders and decoders running in parallel.
type Alphabet struct {
	symbols       []rune
	text          string
	caseSensitive bool

	// Reverse lookup. ASCII characters go into the table, everything else into the map. Synonyms
	// are part of the lookup, which is why they are never emitted by an encoder.
	ascii [utf8.RuneSelf]int16
	other map[rune]int
}

// NewAlphabet creates a new alphabet from the given symbols. Synonyms map a symbol of the alphabet to a
// string of alternate spellings which are accepted when decoding, e.g. `'0': "Oo"`.
func NewAlphabet(symbols string, caseSensitive bool, synonyms map[rune]string) (*Alphabet, error) {
	if symbols == "" {
		return nil, newConfigurationError("alphabet is empty")
	}
	if !utf8.ValidString(symbols) {
		return nil, newConfigurationError("alphabet is not a valid UTF-8 string")
	}

	a := &Alphabet{
		symbols:       []rune(symbols),
		text:          symbols,
		caseSensitive: caseSensitive,
	}
	for i := range a.ascii {
		a.ascii[i] = -1
	}

	for i, r := range a.symbols {
		if err := a.add(r, i); err != nil {
			return nil, err
		}
	}

	for symbol, alternatives := range synonyms {
		index := a.IndexOf(symbol)
		if index == -1 {
			return nil, newConfigurationError("synonyms of '%c' do not refer to an alphabet symbol", symbol)
		}
		for _, r := range alternatives {
			if a.IndexOf(r) == index {
				// Already covered, e.g. a case variant of an insensitive alphabet.
				continue
			}
			if err := a.add(r, index); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

// MustAlphabet is like NewAlphabet but panics when the alphabet is invalid. Use it for package-level
// variables only.
func MustAlphabet(symbols string, caseSensitive bool, synonyms map[rune]string) *Alphabet {
	a, err := NewAlphabet(symbols, caseSensitive, synonyms)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) add(r rune, index int) error {
	variants := []rune{r}
	if !a.caseSensitive {
		variants = caseVariants(r)
	}
	for _, v := range variants {
		if existing := a.IndexOf(v); existing != -1 {
			return newConfigurationError("alphabet contains a duplicate symbol '%c'", v)
		}
	}
	for _, v := range variants {
		if v < utf8.RuneSelf {
			a.ascii[v] = int16(index)
		} else {
			if a.other == nil {
				a.other = make(map[rune]int)
			}
			a.other[v] = index
		}
	}
	return nil
}

func caseVariants(r rune) []rune {
	res := []rune{r}
	for _, v := range []rune{unicode.ToUpper(r), unicode.ToLower(r)} {
		if v != r && (len(res) < 2 || res[1] != v) {
			res = append(res, v)
		}
	}
	return res
}

// Size returns the number of symbols in the alphabet
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbol returns the character for the given symbol value
func (a *Alphabet) Symbol(index int) rune {
	return a.symbols[index]
}

// IndexOf returns the value of the given character or -1 if the character is not part of the alphabet
func (a *Alphabet) IndexOf(r rune) int {
	if r >= 0 && r < utf8.RuneSelf {
		return int(a.ascii[r])
	}
	if i, ok := a.other[r]; ok {
		return i
	}
	return -1
}

// IsCaseSensitive returns true if the lookup distinguishes between upper and lower case
func (a *Alphabet) IsCaseSensitive() bool {
	return a.caseSensitive
}

func (a *Alphabet) String() string {
	return a.text
}
