package enc

const (
	cb16 = "0123456789ABCDEF"

	// base16LineWidth is the number of symbols (16 bytes) per line when wrapping
	base16LineWidth = 32
)

// Base16 is the hexadecimal encoding (RFC 4648). Decoding is case-insensitive. With Indent, the encoded
// bytes are separated by spaces; with Wrap, every 16 bytes go onto a new line.
var Base16 = mustFixedWidthEncoding(newBase16("Base16", MustAlphabet(cb16, false, nil)))

// NewBase16 creates a Base16 encoding with a custom alphabet
func NewBase16(alphabet *Alphabet) (*FixedWidthEncoding, error) {
	return newBase16("Custom Base16", alphabet)
}

func newBase16(name string, alphabet *Alphabet) (*FixedWidthEncoding, error) {
	s := newScheme(4, 1, base16LineWidth)
	s.indentWraps = false
	s.separator = ' '

	return newFixedWidthEncoding(
		metadata{name: name, radix: 16},
		padder{width: 1},
		s,
		alphabet,
	)
}
