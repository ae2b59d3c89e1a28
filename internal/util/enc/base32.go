package enc

const (
	cb32          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cb32Hex       = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	cb32Crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	base32LineWidth   = 72
	base32PaddingChar = '='
)

// Base32 is the RFC 4648 Base32 encoding. Decoding is case-insensitive.
var Base32 = mustFixedWidthEncoding(newBase32("Base32", MustAlphabet(cb32, false, nil), true))

// Base32Hex is the RFC 4648 Base32 encoding with the extended hex alphabet
var Base32Hex = mustFixedWidthEncoding(newBase32("Base32-Hex", MustAlphabet(cb32Hex, false, nil), true))

// CrockfordBase32 is Douglas Crockford's Base32. The decoder accepts `O` for `0` and `I`/`L` for `1`.
// The canonical form is not padded.
var CrockfordBase32 = mustFixedWidthEncoding(newBase32(
	"Crockford Base32",
	MustAlphabet(cb32Crockford, false, map[rune]string{
		'0': "O",
		'1': "IL",
	}),
	false,
))

// NewBase32 creates a Base32 encoding with a custom alphabet. `prefersPadding` selects whether the
// canonical form is padded.
func NewBase32(alphabet *Alphabet, prefersPadding bool) (*FixedWidthEncoding, error) {
	return newBase32("Custom Base32", alphabet, prefersPadding)
}

func newBase32(name string, alphabet *Alphabet, prefersPadding bool) (*FixedWidthEncoding, error) {
	return newFixedWidthEncoding(
		metadata{name: name, radix: 32},
		padder{width: 8, char: base32PaddingChar, prefers: prefersPadding},
		newScheme(5, 5, base32LineWidth),
		alphabet,
	)
}
