package enc

const (
	cbz32 = "ybndrfg8ejkmcpqxot1uwisza345h769"
)

// ZBase32 is the human-oriented z-base-32 encoding by Zooko Wilcox-O'Hearn. The canonical form is not
// padded; Padding forces padding. It is the only encoding honoring Compress: trailing zero symbols of
// the final block are dropped as long as the number of encoded bytes can still be told from the
// number of symbols.
var ZBase32 = mustFixedWidthEncoding(newZBase32("z-base-32", MustAlphabet(cbz32, false, nil)))

// NewZBase32 creates a z-base-32 encoding with a custom alphabet
func NewZBase32(alphabet *Alphabet) (*FixedWidthEncoding, error) {
	return newZBase32("Custom z-base-32", alphabet)
}

func newZBase32(name string, alphabet *Alphabet) (*FixedWidthEncoding, error) {
	s := newScheme(5, 5, base32LineWidth)
	s.compressible = true

	return newFixedWidthEncoding(
		metadata{name: name, radix: 32},
		padder{width: 8, char: base32PaddingChar},
		s,
		alphabet,
	)
}
