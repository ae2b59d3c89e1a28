package enc

const (
	cb64  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	cb64u = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	base64LineWidth   = 76
	base64PaddingChar = '='
)

// Base64 is the RFC 4648 Base64 encoding. Encoded strings are padded unless Unpad is given. Wrap (or
// Indent) breaks the lines after 76 characters, as MIME does.
var Base64 = mustFixedWidthEncoding(newBase64("Base64", MustAlphabet(cb64, true, nil), true))

// Base64URL encodes 3 bytes to 4 characters using the URL and filename safe alphabet. The canonical
// form is not padded.
var Base64URL = mustFixedWidthEncoding(newBase64("Base64-URL", MustAlphabet(cb64u, true, nil), false))

// NewBase64 creates a Base64 encoding with a custom alphabet
func NewBase64(alphabet *Alphabet, prefersPadding bool) (*FixedWidthEncoding, error) {
	return newBase64("Custom Base64", alphabet, prefersPadding)
}

func newBase64(name string, alphabet *Alphabet, prefersPadding bool) (*FixedWidthEncoding, error) {
	return newFixedWidthEncoding(
		metadata{name: name, radix: 64},
		padder{width: 4, char: base64PaddingChar, prefers: prefersPadding},
		newScheme(6, 3, base64LineWidth),
		alphabet,
	)
}
