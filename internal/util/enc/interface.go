package enc

import (
	"io"
	"math/big"
)

// TextWriter is the sink encoder contexts write symbols to. bufio.Writer, bytes.Buffer and
// strings.Builder all implement it.
type TextWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	WriteRune(r rune) (int, error)
}

// EncoderContext holds the state of a single encoding run
type EncoderContext interface {
	// Encode folds the input into the context and writes complete symbols to the output. A `nil` input
	// finalizes the context: any partial block is flushed (and padded). Calls after finalization do nothing.
	Encode(input []byte, output TextWriter) error
}

// DecoderContext holds the state of a single decoding run
type DecoderContext interface {
	// Decode folds the (UTF-8) encoded input into the context and writes complete bytes to the output.
	// A `nil` input finalizes the context and validates the final block. Calls after finalization do
	// nothing. Once the context returned an error, it will return the same error on every call.
	Decode(input []byte, output io.Writer) error
}

// Encoding is a binary-to-text encoding
type Encoding interface {
	// Name is the user-friendly name of this encoding
	Name() string

	// Radix is the number of unique symbols in the alphabet of the encoding
	Radix() int

	// Efficiency is the average ratio between the number of input bits and the number of output bits
	Efficiency() float32
	// MinEfficiency is the lowest efficiency the encoding can reach
	MinEfficiency() float32
	// MaxEfficiency is the highest efficiency the encoding can reach
	MaxEfficiency() float32

	// IsCaseSensitive returns false if the decoder ignores the case of the symbols
	IsCaseSensitive() bool

	// Padding is the width encoded strings are padded to. Encodings without padding return 1.
	Padding() int
	// PrefersPadding returns true if the canonical form of the encoding is padded
	PrefersPadding() bool
	// CanPad returns true if the encoding knows how to pad
	CanPad() bool

	// GetString encodes the data
	GetString(data []byte, options Options) string
	// GetBytes decodes the string
	GetBytes(s string, options Options) ([]byte, error)
	// EncodeData encodes the data with default options and returns the encoded text as bytes
	EncodeData(data []byte) []byte
	// DecodeData decodes encoded text given as bytes with default options
	DecodeData(data []byte) ([]byte, error)

	// GetMaxCharCount returns the upper bound of the encoded length for the given number of bytes
	GetMaxCharCount(byteCount int, options Options) int
	// GetMaxByteCount returns the upper bound of the decoded length for the given number of characters
	GetMaxByteCount(charCount int, options Options) int

	// NewEncoderContext creates a fresh encoding state machine
	NewEncoderContext(options Options) EncoderContext
	// NewDecoderContext creates a fresh decoding state machine
	NewDecoderContext(options Options) DecoderContext

	// CreateEncoder returns a stream which encodes everything written to it into the writer
	CreateEncoder(w io.Writer, options Options) *EncoderStream
	// CreateDecoder returns a stream which decodes everything read from the reader
	CreateDecoder(r io.Reader, options Options) *DecoderStream

	// Pad pads the encoded string
	Pad(s string) string
	// Unpad removes the padding from the encoded string
	Unpad(s string) string
	// IsPadded returns true if the length of the encoded string is a multiple of Padding()
	IsPadded(s string) bool
}

// NumericEncoding is an encoding which can represent non-negative integers directly
type NumericEncoding interface {
	Encoding

	// GetStringBigInt encodes a non-negative integer
	GetStringBigInt(value *big.Int, options Options) (string, error)
	// GetBigInt decodes a non-negative integer
	GetBigInt(s string, options Options) (*big.Int, error)
}
