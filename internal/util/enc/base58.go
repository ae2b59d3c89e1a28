package enc

import (
	"bytes"
	"crypto/sha256"
	"io"
	"math/big"
	"unicode"
)

const (
	cb58       = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	cb58Ripple = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	base58Radix = 58

	// base58Efficiency is log(58) / log(256)
	base58Efficiency = 0.7322

	base58ChecksumSize = 4
)

var bigRadix58 = big.NewInt(base58Radix)

// Base58 is the Bitcoin Base58 encoding. With Checksum it becomes Base58Check.
var Base58 = mustBase58Encoding(newBase58("Base58", MustAlphabet(cb58, true, nil)))

// RippleBase58 is the Base58 encoding with the alphabet used by Ripple
var RippleBase58 = mustBase58Encoding(newBase58("Ripple Base58", MustAlphabet(cb58Ripple, true, nil)))

// Base58Encoding treats the input as one big-endian number and re-bases it to radix 58. Leading zero
// bytes are kept as leading zero symbols.
//
// Unlike the bit-packing encodings, every output symbol depends on the magnitude of the whole input.
// The contexts therefore buffer everything until they are finalized and streams only produce output
// when they are closed.
type Base58Encoding struct {
	metadata
	padder
	alphabet *Alphabet
}

// NewBase58 creates a Base58 encoding with a custom alphabet
func NewBase58(alphabet *Alphabet) (*Base58Encoding, error) {
	return newBase58("Custom Base58", alphabet)
}

func newBase58(name string, alphabet *Alphabet) (*Base58Encoding, error) {
	if alphabet == nil {
		return nil, newConfigurationError("the alphabet of %v encoding is missing", name)
	}
	if alphabet.Size() != base58Radix {
		return nil, newConfigurationError("the alphabet size of %v encoding should be %d", name, base58Radix)
	}
	return &Base58Encoding{
		metadata: metadata{
			name:          name,
			radix:         base58Radix,
			efficiency:    base58Efficiency,
			minEfficiency: 0.732,
			maxEfficiency: 1, // a run of zero bytes maps one-to-one
			caseSensitive: alphabet.IsCaseSensitive(),
		},
		padder:   padder{width: 1},
		alphabet: alphabet,
	}, nil
}

func mustBase58Encoding(e *Base58Encoding, err error) *Base58Encoding {
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the alphabet of the encoding
func (e *Base58Encoding) Alphabet() *Alphabet {
	return e.alphabet
}

func (e *Base58Encoding) GetString(data []byte, options Options) string {
	return encodeToString(e, data, options)
}

func (e *Base58Encoding) GetBytes(s string, options Options) ([]byte, error) {
	return decodeToBytes(e, []byte(s), options)
}

func (e *Base58Encoding) EncodeData(data []byte) []byte {
	return []byte(e.GetString(data, None))
}

func (e *Base58Encoding) DecodeData(data []byte) ([]byte, error) {
	return decodeToBytes(e, data, None)
}

func (e *Base58Encoding) CreateEncoder(w io.Writer, options Options) *EncoderStream {
	return createEncoder(e, w, options)
}

func (e *Base58Encoding) CreateDecoder(r io.Reader, options Options) *DecoderStream {
	return createDecoder(e, r, options)
}

func (e *Base58Encoding) GetMaxCharCount(byteCount int, options Options) int {
	if byteCount <= 0 && !options.Has(Checksum) {
		return 0
	}
	if options.Has(Checksum) {
		byteCount += base58ChecksumSize
	}
	// ceil(byteCount * log(256) / log(58)), slightly overestimated
	return byteCount*138/100 + 1
}

func (e *Base58Encoding) GetMaxByteCount(charCount int, options Options) int {
	if charCount <= 0 {
		return 0
	}
	// A symbol never carries more than a byte: the worst case is a run of zero symbols
	return charCount
}

// GetStringBigInt encodes a non-negative integer. Zero is encoded as a single zero symbol.
func (e *Base58Encoding) GetStringBigInt(value *big.Int, options Options) (string, error) {
	if value == nil || value.Sign() < 0 {
		return "", newConfigurationError("%v can only encode non-negative integers", e.name)
	}
	data := value.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}
	return e.GetString(data, options), nil
}

// GetBigInt decodes a non-negative integer
func (e *Base58Encoding) GetBigInt(s string, options Options) (*big.Int, error) {
	data, err := e.GetBytes(s, options)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(data), nil
}

func (e *Base58Encoding) NewEncoderContext(options Options) EncoderContext {
	return &base58Encoder{
		encoding: e,
		options:  options,
	}
}

func (e *Base58Encoding) NewDecoderContext(options Options) DecoderContext {
	return &base58Decoder{
		encoding: e,
		options:  options,
	}
}

func base58Checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:base58ChecksumSize]
}

// -------------------------------------------------------

type base58Encoder struct {
	encoding *Base58Encoding
	options  Options
	data     bytes.Buffer
	eof      bool
	err      error
}

func (c *base58Encoder) Encode(input []byte, output TextWriter) error {
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return nil
	}
	if input != nil {
		c.data.Write(input)
		return nil
	}

	c.eof = true
	data := c.data.Bytes()
	if c.options.Has(Checksum) {
		data = append(data, base58Checksum(data)...)
	}
	c.err = c.writeNumber(data, output)
	c.data.Reset()
	return c.err
}

func (c *base58Encoder) writeNumber(data []byte, output TextWriter) error {
	alphabet := c.encoding.alphabet

	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	// Remainders come out least significant first
	var digits []int
	x := new(big.Int).SetBytes(data[zeros:])
	mod := new(big.Int)
	for x.Sign() != 0 {
		x.DivMod(x, bigRadix58, mod)
		digits = append(digits, int(mod.Int64()))
	}

	for i := 0; i < zeros; i++ {
		if _, err := output.WriteRune(alphabet.Symbol(0)); err != nil {
			return err
		}
	}
	for i := len(digits) - 1; i >= 0; i-- {
		if _, err := output.WriteRune(alphabet.Symbol(digits[i])); err != nil {
			return err
		}
	}
	return nil
}

// -------------------------------------------------------

type base58Decoder struct {
	runes    runeScanner
	encoding *Base58Encoding
	options  Options
	digits   []byte
	eof      bool
	err      error
}

func (c *base58Decoder) Decode(input []byte, output io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return nil
	}

	final := input == nil
	err := c.runes.scan(input, final, c.decodeRune)
	if err == nil && final {
		c.eof = true
		err = c.flush(output)
	}
	if err != nil {
		c.eof = true
		c.err = err
	}
	return err
}

func (c *base58Decoder) decodeRune(r rune) error {
	v := c.encoding.alphabet.IndexOf(r)
	if v == -1 {
		if !c.options.Has(Relax) && !unicode.IsSpace(r) {
			return newDecodeError(c.encoding.name, "encountered a non-%v character %q", c.encoding.name, r)
		}
		return nil
	}
	c.digits = append(c.digits, byte(v))
	return nil
}

func (c *base58Decoder) flush(output io.Writer) error {
	zeros := 0
	for zeros < len(c.digits) && c.digits[zeros] == 0 {
		zeros++
	}

	value := new(big.Int)
	digit := new(big.Int)
	for _, d := range c.digits[zeros:] {
		value.Mul(value, bigRadix58)
		value.Add(value, digit.SetInt64(int64(d)))
	}

	data := make([]byte, zeros, zeros+len(c.digits))
	data = append(data, value.Bytes()...)
	c.digits = nil

	if c.options.Has(Checksum) {
		if len(data) < base58ChecksumSize {
			return newDecodeError(c.encoding.name, "the input is too short to carry a checksum")
		}
		payload := data[:len(data)-base58ChecksumSize]
		if !bytes.Equal(base58Checksum(payload), data[len(payload):]) {
			return newDecodeError(c.encoding.name, "checksum mismatch")
		}
		data = payload
	}

	return writeBytes(output, data)
}
