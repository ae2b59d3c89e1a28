package enc

import (
	"io"
	"unicode"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""

	base91Radix     = 91
	base91LineWidth = 76
)

// Base91 is Joachim Henke's basE91 encoding
var Base91 = mustBase91Encoding(newBase91("Base91", MustAlphabet(cb91, true, nil)))

// Base91Encoding when encoding, each group of 13 bits is converted into 2 radix-91 digits. If the
// 13-bit value is small enough (88 or less), a 14th bit is packed into the same pair of digits.
type Base91Encoding struct {
	metadata
	padder
	alphabet *Alphabet
}

// NewBase91 creates a basE91 encoding with a custom alphabet
func NewBase91(alphabet *Alphabet) (*Base91Encoding, error) {
	return newBase91("Custom Base91", alphabet)
}

func newBase91(name string, alphabet *Alphabet) (*Base91Encoding, error) {
	if alphabet == nil {
		return nil, newConfigurationError("the alphabet of %v encoding is missing", name)
	}
	if alphabet.Size() != base91Radix {
		return nil, newConfigurationError("the alphabet size of %v encoding should be %d", name, base91Radix)
	}
	return &Base91Encoding{
		metadata: metadata{
			name:          name,
			radix:         base91Radix,
			efficiency:    0.8132,
			minEfficiency: 0.8125,
			maxEfficiency: 0.875,
			caseSensitive: alphabet.IsCaseSensitive(),
		},
		padder:   padder{width: 1},
		alphabet: alphabet,
	}, nil
}

func mustBase91Encoding(e *Base91Encoding, err error) *Base91Encoding {
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the alphabet of the encoding
func (e *Base91Encoding) Alphabet() *Alphabet {
	return e.alphabet
}

func (e *Base91Encoding) GetString(data []byte, options Options) string {
	return encodeToString(e, data, options)
}

func (e *Base91Encoding) GetBytes(s string, options Options) ([]byte, error) {
	return decodeToBytes(e, []byte(s), options)
}

func (e *Base91Encoding) EncodeData(data []byte) []byte {
	return []byte(e.GetString(data, None))
}

func (e *Base91Encoding) DecodeData(data []byte) ([]byte, error) {
	return decodeToBytes(e, data, None)
}

func (e *Base91Encoding) CreateEncoder(w io.Writer, options Options) *EncoderStream {
	return createEncoder(e, w, options)
}

func (e *Base91Encoding) CreateDecoder(r io.Reader, options Options) *DecoderStream {
	return createDecoder(e, r, options)
}

func (e *Base91Encoding) GetMaxCharCount(byteCount int, options Options) int {
	if byteCount <= 0 {
		return 0
	}
	// Every pair of symbols carries at least 13 bits, the tail takes up to 2 more symbols
	symbols := byteCount*8/13*2 + 2
	f := newLineFormatter(base91LineWidth, options.formatted(), 0)
	return symbols + f.extra(symbols, 2)
}

func (e *Base91Encoding) GetMaxByteCount(charCount int, options Options) int {
	if charCount <= 0 {
		return 0
	}
	// Every pair of symbols carries at most 14 bits, a single trailing symbol one byte
	return charCount*7/8 + 1
}

func (e *Base91Encoding) NewEncoderContext(options Options) EncoderContext {
	return &base91Encoder{
		encoding: e,
		line:     newLineFormatter(base91LineWidth, options.formatted(), 0),
	}
}

func (e *Base91Encoding) NewDecoderContext(options Options) DecoderContext {
	return &base91Decoder{
		encoding: e,
		options:  options,
		value:    -1,
	}
}

// -------------------------------------------------------

type base91Encoder struct {
	bitState
	encoding *Base91Encoding
	line     lineFormatter
}

func (c *base91Encoder) Encode(input []byte, output TextWriter) error {
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return nil
	}

	if input == nil {
		c.eof = true
		if c.modulus != 0 {
			c.err = c.writeTail(output)
		}
		return c.err
	}

	for _, b := range input {
		c.bits |= uint64(b) << uint(c.modulus)
		c.modulus += 8
		if c.modulus > 13 {
			v := c.bits & 8191
			if v > 88 {
				c.bits >>= 13
				c.modulus -= 13
			} else {
				// The value is small enough to take 14 bits
				v = c.bits & 16383
				c.bits >>= 14
				c.modulus -= 14
			}
			if err := c.writePair(output, int(v)); err != nil {
				c.err = err
				return err
			}
		}
	}
	return nil
}

func (c *base91Encoder) writePair(output TextWriter, v int) error {
	if err := c.line.begin(output); err != nil {
		return err
	}
	alphabet := c.encoding.alphabet
	if _, err := output.WriteRune(alphabet.Symbol(v % base91Radix)); err != nil {
		return err
	}
	if _, err := output.WriteRune(alphabet.Symbol(v / base91Radix)); err != nil {
		return err
	}
	c.line.advance(2)
	return nil
}

func (c *base91Encoder) writeTail(output TextWriter) error {
	if err := c.line.begin(output); err != nil {
		return err
	}
	alphabet := c.encoding.alphabet
	v := int(c.bits)
	if _, err := output.WriteRune(alphabet.Symbol(v % base91Radix)); err != nil {
		return err
	}
	if c.modulus > 7 || v > 90 {
		if _, err := output.WriteRune(alphabet.Symbol(v / base91Radix)); err != nil {
			return err
		}
	}
	return nil
}

// -------------------------------------------------------

type base91Decoder struct {
	bitState
	runes    runeScanner
	encoding *Base91Encoding
	options  Options
	value    int
	buf      []byte
}

func (c *base91Decoder) Decode(input []byte, output io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return nil
	}

	final := input == nil
	c.buf = c.buf[:0]
	err := c.runes.scan(input, final, c.decodeRune)
	if err == nil && final {
		c.eof = true
		if c.value != -1 {
			c.buf = append(c.buf, byte(c.bits|uint64(c.value)<<uint(c.modulus)))
			c.value = -1
		}
	}
	if err == nil {
		err = writeBytes(output, c.buf)
	}
	if err != nil {
		c.eof = true
		c.err = err
	}
	return err
}

func (c *base91Decoder) decodeRune(r rune) error {
	d := c.encoding.alphabet.IndexOf(r)
	if d == -1 {
		if !c.options.Has(Relax) && !unicode.IsSpace(r) {
			return newDecodeError(c.encoding.name, "encountered a non-%v character %q", c.encoding.name, r)
		}
		return nil
	}

	if c.value == -1 {
		c.value = d
		return nil
	}

	c.value += d * base91Radix
	c.bits |= uint64(c.value) << uint(c.modulus)
	if c.value&8191 > 88 {
		c.modulus += 13
	} else {
		c.modulus += 14
	}
	for {
		c.buf = append(c.buf, byte(c.bits))
		c.bits >>= 8
		c.modulus -= 8
		if c.modulus <= 7 {
			break
		}
	}
	c.value = -1
	return nil
}
