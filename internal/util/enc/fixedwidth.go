package enc

import (
	"io"
	"unicode"
)

// scheme describes a fixed-width encoding: every symbol carries the same number of bits and
// `bytesPerBlock` input bytes map onto exactly `symbolsPerBlock` symbols.
type scheme struct {
	bitsPerSymbol   uint
	bytesPerBlock   int
	symbolsPerBlock int

	// lineWidth is the column after which Wrap inserts a line break
	lineWidth int
	// indentWraps makes Indent behave as Wrap
	indentWraps bool
	// separator is written between blocks when Indent is set
	separator rune
	// compressible schemes honor the Compress option
	compressible bool
}

func newScheme(bitsPerSymbol uint, bytesPerBlock int, lineWidth int) scheme {
	return scheme{
		bitsPerSymbol:   bitsPerSymbol,
		bytesPerBlock:   bytesPerBlock,
		symbolsPerBlock: bytesPerBlock * 8 / int(bitsPerSymbol),
		lineWidth:       lineWidth,
		indentWraps:     true,
	}
}

func (s *scheme) mask() uint64 {
	return 1<<s.bitsPerSymbol - 1
}

// symbolCount returns the canonical number of symbols needed for the given number of bytes
func (s *scheme) symbolCount(byteCount int) int {
	bits := byteCount * 8
	return (bits + int(s.bitsPerSymbol) - 1) / int(s.bitsPerSymbol)
}

// byteCount returns the number of bytes the given number of symbols decodes to
func (s *scheme) byteCount(symbolCount int, compress bool) int {
	if compress {
		// Smallest byte count whose canonical form needs at least as many symbols
		k := symbolCount * int(s.bitsPerSymbol) / 8
		for s.symbolCount(k) < symbolCount {
			k++
		}
		return k
	}
	return symbolCount * int(s.bitsPerSymbol) / 8
}

func (s *scheme) formatter(options Options) lineFormatter {
	wrap := options.Has(Wrap) || (s.indentWraps && options.Has(Indent))
	var separator rune
	if options.Has(Indent) {
		separator = s.separator
	}
	return newLineFormatter(s.lineWidth, wrap, separator)
}

func shiftRight(v uint64, s int) uint64 {
	if s >= 0 {
		return v >> uint(s)
	}
	return v << uint(-s)
}

// -------------------------------------------------------

// FixedWidthEncoding is the common implementation of Base16, Base32 (and its variants) and Base64
type FixedWidthEncoding struct {
	metadata
	padder
	scheme   scheme
	alphabet *Alphabet
}

func newFixedWidthEncoding(m metadata, p padder, s scheme, alphabet *Alphabet) (*FixedWidthEncoding, error) {
	if alphabet == nil {
		return nil, newConfigurationError("the alphabet of %v encoding is missing", m.name)
	}
	if alphabet.Size() != m.radix {
		return nil, newConfigurationError("the alphabet size of %v encoding should be %d", m.name, m.radix)
	}
	if p.width > 1 && alphabet.IndexOf(p.char) != -1 {
		return nil, newConfigurationError("the padding character '%c' of %v encoding is part of the alphabet", p.char, m.name)
	}
	m.caseSensitive = alphabet.IsCaseSensitive()
	m.efficiency = float32(s.bitsPerSymbol) / 8
	m.minEfficiency = m.efficiency
	m.maxEfficiency = m.efficiency
	return &FixedWidthEncoding{
		metadata: m,
		padder:   p,
		scheme:   s,
		alphabet: alphabet,
	}, nil
}

func mustFixedWidthEncoding(e *FixedWidthEncoding, err error) *FixedWidthEncoding {
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the alphabet of the encoding
func (e *FixedWidthEncoding) Alphabet() *Alphabet {
	return e.alphabet
}

func (e *FixedWidthEncoding) GetString(data []byte, options Options) string {
	return encodeToString(e, data, options)
}

func (e *FixedWidthEncoding) GetBytes(s string, options Options) ([]byte, error) {
	return decodeToBytes(e, []byte(s), options)
}

func (e *FixedWidthEncoding) EncodeData(data []byte) []byte {
	return []byte(e.GetString(data, None))
}

func (e *FixedWidthEncoding) DecodeData(data []byte) ([]byte, error) {
	return decodeToBytes(e, data, None)
}

func (e *FixedWidthEncoding) CreateEncoder(w io.Writer, options Options) *EncoderStream {
	return createEncoder(e, w, options)
}

func (e *FixedWidthEncoding) CreateDecoder(r io.Reader, options Options) *DecoderStream {
	return createDecoder(e, r, options)
}

func (e *FixedWidthEncoding) GetMaxCharCount(byteCount int, options Options) int {
	if byteCount <= 0 {
		return 0
	}
	blocks := (byteCount + e.scheme.bytesPerBlock - 1) / e.scheme.bytesPerBlock
	symbols := blocks * e.scheme.symbolsPerBlock
	f := e.scheme.formatter(options)
	return symbols + f.extra(symbols, e.scheme.symbolsPerBlock)
}

func (e *FixedWidthEncoding) GetMaxByteCount(charCount int, options Options) int {
	if charCount <= 0 {
		return 0
	}
	return (charCount*int(e.scheme.bitsPerSymbol) + 7) / 8
}

func (e *FixedWidthEncoding) compress(options Options) bool {
	return e.scheme.compressible && options.Has(Compress)
}

func (e *FixedWidthEncoding) NewEncoderContext(options Options) EncoderContext {
	ctx := &fixedWidthEncoder{
		encoding: e,
		options:  options,
		pad:      e.CanPad() && options.effectivePadding(e.prefers),
		compress: e.compress(options),
		line:     e.scheme.formatter(options),
		symbols:  make([]int, e.scheme.symbolsPerBlock),
	}
	return ctx
}

func (e *FixedWidthEncoding) NewDecoderContext(options Options) DecoderContext {
	return &fixedWidthDecoder{
		encoding:       e,
		options:        options,
		compress:       e.compress(options),
		requirePadding: e.CanPad() && options.requiresPadding(),
		buf:            make([]byte, e.scheme.bytesPerBlock),
	}
}

// -------------------------------------------------------

// bitState is the accumulator shared by the encoder and decoder state machines
type bitState struct {
	bits    uint64
	modulus int
	eof     bool
	err     error
}

type fixedWidthEncoder struct {
	bitState
	encoding *FixedWidthEncoding
	options  Options
	pad      bool
	compress bool
	line     lineFormatter
	symbols  []int
}

func (c *fixedWidthEncoder) Encode(input []byte, output TextWriter) error {
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return nil
	}

	if input == nil {
		c.eof = true
		if c.modulus != 0 {
			c.err = c.writeFinalBlock(output)
		}
		return c.err
	}

	s := &c.encoding.scheme
	mask := s.mask()
	for _, b := range input {
		// Accumulate data bits
		c.bits = c.bits<<8 | uint64(b)
		c.modulus++

		if c.modulus == s.bytesPerBlock {
			c.modulus = 0

			shift := s.bytesPerBlock * 8
			for i := range c.symbols {
				shift -= int(s.bitsPerSymbol)
				c.symbols[i] = int(c.bits>>uint(shift)) & int(mask)
			}

			if err := c.line.begin(output); err != nil {
				c.err = err
				return err
			}
			if err := c.writeSymbols(output, c.symbols); err != nil {
				c.err = err
				return err
			}
			c.line.advance(s.symbolsPerBlock)
		}
	}
	return nil
}

func (c *fixedWidthEncoder) writeFinalBlock(output TextWriter) error {
	s := &c.encoding.scheme
	mask := s.mask()

	bitCount := c.modulus * 8
	n := s.symbolCount(c.modulus)
	symbols := c.symbols[:n]
	shift := bitCount
	for i := range symbols {
		shift -= int(s.bitsPerSymbol)
		symbols[i] = int(shiftRight(c.bits, shift) & mask)
	}

	if c.compress {
		// Trailing zero symbols can go as long as the symbol count still tells the number of bytes
		shortest := s.symbolCount(c.modulus-1) + 1
		for n > shortest && symbols[n-1] == 0 {
			n--
		}
		symbols = symbols[:n]
	}

	if err := c.line.begin(output); err != nil {
		return err
	}
	if err := c.writeSymbols(output, symbols); err != nil {
		return err
	}
	if c.pad {
		for i := n; i < s.symbolsPerBlock; i++ {
			if _, err := output.WriteRune(c.encoding.char); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *fixedWidthEncoder) writeSymbols(output TextWriter, symbols []int) error {
	alphabet := c.encoding.alphabet
	for _, v := range symbols {
		if _, err := output.WriteRune(alphabet.Symbol(v)); err != nil {
			return err
		}
	}
	return nil
}

// -------------------------------------------------------

type fixedWidthDecoder struct {
	bitState
	runes          runeScanner
	encoding       *FixedWidthEncoding
	options        Options
	compress       bool
	requirePadding bool
	paddingRun     int
	buf            []byte
}

func (c *fixedWidthDecoder) Decode(input []byte, output io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return nil
	}

	final := input == nil
	err := c.runes.scan(input, final, func(r rune) error {
		return c.decodeRune(r, output)
	})
	if err == nil && final {
		c.eof = true
		if c.requirePadding && (c.modulus != 0 || c.paddingRun != 0) {
			err = c.invalidPadding()
		} else {
			err = c.flush(output)
		}
	}
	if err != nil {
		c.eof = true
		c.err = err
	}
	return err
}

func (c *fixedWidthDecoder) decodeRune(r rune, output io.Writer) error {
	e := c.encoding
	s := &e.scheme

	if e.CanPad() && r == e.char {
		if c.requirePadding {
			if err := c.validatePaddingChar(); err != nil {
				return err
			}
		}
		return c.flush(output)
	}

	v := e.alphabet.IndexOf(r)
	if v == -1 {
		if !c.options.Has(Relax) && !unicode.IsSpace(r) {
			return newDecodeError(e.name, "encountered a non-%v character %q", e.name, r)
		}
		return nil
	}

	if c.paddingRun != 0 {
		return c.invalidPadding()
	}

	// Accumulate data bits
	c.bits = c.bits<<s.bitsPerSymbol | uint64(v)
	c.modulus++

	if c.modulus == s.symbolsPerBlock {
		c.modulus = 0
		for i := range c.buf {
			c.buf[i] = byte(c.bits >> uint(8*(s.bytesPerBlock-1-i)))
		}
		return writeBytes(output, c.buf)
	}
	return nil
}

func (c *fixedWidthDecoder) validatePaddingChar() error {
	if c.paddingRun == 0 {
		if c.modulus == 0 {
			return c.invalidPadding()
		}
		c.paddingRun = c.modulus
	}
	c.paddingRun++
	if c.paddingRun == c.encoding.scheme.symbolsPerBlock {
		c.paddingRun = 0
	}
	return nil
}

func (c *fixedWidthDecoder) invalidPadding() error {
	return newDecodeError(c.encoding.name, "invalid padding")
}

// flush decodes the symbols of a partial block
func (c *fixedWidthDecoder) flush(output io.Writer) error {
	n := c.modulus
	if n == 0 {
		return nil
	}
	c.modulus = 0

	e := c.encoding
	s := &e.scheme
	relax := c.options.Has(Relax)

	k := s.byteCount(n, c.compress)
	if !relax && !c.compress && s.symbolCount(k) != n {
		return newDecodeError(e.name, "the final block of %d symbol(s) cannot be decoded", n)
	}

	extra := n*int(s.bitsPerSymbol) - 8*k
	if extra > 0 && !relax && c.bits&(1<<uint(extra)-1) != 0 {
		return newDecodeError(e.name, "the insignificant bits of the last symbol are expected to be zero")
	}

	value := shiftRight(c.bits, extra)
	for i := 0; i < k; i++ {
		c.buf[i] = byte(value >> uint(8*(k-1-i)))
	}
	return writeBytes(output, c.buf[:k])
}
