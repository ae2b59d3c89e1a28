package enc

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

const newLine = "\n"

// metadata carries the descriptive properties every encoding exposes
type metadata struct {
	name          string
	radix         int
	efficiency    float32
	minEfficiency float32
	maxEfficiency float32
	caseSensitive bool
}

func (m *metadata) Name() string {
	return m.name
}

func (m *metadata) String() string {
	return m.name
}

func (m *metadata) Radix() int {
	return m.radix
}

func (m *metadata) Efficiency() float32 {
	return m.efficiency
}

func (m *metadata) MinEfficiency() float32 {
	return m.minEfficiency
}

func (m *metadata) MaxEfficiency() float32 {
	return m.maxEfficiency
}

func (m *metadata) IsCaseSensitive() bool {
	return m.caseSensitive
}

// -------------------------------------------------------

// padder implements the padding operations on encoded strings
type padder struct {
	width   int
	char    rune
	left    bool
	prefers bool
}

func (p *padder) Padding() int {
	if p.width < 1 {
		return 1
	}
	return p.width
}

func (p *padder) PrefersPadding() bool {
	return p.prefers
}

func (p *padder) CanPad() bool {
	return p.width > 1
}

// Pad pads the string up to the next multiple of Padding(). Strings which are already padded are returned as-is.
func (p *padder) Pad(s string) string {
	if !p.CanPad() {
		return s
	}
	n := utf8.RuneCountInString(s)
	width := (n + p.width - 1) / p.width * p.width
	if width == n {
		return s
	}
	fill := strings.Repeat(string(p.char), width-n)
	if p.left {
		return fill + s
	}
	return s + fill
}

// Unpad trims the padding characters from the padded side of the string
func (p *padder) Unpad(s string) string {
	if !p.CanPad() {
		return s
	}
	if p.left {
		return strings.TrimLeft(s, string(p.char))
	}
	return strings.TrimRight(s, string(p.char))
}

func (p *padder) IsPadded(s string) bool {
	return utf8.RuneCountInString(s)%p.Padding() == 0
}

// -------------------------------------------------------

// runeScanner splits chunked UTF-8 input into runes. Incomplete sequences at the end of a chunk are
// carried over to the next one.
type runeScanner struct {
	pending []byte
}

func (r *runeScanner) scan(input []byte, final bool, fn func(rune) error) error {
	if len(r.pending) > 0 {
		joined := make([]byte, 0, len(r.pending)+len(input))
		joined = append(joined, r.pending...)
		input = append(joined, input...)
		r.pending = nil
	}
	for len(input) > 0 {
		c := rune(input[0])
		size := 1
		if c >= utf8.RuneSelf {
			if !final && !utf8.FullRune(input) {
				r.pending = append([]byte(nil), input...)
				return nil
			}
			c, size = utf8.DecodeRune(input)
		}
		if err := fn(c); err != nil {
			return err
		}
		input = input[size:]
	}
	return nil
}

// -------------------------------------------------------

// lineFormatter inserts line breaks and block separators into the encoded output
type lineFormatter struct {
	width     int
	wrap      bool
	separator rune
	position  int
}

func newLineFormatter(width int, wrap bool, separator rune) lineFormatter {
	return lineFormatter{
		width:     width,
		wrap:      wrap && width > 0,
		separator: separator,
	}
}

// begin is called before a block of symbols is written
func (l *lineFormatter) begin(output TextWriter) error {
	if l.wrap && l.position >= l.width {
		l.position = 0
		_, err := output.WriteString(newLine)
		return err
	}
	if l.separator != 0 && l.position > 0 {
		_, err := output.WriteRune(l.separator)
		return err
	}
	return nil
}

func (l *lineFormatter) advance(symbols int) {
	l.position += symbols
}

// extra returns the upper bound of characters the formatter adds to the given number of symbols written
// in blocks of the given size
func (l *lineFormatter) extra(symbols, blockSize int) int {
	if symbols == 0 {
		return 0
	}
	res := 0
	if l.wrap {
		res += (symbols - 1) / l.width * len(newLine)
	}
	if l.separator != 0 {
		res += (symbols + blockSize - 1) / blockSize
	}
	return res
}

// -------------------------------------------------------

type contextFactory interface {
	NewEncoderContext(options Options) EncoderContext
	NewDecoderContext(options Options) DecoderContext
}

func encodeToString(f contextFactory, data []byte, options Options) string {
	sb := &strings.Builder{}
	ctx := f.NewEncoderContext(options)
	if len(data) > 0 {
		_ = ctx.Encode(data, sb)
	}
	_ = ctx.Encode(nil, sb)
	return sb.String()
}

func decodeToBytes(f contextFactory, data []byte, options Options) ([]byte, error) {
	dst := &bytes.Buffer{}
	ctx := f.NewDecoderContext(options)
	if len(data) > 0 {
		if err := ctx.Decode(data, dst); err != nil {
			return nil, err
		}
	}
	if err := ctx.Decode(nil, dst); err != nil {
		return nil, err
	}
	if dst.Len() == 0 {
		return []byte{}, nil
	}
	return dst.Bytes(), nil
}

func createEncoder(f contextFactory, w io.Writer, options Options) *EncoderStream {
	return newEncoderStream(w, f.NewEncoderContext(options), options, defaultChunkSize)
}

func createDecoder(f contextFactory, r io.Reader, options Options) *DecoderStream {
	return newDecoderStream(r, f.NewDecoderContext(options), options, defaultChunkSize)
}

// writeBytes writes the whole buffer, converting short writes into errors
func writeBytes(output io.Writer, p []byte) error {
	n, err := output.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}
