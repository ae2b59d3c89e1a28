package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// Options control the encoding and decoding process. Options are bit flags and can be combined.
type Options int

// None selects the canonical form of an encoding
const None Options = 0

const (
	// Padding requests padding when encoding and requires a well-formed padding when decoding
	Padding Options = 1 << iota
	// Unpad suppresses padding. It takes precedence over Padding.
	Unpad
	// Wrap breaks encoded lines at the column width of the encoding
	Wrap
	// Indent is treated as Wrap by most encodings. Base16 additionally separates bytes with spaces.
	Indent
	// Relax makes the decoder skip unknown characters and waives the final block checks
	Relax
	// Compress produces the shortest unambiguous form. Only honored by z-base-32.
	Compress
	// Checksum appends (and verifies) a checksum. Only honored by Base58 (Base58Check).
	Checksum
	// NoOwnership prevents streams from closing the underlying reader or writer
	NoOwnership
)

var optionNames = []struct {
	option Options
	name   string
}{
	{Padding, "padding"},
	{Unpad, "unpad"},
	{Wrap, "wrap"},
	{Indent, "indent"},
	{Relax, "relax"},
	{Compress, "compress"},
	{Checksum, "checksum"},
	{NoOwnership, "no-ownership"},
}

// Has returns true if all of the given flags are set
func (o Options) Has(flags Options) bool {
	return o&flags == flags
}

// Any returns true if at least one of the given flags is set
func (o Options) Any(flags Options) bool {
	return o&flags != 0
}

func (o Options) String() string {
	if o == None {
		return "none"
	}
	var names []string
	rest := o
	for _, n := range optionNames {
		if o&n.option != 0 {
			names = append(names, n.name)
			rest &^= n.option
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", int(rest)))
	}
	return strings.Join(names, ",")
}

// ParseOptions parses a comma- or space-separated list of option names, e.g. "wrap,relax"
func ParseOptions(s string) (Options, error) {
	res := None
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '|' || r == '\t'
	})
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || f == "none" {
			continue
		}
		found := false
		for _, n := range optionNames {
			if n.name == f {
				res |= n.option
				found = true
				break
			}
		}
		if !found {
			return None, errors.WithStack(&ConfigurationError{
				Message: fmt.Sprintf("unknown option '%s'", f),
			})
		}
	}
	return res, nil
}

// effectivePadding resolves the Padding / Unpad precedence. The result tells if the encoder should emit
// padding; `prefers` is the canonical behaviour of the encoding when neither flag is set.
func (o Options) effectivePadding(prefers bool) bool {
	if o&Unpad != 0 {
		return false
	}
	if o&Padding != 0 {
		return true
	}
	return prefers
}

// requiresPadding tells if the decoder should validate the padding
func (o Options) requiresPadding() bool {
	return o&Padding != 0 && o&Unpad == 0
}

func (o Options) formatted() bool {
	return o&(Wrap|Indent) != 0
}
