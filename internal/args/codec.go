package args

import (
	"fmt"
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"strings"
)

const (
	// ErrUnknownEncoding is raised when the requested encoding is not registered
	ErrUnknownEncoding = flags.ErrInvalidTag + 2

	// DefaultEncoding is used when no encoding was given on the command line nor in the configuration
	DefaultEncoding = "base64"
)

// Codec holds the flags shared by the commands which encode or decode data
type Codec struct {
	Encoding string `short:"e" long:"encoding" env:"BASENC_ENCODING" yaml:"encoding" description:"Name of the encoding, see the 'list' command (default: base64)"`
	Options  string `          long:"options"                        yaml:"options"  description:"Comma-separated list of additional options, e.g. 'wrap,relax'"`
	Padding  bool   `          long:"padding"                        yaml:"padding"  description:"Pad the output / require a well-formed padding"`
	Unpad    bool   `          long:"unpad"                          yaml:"unpad"    description:"Do not pad the output. Takes precedence over --padding."`
	Wrap     bool   `short:"w" long:"wrap"                           yaml:"wrap"     description:"Break the output into lines"`
	Indent   bool   `          long:"indent"                         yaml:"indent"   description:"Indent the output (Base16 separates the bytes)"`
	Relax    bool   `short:"r" long:"relax"                          yaml:"relax"    description:"Skip unknown characters and do not validate the final block"`
	Compress bool   `          long:"compress"                       yaml:"compress" description:"Drop redundant trailing symbols (z-base-32 only)"`
	Checksum bool   `          long:"checksum"                       yaml:"checksum" description:"Append / verify a checksum (Base58 only)"`
}

// Resolve finds the selected encoding and combines the option flags
func (c *Codec) Resolve() (enc.Encoding, enc.Options, error) {
	name := strings.TrimSpace(c.Encoding)
	if name == "" {
		name = DefaultEncoding
	}
	encoding, ok := enc.DefaultRegistry().Lookup(name)
	if !ok {
		return nil, enc.None, errors.WithStack(&flags.Error{
			Type: ErrUnknownEncoding,
			Message: fmt.Sprintf("unknown encoding '%s', expected one of: %s", name,
				strings.Join(enc.DefaultRegistry().Names(), ", ")),
		})
	}

	options, err := enc.ParseOptions(c.Options)
	if err != nil {
		return nil, enc.None, err
	}

	flagged := []struct {
		set    bool
		option enc.Options
	}{
		{c.Padding, enc.Padding},
		{c.Unpad, enc.Unpad},
		{c.Wrap, enc.Wrap},
		{c.Indent, enc.Indent},
		{c.Relax, enc.Relax},
		{c.Compress, enc.Compress},
		{c.Checksum, enc.Checksum},
	}
	for _, f := range flagged {
		if f.set {
			options |= f.option
		}
	}

	return encoding, options, nil
}
