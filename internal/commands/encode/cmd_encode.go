package encode

import (
	"context"
	"github.com/bokysan/basenc/internal/args"
	"github.com/bokysan/basenc/internal/logging"
	"github.com/bokysan/basenc/internal/streams"
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Command encodes the concatenation of the input files
type Command struct {
	args.Codec `yaml:",inline"`

	Output string `short:"o" long:"output" env:"BASENC_OUTPUT" yaml:"output" description:"Output file, '-' for stdout (default: -)"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Input files, '-' for stdin. Defaults to stdin."`
	} `positional-args:"yes" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{
		Codec: args.Codec{
			Encoding: args.DefaultEncoding,
		},
		Output: streams.StdioName,
	}
}

func (c *Command) Execute(a []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	encoding, options, err := c.Resolve()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.Run(ctx, encoding, options, c.Args.Files)
}

// Run encodes all the files into the configured output. The inputs are encoded as one continuous stream.
// Files which cannot be opened are reported and skipped.
func (c *Command) Run(ctx context.Context, encoding enc.Encoding, options enc.Options, files []string) error {
	if len(files) == 0 {
		files = []string{streams.StdioName}
	}
	log.Debugf("Encoding %v with %v, options: %v", files, encoding, options)

	output, err := streams.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer streams.TryClose(output)

	stream := encoding.CreateEncoder(output, options|enc.NoOwnership)

	var errs error
	var total int64
	for _, name := range files {
		n, err := encodeFile(ctx, stream, name)
		total += n
		if err != nil {
			errs = multierror.Append(errs, err)
			if stream.Broken() || ctx.Err() != nil {
				break
			}
		}
	}

	if err := stream.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "Could not finish encoding to %v", output))
	} else if errs == nil && streams.IsStdio(c.Output) && streams.IsTerminal(streams.Stdout) {
		if _, err := output.Write([]byte{'\n'}); err != nil {
			errs = multierror.Append(errs, errors.WithStack(err))
		}
	}

	if err := output.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	log.Debugf("Encoded %d bytes into %v", total, output)
	return errs
}

func encodeFile(ctx context.Context, stream *enc.EncoderStream, name string) (int64, error) {
	input, err := streams.OpenInput(name)
	if err != nil {
		log.WithError(err).Errorf("Skipping %v: %v", name, err)
		return 0, err
	}
	defer streams.TryClose(input)

	n, err := streams.CopyContext(ctx, stream, input)
	if err != nil {
		return n, errors.Wrapf(err, "Could not encode %v", input)
	}
	log.Tracef("Read %d bytes from %v", n, input)
	return n, nil
}
