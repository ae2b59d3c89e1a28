package decode

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

// Command decodes the input files. Every file is decoded on its own, so each of them must hold a
// complete encoded text.
type Command struct {
	args.Codec `yaml:",inline"`

	Output          string `short:"o" long:"output"            env:"BASENC_OUTPUT" yaml:"output"            description:"Output file, '-' for stdout (default: -)"`
	ContinueOnError bool   `short:"k" long:"continue-on-error"                     yaml:"continue-on-error" description:"Decode the remaining files when one of them is malformed"`

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

// Run decodes the files into the configured output. Bytes decoded before an error was found are kept.
func (c *Command) Run(ctx context.Context, encoding enc.Encoding, options enc.Options, files []string) error {
	if len(files) == 0 {
		files = []string{streams.StdioName}
	}
	log.Debugf("Decoding %v with %v, options: %v", files, encoding, options)

	output, err := streams.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer streams.TryClose(output)

	var errs error
	var total int64
	for _, name := range files {
		n, err := decodeFile(ctx, encoding, options, output, name)
		total += n
		if err != nil {
			errs = multierror.Append(errs, err)
			if !c.ContinueOnError || ctx.Err() != nil {
				break
			}
		}
	}

	if err := output.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	log.Debugf("Decoded %d bytes into %v", total, output)
	return errs
}

func decodeFile(ctx context.Context, encoding enc.Encoding, options enc.Options, output *streams.NamedWriter, name string) (int64, error) {
	input, err := streams.OpenInput(name)
	if err != nil {
		return 0, err
	}
	stream := encoding.CreateDecoder(input, options&^enc.NoOwnership)
	defer streams.TryClose(stream)

	n, err := streams.CopyContext(ctx, output, stream)
	if err != nil {
		log.WithError(err).Debugf("Decoding %v stopped after %d bytes", input, n)
		return n, errors.Wrapf(err, "Could not decode %v", input)
	}
	log.Tracef("Decoded %d bytes from %v", n, input)
	return n, nil
}
