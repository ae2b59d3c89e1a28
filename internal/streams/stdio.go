package streams

import (
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"io/ioutil"
	"os"
)

// StdioName is the file name which stands for stdin / stdout
const StdioName = "-"

// Standard streams; replaced in tests
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// keepOpen prevents the standard output from being closed together with the stream writing to it
type keepOpen struct {
	io.Writer
}

func (k keepOpen) Close() error {
	return nil
}

func (k keepOpen) Flush() error {
	if f, ok := k.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// IsStdio returns true if the file name refers to the standard input / output
func IsStdio(name string) bool {
	return name == "" || name == StdioName
}

// IsTerminal returns true if the writer is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// OpenInput opens the named file for reading. `-` (or an empty name) opens the standard input, which is
// never closed.
func OpenInput(name string) (*NamedReader, error) {
	if IsStdio(name) {
		return NewNamedReader(ioutil.NopCloser(Stdin), "stdin"), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v", name)
	}
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file for writing. `-` (or an empty name) writes to the
// standard output, which is never closed.
func OpenOutput(name string) (*NamedWriter, error) {
	if IsStdio(name) {
		return NewNamedWriter(keepOpen{Stdout}, "stdout"), nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create %v", name)
	}
	return NewNamedWriter(f, name), nil
}
