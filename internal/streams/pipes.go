package streams

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// CopyContext reads up to `BufferSize` data from the input stream and writes it down to the output stream
// until the input is exhausted or the context is cancelled. Writers implementing ContextWriter get the
// context passed along, so they can abandon the write half-way.
func CopyContext(ctx context.Context, w io.Writer, r io.Reader) (int64, error) {
	cw, withContext := w.(ContextWriter)
	buf := make([]byte, BufferSize)

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			var wn int
			var err error
			if withContext {
				wn, err = cw.WriteContext(ctx, buf[:n])
			} else {
				wn, err = w.Write(buf[:n])
			}
			written += int64(wn)
			if err != nil {
				return written, err
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}

		if readErr == io.EOF {
			return written, nil
		} else if readErr != nil {
			return written, errors.WithStack(readErr)
		}
	}
}

// TryClose closes a stream and just reports to log if it fails
func TryClose(closer io.Closer) {
	if closer == nil {
		return
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return
		}
	}

	if err := closer.Close(); err != nil && !errors.Is(err, os.ErrClosed) && !strings.Contains(err.Error(), "file already closed") {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close stream: %v", err)
	}
}

// LogClose closes the stream and logs the error, if any
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close %v: %v", closer, err)
		return err
	}
	log.Tracef("%v successfully closed", closer)
	return nil
}
