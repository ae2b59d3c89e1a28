package enc

import (
	"bufio"
	"bytes"
	"context"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"io"
)

const defaultChunkSize = 1024

// ErrStreamClosed is returned when writing to or reading from a closed stream
var ErrStreamClosed = errors.New("stream is closed")

type flusher interface {
	Flush() error
}

// EncoderStream implements io.WriteCloser. Everything written to the stream is encoded into the
// underlying writer. The final (partial) block is written when the stream is closed, which makes
// `Close()` mandatory. Calling `Close()` on a closed stream will simply succeed without an error.
//
// EncoderStream is not safe for concurrent use.
type EncoderStream struct {
	writer    io.Writer
	buffer    *bufio.Writer
	context   EncoderContext
	owns      bool
	chunkSize int
	closed    bool
	broken    bool
}

func newEncoderStream(w io.Writer, ctx EncoderContext, options Options, chunkSize int) *EncoderStream {
	return &EncoderStream{
		writer:    w,
		buffer:    bufio.NewWriter(w),
		context:   ctx,
		owns:      !options.Has(NoOwnership),
		chunkSize: chunkSize,
	}
}

func (s *EncoderStream) usable() error {
	if s.closed {
		return ErrStreamClosed
	}
	if s.broken {
		return ErrStreamBroken
	}
	return nil
}

// Write encodes the data. Encoded text is buffered and reaches the underlying writer when the buffer
// fills up, on Flush or on Close.
func (s *EncoderStream) Write(p []byte) (int, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.context.Encode(p, s.buffer); err != nil {
		s.broken = true
		return 0, errors.WithStack(err)
	}
	return len(p), nil
}

// WriteContext encodes the data in bounded chunks and flushes the encoded text to the underlying writer
// after every chunk. If the context is cancelled, the stream is left in an undefined state: bytes which
// were already encoded cannot be taken back. Such a stream is marked as broken and refuses further writes.
func (s *EncoderStream) WriteContext(ctx context.Context, p []byte) (int, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}

	written := 0
	for len(p) > 0 {
		if err := ctx.Err(); err != nil {
			s.broken = true
			return written, err
		}

		chunk := p
		if len(chunk) > s.chunkSize {
			chunk = chunk[:s.chunkSize]
		}
		if err := s.context.Encode(chunk, s.buffer); err != nil {
			s.broken = true
			return written, errors.WithStack(err)
		}
		written += len(chunk)
		p = p[len(chunk):]

		if err := ctx.Err(); err != nil {
			s.broken = true
			return written, err
		}
		if err := s.buffer.Flush(); err != nil {
			s.broken = true
			return written, errors.WithStack(err)
		}
	}
	return written, nil
}

// Flush writes the buffered text to the underlying writer. It does not finalize the encoding.
func (s *EncoderStream) Flush() error {
	if err := s.usable(); err != nil {
		return err
	}
	if err := s.buffer.Flush(); err != nil {
		s.broken = true
		return errors.WithStack(err)
	}
	if f, ok := s.writer.(flusher); ok {
		return errors.WithStack(f.Flush())
	}
	return nil
}

// Close finalizes the encoding, flushes the text and closes the underlying writer (unless the stream was
// created with NoOwnership). If the Close has already been called, it will do nothing.
func (s *EncoderStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var result *multierror.Error
	if !s.broken {
		if err := s.context.Encode(nil, s.buffer); err != nil {
			result = multierror.Append(result, errors.WithStack(err))
		} else if err := s.buffer.Flush(); err != nil {
			result = multierror.Append(result, errors.WithStack(err))
		} else if f, ok := s.writer.(flusher); ok {
			if err := f.Flush(); err != nil {
				result = multierror.Append(result, errors.WithStack(err))
			}
		}
	}
	if c, ok := s.writer.(io.Closer); ok && s.owns {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, errors.WithStack(err))
		}
	}
	return result.ErrorOrNil()
}

// Closed will return `true` if Close has been called at least once
func (s *EncoderStream) Closed() bool {
	return s.closed
}

// Broken returns true if a write failed or was cancelled. A broken stream refuses further writes and
// does not finalize the encoding on Close.
func (s *EncoderStream) Broken() bool {
	return s.broken
}

// -------------------------------------------------------

// DecoderStream implements io.ReadCloser. It reads encoded text from the underlying reader and returns
// the decoded bytes. Decoding errors are returned after all bytes decoded before the error were read.
//
// DecoderStream is not safe for concurrent use.
type DecoderStream struct {
	reader  io.Reader
	context DecoderContext
	owns    bool
	chunk   []byte
	decoded bytes.Buffer
	eof     bool
	err     error
	closed  bool
}

func newDecoderStream(r io.Reader, ctx DecoderContext, options Options, chunkSize int) *DecoderStream {
	return &DecoderStream{
		reader:  r,
		context: ctx,
		owns:    !options.Has(NoOwnership),
		chunk:   make([]byte, chunkSize),
	}
}

func (s *DecoderStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	for s.decoded.Len() == 0 {
		if s.err != nil {
			return 0, s.err
		}
		if s.eof {
			return 0, io.EOF
		}
		s.fill()
	}
	return s.decoded.Read(p)
}

func (s *DecoderStream) fill() {
	n, err := s.reader.Read(s.chunk)
	if n > 0 {
		if derr := s.context.Decode(s.chunk[:n], &s.decoded); derr != nil {
			s.err = derr
			return
		}
	}
	if err == io.EOF {
		s.eof = true
		if derr := s.context.Decode(nil, &s.decoded); derr != nil {
			s.err = derr
		}
	} else if err != nil {
		s.err = errors.WithStack(err)
	}
}

// Close closes the underlying reader (unless the stream was created with NoOwnership). If the Close has
// already been called, it will do nothing.
func (s *DecoderStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.reader.(io.Closer); ok && s.owns {
		return errors.WithStack(c.Close())
	}
	return nil
}

// Closed will return `true` if Close has been called at least once
func (s *DecoderStream) Closed() bool {
	return s.closed
}
