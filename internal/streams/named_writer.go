package streams

import (
	"fmt"
	"github.com/pkg/errors"
	"io"
)

type flusher interface {
	Flush() error
}

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error. Buffered writers are flushed before they are closed.
type NamedWriter struct {
	io.WriteCloser
	name   string
	closed bool
}

// NewNamedWriter will, unsurprisingly, create a new NamedWriter with a given name
func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloser: wrapped,
		name:        name,
	}
}

// Flush flushes the underlying writer, if it is buffered
func (ns *NamedWriter) Flush() error {
	if f, ok := ns.WriteCloser.(flusher); ok {
		return errors.Wrapf(f.Flush(), "Could not flush %v", ns)
	}
	return nil
}

// Close will flush and close the underlying stream. If the Close has already been called, it will do nothing
func (ns *NamedWriter) Close() error {
	if ns.closed {
		return nil
	}
	ns.closed = true
	if err := ns.Flush(); err != nil {
		TryClose(ns.WriteCloser)
		return err
	}
	return LogClose(ns.WriteCloser)
}

// Closed will return `true` if NamedWriter.Close has been called at least once
func (ns *NamedWriter) Closed() bool {
	return ns.closed
}

func (ns *NamedWriter) String() string {
	result := ns.name

	var s io.WriteCloser = ns
	for {
		t, ok := s.(UnwrappedWriteCloser)
		if !ok {
			break
		}
		u := t.Unwrap()
		if v, ok := u.(fmt.Stringer); ok {
			result += "->" + v.String()
			break
		}
		s = u
	}

	return result
}

// Unwrap returns the embedded io.WriteCloser
func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloser
}
