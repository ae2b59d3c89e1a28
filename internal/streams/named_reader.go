package streams

import (
	"fmt"
	"io"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream (usually the file name) which will be returned when outputing the stream with `%v`.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error.
type NamedReader struct {
	io.ReadCloser
	name   string
	closed bool
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloser: wrapped,
		name:       name,
	}
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *NamedReader) Close() error {
	if ns.closed {
		return nil
	}
	ns.closed = true
	return LogClose(ns.ReadCloser)
}

// Closed will return `true` if NamedReader.Close has been called at least once
func (ns *NamedReader) Closed() bool {
	return ns.closed
}

func (ns *NamedReader) String() string {
	result := ns.name

	var s io.ReadCloser = ns
	for {
		t, ok := s.(UnwrappedReadCloser)
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

// Unwrap returns the embedded io.ReadCloser
func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.ReadCloser
}
