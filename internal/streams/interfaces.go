package streams

import (
	"context"
	"io"
)

// BufferSize is the size of the buffers used when copying data between streams
const BufferSize = 16384

// Closed is an interface which defines if a method to check if a stream is closed or not
type Closed interface {
	Closed() bool
}

type UnwrappedReadCloser interface {
	Unwrap() io.ReadCloser
}

type UnwrappedWriteCloser interface {
	Unwrap() io.WriteCloser
}

// ContextWriter is a writer which can abandon a write when the context is cancelled
type ContextWriter interface {
	WriteContext(ctx context.Context, p []byte) (int, error)
}
