package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// ErrStreamBroken is returned by streams which were cancelled or failed earlier. Such streams cannot be resumed.
var ErrStreamBroken = errors.New("stream is broken and cannot be used anymore")

// ConfigurationError is raised when an encoding or an alphabet cannot be constructed
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Message
}

// DecodeError is raised when the encoded input is malformed
type DecodeError struct {
	Encoding string
	Message  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed %v input: %v", e.Encoding, e.Message)
}

func newDecodeError(encoding string, format string, args ...interface{}) error {
	return errors.WithStack(&DecodeError{
		Encoding: encoding,
		Message:  fmt.Sprintf(format, args...),
	})
}

func newConfigurationError(format string, args ...interface{}) error {
	return errors.WithStack(&ConfigurationError{
		Message: fmt.Sprintf(format, args...),
	})
}

// IsMalformedInput returns true if the error (or any error it wraps) is a DecodeError
func IsMalformedInput(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsInvalidConfiguration returns true if the error (or any error it wraps) is a ConfigurationError
func IsInvalidConfiguration(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}
