package util

import (
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrMalformedInput is the exit code when the input could not be decoded (EX_DATAERR)
	ErrMalformedInput = 65
	// ErrInvalidConfiguration is the exit code when an encoding could not be set up (EX_CONFIG)
	ErrInvalidConfiguration = 78
	// ErrGeneric is the exit code for all other errors
	ErrGeneric = 99
)

// ExitCode maps the error to the exit code of the application. Error code is unwrapped from `flags.Error`
// object. Decoding and configuration errors of the codecs have their own codes. If it's a different
// kind of error, a generic error code - 99 - is returned
func ExitCode(err error) int {
	var flagsError *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	case enc.IsMalformedInput(err):
		return ErrMalformedInput
	case enc.IsInvalidConfiguration(err):
		return ErrInvalidConfiguration
	default:
		return ErrGeneric
	}
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned by
// ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		// Help was requested, flags already printed it
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
