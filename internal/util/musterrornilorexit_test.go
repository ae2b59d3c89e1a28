package util

import (
	"bou.ke/monkey"
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function which records the exit code. The returned function restores it.
func patchExit(t *testing.T) (*int, func()) {
	seqMutex.Lock()

	exitCode := -1
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
	})
	return &exitCode, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(errors.WithStack(err))

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.Equal(t, 0, *exitCode)
}

func Test_MustErrorNilOrExit_MalformedInput(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	_, err := enc.Base64.GetBytes("!", enc.None)
	MustErrorNilOrExit(errors.Wrap(err, "could not decode"))

	require.Equal(t, ErrMalformedInput, *exitCode)
}

func Test_MustErrorNilOrExit_InvalidConfiguration(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	_, err := enc.NewAlphabet("", true, nil)
	MustErrorNilOrExit(err)

	require.Equal(t, ErrInvalidConfiguration, *exitCode)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}
