package args

import (
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_CodecResolve(t *testing.T) {
	c := &Codec{
		Encoding: "z-base-32",
		Options:  "relax",
		Wrap:     true,
		Compress: true,
	}
	e, o, err := c.Resolve()
	require.NoError(t, err)
	require.Equal(t, enc.ZBase32, e)
	require.Equal(t, enc.Relax|enc.Wrap|enc.Compress, o)
}

func Test_CodecResolveDefaults(t *testing.T) {
	c := &Codec{Encoding: " Base64 "}
	e, o, err := c.Resolve()
	require.NoError(t, err)
	require.Equal(t, enc.Base64, e)
	require.Equal(t, enc.None, o)
}

func Test_CodecResolveUnknownEncoding(t *testing.T) {
	c := &Codec{Encoding: "base85"}
	_, _, err := c.Resolve()
	require.Error(t, err)

	var flagsError *flags.Error
	require.True(t, errors.As(err, &flagsError))
	require.Equal(t, ErrUnknownEncoding, flagsError.Type)
	require.Contains(t, err.Error(), "Base58")
}

func Test_CodecResolveUnknownOption(t *testing.T) {
	c := &Codec{Encoding: "base64", Options: "wrap,shiny"}
	_, _, err := c.Resolve()
	require.Error(t, err)
	require.True(t, enc.IsInvalidConfiguration(err))
}

func Test_CodecResolveEmptyEncoding(t *testing.T) {
	c := &Codec{}
	e, _, err := c.Resolve()
	require.NoError(t, err)
	require.Equal(t, enc.Base64, e)
}
