package enc

import (
	"bytes"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"math/rand"
	"strings"
	"testing"
)

var encoderTest = func() []byte {
	res := []byte("The quick brown fox jumps over the lazy dog. ")
	for i := 0; i < 256; i++ {
		res = append(res, byte(i))
	}
	return res
}()

// testVector checks the encoded form of the data and the properties every encoding must have around it
func testVector(t *testing.T, e Encoding, raw []byte, encoded string, options Options) {
	t.Helper()

	actual := e.GetString(raw, options)
	require.Equal(t, encoded, actual, "encoding error for %v", spew.Sdump(raw))

	decoded, err := e.GetBytes(actual, options)
	require.NoError(t, err)
	require.Equal(t, raw, decoded, "decoding error for %v", actual)

	if options == None {
		require.Equal(t, []byte(encoded), e.EncodeData(raw))
		data, err := e.DecodeData([]byte(encoded))
		require.NoError(t, err)
		require.Equal(t, raw, data)
	}

	require.LessOrEqual(t, len(actual), e.GetMaxCharCount(len(raw), options), "max char count")
	require.LessOrEqual(t, len(decoded), e.GetMaxByteCount(len(actual), options), "max byte count")

	if options.formatted() {
		return
	}

	// Padding operations
	unpadded := e.Unpad(actual)
	repadded := e.Pad(unpadded)
	if e.PrefersPadding() && !options.Has(Unpad) {
		require.Equal(t, actual, repadded)
		require.Equal(t, actual, e.Pad(actual))
	}
	require.True(t, e.IsPadded(repadded))
	require.Zero(t, len(repadded)%e.Padding())
	if !e.CanPad() {
		require.Equal(t, actual, unpadded)
		require.Equal(t, actual, repadded)
	}
	require.Equal(t, unpadded, e.Unpad(unpadded))

	decoded, err = e.GetBytes(unpadded, options&^Padding)
	require.NoError(t, err, "cannot decode unpadded string %v", unpadded)
	require.Equal(t, raw, decoded)

	require.Equal(t, unpadded, e.GetString(raw, options|Unpad), "Unpad is not honored")

	// Efficiency boundaries
	if n := len(unpadded); n > 0 {
		if !options.Has(Compress) {
			ceiling := float32(len(raw)) / float32(n)
			require.LessOrEqual(t, ceiling, e.MaxEfficiency(), "max efficiency violated")
		}
		if n > 1 {
			rawCount := len(raw)
			if options.Has(Checksum) {
				rawCount += base58ChecksumSize
			}
			floor := float32(rawCount) / float32(n-1)
			require.GreaterOrEqual(t, floor, e.MinEfficiency(), "min efficiency violated")
		}
	}
}

func testStringVector(t *testing.T, e Encoding, raw string, encoded string, options Options) {
	t.Helper()
	testVector(t, e, []byte(raw), encoded, options)
}

func roundTrip(t *testing.T, e Encoding, raw []byte, options Options) {
	t.Helper()
	encoded := e.GetString(raw, options)
	decoded, err := e.GetBytes(encoded, options)
	require.NoError(t, err, "%v: cannot decode %q", e.Name(), encoded)
	if !bytes.Equal(raw, decoded) {
		require.Fail(t, "round trip error", "%v with options %v\nexpected:\n%v\nactual:\n%v",
			e.Name(), options, spew.Sdump(raw), spew.Sdump(decoded))
	}
}

func randomRoundTrip(t *testing.T, e Encoding, maxByteCount int, iterations int, options Options) {
	t.Helper()
	rnd := rand.New(rand.NewSource(int64(maxByteCount*iterations) + int64(options)))
	buffer := make([]byte, maxByteCount)
	for i := 0; i < iterations; i++ {
		n := rnd.Intn(maxByteCount + 1)
		data := buffer[:n]
		rnd.Read(data)
		roundTrip(t, e, data, options)
	}
}

// injectWhitespace puts a blank after every few characters of the string
func injectWhitespace(s string, every int) string {
	sb := &strings.Builder{}
	for i, r := range s {
		if i > 0 && i%every == 0 {
			sb.WriteString(" \r\n\t"[i%4 : i%4+1])
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	data, err := Base16.GetBytes(s, Relax)
	require.NoError(t, err)
	return data
}
