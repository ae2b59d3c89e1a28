package enc

import (
	"github.com/stretchr/testify/require"
	"math/big"
	"strings"
	"testing"
)

var base58Vectors = []struct {
	raw     string
	encoded string
}{
	{"", ""},
	{"00", "1"},
	{"00 00 00 00 00 00 00 00", "11111111"},
	{"48656C6C6F20576F726C64", "JxF12TrwUP45BMd"},
	{"61", "2g"},
	{"62 62 62", "a3gV"},
	{"63 63 63", "aPEr"},
	{"73 69 6D 70 6C 79 20 61 20 6C 6F 6E 67 20 73 74 72 69 6E 67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00 EB 15 23 1D FC EB 60 92 58 86 B6 7D 06 52 99 92 59 15 AE B1 72 C0 66 47", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"1111111111", "2vgLdhi"},
	{"00 01", "12"},
	{"00 00 01 02 03", "11Ldp"},
	{"009C1CA2CBA6422D3988C735BB82B5C880B0441856B9B0910F", "1FESiat4YpNeoYhW3Lp7sW1T6WydcW7vcE"},
	{"000860C220EBBAF591D40F51994C4E2D9C9D88168C33E761F6", "1mJKRNca45GU2JQuHZqZjHFNktaqAs7gh"},
	{"00313E1F905554E7AE2580CD36F86D0C8088382C9E1951C44D010203", "17f1hgANcLE5bQhAGRgnBaLTTs23rK4VGVKuFQ"},
	{"FFEEDDCCBBAA", "3CSwN61PP"},
	{"000102030405060708090A0B0C0D0E0F000102030405060708090A0B0C0D0E0F", "1thX6LZfHDZZKUs92febWaf4WJZnsKRiVwJusXxB7L"},
	{"51 6B 6F CD 0F", "ABnLTmg"},
	{"BF 4F 89 00 1E 67 02 74 DD", "3SEo3LWLoPntC"},
	{"57 2E 47 94", "3EFU7m"},
	{"EC AC 89 CA D9 39 23 C0 23 21", "EJDM8drfXA6uyA"},
	{"00000000000000000000123456789ABCDEF0", "111111111143c9JGph3DZ"},
	{"10 C8 51 1E", "Rt5zm"},
}

func Test_Base58Vectors(t *testing.T) {
	for _, tt := range base58Vectors {
		t.Run(tt.encoded, func(t *testing.T) {
			testVector(t, Base58, hexBytes(t, tt.raw), tt.encoded, None)
		})
	}
}

func Test_Base58TextVectors(t *testing.T) {
	testStringVector(t, Base58, "Hello World", "JxF12TrwUP45BMd", None)
	testStringVector(t, Base58, "1234598760", "3mJr7AoUXx2Wqd", None)
	testStringVector(t, Base58, "abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f", None)
	testStringVector(t, Base58, "abc", "ZiCa", None)
	testStringVector(t, Base58, "\x00abc", "1ZiCa", None)
	testStringVector(t, Base58, "\x00\x00abc", "11ZiCa", None)
	testStringVector(t, Base58, "\x00\x00\x00abc", "111ZiCa", None)
	testStringVector(t, Base58, "\x00\x00\x00\x00abc", "1111ZiCa", None)
}

func Test_Base58Metadata(t *testing.T) {
	require.Equal(t, "Base58", Base58.Name())
	require.Equal(t, 58, Base58.Radix())
	require.Equal(t, 1, Base58.Padding())
	require.False(t, Base58.CanPad())
	require.False(t, Base58.PrefersPadding())
	require.True(t, Base58.IsCaseSensitive())
	require.True(t, Base58.MinEfficiency() <= Base58.Efficiency())
	require.True(t, Base58.Efficiency() <= Base58.MaxEfficiency())
}

func Test_Base58Check(t *testing.T) {
	payload := hexBytes(t, "00010966776006953D5567439E5E39F86A0D273BEE")
	testVector(t, Base58, payload, "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", Checksum)

	// Without the checksum option, the checksum stays in the data
	decoded, err := Base58.GetBytes("16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", None)
	require.NoError(t, err)
	require.Len(t, decoded, len(payload)+4)
	require.Equal(t, payload, decoded[:len(payload)])

	// A single changed character breaks the checksum
	_, err = Base58.GetBytes("16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvN", Checksum)
	require.Error(t, err)
	require.True(t, IsMalformedInput(err))
	require.Contains(t, err.Error(), "checksum")

	_, err = Base58.GetBytes("1", Checksum)
	require.True(t, IsMalformedInput(err))

	empty := Base58.GetString(nil, Checksum)
	require.NotEmpty(t, empty)
	decoded, err = Base58.GetBytes(empty, Checksum)
	require.NoError(t, err)
	require.Empty(t, decoded)

	randomRoundTrip(t, Base58, 32, 200, Checksum)
}

func Test_Base58Malformed(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "Jx+F"} {
		_, err := Base58.GetBytes(s, None)
		require.Error(t, err, s)
		require.True(t, IsMalformedInput(err), s)
	}

	decoded, err := Base58.GetBytes("Jx+F1 2TrwU-P45BMd", Relax)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello World"), decoded)

	decoded, err = Base58.GetBytes(injectWhitespace("JxF12TrwUP45BMd", 4), None)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello World"), decoded)
}

func Test_Base58IgnoresFormatting(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i + 1)
	}
	require.Equal(t, Base58.GetString(data, None), Base58.GetString(data, Wrap|Indent|Padding))
	require.NotContains(t, Base58.GetString(data, Wrap), "\n")
}

func Test_Base58BigInt(t *testing.T) {
	var numeric NumericEncoding = Base58

	tests := []struct {
		value   int64
		encoded string
	}{
		{0, "1"},
		{57, "z"},
		{58, "21"},
		{0x61, "2g"},
	}
	for _, tt := range tests {
		s, err := numeric.GetStringBigInt(big.NewInt(tt.value), None)
		require.NoError(t, err)
		require.Equal(t, tt.encoded, s)

		v, err := numeric.GetBigInt(tt.encoded, None)
		require.NoError(t, err)
		require.Equal(t, 0, big.NewInt(tt.value).Cmp(v), "%v != %v", tt.value, v)
	}

	_, err := numeric.GetStringBigInt(big.NewInt(-1), None)
	require.True(t, IsInvalidConfiguration(err))

	_, err = numeric.GetBigInt("0", None)
	require.True(t, IsMalformedInput(err))
}

func Test_RippleBase58(t *testing.T) {
	translate := func(s string) string {
		return strings.Map(func(r rune) rune {
			return RippleBase58.Alphabet().Symbol(Base58.Alphabet().IndexOf(r))
		}, s)
	}

	require.Equal(t, "r", RippleBase58.GetString([]byte{0}, None))
	for _, tt := range base58Vectors {
		testVector(t, RippleBase58, hexBytes(t, tt.raw), translate(tt.encoded), None)
	}
	randomRoundTrip(t, RippleBase58, 64, 100, None)
}

func Test_Base58RandomRoundTrip(t *testing.T) {
	randomRoundTrip(t, Base58, 32, 500, None)
	randomRoundTrip(t, Base58, 200, 50, None)

	// Runs of zero bytes
	for i := 0; i < 10; i++ {
		data := make([]byte, i)
		roundTrip(t, Base58, data, None)
		roundTrip(t, Base58, append(data, 1, 0), None)
	}
}

func Test_Base58CustomAlphabet(t *testing.T) {
	_, err := NewBase58(MustAlphabet(cb58[1:], true, nil))
	require.True(t, IsInvalidConfiguration(err))

	e, err := NewBase58(MustAlphabet(cb58Ripple, true, nil))
	require.NoError(t, err)
	require.Equal(t, RippleBase58.GetString([]byte("abc"), None), e.GetString([]byte("abc"), None))
}
