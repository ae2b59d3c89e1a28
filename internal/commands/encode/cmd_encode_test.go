package encode

import (
	"bytes"
	"context"
	"github.com/bokysan/basenc/internal/args"
	"github.com/bokysan/basenc/internal/streams"
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "basenc-encode")
	require.NoErrorf(t, err, "Could not create temp dir: %v", err)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(p, []byte(content), 0644))
	return p
}

func Test_EncodeFiles(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	a := writeFile(t, dir, "a.txt", "foo")
	b := writeFile(t, dir, "b.txt", "bar")

	cmd := NewCommand()
	cmd.Output = filepath.Join(dir, "out.txt")
	require.NoError(t, cmd.Run(context.Background(), enc.Base64, enc.None, []string{a, b}))

	data, err := ioutil.ReadFile(cmd.Output)
	require.NoError(t, err)
	require.Equal(t, "Zm9vYmFy", string(data))
}

func Test_EncodeStdio(t *testing.T) {
	oldIn, oldOut := streams.Stdin, streams.Stdout
	defer func() {
		streams.Stdin, streams.Stdout = oldIn, oldOut
	}()

	out := &bytes.Buffer{}
	streams.Stdin = strings.NewReader("foobar")
	streams.Stdout = out

	cmd := NewCommand()
	cmd.Codec = args.Codec{Encoding: "base32", Unpad: true}
	encoding, options, err := cmd.Resolve()
	require.NoError(t, err)

	require.NoError(t, cmd.Run(context.Background(), encoding, options, nil))
	require.Equal(t, "MZXW6YTBOI", out.String())
}

func Test_EncodeMissingFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	a := writeFile(t, dir, "a.txt", "foo")

	cmd := NewCommand()
	cmd.Output = filepath.Join(dir, "out.txt")
	err := cmd.Run(context.Background(), enc.Base16, enc.None, []string{filepath.Join(dir, "missing.txt"), a})
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.txt")

	// The remaining files are still encoded
	data, err := ioutil.ReadFile(cmd.Output)
	require.NoError(t, err)
	require.Equal(t, "666F6F", string(data))
}

func Test_EncodeCancelled(t *testing.T) {
	oldIn, oldOut := streams.Stdin, streams.Stdout
	defer func() {
		streams.Stdin, streams.Stdout = oldIn, oldOut
	}()

	out := &bytes.Buffer{}
	streams.Stdin = strings.NewReader("foobar")
	streams.Stdout = out

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewCommand()
	err := cmd.Run(ctx, enc.Base64, enc.None, []string{streams.StdioName, streams.StdioName})
	require.Error(t, err)
	require.Empty(t, out.String())
}

func Test_EncodeUnknownEncoding(t *testing.T) {
	cmd := NewCommand()
	cmd.Codec.Encoding = "base-nope"
	_, _, err := cmd.Resolve()
	require.Error(t, err)
}
