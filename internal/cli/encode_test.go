package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommand(t *testing.T) {
	c, _, _ := newTestContainer(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "argument", args: []string{"encode", "AA?"}, want: "QUE_\n"},
		{name: "argument tilde", args: []string{"encode", "AA~"}, want: "QUF-\n"},
		{name: "stdin", stdin: "a", args: []string{"encode"}, want: "YQ\n"},
		{name: "empty stdin", args: []string{"encode"}, want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, c, tt.stdin, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEncodeCommand_File(t *testing.T) {
	c, _, _ := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xfb, 0xff}, 0o644))

	stdout, _, err := execute(t, c, "", "encode", "--file", path)

	require.NoError(t, err)
	assert.Equal(t, "-_8\n", stdout)
}

func TestDecodeCommand(t *testing.T) {
	c, _, _ := newTestContainer(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "url-safe", args: []string{"decode", "QUE_"}, want: "AA?"},
		{name: "standard alphabet", args: []string{"decode", "QUE/"}, want: "AA?"},
		{name: "padded", args: []string{"decode", "YQ=="}, want: "a"},
		{name: "stdin with newline", stdin: "QUF-\n", args: []string{"decode"}, want: "AA~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, c, tt.stdin, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestDecodeCommand_Invalid(t *testing.T) {
	c, _, _ := newTestContainer(t)

	_, _, err := execute(t, c, "", "decode", "YQ=")

	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
}

func TestDecodeCommand_Output(t *testing.T) {
	c, _, _ := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "out.bin")

	stdout, _, err := execute(t, c, "", "decode", "--output", path, "--", "-_8")

	require.NoError(t, err)
	assert.Empty(t, stdout)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff}, got)
}
