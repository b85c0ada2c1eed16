package comment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Mode
	}{
		{name: "empty", in: "", want: ModeNone},
		{name: "hash", in: "# copyright\nx = 1\n", want: ModeHash},
		{name: "shebang", in: "#!/bin/sh\necho hi\n", want: ModeHash},
		{name: "slash", in: "// copyright\nint x;\n", want: ModeSlash},
		{name: "block", in: "/* copyright */\nint x;\n", want: ModeBlock},
		{name: "blank lines first", in: "\n\n// hi\n", want: ModeSlash},
		{name: "code first", in: "int x;\n// later\n", want: ModeNone},
		{name: "indented comment", in: "   # indented\n", want: ModeHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMode([]byte(tt.in)))
		})
	}
}

func TestLeadingLinesHash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "single line", in: "# a\nx = 1\n", want: 1},
		{name: "multi line", in: "# a\n# b\nx = 1\n", want: 2},
		{name: "one embedded blank run", in: "# a\n\n# b\nx = 1\n", want: 3},
		{name: "second blank run stops the block", in: "# a\n\n# b\n\n# not counted\n", want: 3},
		{name: "trailing blank not counted", in: "# a\n\nx = 1\n", want: 1},
		{name: "whole file comment", in: "# a\n# b\n", want: 2},
		{name: "no comment", in: "x = 1\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeadingLines([]byte(tt.in)))
		})
	}
}

func TestLeadingLinesSlash(t *testing.T) {
	in := "// a\n// b\n\n// c\nint x;\n"
	assert.Equal(t, 4, LeadingLines([]byte(in)))
}

func TestLeadingLinesBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "single line block", in: "/* a */\nint x;\n", want: 1},
		{name: "multi line block", in: "/*\n * a\n */\nint x;\n", want: 3},
		{name: "leading blanks before block", in: "\n/* a */\nint x;\n", want: 2},
		{name: "begin not at BOL", in: "int x; /* a */\n", want: 0},
		{name: "end not at EOL", in: "/* a */ int x;\n", want: 0},
		{name: "unterminated", in: "/*\n * a\nint x;\n", want: 0},
		{name: "no block", in: "int x;\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeadingLines([]byte(tt.in)))
		})
	}
}

func TestStrip(t *testing.T) {
	in := []byte("# a\n# b\ncode\n")

	assert.Equal(t, "code\n", string(Strip(in, 2, 0)))
	assert.Equal(t, "\n\ncode\n", string(Strip(in, 2, 2)))
	assert.Equal(t, "# a\n# b\ncode\n", string(Strip(in, 0, 0)))
	// removing more lines than exist leaves nothing but the padding
	assert.Equal(t, "\n", string(Strip(in, 10, 1)))
}

func TestStripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.py")
	require.NoError(t, os.WriteFile(path, []byte("# license\n# blob\n\nprint(1)\n"), 0o755))

	changed, err := StripFile(path)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\nprint(1)\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestStripFileNoComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.py")
	require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0o644))

	changed, err := StripFile(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestConvertTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "a.c"), []byte("/* hdr */\nint x;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain.txt"), []byte("no comment\n"), 0o644))

	converted, err := ConvertTree(root)
	require.NoError(t, err)
	assert.Equal(t, 1, converted)

	data, err := os.ReadFile(filepath.Join(root, "src", "a.c"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(data))
}

func TestConvertTreeSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.sh")
	require.NoError(t, os.WriteFile(path, []byte("# hdr\necho hi\n"), 0o644))

	converted, err := ConvertTree(path)
	require.NoError(t, err)
	assert.Equal(t, 1, converted)
}
