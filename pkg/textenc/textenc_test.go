package textenc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlevin/srctidy/pkg/errors"
)

func TestCheckUTF8Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello wörld\n"), 0644))

	assert.NoError(t, CheckUTF8(path))
}

func TestCheckUTF8Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	// 0xFF is never valid in UTF-8.
	require.NoError(t, os.WriteFile(path, []byte{'a', 'b', 0xFF, 'c'}, 0644))

	err := CheckUTF8(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
	assert.Contains(t, err.Error(), "byte 2")
}

func TestCheckUTF8MissingFile(t *testing.T) {
	err := CheckUTF8(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestInvalidOffset(t *testing.T) {
	assert.Equal(t, -1, invalidOffset([]byte("plain ascii")))
	assert.Equal(t, 0, invalidOffset([]byte{0xFF}))
	assert.Equal(t, 3, invalidOffset([]byte{'x', 0xC3, 0xA9, 0xFE}))
}
