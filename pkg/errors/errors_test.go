package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigLoad, "failed to load config")
	assert.Equal(t, ErrConfigLoad, err.Code)
	assert.Equal(t, "[CONFIG_LOAD] failed to load config", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrFileAccess, "cannot read file")
	assert.Equal(t, "[FILE_ACCESS] cannot read file: permission denied", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileAccess, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrFileAccess, "should be %s", "nil"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrScan, "scan failed in %s", "lib")
	target := New(ErrScan, "other message")
	assert.True(t, stderrors.Is(err, target))
	assert.False(t, stderrors.Is(err, New(ErrEncoding, "other")))
}

func TestIsErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(ErrGlobExpand, "bad pattern"))
	assert.True(t, IsErrorCode(wrapped, ErrGlobExpand))
	assert.False(t, IsErrorCode(wrapped, ErrScan))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrGlobExpand))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrEncoding, GetErrorCode(New(ErrEncoding, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrToolRun, "iconv failed").WithDetail("path", "a/b.c")
	assert.Equal(t, "a/b.c", err.Details["path"])
}
