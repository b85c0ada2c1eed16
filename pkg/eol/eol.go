// Package eol normalizes line endings to Unix format and strips trailing
// whitespace.
package eol

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// trailing characters stripped from each line: space, tab, LF, CR, vertical
// tab. Form feed (\x0c) is deliberately left alone.
const trailingCutset = " \t\n\r\x0b"

// Fix rewrites data so every line ends in a single LF with no trailing
// whitespace. A missing final newline is added. Empty input stays empty.
func Fix(data []byte) []byte {
	if len(data) == 0 {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + 1)

	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i+1], data[i+1:]
		} else {
			line, data = data, nil
		}
		buf.Write(bytes.TrimRight(line, trailingCutset))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// FixFile applies Fix to the file in place, preserving permissions, and
// reports whether the content changed. Files that are not valid UTF-8 are
// refused; they need encoding cleanup first.
func FixFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	if !utf8.Valid(data) {
		return false, errors.Newf(errors.ErrEncoding, "invalid UTF-8 content").WithDetail("path", path)
	}

	fixed := Fix(data)
	if bytes.Equal(fixed, data) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return true, nil
}
