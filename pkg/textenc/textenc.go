// Package textenc validates UTF-8 content and converts other encodings through
// the external iconv tool. Encoding repair is never attempted here: files that
// iconv cannot convert are reported for manual inspection.
package textenc

import (
	"context"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// tmpSuffix names the sibling file used for atomic conversion.
const tmpSuffix = ".tmp.cleanup"

// CheckUTF8 reports an error if the file content is not valid UTF-8. The error
// carries the byte offset of the first invalid sequence.
func CheckUTF8(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	if utf8.Valid(data) {
		return nil
	}
	return errors.Newf(errors.ErrEncoding, "invalid UTF-8 at byte %d", invalidOffset(data)).
		WithDetail("path", path)
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Probe runs iconv into a throwaway file to check whether the content can be
// converted from charset to UTF-8 at all. A failure means the encoding is
// corrupted or mixed and needs a human.
func Probe(ctx context.Context, path, charset string) error {
	tmp, err := os.CreateTemp("", "srctidy-iconv-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot create temp file")
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	return runIconv(ctx, path, tmpPath, charset)
}

// Convert rewrites the file as UTF-8 in place via a sibling temp file and
// rename.
func Convert(ctx context.Context, path, charset string) error {
	tmpPath := path + tmpSuffix
	if err := runIconv(ctx, path, tmpPath, charset); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path)
	}
	return nil
}

func runIconv(ctx context.Context, src, dst, charset string) error {
	cmd := exec.CommandContext(ctx, "iconv", "-f", charset, "-t", "utf-8", src, "-o", dst)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrEncoding, "iconv cannot convert %s from %s", src, charset)
	}
	return nil
}
