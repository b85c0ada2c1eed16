// Package filetype classifies files by MIME type and charset using the
// external file(1) tool. Charset detection is delegated entirely; this package
// only parses the tool's output.
package filetype

import (
	"context"
	"os/exec"
	"strings"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// Info is the parsed result of a MIME probe for a single file.
type Info struct {
	MimeType string
	Charset  string
}

// IsText reports whether the file should be treated as text for encoding and
// EOL cleanup. JSON is text despite its application/ prefix.
func (i Info) IsText() bool {
	if i.Charset == "binary" {
		return false
	}
	if strings.HasPrefix(i.MimeType, "text/") {
		return true
	}
	return i.MimeType == "application/json"
}

// Detect runs `file --mime -b` on path and parses the result.
func Detect(ctx context.Context, path string) (Info, error) {
	out, err := exec.CommandContext(ctx, "file", "--mime", "-b", path).Output()
	if err != nil {
		return Info{}, errors.Wrapf(err, errors.ErrToolRun, "file --mime failed for %s", path)
	}
	info, err := ParseMimeOutput(string(out))
	if err != nil {
		return Info{}, errors.Wrapf(err, errors.ErrToolRun, "unexpected file --mime output for %s", path)
	}
	return info, nil
}

// ParseMimeOutput parses a `file --mime -b` line of the form
// "text/x-c; charset=us-ascii".
func ParseMimeOutput(out string) (Info, error) {
	line := strings.TrimSpace(out)

	mimeType, charsetInfo, ok := strings.Cut(line, "; ")
	if !ok {
		return Info{}, errors.Newf(errors.ErrToolRun, "missing charset section: %q", line)
	}
	key, value, ok := strings.Cut(charsetInfo, "=")
	if !ok || key != "charset" {
		return Info{}, errors.Newf(errors.ErrToolRun, "missing charset value: %q", line)
	}

	return Info{MimeType: mimeType, Charset: value}, nil
}
