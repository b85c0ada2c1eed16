package comment

import (
	"os"

	"github.com/dmlevin/srctidy/pkg/errors"
	"github.com/dmlevin/srctidy/pkg/logging"
	"github.com/dmlevin/srctidy/pkg/scan"
)

const tmpSuffix = ".tmp-no-first-comment"

// StripFile rewrites path in place with its leading comment block removed,
// preserving permissions. Returns false when the file has no leading comment.
func StripFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}

	n := LeadingLines(data)
	if n == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	tmpPath := path + tmpSuffix
	if err := os.WriteFile(tmpPath, Strip(data, n, 0), info.Mode().Perm()); err != nil {
		_ = os.Remove(tmpPath)
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path)
	}
	return true, nil
}

// ConvertTree strips the leading comment block from every regular file under
// root (or from root itself when it is a single file) and returns how many
// files changed.
func ConvertTree(root string) (int, error) {
	logger := logging.GetLogger("comment")

	info, err := os.Stat(root)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", root)
	}

	var paths []string
	prefix := ""
	if info.Mode().IsRegular() {
		paths = []string{root}
	} else {
		paths, err = scan.UniquePaths(root, nil)
		if err != nil {
			return 0, err
		}
		prefix = root + "/"
	}

	converted := 0
	for _, path := range paths {
		full := prefix + path
		changed, err := StripFile(full)
		if err != nil {
			return converted, err
		}
		if changed {
			logger.Debug().Str("path", full).Msg("stripped leading comment")
			converted++
		}
	}
	return converted, nil
}
