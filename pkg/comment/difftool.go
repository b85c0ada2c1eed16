package comment

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// Difftool compares two files with their leading comment blocks stripped.
// Both sides are padded with the same number of blank lines so the remaining
// content keeps comparable line numbers. Output goes to out; a non-empty diff
// is not an error.
func Difftool(ctx context.Context, aPath, bPath string, out io.Writer) error {
	aData, err := os.ReadFile(aPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", aPath)
	}
	bData, err := os.ReadFile(bPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", bPath)
	}

	aN := LeadingLines(aData)
	bN := LeadingLines(bData)

	if aN == 0 && bN == 0 {
		return compareFiles(ctx, aPath, bPath, aPath, bPath, out)
	}

	maxN := aN
	if bN > maxN {
		maxN = bN
	}

	aConv, err := writeTemp(Strip(aData, aN, maxN))
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(aConv) }()

	bConv, err := writeTemp(Strip(bData, bN, maxN))
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(bConv) }()

	return compareFiles(ctx, aPath, bPath, aConv, bConv, out)
}

func writeTemp(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "srctidy-difftool-*")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "cannot create temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", errors.Wrap(err, errors.ErrFileWrite, "cannot write temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", errors.Wrap(err, errors.ErrFileWrite, "cannot close temp file")
	}
	return tmp.Name(), nil
}

// compareFiles runs external diff on the converted files, labelling the
// output with the original paths. diff exiting 1 means the files differ,
// which is a result, not a failure.
func compareFiles(ctx context.Context, aPath, bPath, aConv, bConv string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, "diff", "--color=always", aConv, bConv)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() != 0 {
		fmt.Fprintf(out, "%s    ->    %s\n", aPath, bPath)
		_, _ = out.Write(stdout.Bytes())
	}

	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil
	}
	return errors.Wrapf(err, errors.ErrToolRun, "diff failed: %s", stderr.String())
}
