// Package gitauthor commits with explicit author and committer identity,
// overriding whatever the ambient git configuration says.
package gitauthor

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// DefaultTimeSuffix completes a bare date into a full timestamp.
const DefaultTimeSuffix = "T13:00+00"

// Options describe one authored commit.
type Options struct {
	Name  string
	Email string
	// Date is the calendar date, e.g. "2024-03-01"; Time is appended to it.
	Date string
	Time string
	// Amend rewrites HEAD instead of creating a new commit.
	Amend bool
	// ExtraArgs are passed through to git commit.
	ExtraArgs []string
}

// Env returns the GIT_AUTHOR_/GIT_COMMITTER_ overrides for opts on top of the
// current process environment.
func Env(opts Options) []string {
	timeSuffix := opts.Time
	if timeSuffix == "" {
		timeSuffix = DefaultTimeSuffix
	}
	date := opts.Date + timeSuffix

	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+opts.Name,
		"GIT_AUTHOR_EMAIL="+opts.Email,
		"GIT_AUTHOR_DATE="+date,
		"GIT_COMMITTER_NAME="+opts.Name,
		"GIT_COMMITTER_EMAIL="+opts.Email,
		"GIT_COMMITTER_DATE="+date,
	)
}

// Args returns the git argument list for opts.
func Args(opts Options) []string {
	args := []string{"commit"}
	if opts.Amend {
		args = append(args, "--amend", "-C", "HEAD", "--reset-author")
	}
	return append(args, opts.ExtraArgs...)
}

// Commit runs git commit with the identity overrides applied, wiring the
// child to the given streams so interactive editors still work.
func Commit(ctx context.Context, opts Options, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, "git", Args(opts)...)
	cmd.Env = Env(opts)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, errors.ErrToolRun, "git commit failed")
	}
	return nil
}
