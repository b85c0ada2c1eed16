// Package cleanup orchestrates the source-tree cleanup passes: collecting
// files, classifying them by MIME type, and applying encoding, EOL, and
// executable-bit fixes.
package cleanup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/dmlevin/srctidy/pkg/config"
	"github.com/dmlevin/srctidy/pkg/errors"
	"github.com/dmlevin/srctidy/pkg/filetype"
	"github.com/dmlevin/srctidy/pkg/logging"
	"github.com/dmlevin/srctidy/pkg/pathmatch"
	"github.com/dmlevin/srctidy/pkg/progress"
	"github.com/dmlevin/srctidy/pkg/scan"
	"github.com/dmlevin/srctidy/pkg/style"
)

// progressStep throttles the per-file progress line updates.
const progressStep = 10

// FileEntry is one collected file with its stat mode and, after a type scan,
// its MIME classification.
type FileEntry struct {
	// Path is relative to the pipeline target, or absolute in single-file
	// mode.
	Path string
	Mode os.FileMode
	Type filetype.Info
}

// Broken pairs a file with the error that disqualified it.
type Broken struct {
	Entry FileEntry
	Err   error
}

// Pipeline carries the state shared by the cleanup passes over one target.
type Pipeline struct {
	// Target is the resolved absolute path of the file or tree to clean.
	Target string
	// IsFile is set when Target is a single file rather than a tree.
	IsFile bool
	// ProjectRoot anchors the configured path patterns.
	ProjectRoot string

	cfg *config.Config
	out io.Writer

	// Files is the enumerated relative path list.
	Files []string
	// All, Text, Rest are filled by ScanTypes.
	All  []FileEntry
	Text []FileEntry
	Rest []FileEntry
	// MimeCounts tallies files per MIME type.
	MimeCounts map[string]int
}

// New resolves target and projectRoot and prepares a pipeline writing
// human-readable progress to out.
func New(target, projectRoot string, cfg *config.Config, out io.Writer) (*Pipeline, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", target)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", target)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target)
	}

	if projectRoot == "" {
		projectRoot, err = os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot get working directory")
		}
	}
	rootAbs, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve project root %s", projectRoot)
	}
	rootAbs, err = filepath.EvalSymlinks(rootAbs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve project root %s", projectRoot)
	}

	return &Pipeline{
		Target:      abs,
		IsFile:      !info.IsDir(),
		ProjectRoot: rootAbs,
		cfg:         cfg,
		out:         out,
	}, nil
}

// FullPath resolves a collected relative path back to an absolute one.
func (p *Pipeline) FullPath(rel string) string {
	if p.IsFile {
		return rel
	}
	return filepath.Join(p.Target, rel)
}

// projectRel maps a collected path into the project-root-relative convention
// the configured matchers use.
func (p *Pipeline) projectRel(rel string) string {
	r, err := filepath.Rel(p.ProjectRoot, p.FullPath(rel))
	if err != nil {
		return rel
	}
	return r
}

// matcher compiles a configured pattern list against the project root.
func (p *Pipeline) matcher(patterns []string) (*pathmatch.Matcher, error) {
	return pathmatch.FromRoot(p.ProjectRoot, patterns)
}

// Collect enumerates the target into Files.
func (p *Pipeline) Collect() error {
	line := progress.NewLine(p.out)
	line.Update("Collecting files: ...")

	if p.IsFile {
		p.Files = []string{p.Target}
	} else {
		files, err := scan.UniquePaths(p.Target, nil)
		if err != nil {
			line.Done("Collecting files: failed")
			return err
		}
		p.Files = files
	}

	line.Done(fmt.Sprintf("Collecting files: %d", len(p.Files)))
	return nil
}

// ScanTypes stats every collected file and, when withMime is set, probes its
// MIME type and splits the set into text and rest, honoring the configured
// ignore patterns.
func (p *Pipeline) ScanTypes(ctx context.Context, withMime bool) error {
	logger := logging.GetLogger("cleanup")

	ignore, err := p.matcher(p.cfg.IgnorePatterns())
	if err != nil {
		return err
	}

	counter := progress.NewCounter(p.out, "Scanning file types", len(p.Files), progressStep)
	counter.Final = func() string {
		return fmt.Sprintf("%d text files", len(p.Text))
	}

	p.MimeCounts = make(map[string]int)

	for _, rel := range p.Files {
		counter.Inc()

		full := p.FullPath(rel)
		info, err := os.Stat(full)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", rel)
		}
		entry := FileEntry{Path: rel, Mode: info.Mode()}

		if withMime {
			mime, err := filetype.Detect(ctx, full)
			if err != nil {
				return err
			}
			entry.Type = mime
			p.MimeCounts[mime.MimeType]++

			if !ignore.Matches(p.projectRel(rel)) && mime.IsText() {
				p.Text = append(p.Text, entry)
			} else {
				p.Rest = append(p.Rest, entry)
			}
		}

		p.All = append(p.All, entry)
	}

	counter.Finish()

	fmt.Fprintf(p.out, "    File count: %d\n", len(p.All))
	if withMime {
		fmt.Fprintf(p.out, "        text : %d\n", len(p.Text))
		fmt.Fprintf(p.out, "        rest : %d\n", len(p.Rest))
	}
	logger.Debug().Int("files", len(p.All)).Int("text", len(p.Text)).Msg("type scan complete")

	return nil
}

// PrintMimeCounts writes the per-MIME-type tally.
func (p *Pipeline) PrintMimeCounts() {
	types := make([]string, 0, len(p.MimeCounts))
	longest := 0
	for mimeType := range p.MimeCounts {
		types = append(types, mimeType)
		if len(mimeType) > longest {
			longest = len(mimeType)
		}
	}
	sort.Strings(types)

	fmt.Fprintf(p.out, "\n    %s\n", style.HeadingStyle.Render(fmt.Sprintf("Mime types: %d", len(types))))
	for _, mimeType := range types {
		fmt.Fprintf(p.out, "        %-*s : %d\n", longest, mimeType, p.MimeCounts[mimeType])
	}
}
