package cleanup

import (
	"fmt"

	"github.com/dmlevin/srctidy/pkg/exebits"
	"github.com/dmlevin/srctidy/pkg/progress"
	"github.com/dmlevin/srctidy/pkg/style"
)

// ExeOptions tune the executable-bit pass.
type ExeOptions struct {
	// RefRoot, when set, classifies by comparing against the same relative
	// path under a reference checkout instead of the suffix tables.
	RefRoot string
	// Verbose lists every fixed file.
	Verbose bool
}

// ExeReport is the outcome of one executable-bit pass.
type ExeReport struct {
	ExeCount      int
	Preconfigured []FileEntry
	KnownNonExe   []FileEntry
	UnknownExt    []FileEntry
	NoExt         []FileEntry
}

// NeedsConfig reports whether files were found that no table or pattern
// covers. Nothing is fixed in that case.
func (r *ExeReport) NeedsConfig() bool {
	return len(r.UnknownExt) > 0 || len(r.NoExt) > 0
}

// FixExe clears wrong executable bits. Files matching the configured exe
// patterns keep their bits; configured nonexe patterns and the suffix/name
// tables mark files for clearing. Anything unclassifiable is reported and
// blocks the fix.
func (p *Pipeline) FixExe(opts ExeOptions) (*ExeReport, error) {
	exeMatcher, err := p.matcher(p.cfg.ExePatterns())
	if err != nil {
		return nil, err
	}
	nonexeMatcher, err := p.matcher(p.cfg.NonExePatterns())
	if err != nil {
		return nil, err
	}
	tables := exebits.NewTables(p.cfg.ExeGroupLists())

	counter := progress.NewCounter(p.out, "Fixing exe permissions", len(p.All), progressStep)
	counter.Final = func() string { return style.SuccessStyle.Render("DONE") }

	var exeList []FileEntry
	for _, entry := range p.All {
		counter.Inc()
		if exebits.HasExeBits(entry.Mode) {
			exeList = append(exeList, entry)
		}
	}
	counter.Finish()

	fmt.Fprintf(p.out, "Exe files: %d\n", len(exeList))

	report := &ExeReport{ExeCount: len(exeList)}

	for _, entry := range exeList {
		if opts.RefRoot != "" {
			refHasExe, found := exebits.ReferenceHasExeBits(opts.RefRoot, entry.Path)
			if found && !refHasExe {
				report.Preconfigured = append(report.Preconfigured, entry)
			}
			continue
		}

		projRel := p.projectRel(entry.Path)
		if exeMatcher.Matches(projRel) {
			continue
		}
		if nonexeMatcher.Matches(projRel) {
			report.Preconfigured = append(report.Preconfigured, entry)
			continue
		}

		switch tables.Classify(entry.Path) {
		case exebits.Keep:
		case exebits.Clear:
			report.KnownNonExe = append(report.KnownNonExe, entry)
		case exebits.UnknownExt:
			report.UnknownExt = append(report.UnknownExt, entry)
		case exebits.NoExt:
			report.NoExt = append(report.NoExt, entry)
		}
	}

	p.printExeReport(report, opts)

	if report.NeedsConfig() {
		return report, nil
	}

	for _, entry := range append(append([]FileEntry{}, report.Preconfigured...), report.KnownNonExe...) {
		if err := exebits.ClearExeBits(p.FullPath(entry.Path), entry.Mode); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (p *Pipeline) printExeReport(report *ExeReport, opts ExeOptions) {
	printList := func(label string, entries []FileEntry) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(p.out, "    %s: %d\n", label, len(entries))
		if opts.Verbose {
			for _, entry := range entries {
				fmt.Fprintf(p.out, "        %s\n", style.MutedStyle.Render(entry.Path))
			}
		}
	}

	printList("Fixed preconfigured non exe files", report.Preconfigured)
	printList("Fixed known non exe extension files", report.KnownNonExe)

	if !report.NeedsConfig() {
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, style.ErrorStyle.Render("ERROR: Some files have executable flag, but it is unclear how to treat those."))
	fmt.Fprintln(p.out, style.ErrorStyle.Render("       Adjust config and repeat."))
	fmt.Fprintln(p.out)

	if len(report.UnknownExt) > 0 {
		fmt.Fprintf(p.out, "    Unknown extension files: %d\n", len(report.UnknownExt))
		for _, entry := range report.UnknownExt {
			fmt.Fprintf(p.out, "        %s\n", style.PathStyle.Render(entry.Path))
		}
	}
	if len(report.NoExt) > 0 {
		fmt.Fprintf(p.out, "    No extension files: %d\n", len(report.NoExt))
		for _, entry := range report.NoExt {
			fmt.Fprintf(p.out, "        %s\n", style.PathStyle.Render(entry.Path))
		}
	}
}
