package cleanup

import (
	"fmt"

	"github.com/dmlevin/srctidy/pkg/eol"
	"github.com/dmlevin/srctidy/pkg/progress"
	"github.com/dmlevin/srctidy/pkg/style"
)

// EOLResult summarizes one EOL pass.
type EOLResult struct {
	Fixed     int
	AlreadyOK int
	Broken    []Broken
}

// FixEOL normalizes line endings and trailing whitespace in every text file.
// Files with invalid UTF-8 content are collected as broken instead of
// aborting the pass.
func (p *Pipeline) FixEOL() (*EOLResult, error) {
	result := &EOLResult{}

	counter := progress.NewCounter(p.out, "Fixing EOL and trailing whitespace", len(p.Text), progressStep)
	counter.Final = func() string { return style.SuccessStyle.Render("DONE") }

	for _, entry := range p.Text {
		counter.Inc()

		changed, err := eol.FixFile(p.FullPath(entry.Path))
		if err != nil {
			result.Broken = append(result.Broken, Broken{Entry: entry, Err: err})
			continue
		}
		if changed {
			result.Fixed++
		} else {
			result.AlreadyOK++
		}
	}

	counter.Finish()

	fmt.Fprintf(p.out, "    Already OK : %d\n", result.AlreadyOK)
	fmt.Fprintf(p.out, "    Fixed      : %d\n", result.Fixed)
	if len(result.Broken) > 0 {
		fmt.Fprintln(p.out, style.WarningStyle.Render(fmt.Sprintf("    Broken     : %d", len(result.Broken))))
	}

	return result, nil
}
