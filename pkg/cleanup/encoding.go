package cleanup

import (
	"context"
	"fmt"

	"github.com/dmlevin/srctidy/pkg/progress"
	"github.com/dmlevin/srctidy/pkg/style"
	"github.com/dmlevin/srctidy/pkg/textenc"
)

// FindNonUTF checks every text file for valid UTF-8 and returns the failures.
func (p *Pipeline) FindNonUTF() ([]Broken, error) {
	var nonUTF []Broken

	counter := progress.NewCounter(p.out, "Detecting non UTF-8", len(p.Text), progressStep)
	counter.Final = func() string {
		return fmt.Sprintf("%d", len(nonUTF))
	}

	for _, entry := range p.Text {
		counter.Inc()
		if err := textenc.CheckUTF8(p.FullPath(entry.Path)); err != nil {
			nonUTF = append(nonUTF, Broken{Entry: entry, Err: err})
		}
	}

	counter.Finish()
	return nonUTF, nil
}

// ProbeBroken runs a throwaway iconv conversion over every non-UTF-8 file and
// returns the ones that cannot be converted at all. Those have corrupted or
// mixed encoding and need a human.
func (p *Pipeline) ProbeBroken(ctx context.Context, nonUTF []Broken) ([]Broken, error) {
	var broken []Broken

	counter := progress.NewCounter(p.out, "Checking broken UTF-8 files", len(nonUTF), progressStep)
	counter.Final = func() string {
		return fmt.Sprintf("%d", len(broken))
	}

	for _, b := range nonUTF {
		counter.Inc()
		if err := textenc.Probe(ctx, p.FullPath(b.Entry.Path), b.Entry.Type.Charset); err != nil {
			broken = append(broken, Broken{Entry: b.Entry, Err: b.Err})
		}
	}

	counter.Finish()
	return broken, nil
}

// ConvertNonUTF rewrites every non-UTF-8 file as UTF-8 in place.
func (p *Pipeline) ConvertNonUTF(ctx context.Context, nonUTF []Broken) error {
	counter := progress.NewCounter(p.out, "Converting files into UTF-8", len(nonUTF), progressStep)

	for _, b := range nonUTF {
		counter.Inc()
		if err := textenc.Convert(ctx, p.FullPath(b.Entry.Path), b.Entry.Type.Charset); err != nil {
			return err
		}
	}

	counter.Finish()
	return nil
}

// PrintBroken reports files whose encoding could not be fixed automatically.
func (p *Pipeline) PrintBroken(broken []Broken) {
	if len(broken) == 0 {
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, style.ErrorStyle.Render("ERROR: Found broken UTF-8 files with corrupted/mixed encoding."))
	fmt.Fprintln(p.out, style.ErrorStyle.Render("       Fix files below manually and try again."))

	for _, b := range broken {
		fmt.Fprintln(p.out)
		fmt.Fprintf(p.out, "    %s\n", style.PathStyle.Render(b.Entry.Path))
		fmt.Fprintf(p.out, "        charset : %s\n", b.Entry.Type.Charset)
		fmt.Fprintf(p.out, "        error   : %v\n", b.Err)
	}
}
