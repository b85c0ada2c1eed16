// Package progress renders single-line, in-place progress output for long
// scans. On non-interactive output only final lines are printed.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Line owns one rewritable terminal line.
type Line struct {
	out     io.Writer
	termOut *termenv.Output
	tty     bool
	hasLine bool
}

// NewLine creates a Line writing to w. Rewriting is only enabled when w is
// os.Stdout or os.Stderr attached to a terminal.
func NewLine(w io.Writer) *Line {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Line{
		out:     w,
		termOut: termenv.NewOutput(w),
		tty:     tty,
	}
}

// Update replaces the current line with text. On non-terminals intermediate
// updates are dropped.
func (l *Line) Update(text string) {
	if !l.tty {
		return
	}
	l.clear()
	l.hasLine = true
	fmt.Fprint(l.out, text)
}

// Done replaces the current line with text and terminates it.
func (l *Line) Done(text string) {
	l.clear()
	l.hasLine = false
	fmt.Fprintln(l.out, text)
}

func (l *Line) clear() {
	if l.tty && l.hasLine {
		l.termOut.ClearLine()
		fmt.Fprint(l.out, "\r")
	}
}

// Counter is a percentage progress line over a known total. Updates are
// throttled to every step increments.
type Counter struct {
	line   *Line
	prefix string
	total  int
	step   int
	index  int
	// Final produces the message shown when the counter completes; when nil
	// the plain count is shown.
	Final func() string
}

// NewCounter creates a Counter labelled with prefix.
func NewCounter(w io.Writer, prefix string, total, step int) *Counter {
	if step < 1 {
		step = 1
	}
	return &Counter{
		line:   NewLine(w),
		prefix: prefix,
		total:  total,
		step:   step,
	}
}

// Inc advances the counter by one.
func (c *Counter) Inc() {
	c.index++
	if c.index%c.step == 0 {
		c.line.Update(c.render())
	}
}

// Finish prints the final line.
func (c *Counter) Finish() {
	c.line.Done(c.render())
}

func (c *Counter) render() string {
	if c.index >= c.total {
		suffix := fmt.Sprintf("%d", c.total)
		if c.Final != nil {
			suffix = c.Final()
		}
		return fmt.Sprintf("%s: %s", c.prefix, suffix)
	}
	totalLen := len(fmt.Sprintf("%d", c.total))
	perc := float64(c.index) * 100 / float64(c.total)
	return fmt.Sprintf("%s: %*d / %d    %6.2f%%", c.prefix, totalLen, c.index, c.total, perc)
}
