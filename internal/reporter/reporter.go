package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter emits the run's user-facing lines: one success line on
// stdout, everything else on stderr.
type Reporter struct {
	out     io.Writer
	err     io.Writer
	success *color.Color
	failure *color.Color
	notice  *color.Color
}

// New creates a Reporter. Color is enabled only when the corresponding
// stream is a terminal.
func New(out, errW io.Writer) *Reporter {
	r := &Reporter{
		out:     out,
		err:     errW,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
	}
	if !isTerminal(out) {
		r.success.DisableColor()
	}
	if !isTerminal(errW) {
		r.failure.DisableColor()
		r.notice.DisableColor()
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success prints the single success line for a completed run.
func (r *Reporter) Success(summary *domain.Summary) {
	r.success.Fprintln(r.out, summary.String())
}

// Failure prints the single error line for a failed run.
func (r *Reporter) Failure(err error) {
	r.failure.Fprintf(r.err, "Error: %v\n", err)
}

// Noticef prints an informational line, such as the removal of a stale
// lock file or the outcome of a dry run.
func (r *Reporter) Noticef(format string, args ...any) {
	r.notice.Fprintln(r.err, fmt.Sprintf(format, args...))
}
