// Package console prints release progress to the terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/zjrosen/pushrelease/internal/ui/styles"
)

// Reporter writes one styled line per event. Verbose lines are dropped
// unless the reporter was created verbose.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
	warned  int
}

// New creates a Reporter writing progress to out and errors to errOut.
func New(out, errOut io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, errOut: errOut, verbose: verbose}
}

// OK reports a completed action.
func (r *Reporter) OK(msg string) {
	r.line(r.out, styles.SuccessStyle.Render(styles.IconSuccess)+" "+styles.TextStyle.Render(msg))
}

// Warn reports a recoverable problem.
func (r *Reporter) Warn(msg string) {
	r.mu.Lock()
	r.warned++
	r.mu.Unlock()
	r.line(r.out, styles.WarningStyle.Render(styles.IconWarning)+" "+styles.WarningStyle.Render(msg))
}

// Verbose reports detail such as diffs and skipped commands.
func (r *Reporter) Verbose(msg string) {
	if !r.verbose || msg == "" {
		return
	}
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + styles.RenderDiffLine(l)
	}
	r.line(r.out, strings.Join(lines, "\n"))
}

// Error reports a fatal error.
func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	r.line(r.errOut, styles.ErrorStyle.Render(styles.IconError+" "+err.Error()))
}

// Warnings returns how many warnings were reported.
func (r *Reporter) Warnings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.warned
}

func (r *Reporter) line(w io.Writer, s string) {
	if w == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(w, s)
}
