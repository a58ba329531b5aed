package git

import (
	"context"
	"fmt"
	"strings"
)

// DryRunExecutor forwards read-only queries to an underlying executor and
// reports mutating commands through a callback instead of running them.
type DryRunExecutor struct {
	next   GitExecutor
	report func(cmd string)
}

var _ GitExecutor = (*DryRunExecutor)(nil)

// NewDryRunExecutor wraps next. report receives the command line that would
// have run.
func NewDryRunExecutor(next GitExecutor, report func(cmd string)) *DryRunExecutor {
	return &DryRunExecutor{next: next, report: report}
}

func (d *DryRunExecutor) skip(args ...string) error {
	if d.report != nil {
		d.report("git " + quoteArgs(args))
	}
	return nil
}

func (d *DryRunExecutor) CurrentBranch(ctx context.Context) (string, error) {
	return d.next.CurrentBranch(ctx)
}

func (d *DryRunExecutor) Describe(ctx context.Context, options ...string) (string, error) {
	return d.next.Describe(ctx, options...)
}

func (d *DryRunExecutor) Add(_ context.Context, paths ...string) error {
	return d.skip(append([]string{"add"}, paths...)...)
}

func (d *DryRunExecutor) Commit(_ context.Context, message string, flags ...string) error {
	args := append([]string{"commit"}, flags...)
	return d.skip(append(args, "-m", message)...)
}

func (d *DryRunExecutor) CreateTag(_ context.Context, name, message string) error {
	return d.skip("tag", "-a", name, "-m", message)
}

func (d *DryRunExecutor) Push(_ context.Context, remote string) error {
	return d.skip("push", remote)
}

func (d *DryRunExecutor) PushTags(_ context.Context, remote string) error {
	return d.skip("push", remote, "--tags")
}

// quoteArgs joins args for display, quoting those with whitespace.
func quoteArgs(args []string) string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			out[i] = fmt.Sprintf("%q", a)
		} else {
			out[i] = a
		}
	}
	return strings.Join(out, " ")
}
